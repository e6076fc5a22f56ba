package backcheck

import "errors"

var (
	// ErrConfigNotFound is returned when the configuration is missing, unparseable or invalid
	ErrConfigNotFound = errors.New("configuration not found")
	// ErrServiceUnavailable is returned when the management API cannot be queried
	ErrServiceUnavailable = errors.New("management service unavailable")
)

// IsFatal reports whether an error must abort the run before any report is sent
func IsFatal(err error) bool {
	return errors.Is(err, ErrConfigNotFound) || errors.Is(err, ErrServiceUnavailable)
}
