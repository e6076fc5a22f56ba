package management

import (
	"fmt"
	"webup/backcheck"
)

// GetSource returns the management source matching the configured type
func GetSource(spec backcheck.ManagementSpec) (backcheck.ManagementSource, error) {
	switch spec.Type {
	case backcheck.SourceHTTP:
		return NewHTTPSource(spec), nil
	case backcheck.SourceCommand:
		return NewCommandSource(spec), nil
	}

	return nil, fmt.Errorf("%w: unknown management type '%s'", backcheck.ErrConfigNotFound, spec.Type)
}
