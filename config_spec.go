package backcheck

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Management source types
const (
	SourceHTTP    = "http"
	SourceCommand = "command"
)

// Config represents the content of a backcheck.yml file
type Config struct {
	Mail          MailSpec       `yaml:"mail"`
	Thresholds    ThresholdSpec  `yaml:"thresholds"`
	Exclusions    []string       `yaml:"exclusions"`
	Management    ManagementSpec `yaml:"management"`
	Log           LogSpec        `yaml:"log"`
	AlertsEnabled *bool          `yaml:"alerts_enabled"`
}

// MailSpec holds the settings used to deliver the report
type MailSpec struct {
	To                 string `yaml:"to"`
	From               string `yaml:"from"`
	Relay              string `yaml:"relay"`
	Port               int    `yaml:"port"`
	Username           string `yaml:"username"`
	Password           string `yaml:"password"`
	Subject            string `yaml:"subject"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify"`
}

// ThresholdSpec holds the maximum tolerated age of the last backup, in hours.
// The lenient weekday usually follows a weekend without backups.
type ThresholdSpec struct {
	DefaultHours   int    `yaml:"default_hours"`
	LenientWeekday string `yaml:"lenient_weekday"`
	LenientHours   int    `yaml:"lenient_hours"`
}

// ManagementSpec describes how the management API is reached
type ManagementSpec struct {
	Type       string   `yaml:"type"`
	URL        string   `yaml:"url"`
	SecretFile string   `yaml:"secret_file"`
	Timeout    int      `yaml:"timeout"` // in seconds
	Command    []string `yaml:"command"`
}

// LogSpec holds the optional trace file location
type LogSpec struct {
	File string `yaml:"file"`
}

// ApplyDefaults fills the optional fields left empty
func (c *Config) ApplyDefaults() {
	if c.Mail.Port == 0 {
		c.Mail.Port = 25
	}
	if c.Mail.Subject == "" {
		c.Mail.Subject = "Database Backup Report"
	}
	if c.Thresholds.LenientWeekday == "" {
		c.Thresholds.LenientWeekday = time.Monday.String()
	}
	if c.Thresholds.LenientHours == 0 {
		c.Thresholds.LenientHours = c.Thresholds.DefaultHours
	}
	if c.Management.Type == "" {
		c.Management.Type = SourceHTTP
	}
	if c.Management.Timeout == 0 {
		c.Management.Timeout = 60
	}
	if c.AlertsEnabled == nil {
		enabled := true
		c.AlertsEnabled = &enabled
	}
}

// IsValid returns an error describing the first invalid setting
func (c Config) IsValid() error {
	if c.Mail.To == "" || c.Mail.From == "" || c.Mail.Relay == "" {
		return errors.New("'mail' requires 'to', 'from' and 'relay'")
	}

	if c.Thresholds.DefaultHours <= 0 || c.Thresholds.LenientHours <= 0 {
		return errors.New("'thresholds' must be positive numbers of hours")
	}

	if _, err := ParseWeekday(c.Thresholds.LenientWeekday); err != nil {
		return err
	}

	switch c.Management.Type {
	case SourceHTTP:
		if c.Management.URL == "" {
			return errors.New("'management' of type 'http' requires 'url'")
		}
	case SourceCommand:
		if len(c.Management.Command) == 0 {
			return errors.New("'management' of type 'command' requires 'command'")
		}
	default:
		return fmt.Errorf("'management' type must be '%s' or '%s'", SourceHTTP, SourceCommand)
	}

	return nil
}

// Threshold returns the threshold applying to the given day
func (c Config) Threshold(day time.Weekday) int {
	return c.Thresholds.For(day)
}

// For returns the lenient threshold on the lenient weekday, the default one otherwise
func (t ThresholdSpec) For(day time.Weekday) int {
	lenient, err := ParseWeekday(t.LenientWeekday)
	if err == nil && lenient == day {
		return t.LenientHours
	}
	return t.DefaultHours
}

// IsExcluded reports whether a database name is in the exclusion list (case-insensitive, exact)
func (c Config) IsExcluded(name string) bool {
	for _, excluded := range c.Exclusions {
		if strings.EqualFold(strings.TrimSpace(excluded), name) {
			return true
		}
	}
	return false
}

// ShouldAlert returns the internal alert flag
func (c Config) ShouldAlert() bool {
	return c.AlertsEnabled == nil || *c.AlertsEnabled
}

// ParseWeekday parses an english weekday name, case-insensitive
func ParseWeekday(name string) (time.Weekday, error) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if strings.EqualFold(day.String(), strings.TrimSpace(name)) {
			return day, nil
		}
	}
	return time.Sunday, fmt.Errorf("'%s' is not a weekday", name)
}
