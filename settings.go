package backcheck

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

type key int

const settingsKey key = 0

const (
	// DefaultConfigFilename is looked up next to the executable
	DefaultConfigFilename = "backcheck.yml"
	// DefaultLogFilename is used when the config does not specify a trace file
	DefaultLogFilename = "backcheck.log"
)

// Settings represents the settings that can be configured with CLI
type Settings struct {
	ConfigPath  string
	LogToFile   bool
	LogPath     string
	AlwaysSend  bool
	StartupTime time.Time
}

// NewDefaultSettings returns default settings
func NewDefaultSettings() Settings {
	return Settings{
		ConfigPath:  besideExecutable(DefaultConfigFilename),
		StartupTime: time.Now(),
	}
}

// NewContextWithSettings returns a context with associated settings
func NewContextWithSettings(ctx context.Context, settings Settings) context.Context {
	return context.WithValue(ctx, settingsKey, settings)
}

// SettingsFromContext returns the settings associated to a context
func SettingsFromContext(ctx context.Context) (Settings, bool) {
	settings, ok := ctx.Value(settingsKey).(Settings)
	return settings, ok
}

func besideExecutable(filename string) string {
	exe, err := os.Executable()
	if err != nil {
		return filename
	}
	return filepath.Join(filepath.Dir(exe), filename)
}

// DefaultLogPath returns the trace file path used when none is configured
func DefaultLogPath() string {
	return besideExecutable(DefaultLogFilename)
}
