package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// Default configuration values.
const (
	DefaultEndpoint = "https://jsonplaceholder.typicode.com/todos"
	DefaultOwnerID  = 1
	DefaultLogLevel = "info"
)

// Config represents the application configuration.
type Config struct {
	Remote   RemoteConfig // [remote] settings
	Log      LogConfig    // [log] settings
	Warnings []string     // Unknown keys found while loading
	Tasks    TasksConfig  // [tasks] settings
}

// RemoteConfig holds the remote task service settings from the [remote] section.
type RemoteConfig struct {
	Endpoint string        `toml:"endpoint"` // Collection endpoint for GET and POST
	Timeout  time.Duration `toml:"timeout"`  // Zero means the transport default
	OwnerID  int           `toml:"owner_id"` // userId sent with created tasks
}

// TasksConfig holds list presentation settings from the [tasks] section.
type TasksConfig struct {
	DateMonth string `toml:"date_month"` // YYYY-MM used for mock display dates
	PageSize  int    `toml:"page_size"`  // Tasks per page
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// NewDefaultConfig returns a Config populated with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Remote: RemoteConfig{
			Endpoint: DefaultEndpoint,
			OwnerID:  DefaultOwnerID,
		},
		Tasks: TasksConfig{
			DateMonth: DefaultDateMonth,
			PageSize:  PageSize,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Validate checks values that cannot be repaired by falling back to defaults.
func (c *Config) Validate() error {
	if c.Remote.Endpoint == "" {
		return fmt.Errorf("%w: remote.endpoint is empty", ErrInvalidConfig)
	}
	if c.Remote.Timeout < 0 {
		return fmt.Errorf("%w: remote.timeout must not be negative", ErrInvalidConfig)
	}
	if c.Tasks.PageSize < 1 {
		return fmt.Errorf("%w: tasks.page_size must be at least 1", ErrInvalidConfig)
	}
	if _, err := time.Parse(MonthLayout, c.Tasks.DateMonth); err != nil {
		return fmt.Errorf("%w: tasks.date_month %q is not YYYY-MM", ErrInvalidConfig, c.Tasks.DateMonth)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q is not one of debug, info, warn, error", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// Directory and file names.
const (
	AppDirName            = "taskboard"       // Directory under XDG config/state homes
	ConfigFileName        = "config.toml"     // Global config file name
	ProjectConfigFileName = ".taskboard.toml" // Config file name in the working directory
	LogFileName           = "taskboard.log"   // Diagnostic log file name
)

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// ProjectConfigPath returns the project config path inside dir.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigFileName)
}

// StateDir returns the state directory holding logs.
// stateHome is typically XDG_STATE_HOME or ~/.local/state (resolved by caller).
func StateDir(stateHome string) string {
	return filepath.Join(stateHome, AppDirName)
}

// LogPath returns the diagnostic log path inside stateDir.
func LogPath(stateDir string) string {
	return filepath.Join(stateDir, "logs", LogFileName)
}

type templateData struct {
	Endpoint  string
	DateMonth string
	LogLevel  string
	OwnerID   int
	PageSize  int
}

// RenderConfigTemplate renders the commented config file written by `config init`.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		Endpoint:  cfg.Remote.Endpoint,
		OwnerID:   cfg.Remote.OwnerID,
		DateMonth: cfg.Tasks.DateMonth,
		PageSize:  cfg.Tasks.PageSize,
		LogLevel:  cfg.Log.Level,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
