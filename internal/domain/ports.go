package domain

import (
	"context"
	"time"
)

// TaskService is the remote collection the board reads from and posts to.
type TaskService interface {
	// List fetches the full collection. No query parameters are sent.
	List(ctx context.Context) ([]Task, error)

	// Create posts a new task and returns the record echoed by the service.
	// The service is not required to persist it.
	Create(ctx context.Context, task NewTask) (*Task, error)
}

// Logger writes diagnostic entries. Implementations must be safe for concurrent use.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards every entry.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- project).
	Load() (*Config, error)

	// LoadWithOptions returns the merged configuration, skipping ignored sources.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// LoadConfigOptions selects configuration sources to skip.
type LoadConfigOptions struct {
	IgnoreGlobal  bool
	IgnoreProject bool
}

// ConfigManager reads and initializes configuration files.
type ConfigManager interface {
	// GlobalConfigInfo returns information about the global config file.
	GlobalConfigInfo() ConfigInfo

	// ProjectConfigInfo returns information about the project config file.
	ProjectConfigInfo() ConfigInfo

	// InitGlobalConfig writes the default template to the global config file.
	InitGlobalConfig(cfg *Config, force bool) (string, error)

	// InitProjectConfig writes the default template to the project config file.
	InitProjectConfig(cfg *Config, force bool) (string, error)
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
