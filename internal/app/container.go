// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/infra/config"
	"github.com/runoshun/taskboard/internal/infra/logging"
	"github.com/runoshun/taskboard/internal/infra/remote"
	"github.com/runoshun/taskboard/internal/usecase"
)

// Config holds the application paths and build information.
type Config struct {
	WorkDir  string // Directory searched for the project config file
	StateDir string // Root of the log directory ("" disables logging)
	Version  string // Reported in the User-Agent header
}

// Overrides are command-line values that take precedence over config files.
type Overrides struct {
	Endpoint string
	LogLevel string
}

// Apply returns a copy of cfg with the non-empty override values set.
func (o Overrides) Apply(cfg *domain.Config) *domain.Config {
	next := *cfg
	if o.Endpoint != "" {
		next.Remote.Endpoint = o.Endpoint
	}
	if o.LogLevel != "" {
		next.Log.Level = o.LogLevel
	}
	return &next
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks         domain.TaskService
	Clock         domain.Clock
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// AppConfig is the merged configuration the ports were built from.
	AppConfig *domain.Config

	// LoadErr is set when the config files could not be loaded; defaults are used instead.
	LoadErr error

	// Overrides holds the command-line values last applied to AppConfig.
	Overrides Overrides

	closer func() error

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
func New(dir, version string) (*Container, error) {
	cfg := Config{
		WorkDir:  dir,
		StateDir: logging.DefaultStateDir(),
		Version:  version,
	}

	configLoader := config.NewLoader(cfg.WorkDir)
	appConfig, loadErr := configLoader.Load()
	if loadErr != nil {
		appConfig = domain.NewDefaultConfig()
	}

	c := &Container{
		Clock:         domain.RealClock{},
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.WorkDir),
		AppConfig:     appConfig,
		LoadErr:       loadErr,
		Config:        cfg,
	}
	if err := c.build(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, tasks domain.TaskService, clock domain.Clock, logger domain.Logger) *Container {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Tasks:     tasks,
		Clock:     clock,
		Logger:    logger,
		AppConfig: domain.NewDefaultConfig(),
		Config:    cfg,
	}
}

// build creates the logger and remote client from AppConfig.
func (c *Container) build() error {
	if err := c.Close(); err != nil {
		return err
	}

	logger := logging.New(c.Config.StateDir, logging.ParseLevel(c.AppConfig.Log.Level))
	client, err := remote.New(c.AppConfig.Remote.Endpoint,
		remote.WithTimeout(c.AppConfig.Remote.Timeout),
		remote.WithLogger(logger),
		remote.WithUserAgent("taskboard/"+c.Config.Version),
	)
	if err != nil {
		_ = logger.Close()
		return err
	}

	c.Logger = logger
	c.Tasks = client
	c.closer = logger.Close
	return nil
}

// ApplyOverrides applies command-line values and rebuilds the affected ports.
// Containers created with NewWithDeps keep their injected ports.
func (c *Container) ApplyOverrides(o Overrides) error {
	if o.Endpoint == "" && o.LogLevel == "" {
		return nil
	}

	next := o.Apply(c.AppConfig)
	if err := next.Validate(); err != nil {
		return fmt.Errorf("invalid flag: %w", err)
	}
	c.AppConfig = next
	c.Overrides = o

	if c.closer == nil {
		return nil
	}
	return c.build()
}

// Close releases resources held by the ports.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	err := c.closer()
	c.closer = nil
	return err
}

// UseCase factory methods

// LoadTasksUseCase returns a new LoadTasks use case.
func (c *Container) LoadTasksUseCase() *usecase.LoadTasks {
	return usecase.NewLoadTasks(c.Tasks, c.Logger, c.AppConfig.Tasks.DateMonth)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Clock, c.Logger, c.AppConfig.Remote.OwnerID)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.LoadTasksUseCase())
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// PageSize returns the configured number of tasks per page.
func (c *Container) PageSize() int {
	if c.AppConfig == nil || c.AppConfig.Tasks.PageSize < 1 {
		return domain.PageSize
	}
	return c.AppConfig.Tasks.PageSize
}
