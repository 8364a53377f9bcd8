// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/taskboard/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskService is a test double for domain.TaskService.
// Create echoes the input with NextID, like the placeholder service does.
type MockTaskService struct {
	ListErr     error
	CreateErr   error
	Tasks       []domain.Task
	Created     []domain.NewTask
	NextID      int
	ListCalls   int
	CreateCalls int
	mu          sync.Mutex
}

// NewMockTaskService creates a MockTaskService returning the given records.
func NewMockTaskService(tasks ...domain.Task) *MockTaskService {
	return &MockTaskService{
		Tasks:  tasks,
		NextID: 201,
	}
}

// Ensure MockTaskService implements domain.TaskService interface.
var _ domain.TaskService = (*MockTaskService)(nil)

// List returns a copy of the configured records or error.
func (m *MockTaskService) List(ctx context.Context) ([]domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]domain.Task, len(m.Tasks))
	copy(out, m.Tasks)
	return out, nil
}

// Create records the request and echoes it back.
func (m *MockTaskService) Create(ctx context.Context, task domain.NewTask) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++
	m.Created = append(m.Created, task)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	return &domain.Task{
		ID:        m.NextID,
		OwnerID:   task.OwnerID,
		Title:     task.Title,
		Completed: task.Completed,
	}, nil
}

// LogEntry is a single entry captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// String formats the entry the way the file logger does, without timestamp.
func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] [%s] %s", e.Level, e.Category, e.Msg)
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) record(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a DEBUG entry.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Info records an INFO entry.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Warn records a WARN entry.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an ERROR entry.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }

// ByLevel returns the recorded entries with the given level.
func (m *MockLogger) ByLevel(level string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LogEntry
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config      *domain.Config
	LoadErr     error
	LastOptions domain.LoadConfigOptions
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	return m.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions records the options and returns the configured config.
func (m *MockConfigLoader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	m.LastOptions = opts
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitProjectErr    error
	InitGlobalErr     error
	InitConfig        *domain.Config
	ProjectInfo       domain.ConfigInfo
	GlobalInfo        domain.ConfigInfo
	InitProjectCalled bool
	InitGlobalCalled  bool
	InitForce         bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		ProjectInfo: domain.ConfigInfo{
			Path:   "/test/project/.taskboard.toml",
			Exists: false,
		},
		GlobalInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/taskboard/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalInfo
}

// ProjectConfigInfo returns the configured project config info.
func (m *MockConfigManager) ProjectConfigInfo() domain.ConfigInfo {
	return m.ProjectInfo
}

// InitGlobalConfig records the call and fails like the real manager when the file exists.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config, force bool) (string, error) {
	m.InitGlobalCalled = true
	return m.init(m.GlobalInfo, m.InitGlobalErr, cfg, force)
}

// InitProjectConfig records the call and fails like the real manager when the file exists.
func (m *MockConfigManager) InitProjectConfig(cfg *domain.Config, force bool) (string, error) {
	m.InitProjectCalled = true
	return m.init(m.ProjectInfo, m.InitProjectErr, cfg, force)
}

func (m *MockConfigManager) init(info domain.ConfigInfo, initErr error, cfg *domain.Config, force bool) (string, error) {
	m.InitConfig = cfg
	m.InitForce = force
	if initErr != nil {
		return "", initErr
	}
	if info.Exists && !force {
		return "", fmt.Errorf("%w: %s", domain.ErrConfigExists, info.Path)
	}
	return info.Path, nil
}
