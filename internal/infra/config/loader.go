// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/taskboard/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	projectDir    string // Directory holding .taskboard.toml (usually the working directory)
	globalConfDir string // Path to global config directory (e.g., ~/.config/taskboard)
}

// NewLoader creates a new Loader.
func NewLoader(projectDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectDir, globalConfDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (default <- global <- project).
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions returns the merged configuration with options to ignore sources.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if !opts.IgnoreGlobal {
		global, err := l.LoadGlobal()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			base = mergeConfigs(base, global)
		}
	}

	if !opts.IgnoreProject {
		project, err := l.LoadProject()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if project != nil {
			base = mergeConfigs(base, project)
		}
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadProject returns only the project configuration.
func (l *Loader) LoadProject() (*domain.Config, error) {
	if l.projectDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(domain.ProjectConfigPath(l.projectDir))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg, err := convertRawToDomainConfig(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// convertRawToDomainConfig converts the raw map to a partial domain config and collects warnings.
// Zero values in the result mean "not set".
func convertRawToDomainConfig(raw map[string]any) (*domain.Config, error) {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "remote":
			for k, v := range m {
				switch k {
				case "endpoint":
					if s, ok := v.(string); ok {
						res.Remote.Endpoint = s
					}
				case "owner_id":
					if n, ok := v.(int64); ok {
						res.Remote.OwnerID = int(n)
					}
				case "timeout":
					s, ok := v.(string)
					if !ok || s == "" {
						continue
					}
					d, err := time.ParseDuration(s)
					if err != nil {
						return nil, fmt.Errorf("%w: remote.timeout: %v", domain.ErrInvalidConfig, err)
					}
					res.Remote.Timeout = d
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [remote]: %s", k))
				}
			}
		case "tasks":
			for k, v := range m {
				switch k {
				case "date_month":
					if s, ok := v.(string); ok {
						res.Tasks.DateMonth = s
					}
				case "page_size":
					n, ok := v.(int64)
					if !ok {
						continue
					}
					if n < 1 {
						return nil, fmt.Errorf("%w: tasks.page_size must be at least 1", domain.ErrInvalidConfig)
					}
					res.Tasks.PageSize = int(n)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [tasks]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res, nil
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Remote: base.Remote,
		Tasks:  base.Tasks,
		Log:    base.Log,
	}

	result.Warnings = append(result.Warnings, base.Warnings...)
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Remote.Endpoint != "" {
		result.Remote.Endpoint = override.Remote.Endpoint
	}
	if override.Remote.OwnerID != 0 {
		result.Remote.OwnerID = override.Remote.OwnerID
	}
	if override.Remote.Timeout != 0 {
		result.Remote.Timeout = override.Remote.Timeout
	}
	if override.Tasks.DateMonth != "" {
		result.Tasks.DateMonth = override.Tasks.DateMonth
	}
	if override.Tasks.PageSize != 0 {
		result.Tasks.PageSize = override.Tasks.PageSize
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	return result
}
