package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/testutil"
)

// newConfigTestContainer creates an app.Container with real config infrastructure.
// Global and state directories are isolated under temporary directories.
func newConfigTestContainer(t *testing.T) (*app.Container, string) {
	t.Helper()

	workDir := t.TempDir()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	container, err := app.New(workDir, "test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	return container, workDir
}

func runConfig(t *testing.T, container *app.Container, args ...string) (string, error) {
	t.Helper()
	cmd := newConfigCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestConfigCommand_NoSubcommand_ShowsConfig(t *testing.T) {
	container, workDir := newConfigTestContainer(t)

	out, err := runConfig(t, container)

	require.NoError(t, err)
	assert.Contains(t, out, "[Loaded from]")
	assert.Contains(t, out, filepath.Join(workDir, ".taskboard.toml")+" (not found)")
	assert.Contains(t, out, "[Effective Config]")
	assert.Contains(t, out, "endpoint = '"+domain.DefaultEndpoint+"'")
	assert.Contains(t, out, "page_size = 10")
}

func TestConfigShowCommand_ProjectFile(t *testing.T) {
	container, workDir := newConfigTestContainer(t)
	path := filepath.Join(workDir, ".taskboard.toml")
	require.NoError(t, os.WriteFile(path, []byte("[tasks]\npage_size = 25\n\n[remote]\ntimeout = \"5s\"\n"), 0o644))

	out, err := runConfig(t, container, "show")

	require.NoError(t, err)
	assert.Contains(t, out, "- "+path+"\n")
	assert.Contains(t, out, "page_size = 25")
	assert.Contains(t, out, "timeout = '5s'")
}

func TestConfigShowCommand_IgnoreProject(t *testing.T) {
	container, workDir := newConfigTestContainer(t)
	path := filepath.Join(workDir, ".taskboard.toml")
	require.NoError(t, os.WriteFile(path, []byte("[tasks]\npage_size = 25\n"), 0o644))

	out, err := runConfig(t, container, "show", "--ignore-project")

	require.NoError(t, err)
	assert.NotContains(t, out, path)
	assert.Contains(t, out, "page_size = 10")
}

func TestConfigShowCommand_ReflectsOverrides(t *testing.T) {
	container, _ := newConfigTestContainer(t)
	require.NoError(t, container.ApplyOverrides(app.Overrides{Endpoint: "http://localhost:1/todos"}))

	out, err := runConfig(t, container, "show")

	require.NoError(t, err)
	assert.Contains(t, out, "endpoint = 'http://localhost:1/todos'")
}

func TestConfigTemplateCommand(t *testing.T) {
	container := newTestContainer(testutil.NewMockTaskService())

	out, err := runConfig(t, container, "template")

	require.NoError(t, err)
	assert.Equal(t, domain.RenderConfigTemplate(domain.NewDefaultConfig()), out)
}

func TestConfigInitCommand_Project(t *testing.T) {
	container, workDir := newConfigTestContainer(t)
	path := filepath.Join(workDir, ".taskboard.toml")

	out, err := runConfig(t, container, "init")

	require.NoError(t, err)
	assert.Equal(t, "Created config file: "+path+"\n", out)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.RenderConfigTemplate(domain.NewDefaultConfig()), string(content))
}

func TestConfigInitCommand_ExistingFile(t *testing.T) {
	container, workDir := newConfigTestContainer(t)
	path := filepath.Join(workDir, ".taskboard.toml")
	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0o644))

	_, err := runConfig(t, container, "init")
	assert.ErrorIs(t, err, domain.ErrConfigExists)

	_, err = runConfig(t, container, "init", "--force")
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, "# mine\n", string(content))
}

func TestConfigInitCommand_Global(t *testing.T) {
	container := newTestContainer(testutil.NewMockTaskService())
	manager := container.ConfigManager.(*testutil.MockConfigManager)

	out, err := runConfig(t, container, "init", "--global")

	require.NoError(t, err)
	assert.True(t, manager.InitGlobalCalled)
	assert.False(t, manager.InitProjectCalled)
	assert.Equal(t, "Created config file: /home/test/.config/taskboard/config.toml\n", out)
}
