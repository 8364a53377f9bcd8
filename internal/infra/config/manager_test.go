package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/domain"
)

func TestManager_ConfigInfo(t *testing.T) {
	projectDir := t.TempDir()
	globalDir := t.TempDir()
	writeFile(t, domain.ProjectConfigPath(projectDir), "[log]\nlevel = \"debug\"\n")
	m := NewManagerWithGlobalDir(projectDir, globalDir)

	project := m.ProjectConfigInfo()
	assert.True(t, project.Exists)
	assert.Equal(t, domain.ProjectConfigPath(projectDir), project.Path)
	assert.Contains(t, project.Content, "debug")

	global := m.GlobalConfigInfo()
	assert.False(t, global.Exists)
	assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), global.Path)
}

func TestManager_InitProjectConfig(t *testing.T) {
	projectDir := t.TempDir()
	m := NewManagerWithGlobalDir(projectDir, t.TempDir())

	path, err := m.InitProjectConfig(domain.NewDefaultConfig(), false)

	require.NoError(t, err)
	assert.Equal(t, domain.ProjectConfigPath(projectDir), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), domain.DefaultEndpoint)
}

func TestManager_InitProjectConfig_Exists(t *testing.T) {
	projectDir := t.TempDir()
	writeFile(t, domain.ProjectConfigPath(projectDir), "# mine\n")
	m := NewManagerWithGlobalDir(projectDir, t.TempDir())

	_, err := m.InitProjectConfig(domain.NewDefaultConfig(), false)
	assert.ErrorIs(t, err, domain.ErrConfigExists)

	content, err := os.ReadFile(domain.ProjectConfigPath(projectDir))
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(content), "existing file must be kept")

	_, err = m.InitProjectConfig(domain.NewDefaultConfig(), true)
	require.NoError(t, err)
	content, err = os.ReadFile(domain.ProjectConfigPath(projectDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[remote]")
}

func TestManager_InitGlobalConfig_CreatesDirectory(t *testing.T) {
	globalDir := filepath.Join(t.TempDir(), "nested", "taskboard")
	m := NewManagerWithGlobalDir(t.TempDir(), globalDir)

	path, err := m.InitGlobalConfig(domain.NewDefaultConfig(), false)

	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestManager_InitGlobalConfig_NoDirectory(t *testing.T) {
	m := NewManagerWithGlobalDir(t.TempDir(), "")

	_, err := m.InitGlobalConfig(domain.NewDefaultConfig(), false)

	assert.Error(t, err)
}
