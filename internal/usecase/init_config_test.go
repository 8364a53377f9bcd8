package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/testutil"
	"github.com/runoshun/taskboard/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Execute(t *testing.T) {
	t.Run("creates project config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		cfg := domain.NewDefaultConfig()

		uc := usecase.NewInitConfig(manager)
		out, err := uc.Execute(context.Background(), usecase.InitConfigInput{
			Global: false,
			Config: cfg,
		})

		require.NoError(t, err)
		assert.Equal(t, "/test/project/.taskboard.toml", out.Path)
		assert.True(t, manager.InitProjectCalled)
		assert.False(t, manager.InitGlobalCalled)
		assert.Same(t, cfg, manager.InitConfig)
	})

	t.Run("creates global config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{
			Global: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "/home/test/.config/taskboard/config.toml", out.Path)
		assert.False(t, manager.InitProjectCalled)
		assert.True(t, manager.InitGlobalCalled)
		assert.Equal(t, domain.NewDefaultConfig(), manager.InitConfig)
	})

	t.Run("returns error when project config already exists", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.ProjectInfo.Exists = true

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		assert.ErrorIs(t, err, domain.ErrConfigExists)
		assert.Nil(t, out)
	})

	t.Run("force overwrites existing config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.GlobalInfo.Exists = true

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{
			Global: true,
			Force:  true,
		})

		require.NoError(t, err)
		assert.Equal(t, "/home/test/.config/taskboard/config.toml", out.Path)
		assert.True(t, manager.InitForce)
	})
}
