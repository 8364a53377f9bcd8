package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/testutil"
)

// newTestContainer creates an app.Container with mock dependencies.
func newTestContainer(svc *testutil.MockTaskService) *app.Container {
	container := app.NewWithDeps(
		app.Config{},
		svc,
		&testutil.MockClock{NowTime: time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)},
		&testutil.MockLogger{},
	)
	container.ConfigLoader = testutil.NewMockConfigLoader()
	container.ConfigManager = testutil.NewMockConfigManager()
	return container
}

// numberedService returns a service holding n tasks titled "Task 1".."Task n".
func numberedService(n int) *testutil.MockTaskService {
	tasks := make([]domain.Task, n)
	for i := range tasks {
		tasks[i] = domain.Task{
			ID:        i + 1,
			OwnerID:   1,
			Title:     fmt.Sprintf("Task %d", i+1),
			Completed: i%3 == 0,
		}
	}
	return testutil.NewMockTaskService(tasks...)
}

func runList(t *testing.T, container *app.Container, args ...string) (string, error) {
	t.Helper()
	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestListCommand_FirstPage(t *testing.T) {
	container := newTestContainer(numberedService(25))

	out, err := runList(t, container)

	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "DATE")
	assert.Contains(t, out, "Task 1\n")
	assert.Contains(t, out, "Task 10\n")
	assert.NotContains(t, out, "Task 11\n")
	assert.Contains(t, out, "2024-07-01")
	assert.Contains(t, out, "Completed")
	assert.Contains(t, out, "Pending")
	assert.Contains(t, out, "page 1 of 3 (25 of 25 tasks)")
}

func TestListCommand_LastPage(t *testing.T) {
	container := newTestContainer(numberedService(25))

	out, err := runList(t, container, "--page", "3")

	require.NoError(t, err)
	assert.Contains(t, out, "Task 21\n")
	assert.Contains(t, out, "Task 25\n")
	assert.NotContains(t, out, "Task 20\n")
	assert.Contains(t, out, "page 3 of 3")
}

func TestListCommand_SearchAndDate(t *testing.T) {
	svc := numberedService(25)
	svc.Tasks[4].Title = "Make a phone call"
	container := newTestContainer(svc)

	out, err := runList(t, container, "--search", "CALL", "--date", "2024-07-05")

	require.NoError(t, err)
	assert.Contains(t, out, "Make a phone call")
	assert.Contains(t, out, "page 1 of 1 (1 of 25 tasks)")
}

func TestListCommand_NoMatch(t *testing.T) {
	container := newTestContainer(numberedService(3))

	out, err := runList(t, container, "--search", "nothing")

	require.NoError(t, err)
	assert.Equal(t, "No tasks found.\n", out)
}

func TestListCommand_JSON(t *testing.T) {
	container := newTestContainer(numberedService(12))

	out, err := runList(t, container, "--format", "json", "--page", "2")

	require.NoError(t, err)
	var got []domain.Task
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, domain.Task{ID: 11, OwnerID: 1, Title: "Task 11", DisplayDate: "2024-07-11"}, got[0])
	assert.Equal(t, 12, got[1].ID)
}

func TestListCommand_YAML(t *testing.T) {
	container := newTestContainer(numberedService(1))

	out, err := runList(t, container, "-o", "yaml")

	require.NoError(t, err)
	var got []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Task 1", got[0]["title"])
	assert.Equal(t, "2024-07-01", got[0]["date"])
	assert.Equal(t, true, got[0]["completed"])
}

func TestListCommand_EmptyPageJSON(t *testing.T) {
	container := newTestContainer(numberedService(3))

	out, err := runList(t, container, "--format", "json", "--page", "9")

	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestListCommand_InvalidFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unknown format", []string{"--format", "csv"}, domain.ErrInvalidFormat},
		{"page zero", []string{"--page", "0"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := numberedService(3)
			container := newTestContainer(svc)

			_, err := runList(t, container, tt.args...)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, 0, svc.ListCalls)
		})
	}
}

func TestListCommand_LoadError(t *testing.T) {
	svc := numberedService(3)
	svc.ListErr = fmt.Errorf("%w: 500 Internal Server Error", domain.ErrRemoteStatus)
	container := newTestContainer(svc)

	out, err := runList(t, container)

	assert.ErrorIs(t, err, domain.ErrRemoteStatus)
	assert.Empty(t, out)
}

func TestListCommand_ConfiguredPageSize(t *testing.T) {
	container := newTestContainer(numberedService(25))
	container.AppConfig.Tasks.PageSize = 20

	out, err := runList(t, container, "--page", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "Task 21\n")
	assert.Contains(t, out, "page 2 of 2")
}
