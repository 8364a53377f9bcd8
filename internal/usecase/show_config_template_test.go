package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/domain"
)

func TestShowConfigTemplate_Execute(t *testing.T) {
	custom := domain.NewDefaultConfig()
	custom.Remote.Endpoint = "http://localhost:8080/todos"
	custom.Tasks.PageSize = 25

	tests := []struct {
		name         string
		input        ShowConfigTemplateInput
		wantContains []string
	}{
		{
			name:  "nil config renders defaults",
			input: ShowConfigTemplateInput{},
			wantContains: []string{
				"[remote]",
				"[tasks]",
				"[log]",
				domain.DefaultEndpoint,
			},
		},
		{
			name:  "custom values",
			input: ShowConfigTemplateInput{Config: custom},
			wantContains: []string{
				"http://localhost:8080/todos",
				"25",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewShowConfigTemplate()

			out, err := uc.Execute(context.Background(), tt.input)

			require.NoError(t, err)
			for _, want := range tt.wantContains {
				assert.Contains(t, out.Template, want)
			}
		})
	}
}
