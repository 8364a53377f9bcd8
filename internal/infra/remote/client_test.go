package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL+"/todos", WithHTTPClient(srv.Client()), WithUserAgent("taskboard/test"))
	require.NoError(t, err)
	return c
}

func TestClient_List(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/todos", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery, "no query parameters are sent")
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "taskboard/test", r.Header.Get("User-Agent"))
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		_, _ = io.WriteString(w, `[
			{"userId": 1, "id": 1, "title": "delectus aut autem", "completed": false},
			{"userId": 1, "id": 2, "title": "quis ut nam", "completed": true, "extra": "ignored"}
		]`)
	})

	tasks, err := c.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, []domain.Task{
		{ID: 1, OwnerID: 1, Title: "delectus aut autem"},
		{ID: 2, OwnerID: 1, Title: "quis ut nam", Completed: true},
	}, tasks)
}

func TestClient_List_EmptyCollection(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})

	tasks, err := c.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestClient_List_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		status  int
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{}`, wantErr: domain.ErrRemoteStatus},
		{name: "not found", status: http.StatusNotFound, body: ``, wantErr: domain.ErrRemoteStatus},
		{name: "invalid json", status: http.StatusOK, body: `[{"id":`, wantErr: domain.ErrMalformedPayload},
		{name: "object instead of array", status: http.StatusOK, body: `{"id": 1}`, wantErr: domain.ErrMalformedPayload},
		{name: "missing title", status: http.StatusOK, body: `[{"id": 1, "userId": 1, "completed": false}]`, wantErr: domain.ErrMalformedPayload},
		{name: "wrong completed type", status: http.StatusOK, body: `[{"id": 1, "userId": 1, "title": "x", "completed": "no"}]`, wantErr: domain.ErrMalformedPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			tasks, err := c.List(context.Background())

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, tasks)
		})
	}
}

func TestClient_List_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(url + "/todos")
	require.NoError(t, err)

	_, err = c.List(context.Background())

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrRemoteStatus)
}

func TestClient_List_CanceledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.List(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_Create(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/todos", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{
			"userId":    float64(1),
			"title":     "Buy milk",
			"completed": false,
		}, body)

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"userId": 1, "title": "Buy milk", "completed": false, "id": 201}`)
	})

	task, err := c.Create(context.Background(), domain.NewTask{OwnerID: 1, Title: "Buy milk"})

	require.NoError(t, err)
	assert.Equal(t, &domain.Task{ID: 201, OwnerID: 1, Title: "Buy milk"}, task)
}

func TestClient_Create_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		status  int
	}{
		{name: "server error", status: http.StatusServiceUnavailable, body: ``, wantErr: domain.ErrRemoteStatus},
		{name: "echo without id", status: http.StatusCreated, body: `{"userId": 1, "title": "x", "completed": false}`, wantErr: domain.ErrMalformedPayload},
		{name: "not json", status: http.StatusCreated, body: `created`, wantErr: domain.ErrMalformedPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			task, err := c.Create(context.Background(), domain.NewTask{OwnerID: 1, Title: "x"})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, task)
		})
	}
}

func TestNew_EmptyEndpoint(t *testing.T) {
	_, err := New("")

	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestWithTimeout(t *testing.T) {
	c, err := New("http://example.invalid/todos", WithTimeout(3*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, c.http.Timeout)

	c, err = New("http://example.invalid/todos", WithTimeout(0))
	require.NoError(t, err)
	assert.Zero(t, c.http.Timeout, "zero keeps the transport default")
}
