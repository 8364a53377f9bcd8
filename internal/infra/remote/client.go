// Package remote implements domain.TaskService over a JSON collection endpoint.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/runoshun/taskboard/internal/domain"
)

// Ensure Client implements domain.TaskService.
var _ domain.TaskService = (*Client)(nil)

// maxBodySize caps how much of a response is read.
const maxBodySize = 8 << 20

// RequestIDHeader carries a per-request correlation id that is also logged.
const RequestIDHeader = "X-Request-ID"

// Client talks to the remote task collection.
// Fields are ordered to minimize memory padding.
type Client struct {
	http      *http.Client
	schemas   *schemas
	logger    domain.Logger
	endpoint  string
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets http.Client.Timeout. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http = &http.Client{Transport: c.http.Transport, Timeout: d}
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l domain.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a Client for the collection at endpoint.
func New(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("%w: empty endpoint", domain.ErrInvalidConfig)
	}
	s, err := compileSchemas()
	if err != nil {
		return nil, err
	}
	c := &Client{
		http:      &http.Client{},
		schemas:   s,
		logger:    domain.NopLogger{},
		endpoint:  endpoint,
		userAgent: "taskboard",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the collection URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// List fetches the whole collection with a single GET.
func (c *Client) List(ctx context.Context) ([]domain.Task, error) {
	body, err := c.do(ctx, http.MethodGet, nil)
	if err != nil {
		return nil, err
	}
	if err := validate(c.schemas.list, body); err != nil {
		return nil, err
	}

	var records []record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}

	tasks := make([]domain.Task, 0, len(records))
	for _, r := range records {
		tasks = append(tasks, r.toDomain())
	}
	c.logger.Debug("remote", fmt.Sprintf("fetched %d tasks", len(tasks)))
	return tasks, nil
}

// Create posts task and returns the echoed record.
func (c *Client) Create(ctx context.Context, task domain.NewTask) (*domain.Task, error) {
	payload, err := json.Marshal(createRequest{
		OwnerID:   task.OwnerID,
		Title:     task.Title,
		Completed: task.Completed,
	})
	if err != nil {
		return nil, fmt.Errorf("encode task: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, payload)
	if err != nil {
		return nil, err
	}
	if err := validate(c.schemas.task, body); err != nil {
		return nil, err
	}

	var r record
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}
	created := r.toDomain()
	c.logger.Debug("remote", fmt.Sprintf("created task id=%d", created.ID))
	return &created, nil
}

// do sends one request and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, method string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}

	c.logger.Debug("remote", fmt.Sprintf("%s %s request_id=%s", method, c.endpoint, requestID))
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, c.endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s %s returned %s", domain.ErrRemoteStatus, method, c.endpoint, resp.Status)
	}
	return body, nil
}
