package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/radiusdt/wellwave-hub/internal/config"
	"github.com/radiusdt/wellwave-hub/internal/metrics"
)

// maxPageSize is the largest page the hosted database returns per call.
const maxPageSize = 100

// API is the subset of the hosted database the service depends on.
type API interface {
	QueryDatabase(ctx context.Context, databaseID string, q *QueryRequest) ([]Page, error)
	RetrievePage(ctx context.Context, pageID string) (*Page, error)
	CreatePage(ctx context.Context, databaseID string, props Properties) (*Page, error)
	UpdatePage(ctx context.Context, pageID string, props Properties) (*Page, error)
	ArchivePage(ctx context.Context, pageID string) error
	RetrieveDatabase(ctx context.Context, databaseID string) (*Database, error)
}

// APIError is a non-2xx answer from the hosted database.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("notion: http %d", e.Status)
	}
	return e.Message
}

// StatusCode returns the upstream HTTP status.
func (e *APIError) StatusCode() int {
	return e.Status
}

// Client talks to the hosted database REST API.
type Client struct {
	baseURL string
	token   string
	version string
	http    *http.Client
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewClient builds a client from configuration. m may be nil.
func NewClient(cfg config.NotionConfig, logger *zap.Logger, m *metrics.Metrics) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		version: cfg.Version,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
		metrics: m,
	}
}

type queryBody struct {
	*QueryRequest
	PageSize    int    `json:"page_size,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
}

type queryResponse struct {
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// QueryDatabase returns matching pages, following cursors until the
// result set or q.Limit is exhausted.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, q *QueryRequest) ([]Page, error) {
	if q == nil {
		q = &QueryRequest{}
	}
	var (
		pages  []Page
		cursor string
	)
	for {
		body := queryBody{QueryRequest: q, PageSize: maxPageSize, StartCursor: cursor}
		if q.Limit > 0 && q.Limit-len(pages) < maxPageSize {
			body.PageSize = q.Limit - len(pages)
		}

		var resp queryResponse
		if err := c.do(ctx, "query", http.MethodPost, "/databases/"+databaseID+"/query", body, &resp); err != nil {
			return nil, err
		}
		pages = append(pages, resp.Results...)

		if !resp.HasMore || resp.NextCursor == nil || *resp.NextCursor == "" {
			break
		}
		if q.Limit > 0 && len(pages) >= q.Limit {
			break
		}
		cursor = *resp.NextCursor
	}
	if q.Limit > 0 && len(pages) > q.Limit {
		pages = pages[:q.Limit]
	}
	return pages, nil
}

func (c *Client) RetrievePage(ctx context.Context, pageID string) (*Page, error) {
	var p Page
	if err := c.do(ctx, "retrieve", http.MethodGet, "/pages/"+pageID, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreatePage(ctx context.Context, databaseID string, props Properties) (*Page, error) {
	body := map[string]any{
		"parent":     map[string]string{"database_id": databaseID},
		"properties": props,
	}
	var p Page
	if err := c.do(ctx, "create", http.MethodPost, "/pages", body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdatePage(ctx context.Context, pageID string, props Properties) (*Page, error) {
	if props == nil {
		props = Properties{}
	}
	var p Page
	if err := c.do(ctx, "update", http.MethodPatch, "/pages/"+pageID, map[string]any{"properties": props}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ArchivePage soft-deletes a page; it stays retrievable by id.
func (c *Client) ArchivePage(ctx context.Context, pageID string) error {
	return c.do(ctx, "archive", http.MethodPatch, "/pages/"+pageID, map[string]any{"archived": true}, nil)
}

func (c *Client) RetrieveDatabase(ctx context.Context, databaseID string) (*Database, error) {
	var d Database
	if err := c.do(ctx, "schema", http.MethodGet, "/databases/"+databaseID, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) (err error) {
	start := time.Now()
	defer func() {
		if c.metrics != nil {
			c.metrics.RecordUpstreamCall(op, err, time.Since(start))
		}
	}()

	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("notion: encode %s request: %w", op, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("notion: build %s request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("notion: %s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("notion: read %s response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		_ = json.Unmarshal(raw, apiErr)
		apiErr.Status = resp.StatusCode
		c.logger.Debug("notion request failed",
			zap.String("op", op),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("code", apiErr.Code),
		)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("notion: decode %s response: %w", op, err)
	}
	return nil
}
