package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultBaseURL = "https://api.notion.com/v1"
	DefaultVersion = "2022-06-28"

	// maxPageSize is the largest page the API hands out per request.
	maxPageSize = 100
)

const tracerName = "github.com/MinhoKang/sallyrang/internal/notion"

var ErrMissingAPIKey = errors.New("notion: api key is not configured")
var ErrMissingID = errors.New("notion: empty object id")

type Config struct {
	APIKey     string
	BaseURL    string
	Version    string
	HTTPClient *http.Client
}

// Client talks to the Notion REST API. It never retries; a failed call is
// reported to the caller as is.
type Client struct {
	HTTPClient *http.Client
	BasePath   string
	Version    string

	apiKey string
	tracer trace.Tracer
}

func NewClient(cfg Config) *Client {
	c := &Client{
		HTTPClient: cfg.HTTPClient,
		BasePath:   strings.TrimRight(cfg.BaseURL, "/"),
		Version:    cfg.Version,
		apiKey:     cfg.APIKey,
		tracer:     otel.Tracer(tracerName),
	}
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	if c.BasePath == "" {
		c.BasePath = DefaultBaseURL
	}
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	return c
}

func (c *Client) RetrievePage(ctx context.Context, pageID string) (*Page, error) {
	if pageID == "" {
		return nil, ErrMissingID
	}
	var page Page
	if err := c.do(ctx, "RetrievePage", http.MethodGet, "/pages/"+url.PathEscape(pageID), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) QueryDatabase(ctx context.Context, databaseID string, req QueryRequest) (*QueryResponse, error) {
	if databaseID == "" {
		return nil, ErrMissingID
	}
	var res QueryResponse
	path := "/databases/" + url.PathEscape(databaseID) + "/query"
	if err := c.do(ctx, "QueryDatabase", http.MethodPost, path, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// QueryAll follows next_cursor until the collection is exhausted.
func (c *Client) QueryAll(ctx context.Context, databaseID string, req QueryRequest) ([]Page, error) {
	if req.PageSize == 0 {
		req.PageSize = maxPageSize
	}
	pages := []Page{}
	for {
		res, err := c.QueryDatabase(ctx, databaseID, req)
		if err != nil {
			return nil, err
		}
		pages = append(pages, res.Results...)
		if !res.HasMore || res.NextCursor == nil || *res.NextCursor == "" || *res.NextCursor == req.StartCursor {
			return pages, nil
		}
		req.StartCursor = *res.NextCursor
	}
}

// ListBlockChildren returns the first page of children only. Bodies longer
// than one page are truncated.
func (c *Client) ListBlockChildren(ctx context.Context, blockID string) (*BlockList, error) {
	if blockID == "" {
		return nil, ErrMissingID
	}
	var list BlockList
	path := fmt.Sprintf("/blocks/%s/children?page_size=%d", url.PathEscape(blockID), maxPageSize)
	if err := c.do(ctx, "ListBlockChildren", http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) UpdatePage(ctx context.Context, pageID string, req UpdatePageRequest) (*Page, error) {
	if pageID == "" {
		return nil, ErrMissingID
	}
	var page Page
	if err := c.do(ctx, "UpdatePage", http.MethodPatch, "/pages/"+url.PathEscape(pageID), req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, "notion."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.request.method", method)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	req, err := c.prepareRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("notion: %s: %w", op, err)
	}
	defer res.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", res.StatusCode))

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("notion: %s: read body: %w", op, err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return newAPIError(res.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("notion: %s: decode: %w", op, err)
	}
	return nil
}

func (c *Client) prepareRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("notion: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BasePath+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", c.Version)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
