package renderer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/five82/plantview/internal/render"
)

// Fetcher retrieves rendered payloads. Implemented by *Client and used by
// the UI so tests can substitute a fake.
type Fetcher interface {
	Fetch(ctx context.Context, format render.Format, id string) (Payload, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Payload is a rendered diagram body.
type Payload struct {
	Format      render.Format
	ContentType string
	Body        []byte
}

// Client talks to a PlantUML rendering server.
type Client struct {
	links     render.Links
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent = "plantview/0.1"
	requestTimeout   = 15 * time.Second
	maxPayloadBytes  = 32 << 20
)

// ErrEmptyIdentifier is returned when Fetch is called without an identifier.
var ErrEmptyIdentifier = errors.New("identifier required")

// NewClient builds a Client that requests URLs produced by links.
func NewClient(links render.Links) *Client {
	return &Client{
		links: links,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}
}

// Links returns the link builder the client requests from.
func (c *Client) Links() render.Links {
	return c.links
}

// Fetch GETs base/format/id and returns the body.
func (c *Client) Fetch(ctx context.Context, format render.Format, id string) (Payload, error) {
	if c == nil {
		return Payload{}, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return Payload{}, ErrEmptyIdentifier
	}
	target := c.links.URL(format, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Payload{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Payload{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return Payload{}, fmt.Errorf("renderer %s returned status %d", format, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return Payload{}, fmt.Errorf("read response: %w", err)
	}
	return Payload{
		Format:      format,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
