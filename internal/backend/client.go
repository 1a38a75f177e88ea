// Package backend is the typed HTTP client for the catalog/chat backend.
// It is a plain request/response mapping: no retries, no caching, no
// side effects beyond the call itself.
package backend

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"trayafront/internal/domain"
)

// NetworkError is the single error kind the client produces: any
// transport failure or non-success status. It is deliberately not
// subdivided further (no 4xx/5xx/timeout distinction).
type NetworkError struct {
	Op     string // "list products", "get product", "chat"
	Status int    // HTTP status, 0 on transport failure
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: backend returned status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Client talks to the backend over HTTP.
type Client struct {
	http *resty.Client
}

// New creates a backend client for the given base URL.
func New(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

// ListProducts fetches the full catalog. Any failure is fatal for the
// call; there are no partial results.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&products).
		Get("/products")
	if err != nil {
		return nil, &NetworkError{Op: "list products", Err: err}
	}
	if resp.IsError() {
		return nil, &NetworkError{Op: "list products", Status: resp.StatusCode()}
	}
	return products, nil
}

// GetProduct fetches a single product by id. A 404 wraps
// domain.ErrNotFound so callers can tell a missing product from an
// unreachable backend.
func (c *Client) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	var product domain.Product
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&product).
		Get(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return nil, &NetworkError{Op: "get product", Err: err}
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, &NetworkError{Op: "get product", Status: resp.StatusCode(), Err: domain.ErrNotFound}
	}
	if resp.IsError() {
		return nil, &NetworkError{Op: "get product", Status: resp.StatusCode()}
	}
	return &product, nil
}

// Chat posts the full logical transcript and returns the assistant's
// reply plus recommendation references. The backend is stateless, so
// the entire history travels on every turn.
func (c *Client) Chat(ctx context.Context, messages []domain.ChatMessage) (*domain.ChatResponse, error) {
	var result domain.ChatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(domain.ChatRequest{Messages: messages}).
		SetResult(&result).
		Post("/chat/")
	if err != nil {
		return nil, &NetworkError{Op: "chat", Err: err}
	}
	if resp.IsError() {
		return nil, &NetworkError{Op: "chat", Status: resp.StatusCode()}
	}
	return &result, nil
}
