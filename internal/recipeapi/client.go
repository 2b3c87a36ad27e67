// Package recipeapi implements service.RecipeService over the recipe backend's JSON API.
package recipeapi

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Veraticus/pantry-genius/internal/model"
	"github.com/Veraticus/pantry-genius/internal/service"
)

// DefaultBaseURL is the public recipe backend.
const DefaultBaseURL = "https://pantrygeniusbackend.onrender.com"

// RecipesPath is the collection endpoint for both listing and creating recipes.
const RecipesPath = "/api/recipes"

// maxErrorBody caps how much of a failed response is kept for the error message.
const maxErrorBody = 512

// Compile-time interface check.
var _ service.RecipeService = (*Client)(nil)

// Client talks to a recipe backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. A nil client keeps
// the default. Options applied after it change a copy, never hc itself.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRootCAs trusts pool for HTTPS connections, for backends serving a
// self-signed certificate.
func WithRootCAs(pool *x509.CertPool) Option {
	return func(c *Client) {
		hc := c.copyHTTPClient()
		hc.Transport = &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			TLSClientConfig: &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12},
		}
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		hc := c.copyHTTPClient()
		hc.Timeout = timeout
		c.httpClient = hc
	}
}

// copyHTTPClient returns a shallow copy of the current HTTP client so an
// option never mutates a client supplied by the caller.
func (c *Client) copyHTTPClient() *http.Client {
	hc := *c.httpClient
	return &hc
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid recipe API URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid recipe API URL %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchAll returns every recipe the backend knows, in its order.
func (c *Client) FetchAll(ctx context.Context) ([]model.Recipe, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+RecipesPath, nil)
	if err != nil {
		return nil, service.NewNetworkError(service.OpFetchAll, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("Requesting recipes", "url", req.URL.String())

	var recipes []model.Recipe
	if err := c.do(req, service.OpFetchAll, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// Create posts a draft and returns the recipe as stored by the backend.
func (c *Client) Create(ctx context.Context, draft model.Draft) (model.Recipe, error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return model.Recipe{}, service.NewNetworkError(service.OpCreate, 0, fmt.Errorf("failed to encode draft: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+RecipesPath, bytes.NewReader(body))
	if err != nil {
		return model.Recipe{}, service.NewNetworkError(service.OpCreate, 0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	slog.Debug("Creating recipe", "name", draft.Name, "ingredients", len(draft.Ingredients))

	var recipe model.Recipe
	if err := c.do(req, service.OpCreate, &recipe); err != nil {
		return model.Recipe{}, err
	}
	return recipe, nil
}

func (c *Client) do(req *http.Request, op string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return service.NewNetworkError(op, 0, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("Failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var cause error
		if msg := strings.TrimSpace(string(body)); msg != "" {
			cause = errors.New(msg)
		}
		return service.NewNetworkError(op, resp.StatusCode, cause)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return service.NewNetworkError(op, resp.StatusCode, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}
