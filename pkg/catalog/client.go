package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client represents a product catalog API client
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new catalog client for the given base URL
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("catalog base URL is required")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// ListProducts fetches products from the catalog
func (c *Client) ListProducts(ctx context.Context, opts ListOptions) ([]Product, error) {
	query := url.Values{}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Sort != "" {
		query.Set("sort", opts.Sort)
	}

	endpoint := "/products"
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	body, err := c.doRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var products []Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("failed to unmarshal products response: %w", err)
	}

	return products, nil
}

// GetProduct fetches a single product by its catalog ID
func (c *Client) GetProduct(ctx context.Context, id uint) (*Product, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/products/%d", id))
	if err != nil {
		return nil, err
	}

	// The upstream returns 200 with an empty or null body for unknown IDs.
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrProductNotFound
	}

	var product Product
	if err := json.Unmarshal(body, &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product response: %w", err)
	}

	return &product, nil
}

// ListCategories fetches all category names
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	body, err := c.doRequest(ctx, "/products/categories")
	if err != nil {
		return nil, err
	}

	var categories []string
	if err := json.Unmarshal(body, &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories response: %w", err)
	}

	return categories, nil
}

// ListByCategory fetches products belonging to one category
func (c *Client) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	endpoint := "/products/category/" + url.PathEscape(category)

	body, err := c.doRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var products []Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("failed to unmarshal category products response: %w", err)
	}

	return products, nil
}

// doRequest performs a GET request against the catalog API
func (c *Client) doRequest(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrProductNotFound
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrUpstream, resp.StatusCode)
	}
}
