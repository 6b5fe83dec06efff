package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopverse/storefront-backend/pkg/config"
	pkgerrors "github.com/shopverse/storefront-backend/pkg/errors"
)

// SourceClient fetches the product list from the upstream catalog API.
type SourceClient struct {
	httpClient *http.Client
	baseURL    string
	fetchLimit int
}

// SourceOption configures optional client behavior.
type SourceOption func(*SourceClient)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) SourceOption {
	return func(c *SourceClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewSourceClient builds the upstream catalog client.
func NewSourceClient(cfg config.CatalogConfig, opts ...SourceOption) (*SourceClient, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.SourceURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("catalog source url is required")
	}
	limit := cfg.FetchLimit
	if limit <= 0 {
		return nil, fmt.Errorf("catalog fetch limit must be positive")
	}

	client := &SourceClient{
		httpClient: &http.Client{Timeout: cfg.FetchTimeout},
		baseURL:    baseURL,
		fetchLimit: limit,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

type productListPayload struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

// FetchProducts retrieves the full product window the storefront browses.
func (c *SourceClient) FetchProducts(ctx context.Context) ([]Product, error) {
	endpoint := fmt.Sprintf("%s/products?%s", c.baseURL, url.Values{
		"limit": []string{strconv.Itoa(c.fetchLimit)},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build catalog request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch catalog")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("catalog source returned status %d", resp.StatusCode))
	}

	var payload productListPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode catalog payload")
	}

	return payload.Products, nil
}
