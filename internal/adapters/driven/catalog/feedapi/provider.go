// Package feedapi implements driven.CatalogProvider against a remote
// affiliate feed HTTP API returning JSON product rows.
package feedapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
	"github.com/madkurv-labs/varesearch-cli/internal/core/ports/driven"
)

// Ensure Provider implements the interfaces.
var (
	_ driven.CatalogProvider = (*Provider)(nil)
	_ driven.FeedSource      = (*Provider)(nil)
)

// Config holds the connection settings for one feed API.
type Config struct {
	// Name identifies the provider in logs and results.
	Name string

	// BaseURL is the feed endpoint, e.g. "https://feed.example.dk".
	BaseURL string

	// APIKey is the static feed access key; sent as a query
	// parameter as the affiliate networks expect.
	APIKey string

	// RequestsPerSecond throttles outgoing calls. Zero selects a
	// conservative default.
	RequestsPerSecond float64

	// BurstSize is the limiter burst; zero selects the default.
	BurstSize int

	// Timeout bounds one HTTP request; zero selects the default.
	Timeout time.Duration
}

// Conservative defaults; feed endpoints tend to rate-limit hard.
const (
	defaultRequestsPerSecond = 4.0
	defaultBurstSize         = 4
	defaultTimeout           = 15 * time.Second
)

// feedProduct is one JSON row as the feed API returns it.
type feedProduct struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	ImageURL    string   `json:"image_url"`
	Price       int64    `json:"price"`
	OldPrice    int64    `json:"old_price"`
	InStock     bool     `json:"in_stock"`
	Tags        []string `json:"tags"`
}

// Provider fetches products from one remote feed API.
type Provider struct {
	cfg     Config
	client  *http.Client
	limiter *rate.Limiter
}

// NewProvider creates a feed API provider.
func NewProvider(cfg Config) *Provider {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	burst := cfg.BurstSize
	if burst <= 0 {
		burst = defaultBurstSize
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Provider{
		cfg:     cfg,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Name returns the provider identifier.
func (p *Provider) Name() string { return p.cfg.Name }

// FetchProducts queries the feed API for a window of products
// loosely matching the query. Blocks on the rate limiter first so a
// burst of searches cannot exhaust the feed quota.
func (p *Provider) FetchProducts(ctx context.Context, query string, skip, limit int) ([]domain.Product, error) {
	params := url.Values{}
	params.Set("query", query)
	return p.fetch(ctx, params, skip, limit)
}

// ListProducts walks the full feed without a query filter. Used by
// the sync path to rebuild the local snapshot.
func (p *Provider) ListProducts(ctx context.Context, skip, limit int) ([]domain.Product, error) {
	return p.fetch(ctx, url.Values{}, skip, limit)
}

func (p *Provider) fetch(ctx context.Context, params url.Values, skip, limit int) ([]domain.Product, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint, err := url.Parse(p.cfg.BaseURL + "/products")
	if err != nil {
		return nil, fmt.Errorf("parse feed url: %w", err)
	}

	params.Set("skip", strconv.Itoa(skip))
	params.Set("limit", strconv.Itoa(limit))
	if p.cfg.APIKey != "" {
		params.Set("key", p.cfg.APIKey)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", p.cfg.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed %s returned status %d", p.cfg.Name, resp.StatusCode)
	}

	var rows []feedProduct
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode feed %s response: %w", p.cfg.Name, err)
	}

	products := make([]domain.Product, len(rows))
	for i, row := range rows {
		products[i] = domain.Product{
			ID:          row.ID,
			Provider:    p.cfg.Name,
			Name:        row.Name,
			Category:    row.Category,
			Brand:       row.Brand,
			Description: row.Description,
			URL:         row.URL,
			ImageURL:    row.ImageURL,
			Price:       row.Price,
			OldPrice:    row.OldPrice,
			InStock:     row.InStock,
			Tags:        row.Tags,
		}
	}

	return products, nil
}
