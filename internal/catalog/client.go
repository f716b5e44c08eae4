package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/ppiankov/notmytype/internal/cache"
	"github.com/ppiankov/notmytype/internal/logging"
	"github.com/ppiankov/notmytype/internal/model"
	"github.com/ppiankov/notmytype/internal/worker"
)

// categories the catalog exposes for filtering
var categories = []string{"serif", "sans-serif", "display", "handwriting", "monospace"}

// Client looks up font families in the Google Fonts webfonts API.
// Every failure degrades to an empty list; nothing here returns an error to callers.
type Client struct {
	fetcher      *Fetcher
	cache        cache.Cache
	limiter      *worker.Limiter
	logger       logging.Logger
	apiURL       string
	apiKey       string
	sort         string
	popularLimit int
}

// Option customizes a Client
type Option func(*Client)

// WithCache stores decoded catalog responses in c
func WithCache(c cache.Cache) Option {
	return func(cl *Client) {
		cl.cache = c
	}
}

// WithLimiter paces outgoing requests
func WithLimiter(l *worker.Limiter) Option {
	return func(cl *Client) {
		cl.limiter = l
	}
}

// WithLogger sets the logger used for fail-soft conditions
func WithLogger(l logging.Logger) Option {
	return func(cl *Client) {
		cl.logger = l
	}
}

// NewClient creates a catalog client from cfg
func NewClient(cfg model.CatalogConfig, opts ...Option) *Client {
	c := &Client{
		fetcher:      NewFetcher(cfg.Timeout, cfg.UserAgent, cfg.MaxBodyBytes, cfg.HTTPProxy, cfg.HTTPSProxy),
		cache:        cache.Noop{},
		logger:       logging.Nop(),
		apiURL:       cfg.APIURL,
		apiKey:       cfg.APIKey,
		sort:         cfg.Sort,
		popularLimit: cfg.PopularLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type webfontsResponse struct {
	Items []model.CatalogFont `json:"items"`
}

// Fonts returns the full catalog in API order (popularity by default)
func (c *Client) Fonts(ctx context.Context) []model.CatalogFont {
	if c.apiKey == "" {
		c.logger.Warn("catalog api key not configured, returning no fonts")
		return []model.CatalogFont{}
	}

	reqURL, err := c.requestURL()
	if err != nil {
		c.logger.Error("catalog url invalid", "url", c.apiURL, "error", err)
		return []model.CatalogFont{}
	}

	key := cache.Key("catalog", reqURL)
	var fonts []model.CatalogFont
	if cache.GetJSON(c.cache, key, &fonts) {
		c.logger.Debug("catalog cache hit", "fonts", len(fonts))
		return fonts
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, reqURL); err != nil {
			c.logger.Warn("catalog rate limit wait aborted", "error", err)
			return []model.CatalogFont{}
		}
	}

	body, err := c.fetcher.FetchWithRetry(ctx, reqURL)
	if err != nil {
		c.logger.Error("catalog fetch failed", "error", err)
		return []model.CatalogFont{}
	}

	var resp webfontsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("catalog response malformed", "error", err)
		return []model.CatalogFont{}
	}
	if resp.Items == nil {
		resp.Items = []model.CatalogFont{}
	}

	if err := cache.SetJSON(c.cache, key, resp.Items, 0); err != nil {
		c.logger.Warn("catalog cache write failed", "error", err)
	}

	c.logger.Debug("catalog fetched", "fonts", len(resp.Items))
	return resp.Items
}

// Search returns the most popular fonts for an empty query, otherwise the
// families containing query (case-insensitive)
func (c *Client) Search(ctx context.Context, query string) []model.CatalogFont {
	fonts := c.Fonts(ctx)

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		if c.popularLimit > 0 && len(fonts) > c.popularLimit {
			return fonts[:c.popularLimit]
		}
		return fonts
	}

	matched := []model.CatalogFont{}
	for _, f := range fonts {
		if strings.Contains(strings.ToLower(f.Family), query) {
			matched = append(matched, f)
		}
	}
	return matched
}

// FilterByCategory keeps fonts of the given catalog category; empty keeps all
func FilterByCategory(fonts []model.CatalogFont, category string) []model.CatalogFont {
	if category == "" {
		return fonts
	}

	filtered := []model.CatalogFont{}
	for _, f := range fonts {
		if f.Category == category {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// Categories lists the catalog's category names
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

func (c *Client) requestURL() (string, error) {
	u, err := url.Parse(c.apiURL)
	if err != nil {
		return "", fmt.Errorf("parse api url: %w", err)
	}

	q := u.Query()
	q.Set("key", c.apiKey)
	if c.sort != "" {
		q.Set("sort", c.sort)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
