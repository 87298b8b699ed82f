package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the Mapbox forward/reverse geocoding endpoint.
	DefaultBaseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"

	// DefaultLimit caps how many candidates a single lookup returns.
	DefaultLimit = 5
)

type Config struct {
	// AccessToken is the API credential. It is injected here rather than read
	// from the process environment so the client is testable without
	// environment mutation. An empty token is not rejected; the remote API
	// answers it with an auth failure.
	AccessToken string

	// BaseURL overrides DefaultBaseURL, mainly for tests.
	BaseURL string

	// Limit overrides DefaultLimit when > 0.
	Limit int

	// HTTPClient overrides http.DefaultClient.
	HTTPClient *http.Client
}

// Client talks to the remote geocoding API. It does no caching, no retries
// and no rate limiting; every call is a single GET.
type Client struct {
	baseURL     string
	accessToken string
	limit       int
	session     *http.Client
	log         *zap.Logger
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	limit := cfg.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	session := cfg.HTTPClient
	if session == nil {
		session = http.DefaultClient
	}

	return &Client{
		baseURL:     baseURL,
		accessToken: cfg.AccessToken,
		limit:       limit,
		session:     session,
		log:         log,
	}
}

// Forward resolves free-text input into up to limit candidate places.
// Autocomplete is enabled so prefixes match while the user is still typing.
// An empty features array is an empty result, not an error.
func (c *Client) Forward(ctx context.Context, query string) ([]Feature, error) {
	endpoint := fmt.Sprintf("%s/%s.json", c.baseURL, url.PathEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create forward geocode request: %w", err)
	}

	q := req.URL.Query()
	q.Set("autocomplete", "true")
	q.Set("limit", strconv.Itoa(c.limit))
	q.Set("access_token", c.accessToken)
	req.URL.RawQuery = q.Encode()

	return c.do(req)
}

// Reverse looks up the places containing the given coordinate.
func (c *Client) Reverse(ctx context.Context, lon, lat float64) ([]Feature, error) {
	endpoint := fmt.Sprintf("%s/%s,%s.json", c.baseURL,
		strconv.FormatFloat(lon, 'f', -1, 64),
		strconv.FormatFloat(lat, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create reverse geocode request: %w", err)
	}

	q := req.URL.Query()
	q.Set("access_token", c.accessToken)
	req.URL.RawQuery = q.Encode()

	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]Feature, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var decoded geocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}

	features := decoded.toFeatures()
	c.log.Debug("geocode lookup",
		zap.String("path", req.URL.Path),
		zap.Int("results", len(features)))

	return features, nil
}
