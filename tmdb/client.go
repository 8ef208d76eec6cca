package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the TMDB v3 API root
	DefaultBaseURL = "https://api.themoviedb.org/3"
	// DefaultLanguage is sent as the language parameter on listing requests
	DefaultLanguage = "en-US"

	searchEndpoint   = "/search/movie"
	discoverEndpoint = "/discover/movie"
	authEndpoint     = "/authentication"
)

// Client represents a TMDB API client
type Client struct {
	baseURL    string
	token      string
	language   string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new TMDB client. An empty token is accepted so callers can
// report a missing credential themselves; see HasCredential.
func NewClient(baseURL, token string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid base URL: %v", ErrInvalidConfig, err)
	}

	client := &Client{
		baseURL:    baseURL,
		token:      strings.TrimSpace(token),
		language:   DefaultLanguage,
		httpClient: &http.Client{},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// HasCredential reports whether a bearer token is configured
func (c *Client) HasCredential() bool {
	return c.token != ""
}

// SearchURL builds the search endpoint for a text query and 1-based page
func (c *Client) SearchURL(query string, page int) string {
	params := url.Values{}
	params.Set("query", query)
	params.Set("language", c.language)
	params.Set("page", strconv.Itoa(page))
	return c.endpoint(searchEndpoint, params)
}

// DiscoverURL builds the popularity-sorted discover endpoint for a 1-based page
func (c *Client) DiscoverURL(page int) string {
	params := url.Values{}
	params.Set("sort_by", "popularity.desc")
	params.Set("language", c.language)
	params.Set("page", strconv.Itoa(page))
	return c.endpoint(discoverEndpoint, params)
}

// SearchMovies fetches one page of movies matching query
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*PageResponse, error) {
	var resp PageResponse
	if err := c.getJSON(ctx, c.SearchURL(query, page), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DiscoverMovies fetches one page of movies ordered by popularity
func (c *Client) DiscoverMovies(ctx context.Context, page int) (*PageResponse, error) {
	var resp PageResponse
	if err := c.getJSON(ctx, c.DiscoverURL(page), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TestConnection verifies the token against the authentication endpoint
func (c *Client) TestConnection(ctx context.Context) error {
	var resp authResponse
	if err := c.getJSON(ctx, c.endpoint(authEndpoint, nil), &resp); err != nil {
		return err
	}
	if !resp.Success {
		return &APIError{
			StatusCode: http.StatusUnauthorized,
			Message:    resp.StatusMessage,
		}
	}

	c.logger.Debug().Msg("Successfully connected to TMDB")
	return nil
}

func (c *Client) endpoint(path string, params url.Values) string {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// getJSON performs an authenticated GET and decodes the body into out
func (c *Client) getJSON(ctx context.Context, requestURL string, out any) error {
	body, err := c.doRequest(ctx, http.MethodGet, requestURL)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// doRequest performs an HTTP request with authentication
func (c *Client) doRequest(ctx context.Context, method, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("method", method).
		Str("url", requestURL).
		Msg("Making TMDB API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			URL:        requestURL,
			Body:       string(body),
		}
	}

	return body, nil
}
