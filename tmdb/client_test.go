package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		baseURL string
		token   string
		wantErr bool
		wantURL string
	}{
		{
			name:    "valid config",
			baseURL: DefaultBaseURL,
			token:   "token",
			wantURL: DefaultBaseURL,
		},
		{
			name:    "trailing slash trimmed",
			baseURL: "https://api.example.com/3/",
			token:   "token",
			wantURL: "https://api.example.com/3",
		},
		{
			name:    "empty token allowed",
			baseURL: DefaultBaseURL,
			wantURL: DefaultBaseURL,
		},
		{
			name:    "missing base URL",
			baseURL: "",
			token:   "token",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.baseURL, tt.token, logger)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, client.baseURL)
			assert.Equal(t, tt.token != "", client.HasCredential())
		})
	}
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient(DefaultBaseURL, "token", logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient(DefaultBaseURL, "token", logger, WithHTTPClient(custom))
		require.NoError(t, err)
		assert.Same(t, custom, client.httpClient)
	})

	t.Run("with language", func(t *testing.T) {
		client, err := NewClient(DefaultBaseURL, "token", logger, WithLanguage("de-DE"))
		require.NoError(t, err)
		assert.Equal(t, "de-DE", client.language)
	})
}

func TestEndpointURLs(t *testing.T) {
	client, err := NewClient("https://api.example.com/3", "token", zerolog.Nop())
	require.NoError(t, err)

	t.Run("search", func(t *testing.T) {
		u, err := url.Parse(client.SearchURL("star wars & more", 1))
		require.NoError(t, err)
		assert.Equal(t, "/3/search/movie", u.Path)
		assert.Equal(t, "star wars & more", u.Query().Get("query"))
		assert.Equal(t, "en-US", u.Query().Get("language"))
		assert.Equal(t, "1", u.Query().Get("page"))
	})

	t.Run("discover", func(t *testing.T) {
		u, err := url.Parse(client.DiscoverURL(2))
		require.NoError(t, err)
		assert.Equal(t, "/3/discover/movie", u.Path)
		assert.Equal(t, "popularity.desc", u.Query().Get("sort_by"))
		assert.Equal(t, "en-US", u.Query().Get("language"))
		assert.Equal(t, "2", u.Query().Get("page"))
	})
}

func TestSearchMovies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "batman", r.URL.Query().Get("query"))

		json.NewEncoder(w).Encode(map[string]any{
			"page": 1,
			"results": []map[string]any{
				{"id": 268, "title": "Batman", "overview": "The Dark Knight", "poster_path": "/batman.jpg"},
				{"id": 364, "title": "Batman Returns", "poster_path": nil},
			},
			"total_pages":   1,
			"total_results": 2,
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "secret", zerolog.Nop())
	require.NoError(t, err)

	page, err := client.SearchMovies(context.Background(), "batman", 1)
	require.NoError(t, err)
	require.Len(t, page.Results, 2)
	assert.Equal(t, 268, page.Results[0].ID)
	assert.Equal(t, "/batman.jpg", page.Results[0].PosterPath)
	assert.Empty(t, page.Results[1].PosterPath)
	assert.Empty(t, page.Results[1].Overview)
	assert.False(t, page.IsEmpty())
}

func TestDoRequestStatusErrors(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		unauthorized  bool
		rateLimited   bool
		wantInMessage string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, unauthorized: true, wantInMessage: "401"},
		{name: "rate limited", status: http.StatusTooManyRequests, rateLimited: true, wantInMessage: "429"},
		{name: "server error", status: http.StatusBadGateway, wantInMessage: "502"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"success":false}`))
			}))
			defer server.Close()

			client, err := NewClient(server.URL, "secret", zerolog.Nop())
			require.NoError(t, err)

			_, err = client.DiscoverMovies(context.Background(), 1)
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.unauthorized, apiErr.IsUnauthorized())
			assert.Equal(t, tt.rateLimited, apiErr.IsRateLimited())
			assert.Contains(t, err.Error(), tt.wantInMessage)

			code, ok := StatusCode(err)
			assert.True(t, ok)
			assert.Equal(t, tt.status, code)
		})
	}
}

func TestDoRequestBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "secret", zerolog.Nop())
	require.NoError(t, err)

	_, err = client.DiscoverMovies(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse response")

	_, ok := StatusCode(err)
	assert.False(t, ok)
}

func TestTestConnection(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/authentication", r.URL.Path)
			w.Write([]byte(`{"success":true,"status_code":1,"status_message":"Success."}`))
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "secret", zerolog.Nop())
		require.NoError(t, err)
		assert.NoError(t, client.TestConnection(context.Background()))
	})

	t.Run("rejected token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"status_code":7,"status_message":"Invalid API key"}`))
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "bad", zerolog.Nop())
		require.NoError(t, err)

		err = client.TestConnection(context.Background())
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.IsUnauthorized())
	})
}

func TestAPIError(t *testing.T) {
	err := &APIError{StatusCode: 404, Message: "Not Found"}
	assert.Equal(t, "tmdb API error: status 404: Not Found", err.Error())

	err = &APIError{StatusCode: 500}
	assert.Equal(t, "tmdb API error: status 500", err.Error())
}
