package catalog

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/s0up4200/cinegrid/tmdb"
)

// Page counts are fixed: browsing pulls two pages of popular movies, a text
// search pulls one.
const (
	BrowsePages = 2
	SearchPages = 1
)

// MovieSource is the subset of the TMDB client the fetcher needs
type MovieSource interface {
	HasCredential() bool
	SearchMovies(ctx context.Context, query string, page int) (*tmdb.PageResponse, error)
	DiscoverMovies(ctx context.Context, page int) (*tmdb.PageResponse, error)
}

// Ensure the TMDB client satisfies MovieSource at compile time.
var _ MovieSource = (*tmdb.Client)(nil)

// FetcherOption configures a Fetcher
type FetcherOption func(*Fetcher)

// WithRetryPolicy sets the per-request retry policy
func WithRetryPolicy(policy tmdb.Policy) FetcherOption {
	return func(f *Fetcher) {
		f.policy = policy
	}
}

// WithPosterResolver sets how poster paths become URLs
func WithPosterResolver(posters PosterResolver) FetcherOption {
	return func(f *Fetcher) {
		f.posters = posters
	}
}

// Fetcher resolves queries into movie summaries
type Fetcher struct {
	source  MovieSource
	policy  tmdb.Policy
	posters PosterResolver
	logger  zerolog.Logger
}

// NewFetcher creates a Fetcher backed by source
func NewFetcher(source MovieSource, logger zerolog.Logger, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		source:  source,
		policy:  tmdb.DefaultPolicy(),
		posters: DefaultPosterResolver(),
		logger:  logger,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch returns the movies for query, or popular movies when query is empty.
// On failure the returned error is always a *FetchError and no movies are
// returned.
func (f *Fetcher) Fetch(ctx context.Context, query string) ([]MovieSummary, error) {
	if f.source == nil || !f.source.HasCredential() {
		f.logger.Warn().Msg("TMDB API token is not configured")
		return nil, errConfigurationMissing()
	}

	pages := SearchPages
	if query == "" {
		pages = BrowsePages
	}

	var movies []MovieSummary
	for page := 1; page <= pages; page++ {
		resp, err := f.fetchPage(ctx, query, page)
		if err != nil {
			fetchErr := Classify(err)
			f.logger.Warn().
				Err(err).
				Str("query", query).
				Int("page", page).
				Str("kind", fetchErr.Kind.String()).
				Msg("Failed to fetch movies")
			return nil, fetchErr
		}

		if resp.IsEmpty() {
			if page == 1 {
				return nil, errNoResults(query)
			}
			break
		}

		for _, result := range resp.Results {
			movies = append(movies, f.summarize(result))
		}

		f.logger.Debug().
			Str("query", query).
			Int("page", page).
			Int("count", len(resp.Results)).
			Int("total", len(movies)).
			Msg("Retrieved movies from TMDB")
	}

	return movies, nil
}

// fetchPage retrieves one page under the retry policy
func (f *Fetcher) fetchPage(ctx context.Context, query string, page int) (*tmdb.PageResponse, error) {
	return tmdb.Retry(ctx, f.policy, func(ctx context.Context, attempt int) (*tmdb.PageResponse, error) {
		var (
			resp *tmdb.PageResponse
			err  error
		)
		if query == "" {
			resp, err = f.source.DiscoverMovies(ctx, page)
		} else {
			resp, err = f.source.SearchMovies(ctx, query, page)
		}
		if err != nil {
			f.logger.Debug().
				Err(err).
				Int("page", page).
				Int("attempt", attempt).
				Int("max_attempts", f.policy.Attempts).
				Msg("TMDB request attempt failed")
		}
		return resp, err
	})
}

func (f *Fetcher) summarize(result tmdb.MovieResult) MovieSummary {
	return MovieSummary{
		ID:        result.ID,
		Title:     result.Title,
		Overview:  result.Overview,
		PosterURL: f.posters.Resolve(result.PosterPath),
	}
}
