// Package tmdb provides a small client for the read-only parts of the TMDB v3 API
// used by cinegrid.
//
// # Architecture
//
// The package is organized into a few components:
//
//   - Client: bearer-authenticated JSON requests against the search and discover endpoints
//   - Types: raw payloads returned by TMDB (PageResponse, MovieResult)
//   - Retry: a bounded retry combinator with a fixed delay between attempts
//   - Errors: APIError carrying the HTTP status code of a failed request
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := tmdb.NewClient(
//		tmdb.DefaultBaseURL,
//		os.Getenv("TMDB_API_TOKEN"),
//		logger,
//		tmdb.WithLanguage("en-US"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	page, err := tmdb.Retry(ctx, tmdb.DefaultPolicy(), func(ctx context.Context, attempt int) (*tmdb.PageResponse, error) {
//		return client.SearchMovies(ctx, "batman", 1)
//	})
//
// # Error Handling
//
// Any non-2xx response is returned as *APIError. Callers classify it by status
// code rather than by message:
//
//	var apiErr *tmdb.APIError
//	if errors.As(err, &apiErr) && apiErr.IsRateLimited() {
//		// back off
//	}
package tmdb
