package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/s0up4200/cinegrid/tmdb"
)

// ErrorKind classifies why a fetch produced no movies
type ErrorKind int

const (
	// KindTransientFailure is any failure not covered by another kind
	KindTransientFailure ErrorKind = iota
	// KindConfigurationMissing means no API token is configured
	KindConfigurationMissing
	// KindNoResults means the first page came back empty
	KindNoResults
	// KindUnauthorized means TMDB rejected the token
	KindUnauthorized
	// KindRateLimited means TMDB throttled the request
	KindRateLimited
)

// String returns the string representation of an ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case KindConfigurationMissing:
		return "configuration_missing"
	case KindNoResults:
		return "no_results"
	case KindUnauthorized:
		return "unauthorized"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "transient_failure"
	}
}

// User-facing messages
const (
	MsgConfigurationMissing = "TMDB API token is missing. Set TMDB_API_TOKEN or tmdb.api_token in the config file."
	MsgNoPopularMovies      = "No popular movies are available right now."
	MsgUnauthorized         = "Invalid TMDB API token. Please check your credentials."
	MsgRateLimited          = "Too many requests to TMDB. Please wait a moment and try again."
	MsgTransientFailure     = "Failed to fetch movies. Please try again later."
)

// FetchError is the error half of a fetch outcome. Message is safe to show to users.
type FetchError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *FetchError) Unwrap() error {
	return e.Err
}

func errConfigurationMissing() *FetchError {
	return &FetchError{Kind: KindConfigurationMissing, Message: MsgConfigurationMissing}
}

func errNoResults(query string) *FetchError {
	if query == "" {
		return &FetchError{Kind: KindNoResults, Message: MsgNoPopularMovies}
	}
	return &FetchError{
		Kind:    KindNoResults,
		Message: fmt.Sprintf("No movies found for %q.", query),
	}
}

// KindForStatus maps an HTTP status code to an ErrorKind
func KindForStatus(code int) ErrorKind {
	switch code {
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusTooManyRequests:
		return KindRateLimited
	default:
		return KindTransientFailure
	}
}

// Classify converts a request failure into a FetchError. FetchErrors pass through.
func Classify(err error) *FetchError {
	if err == nil {
		return nil
	}

	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr
	}

	kind := KindTransientFailure
	if code, ok := tmdb.StatusCode(err); ok {
		kind = KindForStatus(code)
	}

	return &FetchError{
		Kind:    kind,
		Message: messageFor(kind),
		Err:     err,
	}
}

func messageFor(kind ErrorKind) string {
	switch kind {
	case KindUnauthorized:
		return MsgUnauthorized
	case KindRateLimited:
		return MsgRateLimited
	case KindConfigurationMissing:
		return MsgConfigurationMissing
	default:
		return MsgTransientFailure
	}
}

// IsCanceled reports whether err came from a canceled or expired context
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
