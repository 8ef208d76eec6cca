// Package catalog turns TMDB listings into the movie summaries cinegrid shows.
//
// Fetcher resolves a query into an ordered list of MovieSummary values, Session
// keeps only the newest query's result visible, and ConsoleFormatter renders
// lists and single-movie details.
package catalog

import "strings"

const (
	// DefaultImageBase is the poster host and size prefix
	DefaultImageBase = "https://image.tmdb.org/t/p/w500"
	// DefaultPlaceholder is used for movies without a poster
	DefaultPlaceholder = "/placeholder.png"
)

// MovieSummary is the display record for one movie. Values are built by
// Fetcher and passed around by value.
type MovieSummary struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Overview  string `json:"overview,omitempty"`
	PosterURL string `json:"posterUrl"`
}

// HasPoster reports whether PosterURL is an absolute image URL rather than the
// local placeholder path
func (m MovieSummary) HasPoster() bool {
	return strings.Contains(m.PosterURL, "://")
}

// PosterResolver maps TMDB poster path fragments to absolute URLs
type PosterResolver struct {
	ImageBase   string
	Placeholder string
}

// DefaultPosterResolver uses the w500 image size and the local placeholder
func DefaultPosterResolver() PosterResolver {
	return PosterResolver{
		ImageBase:   DefaultImageBase,
		Placeholder: DefaultPlaceholder,
	}
}

// Resolve prefixes path with the image base, or returns the placeholder when
// path is empty.
func (p PosterResolver) Resolve(path string) string {
	if path == "" {
		return p.placeholder()
	}
	return strings.TrimRight(p.base(), "/") + path
}

func (p PosterResolver) base() string {
	if p.ImageBase == "" {
		return DefaultImageBase
	}
	return p.ImageBase
}

func (p PosterResolver) placeholder() string {
	if p.Placeholder == "" {
		return DefaultPlaceholder
	}
	return p.Placeholder
}
