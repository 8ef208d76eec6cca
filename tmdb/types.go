package tmdb

// MovieResult is a single entry of a search or discover page
type MovieResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview,omitempty"`
	PosterPath  string  `json:"poster_path,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	Popularity  float64 `json:"popularity,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
}

// PageResponse is one page of a paginated movie listing
type PageResponse struct {
	Page         int           `json:"page"`
	Results      []MovieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// IsEmpty reports whether the page carries no movies
func (p *PageResponse) IsEmpty() bool {
	return p == nil || len(p.Results) == 0
}

// authResponse is returned by the /authentication endpoint
type authResponse struct {
	Success       bool   `json:"success"`
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
