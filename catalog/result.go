package catalog

// Result is what the presentation layer shows for one query: either movies or
// a message, never both.
type Result struct {
	Query   string
	Movies  []MovieSummary
	Err     *FetchError
	Message string
}

// NewResult builds a Result from the return values of Fetcher.Fetch
func NewResult(query string, movies []MovieSummary, err error) Result {
	if err != nil {
		fetchErr := Classify(err)
		return Result{
			Query:   query,
			Err:     fetchErr,
			Message: fetchErr.Message,
		}
	}
	return Result{
		Query:  query,
		Movies: movies,
	}
}

// OK reports whether the result carries movies
func (r Result) OK() bool {
	return r.Err == nil
}

// Kind returns the error kind, if any
func (r Result) Kind() (ErrorKind, bool) {
	if r.Err == nil {
		return 0, false
	}
	return r.Err.Kind, true
}

// Select returns the movie at 1-based position n
func (r Result) Select(n int) (MovieSummary, bool) {
	if n < 1 || n > len(r.Movies) {
		return MovieSummary{}, false
	}
	return r.Movies[n-1], true
}
