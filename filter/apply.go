package filter

import "github.com/s0up4200/cinegrid/catalog"

// Apply returns the movies matching f in their original order. A nil filter
// matches everything.
func Apply(f CompiledFilter, movies []catalog.MovieSummary) ([]catalog.MovieSummary, error) {
	if f == nil {
		return movies, nil
	}

	matches := make([]catalog.MovieSummary, 0, len(movies))
	for _, movie := range movies {
		ok, err := f.Match(movie)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, movie)
		}
	}

	return matches, nil
}

// ParseAndApply compiles expression and applies it to movies
func ParseAndApply(compiler Compiler, expression string, movies []catalog.MovieSummary) ([]catalog.MovieSummary, error) {
	f, err := compiler.Compile(expression)
	if err != nil {
		return nil, err
	}
	return Apply(f, movies)
}
