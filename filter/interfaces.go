package filter

import "github.com/s0up4200/cinegrid/catalog"

// CompiledFilter is a pre-compiled expression ready for evaluation
type CompiledFilter interface {
	// Match reports whether movie satisfies the expression
	Match(movie catalog.MovieSummary) (bool, error)

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}
