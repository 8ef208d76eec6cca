// Package filter narrows a fetched movie list with expr-lang expressions such as
//
//	containsFold(Title, "batman") and HasPoster
//
// Filters run on movies already returned by a fetch and never issue requests.
package filter

import (
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/cinegrid/catalog"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// Option configures an expr compiler
type Option func(*exprCompiler)

// WithCache keeps up to size compiled expressions
func WithCache(size int) Option {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newProgramCache(size)
		}
	}
}

// WithCustomFunctions adds helper functions to the expression environment
func WithCustomFunctions(funcs map[string]any) Option {
	return func(c *exprCompiler) {
		maps.Copy(c.helpers, funcs)
	}
}

type exprCompiler struct {
	helpers map[string]any
	cache   *programCache
}

// NewCompiler creates an expr-based filter compiler
func NewCompiler(opts ...Option) Compiler {
	c := &exprCompiler{
		helpers: helperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(environment(c.helpers, catalog.MovieSummary{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helpers,
	}

	if c.cache != nil {
		c.cache.put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.len()
	}
	return 0
}

// environment builds the variables an expression can reference
func environment(helpers map[string]any, movie catalog.MovieSummary) map[string]any {
	env := make(map[string]any, len(helpers)+5)
	maps.Copy(env, helpers)

	env["ID"] = movie.ID
	env["Title"] = movie.Title
	env["Overview"] = movie.Overview
	env["PosterURL"] = movie.PosterURL
	env["HasPoster"] = movie.HasPoster()

	return env
}

// Match evaluates the filter against a movie
func (f *exprFilter) Match(movie catalog.MovieSummary) (bool, error) {
	env := environment(f.helpers, movie)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			MovieTitle: movie.Title,
			Err:        err,
		}
	}

	// AsBool at compile time guarantees the type
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

func helperFunctions() map[string]any {
	return map[string]any{
		"containsFold": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"hasPrefixFold": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"hasSuffixFold": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}
