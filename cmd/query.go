package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/cinegrid/catalog"
	"github.com/s0up4200/cinegrid/filter"
)

var (
	whereExpr  string
	preset     string
	selectN    int
	jsonOutput bool
)

// browseCmd lists popular movies
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "List popular movies",
	Long:  `List the most popular movies on TMDB (two pages of results).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, "")
	},
}

// searchCmd searches movies by title
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search movies by title",
	Long:  `Search TMDB for movies matching the given text. All arguments are joined into one query.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, strings.Join(args, " "))
	},
}

func init() {
	for _, c := range []*cobra.Command{browseCmd, searchCmd} {
		c.Flags().StringVarP(&whereExpr, "where", "w", "", "filter expression applied to the results")
		c.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
		c.Flags().IntVarP(&selectN, "select", "s", 0, "show details for the Nth movie")
		c.Flags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
		rootCmd.AddCommand(c)
	}
}

// errFetchFailed marks a fetch that ended in an error the user already saw
var errFetchFailed = errors.New("fetch failed")

func runQuery(cmd *cobra.Command, query string) error {
	expr, err := getFilterExpression()
	if err != nil {
		return err
	}

	logger.Debug().Str("query", query).Str("filter", expr).Msg("Fetching movies")

	movies, err := fetcher.Fetch(cmd.Context(), query)
	result := catalog.NewResult(query, movies, err)

	out := cmd.OutOrStdout()
	if !result.OK() {
		fmt.Fprintln(out, result.Message)
		if kind, _ := result.Kind(); kind == catalog.KindNoResults {
			return nil
		}
		return fmt.Errorf("%w: %s", errFetchFailed, result.Err.Kind)
	}

	if expr != "" {
		result.Movies, err = filter.ParseAndApply(compiler, expr, result.Movies)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	if selectN != 0 {
		movie, ok := result.Select(selectN)
		if !ok {
			return fmt.Errorf("no movie at position %d (have %d)", selectN, len(result.Movies))
		}
		if jsonOutput {
			return writeJSON(out, movie)
		}
		fmt.Fprint(out, formatter.FormatMovieDetail(movie))
		return nil
	}

	if jsonOutput {
		return writeJSON(out, result.Movies)
	}
	fmt.Fprintln(out, formatter.FormatMovieList(result.Movies))
	return nil
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset
	if whereExpr != "" {
		return whereExpr, nil
	}

	if preset != "" {
		if expr, ok := cfg.Filter.Presets[strings.ToLower(preset)]; ok {
			return expr, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return "", nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
