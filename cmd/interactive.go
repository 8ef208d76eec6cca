package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/cinegrid/catalog"
	"github.com/s0up4200/cinegrid/filter"
)

const interactiveHelp = `Type a title to search, or an empty line to browse popular movies.
  :N       show details for movie N
  :close   close the details view
  :q       quit`

// interactiveCmd runs a read-eval loop over stdin
var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Search interactively",
	Long: `Read queries line by line. Each new query supersedes the previous one:
a response to an older query is discarded if a newer query was issued.

` + interactiveHelp,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	interactiveCmd.Flags().StringVarP(&whereExpr, "where", "w", "", "filter expression applied to every result")
	interactiveCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	rootCmd.AddCommand(interactiveCmd)
}

// console serializes writes from the input loop and query workers
type console struct {
	mu  sync.Mutex
	out io.Writer
}

func (c *console) print(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprint(c.out, s)
}

func (c *console) println(s string) {
	c.print(s + "\n")
}

func runInteractive(cmd *cobra.Command, args []string) error {
	expr, err := getFilterExpression()
	if err != nil {
		return err
	}
	var where filter.CompiledFilter
	if expr != "" {
		if where, err = compiler.Compile(expr); err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	out := &console{out: cmd.OutOrStdout()}
	session := catalog.NewSession()

	g, ctx := errgroup.WithContext(cmd.Context())

	// The reader is not part of the group: a blocked stdin read cannot be
	// interrupted and must not hold up shutdown.
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			logger.Error().Err(err).Msg("Failed to read input")
		}
	}()

	cancelPrevious := func() {}
	search := func(query string) {
		cancelPrevious()
		queryCtx, cancel := context.WithCancel(ctx)
		cancelPrevious = cancel
		ticket := session.Begin()

		g.Go(func() error {
			defer cancel()

			movies, err := fetcher.Fetch(queryCtx, query)
			if err == nil && where != nil {
				filtered, filterErr := filter.Apply(where, movies)
				if filterErr != nil {
					logger.Warn().Err(filterErr).Msg("Filter failed, showing unfiltered results")
				} else {
					movies = filtered
				}
			}

			result := catalog.NewResult(query, movies, err)
			if !session.Commit(ticket, result) {
				logger.Debug().Str("query", query).Uint64("ticket", uint64(ticket)).Msg("Discarding stale result")
				return nil
			}

			out.println(formatter.FormatResult(result))
			return nil
		})
	}

	out.println(interactiveHelp)
	for {
		select {
		case <-ctx.Done():
			cancelPrevious()
			return g.Wait()

		case line, ok := <-lines:
			if !ok {
				// End of input: let the last query finish
				return g.Wait()
			}

			input := strings.TrimSpace(line)
			switch {
			case input == ":q" || input == ":quit":
				cancelPrevious()
				return g.Wait()

			case input == ":close":
				session.ClearSelection()
				if current, ok := session.Current(); ok {
					out.println(formatter.FormatResult(current))
				}

			case strings.HasPrefix(input, ":"):
				n, err := strconv.Atoi(strings.TrimPrefix(input, ":"))
				if err != nil {
					out.println("Unknown command " + input)
					out.println(interactiveHelp)
					continue
				}
				movie, ok := session.Select(n)
				if !ok {
					out.println(fmt.Sprintf("No movie at position %d", n))
					continue
				}
				out.print(formatter.FormatMovieDetail(movie))

			default:
				search(input)
			}
		}
	}
}
