package catalog

import (
	"fmt"
	"strings"
)

// ConsoleFormatter renders movie lists and details for a terminal
type ConsoleFormatter struct {
	// OverviewWidth truncates overviews in list output. Zero hides them.
	OverviewWidth int
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{OverviewWidth: 72}
}

// FormatMovieList formats movies as a numbered list
func (f *ConsoleFormatter) FormatMovieList(movies []MovieSummary) string {
	if len(movies) == 0 {
		return "No movies found"
	}

	var sb strings.Builder

	sb.WriteString("\nMovie")
	if len(movies) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(movies))

	width := len(fmt.Sprint(len(movies)))
	for i, movie := range movies {
		isLast := i == len(movies)-1
		prefix := "├"
		if isLast {
			prefix = "╰"
		}
		fmt.Fprintf(&sb, "%s── %*d. %s\n", prefix, width, i+1, movie.Title)

		if f.OverviewWidth > 0 && movie.Overview != "" {
			indent := "│   "
			if isLast {
				indent = "    "
			}
			fmt.Fprintf(&sb, "%s%s\n", indent, truncate(movie.Overview, f.OverviewWidth))
		}
	}

	return sb.String()
}

// FormatMovieDetail formats a single movie for the detail view
func (f *ConsoleFormatter) FormatMovieDetail(movie MovieSummary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s\n", movie.Title)
	sb.WriteString(strings.Repeat("━", max(len([]rune(movie.Title)), 20)))
	sb.WriteString("\n")

	if movie.Overview != "" {
		fmt.Fprintf(&sb, "%s\n", movie.Overview)
	} else {
		sb.WriteString("No overview available.\n")
	}

	fmt.Fprintf(&sb, "\nTMDB ID: %d\n", movie.ID)
	fmt.Fprintf(&sb, "Poster:  %s\n", movie.PosterURL)

	return sb.String()
}

// FormatResult formats either the movies or the message of a result
func (f *ConsoleFormatter) FormatResult(result Result) string {
	if !result.OK() {
		return result.Message
	}
	return f.FormatMovieList(result.Movies)
}

func truncate(s string, width int) string {
	runes := []rune(strings.Join(strings.Fields(s), " "))
	if len(runes) <= width {
		return string(runes)
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
