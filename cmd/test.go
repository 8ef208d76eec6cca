package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/cinegrid/catalog"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to TMDB",
	Long:  `Verify the configured API token against TMDB and show the effective settings.`,
	Args:  cobra.NoArgs,
	RunE:  runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if !tmdbClient.HasCredential() {
		fmt.Fprintln(out, catalog.MsgConfigurationMissing)
		return fmt.Errorf("%w: %s", errFetchFailed, catalog.KindConfigurationMissing)
	}

	fmt.Fprintf(out, "Testing connection to TMDB at %s...\n", cfg.TMDB.BaseURL)
	if err := tmdbClient.TestConnection(cmd.Context()); err != nil {
		fetchErr := catalog.Classify(err)
		fmt.Fprintln(out, "✗ "+fetchErr.Message)
		return fmt.Errorf("connection test failed: %w", err)
	}
	fmt.Fprintln(out, "✓ Connection successful!")

	fmt.Fprintf(out, "\nSettings:\n")
	fmt.Fprintf(out, "- Language: %s\n", cfg.TMDB.Language)
	fmt.Fprintf(out, "- Poster base: %s\n", cfg.TMDB.ImageBase)
	fmt.Fprintf(out, "- Retries: %d attempts, %s apart\n", cfg.Retry.Attempts, cfg.Retry.Delay)
	fmt.Fprintf(out, "- Pages: %d when browsing, %d when searching\n", catalog.BrowsePages, catalog.SearchPages)

	if len(cfg.Filter.Presets) > 0 {
		fmt.Fprintf(out, "\nFilter presets:\n")
		for name, expr := range cfg.Filter.Presets {
			if _, err := compiler.Compile(expr); err != nil {
				fmt.Fprintf(out, "  • %s: %s (invalid: %v)\n", name, expr, err)
				continue
			}
			fmt.Fprintf(out, "  • %s: %s\n", name, expr)
		}
	}

	return nil
}
