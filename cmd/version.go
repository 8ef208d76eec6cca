package cmd

import (
	"fmt"
	"strings"

	"github.com/blang/semver"
	"github.com/spf13/cobra"
)

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	// No config or clients are needed
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), versionString(version, buildTime))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// versionString formats v for display. Anything that is not a semantic version
// is reported as a development build.
func versionString(v, built string) string {
	parsed, err := semver.ParseTolerant(v)
	if err != nil {
		return fmt.Sprintf("cinegrid %s (development build, built %s)", v, built)
	}

	s := fmt.Sprintf("cinegrid v%s (built %s)", parsed, built)
	if len(parsed.Pre) > 0 {
		pre := make([]string, len(parsed.Pre))
		for i, p := range parsed.Pre {
			pre[i] = p.String()
		}
		s += " [pre-release: " + strings.Join(pre, ".") + "]"
	}
	return s
}
