// Command enginepages serves and maintains the engine review site.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "enginepages",
	Short: "Engine review site: server, content checks and exports",
	Long: `enginepages serves one review page per engine in the built-in content
table, together with its JSON-LD graph and a Markdown alternate.

The same table can be audited (validate), dumped (export) or exposed to
MCP clients (mcp).`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the enginepages version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "enginepages %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
