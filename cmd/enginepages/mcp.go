package main

import (
	"github.com/spf13/cobra"

	"github.com/eringen/enginepages/content"
	"github.com/eringen/enginepages/mcpserver"
)

var (
	mcpHTTP    string
	mcpBaseURL string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose the content table as MCP tools",
	Long: `Serve the listEngines, getEngine and validateEngine tools to MCP
clients over stdio, or over streamable HTTP when --http is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := mcpserver.NewServer(content.Default(), mcpBaseURL, version)
		return mcpserver.Serve(s, mcpHTTP)
	},
}

func init() {
	mcpCmd.Flags().StringVar(&mcpHTTP, "http", "", "listen address for streamable HTTP (stdio when empty)")
	mcpCmd.Flags().StringVar(&mcpBaseURL, "base-url", content.BaseURL, "site origin used in returned page URLs")
	rootCmd.AddCommand(mcpCmd)
}
