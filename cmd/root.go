package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the emqx-mcp-server application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "emqx-mcp-server",
	Short: "MCP server for the EMQX MQTT broker",
	Long: `emqx-mcp-server exposes the EMQX MQTT broker's HTTP management API
as MCP tools: message publishing, connected-client management and
rule-engine helpers. Any MCP client can connect to it and operate the
broker through these tools.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles subcommands and flags.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "emqx-mcp-server version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
