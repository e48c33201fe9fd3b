package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/savonarola/emqx-mcp-server/internal/config"
	"github.com/savonarola/emqx-mcp-server/internal/emqx"
	"github.com/savonarola/emqx-mcp-server/internal/server"
	"github.com/savonarola/emqx-mcp-server/pkg/logging"

	"github.com/spf13/cobra"
)

// serveDebug enables verbose logging across the application.
var serveDebug bool

// serveConfigPath specifies a custom configuration directory path. When empty,
// configuration is read from the user config directory.
var serveConfigPath string

// Transport overrides. Config file values apply when the flags are not set.
var (
	serveTransport string
	serveHost      string
	servePort      int
)

// serveCmd starts the MCP server and keeps it running until the process is
// signalled or the MCP client disconnects.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the EMQX MCP server",
	Long: `Starts the EMQX MCP server and serves the broker tools over the
configured MCP transport.

Transports:
  stdio            Serve a single MCP client over stdin/stdout (default).
  sse              Serve MCP clients over Server-Sent Events on host:port.
  streamable-http  Serve MCP clients over streamable HTTP on host:port.

Configuration:
  Credentials for the EMQX HTTP API are read from config.yaml in the user
  config directory (or --config-path), overridden by the environment
  variables EMQX_API_URL, EMQX_API_KEY and EMQX_API_SECRET. Missing
  credentials do not fail startup; the first broker call reports the error.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	logLevel := logging.LevelInfo
	if serveDebug {
		logLevel = logging.LevelDebug
	}
	// Logs go to stderr: the stdio transport owns stdout.
	logging.Init(logLevel, os.Stderr)

	cfg, err := config.LoadConfig(serveConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flags().Changed("transport") {
		cfg.Server.Transport = serveTransport
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = serveHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
	}

	emqxClient := emqx.NewClient(cfg.API)
	srv := server.NewServer(cfg.Server, rootCmd.Version, emqxClient)

	baseCtx := cmd.Context()
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	var runErr error
	select {
	case <-ctx.Done():
		logging.Info("Serve", "Shutdown signal received")
	case err := <-srv.Done():
		runErr = err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		logging.Error("Serve", err, "Error stopping server")
	}

	return runErr
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	serveCmd.Flags().StringVar(&serveConfigPath, "config-path", "", "Custom configuration directory path")
	serveCmd.Flags().StringVar(&serveTransport, "transport", config.MCPTransportStdio, "MCP transport: stdio, sse or streamable-http")
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Host to bind to for HTTP transports")
	serveCmd.Flags().IntVar(&servePort, "port", 8090, "Port for HTTP transports")
}
