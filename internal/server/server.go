package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/savonarola/emqx-mcp-server/internal/config"
	"github.com/savonarola/emqx-mcp-server/internal/emqx"
	"github.com/savonarola/emqx-mcp-server/internal/tools"
	"github.com/savonarola/emqx-mcp-server/pkg/logging"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

const serverName = "emqx_mcp_server"

// Server exposes the EMQX tool handlers over an MCP transport. It binds each
// tool group to the underlying MCP server and manages the lifecycle of the
// configured transport (stdio, sse or streamable-http).
type Server struct {
	config     config.ServerConfig
	version    string
	emqxClient *emqx.Client

	server *mcpserver.MCPServer

	// Transport-specific servers
	sseServer            *mcpserver.SSEServer
	streamableHTTPServer *mcpserver.StreamableHTTPServer
	stdioServer          *mcpserver.StdioServer

	// Lifecycle management
	ctx        context.Context
	cancelFunc context.CancelFunc
	done       chan error
	mu         sync.Mutex
}

// NewServer creates an MCP server wired to the given EMQX client.
func NewServer(cfg config.ServerConfig, version string, client *emqx.Client) *Server {
	return &Server{
		config:     cfg,
		version:    version,
		emqxClient: client,
		done:       make(chan error, 1),
	}
}

// Start registers the tools and starts the configured transport. It returns
// once the transport is launched; Done signals transport termination.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		return fmt.Errorf("server already started")
	}

	s.ctx, s.cancelFunc = context.WithCancel(ctx)

	s.server = mcpserver.NewMCPServer(
		serverName,
		s.version,
		mcpserver.WithToolCapabilities(false), // tool set is static, no notifications needed
		mcpserver.WithResourceCapabilities(false, false),
		mcpserver.WithPromptCapabilities(false),
	)

	s.registerTools()

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	switch s.config.Transport {
	case config.MCPTransportSSE:
		logging.Info("Server", "Starting EMQX MCP server with SSE transport on %s", addr)
		baseURL := fmt.Sprintf("http://%s", addr)
		s.sseServer = mcpserver.NewSSEServer(
			s.server,
			mcpserver.WithBaseURL(baseURL),
			mcpserver.WithSSEEndpoint("/sse"),
			mcpserver.WithMessageEndpoint("/message"),
			mcpserver.WithKeepAlive(true),
			mcpserver.WithKeepAliveInterval(30*time.Second),
		)
		sseServer := s.sseServer
		go func() {
			if err := sseServer.Start(addr); err != nil && err != http.ErrServerClosed {
				logging.Error("Server", err, "SSE server error")
				s.done <- err
			}
		}()

	case config.MCPTransportStreamableHTTP:
		logging.Info("Server", "Starting EMQX MCP server with streamable-http transport on %s", addr)
		s.streamableHTTPServer = mcpserver.NewStreamableHTTPServer(s.server)
		streamableServer := s.streamableHTTPServer
		go func() {
			if err := streamableServer.Start(addr); err != nil && err != http.ErrServerClosed {
				logging.Error("Server", err, "Streamable HTTP server error")
				s.done <- err
			}
		}()

	case config.MCPTransportStdio:
		fallthrough
	default:
		logging.Info("Server", "Starting EMQX MCP server with stdio transport")
		s.stdioServer = mcpserver.NewStdioServer(s.server)
		stdioServer := s.stdioServer
		serverCtx := s.ctx
		go func() {
			err := stdioServer.Listen(serverCtx, os.Stdin, os.Stdout)
			if err != nil && serverCtx.Err() == nil {
				logging.Error("Server", err, "Stdio server error")
				s.done <- err
				return
			}
			// Stdin closed: the MCP client went away, shut down cleanly.
			s.done <- nil
		}()
	}

	return nil
}

// Done reports transport termination: a transport error, or a nil value when
// the stdio peer disconnects.
func (s *Server) Done() <-chan error {
	return s.done
}

// Stop stops the server and shuts down the active transport.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.server == nil {
		s.mu.Unlock()
		return fmt.Errorf("server not started")
	}

	logging.Info("Server", "Stopping EMQX MCP server")

	cancelFunc := s.cancelFunc
	sseServer := s.sseServer
	streamableServer := s.streamableHTTPServer
	s.mu.Unlock()

	if cancelFunc != nil {
		cancelFunc()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if sseServer != nil {
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server", err, "Error shutting down SSE server")
		}
	}

	if streamableServer != nil {
		if err := streamableServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server", err, "Error shutting down streamable HTTP server")
		}
	}

	// Stdio server stops on context cancellation, no explicit shutdown needed.

	s.mu.Lock()
	s.server = nil
	s.sseServer = nil
	s.streamableHTTPServer = nil
	s.stdioServer = nil
	s.mu.Unlock()

	return nil
}

// registerTools binds each tool group to the MCP server. Pure registration,
// no business logic.
func (s *Server) registerTools() {
	messageTools := tools.NewMessageTools(s.emqxClient)
	messageTools.Register(s.server)
	logging.Info("Server", "EMQX message tools registered")

	clientTools := tools.NewClientTools(s.emqxClient)
	clientTools.Register(s.server)
	logging.Info("Server", "EMQX client tools registered")

	ruleTools := tools.NewRuleTools(s.emqxClient)
	ruleTools.Register(s.server)
	logging.Info("Server", "EMQX rule tools registered")
}
