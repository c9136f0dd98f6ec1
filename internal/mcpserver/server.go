// Package mcpserver exposes the client tools to AI assistants over the
// Model Context Protocol, either on stdio or as an SSE endpoint.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"clientctl/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

const (
	mcpSubsystem = "MCPServer"

	TransportStdio = "stdio"
	TransportSSE   = "sse"

	serverName = "clientctl"
)

// Config controls how the server is exposed.
type Config struct {
	Transport string
	Host      string
	Port      int
	Version   string
}

// Server wraps an MCP server carrying the client tools
type Server struct {
	config Config
	server *server.MCPServer

	// SSE server for HTTP transport
	sseServer *server.SSEServer

	mu sync.Mutex
}

// New creates a server with the given tools registered. Empty settings fall
// back to stdio on localhost:8090.
func New(config Config, tools []server.ServerTool) (*Server, error) {
	if config.Transport == "" {
		config.Transport = TransportStdio
	}
	if config.Transport != TransportStdio && config.Transport != TransportSSE {
		return nil, fmt.Errorf("unsupported transport %q (want %s or %s)", config.Transport, TransportStdio, TransportSSE)
	}
	if config.Host == "" {
		config.Host = "localhost"
	}
	if config.Port == 0 {
		config.Port = 8090
	}
	if config.Version == "" {
		config.Version = "dev"
	}

	mcpServer := server.NewMCPServer(
		serverName,
		config.Version,
		server.WithToolCapabilities(true),
	)
	mcpServer.AddTools(tools...)

	return &Server{config: config, server: mcpServer}, nil
}

// MCP returns the underlying protocol server.
func (s *Server) MCP() *server.MCPServer {
	return s.server
}

// Endpoint is the SSE URL clients connect to.
func (s *Server) Endpoint() string {
	return fmt.Sprintf("http://%s:%d/sse", s.config.Host, s.config.Port)
}

// Serve blocks until ctx is cancelled or the transport fails. stdin and
// stdout are only used by the stdio transport.
func (s *Server) Serve(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	switch s.config.Transport {
	case TransportSSE:
		return s.serveSSE(ctx)
	default:
		logging.Info(mcpSubsystem, "Serving MCP tools on stdio")
		stdio := server.NewStdioServer(s.server)
		err := stdio.Listen(ctx, stdin, stdout)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
}

func (s *Server) serveSSE(ctx context.Context) error {
	s.mu.Lock()
	if s.sseServer != nil {
		s.mu.Unlock()
		return fmt.Errorf("mcp server already started")
	}
	baseURL := fmt.Sprintf("http://%s:%d", s.config.Host, s.config.Port)
	sseServer := server.NewSSEServer(
		s.server,
		server.WithBaseURL(baseURL),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)
	s.sseServer = sseServer
	s.mu.Unlock()

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	logging.Info(mcpSubsystem, "Serving MCP tools on %s", s.Endpoint())

	errCh := make(chan error, 1)
	go func() {
		errCh <- sseServer.Start(addr)
	}()

	select {
	case err := <-errCh:
		s.reset()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		return s.Stop(context.Background())
	}
}

// Stop shuts the SSE listener down. It is a no-op for stdio.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	sseServer := s.sseServer
	s.mu.Unlock()
	if sseServer == nil {
		return nil
	}

	logging.Info(mcpSubsystem, "Stopping MCP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err := sseServer.Shutdown(shutdownCtx)
	if err != nil {
		logging.Error(mcpSubsystem, err, "Error shutting down SSE server")
	}
	s.reset()
	return err
}

func (s *Server) reset() {
	s.mu.Lock()
	s.sseServer = nil
	s.mu.Unlock()
}
