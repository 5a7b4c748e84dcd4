package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winfocus/internal/config"
	"github.com/1broseidon/winfocus/internal/focus"
	"github.com/1broseidon/winfocus/internal/logging"
)

const (
	ServerName    = "winfocus"
	ServerVersion = "0.1.0"
)

// Server exposes the focus engine as MCP tools.
type Server struct {
	mcpServer *mcpsdk.Server
	engine    *focus.Engine
	config    *config.Config
	logger    *logging.Logger
}

// NewServer creates an MCP server over engine. cfg and logger may be nil.
func NewServer(engine *focus.Engine, cfg *config.Config, logger *logging.Logger) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	s := &Server{
		engine: engine,
		config: cfg,
		logger: logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Infof("MCP server %s %s listening on stdio", ServerName, ServerVersion)
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List the titled top-level windows on the desktop in enumeration order. Each entry carries its handle, title and the display form 'title (handle)' accepted by resolve_window and focus_window; the focused window is marked active.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resolve_window",
		Description: "Resolve a query to a live window handle without focusing it. Queries are tried as a bare handle, then as a display string ending in ' (handle)', then as a case-sensitive regular expression over titles. Returns found=false with title hints when nothing matches.",
	}, s.handleResolveWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "complete_window",
		Description: "Rank windows against a partial title, best first. Exact and prefix matches outrank substring matches; * and ? act as wildcards. Each candidate's display string can be passed back to focus_window.",
	}, s.handleCompleteWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "focus_window",
		Description: "Resolve a query like resolve_window and bring the window to the front, restoring it if minimized and switching to its desktop.",
	}, s.handleFocusWindow)
}
