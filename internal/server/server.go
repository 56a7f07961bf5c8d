// Package server exposes the desktop-automation tool surface over the MCP
// protocol. All tools share one Reader instance so refs handed out by
// read_ui stay resolvable by click_element/type_text until the next read.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/avren/desktop-agent/internal/platform"
	"github.com/avren/desktop-agent/internal/reader"
	"github.com/avren/desktop-agent/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string // "stdio" or "streamable-http"
	Port      int    // HTTP port for streamable-http
}

// Server wires the MCP server to the platform provider and the shared
// accessibility reader.
type Server struct {
	provider *platform.Provider
	reader   *reader.Reader
	log      *zap.Logger
	mcp      *mcpserver.MCPServer
}

// New creates a Server with all tools registered. Logs go to stderr; the
// stdio transport owns stdout.
func New() (*Server, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	log, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	s := &Server{
		provider: provider,
		reader:   reader.New(provider.Fetcher),
		log:      log,
	}
	s.mcp = mcpserver.NewMCPServer("desktop-agent", version.Version)
	s.registerTools()
	return s, nil
}

// Serve starts the MCP server with the configured transport and blocks.
func (s *Server) Serve(cfg Config) error {
	defer s.log.Sync() //nolint:errcheck

	s.log.Info("starting MCP server",
		zap.String("transport", cfg.Transport),
		zap.String("version", version.Version))

	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("read_ui",
			mcp.WithDescription("Read the UI element tree of a window via the OS accessibility layer. Returns elements with refs usable by click_element/type_text until the next read_ui call."),
			mcp.WithString("window", mcp.Description("Target window: app name match first, then window title substring. Empty = frontmost window")),
			mcp.WithNumber("depth", mcp.Description("Max tree depth to traverse (default: 10)")),
			mcp.WithString("filter", mcp.Description("'all' (default) or 'interactive' (buttons, inputs, links, plus their containers)")),
			mcp.WithString("format", mcp.Description("'text' (default, indented tree) or 'yaml'")),
		),
		s.handleReadUI,
	)

	s.mcp.AddTool(
		mcp.NewTool("find",
			mcp.WithDescription("Read the UI tree and return elements whose name, role, value, or description contains the query (case-insensitive)"),
			mcp.WithString("query", mcp.Description("Substring to search for"), mcp.Required()),
			mcp.WithString("window", mcp.Description("Target window (see read_ui)")),
			mcp.WithNumber("depth", mcp.Description("Max tree depth to traverse (default: 10)")),
		),
		s.handleFind,
	)

	s.mcp.AddTool(
		mcp.NewTool("click_element",
			mcp.WithDescription("Click the center of a UI element identified by a ref from the latest read_ui"),
			mcp.WithString("ref", mcp.Description("Element ref (e.g. 'e12')"), mcp.Required()),
			mcp.WithString("button", mcp.Description("Mouse button: left (default), right, middle")),
			mcp.WithBoolean("double", mcp.Description("Double-click")),
		),
		s.handleClickElement,
	)

	s.mcp.AddTool(
		mcp.NewTool("click",
			mcp.WithDescription("Click at absolute screen coordinates"),
			mcp.WithNumber("x", mcp.Description("X coordinate"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Y coordinate"), mcp.Required()),
			mcp.WithString("button", mcp.Description("Mouse button: left (default), right, middle")),
			mcp.WithBoolean("double", mcp.Description("Double-click")),
		),
		s.handleClick,
	)

	s.mcp.AddTool(
		mcp.NewTool("type_text",
			mcp.WithDescription("Type text into the focused element, optionally clicking a ref first to focus it"),
			mcp.WithString("text", mcp.Description("Text to type"), mcp.Required()),
			mcp.WithString("ref", mcp.Description("Element ref to click before typing")),
		),
		s.handleTypeText,
	)

	s.mcp.AddTool(
		mcp.NewTool("press_key",
			mcp.WithDescription("Press a key or key combination, e.g. 'enter', 'cmd+s', 'ctrl+shift+t'"),
			mcp.WithString("combo", mcp.Description("Key combo, tokens joined by '+'"), mcp.Required()),
		),
		s.handlePressKey,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List open windows with app name, PID, title, and focus state"),
		),
		s.handleListWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("focus_window",
			mcp.WithDescription("Bring a window or application to the foreground"),
			mcp.WithString("app", mcp.Description("Application/process name substring")),
			mcp.WithString("window", mcp.Description("Window title substring")),
		),
		s.handleFocusWindow,
	)

	s.mcp.AddTool(
		mcp.NewTool("screenshot",
			mcp.WithDescription("Capture a screenshot of the screen (optionally focusing a window first)"),
			mcp.WithString("window", mcp.Description("Focus this window before capturing")),
			mcp.WithString("format", mcp.Description("Image format: png (default), jpg")),
			mcp.WithNumber("quality", mcp.Description("JPEG quality 1-100 (default: 80)")),
			mcp.WithNumber("scale", mcp.Description("Scale factor 0.1-1.0 (default: 0.5)")),
		),
		s.handleScreenshot,
	)

	s.mcp.AddTool(
		mcp.NewTool("open_app",
			mcp.WithDescription("Open an application, URL, or file"),
			mcp.WithString("app", mcp.Description("Application to open, or to open the target with")),
			mcp.WithString("target", mcp.Description("URL or file path")),
		),
		s.handleOpenApp,
	)

	s.mcp.AddTool(
		mcp.NewTool("quit_app",
			mcp.WithDescription("Quit an application gracefully"),
			mcp.WithString("app", mcp.Description("Application name"), mcp.Required()),
		),
		s.handleQuitApp,
	)

	s.mcp.AddTool(
		mcp.NewTool("clipboard_read",
			mcp.WithDescription("Read the system clipboard text"),
		),
		s.handleClipboardRead,
	)

	s.mcp.AddTool(
		mcp.NewTool("clipboard_write",
			mcp.WithDescription("Replace the system clipboard text"),
			mcp.WithString("text", mcp.Description("Text to place on the clipboard"), mcp.Required()),
		),
		s.handleClipboardWrite,
	)

	s.mcp.AddTool(
		mcp.NewTool("wait_for",
			mcp.WithDescription("Poll the UI tree until an element matching the query appears (or disappears with gone=true)"),
			mcp.WithString("query", mcp.Description("Substring to wait for"), mcp.Required()),
			mcp.WithString("window", mcp.Description("Target window (see read_ui)")),
			mcp.WithBoolean("gone", mcp.Description("Wait until the query no longer matches")),
			mcp.WithNumber("timeout", mcp.Description("Max seconds to wait (default: 30)")),
			mcp.WithNumber("interval", mcp.Description("Polling interval in ms (default: 500)")),
		),
		s.handleWaitFor,
	)
}
