package server

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/avren/desktop-agent/internal/model"
	"github.com/avren/desktop-agent/internal/platform"
	"github.com/avren/desktop-agent/internal/reader"
)

// matchInfo is the compact per-element view returned by find and wait_for;
// the full subtree is available via read_ui, repeating it here only bloats
// the response.
type matchInfo struct {
	Ref         string `yaml:"ref"`
	Role        string `yaml:"role"`
	Name        string `yaml:"name,omitempty"`
	Value       string `yaml:"value,omitempty"`
	Description string `yaml:"description,omitempty"`
	Bounds      [4]int `yaml:"bounds"`
}

func matchInfos(elements []model.Element) []matchInfo {
	infos := make([]matchInfo, len(elements))
	for i, el := range elements {
		infos[i] = matchInfo{
			Ref:         el.Ref,
			Role:        el.Role,
			Name:        el.Name,
			Value:       el.Value,
			Description: el.Description,
			Bounds:      el.Bounds,
		}
	}
	return infos
}

// toolError renders err for the agent, keeping the permission remedy
// front and center when the accessibility permission is the problem.
func (s *Server) toolError(tool string, err error) *mcp.CallToolResult {
	s.log.Warn("tool failed", zap.String("tool", tool), zap.Error(err))
	var perm *platform.PermissionError
	if errors.As(err, &perm) {
		return mcp.NewToolResultError(perm.Error())
	}
	return mcp.NewToolResultError(err.Error())
}

func (s *Server) readOptions(params map[string]interface{}) (reader.Options, error) {
	filter, ok := model.ParseFilter(stringParam(params, "filter", ""))
	if !ok {
		return reader.Options{}, fmt.Errorf("unsupported filter: %q (use all or interactive)", params["filter"])
	}
	return reader.Options{
		WindowTitle: stringParam(params, "window", ""),
		Depth:       intParam(params, "depth", 0),
		Filter:      filter,
	}, nil
}

func (s *Server) handleReadUI(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	opts, err := s.readOptions(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	elements, err := s.reader.ReadUI(ctx, opts)
	if err != nil {
		return s.toolError("read_ui", err), nil
	}
	s.log.Info("read_ui",
		zap.String("window", opts.WindowTitle),
		zap.Int("elements", s.reader.CachedCount()))

	if len(elements) == 0 {
		return mcp.NewToolResultText("no matching window or no elements"), nil
	}

	switch stringParam(params, "format", "text") {
	case "text":
		return mcp.NewToolResultText(model.FormatTree(elements)), nil
	case "yaml":
		b, err := yaml.Marshal(elements)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(b)), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format: %q (use text or yaml)", params["format"])), nil
	}
}

func (s *Server) handleFind(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	query := stringParam(params, "query", "")
	if query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}
	opts, err := s.readOptions(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	elements, err := s.reader.ReadUI(ctx, opts)
	if err != nil {
		return s.toolError("find", err), nil
	}

	matches := model.FindElements(elements, query)
	s.log.Info("find", zap.String("query", query), zap.Int("matches", len(matches)))
	if len(matches) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("no elements match %q", query)), nil
	}
	b, err := yaml.Marshal(matchInfos(matches))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) clickAt(x, y int, params map[string]interface{}) error {
	button, err := platform.ParseMouseButton(stringParam(params, "button", "left"))
	if err != nil {
		return err
	}
	count := 1
	if boolParam(params, "double", false) {
		count = 2
	}
	return s.provider.Inputter.Click(x, y, button, count)
}

func (s *Server) handleClickElement(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	ref := stringParam(params, "ref", "")
	if ref == "" {
		return mcp.NewToolResultError("ref is required"), nil
	}

	x, y, ok := s.reader.ElementCenter(ref)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown ref %q — run read_ui first; refs are only valid until the next read", ref)), nil
	}
	if err := s.clickAt(x, y, params); err != nil {
		return s.toolError("click_element", err), nil
	}
	s.log.Info("click_element", zap.String("ref", ref), zap.Int("x", x), zap.Int("y", y))
	return mcp.NewToolResultText(fmt.Sprintf("clicked %s at (%d, %d)", ref, x, y)), nil
}

func (s *Server) handleClick(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	x := intParam(params, "x", -1)
	y := intParam(params, "y", -1)
	if x < 0 || y < 0 {
		return mcp.NewToolResultError("x and y are required"), nil
	}
	if err := s.clickAt(x, y, params); err != nil {
		return s.toolError("click", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("clicked at (%d, %d)", x, y)), nil
}

func (s *Server) handleTypeText(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	text := stringParam(params, "text", "")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}

	if ref := stringParam(params, "ref", ""); ref != "" {
		x, y, ok := s.reader.ElementCenter(ref)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown ref %q — run read_ui first; refs are only valid until the next read", ref)), nil
		}
		if err := s.provider.Inputter.Click(x, y, platform.MouseLeft, 1); err != nil {
			return s.toolError("type_text", err), nil
		}
	}

	if err := s.provider.Inputter.TypeText(text); err != nil {
		return s.toolError("type_text", err), nil
	}
	s.log.Info("type_text", zap.Int("chars", len(text)))
	return mcp.NewToolResultText(fmt.Sprintf("typed %d characters", len(text))), nil
}

func (s *Server) handlePressKey(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	combo := stringParam(params, "combo", "")
	if combo == "" {
		return mcp.NewToolResultError("combo is required"), nil
	}
	keys := strings.Split(combo, "+")
	for i := range keys {
		keys[i] = strings.TrimSpace(keys[i])
	}
	if err := s.provider.Inputter.KeyCombo(keys); err != nil {
		return s.toolError("press_key", err), nil
	}
	s.log.Info("press_key", zap.String("combo", combo))
	return mcp.NewToolResultText(fmt.Sprintf("pressed %s", combo)), nil
}

func (s *Server) handleListWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	windows, err := s.provider.WindowManager.ListWindows()
	if err != nil {
		return s.toolError("list_windows", err), nil
	}
	b, err := yaml.Marshal(windows)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) handleFocusWindow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	opts := platform.FocusOptions{
		App:    stringParam(params, "app", ""),
		Window: stringParam(params, "window", ""),
	}
	if err := s.provider.WindowManager.FocusWindow(opts); err != nil {
		return s.toolError("focus_window", err), nil
	}
	return mcp.NewToolResultText("focused"), nil
}

func (s *Server) handleScreenshot(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	format := stringParam(params, "format", "png")

	data, err := s.provider.Screenshotter.Capture(platform.ScreenshotOptions{
		Window:  stringParam(params, "window", ""),
		Format:  format,
		Quality: intParam(params, "quality", 80),
		Scale:   floatParam(params, "scale", 0.5),
	})
	if err != nil {
		return s.toolError("screenshot", err), nil
	}

	mimeType := "image/png"
	if format == "jpg" || format == "jpeg" {
		mimeType = "image/jpeg"
	}
	s.log.Info("screenshot", zap.Int("bytes", len(data)), zap.String("format", format))
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.ImageContent{
				Type:     "image",
				Data:     base64.StdEncoding.EncodeToString(data),
				MIMEType: mimeType,
			},
		},
	}, nil
}

func (s *Server) handleOpenApp(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	opts := platform.OpenOptions{
		App:    stringParam(params, "app", ""),
		Target: stringParam(params, "target", ""),
	}
	if err := s.provider.AppManager.Open(opts); err != nil {
		return s.toolError("open_app", err), nil
	}
	return mcp.NewToolResultText("opened"), nil
}

func (s *Server) handleQuitApp(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	app := stringParam(params, "app", "")
	if app == "" {
		return mcp.NewToolResultError("app is required"), nil
	}
	if err := s.provider.AppManager.Quit(app); err != nil {
		return s.toolError("quit_app", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("quit %s", app)), nil
}

func (s *Server) handleClipboardRead(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := s.provider.Clipboard.ReadText()
	if err != nil {
		return s.toolError("clipboard_read", err), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleClipboardWrite(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	text, ok := params["text"].(string)
	if !ok {
		return mcp.NewToolResultError("text is required"), nil
	}
	if err := s.provider.Clipboard.WriteText(text); err != nil {
		return s.toolError("clipboard_write", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("wrote %d characters to clipboard", len(text))), nil
}

func (s *Server) handleWaitFor(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	query := stringParam(params, "query", "")
	if query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}
	gone := boolParam(params, "gone", false)
	timeout := time.Duration(intParam(params, "timeout", 30)) * time.Second
	interval := time.Duration(intParam(params, "interval", 500)) * time.Millisecond
	opts, err := s.readOptions(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	deadline := time.Now().Add(timeout)
	for {
		elements, err := s.reader.ReadUI(ctx, opts)
		if err != nil {
			return s.toolError("wait_for", err), nil
		}
		matches := model.FindElements(elements, query)

		if gone && len(matches) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("%q is gone", query)), nil
		}
		if !gone && len(matches) > 0 {
			b, err := yaml.Marshal(matchInfos(matches))
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(string(b)), nil
		}

		if time.Now().After(deadline) {
			state := "appear"
			if gone {
				state = "disappear"
			}
			return mcp.NewToolResultError(fmt.Sprintf("timed out after %s waiting for %q to %s", timeout, query, state)), nil
		}
		select {
		case <-ctx.Done():
			return mcp.NewToolResultError(ctx.Err().Error()), nil
		case <-time.After(interval):
		}
	}
}
