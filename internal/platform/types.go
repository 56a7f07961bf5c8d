package platform

import (
	"fmt"
	"strings"
)

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// ParseMouseButton converts a string flag value to MouseButton.
func ParseMouseButton(s string) (MouseButton, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return MouseLeft, nil
	case "right":
		return MouseRight, nil
	case "middle":
		return MouseMiddle, nil
	default:
		return MouseLeft, fmt.Errorf("unknown mouse button: %q (expected left, right, or middle)", s)
	}
}

// FetchOptions targets one accessibility tree fetch.
type FetchOptions struct {
	// WindowTitle picks the target window: first by application/process name
	// match, then by window-title substring across all processes. Empty
	// targets the frontmost window. No match is an empty result, not an
	// error.
	WindowTitle string
	// Depth is the maximum traversal depth; nodes beyond it are treated as
	// childless. Must be >= 1.
	Depth int
}

// Window describes one top-level window for listing/focusing.
type Window struct {
	App     string `yaml:"app"               json:"app"`
	PID     int    `yaml:"pid,omitempty"     json:"pid,omitempty"`
	Title   string `yaml:"title,omitempty"   json:"title,omitempty"`
	Focused bool   `yaml:"focused,omitempty" json:"focused,omitempty"`
}

// FocusOptions specifies what to bring to the foreground.
type FocusOptions struct {
	App    string // Application/process name
	Window string // Window title substring
}

// ScreenshotOptions configures what to capture.
type ScreenshotOptions struct {
	Window  string  // Capture window matching this title substring ("" = full screen)
	Format  string  // "png" or "jpg"
	Quality int     // JPEG quality 1-100 (ignored for PNG)
	Scale   float64 // Scale factor 0.1-1.0 (default 0.5)
}

// OpenOptions specifies what to launch.
type OpenOptions struct {
	Target string // URL or file path (may be empty when only App is set)
	App    string // Application to open, or to open Target with
}
