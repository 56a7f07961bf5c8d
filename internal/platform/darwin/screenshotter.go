//go:build darwin

package darwin

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avren/desktop-agent/internal/platform"
	"github.com/avren/desktop-agent/internal/screenshot"
)

// Screenshotter captures the screen via the screencapture utility. Window
// targeting works by focusing the window first and capturing the full
// screen; screencapture's window mode needs a CGWindowID the scripting
// bridge cannot supply.
type Screenshotter struct {
	wm *WindowManager
}

// NewScreenshotter creates the macOS screenshotter.
func NewScreenshotter(wm *WindowManager) *Screenshotter {
	return &Screenshotter{wm: wm}
}

// Capture takes a screenshot and returns it scaled and encoded.
func (s *Screenshotter) Capture(opts platform.ScreenshotOptions) ([]byte, error) {
	if opts.Window != "" {
		// Best effort: a vanished window should not fail the capture.
		_ = s.wm.FocusWindow(platform.FocusOptions{Window: opts.Window})
	}

	tmp, err := os.CreateTemp("", "desktop-agent-shot-*.png")
	if err != nil {
		return nil, err
	}
	path := tmp.Name()
	tmp.Close()
	defer os.Remove(path)

	_, errOut, err := platform.RunBridge(context.Background(),
		"screencapture", "-x", "-t", "png", path)
	if err != nil {
		return nil, platform.ClassifyBridgeError(err, errOut,
			[]string{"screen recording"},
			"enable your terminal or agent host under System Settings > Privacy & Security > Screen Recording, then restart it")
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read captured image: %w", err)
	}
	return screenshot.Process(data, screenshot.Options{
		Format:  opts.Format,
		Quality: opts.Quality,
		Scale:   opts.Scale,
	})
}
