//go:build windows

package windows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avren/desktop-agent/internal/platform"
	"github.com/avren/desktop-agent/internal/screenshot"
)

// captureScriptTemplate copies the virtual screen into a PNG file.
const captureScriptTemplate = `
$ErrorActionPreference = 'Stop'
Add-Type -AssemblyName System.Windows.Forms
Add-Type -AssemblyName System.Drawing
$bounds = [System.Windows.Forms.SystemInformation]::VirtualScreen
$bmp = New-Object System.Drawing.Bitmap $bounds.Width, $bounds.Height
$g = [System.Drawing.Graphics]::FromImage($bmp)
$g.CopyFromScreen($bounds.Location, [System.Drawing.Point]::Empty, $bounds.Size)
$bmp.Save(%s, [System.Drawing.Imaging.ImageFormat]::Png)
$g.Dispose()
$bmp.Dispose()
`

// Screenshotter captures the screen via System.Drawing. Window targeting
// focuses the window first and captures the full screen.
type Screenshotter struct {
	wm *WindowManager
}

// NewScreenshotter creates the Windows screenshotter.
func NewScreenshotter(wm *WindowManager) *Screenshotter {
	return &Screenshotter{wm: wm}
}

// Capture takes a screenshot and returns it scaled and encoded.
func (s *Screenshotter) Capture(opts platform.ScreenshotOptions) ([]byte, error) {
	if opts.Window != "" {
		_ = s.wm.FocusWindow(platform.FocusOptions{Window: opts.Window})
	}

	tmp, err := os.CreateTemp("", "desktop-agent-shot-*.png")
	if err != nil {
		return nil, err
	}
	path := tmp.Name()
	tmp.Close()
	defer os.Remove(path)

	script := fmt.Sprintf(captureScriptTemplate, psQuote(path))
	if _, err := runPowerShell(context.Background(), script); err != nil {
		return nil, err
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
