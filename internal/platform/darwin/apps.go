//go:build darwin

package darwin

import (
	"context"
	"fmt"

	"github.com/avren/desktop-agent/internal/platform"
)

// AppManager launches and quits applications via open(1) and osascript.
type AppManager struct{}

// NewAppManager creates the macOS app manager.
func NewAppManager() *AppManager {
	return &AppManager{}
}

// Open launches an app, URL, or file. With both set, Target opens with App.
func (a *AppManager) Open(opts platform.OpenOptions) error {
	var args []string
	switch {
	case opts.App != "" && opts.Target != "":
		args = []string{"-a", opts.App, opts.Target}
	case opts.App != "":
		args = []string{"-a", opts.App}
	case opts.Target != "":
		args = []string{opts.Target}
	default:
		return fmt.Errorf("nothing to open: specify an app, URL, or file")
	}
	_, errOut, err := platform.RunBridge(context.Background(), "open", args...)
	if err != nil {
		return fmt.Errorf("open failed: %w (%s)", err, errOut)
	}
	return nil
}

// Quit asks the application to quit gracefully.
func (a *AppManager) Quit(app string) error {
	if app == "" {
		return fmt.Errorf("an app name is required")
	}
	script := fmt.Sprintf("quit app %q", app)
	_, errOut, err := platform.RunBridge(context.Background(), "osascript", "-e", script)
	if err != nil {
		return platform.ClassifyBridgeError(err, errOut, permissionSignatures, accessibilityRemedy)
	}
	return nil
}
