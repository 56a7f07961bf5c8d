//go:build windows

package windows

import (
	"context"
	"fmt"

	"github.com/avren/desktop-agent/internal/platform"
)

// AppManager launches and quits applications via Start-Process and
// Stop-Process.
type AppManager struct{}

// NewAppManager creates the Windows app manager.
func NewAppManager() *AppManager {
	return &AppManager{}
}

// Open launches an app, URL, or file. With both set, Target opens with App.
func (a *AppManager) Open(opts platform.OpenOptions) error {
	var script string
	switch {
	case opts.App != "" && opts.Target != "":
		script = fmt.Sprintf("Start-Process -FilePath %s -ArgumentList %s",
			psQuote(opts.App), psQuote(opts.Target))
	case opts.App != "":
		script = fmt.Sprintf("Start-Process -FilePath %s", psQuote(opts.App))
	case opts.Target != "":
		script = fmt.Sprintf("Start-Process -FilePath %s", psQuote(opts.Target))
	default:
		return fmt.Errorf("nothing to open: specify an app, URL, or file")
	}
	_, err := runPowerShell(context.Background(), script)
	return err
}

// Quit stops all processes with the given name. CloseMainWindow is tried
// first so apps get a chance to exit cleanly.
func (a *AppManager) Quit(app string) error {
	if app == "" {
		return fmt.Errorf("an app name is required")
	}
	script := fmt.Sprintf(`
$procs = Get-Process -Name %s -ErrorAction Stop
foreach ($p in $procs) {
    if (-not $p.CloseMainWindow()) { Stop-Process -Id $p.Id }
}
`, psQuote(app))
	_, err := runPowerShell(context.Background(), script)
	return err
}
