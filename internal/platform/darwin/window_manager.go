//go:build darwin

package darwin

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/avren/desktop-agent/internal/platform"
)

// listScript enumerates open windows across all application processes. The
// first window of the frontmost process is marked focused. Per-process
// failures are skipped so one unscriptable app never hides the rest.
const listScript = `
function run() {
  var se = Application('System Events');
  var out = [];
  var procs = se.applicationProcesses();
  for (var i = 0; i < procs.length; i++) {
    var name, pid, front, ws;
    try {
      name = procs[i].name();
      pid = procs[i].unixId();
      front = procs[i].frontmost();
      ws = procs[i].windows();
    } catch (e) { continue; }
    for (var j = 0; j < ws.length; j++) {
      var title = '';
      try { title = ws[j].name() || ''; } catch (e) {}
      out.push({ app: name, pid: pid, title: title, focused: front && j === 0 });
    }
  }
  return JSON.stringify(out);
}
`

// focusScript activates the process matching the app-name hint, or the
// process owning a window whose title contains the window hint.
const focusScript = `
function run(argv) {
  var appHint = (argv[0] || '').toLowerCase();
  var winHint = (argv[1] || '').toLowerCase();
  var se = Application('System Events');
  var procs = se.applicationProcesses();
  for (var i = 0; i < procs.length; i++) {
    try {
      var name = procs[i].name();
      if (appHint !== '' && name.toLowerCase().indexOf(appHint) !== -1) {
        procs[i].frontmost = true;
        return 'ok';
      }
      if (winHint !== '') {
        var ws = procs[i].windows();
        for (var j = 0; j < ws.length; j++) {
          var title = ws[j].name();
          if (title && title.toLowerCase().indexOf(winHint) !== -1) {
            procs[i].frontmost = true;
            try { ws[j].actions.byName('AXRaise').perform(); } catch (e) {}
            return 'ok';
          }
        }
      }
    } catch (e) {}
  }
  return '';
}
`

// frontmostScript prints the name of the frontmost application process.
const frontmostScript = `
function run() {
  var se = Application('System Events');
  var front = se.applicationProcesses.whose({ frontmost: true });
  if (front.length === 0) return '';
  return front[0].name();
}
`

// WindowManager enumerates and focuses windows through System Events.
type WindowManager struct{}

// NewWindowManager creates the macOS window manager.
func NewWindowManager() *WindowManager {
	return &WindowManager{}
}

// ListWindows returns all open windows, focused window first is not
// guaranteed; callers sort if they care about ordering.
func (w *WindowManager) ListWindows() ([]platform.Window, error) {
	out, err := runJXA(context.Background(), listScript)
	if err != nil {
		return nil, err
	}
	var windows []platform.Window
	if err := json.Unmarshal(out, &windows); err != nil {
		return nil, fmt.Errorf("malformed window list: %w", err)
	}
	if windows == nil {
		windows = []platform.Window{}
	}
	return windows, nil
}

// FocusWindow brings the matching app or window to the foreground.
func (w *WindowManager) FocusWindow(opts platform.FocusOptions) error {
	if opts.App == "" && opts.Window == "" {
		return fmt.Errorf("either an app name or a window title is required")
	}
	out, err := runJXA(context.Background(), focusScript, opts.App, opts.Window)
	if err != nil {
		return err
	}
	if strings.TrimSpace(string(out)) != "ok" {
		return fmt.Errorf("no window matched app=%q window=%q", opts.App, opts.Window)
	}
	return nil
}

// FrontmostApp returns the name of the frontmost application.
func (w *WindowManager) FrontmostApp() (string, error) {
	out, err := runJXA(context.Background(), frontmostScript)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
