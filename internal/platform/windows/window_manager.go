//go:build windows

package windows

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/avren/desktop-agent/internal/platform"
)

// listScript enumerates processes with a main window, marking the one
// owning the foreground window as focused.
const listScript = `
$ErrorActionPreference = 'Stop'
Add-Type -Namespace Native -Name Win32 -MemberDefinition @'
[DllImport("user32.dll")] public static extern System.IntPtr GetForegroundWindow();
[DllImport("user32.dll")] public static extern uint GetWindowThreadProcessId(System.IntPtr hWnd, out uint lpdwProcessId);
'@
$fgPid = [uint32]0
[void][Native.Win32]::GetWindowThreadProcessId([Native.Win32]::GetForegroundWindow(), [ref]$fgPid)
$list = Get-Process | Where-Object { $_.MainWindowTitle } | ForEach-Object {
    @{ app = $_.ProcessName; pid = $_.Id; title = $_.MainWindowTitle; focused = ($_.Id -eq $fgPid) }
}
ConvertTo-Json -InputObject @($list) -Compress
`

// WindowManager enumerates and focuses windows via PowerShell.
type WindowManager struct{}

// NewWindowManager creates the Windows window manager.
func NewWindowManager() *WindowManager {
	return &WindowManager{}
}

// ListWindows returns all processes with a visible main window.
func (w *WindowManager) ListWindows() ([]platform.Window, error) {
	out, err := runPowerShell(context.Background(), listScript)
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

// FocusWindow brings the matching app or window to the foreground via
// SetForegroundWindow on the process's main window handle.
func (w *WindowManager) FocusWindow(opts platform.FocusOptions) error {
	if opts.App == "" && opts.Window == "" {
		return fmt.Errorf("either an app name or a window title is required")
	}
	script := fmt.Sprintf(`
$ErrorActionPreference = 'Stop'
Add-Type -Namespace Native -Name Win32 -MemberDefinition @'
[DllImport("user32.dll")] public static extern bool SetForegroundWindow(System.IntPtr hWnd);
'@
$app = %s
$title = %s
$target = Get-Process | Where-Object { $_.MainWindowTitle } | Where-Object {
    ($app -ne '' -and $_.ProcessName.ToLower().Contains($app.ToLower())) -or
    ($title -ne '' -and $_.MainWindowTitle.ToLower().Contains($title.ToLower()))
} | Select-Object -First 1
if ($null -eq $target) { Write-Output 'notfound'; exit 0 }
[void][Native.Win32]::SetForegroundWindow($target.MainWindowHandle)
Write-Output 'ok'
`, psQuote(opts.App), psQuote(opts.Window))
	out, err := runPowerShell(context.Background(), script)
	if err != nil {
		return err
	}
	if strings.TrimSpace(string(out)) != "ok" {
		return fmt.Errorf("no window matched app=%q window=%q", opts.App, opts.Window)
	}
	return nil
}

// FrontmostApp returns the process name owning the foreground window.
func (w *WindowManager) FrontmostApp() (string, error) {
	const script = `
$ErrorActionPreference = 'Stop'
Add-Type -Namespace Native -Name Win32 -MemberDefinition @'
[DllImport("user32.dll")] public static extern System.IntPtr GetForegroundWindow();
[DllImport("user32.dll")] public static extern uint GetWindowThreadProcessId(System.IntPtr hWnd, out uint lpdwProcessId);
'@
$fgPid = [uint32]0
[void][Native.Win32]::GetWindowThreadProcessId([Native.Win32]::GetForegroundWindow(), [ref]$fgPid)
if ($fgPid -ne 0) { (Get-Process -Id $fgPid).ProcessName }
`
	out, err := runPowerShell(context.Background(), script)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
