//go:build windows

package windows

import (
	"context"
	"fmt"

	"github.com/avren/desktop-agent/internal/model"
	"github.com/avren/desktop-agent/internal/platform"
)

// fetchScriptTemplate walks the UI Automation control-view tree of the
// target window and prints it as a JSON array of raw nodes. Property reads
// are individually guarded so one failing attribute never loses the node or
// its subtree. Hint resolution mirrors the contract: process name first,
// then window title substring, else an empty array.
const fetchScriptTemplate = `
$ErrorActionPreference = 'Stop'
Add-Type -AssemblyName UIAutomationClient
Add-Type -AssemblyName UIAutomationTypes
Add-Type -Namespace Native -Name Win32 -MemberDefinition @'
[DllImport("user32.dll")] public static extern System.IntPtr GetForegroundWindow();
'@

$hint = %s
$maxDepth = %d

function Walk-Element($el, $depth) {
    $node = @{}
    try { $node.role = $el.Current.ControlType.ProgrammaticName } catch {}
    try { $n = $el.Current.Name; if ($n) { $node.title = $n } } catch {}
    try { $h = $el.Current.HelpText; if ($h) { $node.description = $h } } catch {}
    try {
        $vp = $el.GetCurrentPattern([System.Windows.Automation.ValuePattern]::Pattern)
        if ($vp) { $node.value = $vp.Current.Value }
    } catch {}
    try { $node.enabled = $el.Current.IsEnabled } catch {}
    try {
        $r = $el.Current.BoundingRectangle
        if (-not $r.IsEmpty) {
            $node.position = @{ x = [int]$r.X; y = [int]$r.Y }
            $node.size = @{ width = [int]$r.Width; height = [int]$r.Height }
        }
    } catch {}
    if ($depth -lt $maxDepth) {
        $children = @()
        try {
            $walker = [System.Windows.Automation.TreeWalker]::ControlViewWalker
            $child = $walker.GetFirstChild($el)
            while ($null -ne $child) {
                $children += Walk-Element $child ($depth + 1)
                $child = $walker.GetNextSibling($child)
            }
        } catch {}
        if ($children.Count -gt 0) { $node.children = $children }
    }
    return $node
}

$root = [System.Windows.Automation.AutomationElement]::RootElement
$targets = @()

if ($hint -eq '') {
    $hwnd = [Native.Win32]::GetForegroundWindow()
    if ($hwnd -ne [System.IntPtr]::Zero) {
        try { $targets = @([System.Windows.Automation.AutomationElement]::FromHandle($hwnd)) } catch {}
    }
} else {
    $lower = $hint.ToLower()
    $tops = $root.FindAll([System.Windows.Automation.TreeScope]::Children,
        [System.Windows.Automation.Condition]::TrueCondition)
    foreach ($w in $tops) {
        try {
            $proc = Get-Process -Id $w.Current.ProcessId -ErrorAction Stop
            if ($proc.ProcessName.ToLower().Contains($lower)) { $targets += $w }
        } catch {}
    }
    if ($targets.Count -eq 0) {
        foreach ($w in $tops) {
            try {
                $t = $w.Current.Name
                if ($t -and $t.ToLower().Contains($lower)) { $targets = @($w); break }
            } catch {}
        }
    }
}

if ($targets.Count -eq 0) {
    Write-Output '[]'
    exit 0
}

$result = @()
foreach ($t in $targets) { $result += Walk-Element $t 1 }
ConvertTo-Json -InputObject $result -Depth 64 -Compress
`

// Fetcher reads the Windows UI Automation tree through the PowerShell
// bridge.
type Fetcher struct{}

// NewFetcher creates the Windows tree fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// FetchTree runs the UIA walk and decodes its JSON payload.
func (f *Fetcher) FetchTree(ctx context.Context, opts platform.FetchOptions) ([]model.RawElement, error) {
	depth := opts.Depth
	if depth < 1 {
		depth = 1
	}
	script := fmt.Sprintf(fetchScriptTemplate, psQuote(opts.WindowTitle), depth)
	out, err := runPowerShell(ctx, script)
	if err != nil {
		return nil, err
	}
	raw, err := platform.DecodeRawTree(out)
	if err != nil {
		return nil, &platform.FetchError{Cause: err}
	}
	return raw, nil
}
