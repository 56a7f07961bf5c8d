//go:build windows

package windows

import (
	"context"
	"strings"

	"github.com/avren/desktop-agent/internal/platform"
)

// permissionSignatures are PowerShell/UIA error phrasings that indicate a
// privilege problem (e.g. reading an elevated process from a non-elevated
// one) rather than a transient failure.
var permissionSignatures = []string{
	"access is denied",
	"unauthorizedaccessexception",
	"uipi",
}

// elevationRemedy names the fix for UIA access denials.
const elevationRemedy = "run desktop-agent from an elevated (administrator) " +
	"session so UI Automation can reach the target process"

// runPowerShell executes an embedded PowerShell program.
func runPowerShell(ctx context.Context, script string) ([]byte, error) {
	out, errOut, err := platform.RunBridge(ctx, "powershell",
		"-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass",
		"-Command", script)
	if err != nil {
		return nil, platform.ClassifyBridgeError(err, errOut, permissionSignatures, elevationRemedy)
	}
	return out, nil
}

// psQuote single-quotes s for safe embedding in a PowerShell script.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
