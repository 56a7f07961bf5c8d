//go:build darwin

package darwin

import (
	"context"

	"github.com/avren/desktop-agent/internal/platform"
)

// permissionSignatures are osascript error phrasings that indicate missing
// accessibility permission rather than a transient failure.
var permissionSignatures = []string{
	"assistive access",
	"not allowed assistive",
	"not authorized to send apple events",
	"errAEEventNotPermitted",
}

// accessibilityRemedy names the privacy setting the user must enable.
const accessibilityRemedy = "enable your terminal or agent host under " +
	"System Settings > Privacy & Security > Accessibility, then restart it"

// runJXA executes an embedded JavaScript-for-Automation program via
// osascript, passing args through to the script's run(argv).
func runJXA(ctx context.Context, script string, args ...string) ([]byte, error) {
	cmdArgs := append([]string{"-l", "JavaScript", "-e", script}, args...)
	out, errOut, err := platform.RunBridge(ctx, "osascript", cmdArgs...)
	if err != nil {
		return nil, platform.ClassifyBridgeError(err, errOut, permissionSignatures, accessibilityRemedy)
	}
	return out, nil
}
