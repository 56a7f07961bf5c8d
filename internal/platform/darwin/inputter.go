//go:build darwin

package darwin

import (
	"context"
	"fmt"
	"strings"

	"github.com/avren/desktop-agent/internal/platform"
)

// typeScript sends literal keystrokes via System Events.
const typeScript = `
function run(argv) {
  var se = Application('System Events');
  se.keystroke(argv[0]);
  return '';
}
`

// Inputter injects mouse and keyboard events through System Events.
type Inputter struct{}

// NewInputter creates the macOS inputter.
func NewInputter() *Inputter {
	return &Inputter{}
}

// Click clicks at (x, y). System Events exposes only primary-button clicks;
// other buttons report an error rather than silently misclicking.
func (i *Inputter) Click(x, y int, button platform.MouseButton, count int) error {
	if button != platform.MouseLeft {
		return fmt.Errorf("only left-button clicks are supported by the macOS scripting bridge")
	}
	if count < 1 {
		count = 1
	}
	stmts := make([]string, count)
	for i := range stmts {
		stmts[i] = fmt.Sprintf("click at {%d, %d}", x, y)
	}
	script := fmt.Sprintf("tell application \"System Events\"\n%s\nend tell",
		strings.Join(stmts, "\n"))
	_, errOut, err := platform.RunBridge(context.Background(), "osascript", "-e", script)
	if err != nil {
		return platform.ClassifyBridgeError(err, errOut, permissionSignatures, accessibilityRemedy)
	}
	return nil
}

// TypeText types text as literal keystrokes into the focused element.
func (i *Inputter) TypeText(text string) error {
	_, err := runJXA(context.Background(), typeScript, text)
	return err
}

// modifierNames maps combo modifier tokens to System Events "using" values.
var modifierNames = map[string]string{
	"cmd":     "command down",
	"command": "command down",
	"ctrl":    "control down",
	"control": "control down",
	"alt":     "option down",
	"opt":     "option down",
	"option":  "option down",
	"shift":   "shift down",
}

// keyCodes maps named keys to macOS virtual key codes for `key code`.
var keyCodes = map[string]int{
	"enter":     36,
	"return":    36,
	"tab":       48,
	"space":     49,
	"delete":    51,
	"backspace": 51,
	"escape":    53,
	"esc":       53,
	"left":      123,
	"right":     124,
	"down":      125,
	"up":        126,
	"home":      115,
	"end":       119,
	"pageup":    116,
	"pagedown":  121,
	"f1":        122,
	"f2":        120,
	"f3":        99,
	"f4":        118,
	"f5":        96,
	"f6":        97,
	"f7":        98,
	"f8":        100,
	"f9":        101,
	"f10":       109,
	"f11":       103,
	"f12":       111,
}

// KeyCombo presses a key with optional modifiers, e.g. ["cmd", "s"] or
// ["enter"]. The last element is the key; the rest are modifiers.
func (i *Inputter) KeyCombo(keys []string) error {
	if len(keys) == 0 {
		return fmt.Errorf("empty key combo")
	}

	var mods []string
	for _, k := range keys[:len(keys)-1] {
		mod, ok := modifierNames[strings.ToLower(k)]
		if !ok {
			return fmt.Errorf("unknown modifier: %q", k)
		}
		mods = append(mods, mod)
	}
	key := strings.ToLower(keys[len(keys)-1])

	using := ""
	if len(mods) > 0 {
		using = fmt.Sprintf(" using {%s}", strings.Join(mods, ", "))
	}

	var stmt string
	if code, ok := keyCodes[key]; ok {
		stmt = fmt.Sprintf("key code %d%s", code, using)
	} else if len([]rune(key)) == 1 {
		stmt = fmt.Sprintf("keystroke %q%s", key, using)
	} else {
		return fmt.Errorf("unknown key: %q", key)
	}

	script := fmt.Sprintf("tell application \"System Events\" to %s", stmt)
	_, errOut, err := platform.RunBridge(context.Background(), "osascript", "-e", script)
	if err != nil {
		return platform.ClassifyBridgeError(err, errOut, permissionSignatures, accessibilityRemedy)
	}
	return nil
}
