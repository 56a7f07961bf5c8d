//go:build windows

package windows

import (
	"context"
	"fmt"
	"strings"

	"github.com/avren/desktop-agent/internal/platform"
)

// mouseFlags maps buttons to user32 mouse_event down/up flag pairs.
var mouseFlags = map[platform.MouseButton][2]int{
	platform.MouseLeft:   {0x0002, 0x0004},
	platform.MouseRight:  {0x0008, 0x0010},
	platform.MouseMiddle: {0x0020, 0x0040},
}

// clickScriptTemplate positions the cursor and issues button events.
const clickScriptTemplate = `
$ErrorActionPreference = 'Stop'
Add-Type -AssemblyName System.Windows.Forms
Add-Type -Namespace Native -Name Mouse -MemberDefinition @'
[DllImport("user32.dll")] public static extern void mouse_event(uint dwFlags, uint dx, uint dy, uint dwData, int dwExtraInfo);
'@
[System.Windows.Forms.Cursor]::Position = New-Object System.Drawing.Point(%d, %d)
for ($i = 0; $i -lt %d; $i++) {
    [Native.Mouse]::mouse_event(%d, 0, 0, 0, 0)
    [Native.Mouse]::mouse_event(%d, 0, 0, 0, 0)
}
`

// Inputter injects mouse and keyboard events via user32 and SendKeys.
type Inputter struct{}

// NewInputter creates the Windows inputter.
func NewInputter() *Inputter {
	return &Inputter{}
}

// Click clicks at (x, y) with the given button, count times.
func (i *Inputter) Click(x, y int, button platform.MouseButton, count int) error {
	flags, ok := mouseFlags[button]
	if !ok {
		return fmt.Errorf("unknown mouse button %d", button)
	}
	if count < 1 {
		count = 1
	}
	script := fmt.Sprintf(clickScriptTemplate, x, y, count, flags[0], flags[1])
	_, err := runPowerShell(context.Background(), script)
	return err
}

// sendKeysEscaper escapes characters SendKeys treats as control syntax.
var sendKeysEscaper = strings.NewReplacer(
	"{", "{{}",
	"}", "{}}",
	"+", "{+}",
	"^", "{^}",
	"%", "{%}",
	"~", "{~}",
	"(", "{(}",
	")", "{)}",
	"[", "{[}",
	"]", "{]}",
)

// TypeText types text as literal keystrokes into the focused element.
func (i *Inputter) TypeText(text string) error {
	script := fmt.Sprintf(`
Add-Type -AssemblyName System.Windows.Forms
[System.Windows.Forms.SendKeys]::SendWait(%s)
`, psQuote(sendKeysEscaper.Replace(text)))
	_, err := runPowerShell(context.Background(), script)
	return err
}

// sendKeysModifiers maps combo modifier tokens to SendKeys prefixes.
var sendKeysModifiers = map[string]string{
	"ctrl":    "^",
	"control": "^",
	"alt":     "%",
	"shift":   "+",
}

// sendKeysNames maps named keys to SendKeys key codes.
var sendKeysNames = map[string]string{
	"enter":     "{ENTER}",
	"return":    "{ENTER}",
	"tab":       "{TAB}",
	"space":     " ",
	"escape":    "{ESC}",
	"esc":       "{ESC}",
	"delete":    "{DEL}",
	"backspace": "{BACKSPACE}",
	"left":      "{LEFT}",
	"right":     "{RIGHT}",
	"up":        "{UP}",
	"down":      "{DOWN}",
	"home":      "{HOME}",
	"end":       "{END}",
	"pageup":    "{PGUP}",
	"pagedown":  "{PGDN}",
	"f1":        "{F1}",
	"f2":        "{F2}",
	"f3":        "{F3}",
	"f4":        "{F4}",
	"f5":        "{F5}",
	"f6":        "{F6}",
	"f7":        "{F7}",
	"f8":        "{F8}",
	"f9":        "{F9}",
	"f10":       "{F10}",
	"f11":       "{F11}",
	"f12":       "{F12}",
}

// KeyCombo presses a key with optional modifiers, e.g. ["ctrl", "s"].
func (i *Inputter) KeyCombo(keys []string) error {
	if len(keys) == 0 {
		return fmt.Errorf("empty key combo")
	}
	var b strings.Builder
	for _, k := range keys[:len(keys)-1] {
		mod, ok := sendKeysModifiers[strings.ToLower(k)]
		if !ok {
			return fmt.Errorf("unknown modifier: %q", k)
		}
		b.WriteString(mod)
	}
	key := strings.ToLower(keys[len(keys)-1])
	if code, ok := sendKeysNames[key]; ok {
		b.WriteString(code)
	} else if len([]rune(key)) == 1 {
		b.WriteString(sendKeysEscaper.Replace(key))
	} else {
		return fmt.Errorf("unknown key: %q", key)
	}

	script := fmt.Sprintf(`
Add-Type -AssemblyName System.Windows.Forms
[System.Windows.Forms.SendKeys]::SendWait(%s)
`, psQuote(b.String()))
	_, err := runPowerShell(context.Background(), script)
	return err
}
