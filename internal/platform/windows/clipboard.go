//go:build windows

package windows

import (
	"context"
	"fmt"
)

// Clipboard reads and writes the clipboard via Get-/Set-Clipboard.
type Clipboard struct{}

// NewClipboard creates the Windows clipboard accessor.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// ReadText returns the current clipboard text.
func (c *Clipboard) ReadText() (string, error) {
	out, err := runPowerShell(context.Background(), "Get-Clipboard -Raw")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// WriteText replaces the clipboard contents with text.
func (c *Clipboard) WriteText(text string) error {
	script := fmt.Sprintf("Set-Clipboard -Value %s", psQuote(text))
	_, err := runPowerShell(context.Background(), script)
	return err
}
