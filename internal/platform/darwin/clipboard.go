//go:build darwin

package darwin

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Clipboard reads and writes the pasteboard via pbpaste/pbcopy.
type Clipboard struct{}

// NewClipboard creates the macOS clipboard accessor.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// ReadText returns the current clipboard text.
func (c *Clipboard) ReadText() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	out, err := exec.CommandContext(ctx, "pbpaste").Output()
	if err != nil {
		return "", fmt.Errorf("pbpaste: %w", err)
	}
	return string(out), nil
}

// WriteText replaces the clipboard contents with text.
func (c *Clipboard) WriteText(text string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cmd := exec.CommandContext(ctx, "pbcopy")
	cmd.Stdin = strings.NewReader(text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pbcopy: %w (%s)", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
