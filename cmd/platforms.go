package cmd

// Register the platform backends for the current OS.
import (
	_ "github.com/avren/desktop-agent/internal/platform/darwin"
	_ "github.com/avren/desktop-agent/internal/platform/windows"
)
