// Package windows implements the platform backends for Windows on top of a
// PowerShell scripting bridge: UI Automation for the element tree, user32
// SendInput-style events and SendKeys for input, System.Drawing for screen
// capture, and Start-/Stop-Process for app lifecycle. Access-denied
// phrasing from the bridge (typically UIPI blocking a non-elevated caller)
// surfaces as platform.PermissionError with the elevation remedy.
package windows
