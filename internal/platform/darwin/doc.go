// Package darwin implements the platform backends for macOS on top of the
// osascript scripting bridge (JXA against System Events) plus the
// screencapture, open, and pbcopy/pbpaste utilities. Reading the UI tree
// requires the Accessibility permission; bridge failures carrying the
// assistive-access phrasing surface as platform.PermissionError with the
// privacy-setting remedy.
package darwin
