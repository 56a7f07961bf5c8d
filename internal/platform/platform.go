package platform

import (
	"context"

	"github.com/avren/desktop-agent/internal/model"
)

// TreeFetcher obtains the raw platform-native UI tree from the OS
// accessibility subsystem. One implementation exists per supported platform;
// adding a platform means adding an implementation, not touching the tree
// processor.
type TreeFetcher interface {
	// FetchTree returns the raw element tree for the targeted window. The
	// call may block for the duration of an external scripting-bridge
	// invocation; ctx bounds it (a default timeout applies when ctx carries
	// no deadline). Failures classify as *PermissionError or *FetchError.
	// An unmatched window hint returns an empty tree and no error.
	FetchTree(ctx context.Context, opts FetchOptions) ([]model.RawElement, error)
}

// Inputter simulates mouse and keyboard input.
type Inputter interface {
	Click(x, y int, button MouseButton, count int) error
	TypeText(text string) error
	KeyCombo(keys []string) error
}

// WindowManager enumerates and focuses windows.
type WindowManager interface {
	ListWindows() ([]Window, error)
	FocusWindow(opts FocusOptions) error
	FrontmostApp() (string, error)
}

// Screenshotter captures screenshots, returning encoded image bytes.
type Screenshotter interface {
	Capture(opts ScreenshotOptions) ([]byte, error)
}

// AppManager launches and quits applications.
type AppManager interface {
	Open(opts OpenOptions) error
	Quit(app string) error
}

// Clipboard reads and writes the system clipboard text.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}
