package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Fetcher       TreeFetcher
	Inputter      Inputter
	WindowManager WindowManager
	Screenshotter Screenshotter
	AppManager    AppManager
	Clipboard     Clipboard
}

// ErrUnsupported is returned on platforms without a backend implementation.
var ErrUnsupported = fmt.Errorf("desktop-agent is not supported on %s/%s; supported: darwin, windows", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go and internal/platform/windows/init.go.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
