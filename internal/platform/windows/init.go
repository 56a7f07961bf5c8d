//go:build windows

package windows

import "github.com/avren/desktop-agent/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Fetcher:       NewFetcher(),
			Inputter:      NewInputter(),
			WindowManager: NewWindowManager(),
			Screenshotter: NewScreenshotter(NewWindowManager()),
			AppManager:    NewAppManager(),
			Clipboard:     NewClipboard(),
		}, nil
	}
}
