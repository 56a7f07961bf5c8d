package cmd

import (
	"context"
	"fmt"

	"github.com/avren/desktop-agent/internal/model"
	"github.com/avren/desktop-agent/internal/platform"
	"github.com/avren/desktop-agent/internal/reader"
)

// newReader builds a provider-backed reader for one-shot CLI invocations.
// Refs only survive within a single process, so commands that act by query
// read and resolve in the same run.
func newReader() (*platform.Provider, *reader.Reader, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, nil, err
	}
	return provider, reader.New(provider.Fetcher), nil
}

// resolveQueryCenter reads the tree scoped to window and returns the center
// of the first element matching query.
func resolveQueryCenter(ctx context.Context, r *reader.Reader, window, query string, depth int) (x, y int, err error) {
	elements, err := r.ReadUI(ctx, reader.Options{WindowTitle: window, Depth: depth})
	if err != nil {
		return 0, 0, err
	}
	matches := model.FindElements(elements, query)
	if len(matches) == 0 {
		return 0, 0, fmt.Errorf("no element matches %q", query)
	}
	x, y = matches[0].Center()
	return x, y, nil
}
