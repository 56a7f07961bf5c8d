//go:build darwin

package darwin

import (
	"context"
	"strconv"

	"github.com/avren/desktop-agent/internal/model"
	"github.com/avren/desktop-agent/internal/platform"
)

// fetchScript walks the System Events UI element tree and prints it as a
// JSON array of raw nodes. Each attribute read is isolated in its own
// try/catch so a single unreadable property never aborts the node or its
// children. An unmatched hint prints [] — absence of a target is a valid
// "nothing to read" outcome, not an error.
const fetchScript = `
function run(argv) {
  var hint = argv[0] || '';
  var maxDepth = parseInt(argv[1], 10);
  if (isNaN(maxDepth) || maxDepth < 1) maxDepth = 10;

  var se = Application('System Events');
  var windows = [];

  if (hint === '') {
    var front = se.applicationProcesses.whose({ frontmost: true });
    if (front.length > 0) {
      try {
        var ws = front[0].windows();
        if (ws.length > 0) windows = [ws[0]];
      } catch (e) {}
    }
  } else {
    var lower = hint.toLowerCase();
    var procs = se.applicationProcesses();
    for (var i = 0; i < procs.length && windows.length === 0; i++) {
      try {
        if (procs[i].name().toLowerCase().indexOf(lower) !== -1) {
          windows = procs[i].windows();
        }
      } catch (e) {}
    }
    if (windows.length === 0) {
      search:
      for (var i = 0; i < procs.length; i++) {
        var ws;
        try { ws = procs[i].windows(); } catch (e) { continue; }
        for (var j = 0; j < ws.length; j++) {
          try {
            var title = ws[j].name();
            if (title && title.toLowerCase().indexOf(lower) !== -1) {
              windows = [ws[j]];
              break search;
            }
          } catch (e) {}
        }
      }
    }
  }

  if (windows.length === 0) return '[]';

  var out = [];
  for (var i = 0; i < windows.length; i++) {
    out.push(walk(windows[i], 1, maxDepth));
  }
  return JSON.stringify(out);
}

function walk(el, depth, maxDepth) {
  var node = {};
  try { node.role = el.role(); } catch (e) {}
  try {
    var t = el.title();
    if (t) node.title = String(t);
  } catch (e) {}
  try {
    var d = el.description();
    if (d) node.description = String(d);
  } catch (e) {}
  try {
    var v = el.value();
    if (v !== null && v !== undefined) node.value = String(v);
  } catch (e) {}
  try { node.enabled = el.enabled(); } catch (e) {}
  try {
    var p = el.position();
    if (p) node.position = { x: Math.round(p[0]), y: Math.round(p[1]) };
  } catch (e) {}
  try {
    var s = el.size();
    if (s) node.size = { width: Math.round(s[0]), height: Math.round(s[1]) };
  } catch (e) {}
  if (depth < maxDepth) {
    try {
      var kids = el.uiElements();
      if (kids.length > 0) {
        var children = [];
        for (var i = 0; i < kids.length; i++) {
          children.push(walk(kids[i], depth + 1, maxDepth));
        }
        node.children = children;
      }
    } catch (e) {}
  }
  return node;
}
`

// Fetcher reads the macOS accessibility tree through the osascript bridge.
type Fetcher struct{}

// NewFetcher creates the macOS tree fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// FetchTree runs the JXA walk and decodes its JSON payload.
func (f *Fetcher) FetchTree(ctx context.Context, opts platform.FetchOptions) ([]model.RawElement, error) {
	depth := opts.Depth
	if depth < 1 {
		depth = 1
	}
	out, err := runJXA(ctx, fetchScript, opts.WindowTitle, strconv.Itoa(depth))
	if err != nil {
		return nil, err
	}
	raw, err := platform.DecodeRawTree(out)
	if err != nil {
		return nil, &platform.FetchError{Cause: err}
	}
	return raw, nil
}
