package model

// Filter selects which elements survive tree processing.
type Filter string

const (
	// FilterAll keeps every element.
	FilterAll Filter = "all"
	// FilterInteractive keeps interactive elements plus any container with a
	// surviving interactive descendant (retained for structural context).
	FilterInteractive Filter = "interactive"
)

// ParseFilter converts a string option to a Filter. Empty means FilterAll.
func ParseFilter(s string) (Filter, bool) {
	switch Filter(s) {
	case "", FilterAll:
		return FilterAll, true
	case FilterInteractive:
		return FilterInteractive, true
	default:
		return FilterAll, false
	}
}

// ProcessTree normalizes a raw platform tree in a single depth-first
// post-order pass: children are processed before their parent, surviving
// nodes are ref-assigned in finalization order, and each finalized element
// is inserted into cache. An empty raw tree yields an empty result and an
// empty cache.
func ProcessTree(raw []RawElement, filter Filter, cache *RefCache) []Element {
	var out []Element
	for _, node := range raw {
		if el, ok := processNode(node, filter, cache); ok {
			out = append(out, el)
		}
	}
	return out
}

func processNode(raw RawElement, filter Filter, cache *RefCache) (Element, bool) {
	children := ProcessTree(raw.Children, filter, cache)

	// A non-interactive node with no surviving children is dropped under the
	// interactive filter; one with surviving descendants stays as context.
	if filter == FilterInteractive && !IsInteractive(raw.Role) && len(children) == 0 {
		return Element{}, false
	}

	el := Element{
		Role:     NormalizeRole(raw.Role),
		Enabled:  raw.Enabled,
		Bounds:   rawBounds(raw),
		Children: children,
	}

	if raw.Title != nil && *raw.Title != "" {
		el.Name = *raw.Title
	} else if raw.Description != nil {
		el.Name = *raw.Description
	}
	if raw.Description != nil && *raw.Description != el.Name {
		el.Description = *raw.Description
	}
	if raw.Value != nil {
		el.Value = *raw.Value
	}

	cache.assign(&el)
	return el, true
}

// rawBounds builds [x, y, w, h] defaulting missing geometry to 0 and
// clamping negative extents, keeping the width/height >= 0 invariant.
func rawBounds(raw RawElement) [4]int {
	var b [4]int
	if raw.Position != nil {
		b[0], b[1] = raw.Position.X, raw.Position.Y
	}
	if raw.Size != nil {
		b[2], b[3] = raw.Size.Width, raw.Size.Height
	}
	if b[2] < 0 {
		b[2] = 0
	}
	if b[3] < 0 {
		b[3] = 0
	}
	return b
}
