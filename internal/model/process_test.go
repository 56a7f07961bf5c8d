package model

import "testing"

func boolp(b bool) *bool { return &b }

// sampleRawTree is a window holding a toolbar with two buttons, a text field,
// and a static label: six nodes total.
func sampleRawTree() []RawElement {
	return []RawElement{{
		Role:     strp("AXWindow"),
		Title:    strp("Untitled"),
		Position: &RawPoint{X: 0, Y: 0},
		Size:     &RawSize{Width: 800, Height: 600},
		Children: []RawElement{
			{
				Role:     strp("AXToolbar"),
				Position: &RawPoint{X: 0, Y: 0},
				Size:     &RawSize{Width: 800, Height: 40},
				Children: []RawElement{
					{
						Role:     strp("AXButton"),
						Title:    strp("Save"),
						Enabled:  boolp(true),
						Position: &RawPoint{X: 10, Y: 5},
						Size:     &RawSize{Width: 60, Height: 30},
					},
					{
						Role:     strp("AXButton"),
						Title:    strp("Delete"),
						Enabled:  boolp(false),
						Position: &RawPoint{X: 80, Y: 5},
						Size:     &RawSize{Width: 60, Height: 30},
					},
				},
			},
			{
				Role:     strp("AXTextField"),
				Value:    strp("hello"),
				Position: &RawPoint{X: 100, Y: 100},
				Size:     &RawSize{Width: 200, Height: 24},
			},
			{
				Role:     strp("AXStaticText"),
				Title:    strp("Status: ready"),
				Position: &RawPoint{X: 100, Y: 560},
				Size:     &RawSize{Width: 200, Height: 16},
			},
		},
	}}
}

func TestProcessTree_All(t *testing.T) {
	cache := NewRefCache()
	out := ProcessTree(sampleRawTree(), FilterAll, cache)

	if got := CountElements(out); got != 6 {
		t.Fatalf("CountElements = %d, want 6", got)
	}
	if cache.Len() != 6 {
		t.Fatalf("cache.Len() = %d, want 6", cache.Len())
	}

	win := out[0]
	if win.Role != "window" || win.Name != "Untitled" {
		t.Errorf("root = %q %q, want window Untitled", win.Role, win.Name)
	}
	if len(win.Children) != 3 {
		t.Fatalf("window children = %d, want 3", len(win.Children))
	}
}

func TestProcessTree_RefOrderIsPostOrder(t *testing.T) {
	cache := NewRefCache()
	out := ProcessTree(sampleRawTree(), FilterAll, cache)

	// Children are numbered before their parents.
	win := out[0]
	toolbar := win.Children[0]
	if toolbar.Children[0].Ref != "e1" || toolbar.Children[1].Ref != "e2" {
		t.Errorf("buttons = %s, %s, want e1, e2", toolbar.Children[0].Ref, toolbar.Children[1].Ref)
	}
	if toolbar.Ref != "e3" {
		t.Errorf("toolbar ref = %s, want e3", toolbar.Ref)
	}
	if win.Ref != "e6" {
		t.Errorf("window ref = %s, want e6", win.Ref)
	}

	// Refs are unique across the tree.
	seen := map[string]bool{}
	Walk(out, func(el *Element, _ int) bool {
		if el.Ref == "" {
			t.Errorf("element %q has empty ref", el.Role)
		}
		if seen[el.Ref] {
			t.Errorf("duplicate ref %s", el.Ref)
		}
		seen[el.Ref] = true
		return true
	})
}

func TestProcessTree_InteractiveFilter(t *testing.T) {
	cache := NewRefCache()
	out := ProcessTree(sampleRawTree(), FilterInteractive, cache)

	roles := map[string]int{}
	Walk(out, func(el *Element, _ int) bool {
		roles[el.Role]++
		return true
	})

	if roles["text"] != 0 {
		t.Error("static text survived the interactive filter")
	}
	if roles["button"] != 2 || roles["textfield"] != 1 {
		t.Errorf("roles = %v, want 2 buttons and 1 textfield", roles)
	}
	// The window is not interactive but is kept as container context.
	if roles["window"] != 1 {
		t.Errorf("roles = %v, want the window retained for context", roles)
	}
	if got := CountElements(out); got != 5 {
		t.Errorf("CountElements = %d, want 5", got)
	}
	if cache.Len() != 5 {
		t.Errorf("cache.Len() = %d, want 5", cache.Len())
	}

	// Disabled elements are still included; only the formatter marks them.
	del, ok := cache.Get("e2")
	if !ok || del.Name != "Delete" {
		t.Fatalf("cache.Get(e2) = %+v, %v, want the Delete button", del, ok)
	}
	if del.Enabled == nil || *del.Enabled {
		t.Error("Delete button should carry enabled=false")
	}
}

func TestProcessTree_NameFallback(t *testing.T) {
	tests := []struct {
		name     string
		raw      RawElement
		wantName string
		wantDesc string
	}{
		{
			name:     "title wins",
			raw:      RawElement{Role: strp("AXButton"), Title: strp("OK"), Description: strp("confirm button")},
			wantName: "OK",
			wantDesc: "confirm button",
		},
		{
			name:     "description fills empty title",
			raw:      RawElement{Role: strp("AXButton"), Description: strp("close")},
			wantName: "close",
			wantDesc: "",
		},
		{
			name:     "identical description suppressed",
			raw:      RawElement{Role: strp("AXButton"), Title: strp("OK"), Description: strp("OK")},
			wantName: "OK",
			wantDesc: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ProcessTree([]RawElement{tt.raw}, FilterAll, NewRefCache())
			if len(out) != 1 {
				t.Fatalf("got %d elements, want 1", len(out))
			}
			if out[0].Name != tt.wantName || out[0].Description != tt.wantDesc {
				t.Errorf("name/description = %q/%q, want %q/%q",
					out[0].Name, out[0].Description, tt.wantName, tt.wantDesc)
			}
		})
	}
}

func TestProcessTree_MissingAndNegativeGeometry(t *testing.T) {
	raw := []RawElement{
		{Role: strp("AXButton")},
		{Role: strp("AXButton"), Position: &RawPoint{X: 10, Y: 20}, Size: &RawSize{Width: -5, Height: -1}},
	}
	out := ProcessTree(raw, FilterAll, NewRefCache())

	if out[0].Bounds != [4]int{0, 0, 0, 0} {
		t.Errorf("missing geometry bounds = %v, want zeros", out[0].Bounds)
	}
	if out[1].Bounds != [4]int{10, 20, 0, 0} {
		t.Errorf("negative extents bounds = %v, want clamped to 0", out[1].Bounds)
	}
}

func TestProcessTree_Empty(t *testing.T) {
	cache := NewRefCache()
	out := ProcessTree(nil, FilterAll, cache)
	if len(out) != 0 {
		t.Errorf("got %d elements, want 0", len(out))
	}
	if cache.Len() != 0 {
		t.Errorf("cache.Len() = %d, want 0", cache.Len())
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		input string
		want  Filter
		ok    bool
	}{
		{"", FilterAll, true},
		{"all", FilterAll, true},
		{"interactive", FilterInteractive, true},
		{"buttons", FilterAll, false},
	}
	for _, tt := range tests {
		got, ok := ParseFilter(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseFilter(%q) = %v, %v, want %v, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}
