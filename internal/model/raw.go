package model

// RawElement is one node of the platform-native tree as emitted by a
// scripting bridge. The bridge output is an untrusted schema: every field is
// optional and decoded independently, so all scalars are pointers. A
// RawElement is consumed by exactly one ProcessTree pass and then discarded.
type RawElement struct {
	Role        *string      `json:"role"`
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Value       *string      `json:"value"`
	Enabled     *bool        `json:"enabled"`
	Position    *RawPoint    `json:"position"`
	Size        *RawSize     `json:"size"`
	Children    []RawElement `json:"children"`
}

// RawPoint is a screen-space position in pixels.
type RawPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RawSize is an element extent in pixels.
type RawSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}
