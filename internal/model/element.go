package model

// Element is a normalized UI element produced by one read generation.
// Refs are only meaningful against the cache of the read that produced them.
type Element struct {
	Ref         string    `yaml:"ref"                   json:"ref"`  // Generation-scoped reference ID
	Role        string    `yaml:"role"                  json:"role"` // Normalized semantic role
	Name        string    `yaml:"name,omitempty"        json:"name,omitempty"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"` // Only when it differs from Name
	Value       string    `yaml:"value,omitempty"       json:"value,omitempty"`
	Enabled     *bool     `yaml:"enabled,omitempty"     json:"enabled,omitempty"` // nil = unknown
	Bounds      [4]int    `yaml:"bounds"                json:"bounds"`            // [x, y, width, height] in screen pixels
	Children    []Element `yaml:"children,omitempty"    json:"children,omitempty"`
}

// Center returns the element's center point in screen pixels, rounded to
// the nearest integer.
func (e Element) Center() (x, y int) {
	return roundHalf(e.Bounds[0], e.Bounds[2]), roundHalf(e.Bounds[1], e.Bounds[3])
}

// roundHalf computes origin + extent/2 rounded to the nearest pixel.
func roundHalf(origin, extent int) int {
	v := origin*2 + extent
	if v >= 0 {
		return (v + 1) / 2
	}
	return -((-v + 1) / 2)
}

// Walk visits all elements pre-order (parent before children). The visitor
// returning false stops descent into that element's children.
func Walk(elements []Element, visit func(el *Element, depth int) bool) {
	walk(elements, 0, visit)
}

func walk(elements []Element, depth int, visit func(el *Element, depth int) bool) {
	for i := range elements {
		if visit(&elements[i], depth) {
			walk(elements[i].Children, depth+1, visit)
		}
	}
}

// CountElements returns the total number of elements in the tree.
func CountElements(elements []Element) int {
	n := 0
	Walk(elements, func(*Element, int) bool {
		n++
		return true
	})
	return n
}
