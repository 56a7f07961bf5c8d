package model

import "fmt"

// RefCache maps refs to normalized elements for one read generation. It is
// owned by a single reader instance and holds exactly one generation at a
// time: Reset discards the previous generation entirely, so a ref from a
// stale tree resolves only against the current cache (usually to absence).
//
// RefCache is not safe for concurrent mutation; the owning reader serializes
// access.
type RefCache struct {
	elements map[string]Element
	next     int
}

// NewRefCache returns an empty cache ready for its first generation.
func NewRefCache() *RefCache {
	return &RefCache{elements: make(map[string]Element), next: 1}
}

// Reset clears the cache and restarts the ref counter at 1. Called
// unconditionally at the start of every read, so a failed read leaves an
// explicitly empty cache rather than a half-written one.
func (c *RefCache) Reset() {
	c.elements = make(map[string]Element)
	c.next = 1
}

// assign gives el the next sequential ref and stores a copy. Elements are
// finalized children-first, so a child's ref is always numerically below its
// parent's.
func (c *RefCache) assign(el *Element) {
	el.Ref = fmt.Sprintf("e%d", c.next)
	c.next++
	c.elements[el.Ref] = *el
}

// Get returns the element for ref. Absence is a normal outcome (stale or
// unknown refs), not an error.
func (c *RefCache) Get(ref string) (Element, bool) {
	el, ok := c.elements[ref]
	return el, ok
}

// Center resolves ref to the element's center point in screen pixels.
func (c *RefCache) Center(ref string) (x, y int, ok bool) {
	el, ok := c.elements[ref]
	if !ok {
		return 0, 0, false
	}
	x, y = el.Center()
	return x, y, true
}

// Len returns the number of elements in the current generation.
func (c *RefCache) Len() int {
	return len(c.elements)
}
