package model

import "strings"

// FindElements returns every element whose name, role, value, or description
// contains query case-insensitively. The walk is pre-order (parent before
// children) over the already-built tree — note this differs from ref
// assignment, which numbers children before parents; result order and ref
// order do not coincide. The full tree is searched regardless of any filter
// applied when it was read. No match yields an empty result, never an error.
func FindElements(tree []Element, query string) []Element {
	q := strings.ToLower(query)
	var matches []Element
	Walk(tree, func(el *Element, _ int) bool {
		if matchesQuery(*el, q) {
			matches = append(matches, *el)
		}
		return true
	})
	return matches
}

func matchesQuery(el Element, q string) bool {
	return strings.Contains(strings.ToLower(el.Name), q) ||
		strings.Contains(strings.ToLower(el.Role), q) ||
		strings.Contains(strings.ToLower(el.Value), q) ||
		strings.Contains(strings.ToLower(el.Description), q)
}
