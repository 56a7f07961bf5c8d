package model

import (
	"fmt"
	"strings"
)

// FormatTree renders the tree as indented text for agent consumption: one
// line per element, two spaces per depth level, in the form
//
//	[ref] role "name" value="..." (disabled)
//
// value appears only when non-empty; (disabled) only when enabled is
// explicitly false, not merely unknown.
func FormatTree(tree []Element) string {
	var b strings.Builder
	Walk(tree, func(el *Element, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth))
		fmt.Fprintf(&b, "[%s] %s %q", el.Ref, el.Role, el.Name)
		if el.Value != "" {
			fmt.Fprintf(&b, " value=%q", el.Value)
		}
		if el.Enabled != nil && !*el.Enabled {
			b.WriteString(" (disabled)")
		}
		b.WriteByte('\n')
		return true
	})
	return b.String()
}
