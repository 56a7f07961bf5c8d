package model

import "testing"

func searchTree() []Element {
	return []Element{{
		Ref: "e6", Role: "window", Name: "Documents",
		Children: []Element{
			{Ref: "e3", Role: "toolbar", Children: []Element{
				{Ref: "e1", Role: "button", Name: "Save"},
				{Ref: "e2", Role: "button", Name: "Save As", Description: "save with a new name"},
			}},
			{Ref: "e4", Role: "textfield", Value: "hello world"},
			{Ref: "e5", Role: "text", Name: "Status: ready"},
		},
	}}
}

func TestFindElements_CaseInsensitiveName(t *testing.T) {
	matches := FindElements(searchTree(), "SAVE")
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	// Pre-order: parent-side elements come before deeper siblings.
	if matches[0].Ref != "e1" || matches[1].Ref != "e2" {
		t.Errorf("match refs = %s, %s, want e1, e2", matches[0].Ref, matches[1].Ref)
	}
}

func TestFindElements_MatchesValueAndRole(t *testing.T) {
	matches := FindElements(searchTree(), "hello")
	if len(matches) != 1 || matches[0].Ref != "e4" {
		t.Fatalf("value search = %v, want just e4", refsOf(matches))
	}

	matches = FindElements(searchTree(), "textfield")
	if len(matches) != 1 || matches[0].Ref != "e4" {
		t.Fatalf("role search = %v, want just e4", refsOf(matches))
	}

	matches = FindElements(searchTree(), "new name")
	if len(matches) != 1 || matches[0].Ref != "e2" {
		t.Fatalf("description search = %v, want just e2", refsOf(matches))
	}
}

func TestFindElements_NoMatch(t *testing.T) {
	matches := FindElements(searchTree(), "nonexistent")
	if len(matches) != 0 {
		t.Errorf("got %d matches, want 0", len(matches))
	}
}

func refsOf(elements []Element) []string {
	refs := make([]string, len(elements))
	for i, el := range elements {
		refs[i] = el.Ref
	}
	return refs
}
