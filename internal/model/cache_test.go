package model

import "testing"

func TestCenter_Rounding(t *testing.T) {
	tests := []struct {
		bounds [4]int
		wantX  int
		wantY  int
	}{
		{[4]int{100, 30, 80, 28}, 140, 44},
		{[4]int{100, 5, 80, 28}, 140, 19},
		{[4]int{0, 0, 0, 0}, 0, 0},
		{[4]int{10, 10, 1, 1}, 11, 11},
	}
	for _, tt := range tests {
		el := Element{Bounds: tt.bounds}
		x, y := el.Center()
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("Center(%v) = (%d, %d), want (%d, %d)", tt.bounds, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestRefCache_AssignAndGet(t *testing.T) {
	cache := NewRefCache()
	el := Element{Role: "button", Name: "OK", Bounds: [4]int{10, 10, 20, 20}}
	cache.assign(&el)

	if el.Ref != "e1" {
		t.Fatalf("first ref = %s, want e1", el.Ref)
	}
	got, ok := cache.Get("e1")
	if !ok || got.Name != "OK" {
		t.Errorf("Get(e1) = %+v, %v, want the OK button", got, ok)
	}

	x, y, ok := cache.Center("e1")
	if !ok || x != 20 || y != 20 {
		t.Errorf("Center(e1) = (%d, %d), %v, want (20, 20), true", x, y, ok)
	}
}

func TestRefCache_ResetInvalidatesRefs(t *testing.T) {
	cache := NewRefCache()
	el := Element{Role: "button"}
	cache.assign(&el)

	cache.Reset()
	if cache.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", cache.Len())
	}
	if _, ok := cache.Get("e1"); ok {
		t.Error("stale ref e1 still resolves after Reset")
	}

	// The counter restarts, so the next generation reuses e1.
	el2 := Element{Role: "link"}
	cache.assign(&el2)
	if el2.Ref != "e1" {
		t.Errorf("ref after Reset = %s, want e1", el2.Ref)
	}
}

func TestRefCache_UnknownRef(t *testing.T) {
	cache := NewRefCache()
	if _, ok := cache.Get("e99"); ok {
		t.Error("Get(e99) on empty cache reported ok")
	}
	if _, _, ok := cache.Center("e99"); ok {
		t.Error("Center(e99) on empty cache reported ok")
	}
}
