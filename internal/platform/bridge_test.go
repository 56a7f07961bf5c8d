package platform

import "testing"

func TestDecodeRawTree_Empty(t *testing.T) {
	for _, data := range [][]byte{nil, []byte(""), []byte("  \n\t")} {
		raw, err := DecodeRawTree(data)
		if err != nil {
			t.Errorf("DecodeRawTree(%q): %v", data, err)
		}
		if len(raw) != 0 {
			t.Errorf("DecodeRawTree(%q) = %d elements, want 0", data, len(raw))
		}
	}
}

func TestDecodeRawTree_MissingFields(t *testing.T) {
	payload := []byte(`[
		{"role": "AXButton", "title": "OK", "position": {"x": 1, "y": 2}, "size": {"width": 3, "height": 4}},
		{"role": "AXGroup", "children": [{"title": "no role"}]},
		{}
	]`)
	raw, err := DecodeRawTree(payload)
	if err != nil {
		t.Fatalf("DecodeRawTree: %v", err)
	}
	if len(raw) != 3 {
		t.Fatalf("got %d elements, want 3", len(raw))
	}

	if raw[0].Role == nil || *raw[0].Role != "AXButton" {
		t.Errorf("first role = %v, want AXButton", raw[0].Role)
	}
	if raw[0].Position == nil || raw[0].Position.X != 1 {
		t.Errorf("first position = %+v, want x=1", raw[0].Position)
	}
	if raw[1].Title != nil || raw[1].Value != nil || raw[1].Enabled != nil {
		t.Error("absent fields should decode to nil")
	}
	if len(raw[1].Children) != 1 || raw[1].Children[0].Role != nil {
		t.Errorf("nested child = %+v, want one role-less child", raw[1].Children)
	}
	if raw[2].Role != nil || raw[2].Position != nil {
		t.Error("empty object should decode with all fields nil")
	}
}

func TestDecodeRawTree_Malformed(t *testing.T) {
	for _, data := range []string{"not json", `{"role": "AXButton"}`, "[{"} {
		if _, err := DecodeRawTree([]byte(data)); err == nil {
			t.Errorf("DecodeRawTree(%q) succeeded, want error", data)
		}
	}
}

func TestCappedBuffer(t *testing.T) {
	b := &cappedBuffer{limit: 8}
	n, err := b.Write([]byte("12345"))
	if n != 5 || err != nil {
		t.Fatalf("Write = %d, %v", n, err)
	}
	n, err = b.Write([]byte("67890"))
	if n != 5 || err != nil {
		t.Fatalf("overflow Write = %d, %v, want reported success", n, err)
	}
	if !b.overflow {
		t.Error("overflow not flagged")
	}
	if got := b.buf.String(); got != "12345678" {
		t.Errorf("buffer = %q, want truncated at the limit", got)
	}
}

func TestParseMouseButton(t *testing.T) {
	tests := []struct {
		input string
		want  MouseButton
		ok    bool
	}{
		{"", MouseLeft, true},
		{"left", MouseLeft, true},
		{"Right", MouseRight, true},
		{"middle", MouseMiddle, true},
		{"fourth", MouseLeft, false},
	}
	for _, tt := range tests {
		got, err := ParseMouseButton(tt.input)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseMouseButton(%q) = %v, %v, want %v, ok=%v", tt.input, got, err, tt.want, tt.ok)
		}
	}
}
