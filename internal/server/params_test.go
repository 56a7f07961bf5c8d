package server

import "testing"

func TestStringParam(t *testing.T) {
	params := map[string]interface{}{"set": "value", "empty": "", "wrong": 42}
	if got := stringParam(params, "set", "def"); got != "value" {
		t.Errorf("set = %q, want value", got)
	}
	if got := stringParam(params, "empty", "def"); got != "def" {
		t.Errorf("empty = %q, want default", got)
	}
	if got := stringParam(params, "wrong", "def"); got != "def" {
		t.Errorf("wrong type = %q, want default", got)
	}
	if got := stringParam(params, "missing", "def"); got != "def" {
		t.Errorf("missing = %q, want default", got)
	}
}

func TestIntParam(t *testing.T) {
	// JSON numbers arrive as float64.
	params := map[string]interface{}{"f": float64(7), "i": 3, "s": "9"}
	if got := intParam(params, "f", 0); got != 7 {
		t.Errorf("float64 = %d, want 7", got)
	}
	if got := intParam(params, "i", 0); got != 3 {
		t.Errorf("int = %d, want 3", got)
	}
	if got := intParam(params, "s", 5); got != 5 {
		t.Errorf("string = %d, want default", got)
	}
	if got := intParam(params, "missing", 10); got != 10 {
		t.Errorf("missing = %d, want default", got)
	}
}

func TestFloatParam(t *testing.T) {
	params := map[string]interface{}{"f": 0.25, "i": 2}
	if got := floatParam(params, "f", 1); got != 0.25 {
		t.Errorf("float = %v, want 0.25", got)
	}
	if got := floatParam(params, "i", 1); got != 2 {
		t.Errorf("int = %v, want 2", got)
	}
	if got := floatParam(params, "missing", 0.5); got != 0.5 {
		t.Errorf("missing = %v, want default", got)
	}
}

func TestBoolParam(t *testing.T) {
	params := map[string]interface{}{"t": true, "f": false, "s": "true"}
	if !boolParam(params, "t", false) {
		t.Error("true = false")
	}
	if boolParam(params, "f", true) {
		t.Error("false = true, explicit false must win over the default")
	}
	if boolParam(params, "s", false) {
		t.Error("string should fall back to default")
	}
}
