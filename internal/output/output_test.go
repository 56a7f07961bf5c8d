package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/avren/desktop-agent/internal/model"
)

func TestFprint_YAML(t *testing.T) {
	OutputFormat = FormatYAML
	defer func() { OutputFormat = FormatYAML }()

	var buf bytes.Buffer
	result := ReadResult{
		Window: "Notes",
		TS:     1700000000,
		Elements: []model.Element{
			{Ref: "e1", Role: "button", Name: "Save", Bounds: [4]int{10, 5, 60, 30}},
		},
	}
	if err := Fprint(&buf, result); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"window: Notes", "ref: e1", "role: button", "name: Save"} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml output missing %q:\n%s", want, out)
		}
	}
}

func TestFprint_JSON(t *testing.T) {
	OutputFormat = FormatJSON
	defer func() { OutputFormat = FormatYAML }()

	var buf bytes.Buffer
	result := FindResult{Query: "a&b", Matches: []model.Element{}}
	if err := Fprint(&buf, result); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"query":"a&b"`) {
		t.Errorf("json output should not escape HTML:\n%s", out)
	}
	if !strings.Contains(out, `"matches":[]`) {
		t.Errorf("empty matches should serialize as []:\n%s", out)
	}
}

func TestFprint_PrettyJSON(t *testing.T) {
	OutputFormat = FormatJSON
	PrettyOutput = true
	defer func() {
		OutputFormat = FormatYAML
		PrettyOutput = false
	}()

	var buf bytes.Buffer
	if err := Fprint(&buf, map[string]int{"n": 1}); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Errorf("pretty output not indented: %q", buf.String())
	}
}
