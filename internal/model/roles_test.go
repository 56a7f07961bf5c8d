package model

import "testing"

func strp(s string) *string { return &s }

func TestNormalizeRole_KnownRoles(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"AXButton", "button"},
		{"AXStaticText", "text"},
		{"AXTextField", "textfield"},
		{"AXTextArea", "textarea"},
		{"AXCheckBox", "checkbox"},
		{"AXRadioButton", "radio"},
		{"AXPopUpButton", "combobox"},
		{"AXLink", "link"},
		{"AXWindow", "window"},
		{"AXToolbar", "toolbar"},
		{"AXScrollArea", "scrollarea"},
		{"ControlType.Button", "button"},
		{"ControlType.Edit", "textfield"},
		{"ControlType.Text", "text"},
		{"ControlType.Document", "textarea"},
		{"ControlType.CheckBox", "checkbox"},
		{"ControlType.Hyperlink", "link"},
		{"ControlType.Window", "window"},
		{"ControlType.Pane", "group"},
		{"ControlType.DataGrid", "table"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeRole(strp(tt.input))
			if got != tt.want {
				t.Errorf("NormalizeRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeRole_BothPlatformsAgree(t *testing.T) {
	pairs := []struct{ mac, win string }{
		{"AXButton", "ControlType.Button"},
		{"AXTextField", "ControlType.Edit"},
		{"AXStaticText", "ControlType.Text"},
		{"AXCheckBox", "ControlType.CheckBox"},
		{"AXRadioButton", "ControlType.RadioButton"},
		{"AXLink", "ControlType.Hyperlink"},
		{"AXComboBox", "ControlType.ComboBox"},
		{"AXWindow", "ControlType.Window"},
	}
	for _, p := range pairs {
		mac := NormalizeRole(strp(p.mac))
		win := NormalizeRole(strp(p.win))
		if mac != win {
			t.Errorf("NormalizeRole(%q) = %q but NormalizeRole(%q) = %q, want same role", p.mac, mac, p.win, win)
		}
	}
}

func TestNormalizeRole_Fallback(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"AXRelevanceIndicator", "relevanceindicator"},
		{"ControlType.Thumb", "thumb"},
		{"SomethingElse", "somethingelse"},
		{"AX", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeRole(strp(tt.input))
			if got != tt.want {
				t.Errorf("NormalizeRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeRole_MissingTag(t *testing.T) {
	if got := NormalizeRole(nil); got != "unknown" {
		t.Errorf("NormalizeRole(nil) = %q, want %q", got, "unknown")
	}
	if got := NormalizeRole(strp("")); got != "unknown" {
		t.Errorf(`NormalizeRole("") = %q, want %q`, got, "unknown")
	}
}

func TestIsInteractive(t *testing.T) {
	interactive := []string{
		"AXButton", "AXTextField", "AXCheckBox", "AXLink", "AXComboBox",
		"ControlType.Button", "ControlType.Edit", "ControlType.Hyperlink",
		"ControlType.ListItem",
	}
	for _, tag := range interactive {
		if !IsInteractive(strp(tag)) {
			t.Errorf("IsInteractive(%q) = false, want true", tag)
		}
	}

	passive := []string{
		"AXStaticText", "AXGroup", "AXWindow", "AXImage", "AXScrollArea",
		"ControlType.Text", "ControlType.Pane", "ControlType.Window",
		"ControlType.Image",
	}
	for _, tag := range passive {
		if IsInteractive(strp(tag)) {
			t.Errorf("IsInteractive(%q) = true, want false", tag)
		}
	}

	if IsInteractive(nil) {
		t.Error("IsInteractive(nil) = true, want false")
	}
}
