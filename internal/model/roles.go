package model

import "strings"

// roleTable maps platform-native role tags to the shared semantic vocabulary.
// macOS tags carry the "AX" prefix; Windows UI Automation tags carry the
// "ControlType." prefix from ControlType.ProgrammaticName.
var roleTable = map[string]string{
	// macOS (AXRole values)
	"AXApplication":        "application",
	"AXWindow":             "window",
	"AXSheet":              "sheet",
	"AXDrawer":             "drawer",
	"AXButton":             "button",
	"AXCheckBox":           "checkbox",
	"AXRadioButton":        "radio",
	"AXSwitch":             "switch",
	"AXTextField":          "textfield",
	"AXTextArea":           "textarea",
	"AXSearchField":        "searchfield",
	"AXSecureTextField":    "passwordfield",
	"AXDateField":          "datefield",
	"AXTimeField":          "datefield",
	"AXStaticText":         "text",
	"AXHeading":            "heading",
	"AXImage":              "image",
	"AXGroup":              "group",
	"AXSplitGroup":         "splitter",
	"AXSplitter":           "splitter",
	"AXScrollArea":         "scrollarea",
	"AXScrollBar":          "scrollbar",
	"AXToolbar":            "toolbar",
	"AXMenu":               "menu",
	"AXMenuBar":            "menubar",
	"AXMenuBarItem":        "menuitem",
	"AXMenuItem":           "menuitem",
	"AXMenuButton":         "button",
	"AXPopUpButton":        "combobox",
	"AXComboBox":           "combobox",
	"AXList":               "list",
	"AXTable":              "table",
	"AXOutline":            "outline",
	"AXRow":                "row",
	"AXCell":               "cell",
	"AXColumn":             "column",
	"AXLink":               "link",
	"AXTabGroup":           "tabgroup",
	"AXSlider":             "slider",
	"AXIncrementor":        "spinner",
	"AXDisclosureTriangle": "disclosure",
	"AXProgressIndicator":  "progress",
	"AXBusyIndicator":      "busy",
	"AXColorWell":          "colorwell",
	"AXHelpTag":            "tooltip",
	"AXWebArea":            "webarea",
	"AXUnknown":            "unknown",

	// Windows (UI Automation ControlType.ProgrammaticName values)
	"ControlType.Window":      "window",
	"ControlType.Pane":        "group",
	"ControlType.Group":       "group",
	"ControlType.Button":      "button",
	"ControlType.SplitButton": "button",
	"ControlType.CheckBox":    "checkbox",
	"ControlType.RadioButton": "radio",
	"ControlType.Edit":        "textfield",
	"ControlType.Document":    "textarea",
	"ControlType.Text":        "text",
	"ControlType.Image":       "image",
	"ControlType.ScrollBar":   "scrollbar",
	"ControlType.ToolBar":     "toolbar",
	"ControlType.AppBar":      "toolbar",
	"ControlType.Menu":        "menu",
	"ControlType.MenuBar":     "menubar",
	"ControlType.MenuItem":    "menuitem",
	"ControlType.ComboBox":    "combobox",
	"ControlType.List":        "list",
	"ControlType.ListItem":    "listitem",
	"ControlType.Table":       "table",
	"ControlType.DataGrid":    "table",
	"ControlType.DataItem":    "row",
	"ControlType.Header":      "group",
	"ControlType.HeaderItem":  "cell",
	"ControlType.Tree":        "outline",
	"ControlType.TreeItem":    "listitem",
	"ControlType.Hyperlink":   "link",
	"ControlType.Tab":         "tabgroup",
	"ControlType.TabItem":     "tab",
	"ControlType.Slider":      "slider",
	"ControlType.Spinner":     "spinner",
	"ControlType.ProgressBar": "progress",
	"ControlType.StatusBar":   "statusbar",
	"ControlType.TitleBar":    "titlebar",
	"ControlType.ToolTip":     "tooltip",
	"ControlType.Calendar":    "datefield",
	"ControlType.Custom":      "custom",
}

// rolePrefixes are platform prefixes stripped before the lowercase fallback.
// "ControlType." must come first so "AX" doesn't shadow longer prefixes.
var rolePrefixes = []string{"ControlType.", "AX"}

// NormalizeRole maps a platform-native role tag to the shared vocabulary.
// Tags absent from the table fall back to the prefix-stripped, lowercased
// tag. An empty or nil tag normalizes to "unknown". Never fails.
func NormalizeRole(rawTag *string) string {
	if rawTag == nil || *rawTag == "" {
		return "unknown"
	}
	tag := *rawTag
	if role, ok := roleTable[tag]; ok {
		return role
	}
	for _, prefix := range rolePrefixes {
		if strings.HasPrefix(tag, prefix) {
			tag = strings.TrimPrefix(tag, prefix)
			break
		}
	}
	if tag == "" {
		return "unknown"
	}
	return strings.ToLower(tag)
}

// interactiveTags is the set of raw role tags treated as user-actionable by
// the interactive filter. Classification runs over raw tags, not normalized
// roles, so both platform vocabularies are listed. Enabled state is ignored
// here: disabled elements stay actionable, and only the formatter consumes an
// explicit false.
var interactiveTags = map[string]bool{
	// macOS
	"AXButton":             true,
	"AXCheckBox":           true,
	"AXRadioButton":        true,
	"AXSwitch":             true,
	"AXTextField":          true,
	"AXTextArea":           true,
	"AXSearchField":        true,
	"AXSecureTextField":    true,
	"AXDateField":          true,
	"AXTimeField":          true,
	"AXComboBox":           true,
	"AXPopUpButton":        true,
	"AXMenuButton":         true,
	"AXSlider":             true,
	"AXIncrementor":        true,
	"AXLink":               true,
	"AXTabGroup":           true,
	"AXMenuItem":           true,
	"AXMenuBarItem":        true,
	"AXToolbar":            true,
	"AXList":               true,
	"AXTable":              true,
	"AXOutline":            true,
	"AXDisclosureTriangle": true,

	// Windows
	"ControlType.Button":      true,
	"ControlType.SplitButton": true,
	"ControlType.CheckBox":    true,
	"ControlType.RadioButton": true,
	"ControlType.Edit":        true,
	"ControlType.Document":    true,
	"ControlType.ComboBox":    true,
	"ControlType.Slider":      true,
	"ControlType.Spinner":     true,
	"ControlType.Hyperlink":   true,
	"ControlType.Tab":         true,
	"ControlType.TabItem":     true,
	"ControlType.MenuItem":    true,
	"ControlType.ToolBar":     true,
	"ControlType.List":        true,
	"ControlType.ListItem":    true,
	"ControlType.Table":       true,
	"ControlType.DataGrid":    true,
	"ControlType.Tree":        true,
}

// IsInteractive reports whether a raw role tag counts as user-actionable
// for filtering purposes.
func IsInteractive(rawTag *string) bool {
	if rawTag == nil {
		return false
	}
	return interactiveTags[*rawTag]
}
