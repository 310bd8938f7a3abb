package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestColors(t *testing.T) {
	colors := []lipgloss.Color{
		Primary, Secondary, Success, Warning, Error,
		Muted, Foreground, Border, Selected,
	}

	for _, c := range colors {
		if c == "" {
			t.Error("Color should not be empty")
		}
	}
}

func TestStylesRender(t *testing.T) {
	styles := map[string]lipgloss.Style{
		"AppStyle":          AppStyle,
		"HeaderStyle":       HeaderStyle,
		"TitleStyle":        TitleStyle,
		"VersionStyle":      VersionStyle,
		"PanelStyle":        PanelStyle,
		"PanelTitleStyle":   PanelTitleStyle,
		"ActivePanelStyle":  ActivePanelStyle,
		"ItemStyle":         ItemStyle,
		"SelectedItemStyle": SelectedItemStyle,
		"StatusBarStyle":    StatusBarStyle,
		"VcsBadgeStyle":     VcsBadgeStyle,
		"CommandBadgeStyle": CommandBadgeStyle,
		"AddedStyle":        AddedStyle,
		"RemovedStyle":      RemovedStyle,
		"InfoNotifyStyle":   InfoNotifyStyle,
		"ErrorNotifyStyle":  ErrorNotifyStyle,
	}

	for name, style := range styles {
		if style.Render("content") == "" {
			t.Errorf("%s should render content", name)
		}
	}
}

func TestRenderCheckbox(t *testing.T) {
	checked := RenderCheckbox(true)
	unchecked := RenderCheckbox(false)

	if checked == unchecked {
		t.Error("Checked and unchecked checkboxes should differ")
	}
	if !strings.Contains(checked, "✓") {
		t.Error("Checked checkbox should contain a check mark")
	}
}

func TestRenderHelpItem(t *testing.T) {
	item := RenderHelpItem("a", "apply")
	if item == "" {
		t.Error("RenderHelpItem should render content")
	}
}
