package panel

import (
	"fmt"
	"strings"

	"svcmenu/internal/models"
)

// PersistedSnapshot serializes the stored value of every row, one
// "key=value" line per row in display order. Used by the pending
// changes view as the "before" side.
func (p *Panel) PersistedSnapshot() string {
	enabled := make(map[string]bool)
	for _, name := range p.settings.EnabledVcsPlugins() {
		enabled[name] = true
	}

	var b strings.Builder
	for _, row := range p.rows {
		var value bool
		switch row.Category() {
		case models.CategoryVersionControl:
			value = enabled[row.VcsPluginName()]
		case models.CategoryDeleteCommand:
			value = p.settings.ShowDeleteCommand(models.ShowDeleteDefault)
		case models.CategoryCopyMoveCommand:
			value = p.settings.ShowCopyMoveMenu()
		default:
			value = p.settings.ServiceShown(row.Key, true)
		}
		fmt.Fprintf(&b, "%s=%t\n", row.Key, value)
	}
	return b.String()
}

// CurrentSnapshot serializes the checkbox state of every row, matching
// the PersistedSnapshot format. Used as the "after" side.
func (p *Panel) CurrentSnapshot() string {
	var b strings.Builder
	for _, row := range p.rows {
		fmt.Fprintf(&b, "%s=%t\n", row.Key, row.Checked)
	}
	return b.String()
}
