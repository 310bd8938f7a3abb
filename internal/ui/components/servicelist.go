package components

import (
	"fmt"
	"strings"

	"svcmenu/internal/models"
	"svcmenu/internal/ui"
)

// ServiceList is a filterable list of checkable service rows.
type ServiceList struct {
	Rows    []models.ServiceRow
	Filter  string
	Cursor  int
	Width   int
	Height  int
	Focused bool
	Title   string

	visible []int // Indices into Rows matching the filter
}

// NewServiceList creates a new service list.
func NewServiceList(rows []models.ServiceRow) *ServiceList {
	l := &ServiceList{
		Rows:    rows,
		Cursor:  0,
		Width:   60,
		Height:  20,
		Focused: true,
		Title:   "Context Menu Services",
	}
	l.refilter()
	return l
}

// SetRows replaces the row collection, keeping the current filter.
func (l *ServiceList) SetRows(rows []models.ServiceRow) {
	l.Rows = rows
	l.refilter()
}

// SetFilter updates the filter text and refilters. The cursor is reset
// so it always points at a visible row.
func (l *ServiceList) SetFilter(filter string) {
	l.Filter = filter
	l.Cursor = 0
	l.refilter()
}

// refilter recomputes the visible indices. Matching is a synchronous
// case-insensitive substring test on the label; no I/O happens here.
func (l *ServiceList) refilter() {
	l.visible = l.visible[:0]
	needle := strings.ToLower(l.Filter)
	for i, row := range l.Rows {
		if needle == "" || strings.Contains(strings.ToLower(row.Label), needle) {
			l.visible = append(l.visible, i)
		}
	}
	if l.Cursor >= len(l.visible) {
		l.Cursor = max(0, len(l.visible)-1)
	}
}

// VisibleRows returns the rows matching the current filter, in order.
func (l *ServiceList) VisibleRows() []models.ServiceRow {
	rows := make([]models.ServiceRow, 0, len(l.visible))
	for _, i := range l.visible {
		rows = append(rows, l.Rows[i])
	}
	return rows
}

// Current returns the row under the cursor, or nil when the filter
// matches nothing.
func (l *ServiceList) Current() *models.ServiceRow {
	if len(l.visible) == 0 || l.Cursor >= len(l.visible) {
		return nil
	}
	return &l.Rows[l.visible[l.Cursor]]
}

// MoveUp moves cursor up
func (l *ServiceList) MoveUp() {
	if l.Cursor > 0 {
		l.Cursor--
	}
}

// MoveDown moves cursor down
func (l *ServiceList) MoveDown() {
	if l.Cursor < len(l.visible)-1 {
		l.Cursor++
	}
}

// PageUp moves cursor up by a page
func (l *ServiceList) PageUp() {
	pageSize := l.Height - 3
	if pageSize < 1 {
		pageSize = 10
	}
	l.Cursor -= pageSize
	if l.Cursor < 0 {
		l.Cursor = 0
	}
}

// PageDown moves cursor down by a page
func (l *ServiceList) PageDown() {
	pageSize := l.Height - 3
	if pageSize < 1 {
		pageSize = 10
	}
	l.Cursor += pageSize
	if l.Cursor >= len(l.visible) {
		l.Cursor = max(0, len(l.visible)-1)
	}
}

// GoToFirst moves cursor to the first visible row
func (l *ServiceList) GoToFirst() {
	l.Cursor = 0
}

// GoToLast moves cursor to the last visible row
func (l *ServiceList) GoToLast() {
	if len(l.visible) > 0 {
		l.Cursor = len(l.visible) - 1
	}
}

// View renders the service list
func (l *ServiceList) View() string {
	var b strings.Builder

	checkedCount := 0
	for _, i := range l.visible {
		if l.Rows[i].Checked {
			checkedCount++
		}
	}

	title := l.Title
	if len(l.visible) > 0 {
		title = fmt.Sprintf("%s (%d/%d)", l.Title, checkedCount, len(l.visible))
	}
	b.WriteString(ui.PanelTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(ui.DividerStyle.Render(strings.Repeat("─", l.Width-2)))
	b.WriteString("\n")

	if len(l.visible) == 0 {
		if l.Filter != "" {
			b.WriteString(ui.ItemStyle.Render("No services match the search"))
		} else {
			b.WriteString(ui.ItemStyle.Render("No services found"))
		}
		return l.wrapInPanel(b.String())
	}

	// Calculate visible range
	visibleHeight := l.Height - 3 // Minus title and divider
	startIdx := 0
	if l.Cursor >= visibleHeight {
		startIdx = l.Cursor - visibleHeight + 1
	}
	endIdx := min(startIdx+visibleHeight, len(l.visible))

	if startIdx > 0 {
		b.WriteString(ui.MutedStyle.Render("  ↑ more"))
		b.WriteString("\n")
	}

	for i := startIdx; i < endIdx; i++ {
		row := l.Rows[l.visible[i]]
		b.WriteString(l.renderItem(row, i == l.Cursor))
		if i < endIdx-1 {
			b.WriteString("\n")
		}
	}

	if endIdx < len(l.visible) {
		b.WriteString("\n")
		b.WriteString(ui.MutedStyle.Render("  ↓ more"))
	}

	if len(l.visible) > visibleHeight {
		position := fmt.Sprintf(" %d/%d ", l.Cursor+1, len(l.visible))
		b.WriteString("\n")
		b.WriteString(ui.MutedStyle.Render(strings.Repeat(" ", max(0, (l.Width-len(position)-4)/2)) + position))
	}

	return l.wrapInPanel(b.String())
}

// renderItem renders a single service row
func (l *ServiceList) renderItem(row models.ServiceRow, isCursor bool) string {
	checkbox := ui.RenderCheckbox(row.Checked)

	label := row.Label
	maxLabelLen := l.Width - 14
	if maxLabelLen < 10 {
		maxLabelLen = 10
	}
	if len(label) > maxLabelLen {
		label = label[:maxLabelLen-3] + "..."
	}

	var badge string
	switch row.Category() {
	case models.CategoryVersionControl:
		badge = ui.VcsBadgeStyle.Render("[VCS]")
	case models.CategoryDeleteCommand, models.CategoryCopyMoveCommand:
		badge = ui.CommandBadgeStyle.Render("[CMD]")
	}

	content := fmt.Sprintf("%s %s %s", checkbox, label, badge)

	if isCursor && l.Focused {
		return ui.SelectedItemStyle.Width(l.Width - 4).Render(content)
	}
	return ui.ItemStyle.Render(content)
}

// wrapInPanel wraps content in a panel border
func (l *ServiceList) wrapInPanel(content string) string {
	style := ui.PanelStyle
	if l.Focused {
		style = ui.ActivePanelStyle
	}
	return style.Width(l.Width).Height(l.Height).Render(content)
}
