package components

import (
	"fmt"
	"strings"

	"svcmenu/internal/ui"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ChangeType classifies one line of the pending changes view.
type ChangeType int

const (
	ChangeEqual ChangeType = iota
	ChangeInsert
	ChangeDelete
)

// ChangeLine is a single line of the pending changes diff.
type ChangeLine struct {
	Type    ChangeType
	Content string
}

// PendingDiff shows what Apply would change: a line diff between the
// persisted settings and the current checkbox state.
type PendingDiff struct {
	Lines  []ChangeLine
	Width  int
	Height int
}

// NewPendingDiff creates an empty pending changes view.
func NewPendingDiff() *PendingDiff {
	return &PendingDiff{Width: 60, Height: 20}
}

// SetContent computes the line diff between the persisted and current
// snapshots.
func (d *PendingDiff) SetContent(persisted, current string) {
	d.Lines = d.Lines[:0]

	dmp := diffmatchpatch.New()
	chars1, chars2, lineArray := dmp.DiffLinesToChars(persisted, current)
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	for _, diff := range diffs {
		for _, line := range strings.Split(strings.TrimSuffix(diff.Text, "\n"), "\n") {
			if line == "" && diff.Text == "" {
				continue
			}
			switch diff.Type {
			case diffmatchpatch.DiffInsert:
				d.Lines = append(d.Lines, ChangeLine{Type: ChangeInsert, Content: line})
			case diffmatchpatch.DiffDelete:
				d.Lines = append(d.Lines, ChangeLine{Type: ChangeDelete, Content: line})
			default:
				d.Lines = append(d.Lines, ChangeLine{Type: ChangeEqual, Content: line})
			}
		}
	}
}

// HasChanges reports whether anything would change on apply.
func (d *PendingDiff) HasChanges() bool {
	for _, line := range d.Lines {
		if line.Type != ChangeEqual {
			return true
		}
	}
	return false
}

// ChangedCount returns the number of settings that differ.
func (d *PendingDiff) ChangedCount() int {
	count := 0
	for _, line := range d.Lines {
		if line.Type == ChangeInsert {
			count++
		}
	}
	return count
}

// View renders the pending changes
func (d *PendingDiff) View() string {
	var b strings.Builder

	title := "Pending Changes"
	if n := d.ChangedCount(); n > 0 {
		title = fmt.Sprintf("Pending Changes (%d)", n)
	}
	b.WriteString(ui.PanelTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(ui.DividerStyle.Render(strings.Repeat("─", max(1, d.Width-2))))
	b.WriteString("\n")

	if !d.HasChanges() {
		b.WriteString(ui.ItemStyle.Render("No changes to apply"))
		return ui.PanelStyle.Width(d.Width).Height(d.Height).Render(b.String())
	}

	shown := 0
	maxLines := d.Height - 4
	for _, line := range d.Lines {
		if line.Type == ChangeEqual {
			continue
		}
		if shown >= maxLines {
			b.WriteString(ui.MutedStyle.Render("  ..."))
			break
		}
		switch line.Type {
		case ChangeInsert:
			b.WriteString(ui.AddedStyle.Render("+ " + line.Content))
		case ChangeDelete:
			b.WriteString(ui.RemovedStyle.Render("- " + line.Content))
		}
		b.WriteString("\n")
		shown++
	}

	return ui.PanelStyle.Width(d.Width).Height(d.Height).Render(b.String())
}
