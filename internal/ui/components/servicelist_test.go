package components

import (
	"testing"

	"svcmenu/internal/models"
)

func sampleRows() []models.ServiceRow {
	return []models.ServiceRow{
		{Key: "compressHere", Label: "Archive: Compress here", Checked: true},
		{Key: "extractHere", Label: "Archive: Extract here", Checked: true},
		{Key: "_version_control_Git", Label: "Git", Checked: false},
		{Key: "_delete", Label: "Delete", Checked: false},
	}
}

func TestNewServiceList(t *testing.T) {
	list := NewServiceList(sampleRows())

	if list == nil {
		t.Fatal("NewServiceList should return a ServiceList")
	}
	if list.Cursor != 0 {
		t.Errorf("Expected cursor at 0, got %d", list.Cursor)
	}
	if !list.Focused {
		t.Error("Expected Focused to be true")
	}
	if len(list.VisibleRows()) != 4 {
		t.Errorf("Expected 4 visible rows, got %d", len(list.VisibleRows()))
	}
}

func TestServiceList_SetFilter(t *testing.T) {
	list := NewServiceList(sampleRows())

	list.SetFilter("archive")
	visible := list.VisibleRows()
	if len(visible) != 2 {
		t.Fatalf("Expected 2 visible rows, got %d", len(visible))
	}
	for _, row := range visible {
		if row.Key != "compressHere" && row.Key != "extractHere" {
			t.Errorf("Unexpected visible row %s", row.Key)
		}
	}

	list.SetFilter("")
	if len(list.VisibleRows()) != 4 {
		t.Error("Clearing the filter should restore all rows")
	}
}

func TestServiceList_FilterIsCaseInsensitive(t *testing.T) {
	list := NewServiceList(sampleRows())

	list.SetFilter("GIT")
	visible := list.VisibleRows()
	if len(visible) != 1 || visible[0].Key != "_version_control_Git" {
		t.Errorf("Expected only the Git row, got %v", visible)
	}
}

func TestServiceList_FilterResetsCursor(t *testing.T) {
	list := NewServiceList(sampleRows())
	list.Cursor = 3

	list.SetFilter("delete")
	if list.Cursor != 0 {
		t.Errorf("Expected cursor reset to 0, got %d", list.Cursor)
	}

	current := list.Current()
	if current == nil || current.Key != "_delete" {
		t.Error("Expected current row to be the delete row")
	}
}

func TestServiceList_CurrentEmptyFilter(t *testing.T) {
	list := NewServiceList(sampleRows())

	list.SetFilter("no such service")
	if list.Current() != nil {
		t.Error("Expected no current row when nothing matches")
	}
}

func TestServiceList_Movement(t *testing.T) {
	list := NewServiceList(sampleRows())

	list.MoveDown()
	if list.Cursor != 1 {
		t.Errorf("Expected cursor 1, got %d", list.Cursor)
	}

	list.GoToLast()
	if list.Cursor != 3 {
		t.Errorf("Expected cursor 3, got %d", list.Cursor)
	}

	// Should not move past the end
	list.MoveDown()
	if list.Cursor != 3 {
		t.Errorf("Expected cursor to stay at 3, got %d", list.Cursor)
	}

	list.GoToFirst()
	if list.Cursor != 0 {
		t.Errorf("Expected cursor 0, got %d", list.Cursor)
	}

	// Should not move before the start
	list.MoveUp()
	if list.Cursor != 0 {
		t.Errorf("Expected cursor to stay at 0, got %d", list.Cursor)
	}
}

func TestServiceList_SetRowsKeepsFilter(t *testing.T) {
	list := NewServiceList(sampleRows())
	list.SetFilter("archive")

	rows := append(sampleRows(), models.ServiceRow{Key: "zip", Label: "Archive: Zip here"})
	list.SetRows(rows)

	if len(list.VisibleRows()) != 3 {
		t.Errorf("Expected 3 visible rows after SetRows, got %d", len(list.VisibleRows()))
	}
}

func TestServiceList_View(t *testing.T) {
	list := NewServiceList(sampleRows())
	list.Width = 50
	list.Height = 10

	view := list.View()
	if view == "" {
		t.Error("View should render something")
	}
}

func TestServiceList_ViewEmpty(t *testing.T) {
	list := NewServiceList(nil)

	view := list.View()
	if view == "" {
		t.Error("View should render an empty state")
	}
}
