package models

import "testing"

func TestCategory(t *testing.T) {
	tests := []struct {
		key      string
		expected Category
	}{
		{"nvim-project-opener", CategoryGeneric},
		{VersionControlPrefix + "Git", CategoryVersionControl},
		{DeleteService, CategoryDeleteCommand},
		{CopyToMoveToService, CategoryCopyMoveCommand},
		{"_deleteish", CategoryGeneric},
		{"", CategoryGeneric},
	}

	for _, tt := range tests {
		row := ServiceRow{Key: tt.key}
		if got := row.Category(); got != tt.expected {
			t.Errorf("Category(%q) = %v, want %v", tt.key, got, tt.expected)
		}
	}
}

func TestVcsPluginName(t *testing.T) {
	row := ServiceRow{Key: VersionControlPrefix + "Mercurial"}
	if got := row.VcsPluginName(); got != "Mercurial" {
		t.Errorf("Expected Mercurial, got %s", got)
	}
}

func TestToggle(t *testing.T) {
	row := ServiceRow{Key: "svc", Checked: true}

	row.Toggle()
	if row.Checked {
		t.Error("Expected Checked to be false after toggle")
	}

	row.Toggle()
	if !row.Checked {
		t.Error("Expected Checked to be true after second toggle")
	}
}
