package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestServiceMenuSource(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "archive.desktop", `[Desktop Entry]
Type=Service
ServiceTypes=KonqPopupMenu/Plugin
X-KDE-Submenu=Archive
Actions=compressHere;extractHere;hiddenOne;_SEPARATOR_

[Desktop Action compressHere]
Name=Compress here
Icon=archive-insert

[Desktop Action extractHere]
Name=Extract here
Icon=archive-extract

[Desktop Action hiddenOne]
Name=Hidden action
NoDisplay=true

[Desktop Action _SEPARATOR_]
`)

	source := NewServiceMenuSource(dir)
	descriptors := source.Enumerate()

	if len(descriptors) != 2 {
		t.Fatalf("Expected 2 descriptors, got %d", len(descriptors))
	}
	if descriptors[0].Key != "compressHere" {
		t.Errorf("Expected compressHere, got %s", descriptors[0].Key)
	}
	if descriptors[0].SubMenu != "Archive" {
		t.Errorf("Expected submenu Archive, got %s", descriptors[0].SubMenu)
	}
	if descriptors[0].Icon != "archive-insert" {
		t.Errorf("Expected icon archive-insert, got %s", descriptors[0].Icon)
	}
	if descriptors[1].Key != "extractHere" {
		t.Errorf("Expected extractHere, got %s", descriptors[1].Key)
	}
}

func TestServiceMenuSourceSkipsOtherServiceTypes(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "other.desktop", `[Desktop Entry]
ServiceTypes=SomethingElse/Plugin
Actions=act

[Desktop Action act]
Name=Act
`)

	if got := NewServiceMenuSource(dir).Enumerate(); len(got) != 0 {
		t.Errorf("Expected no descriptors, got %d", len(got))
	}
}

func TestServiceMenuSourceMissingDir(t *testing.T) {
	source := NewServiceMenuSource(filepath.Join(t.TempDir(), "missing"))
	if got := source.Enumerate(); got != nil {
		t.Errorf("Expected nil for missing dir, got %v", got)
	}
}

func TestActionPluginSource(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "kompare.desktop", `[Desktop Entry]
Name=Compare files
Icon=kompare
ServiceTypes=KFileItemAction/Plugin
`)
	writeFixture(t, dir, "hidden.desktop", `[Desktop Entry]
Name=Hidden plugin
ServiceTypes=KFileItemAction/Plugin
Hidden=true
`)
	writeFixture(t, dir, "unrelated.desktop", `[Desktop Entry]
Name=Unrelated
ServiceTypes=KonqPopupMenu/Plugin
`)

	descriptors := NewActionPluginSource(dir).Enumerate()

	if len(descriptors) != 1 {
		t.Fatalf("Expected 1 descriptor, got %d", len(descriptors))
	}
	if descriptors[0].Key != "kompare" {
		t.Errorf("Expected key kompare, got %s", descriptors[0].Key)
	}
	if descriptors[0].Label != "Compare files" {
		t.Errorf("Expected label 'Compare files', got %s", descriptors[0].Label)
	}
}

