package kconfig

import (
	"os"
	"path/filepath"
)

// Group and key names shared with the file manager that consumes these
// settings. The services rc keeps one boolean per context-menu entry,
// the globals rc holds desktop-wide flags, and the app rc holds
// everything owned by this application.
const (
	servicesFileName = "kservicemenurc"
	globalsFileName  = "kdeglobals"
	appFileName      = "svcmenurc"

	ShowGroup           = "Show"
	KDEGroup            = "KDE"
	GeneralGroup        = "General"
	VersionControlGroup = "VersionControl"
	NotificationsGroup  = "Notifications"

	showDeleteKey     = "ShowDeleteCommand"
	showCopyMoveKey   = "ShowCopyMoveMenu"
	enabledPluginsKey = "enabledPlugins"
)

// Settings bundles the three rc stores the services panel writes to.
type Settings struct {
	Services *Store
	Globals  *Store
	App      *Store
}

// DefaultDir returns the directory holding the rc files.
func DefaultDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config")
}

// NewSettings opens the rc stores under baseDir.
func NewSettings(baseDir string) *Settings {
	return &Settings{
		Services: Open(filepath.Join(baseDir, servicesFileName)),
		Globals:  Open(filepath.Join(baseDir, globalsFileName)),
		App:      Open(filepath.Join(baseDir, appFileName)),
	}
}

// ServiceShown reads the Show-group flag for a generic service.
func (s *Settings) ServiceShown(key string, def bool) bool {
	return s.Services.ReadBool(ShowGroup, key, def)
}

// SetServiceShown writes the Show-group flag for a generic service.
func (s *Settings) SetServiceShown(key string, shown bool) {
	s.Services.WriteBool(ShowGroup, key, shown)
}

// ShownServiceKeys returns every service key present in the Show group.
func (s *Settings) ShownServiceKeys() []string {
	return s.Services.Keys(ShowGroup)
}

// ShowDeleteCommand reads the global delete-command flag.
func (s *Settings) ShowDeleteCommand(def bool) bool {
	return s.Globals.ReadBool(KDEGroup, showDeleteKey, def)
}

// SetShowDeleteCommand writes the global delete-command flag.
func (s *Settings) SetShowDeleteCommand(v bool) {
	s.Globals.WriteBool(KDEGroup, showDeleteKey, v)
}

// ShowCopyMoveMenu reads the copy/move menu flag.
func (s *Settings) ShowCopyMoveMenu() bool {
	return s.App.ReadBool(GeneralGroup, showCopyMoveKey, true)
}

// SetShowCopyMoveMenu writes the copy/move menu flag.
func (s *Settings) SetShowCopyMoveMenu(v bool) {
	s.App.WriteBool(GeneralGroup, showCopyMoveKey, v)
}

// EnabledVcsPlugins returns the persisted enabled version control plugins.
func (s *Settings) EnabledVcsPlugins() []string {
	return s.App.ReadStringList(VersionControlGroup, enabledPluginsKey)
}

// SetEnabledVcsPlugins persists the enabled version control plugins.
func (s *Settings) SetEnabledVcsPlugins(names []string) {
	s.App.WriteStringList(VersionControlGroup, enabledPluginsKey, names)
}

// NoticeSuppressed reports whether a one-time notice was dismissed.
func (s *Settings) NoticeSuppressed(suppressKey string) bool {
	return s.App.ReadBool(NotificationsGroup, suppressKey, false)
}

// SuppressNotice marks a one-time notice as dismissed.
func (s *Settings) SuppressNotice(suppressKey string) {
	s.App.WriteBool(NotificationsGroup, suppressKey, true)
}
