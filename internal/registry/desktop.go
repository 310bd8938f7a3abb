package registry

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

const (
	desktopEntryGroup  = "Desktop Entry"
	desktopActionGroup = "Desktop Action "

	serviceMenuType  = "KonqPopupMenu/Plugin"
	actionPluginType = "KFileItemAction/Plugin"
)

// ServiceMenuSource discovers user-defined context-menu actions from
// .desktop service-menu files in a directory.
type ServiceMenuSource struct {
	Dir string
}

// NewServiceMenuSource creates a source scanning dir for service menus.
func NewServiceMenuSource(dir string) *ServiceMenuSource {
	return &ServiceMenuSource{Dir: dir}
}

// Enumerate returns one Descriptor per visible desktop action. Actions
// marked NoDisplay or Hidden, and separator placeholders, are skipped.
func (s *ServiceMenuSource) Enumerate() []Descriptor {
	var result []Descriptor

	for _, path := range desktopFiles(s.Dir) {
		file, err := ini.Load(path)
		if err != nil {
			continue
		}

		entry := file.Section(desktopEntryGroup)
		if !hasServiceType(entry, serviceMenuType) {
			continue
		}
		subMenu := entry.Key("X-KDE-Submenu").String()

		for _, name := range splitDesktopList(entry.Key("Actions").String()) {
			action := file.Section(desktopActionGroup + name)
			if isHidden(action) || isSeparator(name, action) {
				continue
			}
			result = append(result, Descriptor{
				Key:     name,
				Label:   action.Key("Name").String(),
				Icon:    action.Key("Icon").String(),
				SubMenu: subMenu,
				Path:    path,
			})
		}
	}

	return result
}

// ActionPluginSource discovers standalone action plugins, one per
// .desktop file declaring the action-plugin service type.
type ActionPluginSource struct {
	Dir string
}

// NewActionPluginSource creates a source scanning dir for action plugins.
func NewActionPluginSource(dir string) *ActionPluginSource {
	return &ActionPluginSource{Dir: dir}
}

// Enumerate returns one Descriptor per plugin; the desktop entry name
// (the file base name) is the key.
func (s *ActionPluginSource) Enumerate() []Descriptor {
	var result []Descriptor

	for _, path := range desktopFiles(s.Dir) {
		file, err := ini.Load(path)
		if err != nil {
			continue
		}

		entry := file.Section(desktopEntryGroup)
		if !hasServiceType(entry, actionPluginType) || isHidden(entry) {
			continue
		}
		result = append(result, Descriptor{
			Key:   strings.TrimSuffix(filepath.Base(path), ".desktop"),
			Label: entry.Key("Name").String(),
			Icon:  entry.Key("Icon").String(),
			Path:  path,
		})
	}

	return result
}

func desktopFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".desktop") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths
}

func hasServiceType(sec *ini.Section, serviceType string) bool {
	for _, t := range splitDesktopList(sec.Key("ServiceTypes").String()) {
		if t == serviceType {
			return true
		}
	}
	return false
}

func isHidden(sec *ini.Section) bool {
	return sec.Key("NoDisplay").MustBool(false) || sec.Key("Hidden").MustBool(false)
}

func isSeparator(name string, sec *ini.Section) bool {
	return name == "_SEPARATOR_" || sec.Key("Name").String() == ""
}

func splitDesktopList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ";") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
