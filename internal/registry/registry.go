package registry

// Descriptor describes one discovered context-menu service candidate.
type Descriptor struct {
	Key     string // Stable identifier (desktop entry name or plugin id)
	Label   string // Display name
	Icon    string // Icon name
	SubMenu string // Optional submenu the entry lives under
	Path    string // Backing file, used for previewing
}

// PluginSource enumerates context-menu service candidates. Enumeration
// problems (missing directories, unreadable files) yield an empty or
// partial result, never an error.
type PluginSource interface {
	Enumerate() []Descriptor
}

// VcsSource enumerates the names of available version control
// integrations.
type VcsSource interface {
	Enumerate() []string
}
