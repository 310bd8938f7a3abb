package models

import "strings"

// Reserved keys shared between loading and applying. The version control
// prefix marks synthetic rows backed by VCS plugins rather than desktop
// entries; the two sentinel keys back the fixed command rows.
const (
	VersionControlPrefix = "_version_control_"
	DeleteService        = "_delete"
	CopyToMoveToService  = "_copy_to_move_to"
)

// ShowDeleteDefault is the default for the global "show delete command" flag.
const ShowDeleteDefault = false

// ServiceRow is one toggleable context-menu entry.
type ServiceRow struct {
	Key     string // Stable identifier, unique within a collection
	Label   string // Display text, also the sort key
	Icon    string // Icon name, opaque passthrough
	Checked bool
}

// Category determines how a row is routed when settings are applied.
type Category int

const (
	CategoryGeneric Category = iota
	CategoryVersionControl
	CategoryDeleteCommand
	CategoryCopyMoveCommand
)

// Category derives the apply-time routing category from the row key.
func (r ServiceRow) Category() Category {
	switch {
	case strings.HasPrefix(r.Key, VersionControlPrefix):
		return CategoryVersionControl
	case r.Key == DeleteService:
		return CategoryDeleteCommand
	case r.Key == CopyToMoveToService:
		return CategoryCopyMoveCommand
	default:
		return CategoryGeneric
	}
}

// VcsPluginName returns the plugin name of a version control row.
func (r ServiceRow) VcsPluginName() string {
	return strings.TrimPrefix(r.Key, VersionControlPrefix)
}

// Toggle flips the checked state.
func (r *ServiceRow) Toggle() {
	r.Checked = !r.Checked
}
