// Package panel implements the service registry panel: it aggregates
// context-menu service rows from the plugin sources, tracks their
// checked state and persists the user's choices to the rc stores.
package panel

import (
	"fmt"
	"sort"

	"svcmenu/internal/kconfig"
	"svcmenu/internal/models"
	"svcmenu/internal/registry"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// RestartNoticeKey suppresses repeated restart notices across sessions.
const RestartNoticeKey = "ShowVcsRestartInformation"

const restartNoticeMessage = "The file manager must be restarted to apply the updated version control settings."

// Notifier surfaces a one-time informational notice to the user. The
// implementation owns suppression bookkeeping for the given key.
type Notifier interface {
	ShowOnceInformation(message, suppressKey string)
}

// Panel owns the service row collection. It is driven synchronously by
// the UI loop; nothing here is safe for concurrent use.
type Panel struct {
	settings *kconfig.Settings
	generic  []registry.PluginSource
	vcs      []registry.VcsSource
	notifier Notifier

	rows        []models.ServiceRow
	paths       map[string]string // Row key -> backing plugin file
	initialized bool

	// Enabled VCS plugins at construction time, sorted. Apply compares
	// against this to decide whether a restart notice is due.
	baselineVcsPlugins []string

	collator *collate.Collator
}

// New creates a panel over the given settings stores and plugin sources.
func New(settings *kconfig.Settings, generic []registry.PluginSource, vcs []registry.VcsSource, notifier Notifier) *Panel {
	baseline := append([]string(nil), settings.EnabledVcsPlugins()...)
	sort.Strings(baseline)

	return &Panel{
		settings:           settings,
		generic:            generic,
		vcs:                vcs,
		notifier:           notifier,
		baselineVcsPlugins: baseline,
		collator:           collate.New(language.Und, collate.IgnoreCase),
	}
}

// EnsureLoaded performs the initial load. Only the first call has an
// effect; the panel stays initialized for its lifetime.
func (p *Panel) EnsureLoaded() {
	if p.initialized {
		return
	}
	p.loadAll()
	p.initialized = true
}

// Reload rebuilds the whole row collection, picking up newly installed
// plugins. The initialized state is kept so Apply and RestoreDefaults
// remain usable.
func (p *Panel) Reload() {
	if !p.initialized {
		return
	}
	p.rows = nil
	p.paths = nil
	p.loadAll()
}

// loadAll runs every load pass and restores the label sort order. The
// synthetic and version control rows are always re-added here: a reload
// clears the whole collection, and rebuilding only the generic rows
// would silently drop the others from the panel.
func (p *Panel) loadAll() {
	p.loadGenericServices()
	p.loadVersionControlPlugins()
	p.addSyntheticRows()
	p.sortRows()
}

// loadGenericServices merges the generic plugin sources into the row
// collection. Dedup is by key, first seen wins.
func (p *Panel) loadGenericServices() {
	if p.paths == nil {
		p.paths = make(map[string]string)
	}
	for _, source := range p.generic {
		for _, d := range source.Enumerate() {
			if p.isKeyPresent(d.Key) {
				continue
			}

			label := d.Label
			if d.SubMenu != "" {
				label = fmt.Sprintf("%s: %s", d.SubMenu, d.Label)
			}

			p.paths[d.Key] = d.Path
			p.rows = append(p.rows, models.ServiceRow{
				Key:     d.Key,
				Label:   label,
				Icon:    d.Icon,
				Checked: p.settings.ServiceShown(d.Key, true),
			})
		}
	}
}

// loadVersionControlPlugins adds one row per distinct version control
// plugin name; the checked state reflects the construction-time baseline.
func (p *Panel) loadVersionControlPlugins() {
	seen := make(map[string]bool)
	for _, source := range p.vcs {
		for _, name := range source.Enumerate() {
			if seen[name] {
				continue
			}
			seen[name] = true

			key := models.VersionControlPrefix + name
			if p.isKeyPresent(key) {
				continue
			}
			p.rows = append(p.rows, models.ServiceRow{
				Key:     key,
				Label:   name,
				Icon:    "code-class",
				Checked: p.inBaseline(name),
			})
		}
	}
}

// addSyntheticRows appends the two fixed command rows.
func (p *Panel) addSyntheticRows() {
	p.rows = append(p.rows,
		models.ServiceRow{
			Key:     models.DeleteService,
			Label:   "Delete",
			Icon:    "edit-delete",
			Checked: p.settings.ShowDeleteCommand(models.ShowDeleteDefault),
		},
		models.ServiceRow{
			Key:     models.CopyToMoveToService,
			Label:   "'Copy To' and 'Move To' commands",
			Icon:    "edit-copy",
			Checked: p.settings.ShowCopyMoveMenu(),
		},
	)
}

// Apply routes every row's checked state to its store and flushes the
// stores. When the set of enabled version control plugins differs from
// the construction-time baseline, the new set is persisted and a
// one-time restart notice is raised.
func (p *Panel) Apply() error {
	if !p.initialized {
		return nil
	}

	var enabledVcsPlugins []string

	for _, row := range p.rows {
		switch row.Category() {
		case models.CategoryVersionControl:
			if row.Checked {
				enabledVcsPlugins = append(enabledVcsPlugins, row.Label)
			}
		case models.CategoryDeleteCommand:
			p.settings.SetShowDeleteCommand(row.Checked)
		case models.CategoryCopyMoveCommand:
			p.settings.SetShowCopyMoveMenu(row.Checked)
		default:
			p.settings.SetServiceShown(row.Key, row.Checked)
		}
	}

	if err := p.settings.Services.Sync(); err != nil {
		return fmt.Errorf("saving service settings: %w", err)
	}
	if err := p.settings.Globals.Sync(); err != nil {
		return fmt.Errorf("saving global settings: %w", err)
	}

	sort.Strings(enabledVcsPlugins)
	if !equalStrings(enabledVcsPlugins, p.baselineVcsPlugins) {
		p.settings.SetEnabledVcsPlugins(enabledVcsPlugins)
		if p.notifier != nil {
			p.notifier.ShowOnceInformation(restartNoticeMessage, RestartNoticeKey)
		}
	}
	if err := p.settings.App.Sync(); err != nil {
		return fmt.Errorf("saving application settings: %w", err)
	}

	return nil
}

// RestoreDefaults resets every generic row to checked and every version
// control and command row to unchecked. Nothing is persisted until the
// next Apply.
func (p *Panel) RestoreDefaults() {
	for i := range p.rows {
		p.rows[i].Checked = p.rows[i].Category() == models.CategoryGeneric
	}
}

// Rows returns the row collection in display order.
func (p *Panel) Rows() []models.ServiceRow {
	return p.rows
}

// SetChecked updates the checked state of the row with the given key.
func (p *Panel) SetChecked(key string, checked bool) {
	for i := range p.rows {
		if p.rows[i].Key == key {
			p.rows[i].Checked = checked
			return
		}
	}
}

// Toggle flips the checked state of the row with the given key.
func (p *Panel) Toggle(key string) {
	for i := range p.rows {
		if p.rows[i].Key == key {
			p.rows[i].Toggle()
			return
		}
	}
}

// SourcePath returns the plugin file backing a row, or "" for built-in
// and synthetic rows.
func (p *Panel) SourcePath(key string) string {
	return p.paths[key]
}

// Initialized reports whether the first load has completed.
func (p *Panel) Initialized() bool {
	return p.initialized
}

func (p *Panel) isKeyPresent(key string) bool {
	for _, row := range p.rows {
		if row.Key == key {
			return true
		}
	}
	return false
}

func (p *Panel) inBaseline(name string) bool {
	for _, enabled := range p.baselineVcsPlugins {
		if enabled == name {
			return true
		}
	}
	return false
}

func (p *Panel) sortRows() {
	sort.SliceStable(p.rows, func(i, j int) bool {
		return p.collator.CompareString(p.rows[i].Label, p.rows[j].Label) < 0
	})
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
