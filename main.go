package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"svcmenu/internal/kconfig"
	"svcmenu/internal/panel"
	"svcmenu/internal/registry"
	"svcmenu/internal/ui"
	"svcmenu/internal/ui/components"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Version info (set by ldflags)
var (
	version   = "dev"
	buildTime = "unknown"
)

// Screen represents different screens in the app
type Screen int

const (
	ScreenList Screen = iota
	ScreenPreview
	ScreenChanges
	ScreenHelp
)

// noticeRecorder surfaces one-time informational notices on the status
// line and persists the suppression flag, so the same notice is not
// shown again in later sessions.
type noticeRecorder struct {
	settings *kconfig.Settings
	message  string
}

func (n *noticeRecorder) ShowOnceInformation(message, suppressKey string) {
	if n.settings.NoticeSuppressed(suppressKey) {
		return
	}
	n.message = message
	n.settings.SuppressNotice(suppressKey)
}

// takeMessage returns and clears the pending notice.
func (n *noticeRecorder) takeMessage() string {
	msg := n.message
	n.message = ""
	return msg
}

// Model is the main application model
type Model struct {
	panel    *panel.Panel
	notifier *noticeRecorder
	git      registry.GitWorkspace

	// UI components
	serviceList *components.ServiceList
	preview     *components.PluginPreview
	pendingDiff *components.PendingDiff
	searchInput textinput.Model
	help        help.Model
	keys        ui.KeyMap

	// State
	screen    Screen
	searching bool
	status    string
	statusErr bool
	width     int
	height    int
}

// New creates the application model
func New(p *panel.Panel, notifier *noticeRecorder) *Model {
	search := textinput.New()
	search.Placeholder = "Search..."
	search.CharLimit = 64
	search.Width = 30

	return &Model{
		panel:       p,
		notifier:    notifier,
		serviceList: components.NewServiceList(nil),
		preview:     components.NewPluginPreview(),
		pendingDiff: components.NewPendingDiff(),
		searchInput: search,
		help:        help.New(),
		keys:        ui.DefaultKeyMap(),
		screen:      ScreenList,
		git:         registry.DetectGitWorkspace("."),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

		// First real display triggers the load.
		if !m.panel.Initialized() {
			m.panel.EnsureLoaded()
			m.serviceList.SetRows(m.panel.Rows())
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	if m.screen == ScreenPreview {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) layout() {
	listWidth := m.width - 4
	if listWidth < 30 {
		listWidth = 30
	}
	listHeight := m.height - 8
	if listHeight < 5 {
		listHeight = 5
	}
	m.serviceList.Width = listWidth
	m.serviceList.Height = listHeight
	m.preview.SetSize(listWidth, listHeight)
	m.pendingDiff.Width = listWidth
	m.pendingDiff.Height = listHeight
	m.help.Width = m.width
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.serviceList.SetFilter("")
		return m, nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.serviceList.SetFilter(m.searchInput.Value())
	return m, cmd
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Escape):
		if m.screen != ScreenList {
			m.screen = ScreenList
			return m, nil
		}
		if m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			m.serviceList.SetFilter("")
		}
		return m, nil

	case key.Matches(msg, keys.Help):
		if m.screen == ScreenHelp {
			m.screen = ScreenList
		} else {
			m.screen = ScreenHelp
		}
		return m, nil
	}

	if m.screen == ScreenPreview {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}
	if m.screen != ScreenList {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		m.serviceList.MoveUp()
	case key.Matches(msg, keys.Down):
		m.serviceList.MoveDown()
	case key.Matches(msg, keys.PageUp):
		m.serviceList.PageUp()
	case key.Matches(msg, keys.PageDown):
		m.serviceList.PageDown()
	case key.Matches(msg, keys.Home):
		m.serviceList.GoToFirst()
	case key.Matches(msg, keys.End):
		m.serviceList.GoToLast()

	case key.Matches(msg, keys.Space):
		if row := m.serviceList.Current(); row != nil {
			m.panel.Toggle(row.Key)
			m.serviceList.SetRows(m.panel.Rows())
		}

	case key.Matches(msg, keys.Search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Apply):
		if err := m.panel.Apply(); err != nil {
			m.status = fmt.Sprintf("Apply failed: %v", err)
			m.statusErr = true
			return m, nil
		}
		m.statusErr = false
		if notice := m.notifier.takeMessage(); notice != "" {
			m.status = notice
		} else {
			m.status = "Settings applied"
		}

	case key.Matches(msg, keys.Defaults):
		m.panel.RestoreDefaults()
		m.serviceList.SetRows(m.panel.Rows())
		m.status = "Defaults restored (apply to save)"
		m.statusErr = false

	case key.Matches(msg, keys.Reload):
		m.panel.Reload()
		m.serviceList.SetRows(m.panel.Rows())
		m.status = fmt.Sprintf("Reloaded %d services", len(m.panel.Rows()))
		m.statusErr = false

	case key.Matches(msg, keys.Preview):
		if row := m.serviceList.Current(); row != nil {
			if err := m.preview.Load(m.panel.SourcePath(row.Key)); err != nil {
				m.status = fmt.Sprintf("Preview failed: %v", err)
				m.statusErr = true
				return m, nil
			}
			m.screen = ScreenPreview
		}

	case key.Matches(msg, keys.Changes):
		m.pendingDiff.SetContent(m.panel.PersistedSnapshot(), m.panel.CurrentSnapshot())
		m.screen = ScreenChanges
	}

	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b []string

	header := ui.HeaderStyle.Render("svcmenu") + ui.VersionStyle.Render(" "+version)
	b = append(b, header)
	b = append(b, ui.MutedStyle.Render(" Select which services should be shown in the context menu:"))

	switch m.screen {
	case ScreenHelp:
		b = append(b, m.helpView())
	case ScreenPreview:
		b = append(b, m.preview.View())
	case ScreenChanges:
		b = append(b, m.pendingDiff.View())
	default:
		b = append(b, " "+m.searchInput.View())
		b = append(b, m.serviceList.View())
	}

	b = append(b, m.statusBar())
	b = append(b, ui.HelpBarStyle.Render(m.help.View(m.keys)))

	return ui.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, b...))
}

func (m *Model) helpView() string {
	var b []string
	b = append(b, ui.PanelTitleStyle.Render("Keybindings"))
	for _, group := range m.keys.FullHelp() {
		line := ""
		for _, binding := range group {
			line += "  " + ui.RenderHelpItem(binding.Help().Key, binding.Help().Desc)
		}
		b = append(b, line)
	}
	return ui.PanelStyle.Width(m.serviceList.Width).Render(lipgloss.JoinVertical(lipgloss.Left, b...))
}

func (m *Model) statusBar() string {
	if m.status != "" {
		style := ui.InfoNotifyStyle
		if m.statusErr {
			style = ui.ErrorNotifyStyle
		}
		return ui.StatusBarStyle.Render(style.Render(m.status))
	}

	text := "Toggle entries with space, apply with 'a'."
	if m.git.Present {
		branch := m.git.Branch
		if branch == "" {
			branch = "detached"
		}
		text += fmt.Sprintf("  Git repository detected (%s).", branch)
	}
	return ui.StatusBarStyle.Render(ui.StatusTextStyle.Render(text))
}

func main() {
	configDir := flag.String("config-dir", kconfig.DefaultDir(), "directory holding the rc files")
	dataDir := flag.String("data-dir", defaultDataDir(), "directory holding plugin definitions")
	showVersion := flag.Bool("version", false, "show version")
	flag.Parse()

	if *showVersion {
		fmt.Printf("svcmenu %s (built %s)\n", version, buildTime)
		return
	}

	settings := kconfig.NewSettings(*configDir)
	notifier := &noticeRecorder{settings: settings}

	generic := []registry.PluginSource{
		registry.NewServiceMenuSource(filepath.Join(*dataDir, "servicemenus")),
		registry.NewActionPluginSource(filepath.Join(*dataDir, "actionplugins")),
		registry.NewDescriptorSource(filepath.Join(*dataDir, "plugins")),
	}
	vcs := []registry.VcsSource{
		registry.NewBuiltinVcsSource(),
		registry.NewVcsDescriptorSource(filepath.Join(*dataDir, "plugins")),
	}

	p := tea.NewProgram(New(panel.New(settings, generic, vcs, notifier), notifier), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func defaultDataDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".local", "share", "svcmenu")
}
