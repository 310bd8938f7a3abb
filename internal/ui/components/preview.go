package components

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"svcmenu/internal/ui"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxPreviewSize caps how much of a plugin file is loaded for preview.
const maxPreviewSize = 256 * 1024

// PluginPreview displays a plugin definition file with syntax
// highlighting in a scrollable viewport.
type PluginPreview struct {
	viewport    viewport.Model
	highlighter *ui.Highlighter

	FilePath   string
	FileName   string
	TotalLines int

	Width  int
	Height int

	lineNumStyle lipgloss.Style
	headerStyle  lipgloss.Style
	infoStyle    lipgloss.Style
	borderStyle  lipgloss.Style
}

// NewPluginPreview creates a new preview component.
func NewPluginPreview() *PluginPreview {
	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	return &PluginPreview{
		viewport:    vp,
		highlighter: ui.NewHighlighter(),
		Width:       80,
		Height:      20,
		lineNumStyle: lipgloss.NewStyle().
			Foreground(ui.Muted).
			Width(4).
			Align(lipgloss.Right),
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.Secondary),
		infoStyle: lipgloss.NewStyle().
			Foreground(ui.Muted),
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.Border).
			Padding(0, 1),
	}
}

// SetSize updates the viewport dimensions
func (p *PluginPreview) SetSize(width, height int) {
	p.Width = width
	p.Height = height

	// Account for header and border
	contentHeight := height - 5
	if contentHeight < 5 {
		contentHeight = 5
	}
	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	p.viewport.Width = contentWidth
	p.viewport.Height = contentHeight
}

// Load loads the plugin file backing a service row.
func (p *PluginPreview) Load(path string) error {
	if path == "" {
		p.setMessage("(built-in)", []string{
			"",
			"  This entry is built into the application;",
			"  there is no definition file to show.",
		})
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > maxPreviewSize {
		p.setMessage(path, []string{
			"",
			"  File is too large to preview.",
		})
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	lines := strings.Split(string(data), "\n")

	var b strings.Builder
	for i, line := range lines {
		lineNum := p.lineNumStyle.Render(fmt.Sprintf("%d", i+1))
		b.WriteString(lineNum + " │ " + p.highlighter.HighlightLine(line, path))
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}

	p.FilePath = path
	p.FileName = filepath.Base(path)
	p.TotalLines = len(lines)
	p.viewport.SetContent(b.String())
	p.viewport.GotoTop()

	return nil
}

// setMessage sets a simple message content
func (p *PluginPreview) setMessage(path string, lines []string) {
	p.FilePath = path
	p.FileName = filepath.Base(path)
	p.TotalLines = len(lines)
	p.viewport.SetContent(strings.Join(lines, "\n"))
	p.viewport.GotoTop()
}

// Update handles messages for viewport scrolling
func (p *PluginPreview) Update(msg tea.Msg) (*PluginPreview, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the preview
func (p *PluginPreview) View() string {
	var b strings.Builder

	header := p.headerStyle.Render(p.FileName)
	info := p.infoStyle.Render(fmt.Sprintf("  %d lines", p.TotalLines))
	b.WriteString(header + info + "\n")
	b.WriteString(p.infoStyle.Render(p.FilePath) + "\n")
	b.WriteString(ui.DividerStyle.Render(strings.Repeat("─", max(1, p.Width-4))) + "\n")
	b.WriteString(p.viewport.View())

	if p.TotalLines > p.viewport.Height {
		scrollInfo := fmt.Sprintf("─── %.0f%% ───", p.viewport.ScrollPercent()*100)
		b.WriteString("\n" + p.infoStyle.Render(scrollInfo))
	}

	return p.borderStyle.Width(p.Width).Render(b.String())
}
