package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/chmouel/lazyhg/internal/panel"
	"github.com/muesli/reflow/truncate"
)

const tabWidth = 4

// renderPanel draws one panel as a bordered box filling r, with the title
// set into the top border.
func (m *Model) renderPanel(id panel.ID, r region) string {
	if r.empty() {
		return ""
	}

	focused := m.view.Focus.IsActive(id)
	style := m.paneStyle(focused)

	innerWidth := r.Width - style.GetHorizontalFrameSize()
	innerHeight := r.Height - style.GetVerticalFrameSize()
	if innerWidth <= 0 || innerHeight <= 0 {
		return lipgloss.NewStyle().Width(r.Width).Height(r.Height).Render("")
	}

	p := m.panels.Get(id)
	top := m.renderTopBorder(id, p.Title, focused, r.Width)
	body := style.
		BorderTop(false).
		Width(r.Width - style.GetHorizontalBorderSize()).
		Height(innerHeight).
		MaxHeight(r.Height - 1).
		Render(clipContent(p.Text, innerWidth, innerHeight))
	return top + "\n" + body
}

// renderTopBorder renders the top edge of a pane with its title, e.g.
// "┌[s] Status──────┐".
func (m *Model) renderTopBorder(id panel.ID, title string, focused bool, width int) string {
	border := m.paneBorder(focused)
	edge := lipgloss.NewStyle().Foreground(m.paneBorderColor(focused))

	avail := width - lipgloss.Width(border.TopLeft) - lipgloss.Width(border.TopRight)
	label := m.renderPaneTitle(id, title, focused, avail)
	fill := maxInt(avail-lipgloss.Width(label), 0)

	return edge.Render(border.TopLeft) +
		label +
		edge.Render(strings.Repeat(border.Top, fill)+border.TopRight)
}

// renderPaneTitle renders a pane title with its shortcut key, cut to width.
func (m *Model) renderPaneTitle(id panel.ID, title string, focused bool, width int) string {
	if width <= 0 {
		return ""
	}

	keyStyle := lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	titleStyle := lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	if focused {
		keyStyle = keyStyle.Foreground(m.theme.Accent).Bold(true)
		titleStyle = titleStyle.Foreground(m.theme.Accent).Bold(true)
	}

	line := titleStyle.Render(title)
	if shortcut := m.keys.shortcutFor(id); shortcut != "" {
		line = fmt.Sprintf("%s %s", keyStyle.Render("["+shortcut+"]"), line)
	}
	return truncate.StringWithTail(line, uint(width), "…") //nolint:gosec // width is positive
}

// paneStyle returns a pane style with focus indication.
func (m *Model) paneStyle(focused bool) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(m.paneBorder(focused)).
		BorderForeground(m.paneBorderColor(focused)).
		Padding(0, 1)
}

func (m *Model) paneBorder(focused bool) lipgloss.Border {
	if focused {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}

func (m *Model) paneBorderColor(focused bool) lipgloss.Color {
	if focused {
		return m.theme.Accent
	}
	return m.theme.BorderDim
}

// clipContent fits text into a width x height box. Long lines are cut, not
// wrapped, and lines past the bottom are dropped.
func clipContent(text string, width, height int) string {
	if width <= 0 || height <= 0 || text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	lines := strings.Split(text, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		line = strings.ReplaceAll(line, "\r", "")
		line = strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
		lines[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}
