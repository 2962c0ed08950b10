package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/chmouel/lazyhg/internal/panel"
)

// View renders the whole dashboard. Every call repaints every panel.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Wait for window size before rendering full UI
	if !m.view.HasSize() {
		return "Loading..."
	}

	layout := computeLayout(m.view.WindowWidth, m.view.WindowHeight, m.config.ShowHelp)
	if layout.width <= 2*layoutMargin || layout.height <= 2*layoutMargin {
		return ""
	}

	left := joinVertical(
		m.renderPanel(panel.Status, layout.regionFor(panel.Status)),
		m.renderPanel(panel.Branches, layout.regionFor(panel.Branches)),
		m.renderPanel(panel.Bookmarks, layout.regionFor(panel.Bookmarks)),
	)
	right := m.renderPanel(panel.Log, layout.regionFor(panel.Log))

	body := right
	if left != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	return lipgloss.NewStyle().
		Margin(layoutMargin).
		Render(joinVertical(body, m.renderFooter(layout.footer)))
}

// renderFooter renders the key hints.
func (m *Model) renderFooter(r region) string {
	if r.empty() {
		return ""
	}
	m.help.Width = r.Width
	hints, _, _ := strings.Cut(m.help.View(m.keys), "\n")
	return lipgloss.NewStyle().
		Width(r.Width).
		MaxWidth(r.Width).
		MaxHeight(footerHeight).
		Render(ansi.Truncate(hints, r.Width, "…"))
}

func (m *Model) applyHelpStyles() {
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	m.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(m.theme.BorderDim)
	m.help.Styles.Ellipsis = lipgloss.NewStyle().Foreground(m.theme.MutedFg)
}

// joinVertical stacks the non-empty blocks.
func joinVertical(blocks ...string) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b != "" {
			parts = append(parts, b)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
