// Package app implements the lazyhg dashboard as a Bubble Tea model.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazyhg/internal/app/services"
	"github.com/chmouel/lazyhg/internal/app/state"
	"github.com/chmouel/lazyhg/internal/config"
	log "github.com/chmouel/lazyhg/internal/log"
	"github.com/chmouel/lazyhg/internal/panel"
	"github.com/chmouel/lazyhg/internal/theme"
)

// Model is the dashboard state: the captured panels, the focused panel and
// the last known window size.
type Model struct {
	config *config.AppConfig
	theme  *theme.Theme
	panels *panel.Registry
	keys   keyMap
	help   help.Model
	view   state.ViewState

	configPath string
	watcher    *services.ConfigWatchService

	quitting bool
}

// NewModel creates the dashboard model for the captured panels.
func NewModel(cfg *config.AppConfig, panels *panel.Registry) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if panels == nil {
		panels = panel.NewRegistry(nil)
	}

	m := &Model{
		config: cfg,
		theme:  theme.GetTheme(cfg.Theme),
		panels: panels,
		keys:   newKeyMap(),
		help:   help.New(),
		view:   state.NewViewState(),
	}
	if cfg.AutoReloadTheme {
		m.configPath = config.ExistingPath()
	}
	m.applyHelpStyles()
	return m
}

// Init starts the poll tick and, when enabled, the config watcher.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.pollCmd(), m.startWatchCmd())
}

// Update applies one message to the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view.WindowWidth = msg.Width
		m.view.WindowHeight = msg.Height
		return m, nil
	case pollTickMsg:
		return m, m.pollCmd()
	case tea.KeyMsg:
		return m.handleCommand(m.keys.commandFor(msg))
	case configChangedMsg:
		m.reloadTheme()
		return m, m.waitForConfigCmd()
	}
	return m, nil
}

// handleCommand runs cmd through the focus state machine. Quit is the only
// command that ends the program.
func (m *Model) handleCommand(cmd state.Command) (tea.Model, tea.Cmd) {
	if cmd == state.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	prev := m.view.Focus.Active()
	m.view.Focus = m.view.Focus.Apply(cmd)
	if next := m.view.Focus.Active(); next != prev {
		log.Printf("focus: %s -> %s (%s)", prev, next, cmd)
	}
	return m, nil
}

// pollCmd bounds the wait for input so the loop repaints at least once per
// poll interval even when no key is pressed.
func (m *Model) pollCmd() tea.Cmd {
	interval := m.config.PollInterval
	if interval <= 0 {
		interval = config.DefaultPollInterval
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

// Focused returns the highlighted panel.
func (m *Model) Focused() panel.ID {
	return m.view.Focus.Active()
}

// Quitting reports whether the quit command was received.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Close releases background resources.
func (m *Model) Close() {
	if m.watcher != nil {
		m.watcher.Stop()
	}
}
