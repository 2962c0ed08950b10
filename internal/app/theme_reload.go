package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazyhg/internal/app/services"
	"github.com/chmouel/lazyhg/internal/config"
	log "github.com/chmouel/lazyhg/internal/log"
	"github.com/chmouel/lazyhg/internal/theme"
)

// startWatchCmd starts the config watcher when theme reloading is enabled.
func (m *Model) startWatchCmd() tea.Cmd {
	if m.configPath == "" {
		return nil
	}
	if m.watcher != nil && m.watcher.Started {
		return nil
	}
	if m.watcher == nil {
		m.watcher = services.NewConfigWatchService(m.configPath, log.Printf)
	}
	started, err := m.watcher.Start()
	if err != nil {
		log.Printf("config watcher: %v", err)
		return nil
	}
	if !started {
		return nil
	}
	return m.waitForConfigCmd()
}

func (m *Model) waitForConfigCmd() tea.Cmd {
	if m.watcher == nil || !m.watcher.Started {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		if !w.Wait() {
			return nil
		}
		return configChangedMsg{}
	}
}

// reloadTheme re-reads the config file and applies its theme. Panel contents
// are left untouched.
func (m *Model) reloadTheme() {
	if m.configPath == "" {
		return
	}
	cfg, err := config.ReadConfig(m.configPath)
	if err != nil {
		log.Printf("reload config: %v", err)
		return
	}
	// Querying the terminal background would race the input reader.
	if cfg.Theme == "" || cfg.Theme == m.config.Theme {
		return
	}
	log.Printf("theme: %s -> %s", m.config.Theme, cfg.Theme)
	m.config.Theme = cfg.Theme
	m.theme = theme.GetTheme(cfg.Theme)
	m.applyHelpStyles()
}
