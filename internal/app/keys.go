package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazyhg/internal/app/state"
	"github.com/chmouel/lazyhg/internal/panel"
)

// keyMap holds the dashboard key bindings.
type keyMap struct {
	Status key.Binding
	Toggle key.Binding
	Log    key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Status: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
		Toggle: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "branches/bookmarks")),
		Log:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Status, k.Toggle, k.Log, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// commandFor translates an input event into a key command. Anything that is
// not one of the bound keys is a no-op.
func (k keyMap) commandFor(msg tea.Msg) state.Command {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return state.NoOp
	}

	switch {
	case key.Matches(keyMsg, k.Quit):
		return state.Quit
	case key.Matches(keyMsg, k.Status):
		return state.FocusStatus
	case key.Matches(keyMsg, k.Log):
		return state.FocusLog
	case key.Matches(keyMsg, k.Toggle):
		return state.ToggleBranchesBookmarks
	default:
		return state.NoOp
	}
}

// shortcutFor returns the key that focuses id, shown in the panel title.
func (k keyMap) shortcutFor(id panel.ID) string {
	switch id {
	case panel.Status:
		return k.Status.Help().Key
	case panel.Branches, panel.Bookmarks:
		return k.Toggle.Help().Key
	case panel.Log:
		return k.Log.Help().Key
	default:
		return ""
	}
}
