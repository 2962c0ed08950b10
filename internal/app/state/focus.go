package state

import "github.com/chmouel/lazyhg/internal/panel"

// Command is a key command produced by the input poller.
type Command int

// Key commands.
const (
	NoOp Command = iota
	Quit
	FocusStatus
	FocusLog
	ToggleBranchesBookmarks
)

func (c Command) String() string {
	switch c {
	case NoOp:
		return "noop"
	case Quit:
		return "quit"
	case FocusStatus:
		return "focus-status"
	case FocusLog:
		return "focus-log"
	case ToggleBranchesBookmarks:
		return "toggle-branches-bookmarks"
	default:
		return "unknown"
	}
}

// Focus is the currently highlighted panel. The zero value is Status.
type Focus struct {
	active panel.ID
}

// NewFocus returns the initial focus state.
func NewFocus() Focus {
	return Focus{active: panel.Status}
}

// Active returns the highlighted panel.
func (f Focus) Active() panel.ID {
	return f.active
}

// IsActive reports whether id is the highlighted panel.
func (f Focus) IsActive(id panel.ID) bool {
	return f.active == id
}

// Apply returns the focus that results from cmd. Quit and NoOp leave it
// unchanged; the caller owns termination.
func (f Focus) Apply(cmd Command) Focus {
	switch cmd {
	case FocusStatus:
		return Focus{active: panel.Status}
	case FocusLog:
		return Focus{active: panel.Log}
	case ToggleBranchesBookmarks:
		if f.active == panel.Branches {
			return Focus{active: panel.Bookmarks}
		}
		return Focus{active: panel.Branches}
	case NoOp, Quit:
		return f
	default:
		return f
	}
}
