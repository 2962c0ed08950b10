// Package panel defines the fixed set of dashboard panels and the read-only
// registry holding the text captured for each of them at startup.
package panel

import "fmt"

// ID identifies one of the dashboard panels.
type ID int

// Panel identities, in display order.
const (
	Status ID = iota
	Branches
	Bookmarks
	Log
)

// All returns every panel identity in display order.
func All() []ID {
	return []ID{Status, Branches, Bookmarks, Log}
}

// Title returns the human readable panel title.
func (id ID) Title() string {
	switch id {
	case Status:
		return "Status"
	case Branches:
		return "Branches"
	case Bookmarks:
		return "Bookmarks"
	case Log:
		return "Log"
	default:
		return fmt.Sprintf("Panel(%d)", int(id))
	}
}

// Args returns the VCS subcommand arguments that produce the panel's text.
func (id ID) Args() []string {
	switch id {
	case Status:
		return []string{"status"}
	case Branches:
		return []string{"branches"}
	case Bookmarks:
		return []string{"bookmarks"}
	case Log:
		return []string{"log"}
	default:
		return nil
	}
}

// Valid reports whether id is one of the known panels.
func (id ID) Valid() bool {
	return id >= Status && id <= Log
}

func (id ID) String() string {
	return id.Title()
}

// Panel is a named region bound to text captured once at startup.
type Panel struct {
	ID    ID
	Title string
	Text  string
}

// Registry holds the captured text of every panel. It is never mutated after
// construction.
type Registry struct {
	panels [Log + 1]Panel
}

// NewRegistry builds a registry from captured texts. Panels missing from
// texts get an empty payload.
func NewRegistry(texts map[ID]string) *Registry {
	r := &Registry{}
	for _, id := range All() {
		r.panels[id] = Panel{ID: id, Title: id.Title(), Text: texts[id]}
	}
	return r
}

// Get returns the panel for id. Unknown ids yield a zero Panel.
func (r *Registry) Get(id ID) Panel {
	if r == nil || !id.Valid() {
		return Panel{}
	}
	return r.panels[id]
}

// Text returns the captured payload for id.
func (r *Registry) Text(id ID) string {
	return r.Get(id).Text
}

// Panels returns every panel in display order.
func (r *Registry) Panels() []Panel {
	out := make([]Panel, 0, len(r.panels))
	for _, id := range All() {
		out = append(out, r.Get(id))
	}
	return out
}
