package state

// ViewState holds UI-related state for the model.
type ViewState struct {
	Focus        Focus
	WindowWidth  int
	WindowHeight int
}

// NewViewState returns the view state at program start.
func NewViewState() ViewState {
	return ViewState{Focus: NewFocus()}
}

// HasSize reports whether a window size has been received.
func (v ViewState) HasSize() bool {
	return v.WindowWidth > 0 && v.WindowHeight > 0
}
