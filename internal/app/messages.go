package app

// pollTickMsg marks the end of one bounded wait for input with no key.
type pollTickMsg struct{}

// configChangedMsg is sent when the watched config file changes.
type configChangedMsg struct{}
