// Package ui holds the page's client-side state and the pure reducers that
// update it. Rendering and timers live in cmd/webui; nothing here touches the DOM.
package ui

import "time"

// HeaderScrollThreshold is the scroll offset past which the header turns opaque.
const HeaderScrollThreshold = 100

// State is everything the page renders from.
type State struct {
	MenuOpen       bool
	HeaderScrolled bool
	Submitting     bool
	Notification   *Toast            // nil when no toast is attached
	MaxScrollDepth int               // percent, 0..100
	FocusedField   string            // form field name, "" when none
	FieldErrors    map[string]string // server-reported problems keyed by field

	nextToastID uint64
}

// Event is an analytics event emitted by a reducer.
type Event struct {
	Name  string
	Props map[string]string
}

// Timer asks the renderer to dispatch NotificationTick(ToastID, Phase) after Delay.
type Timer struct {
	Delay   time.Duration
	ToastID uint64
	Phase   ToastPhase
}

// Update is the result of one reducer step.
type Update struct {
	State     State
	Timers    []Timer
	Events    []Event
	ResetForm bool
}

func (s State) unchanged() Update {
	return Update{State: s}
}

// BodyScrollLocked reports whether page scrolling is disabled behind the open menu.
func (s State) BodyScrollLocked() bool {
	return s.MenuOpen
}
