package ui

import "time"

// ToastKind selects the toast colour.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
)

// Background returns the toast background colour for the kind.
func (k ToastKind) Background() string {
	switch k {
	case ToastSuccess:
		return "#10b981"
	case ToastError:
		return "#ef4444"
	default:
		return "#3b82f6"
	}
}

// ToastPhase is the position of a toast in its display lifecycle.
type ToastPhase int

const (
	PhaseEntering ToastPhase = iota // attached, off-screen and transparent
	PhaseVisible                    // slid in
	PhaseLeaving                    // sliding out
	PhaseDetached                   // removed from the page
)

func (p ToastPhase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseVisible:
		return "visible"
	case PhaseLeaving:
		return "leaving"
	case PhaseDetached:
		return "detached"
	}
	return "unknown"
}

// Lifecycle delays.
const (
	EnterDelay    = 100 * time.Millisecond
	AutoHideDelay = 5 * time.Second
	LeaveDuration = 300 * time.Millisecond
)

// Toast is a transient notification.
type Toast struct {
	ID      uint64
	Message string
	Kind    ToastKind
	Phase   ToastPhase
}

// ShowNotification attaches a new toast, replacing any current one.
// The auto-hide timer is armed from the moment the toast is attached.
func (s State) ShowNotification(message string, kind ToastKind) Update {
	if kind == "" {
		kind = ToastInfo
	}
	s.nextToastID++
	t := &Toast{
		ID:      s.nextToastID,
		Message: message,
		Kind:    kind,
		Phase:   PhaseEntering,
	}
	s.Notification = t

	return Update{
		State: s,
		Timers: []Timer{
			{Delay: EnterDelay, ToastID: t.ID, Phase: PhaseVisible},
			{Delay: AutoHideDelay, ToastID: t.ID, Phase: PhaseLeaving},
		},
	}
}

// NotificationTick advances the toast with the given id. Ticks for a toast
// that has been replaced, or that would move it backwards, are ignored.
func (s State) NotificationTick(id uint64, phase ToastPhase) Update {
	cur := s.Notification
	if cur == nil || cur.ID != id || phase <= cur.Phase {
		return s.unchanged()
	}

	if phase == PhaseDetached {
		s.Notification = nil
		return s.unchanged()
	}

	next := *cur
	next.Phase = phase
	s.Notification = &next

	if phase == PhaseLeaving {
		return Update{
			State:  s,
			Timers: []Timer{{Delay: LeaveDuration, ToastID: id, Phase: PhaseDetached}},
		}
	}
	return s.unchanged()
}

// CloseNotification starts the exit animation of the toast with the given id.
func (s State) CloseNotification(id uint64) Update {
	return s.NotificationTick(id, PhaseLeaving)
}
