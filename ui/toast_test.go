package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToastLifecycle(t *testing.T) {
	u := State{}.ShowNotification("hello", ToastSuccess)
	require.NotNil(t, u.State.Notification)
	toast := *u.State.Notification
	assert.Equal(t, PhaseEntering, toast.Phase)
	assert.Equal(t, []Timer{
		{Delay: EnterDelay, ToastID: toast.ID, Phase: PhaseVisible},
		{Delay: AutoHideDelay, ToastID: toast.ID, Phase: PhaseLeaving},
	}, u.Timers)

	u = u.State.NotificationTick(toast.ID, PhaseVisible)
	assert.Equal(t, PhaseVisible, u.State.Notification.Phase)
	assert.Empty(t, u.Timers)

	u = u.State.NotificationTick(toast.ID, PhaseLeaving)
	assert.Equal(t, PhaseLeaving, u.State.Notification.Phase)
	assert.Equal(t, []Timer{{Delay: LeaveDuration, ToastID: toast.ID, Phase: PhaseDetached}}, u.Timers)

	u = u.State.NotificationTick(toast.ID, PhaseDetached)
	assert.Nil(t, u.State.Notification)
}

func TestToastManualCloseThenAutoHideIsNoop(t *testing.T) {
	s := State{}.ShowNotification("hello", ToastInfo).State
	id := s.Notification.ID
	s = s.NotificationTick(id, PhaseVisible).State

	u := s.CloseNotification(id)
	assert.Equal(t, PhaseLeaving, u.State.Notification.Phase)
	require.Len(t, u.Timers, 1)

	// The 5s auto-hide fires while the toast is already leaving.
	again := u.State.NotificationTick(id, PhaseLeaving)
	assert.Empty(t, again.Timers)
	assert.Equal(t, u.State, again.State)
}

func TestToastCloseBeforeVisible(t *testing.T) {
	s := State{}.ShowNotification("quick", ToastInfo).State
	id := s.Notification.ID

	s = s.CloseNotification(id).State
	s = s.NotificationTick(id, PhaseVisible).State
	assert.Equal(t, PhaseLeaving, s.Notification.Phase)
}

func TestNewToastReplacesOld(t *testing.T) {
	s := State{}.ShowNotification("first", ToastInfo).State
	oldID := s.Notification.ID

	s = s.ShowNotification("second", ToastError).State
	require.NotEqual(t, oldID, s.Notification.ID)
	assert.Equal(t, "second", s.Notification.Message)

	// Timers armed for the replaced toast do nothing.
	u := s.NotificationTick(oldID, PhaseLeaving)
	assert.Equal(t, PhaseEntering, u.State.Notification.Phase)
	u = u.State.NotificationTick(oldID, PhaseDetached)
	require.NotNil(t, u.State.Notification)
	assert.Equal(t, "second", u.State.Notification.Message)
}

func TestToastDoesNotMutatePreviousState(t *testing.T) {
	before := State{}.ShowNotification("hello", ToastInfo).State
	id := before.Notification.ID

	_ = before.NotificationTick(id, PhaseVisible)
	assert.Equal(t, PhaseEntering, before.Notification.Phase)
}

func TestToastKind(t *testing.T) {
	assert.Equal(t, "#10b981", ToastSuccess.Background())
	assert.Equal(t, "#ef4444", ToastError.Background())
	assert.Equal(t, "#3b82f6", ToastInfo.Background())

	s := State{}.ShowNotification("x", "").State
	assert.Equal(t, ToastInfo, s.Notification.Kind)
	assert.Equal(t, "leaving", PhaseLeaving.String())
}
