package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"coffeeflavours/internal/viewstate"
)

// NavigateMsg asks the app to make Page the active page (SPC g …).
type NavigateMsg struct {
	Page viewstate.Page
}

// OpenMenuMsg is sent when the user opens the nav menu from anywhere (SPC m).
type OpenMenuMsg struct{}

// OpenSearchMsg is sent when the user opens search from anywhere (SPC /).
type OpenSearchMsg struct{}

// OpenBookingMsg is sent when the user opens the booking modal (SPC b).
type OpenBookingMsg struct{}

// GoHomeMsg is sent when the user jumps home (SPC h).
type GoHomeMsg struct{}

// ResetMsg restores the mount-time view state (SPC r).
type ResetMsg struct{}

// ControllerErrMsg carries a rejected controller operation. The app logs
// it; the state is unchanged.
type ControllerErrMsg struct {
	Op  viewstate.Op
	Err error
}

// transitionMsg delivers a controller transition from the observer channel.
type transitionMsg struct {
	viewstate.Transition
}

// listenTransitions waits for the next transition on ch. Returns nil when
// ch is nil; the returned command yields nil once ch is closed.
func listenTransitions(ch <-chan viewstate.Transition) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		t, ok := <-ch
		if !ok {
			return nil
		}
		return transitionMsg{Transition: t}
	}
}

// reportErr wraps a controller error as a command, or returns nil.
func reportErr(op viewstate.Op, err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return func() tea.Msg {
		return ControllerErrMsg{Op: op, Err: err}
	}
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
