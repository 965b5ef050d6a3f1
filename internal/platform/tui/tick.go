// Package tui is the terminal frontend: a Bubble Tea program that redraws
// the field at the frame rate and steps the session at the simulation rate.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gesnake/internal/app"
)

// FrameMsg triggers a redraw.
type FrameMsg time.Time

// SimTickMsg triggers one simulation step.
type SimTickMsg time.Time

// sessionDoneMsg reports that the session ended outside the terminal,
// e.g. the camera failed or the preview window was closed.
type sessionDoneMsg struct{}

// frameCmd returns a command that sends a FrameMsg after one frame at the given rate.
func frameCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// simTickCmd returns a command that sends a SimTickMsg after interval.
func simTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return SimTickMsg(t)
	})
}

// waitSessionCmd blocks until the session is done.
func waitSessionCmd(s *app.Session) tea.Cmd {
	return func() tea.Msg {
		<-s.Done()
		return sessionDoneMsg{}
	}
}
