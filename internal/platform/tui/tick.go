// Package tui runs the game inside a Bubble Tea program, locally or per SSH
// session. The game loop draws on an in-memory terminal; each refresh is
// rendered with lipgloss and handed to the program as a message.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg carries a rendered frame.
type FrameMsg string

// doneMsg reports that the game closed its terminal.
type doneMsg struct{}

// waitForFrame returns a command that blocks for the next frame or the end
// of the game.
func waitForFrame(b *Bridge) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-b.ready:
			return FrameMsg(b.Latest())
		case <-b.term.Done():
		}
		select {
		case <-b.ready:
			return FrameMsg(b.Latest())
		default:
			return doneMsg{}
		}
	}
}
