package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is the frame clock: it flushes pending drag updates.
type FrameMsg time.Time

// frameCmd schedules the next frame.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// doubleClickWindow is the longest gap between the presses of a double
// click.
const doubleClickWindow = 400 * time.Millisecond

// click remembers the last left press for double-click detection.
type click struct {
	col, row int
	at       time.Time
}

// isDouble reports whether a press at (col, row) completes a double click
// started by c.
func (c click) isDouble(col, row int, now time.Time) bool {
	return !c.at.IsZero() && c.col == col && c.row == row && now.Sub(c.at) <= doubleClickWindow
}
