//go:build !js

// Package tui is the terminal backend. A Bubble Tea program hosts the frame
// loop: every tick message runs one frame, the frame is rasterized onto a
// cell buffer and shown with lipgloss colors.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to run one frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one frame at fps.
func tickCmd(fps float64) tea.Cmd {
	interval := time.Duration(float64(time.Second) / fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
