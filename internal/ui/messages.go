package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/hiddenleaf/internal/ambient"
)

type frameMsg time.Time

type soundToggledMsg struct {
	state ambient.State
	err   error
}

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// toggleSoundCmd flips the engine off the update loop; opening the output
// device can block until it is ready.
func toggleSoundCmd(e *ambient.Engine) tea.Cmd {
	return func() tea.Msg {
		state, err := e.Toggle()
		return soundToggledMsg{state: state, err: err}
	}
}
