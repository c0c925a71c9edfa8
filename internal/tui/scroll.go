package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const frameInterval = time.Second / 60

// scrollTracker coalesces scroll notifications into at most one recompute
// per frame. Notify records the latest offset and schedules a frame only
// when none is pending; the frame derives scrolled and direction from the
// newest offset.
type scrollTracker struct {
	offset  int
	applied int
	pending bool

	scrolled  bool
	direction int
	frames    int
}

func (s *scrollTracker) Notify(offset int) tea.Cmd {
	s.offset = offset
	if s.pending {
		return nil
	}
	s.pending = true
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return scrollFrameMsg{}
	})
}

func (s *scrollTracker) Frame() {
	s.pending = false
	switch {
	case s.offset > s.applied:
		s.direction = 1
	case s.offset < s.applied:
		s.direction = -1
	default:
		s.direction = 0
	}
	s.applied = s.offset
	s.scrolled = s.offset > 0
	s.frames++
}

// Reset clears the tracker without scheduling a frame.
func (s *scrollTracker) Reset() {
	*s = scrollTracker{}
}
