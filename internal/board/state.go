// Package board holds the client session for the assignment board: the
// snapshot of the aggregated view, the edit lock, and the polling loop that
// keeps the snapshot in step with the server.
package board

import (
	"time"

	"technician-board/internal/roster"
)

// State is the client's view of the board at one point in time.
type State struct {
	View        roster.View
	Online      bool
	LastUpdated time.Time
	Loading     bool
	Saving      bool
	LastError   string
}

// Event is an input to Reduce.
type Event interface {
	event()
}

// RefreshStarted marks a full fetch in flight.
type RefreshStarted struct{}

// RefreshSucceeded carries a freshly aggregated view.
type RefreshSucceeded struct {
	View roster.View
	At   time.Time
}

// RefreshFailed records a fetch error. The last snapshot stays on screen.
type RefreshFailed struct {
	Err error
}

// RefreshAbandoned clears the loading flag for a fetch nobody waits for anymore.
type RefreshAbandoned struct{}

// MoveStarted marks a move request in flight.
type MoveStarted struct{}

// MoveSucceeded carries a move the server acknowledged.
type MoveSucceeded struct {
	Move roster.Move
}

// MoveFailed records a rejected or failed move. No patch is applied.
type MoveFailed struct {
	Err error
}

func (RefreshStarted) event()   {}
func (RefreshSucceeded) event() {}
func (RefreshFailed) event()    {}
func (RefreshAbandoned) event() {}
func (MoveStarted) event()      {}
func (MoveSucceeded) event()    {}
func (MoveFailed) event()       {}

// Reduce returns the state that follows s after e. It never mutates s.View.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case RefreshStarted:
		s.Loading = true
	case RefreshSucceeded:
		s.View = ev.View
		if s.View == nil {
			s.View = roster.View{}
		}
		s.Online = true
		s.LastUpdated = ev.At
		s.Loading = false
		s.LastError = ""
	case RefreshFailed:
		s.Online = false
		s.Loading = false
		s.LastError = errString(ev.Err)
	case RefreshAbandoned:
		s.Loading = false
	case MoveStarted:
		s.Saving = true
	case MoveSucceeded:
		if patched, ok := roster.ApplyMove(s.View, ev.Move); ok {
			s.View = patched
		}
		s.Saving = false
		s.LastError = ""
	case MoveFailed:
		s.Saving = false
		s.LastError = errString(ev.Err)
	}
	return s
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
