package player

import (
	"time"

	"github.com/listen2bea/listen2bea/internal/sequencer"
	"github.com/listen2bea/listen2bea/internal/tatoeba"
)

// playlistLoadedMsg is sent when the initial (or reloaded) sentence
// page has been fetched.
type playlistLoadedMsg struct {
	Page *tatoeba.Page
	Err  error
}

// seqEventMsg wraps one sequencer event for the update loop.
type seqEventMsg struct {
	Event sequencer.Event
}

// hintPollMsg fires while an explanation request is in flight.
type hintPollMsg time.Time

// persistDoneMsg confirms an event write completed.
type persistDoneMsg struct {
	Err error
}
