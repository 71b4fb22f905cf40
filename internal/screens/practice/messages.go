package practice

import (
	"github.com/abhisek/wordiz/internal/session"
)

// sessionInitMsg is sent when the session has been built from the store.
type sessionInitMsg struct {
	State *session.State
	Err   error
}

// feedbackDoneMsg ends the post-answer feedback display. Gen ties the
// message to the answer that scheduled it; a stale generation means the
// learner already moved on and the timer is dropped.
type feedbackDoneMsg struct {
	Gen int
}

// sessionEndMsg triggers the session completion flow.
type sessionEndMsg struct{}

// persistMsg confirms a background store write.
type persistMsg struct {
	Err error
}

// audioDoneMsg reports a finished (or failed) audio playback.
type audioDoneMsg struct {
	Err error
}
