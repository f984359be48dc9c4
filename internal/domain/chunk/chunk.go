// Package chunk defines the transcript chunk record: one recorded utterance
// of one speaker inside one commission session.
package chunk

import "strconv"

// Chunk is a single transcribed utterance. The corpus is loaded once at
// startup and never mutated; Index is unique within a Session and chunks of
// a session sorted by Index reproduce the original session order.
type Chunk struct {
	ID      string `json:"id"`
	Session string `json:"session"`
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
	Index   int    `json:"index"`
}

// SessionNumber returns the numeric value of the session identifier.
// Non-numeric identifiers sort as 0.
func (c Chunk) SessionNumber() int {
	n, err := strconv.Atoi(c.Session)
	if err != nil {
		return 0
	}
	return n
}

// Before reports whether c precedes other in chronological order across
// sessions: numeric session first, then index within the session.
func (c Chunk) Before(other Chunk) bool {
	cs, os := c.SessionNumber(), other.SessionNumber()
	if cs != os {
		return cs < os
	}
	return c.Index < other.Index
}
