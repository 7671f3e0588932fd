// Package session owns the conversation state for one run of the assistant:
// the append-only history, the last discussed topic, and the consecutive
// failure counter. One session exists per process, created at startup and
// discarded at exit.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/inonetecx/concierge/internal/intent"
)

// Speaker identifies who produced a history entry.
type Speaker string

const (
	User      Speaker = "user"
	Assistant Speaker = "assistant"
)

// Entry is one line of the conversation transcript.
type Entry struct {
	Speaker Speaker   `json:"speaker"`
	Text    string    `json:"text"`
	At      time.Time `json:"at"`
}

// Session is the mutable conversation context. It is owned by the turn
// controller and never accessed concurrently; the dialogue engine serializes
// access for secondary input surfaces.
type Session struct {
	ID        string
	Start     time.Time
	LastTopic intent.Intent

	// Preferences is reserved for future personalization; it is part of
	// the contract but unused by current response logic.
	Preferences map[string]string

	history  []Entry
	failures int
}

// New creates a session with the start timestamp set once.
func New() *Session {
	return &Session{
		ID:          uuid.NewString(),
		Start:       time.Now(),
		Preferences: make(map[string]string),
	}
}

// Append records one utterance in the transcript. History grows
// monotonically for the session lifetime.
func (s *Session) Append(speaker Speaker, text string) {
	s.history = append(s.history, Entry{Speaker: speaker, Text: text, At: time.Now()})
}

// History returns a copy of the transcript so far.
func (s *Session) History() []Entry {
	out := make([]Entry, len(s.history))
	copy(out, s.history)
	return out
}

// Len returns the number of transcript entries.
func (s *Session) Len() int {
	return len(s.history)
}

// RecordFailure increments the consecutive failure counter and returns the
// new count.
func (s *Session) RecordFailure() int {
	s.failures++
	return s.failures
}

// ResetFailures clears the consecutive failure counter; called on any
// successful non-empty utterance.
func (s *Session) ResetFailures() {
	s.failures = 0
}

// Failures returns the current consecutive failure count.
func (s *Session) Failures() int {
	return s.failures
}

// Minutes returns the elapsed session duration in whole minutes at now.
func (s *Session) Minutes(now time.Time) int {
	return int(now.Sub(s.Start).Minutes())
}
