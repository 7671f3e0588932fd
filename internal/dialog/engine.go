// Package dialog drives the conversation: the Engine turns one utterance
// into one reply against the shared session, and the Controller runs the
// acquire-classify-respond-deliver cycle until the session ends.
package dialog

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/inonetecx/concierge/internal/intent"
	"github.com/inonetecx/concierge/internal/session"
)

// Responder generates the reply text for an interpreted utterance.
type Responder interface {
	Generate(in intent.Intent, ents intent.Entities, utterance string, sess *session.Session) string
}

// Reply is the result of one interpreted turn.
type Reply struct {
	Turn      string          `json:"turn"`
	Utterance string          `json:"utterance"`
	Intent    intent.Intent   `json:"intent"`
	Entities  intent.Entities `json:"-"`
	Text      string          `json:"reply"`
}

// Engine performs the interpretation step of a turn: normalize, classify,
// extract, generate, and append to history, as one serialized operation.
// The mutex keeps the single-session rule intact when a secondary input
// surface (HTTP, MCP) feeds utterances alongside the controller.
type Engine struct {
	mu     sync.Mutex
	gen    Responder
	sess   *session.Session
	logger *slog.Logger
}

// NewEngine creates an Engine bound to one session.
func NewEngine(gen Responder, sess *session.Session) *Engine {
	return &Engine{gen: gen, sess: sess, logger: slog.Default()}
}

// Session returns the engine's session. The controller owns it; other
// callers must go through Respond and History.
func (e *Engine) Session() *session.Session {
	return e.sess
}

// Respond interprets one utterance and records both sides in the history.
// A panic inside generation is recovered and returned as an error so a
// faulty branch cannot take the whole conversation down.
func (e *Engine) Respond(utterance string) (Reply, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	normalized := intent.Normalize(utterance)
	reply := Reply{Turn: uuid.NewString(), Utterance: utterance}

	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("turn panicked: %v", r)
			}
		}()
		reply.Intent = intent.Classify(normalized)
		reply.Entities = intent.Extract(normalized)
		reply.Text = e.gen.Generate(reply.Intent, reply.Entities, normalized, e.sess)
		return nil
	}()
	if err != nil {
		e.logger.Error("response generation failed", "utterance", utterance, "error", err)
		return Reply{}, err
	}

	e.sess.Append(session.User, utterance)
	e.sess.Append(session.Assistant, reply.Text)
	return reply, nil
}

// History returns a snapshot of the transcript.
func (e *Engine) History() []session.Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sess.History()
}
