// Package speech holds the input and output adapters for the assistant:
// utterance acquisition with bounded retries and text fallback, and an
// ordered delivery queue drained by a single worker.
package speech

import (
	"context"
	"errors"
	"time"
)

// Recognition failure kinds. The acquisition loop switches on these instead
// of exception-style control flow; none of them is fatal.
var (
	ErrTimeout        = errors.New("speech: listening timed out")
	ErrUnintelligible = errors.New("speech: could not understand audio")
	ErrUnavailable    = errors.New("speech: recognition service unavailable")
)

// Recognizer captures one utterance. Implementations block for at most
// timeout (when positive) and return one of the sentinel errors above on
// failure.
type Recognizer interface {
	Listen(ctx context.Context, timeout time.Duration) (string, error)
}

// Engine delivers one piece of text to the user (speaker, console, or
// both). Say blocks until delivery finishes.
type Engine interface {
	Say(ctx context.Context, text string) error
}
