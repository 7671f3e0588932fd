package speech

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
)

const (
	defaultListenTimeout = 8 * time.Second
	defaultAttempts      = 3
)

// Prompter delivers retry prompts to the user. *Queue satisfies it.
type Prompter interface {
	Deliver(text string, priority bool)
}

// Input acquires one utterance per turn: bounded voice attempts with
// per-kind prompts, then a deterministic text fallback.
type Input struct {
	// Voice is the primary recognizer; nil means text-only operation.
	Voice Recognizer
	// Fallback is consulted after voice attempts are exhausted.
	Fallback Recognizer
	// Prompts receives the retry and fallback announcements.
	Prompts Prompter
	// Timeout bounds one voice attempt. Zero means the default (8s).
	Timeout time.Duration
	// Attempts bounds voice retries. Zero means the default (3).
	Attempts int

	Logger *slog.Logger
}

// Acquire returns the next non-empty utterance, or an error when both voice
// and text input are exhausted or the context is cancelled.
func (in *Input) Acquire(ctx context.Context) (string, error) {
	timeout := in.Timeout
	if timeout <= 0 {
		timeout = defaultListenTimeout
	}
	attempts := in.Attempts
	if attempts <= 0 {
		attempts = defaultAttempts
	}
	logger := in.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if in.Voice != nil {
		for attempt := 1; attempt <= attempts; attempt++ {
			if err := ctx.Err(); err != nil {
				return "", err
			}

			utterance, err := in.Voice.Listen(ctx, timeout)
			if err == nil && strings.TrimSpace(utterance) != "" {
				return utterance, nil
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return "", err
			}

			logger.Warn("voice recognition attempt failed",
				"attempt", attempt, "max", attempts, "error", err)

			if attempt == attempts {
				break
			}
			switch {
			case errors.Is(err, ErrTimeout):
				in.prompt("I didn't hear anything. Please speak now.")
			case errors.Is(err, ErrUnavailable):
				in.prompt("Network issue with speech service. Trying again.")
			default:
				in.prompt("Technical issue detected. Please try again.")
			}
		}
		in.prompt("Voice recognition failed. Let me switch to text input.")
	}

	if in.Fallback == nil {
		return "", ErrUnavailable
	}
	return in.Fallback.Listen(ctx, 0)
}

func (in *Input) prompt(text string) {
	if in.Prompts != nil {
		in.Prompts.Deliver(text, true)
	}
}
