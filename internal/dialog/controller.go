package dialog

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/inonetecx/concierge/internal/intent"
)

// State is the controller's position in the turn cycle.
type State string

const (
	StateIdle       State = "idle"
	StateListening  State = "listening"
	StateProcessing State = "processing"
	StateSpeaking   State = "speaking"
	StateStopped    State = "stopped"
)

const (
	maxConsecutiveFailures = 3
	followUpHistoryLimit   = 10
	goodbyePause           = 2 * time.Second
)

const (
	retryLine     = "I didn't catch that. Could you please try again?"
	persistLine   = "I'm experiencing persistent audio issues. Please restart the assistant for the best experience."
	faultLine     = "I encountered a technical issue. Please try again or restart the assistant."
	interruptLine = "Assistant interrupted. Goodbye!"
	shutdownLine  = "Assistant shutting down. Thank you for choosing Inonetecx!"
	followUpLine  = "Is there anything specific about this service you'd like to know more about?"
)

// Source supplies one utterance per turn.
type Source interface {
	Acquire(ctx context.Context) (string, error)
}

// Sink delivers replies to the user. *speech.Queue satisfies it.
type Sink interface {
	Deliver(text string, priority bool)
	Wait()
}

// Controller owns the session and runs turns sequentially until goodbye,
// cancellation, or the consecutive-failure budget is exhausted.
type Controller struct {
	engine *Engine
	input  Source
	out    Sink
	logger *slog.Logger

	// pause is the wait between the goodbye reply and the closing line,
	// letting playback settle. Tests set it to zero.
	pause time.Duration

	state State
}

// NewController wires a controller around the engine and the I/O adapters.
func NewController(engine *Engine, input Source, out Sink) *Controller {
	return &Controller{
		engine: engine,
		input:  input,
		out:    out,
		logger: slog.Default(),
		pause:  goodbyePause,
		state:  StateIdle,
	}
}

// State reports the current controller state.
func (c *Controller) State() State {
	return c.state
}

// Run executes turns until the conversation ends. It always leaves the
// controller in StateStopped.
func (c *Controller) Run(ctx context.Context) error {
	defer func() { c.state = StateStopped }()

	for {
		select {
		case <-ctx.Done():
			c.farewell()
			return ctx.Err()
		default:
		}

		stop, err := c.turn(ctx)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
}

// turn runs one full cycle. It returns stop=true when the conversation is
// over; the returned error is non-nil only for cancellation.
func (c *Controller) turn(ctx context.Context) (bool, error) {
	c.state = StateListening
	utterance, err := c.input.Acquire(ctx)

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		c.farewell()
		return true, err
	}

	sess := c.engine.Session()

	if err != nil || strings.TrimSpace(utterance) == "" {
		if err != nil {
			c.logger.Warn("utterance acquisition failed", "error", err)
		}
		if sess.RecordFailure() >= maxConsecutiveFailures {
			c.out.Deliver(persistLine, true)
			c.out.Wait()
			return true, nil
		}
		c.out.Deliver(retryLine, true)
		return false, nil
	}
	sess.ResetFailures()

	c.state = StateProcessing
	reply, rerr := c.engine.Respond(utterance)
	if rerr != nil {
		c.out.Deliver(faultLine, true)
		if sess.RecordFailure() >= maxConsecutiveFailures {
			c.out.Wait()
			return true, nil
		}
		return false, nil
	}

	c.state = StateSpeaking
	c.out.Deliver(reply.Text, false)

	if reply.Intent == intent.Goodbye {
		c.out.Wait()
		if c.pause > 0 {
			time.Sleep(c.pause)
		}
		c.out.Deliver(shutdownLine, true)
		c.out.Wait()
		return true, nil
	}

	// Early in the conversation, nudge once after service or pricing
	// answers. This is conversational follow-through, not a new intent.
	if (reply.Intent == intent.Services || reply.Intent == intent.Pricing) && sess.Len() < followUpHistoryLimit {
		c.out.Deliver(followUpLine, false)
	}

	c.state = StateIdle
	return false, nil
}

// farewell makes a best-effort closing announcement on interrupt.
func (c *Controller) farewell() {
	c.out.Deliver(interruptLine, true)
	c.out.Wait()
}
