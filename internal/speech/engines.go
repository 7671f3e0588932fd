package speech

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Console is an Engine that writes replies to a terminal. It is the
// always-available delivery backend.
type Console struct {
	W      io.Writer
	Prefix string
}

// NewConsole creates a console engine writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{W: w, Prefix: "concierge: "}
}

func (c *Console) Say(_ context.Context, text string) error {
	_, err := fmt.Fprintf(c.W, "%s%s\n", c.Prefix, text)
	return err
}

// Command is an Engine that shells out to a system text-to-speech binary
// (espeak, say, ...), optionally echoing to a second engine first so the
// reply stays visible while it is spoken.
type Command struct {
	name string
	args []string
	echo Engine
}

// NewCommand verifies that the speech binary exists and returns a Command
// engine. A missing binary is an initialization failure: the assistant must
// not start without functioning output.
func NewCommand(name string, args []string, echo Engine) (*Command, error) {
	if name == "" {
		return nil, fmt.Errorf("speech: no command configured")
	}
	if _, err := exec.LookPath(name); err != nil {
		return nil, fmt.Errorf("speech: command %q not available: %w", name, err)
	}
	return &Command{name: name, args: args, echo: echo}, nil
}

func (c *Command) Say(ctx context.Context, text string) error {
	if c.echo != nil {
		if err := c.echo.Say(ctx, text); err != nil {
			return err
		}
	}
	cmd := exec.CommandContext(ctx, c.name, append(append([]string{}, c.args...), text)...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("speech: %s failed: %w", c.name, err)
	}
	return nil
}
