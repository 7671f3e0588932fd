package speech

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// LineReader is a Recognizer that reads typed utterances line by line. It is
// the deterministic fallback when voice recognition is unavailable or keeps
// failing.
type LineReader struct {
	r      *bufio.Reader
	w      io.Writer
	prompt string
}

// NewLineReader creates a LineReader that prompts on w and reads from r.
func NewLineReader(r io.Reader, w io.Writer, prompt string) *LineReader {
	return &LineReader{r: bufio.NewReader(r), w: w, prompt: prompt}
}

// Listen reads one line. The timeout is ignored: a terminal read blocks
// until the user answers, and cancellation is honored at the turn boundary.
// A closed input stream reports ErrUnavailable.
func (l *LineReader) Listen(ctx context.Context, _ time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if l.prompt != "" {
		fmt.Fprint(l.w, l.prompt)
	}
	line, err := l.r.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", ErrUnavailable
	}
	return line, nil
}
