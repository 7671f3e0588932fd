// Package browser opens URLs with the platform opener. Best-effort: a
// failure is reported to the caller, who degrades to a plain-text reply.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Launcher satisfies the response generator's Opener interface.
type Launcher struct{}

// Open launches url in the default browser without waiting for it.
func (Launcher) Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %s: %w", url, err)
	}
	// Reap the process in the background; the exit status is irrelevant.
	go func() { _ = cmd.Wait() }()
	return nil
}
