// Package screen wraps the GNU screen terminal multiplexer.
//
// Each managed server runs inside a detached screen session so it
// survives the CLI process and SSH disconnects. This package is pure
// transport: it enumerates live sessions, spawns new ones, injects
// bytes into their input stream, and attaches the controlling terminal.
// All interpretation of session state belongs to the server entity.
package screen

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Session describes one live screen session.
type Session struct {
	// Name is the session name given at spawn time (e.g. "mc-alpha").
	Name string

	// PID is the process id of the screen wrapper process. The managed
	// workload is a child of this process.
	PID int32
}

// String returns the pid.name form screen uses to address a session.
func (s Session) String() string {
	return fmt.Sprintf("%d.%s", s.PID, s.Name)
}

// API abstracts the multiplexer operations the server entity needs, so
// tests can substitute a fake without a screen binary on the host.
type API interface {
	// ListSessions returns all currently running sessions.
	ListSessions() ([]Session, error)

	// Spawn starts a detached session named name running argv with the
	// given working directory. It does not wait for the workload.
	Spawn(name, dir string, argv []string) error

	// Send delivers raw bytes into the session's input stream.
	Send(name, text string) error

	// Attach connects the controlling terminal to the session and
	// blocks until the user detaches.
	Attach(target string) error
}

// Client is the real GNU screen implementation of API.
type Client struct{}

// NewClient returns a Client talking to the local screen binary.
func NewClient() *Client {
	return &Client{}
}

// ListSessions runs `screen -ls` and parses the socket list.
//
// screen exits non-zero when no sessions exist, so exit errors are only
// fatal when the output doesn't parse as a (possibly empty) listing.
func (c *Client) ListSessions() ([]Session, error) {
	out, err := exec.Command("screen", "-ls").CombinedOutput()
	sessions := parseSessionList(string(out))
	if err != nil && len(sessions) == 0 && !strings.Contains(string(out), "No Sockets") {
		if _, isExit := err.(*exec.ExitError); !isExit {
			return nil, fmt.Errorf("failed to run screen -ls: %w", err)
		}
	}
	return sessions, nil
}

// parseSessionList extracts sessions from `screen -ls` output.
//
// Session lines are indented and lead with "<pid>.<name>", e.g.
//
//	12345.mc-alpha	(Detached)
//
// Anything that doesn't match that shape (headers, footers) is ignored.
func parseSessionList(out string) []Session {
	var sessions []Session
	for _, line := range strings.Split(out, "\n") {
		if line == "" || (line[0] != '\t' && line[0] != ' ') {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		pidStr, name, ok := strings.Cut(fields[0], ".")
		if !ok || name == "" {
			continue
		}
		pid, err := strconv.ParseInt(pidStr, 10, 32)
		if err != nil {
			continue
		}
		sessions = append(sessions, Session{Name: name, PID: int32(pid)})
	}
	return sessions
}

// Spawn starts a detached session: screen -d -S <name> -m <argv...>.
func (c *Client) Spawn(name, dir string, argv []string) error {
	args := append([]string{"-d", "-S", name, "-m"}, argv...)
	cmd := exec.Command("screen", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to spawn screen session %s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Send injects text into window 0 of the named session via `stuff`.
// screen reports its own error if the session is gone.
func (c *Client) Send(name, text string) error {
	cmd := exec.Command("screen", "-S", name, "-p", "0", "-X", "stuff", text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to send to session %s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Attach hands the terminal to the session (multi-attach, so an already
// attached session is not stolen). Blocks until detach.
func (c *Client) Attach(target string) error {
	cmd := exec.Command("screen", "-x", target)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to attach to session %s: %w", target, err)
	}
	return nil
}
