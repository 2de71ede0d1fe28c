// Package ssh adapts gliderlabs SSH sessions to tcell terminals so a maze
// game can be played remotely.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty on top of an SSH channel. One per
// connection; nothing is shared between sessions.
type SessionTty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu       sync.Mutex
	window   gossh.Window
	onResize func()
	watching bool
}

// NewSessionTty wraps s. pty carries the initial window size and winCh the
// later resizes.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{session: s, window: pty.Window, winCh: winCh}
}

// Read returns keystrokes sent by the client.
func (t *SessionTty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write sends a drawn frame to the client.
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close ends the session channel.
func (t *SessionTty) Close() error { return t.session.Close() }

// Start does nothing; the server opened the channel before the game began.
func (t *SessionTty) Start() error { return nil }

// Stop does nothing; the session handler owns the channel's lifetime.
func (t *SessionTty) Stop() error { return nil }

// Drain does nothing; session writes are not buffered here.
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the latest size reported by the client.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window changes. The first call starts a
// goroutine that follows winCh until the client disconnects.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	start := !t.watching && t.winCh != nil
	t.watching = true
	t.mu.Unlock()

	if start {
		go t.watch()
	}
}

func (t *SessionTty) watch() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
