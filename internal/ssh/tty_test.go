package ssh

import (
	"bytes"
	"testing"
	"time"

	gossh "github.com/gliderlabs/ssh"
)

// fakeSession stubs the parts of gossh.Session the tty uses.
type fakeSession struct {
	gossh.Session
	in     *bytes.Buffer
	out    bytes.Buffer
	closed bool
}

func (f *fakeSession) Read(b []byte) (int, error)  { return f.in.Read(b) }
func (f *fakeSession) Write(b []byte) (int, error) { return f.out.Write(b) }
func (f *fakeSession) Close() error                { f.closed = true; return nil }

func TestSessionTtyPassesBytes(t *testing.T) {
	s := &fakeSession{in: bytes.NewBufferString("jjk")}
	tty := NewSessionTty(s, gossh.Pty{}, nil)

	buf := make([]byte, 8)
	n, err := tty.Read(buf)
	if err != nil || string(buf[:n]) != "jjk" {
		t.Errorf("Read = %q, %v", buf[:n], err)
	}
	if _, err := tty.Write([]byte("frame")); err != nil || s.out.String() != "frame" {
		t.Errorf("Write sent %q, %v", s.out.String(), err)
	}
	if err := tty.Close(); err != nil || !s.closed {
		t.Error("Close should close the session")
	}
}

func TestSessionTtyResize(t *testing.T) {
	winCh := make(chan gossh.Window, 1)
	pty := gossh.Pty{Window: gossh.Window{Width: 80, Height: 24}}
	tty := NewSessionTty(&fakeSession{in: new(bytes.Buffer)}, pty, winCh)

	ws, _ := tty.WindowSize()
	if ws.Width != 80 || ws.Height != 24 {
		t.Fatalf("initial size = %dx%d, want 80x24", ws.Width, ws.Height)
	}

	resized := make(chan struct{}, 1)
	tty.NotifyResize(func() { resized <- struct{}{} })
	winCh <- gossh.Window{Width: 120, Height: 40}

	select {
	case <-resized:
	case <-time.After(2 * time.Second):
		t.Fatal("resize callback never ran")
	}
	ws, _ = tty.WindowSize()
	if ws.Width != 120 || ws.Height != 40 {
		t.Errorf("size after resize = %dx%d, want 120x40", ws.Width, ws.Height)
	}
	close(winCh)
}
