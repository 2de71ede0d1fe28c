package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestAllowedTerms(t *testing.T) {
	cases := []struct {
		name    string
		term    string
		allowed bool
	}{
		{"xterm-256color", "xterm-256color", true},
		{"tmux", "tmux", true},
		{"linux", "linux", true},
		{"vt100", "vt100", true},
		{"screen", "screen", true},
		{"rxvt-unicode-256color", "rxvt-unicode-256color", true},
		{"unknown term", "evil-term", false},
		{"path traversal", "../../../etc/passwd", false},
		{"empty string", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := allowedTerms[tc.term]; got != tc.allowed {
				t.Errorf("allowedTerms[%q] = %v, want %v", tc.term, got, tc.allowed)
			}
		})
	}
}

func TestSessionTerm(t *testing.T) {
	cases := []struct {
		name    string
		environ []string
		want    string
	}{
		{"allowed", []string{"LANG=C", "TERM=tmux"}, "tmux"},
		{"refused falls back", []string{"TERM=../../x"}, defaultTerm},
		{"missing", []string{"LANG=C"}, defaultTerm},
		{"empty env", nil, defaultTerm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sessionTerm(tc.environ); got != tc.want {
				t.Errorf("sessionTerm(%v) = %q, want %q", tc.environ, got, tc.want)
			}
		})
	}
}

func TestHostKeyGeneratedThenReloaded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	first, err := loadOrCreateHostKey(path, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("key not persisted: %v", err)
	}
	second, err := loadOrCreateHostKey(path, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	a := first.PublicKey().Marshal()
	b := second.PublicKey().Marshal()
	if string(a) != string(b) {
		t.Error("reloaded key differs from the generated one")
	}
}

func TestSessionIDsIncrease(t *testing.T) {
	h := &handler{}
	if a, b := h.sessionID(), h.sessionID(); a != 1 || b != 2 {
		t.Errorf("session ids = %d, %d; want 1, 2", a, b)
	}
}
