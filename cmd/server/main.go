// seed-maze-server serves the maze game over SSH. Every connection gets its
// own independent game. Build:
//
//	go build -o seed-maze-server ./cmd/server
//
// Usage:
//
//	./seed-maze-server [--port 2222] [--key server_host_key] [--tier easy]
//
// Then connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	mrand "math/rand"
	"os"
	"strings"
	"sync"
	"time"

	"seed-maze/internal/config"
	"seed-maze/internal/game"
	"seed-maze/internal/generate"
	internalssh "seed-maze/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/rs/zerolog"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	port := flag.Int("port", cfg.Port, "SSH server port")
	keyFile := flag.String("key", cfg.HostKey, "Path to the PEM-encoded host key (generated if absent)")
	tierName := flag.String("tier", cfg.Tier.String(), "Tier preselected on the menu (easy, medium, hard)")
	flag.Parse()

	log := cfg.ConsoleLogger(os.Stderr)
	tier, err := generate.ParseTier(*tierName)
	if err != nil {
		log.Fatal().Err(err).Msg("bad --tier")
	}

	signer, err := loadOrCreateHostKey(*keyFile, log)
	if err != nil {
		log.Fatal().Err(err).Msg("host key")
	}

	h := &handler{log: log, tier: tier}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: anyone who can reach the port may play.
		HostSigners: []gossh.Signer{signer},
	}

	log.Info().Int("port", *port).Stringer("tier", tier).Msg("seed-maze SSH server listening")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// allowedTerms lists the TERM values accepted from clients. TERM names a
// terminfo entry, so arbitrary values are refused.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

// sessionTerm picks the terminal type from a session environment.
func sessionTerm(environ []string) string {
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[v] {
			return v
		}
	}
	return defaultTerm
}

// termMu serialises os.Setenv("TERM") around screen creation; terminfo
// lookup reads the process environment.
var termMu sync.Mutex

type handler struct {
	log  zerolog.Logger
	tier generate.Tier
	next int64
	mu   sync.Mutex
}

func (h *handler) sessionID() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	return h.next
}

// handleSession runs one game for the lifetime of the SSH connection.
func (h *handler) handleSession(s gossh.Session) {
	log := h.log.With().Int64("session", h.sessionID()).Str("user", s.User()).Str("remote", s.RemoteAddr().String()).Logger()

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game needs a terminal. Connect with: ssh -t -p <port> <host>")
		return
	}

	term := sessionTerm(s.Environ())
	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		log.Warn().Err(err).Str("term", term).Msg("terminal setup failed")
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		log.Warn().Err(err).Msg("screen init failed")
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	log.Info().Str("term", term).Msg("session started")
	start := time.Now()
	game.New(screen,
		game.WithTier(h.tier),
		game.WithLogger(log),
		game.WithRand(mrand.New(mrand.NewSource(start.UnixNano()))),
	).Run()
	log.Info().Dur("played", time.Since(start)).Msg("session ended")
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log zerolog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info().Str("path", path).Msg("loaded host key")
			return signer, nil
		}
		log.Warn().Str("path", path).Msg("host key unreadable, generating a new one")
	}

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	pemBlock, err := xssh.MarshalPrivateKey(key, "seed-maze server")
	if err != nil {
		return signer, nil
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not save host key")
	} else {
		log.Info().Str("path", path).Msg("generated host key")
	}
	return signer, nil
}
