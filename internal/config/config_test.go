package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"seed-maze/internal/generate"

	"github.com/rs/zerolog"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envOf(nil))
	if err != nil {
		t.Fatal(err)
	}
	want := Config{Port: 2222, HostKey: "server_host_key", Tier: generate.Easy, LogLevel: zerolog.InfoLevel}
	if cfg != want {
		t.Errorf("defaults = %+v, want %+v", cfg, want)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"MAZE_PORT":     "2300",
		"MAZE_HOST_KEY": "/tmp/key",
		"MAZE_TIER":     "hard",
		"MAZE_LOG_FILE": "maze.log",
		"LOG_LEVEL":     "debug",
	}))
	if err != nil {
		t.Fatal(err)
	}
	want := Config{Port: 2300, HostKey: "/tmp/key", Tier: generate.Hard, LogFile: "maze.log", LogLevel: zerolog.DebugLevel}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestFromEnvErrors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad port", map[string]string{"MAZE_PORT": "ssh"}, "MAZE_PORT"},
		{"port out of range", map[string]string{"MAZE_PORT": "70000"}, "MAZE_PORT"},
		{"bad tier", map[string]string{"MAZE_TIER": "insane"}, "MAZE_TIER"},
		{"bad level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromEnv(envOf(tc.env))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %v, want mention of %s", err, tc.want)
			}
		})
	}
	_, err := FromEnv(envOf(map[string]string{"MAZE_TIER": "insane"}))
	if !errors.Is(err, generate.ErrUnknownTier) {
		t.Errorf("tier error should wrap ErrUnknownTier: %v", err)
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := Config{LogLevel: zerolog.WarnLevel}.Logger(&buf)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("log output = %q", buf.String())
	}
}
