package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"seed-maze/internal/config"
	"seed-maze/internal/game"
	"seed-maze/internal/generate"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(os.Args[1:], tcell.NewScreen); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run plays until the player quits. newScreen supplies the terminal.
func run(args []string, newScreen func() (tcell.Screen, error)) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("seed-maze", flag.ContinueOnError)
	tierName := fs.String("tier", cfg.Tier.String(), "Tier preselected on the menu (easy, medium, hard)")
	seed := fs.Int64("seed", time.Now().UnixNano(), "Seed for the level sequence")
	logFile := fs.String("log", cfg.LogFile, "Write logs to this file (the terminal is busy drawing)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tier, err := generate.ParseTier(*tierName)
	if err != nil {
		return err
	}

	log := zerolog.Nop()
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log = cfg.Logger(f)
	}

	screen, err := newScreen()
	if err != nil {
		log.Error().Err(err).Msg("no terminal")
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		log.Error().Err(err).Msg("no terminal")
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	log.Info().Int64("seed", *seed).Stringer("tier", tier).Msg("game started")
	game.New(screen,
		game.WithTier(tier),
		game.WithLogger(log),
		game.WithRand(rand.New(rand.NewSource(*seed))),
	).Run()
	log.Info().Msg("game closed")
	return nil
}
