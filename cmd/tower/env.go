package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/stack-tower/internal/config"
	"github.com/vovakirdan/stack-tower/internal/core"
	"github.com/vovakirdan/stack-tower/internal/platform/audio"
	"github.com/vovakirdan/stack-tower/internal/platform/tui"
	"github.com/vovakirdan/stack-tower/internal/registry"
	"github.com/vovakirdan/stack-tower/internal/storage"
)

// session holds what a command opened and must close.
type session struct {
	env     tui.Env
	store   *storage.Store
	sound   *audio.SoundManager
	logFile *os.File
}

// openSession loads configuration, opens the database and, when withSound
// is set, the speaker. Failures other than an unusable log file degrade to
// defaults with a warning.
func openSession(withSound bool) (*session, error) {
	s := &session{}

	logger, err := s.openLogger()
	if err != nil {
		return nil, err
	}

	towerCfg, err := config.LoadTower(flagConfig)
	if err != nil {
		logger.Warn("tower config unreadable, using defaults", "error", err)
	}
	content, err := config.LoadContent(flagContent)
	if err != nil {
		logger.Warn("content config unreadable, using defaults", "error", err)
	}

	s.env = tui.Env{
		Tower:     towerCfg,
		Content:   content,
		Logger:    logger,
		Countdown: float64(flagBreakSeconds * 60),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, progress will not be saved", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
	} else {
		s.store = store
		s.env.Store = store
	}

	if withSound && !flagMute {
		sound := audio.NewSoundManager(0.5)
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable", "error", err)
		} else {
			s.sound = sound
			s.env.Sound = sound
		}
	}
	return s, nil
}

func (s *session) openLogger() (*log.Logger, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	s.logFile = f
	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tower",
	}), nil
}

func (s *session) Close() {
	if s.sound != nil {
		s.sound.Cleanup()
	}
	if s.store != nil {
		s.store.Close()
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// mustSession opens a session or exits.
func mustSession(withSound bool) *session {
	s, err := openSession(withSound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return s
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}.Resolve(time.Now())
}

// lookupMode resolves the optional mode argument.
func lookupMode(args []string) registry.Mode {
	if len(args) == 0 {
		return tui.DefaultMode()
	}
	mode, err := registry.Lookup(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'tower modes' to see available modes.")
		os.Exit(1)
	}
	return mode
}
