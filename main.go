package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"the-snake/audio"
	"the-snake/game"
	"the-snake/ui"
	"the-snake/ui/console"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// frontend is a draw surface plus input source that must be released.
type frontend interface {
	game.Surface
	game.InputSource
	Close()
}

type options struct {
	backend  string
	seed     uint64
	sound    bool
	logLevel string
	logFile  string
}

func main() {
	var opts options
	flag.StringVar(&opts.backend, "backend", "window", "Front-end: window (raylib) or terminal (tcell)")
	flag.Uint64Var(&opts.seed, "seed", 0, "Random seed (0 = time based)")
	flag.BoolVar(&opts.sound, "sound", false, "Play a tone on apple and reset")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&opts.logFile, "log-file", "", "Write logs to this file instead of stderr")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	log, closeLog, err := newLogger(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info().Str("backend", opts.backend).Uint64("seed", seed).Msg("Starting")

	fe, err := newFrontend(opts.backend)
	if err != nil {
		log.Err(err).Msg("Front-end")
		return err
	}
	defer fe.Close()

	g := game.NewGame(rand.New(rand.NewSource(seed)), log)

	if opts.sound {
		chime, err := audio.NewChime(log)
		if err != nil {
			// Non-fatal, game can run without sound
			log.Warn().Err(err).Msg("Audio disabled")
		} else {
			defer chime.Close()
			g.AddListener(chime)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return game.NewLoop(g, fe, fe, game.NewFrameClock(), log).Run(ctx)
}

func newFrontend(backend string) (frontend, error) {
	switch backend {
	case "window":
		return ui.NewRenderer(), nil
	case "terminal":
		c, err := console.New()
		if err != nil {
			return nil, fmt.Errorf("terminal: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

// newLogger writes to stderr for the window backend. The terminal backend
// owns stderr's screen, so without -log-file its logs are dropped.
func newLogger(opts options) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("log level: %w", err)
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	closeLog := func() {}
	switch {
	case opts.logFile != "":
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeLog = func() { f.Close() }
	case opts.backend == "terminal":
		out = io.Discard
	}

	log := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()
	return log, closeLog, nil
}
