package main

import (
	"context"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/planebeat/core/engine"
	"github.com/ingyamilmolinar/planebeat/core/sweep"
	"github.com/ingyamilmolinar/planebeat/internal/audio"
	"github.com/ingyamilmolinar/planebeat/internal/config"
	game_log "github.com/ingyamilmolinar/planebeat/internal/log"
	"github.com/ingyamilmolinar/planebeat/internal/midi"
	"github.com/ingyamilmolinar/planebeat/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	level := cfg.LogLevel
	if env := os.Getenv("PLANEBEAT_LOG"); env != "" {
		level = env
	}
	logger := game_log.New(os.Stdout, game_log.LevelFromString(level))

	head, err := sweep.NewPlayhead(cfg.Sweep.Min, cfg.Sweep.Max, cfg.Sweep.Velocity)
	if err != nil {
		log.Fatal(err)
	}
	det := sweep.NewDetector(cfg.Sweep.Tolerance)

	// A backend that cannot open its device is fatal: the tick loop never
	// starts against a dead output.
	var disp engine.Dispatcher
	switch cfg.Backend {
	case config.BackendMIDI:
		disp, err = midi.NewDispatcher(cfg.MIDIPort, logger)
		if err != nil {
			log.Fatal(err)
		}
	default:
		player, perr := audio.NewPlayer()
		if perr != nil {
			log.Fatal(perr)
		}
		bank := audio.NewBank()
		bank.LoadDir(cfg.SampleDir, logger)
		disp = audio.NewDispatcher(bank, player, logger)
	}

	eng := engine.New(head, det, disp, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errs := make(chan error, 1)
	go func() { errs <- eng.Run(ctx) }()

	view := ui.NewView(cfg.Sweep.Min, cfg.Sweep.Max, cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("Planebeat")

	if err := ebiten.RunGame(ui.New(eng, view, logger)); err != nil {
		log.Fatal(err)
	}
	cancel()
	if err := <-errs; err != nil {
		log.Fatal(err)
	}
}
