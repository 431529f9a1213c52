package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/daver64/rworld/internal/cli"
	"github.com/daver64/rworld/internal/view"
	"github.com/daver64/rworld/pkg/world"
)

func main() {
	cfg := world.DefaultConfig()
	cli.BindConfigFlags(&cfg)
	configPath := flag.String("config", "", "YAML world configuration file")
	width := flag.Int("width", 960, "window width in pixels")
	height := flag.Int("height", 480, "window height in pixels")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *configPath != "" {
		fromFile, err := world.LoadConfig(*configPath)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		cli.Merge(&cfg, fromFile, cli.ExplicitFlags())
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	log.Info("starting viewer", "seed", cfg.Seed, "width", *width, "height", *height)

	game := view.NewGame(world.New(cfg), *width, *height)
	ebiten.SetWindowTitle("rworld viewer")
	ebiten.SetWindowSize(*width, *height)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("viewer exited", "error", err)
		os.Exit(1)
	}
}
