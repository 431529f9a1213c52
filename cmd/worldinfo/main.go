package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/daver64/rworld/internal/cli"
	"github.com/daver64/rworld/internal/report"
	"github.com/daver64/rworld/pkg/world"
)

func main() {
	cfg := world.DefaultConfig()
	cli.BindConfigFlags(&cfg)
	configPath := flag.String("config", "", "YAML world configuration file")
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

	report.Full(os.Stdout, world.New(cfg))
}
