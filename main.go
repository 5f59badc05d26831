package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/product-showcase/internal/audio"
	"github.com/iburimskiy/product-showcase/internal/config"
	"github.com/iburimskiy/product-showcase/internal/game"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "path", *configPath, "err", err)
		os.Exit(1)
	}
	// Load validated the config, so the level is known.
	level, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	player := audio.NewPlayer(log, cfg.Audio.Volume, config.SmoothingFactor)
	if err := player.Init(); err != nil {
		log.Warn("audio disabled", "err", err)
	}

	g, err := game.New(cfg, log, player, nil)
	if err != nil {
		log.Error("start", "err", err)
		os.Exit(1)
	}
	defer g.Close()
	if err := g.PlaySoundtrack(cfg.Audio.Soundtrack); err != nil {
		log.Warn("soundtrack", "path", cfg.Audio.Soundtrack, "err", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(config.MinWindowWidth, config.MinWindowHeight, -1, -1)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
