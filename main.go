// ChessPlay3D - a 3D chessboard viewer built with Ebitengine
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v3"

	"github.com/hailam/chessplay3d/internal/config"
	"github.com/hailam/chessplay3d/internal/logx"
	"github.com/hailam/chessplay3d/internal/storage"
	"github.com/hailam/chessplay3d/internal/ui"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "chessplay3d: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "chessplay3d",
		Usage: "3D chessboard viewer",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to YAML config file",
			},
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Usage:   "logger level (debug, info, warn, error)",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "enable debug mode",
			},
			&cli.BoolFlag{
				Name:    "console",
				Aliases: []string{"c"},
				Usage:   "console logger encoding",
			},
			&cli.FloatFlag{
				Name:  "speed",
				Usage: "piece travel speed in squares per second",
			},
			&cli.BoolFlag{
				Name:  "no-storage",
				Usage: "do not load or save preferences",
			},
		},
		Action: run,
	}
}

// applyFlags overrides config values with flags that were set explicitly.
func applyFlags(cfg *config.Config, c *cli.Command) {
	if c.IsSet("level") {
		cfg.Log.Level = c.String("level")
	}
	if c.IsSet("debug") {
		cfg.Log.Debug = c.Bool("debug")
		if cfg.Log.Debug && !c.IsSet("level") {
			cfg.Log.Level = "debug"
		}
	}
	if c.IsSet("console") {
		cfg.Log.Console = c.Bool("console")
	}
	if c.IsSet("speed") {
		cfg.Animation.Speed = c.Float("speed")
	}
	if c.Bool("no-storage") {
		cfg.Storage.Disabled = true
	}
	cfg.Correct()
}

func run(ctx context.Context, c *cli.Command) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	applyFlags(cfg, c)

	log, closeLog, err := logx.Init(logx.Options{
		Level:   cfg.Log.Level,
		Debug:   cfg.Log.Debug,
		Console: cfg.Log.Console,
		File:    cfg.Log.File,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closeLog()

	var store *storage.Storage
	if !cfg.Storage.Disabled {
		store, err = storage.Open(cfg.Storage.Dir)
		if err != nil {
			log.Warnf("Warning: Failed to initialize storage: %v", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	game, err := ui.NewGame(ui.Options{Config: cfg, Storage: store, Log: log})
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
