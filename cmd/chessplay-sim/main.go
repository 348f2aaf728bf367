// Command chessplay-sim moves one piece headlessly and reports how the animation settles.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/urfave/cli/v3"

	"github.com/hailam/chessplay3d/internal/anim"
	"github.com/hailam/chessplay3d/internal/board"
	"github.com/hailam/chessplay3d/internal/config"
	"github.com/hailam/chessplay3d/internal/geom"
	"github.com/hailam/chessplay3d/internal/logx"
	"github.com/hailam/chessplay3d/internal/session"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "chessplay-sim: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "chessplay-sim",
		Usage: "retarget a piece and step the animator until it settles",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Value: "a1", Usage: "square of the piece to move"},
			&cli.StringFlag{Name: "to", Value: "a4", Usage: "target square"},
			&cli.FloatFlag{Name: "dt", Value: 0.016, Usage: "tick length in seconds"},
			&cli.FloatFlag{Name: "speed", Value: anim.DefaultSpeed, Usage: "travel speed in squares per second"},
			&cli.FloatFlag{Name: "threshold", Value: anim.DefaultSnapThreshold, Usage: "arrival distance"},
			&cli.BoolFlag{Name: "clamp", Value: true, Usage: "never step past the target"},
			&cli.IntFlag{Name: "max-ticks", Value: 100000, Usage: "give up after this many ticks"},
			&cli.StringFlag{Name: "level", Aliases: []string{"l"}, Value: "info", Usage: "logger level"},
			&cli.BoolFlag{Name: "console", Aliases: []string{"c"}, Value: true, Usage: "console logger encoding"},
			&cli.StringFlag{Name: "cpuprofile", Sources: cli.EnvVars("CPUPROFILE"), Usage: "write cpu profile to file"},
		},
		Action: run,
	}
}

func run(ctx context.Context, c *cli.Command) error {
	log, closeLog, err := logx.Init(logx.Options{
		Level:   c.String("level"),
		Console: c.Bool("console"),
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closeLog()

	if path := c.String("cpuprofile"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create cpu profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("start cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
		log.Infof("CPU profiling enabled, writing to %s", path)
	}

	from, err := board.ParseSquare(c.String("from"))
	if err != nil {
		return err
	}
	to, err := board.ParseSquare(c.String("to"))
	if err != nil {
		return err
	}

	s, err := session.New(config.AnimationConfig{
		Speed:          c.Float("speed"),
		SnapThreshold:  c.Float("threshold"),
		ClampOvershoot: c.Bool("clamp"),
	}, log)
	if err != nil {
		return err
	}

	res, err := simulate(s, from, to, c.Float("dt"), int(c.Int("max-ticks")), func(tick int, pos string) {
		log.Debugw("[SIM] tick", "tick", tick, "rendered", pos)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(c.Root().Writer, "%v settled on %v in %d ticks (%.3fs), final position %v\n",
		res.Piece, to, res.Ticks, res.Elapsed, geom.Format(res.Final))
	return nil
}
