package main

import (
	"errors"
	"fmt"

	"github.com/hailam/chessplay3d/internal/board"
	"github.com/hailam/chessplay3d/internal/geom"
	"github.com/hailam/chessplay3d/internal/session"
)

var errNotSettled = errors.New("piece did not settle")

type result struct {
	Piece   string
	Ticks   int
	Elapsed float64
	Final   geom.Vec3
}

// simulate retargets the piece on from and advances s until nothing moves.
func simulate(s *session.Session, from, to board.Square, dt float64, maxTicks int, onTick func(tick int, pos string)) (result, error) {
	if dt <= 0 {
		return result{}, fmt.Errorf("dt must be positive, got %v", dt)
	}

	p, err := s.Pieces().At(from)
	if err != nil {
		return result{}, err
	}
	name := fmt.Sprintf("%v %v", p.Color, p.Type)

	if err := s.MoveTarget(from, to); err != nil {
		return result{}, err
	}

	ticks := 0
	for s.Moving() > 0 {
		if ticks >= maxTicks {
			return result{}, fmt.Errorf("%s after %d ticks at %v: %w", name, ticks, p.Rendered, errNotSettled)
		}
		s.Advance(dt)
		ticks++
		if onTick != nil {
			onTick(ticks, geom.Format(p.Rendered))
		}
	}

	return result{Piece: name, Ticks: ticks, Elapsed: float64(ticks) * dt, Final: p.Rendered}, nil
}
