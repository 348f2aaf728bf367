package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/hailam/chessplay3d/internal/board"
	"github.com/hailam/chessplay3d/internal/config"
	"github.com/hailam/chessplay3d/internal/geom"
	"github.com/hailam/chessplay3d/internal/pieces"
	"github.com/hailam/chessplay3d/internal/session"
)

func newSession(t *testing.T, clamp bool) *session.Session {
	t.Helper()
	s, err := session.New(config.AnimationConfig{Speed: 1, SnapThreshold: 0.1, ClampOvershoot: clamp}, zaptest.NewLogger(t).Sugar())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSimulateRook(t *testing.T) {
	s := newSession(t, true)
	var calls int
	res, err := simulate(s, board.A1, board.A4, 1.0/64, 1000, func(int, string) { calls++ })
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	// (3 - 0.1) / (1/64) = 185.6 steps.
	if res.Ticks != 186 || calls != 186 {
		t.Errorf("Expected 186 ticks, got %d (%d callbacks)", res.Ticks, calls)
	}
	if res.Piece != "White Rook" {
		t.Errorf("Piece = %q", res.Piece)
	}
	if geom.Dist(res.Final, board.A4.World()) > 0.1 {
		t.Errorf("settled at %v", res.Final)
	}
}

func TestSimulateErrors(t *testing.T) {
	s := newSession(t, true)
	if _, err := simulate(s, board.E4, board.E5, 0.016, 10, nil); !errors.Is(err, pieces.ErrNoPiece) {
		t.Errorf("empty square error = %v", err)
	}
	if _, err := simulate(s, board.A1, board.A4, 0, 10, nil); err == nil {
		t.Error("expected error for zero dt")
	}
	if _, err := simulate(s, board.B1, board.B8, 0.016, 10, nil); !errors.Is(err, errNotSettled) {
		t.Errorf("tick limit error = %v, want errNotSettled", err)
	}
}

func TestSimulateLongFrameWithoutClamp(t *testing.T) {
	s := newSession(t, false)
	// A 5 s tick carries the rook 2 units past a4 and the next one 3 units back,
	// so it never lands inside the snap threshold.
	if _, err := simulate(s, board.A1, board.A4, 5, 100, nil); !errors.Is(err, errNotSettled) {
		t.Errorf("unclamped long frames error = %v, want errNotSettled", err)
	}

	s = newSession(t, true)
	res, err := simulate(s, board.A1, board.A4, 5, 100, nil)
	if err != nil {
		t.Fatalf("clamped simulate failed: %v", err)
	}
	if res.Ticks != 1 || res.Final != board.A4.World() {
		t.Errorf("clamped long frame: %d ticks, final %v", res.Ticks, res.Final)
	}
}

func TestCommandOutput(t *testing.T) {
	var out bytes.Buffer
	cmd := newCommand()
	cmd.Writer = &out
	err := cmd.Run(context.Background(), []string{"chessplay-sim", "--from", "g1", "--to", "f3", "--dt", "0.015625", "--level", "error"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "White Knight settled on f3") {
		t.Errorf("unexpected output: %q", out.String())
	}
}
