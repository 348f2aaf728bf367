// Package session ties the piece set, the animator, the selection slot and the
// scene graph together behind a single per-frame entry point.
//
// A Session is not safe for concurrent use. The frame loop owns it and calls
// Advance once per frame.
package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hailam/chessplay3d/internal/anim"
	"github.com/hailam/chessplay3d/internal/board"
	"github.com/hailam/chessplay3d/internal/config"
	"github.com/hailam/chessplay3d/internal/pieces"
	"github.com/hailam/chessplay3d/internal/scene"
	"github.com/hailam/chessplay3d/internal/selection"
)

// Session is one running board.
type Session struct {
	pieces    *pieces.Set
	animator  *anim.Animator
	selection *selection.State

	scene     *scene.Scene
	kit       *scene.VectorKit
	materials *scene.Materials
	layout    *scene.Layout

	log *zap.SugaredLogger

	ticks    int
	arrivals int
}

// New builds the starting position and its scene.
func New(cfg config.AnimationConfig, log *zap.SugaredLogger) (*Session, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	s := &Session{
		pieces:    pieces.NewSet(),
		animator:  anim.NewAnimator(cfg.Speed, cfg.SnapThreshold, cfg.ClampOvershoot),
		selection: selection.NewState(),
		scene:     scene.New(),
		kit:       scene.NewVectorKit(),
		materials: scene.NewMaterials(),
		log:       log,
	}

	layout, err := scene.Build(s.scene, s.kit, s.materials, s.pieces)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	s.layout = layout

	log.Debugf("[SCENE] spawned %d entities (%d tiles, %d pieces, %d meshes)",
		s.scene.Len(), len(layout.Tiles), len(layout.Pieces), s.kit.Loaded())
	return s, nil
}

// Advance runs one animation tick of dt seconds and syncs the scene graph.
// It returns the pieces that arrived on this tick.
func (s *Session) Advance(dt float64) []*pieces.Piece {
	s.ticks++
	arrived := s.animator.Advance(s.pieces.All(), dt)

	for _, p := range s.pieces.All() {
		if err := s.scene.SetTranslation(s.layout.Pieces[p.ID], p.Rendered); err != nil {
			s.log.Warnf("Warning: piece %d has no entity: %v", p.ID, err)
		}
	}

	for _, p := range arrived {
		s.arrivals++
		s.log.Debugw("[ANIM] piece arrived", "piece", p.String(), "tick", s.ticks)
	}
	return arrived
}

// HandleSquareSelected records a click on a square.
func (s *Session) HandleSquareSelected(ev selection.Event) {
	s.selection.OnSquareSelected(ev)
	s.log.Debugf("[SELECT] %v", ev.Square)
}

// MoveTarget sends the piece standing on from toward to.
// The piece keeps its rendered position and animates there over the next ticks.
func (s *Session) MoveTarget(from, to board.Square) error {
	if !to.IsValid() {
		return fmt.Errorf("move to %v: %w", to, board.ErrInvalidSquare)
	}
	p, err := s.pieces.At(from)
	if err != nil {
		return fmt.Errorf("move from %v: %w", from, err)
	}
	p.SetTarget(to.File(), to.Rank())
	s.log.Debugf("[MOVE] %v -> %v", p, to)
	return nil
}

// Selected returns the last selected square.
func (s *Session) Selected() (board.Square, bool) {
	return s.selection.Current()
}

// Moving returns how many pieces are still travelling.
func (s *Session) Moving() int {
	return s.animator.CountMoving(s.pieces.All())
}

// Pieces returns the piece set.
func (s *Session) Pieces() *pieces.Set { return s.pieces }

// Selection returns the selection slot.
func (s *Session) Selection() *selection.State { return s.selection }

// Scene returns the scene graph.
func (s *Session) Scene() *scene.Scene { return s.scene }

// Layout returns the entity mapping built at start.
func (s *Session) Layout() *scene.Layout { return s.layout }

// Kit returns the mesh kit.
func (s *Session) Kit() *scene.VectorKit { return s.kit }

// Materials returns the material registry.
func (s *Session) Materials() *scene.Materials { return s.materials }

// Ticks returns how many times Advance has run.
func (s *Session) Ticks() int { return s.ticks }

// Arrivals returns how many arrivals Advance has reported.
func (s *Session) Arrivals() int { return s.arrivals }
