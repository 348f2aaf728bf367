// Package anim moves rendered piece positions toward their logical squares.
package anim

import (
	"github.com/hailam/chessplay3d/internal/geom"
	"github.com/hailam/chessplay3d/internal/pieces"
)

const (
	// DefaultSpeed is the travel speed in world units per second.
	DefaultSpeed = 1.0
	// DefaultSnapThreshold is the distance at which a piece counts as arrived.
	DefaultSnapThreshold = 0.1
)

// Phase is the animation state of a single piece.
type Phase int

const (
	Settled Phase = iota
	Moving
)

// String returns the phase name.
func (ph Phase) String() string {
	if ph == Moving {
		return "Moving"
	}
	return "Settled"
}

// Animator advances pieces at constant speed along a straight line to their target.
// The direction is recomputed every tick, so changing a target mid-flight redirects the piece.
type Animator struct {
	speed     float64
	threshold float64
	clamp     bool
}

// NewAnimator creates an animator.
// Non-positive speed or threshold fall back to the defaults.
// With clamp set a step never travels further than the remaining distance;
// without it a long frame can carry the piece past its target.
func NewAnimator(speed, threshold float64, clamp bool) *Animator {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	if threshold <= 0 {
		threshold = DefaultSnapThreshold
	}
	return &Animator{speed: speed, threshold: threshold, clamp: clamp}
}

// Speed returns the travel speed in world units per second.
func (a *Animator) Speed() float64 {
	return a.speed
}

// SnapThreshold returns the arrival distance.
func (a *Animator) SnapThreshold() float64 {
	return a.threshold
}

// PhaseOf reports whether p is still travelling.
func (a *Animator) PhaseOf(p *pieces.Piece) Phase {
	if geom.Dist(p.Target(), p.Rendered) > a.threshold {
		return Moving
	}
	return Settled
}

// Step advances one piece by dt seconds and reports whether it arrived on this step.
func (a *Animator) Step(p *pieces.Piece, dt float64) bool {
	if dt <= 0 {
		return false
	}

	d := p.Target().Sub(p.Rendered)
	dist := d.Len()
	if dist <= a.threshold {
		return false
	}

	step := a.speed * dt
	if a.clamp && step > dist {
		step = dist
	}
	p.Rendered = p.Rendered.Add(d.Normalize().Mul(step))

	return a.PhaseOf(p) == Settled
}

// Advance runs one tick over all pieces and returns the ones that arrived.
func (a *Animator) Advance(ps []*pieces.Piece, dt float64) []*pieces.Piece {
	var arrived []*pieces.Piece
	for _, p := range ps {
		if a.Step(p, dt) {
			arrived = append(arrived, p)
		}
	}
	return arrived
}

// CountMoving returns how many pieces are outside the snap threshold.
func (a *Animator) CountMoving(ps []*pieces.Piece) int {
	n := 0
	for _, p := range ps {
		if a.PhaseOf(p) == Moving {
			n++
		}
	}
	return n
}
