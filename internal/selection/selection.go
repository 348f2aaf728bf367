// Package selection tracks which board square the user picked last.
package selection

import "github.com/hailam/chessplay3d/internal/board"

// Event is delivered by the picking layer when a square surface is clicked.
type Event struct {
	Square board.Square
}

// State is the single selection slot. The zero value is not ready; use NewState.
type State struct {
	selected board.Square
	has      bool
	changes  int
}

// NewState creates a state with nothing selected.
func NewState() *State {
	return &State{selected: board.NoSquare}
}

// OnSquareSelected stores ev.Square, replacing any previous selection.
// The square is not validated.
func (s *State) OnSquareSelected(ev Event) {
	s.selected = ev.Square
	s.has = true
	s.changes++
}

// Current returns the last square stored and whether any event has arrived.
// A NoSquare event still counts as a selection.
func (s *State) Current() (board.Square, bool) {
	return s.selected, s.has
}

// Changes returns how many selection events have been handled.
func (s *State) Changes() int {
	return s.changes
}
