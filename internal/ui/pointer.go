package ui

import "github.com/hailam/chessplay3d/internal/board"

// pointerTracker turns raw button state into hover, press and click on squares.
// A click is a press and release over the same square.
type pointerTracker struct {
	hovered board.Square
	pressed board.Square
}

func newPointerTracker() *pointerTracker {
	return &pointerTracker{hovered: board.NoSquare, pressed: board.NoSquare}
}

// update feeds one tick of input. under is the square below the cursor or NoSquare.
// It returns the clicked square, if any.
func (pt *pointerTracker) update(under board.Square, justPressed, held, justReleased bool) (board.Square, bool) {
	pt.hovered = under

	if justPressed {
		pt.pressed = under
	}

	if justReleased {
		clicked := pt.pressed
		pt.pressed = board.NoSquare
		if clicked != board.NoSquare && clicked == under {
			return clicked, true
		}
		return board.NoSquare, false
	}

	if !held {
		pt.pressed = board.NoSquare
	}
	return board.NoSquare, false
}

// state returns the highlight inputs for the renderer.
func (pt *pointerTracker) state(selected board.Square) PointerState {
	return PointerState{Hovered: pt.hovered, Pressed: pt.pressed, Selected: selected}
}
