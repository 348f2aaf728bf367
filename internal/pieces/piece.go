// Package pieces holds the piece records shared by the animator and the scene.
package pieces

import (
	"errors"
	"fmt"

	"github.com/hailam/chessplay3d/internal/board"
	"github.com/hailam/chessplay3d/internal/geom"
)

// ErrNoPiece is returned when no piece stands on a requested square.
var ErrNoPiece = errors.New("no piece on square")

// Piece is a single chess piece.
// File and Rank are the logical cell; Rendered trails behind while the piece animates.
type Piece struct {
	ID       int
	Color    board.Color
	Type     board.PieceType
	File     int
	Rank     int
	Rendered geom.Vec3
}

// Square returns the logical square of the piece.
func (p *Piece) Square() board.Square {
	return board.NewSquare(p.File, p.Rank)
}

// Target returns the world position the piece is moving toward.
func (p *Piece) Target() geom.Vec3 {
	return board.WorldPositionOf(p.File, p.Rank)
}

// SetTarget changes the logical cell of the piece. Rendered is left alone.
func (p *Piece) SetTarget(file, rank int) {
	p.File = file
	p.Rank = rank
}

// String returns a short description like "White Rook a1".
func (p *Piece) String() string {
	return fmt.Sprintf("%v %v %v", p.Color, p.Type, p.Square())
}

// Set is the indexed collection of all pieces on the board.
type Set struct {
	pieces []*Piece
}

// NewSet creates the 32 pieces of the starting position, settled on their squares.
func NewSet() *Set {
	placements := board.StartingPlacement()
	s := &Set{pieces: make([]*Piece, 0, len(placements))}
	for i, pl := range placements {
		s.pieces = append(s.pieces, &Piece{
			ID:       i,
			Color:    pl.Color,
			Type:     pl.Type,
			File:     pl.File,
			Rank:     pl.Rank,
			Rendered: pl.Square().World(),
		})
	}
	return s
}

// All returns the pieces in ID order.
func (s *Set) All() []*Piece {
	return s.pieces
}

// Len returns the number of pieces.
func (s *Set) Len() int {
	return len(s.pieces)
}

// Get returns the piece with the given ID, or nil.
func (s *Set) Get(id int) *Piece {
	if id < 0 || id >= len(s.pieces) {
		return nil
	}
	return s.pieces[id]
}

// At returns the piece whose logical cell is sq.
// Occupancy is recomputed from coordinates on every call.
func (s *Set) At(sq board.Square) (*Piece, error) {
	for _, p := range s.pieces {
		if p.Square() == sq {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrNoPiece, sq)
}
