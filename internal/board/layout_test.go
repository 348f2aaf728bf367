package board

import (
	"testing"

	"github.com/hailam/chessplay3d/internal/geom"
)

func TestColorOfParity(t *testing.T) {
	for file := 0; file < Size; file++ {
		for rank := 0; rank < Size; rank++ {
			c := ColorOf(file, rank)
			if c != ColorOf(file+1, rank+1) {
				t.Errorf("ColorOf(%d,%d) differs from its diagonal neighbour", file, rank)
			}
			if c == ColorOf(file+1, rank) {
				t.Errorf("ColorOf(%d,%d) equals its file neighbour", file, rank)
			}
			if c == ColorOf(file, rank+1) {
				t.Errorf("ColorOf(%d,%d) equals its rank neighbour", file, rank)
			}
		}
	}
}

func TestColorOfCorners(t *testing.T) {
	tests := []struct {
		file, rank int
		want       TileColor
	}{
		{0, 0, Dark},
		{7, 0, Light},
		{0, 7, Light},
		{7, 7, Dark},
	}
	for _, tt := range tests {
		if got := ColorOf(tt.file, tt.rank); got != tt.want {
			t.Errorf("ColorOf(%d,%d) = %v, want %v", tt.file, tt.rank, got, tt.want)
		}
	}
}

func TestColorOfCountsEqual(t *testing.T) {
	light := 0
	for _, sq := range AllSquares() {
		if sq.IsLight() {
			light++
		}
	}
	if light != 32 {
		t.Errorf("Expected 32 light squares, got %d", light)
	}
}

func TestWorldPositionOf(t *testing.T) {
	for file := 0; file < Size; file++ {
		for rank := 0; rank < Size; rank++ {
			want := geom.V3(float64(file), 0, float64(rank))
			if got := WorldPositionOf(file, rank); got != want {
				t.Errorf("WorldPositionOf(%d,%d) = %v, want %v", file, rank, got, want)
			}
			if got := NewSquare(file, rank).World(); got != want {
				t.Errorf("Square.World() = %v, want %v", got, want)
			}
		}
	}
}
