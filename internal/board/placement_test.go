package board

import "testing"

func TestStartingPlacementCounts(t *testing.T) {
	placements := StartingPlacement()
	if len(placements) != 32 {
		t.Fatalf("Expected 32 pieces, got %d", len(placements))
	}

	byColor := map[Color]int{}
	occupied := map[Square]bool{}
	for _, p := range placements {
		byColor[p.Color]++
		if occupied[p.Square()] {
			t.Errorf("square %v occupied twice", p.Square())
		}
		occupied[p.Square()] = true

		switch p.Color {
		case White:
			if p.Rank != 0 && p.Rank != 1 {
				t.Errorf("White piece on rank %d", p.Rank)
			}
		case Black:
			if p.Rank != 6 && p.Rank != 7 {
				t.Errorf("Black piece on rank %d", p.Rank)
			}
		}
	}
	if byColor[White] != 16 || byColor[Black] != 16 {
		t.Errorf("Expected 16 pieces per side, got white=%d black=%d", byColor[White], byColor[Black])
	}
}

func TestStartingPlacementOrder(t *testing.T) {
	want := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	at := map[Square]Placement{}
	for _, p := range StartingPlacement() {
		at[p.Square()] = p
	}

	for file := 0; file < Size; file++ {
		for _, rank := range []int{0, 7} {
			p, ok := at[NewSquare(file, rank)]
			if !ok {
				t.Fatalf("no piece on %v", NewSquare(file, rank))
			}
			if p.Type != want[file] {
				t.Errorf("%v: got %v, want %v", NewSquare(file, rank), p.Type, want[file])
			}
		}
		for _, rank := range []int{1, 6} {
			p, ok := at[NewSquare(file, rank)]
			if !ok || p.Type != Pawn {
				t.Errorf("%v: expected a pawn", NewSquare(file, rank))
			}
		}
	}
}

func TestWhiteRookOnA1Once(t *testing.T) {
	count := 0
	for _, p := range StartingPlacement() {
		if p.Type == Rook && p.Color == White && p.File == 0 && p.Rank == 0 {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected exactly one white rook on a1, got %d", count)
	}
}
