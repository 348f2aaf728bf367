package board

// Placement is one entry of the starting position.
type Placement struct {
	Type  PieceType
	Color Color
	File  int
	Rank  int
}

// Square returns the square the placement occupies.
func (p Placement) Square() Square {
	return NewSquare(p.File, p.Rank)
}

// BackRankOrder lists the piece types of a back rank from file a to file h.
var BackRankOrder = [Size]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// placementRows describes the four occupied rows of the starting position.
var placementRows = []struct {
	color Color
	rank  int
	pawns bool
}{
	{White, 0, false},
	{White, 1, true},
	{Black, 6, true},
	{Black, 7, false},
}

// StartingPlacement returns the 32 pieces of the standard starting position.
// White occupies ranks 0 and 1, Black ranks 6 and 7.
func StartingPlacement() []Placement {
	placements := make([]Placement, 0, 32)
	for _, row := range placementRows {
		for file := 0; file < Size; file++ {
			pt := BackRankOrder[file]
			if row.pawns {
				pt = Pawn
			}
			placements = append(placements, Placement{
				Type:  pt,
				Color: row.color,
				File:  file,
				Rank:  row.rank,
			})
		}
	}
	return placements
}
