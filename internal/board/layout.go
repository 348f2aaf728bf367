package board

import "github.com/hailam/chessplay3d/internal/geom"

// TileColor is the material class of a board tile.
type TileColor uint8

const (
	Dark TileColor = iota
	Light
)

// String returns the tile color name.
func (tc TileColor) String() string {
	if tc == Light {
		return "Light"
	}
	return "Dark"
}

// ColorOf returns the tile color of the cell at (file, rank).
// a1 is dark; colors alternate along files and ranks.
func ColorOf(file, rank int) TileColor {
	if (file+rank+1)%2 == 0 {
		return Light
	}
	return Dark
}

// WorldPositionOf returns the world-space centre of the cell at (file, rank).
// Tiles are unit squares on the y=0 plane.
func WorldPositionOf(file, rank int) geom.Vec3 {
	return geom.V3(float64(file), 0, float64(rank))
}
