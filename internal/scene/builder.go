package scene

import (
	"fmt"

	"github.com/hailam/chessplay3d/internal/board"
	"github.com/hailam/chessplay3d/internal/geom"
	"github.com/hailam/chessplay3d/internal/pieces"
)

// PieceScale is the uniform scale applied to every kit sub-mesh.
const PieceScale = 0.2

// SubMesh places one kit mesh relative to its piece.
type SubMesh struct {
	Mesh   int
	Offset geom.Vec3
}

// PieceMeshes lists the sub-meshes each piece type is composed from.
var PieceMeshes = map[board.PieceType][]SubMesh{
	board.King: {
		{MeshKing, geom.V3(-0.2, 0, -1.9)},
		{MeshKingCross, geom.V3(-0.2, 0, -1.9)},
	},
	board.Knight: {
		{MeshKnightBase, geom.V3(-0.2, 0, 0.9)},
		{MeshKnightBlade, geom.V3(-0.2, 0, 0.9)},
	},
	board.Queen:  {{MeshQueen, geom.V3(-0.2, 0, -0.95)}},
	board.Bishop: {{MeshBishop, geom.V3(-0.1, 0, 0)}},
	board.Rook:   {{MeshRook, geom.V3(-0.1, 0, 1.8)}},
	board.Pawn:   {{MeshPawn, geom.V3(-0.2, 0, 2.6)}},
}

// Layout maps board objects to the entities that draw them.
type Layout struct {
	Tiles  map[board.Square]EntityID
	Pieces map[int]EntityID
	// Materials chosen for tiles and pieces.
	LightTile, DarkTile     MaterialHandle
	WhitePiece, BlackPiece MaterialHandle
}

// Build spawns the 64 tiles and one entity tree per piece.
func Build(sc *Scene, loader MeshLoader, mats *Materials, set *pieces.Set) (*Layout, error) {
	plane, err := loader.LoadMesh(PlanePath)
	if err != nil {
		return nil, fmt.Errorf("load board tile: %w", err)
	}

	var kit [kitMeshCount]MeshHandle
	for i := range kit {
		kit[i], err = loader.LoadMesh(AssetPath(i))
		if err != nil {
			return nil, fmt.Errorf("load piece meshes: %w", err)
		}
	}

	l := &Layout{
		Tiles:      make(map[board.Square]EntityID, board.Size*board.Size),
		Pieces:     make(map[int]EntityID, set.Len()),
		LightTile:  mats.Add("tile-light", TileLight),
		DarkTile:   mats.Add("tile-dark", TileDark),
		WhitePiece: mats.Add("piece-white", PieceWhite),
		BlackPiece: mats.Add("piece-black", PieceBlack),
	}

	for _, sq := range board.AllSquares() {
		mat := l.DarkTile
		if sq.IsLight() {
			mat = l.LightTile
		}
		id, err := sc.Spawn(KindTile, Translate(sq.World()), plane, mat, NoEntity)
		if err != nil {
			return nil, err
		}
		sc.Get(id).Square = sq
		l.Tiles[sq] = id
	}

	for _, p := range set.All() {
		mat := l.WhitePiece
		if p.Color == board.Black {
			mat = l.BlackPiece
		}

		root, err := sc.Spawn(KindPiece, Translate(p.Rendered), NoMesh, NoMaterial, NoEntity)
		if err != nil {
			return nil, err
		}
		sc.Get(root).PieceID = p.ID
		l.Pieces[p.ID] = root

		for _, sm := range PieceMeshes[p.Type] {
			child, err := sc.Spawn(KindSubMesh, Translate(sm.Offset).Scaled(PieceScale), kit[sm.Mesh], mat, root)
			if err != nil {
				return nil, err
			}
			sc.Get(child).PieceID = p.ID
		}
	}

	return l, nil
}
