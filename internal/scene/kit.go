package scene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hailam/chessplay3d/internal/geom"
)

// ErrUnknownMesh is returned when a mesh path does not resolve to a kit mesh.
var ErrUnknownMesh = errors.New("unknown mesh")

// KitPath is the asset the piece meshes are addressed by.
const KitPath = "models/chess_kit/pieces.glb"

// PlanePath addresses the unit board tile.
const PlanePath = "primitive:plane"

// MeshHandle references a loaded mesh.
type MeshHandle int

// NoMesh marks entities that only group children.
const NoMesh MeshHandle = -1

// Kit mesh indices, in the order the chess kit stores them.
const (
	MeshKing = iota
	MeshKingCross
	MeshPawn
	MeshKnightBase
	MeshKnightBlade
	MeshRook
	MeshBishop
	MeshQueen
	kitMeshCount
)

// AssetPath returns the asset path of kit mesh i.
func AssetPath(i int) string {
	return fmt.Sprintf("%s#Mesh%d/Primitive0", KitPath, i)
}

// MeshLoader resolves asset paths to mesh handles.
type MeshLoader interface {
	LoadMesh(path string) (MeshHandle, error)
}

// MeshShape distinguishes flat tiles from outlined piece parts.
type MeshShape int

const (
	ShapeOutline MeshShape = iota
	ShapePlane
)

// Mesh is a piece part drawn from a vector outline.
type Mesh struct {
	Name  string
	Shape MeshShape
	// SVG is a 100x100 outline; the base centre sits at (50, 95).
	SVG string
	// Pivot is the base centre in mesh units. Kit meshes are authored away
	// from their origin and the sub-mesh offsets bring them back onto the square.
	Pivot geom.Vec3
	// Height is the outline box height in mesh units.
	Height float64
}

// VectorKit serves the chess kit meshes as vector outlines.
type VectorKit struct {
	meshes []Mesh
	loaded map[MeshHandle]bool
}

// NewVectorKit creates the kit. Handles 0-7 follow the kit mesh indices; the plane comes last.
func NewVectorKit() *VectorKit {
	meshes := make([]Mesh, 0, kitMeshCount+1)
	meshes = append(meshes, kitMeshes[:]...)
	meshes = append(meshes, Mesh{Name: "plane", Shape: ShapePlane, Height: 0})
	return &VectorKit{meshes: meshes, loaded: make(map[MeshHandle]bool)}
}

// LoadMesh resolves "models/chess_kit/pieces.glb#MeshN/Primitive0" or the plane path.
func (k *VectorKit) LoadMesh(path string) (MeshHandle, error) {
	if path == PlanePath {
		h := MeshHandle(kitMeshCount)
		k.loaded[h] = true
		return h, nil
	}

	rest, ok := strings.CutPrefix(path, KitPath+"#Mesh")
	if !ok {
		return NoMesh, fmt.Errorf("load %q: %w", path, ErrUnknownMesh)
	}
	num, ok := strings.CutSuffix(rest, "/Primitive0")
	if !ok {
		return NoMesh, fmt.Errorf("load %q: %w", path, ErrUnknownMesh)
	}
	i, err := strconv.Atoi(num)
	if err != nil || i < 0 || i >= kitMeshCount {
		return NoMesh, fmt.Errorf("load %q: %w", path, ErrUnknownMesh)
	}

	h := MeshHandle(i)
	k.loaded[h] = true
	return h, nil
}

// Mesh returns the mesh behind a handle.
func (k *VectorKit) Mesh(h MeshHandle) (Mesh, bool) {
	if h < 0 || int(h) >= len(k.meshes) {
		return Mesh{}, false
	}
	return k.meshes[h], true
}

// Loaded returns the number of distinct meshes requested so far.
func (k *VectorKit) Loaded() int {
	return len(k.loaded)
}

var kitMeshes = [kitMeshCount]Mesh{
	MeshKing: {
		Name:   "king",
		Pivot:  geom.V3(1, 0, 9.5),
		Height: 4.5,
		SVG: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
<path d="M24 95 H76 L72 86 H62 L60 80 L66 44 L72 38 L62 30 H38 L28 38 L34 44 L40 80 L38 86 H28 Z" fill="#fff" stroke="#222" stroke-width="2"/>
<path d="M34 44 H66" stroke="#222" stroke-width="2"/>
</svg>`,
	},
	MeshKingCross: {
		Name:   "king-cross",
		Pivot:  geom.V3(1, 0, 9.5),
		Height: 4.5,
		SVG: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
<path d="M46 6 H54 V14 H62 V21 H54 V30 H46 V21 H38 V14 H46 Z" fill="#fff" stroke="#222" stroke-width="2"/>
</svg>`,
	},
	MeshPawn: {
		Name:   "pawn",
		Pivot:  geom.V3(1, 0, -13),
		Height: 2.5,
		SVG: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
<path d="M24 95 H76 L70 84 H60 L56 58 H62 V52 H38 V58 H44 L40 84 H30 Z" fill="#fff" stroke="#222" stroke-width="2"/>
<circle cx="50" cy="38" r="14" fill="#fff" stroke="#222" stroke-width="2"/>
</svg>`,
	},
	MeshKnightBase: {
		Name:   "knight-base",
		Pivot:  geom.V3(1, 0, -4.5),
		Height: 3.5,
		SVG: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
<path d="M22 95 H78 L74 84 H26 Z" fill="#fff" stroke="#222" stroke-width="2"/>
<path d="M30 84 H70 L66 76 H34 Z" fill="#fff" stroke="#222" stroke-width="2"/>
</svg>`,
	},
	MeshKnightBlade: {
		Name:   "knight-blade",
		Pivot:  geom.V3(1, 0, -4.5),
		Height: 3.5,
		SVG: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
<path d="M34 76 C34 58 46 52 44 44 L24 52 L18 44 L40 16 L46 8 L52 16 C70 20 76 44 68 76 Z" fill="#fff" stroke="#222" stroke-width="2"/>
<circle cx="42" cy="26" r="3" fill="#222"/>
</svg>`,
	},
	MeshRook: {
		Name:   "rook",
		Pivot:  geom.V3(0.5, 0, -9),
		Height: 3.0,
		SVG: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
<path d="M24 95 H76 L72 84 H64 L62 40 H68 V20 H58 V28 H54 V20 H46 V28 H42 V20 H32 V40 H38 L36 84 H28 Z" fill="#fff" stroke="#222" stroke-width="2"/>
</svg>`,
	},
	MeshBishop: {
		Name:   "bishop",
		Pivot:  geom.V3(0.5, 0, 0),
		Height: 3.75,
		SVG: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
<path d="M26 95 H74 L70 85 H60 L58 62 H64 V56 H36 V62 H42 L40 85 H30 Z" fill="#fff" stroke="#222" stroke-width="2"/>
<path d="M50 16 C66 28 66 46 60 56 H40 C34 46 34 28 50 16 Z" fill="#fff" stroke="#222" stroke-width="2"/>
<path d="M54 28 L46 40" stroke="#222" stroke-width="2"/>
<circle cx="50" cy="11" r="5" fill="#fff" stroke="#222" stroke-width="2"/>
</svg>`,
	},
	MeshQueen: {
		Name:   "queen",
		Pivot:  geom.V3(1, 0, 4.75),
		Height: 4.25,
		SVG: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
<path d="M24 95 H76 L72 85 H62 L60 78 L70 30 L58 46 L50 22 L42 46 L30 30 L40 78 L38 85 H28 Z" fill="#fff" stroke="#222" stroke-width="2"/>
<circle cx="30" cy="27" r="4" fill="#fff" stroke="#222" stroke-width="2"/>
<circle cx="50" cy="18" r="4" fill="#fff" stroke="#222" stroke-width="2"/>
<circle cx="70" cy="27" r="4" fill="#fff" stroke="#222" stroke-width="2"/>
</svg>`,
	},
}
