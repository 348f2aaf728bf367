// Package scene is a small entity graph for the board: tiles, pieces and the
// sub-meshes that make up each piece model.
package scene

import (
	"errors"
	"fmt"

	"github.com/hailam/chessplay3d/internal/board"
	"github.com/hailam/chessplay3d/internal/geom"
)

// ErrUnknownEntity is returned when an entity ID does not exist.
var ErrUnknownEntity = errors.New("unknown entity")

// EntityID references an entity in a Scene.
type EntityID int

// NoEntity is the parent of root entities.
const NoEntity EntityID = -1

// EntityKind tells the renderer how to treat an entity.
type EntityKind int

const (
	KindTile EntityKind = iota
	KindPiece
	KindSubMesh
)

// Transform is a translation with a uniform scale. The board needs no rotation.
type Transform struct {
	Translation geom.Vec3
	Scale       float64
}

// Translate returns a unit-scale transform at v.
func Translate(v geom.Vec3) Transform {
	return Transform{Translation: v, Scale: 1}
}

// Scaled returns t with its scale multiplied by s.
func (t Transform) Scaled(s float64) Transform {
	t.Scale *= s
	return t
}

// Apply maps a point from t's local space to its parent space.
func (t Transform) Apply(p geom.Vec3) geom.Vec3 {
	return t.Translation.Add(p.Mul(t.Scale))
}

// Then composes a child transform under t.
func (t Transform) Then(child Transform) Transform {
	return Transform{
		Translation: t.Apply(child.Translation),
		Scale:       t.Scale * child.Scale,
	}
}

// Entity is a node of the scene graph.
type Entity struct {
	ID       EntityID
	Kind     EntityKind
	Parent   EntityID
	Children []EntityID
	Local    Transform
	Mesh     MeshHandle
	Material MaterialHandle

	// Square is set on tiles.
	Square board.Square
	// PieceID is set on piece roots and their sub-meshes.
	PieceID int
}

// Scene owns every entity. Entities are never removed.
type Scene struct {
	entities []*Entity
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// Spawn adds an entity and returns its ID.
// parent may be NoEntity; otherwise it must already exist.
func (s *Scene) Spawn(kind EntityKind, local Transform, mesh MeshHandle, material MaterialHandle, parent EntityID) (EntityID, error) {
	if parent != NoEntity && s.Get(parent) == nil {
		return NoEntity, fmt.Errorf("spawn under %d: %w", parent, ErrUnknownEntity)
	}

	id := EntityID(len(s.entities))
	s.entities = append(s.entities, &Entity{
		ID:       id,
		Kind:     kind,
		Parent:   parent,
		Local:    local,
		Mesh:     mesh,
		Material: material,
		Square:   board.NoSquare,
		PieceID:  -1,
	})
	if parent != NoEntity {
		p := s.entities[parent]
		p.Children = append(p.Children, id)
	}
	return id, nil
}

// Get returns the entity or nil.
func (s *Scene) Get(id EntityID) *Entity {
	if id < 0 || int(id) >= len(s.entities) {
		return nil
	}
	return s.entities[id]
}

// Len returns the number of entities.
func (s *Scene) Len() int {
	return len(s.entities)
}

// Entities returns all entities in spawn order.
func (s *Scene) Entities() []*Entity {
	return s.entities
}

// SetTranslation moves an entity within its parent space.
func (s *Scene) SetTranslation(id EntityID, v geom.Vec3) error {
	e := s.Get(id)
	if e == nil {
		return fmt.Errorf("set translation of %d: %w", id, ErrUnknownEntity)
	}
	e.Local.Translation = v
	return nil
}

// World returns the entity transform composed with all of its ancestors.
func (s *Scene) World(id EntityID) Transform {
	e := s.Get(id)
	if e == nil {
		return Translate(geom.Vec3{})
	}
	if e.Parent == NoEntity {
		return e.Local
	}
	return s.World(e.Parent).Then(e.Local)
}
