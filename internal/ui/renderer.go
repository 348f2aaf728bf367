package ui

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessplay3d/internal/board"
	"github.com/hailam/chessplay3d/internal/scene"
	"github.com/hailam/chessplay3d/internal/session"
	"github.com/hailam/chessplay3d/internal/view"
)

// Outline anchor inside the 100x100 outline box.
const (
	anchorX = 0.50
	anchorY = 0.95
)

// Tile edges are smoothed; this replaces the 4x multisampling of a GPU mesh pipeline.
var tileDrawOptions = &ebiten.DrawTrianglesOptions{AntiAlias: true}

// Theme defines the colors drawn around the board.
type Theme struct {
	Background color.RGBA
	TextColor  color.RGBA
	PanelFill  color.RGBA
	PanelEdge  color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		Background: color.RGBA{40, 44, 52, 255},
		TextColor:  color.RGBA{220, 220, 220, 255},
		PanelFill:  color.RGBA{20, 22, 28, 200},
		PanelEdge:  color.RGBA{90, 96, 110, 255},
	}
}

// PointerState is the per-tile pointer information used for highlighting.
type PointerState struct {
	Hovered  board.Square
	Pressed  board.Square
	Selected board.Square
}

// highlightFor picks the overlay for a tile. Selected wins over pressed, pressed over hovered.
func highlightFor(sq board.Square, ps PointerState) scene.Highlight {
	switch sq {
	case ps.Selected:
		return scene.Selected
	case ps.Pressed:
		return scene.Pressed
	case ps.Hovered:
		return scene.Hovered
	}
	return scene.HighlightNone
}

// spriteDraw is one projected sub-mesh waiting to be drawn.
type spriteDraw struct {
	img   *ebiten.Image
	x, y  float64
	scale float64
	depth float64
	tint  scene.RGB
}

// sortFarToNear orders sprites so nearer ones are drawn last.
func sortFarToNear(ds []spriteDraw) {
	sort.SliceStable(ds, func(i, j int) bool { return ds[i].depth > ds[j].depth })
}

// Renderer draws the session's scene graph through a camera.
type Renderer struct {
	sprites *SpriteManager
	theme   *Theme
	white   *ebiten.Image
	draws   []spriteDraw
}

// NewRenderer creates a renderer for the given mesh kit.
func NewRenderer(kit *scene.VectorKit) *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Renderer{
		sprites: NewSpriteManager(kit),
		theme:   DefaultTheme(),
		white:   white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// DrawBoard draws the tiles as projected quads.
func (r *Renderer) DrawBoard(screen *ebiten.Image, s *session.Session, cam *view.Camera, ps PointerState) {
	sc := s.Scene()
	mats := s.Materials()

	for sq, id := range s.Layout().Tiles {
		e := sc.Get(id)
		if e == nil {
			continue
		}
		c := mats.Shade(e.Material, highlightFor(sq, ps)).RGBA()

		corners := view.TileCorners(sq)
		vs := make([]ebiten.Vertex, 0, len(corners))
		visible := true
		for _, p := range corners {
			x, y, _, ok := cam.Project(p)
			if !ok {
				visible = false
				break
			}
			vs = append(vs, ebiten.Vertex{
				DstX: float32(x), DstY: float32(y),
				SrcX: 1, SrcY: 1,
				ColorR: float32(c.R) / 255, ColorG: float32(c.G) / 255, ColorB: float32(c.B) / 255, ColorA: 1,
			})
		}
		if !visible {
			continue
		}
		screen.DrawTriangles(vs, []uint16{0, 1, 2, 0, 2, 3}, r.white, tileDrawOptions)
	}
}

// DrawPieces draws every piece sub-mesh as a camera-facing sprite, far to near.
func (r *Renderer) DrawPieces(screen *ebiten.Image, s *session.Session, cam *view.Camera) {
	sc := s.Scene()
	kit := s.Kit()
	mats := s.Materials()

	r.draws = r.draws[:0]
	for _, e := range sc.Entities() {
		if e.Kind != scene.KindSubMesh {
			continue
		}
		img := r.sprites.Get(e.Mesh)
		m, ok := kit.Mesh(e.Mesh)
		if img == nil || !ok {
			continue
		}

		w := sc.World(e.ID)
		x, y, depth, ok := cam.Project(w.Apply(m.Pivot))
		if !ok {
			continue
		}
		heightPx := m.Height * w.Scale * cam.PixelsPerUnit(depth)
		r.draws = append(r.draws, spriteDraw{
			img:   img,
			x:     x,
			y:     y,
			scale: heightPx / float64(r.sprites.Size()),
			depth: depth,
			tint:  mats.Shade(e.Material, scene.HighlightNone),
		})
	}

	sortFarToNear(r.draws)

	size := float64(r.sprites.Size())
	for _, d := range r.draws {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-size*anchorX, -size*anchorY)
		op.GeoM.Scale(d.scale, d.scale)
		op.GeoM.Translate(d.x, d.y)
		op.ColorScale.Scale(float32(d.tint.R), float32(d.tint.G), float32(d.tint.B), 1)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(d.img, op)
	}
}
