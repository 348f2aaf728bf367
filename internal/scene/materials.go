package scene

import "image/color"

// RGB is a linear color with channels in [0,1].
type RGB struct {
	R, G, B float64
}

// Mix blends c toward o by weight w (0 keeps c, 1 yields o).
func (c RGB) Mix(o RGB, w float64) RGB {
	return RGB{
		R: c.R + (o.R-c.R)*w,
		G: c.G + (o.G-c.G)*w,
		B: c.B + (o.B-c.B)*w,
	}
}

// RGBA converts to an opaque 8-bit color.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 255}
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Base tints.
var (
	TileLight  = RGB{1.0, 0.9, 0.9}
	TileDark   = RGB{0.0, 0.1, 0.1}
	PieceWhite = RGB{1.0, 0.8, 0.8}
	PieceBlack = RGB{0.0, 0.2, 0.2}
)

// Highlight is a pointer state overlay.
type Highlight int

const (
	HighlightNone Highlight = iota
	Hovered
	Pressed
	Selected
)

// HighlightWeight is the mix weight of overlays.
const HighlightWeight = 1.0

// highlightTints are the overlay targets, all toward red.
var highlightTints = map[Highlight]RGB{
	Hovered:  {0.8, 0.3, 0.3},
	Pressed:  {0.9, 0.2, 0.2},
	Selected: {0.9, 0.1, 0.1},
}

// MaterialHandle references a material.
type MaterialHandle int

// NoMaterial marks entities without a surface.
const NoMaterial MaterialHandle = -1

// Material is a flat tinted surface.
type Material struct {
	Name string
	Base RGB
}

// Materials is the material registry.
type Materials struct {
	list []Material
}

// NewMaterials creates an empty registry.
func NewMaterials() *Materials {
	return &Materials{}
}

// Add registers a material and returns its handle.
func (m *Materials) Add(name string, base RGB) MaterialHandle {
	m.list = append(m.list, Material{Name: name, Base: base})
	return MaterialHandle(len(m.list) - 1)
}

// Get returns a material by handle.
func (m *Materials) Get(h MaterialHandle) (Material, bool) {
	if h < 0 || int(h) >= len(m.list) {
		return Material{}, false
	}
	return m.list[h], true
}

// Shade returns the color of a material under a highlight.
// Unknown handles shade as magenta so they stand out.
func (m *Materials) Shade(h MaterialHandle, hl Highlight) RGB {
	mat, ok := m.Get(h)
	if !ok {
		return RGB{1, 0, 1}
	}
	tint, ok := highlightTints[hl]
	if !ok {
		return mat.Base
	}
	return mat.Base.Mix(tint, HighlightWeight)
}
