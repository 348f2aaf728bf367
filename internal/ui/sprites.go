package ui

import (
	"fmt"
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/chessplay3d/internal/logx"
	"github.com/hailam/chessplay3d/internal/scene"
)

// spriteResolution is the pixel size outlines are rasterized at before scaling.
const spriteResolution = 256

// SpriteManager holds one rasterized image per kit mesh.
type SpriteManager struct {
	sprites map[scene.MeshHandle]*ebiten.Image
	size    int
}

// NewSpriteManager rasterizes every outline mesh of the kit.
func NewSpriteManager(kit *scene.VectorKit) *SpriteManager {
	sm := &SpriteManager{
		sprites: make(map[scene.MeshHandle]*ebiten.Image),
		size:    spriteResolution,
	}
	for h := scene.MeshHandle(0); ; h++ {
		m, ok := kit.Mesh(h)
		if !ok {
			break
		}
		if m.Shape != scene.ShapeOutline {
			continue
		}
		rgba, err := rasterizeOutline(m.SVG, sm.size)
		if err != nil {
			logx.L().Warnf("Failed to rasterize mesh %s: %v", m.Name, err)
			continue
		}
		sm.sprites[h] = ebiten.NewImageFromImage(rgba)
	}
	return sm
}

// rasterizeOutline renders an SVG outline into a size x size image.
func rasterizeOutline(svg string, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// Get returns the sprite for a mesh handle.
func (sm *SpriteManager) Get(h scene.MeshHandle) *ebiten.Image {
	return sm.sprites[h]
}

// Size returns the rasterized sprite size in pixels.
func (sm *SpriteManager) Size() int {
	return sm.size
}
