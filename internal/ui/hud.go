package ui

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	hudMargin  = 12.0
	hudPadding = 10.0
	hudRadius  = 8
	hudLineGap = 4.0

	hudFontSize      = 13.0
	hudTitleFontSize = hudFontSize + 3
	toastFontSize    = 15.0
)

// roundedPanel draws an anti-aliased rounded rectangle with a border.
func roundedPanel(w, h, radius int, fill, stroke color.RGBA, strokeW float64) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.DrawRoundedRectangle(strokeW/2, strokeW/2, float64(w)-strokeW, float64(h)-strokeW, float64(radius))
	dc.FillPreserve()
	dc.SetRGBA255(int(stroke.R), int(stroke.G), int(stroke.B), int(stroke.A))
	dc.SetLineWidth(strokeW)
	dc.Stroke()
	return dc.Image()
}

// HUD is the diagnostics overlay in the top-left corner.
type HUD struct {
	theme *Theme
	panel *ebiten.Image
	pw    int
	ph    int
}

// NewHUD creates the overlay.
func NewHUD(theme *Theme) *HUD {
	return &HUD{theme: theme}
}

// faceFor returns the title face for the first line and the body face otherwise.
func faceFor(i int) *text.GoTextFace {
	if i == 0 {
		return uiFonts().title
	}
	return uiFonts().body
}

// Draw renders a title and lines of text on a rounded panel.
func (h *HUD) Draw(screen *ebiten.Image, title string, lines []string) {
	if uiFonts().body == nil {
		return
	}
	lines = append([]string{title}, lines...)

	var maxW, lineH float64
	for i, l := range lines {
		w, lh := MeasureText(l, faceFor(i))
		maxW = max(maxW, w)
		lineH = max(lineH, lh)
	}
	pw := int(maxW + hudPadding*2)
	ph := int(float64(len(lines))*(lineH+hudLineGap) - hudLineGap + hudPadding*2)

	// The panel is only re-rendered when its size changes.
	if h.panel == nil || h.pw != pw || h.ph != ph {
		h.panel = ebiten.NewImageFromImage(roundedPanel(pw, ph, hudRadius, h.theme.PanelFill, h.theme.PanelEdge, 1))
		h.pw, h.ph = pw, ph
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(hudMargin, hudMargin)
	screen.DrawImage(h.panel, op)

	y := hudMargin + hudPadding
	for i, l := range lines {
		top := &text.DrawOptions{}
		top.GeoM.Translate(hudMargin+hudPadding, y)
		top.ColorScale.ScaleWithColor(h.theme.TextColor)
		text.Draw(screen, l, faceFor(i), top)
		y += lineH + hudLineGap
	}
}
