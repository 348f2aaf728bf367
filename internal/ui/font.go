package ui

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/hailam/chessplay3d/internal/logx"
)

// faceSet holds the faces of the overlay and toasts. A nil face means its
// source failed to parse and callers skip drawing that text.
type faceSet struct {
	title *text.GoTextFace
	body  *text.GoTextFace
	toast *text.GoTextFace
}

var (
	fontsOnce sync.Once
	fonts     faceSet
)

// uiFonts parses the Go fonts on first use.
func uiFonts() *faceSet {
	fontsOnce.Do(func() { fonts = loadFaces() })
	return &fonts
}

func loadFaces() faceSet {
	var fs faceSet
	if regular := faceSource("regular", goregular.TTF); regular != nil {
		fs.body = &text.GoTextFace{Source: regular, Size: hudFontSize}
		fs.toast = &text.GoTextFace{Source: regular, Size: toastFontSize}
	}
	if bold := faceSource("bold", gobold.TTF); bold != nil {
		fs.title = &text.GoTextFace{Source: bold, Size: hudTitleFontSize}
	} else {
		fs.title = fs.body
	}
	return fs
}

func faceSource(name string, ttf []byte) *text.GoTextFaceSource {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		logx.L().Warnw("font unavailable", "face", name, "error", err)
		return nil
	}
	return src
}

// MeasureText returns the width and height of the given text.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}
