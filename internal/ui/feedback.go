package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessplay3d/internal/board"
	"github.com/hailam/chessplay3d/internal/pieces"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastSuccess
)

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// alpha returns the fade factor of the toast at now.
func (t *Toast) alpha(now time.Time) float64 {
	const fade = 0.2
	elapsed := now.Sub(t.StartTime).Seconds()
	duration := t.Duration.Seconds()
	switch {
	case elapsed < 0 || elapsed >= duration:
		return 0
	case elapsed < fade:
		return elapsed / fade
	case elapsed > duration-fade:
		return (duration - elapsed) / fade
	}
	return 1
}

// ToastManager manages toast notifications.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
	now      func() time.Time
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{maxStack: 3, now: time.Now}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: tm.now(),
		Duration:  duration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := tm.now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// Len returns the number of live toasts.
func (tm *ToastManager) Len() int {
	return len(tm.toasts)
}

// Draw renders all active toasts centred at the top of the screen.
func (tm *ToastManager) Draw(screen *ebiten.Image) {
	face := uiFonts().toast
	if face == nil {
		return
	}

	now := tm.now()
	screenW := float64(screen.Bounds().Dx())
	y := 20.0
	for _, t := range tm.toasts {
		a := t.alpha(now)

		bg := color.RGBA{50, 100, 150, uint8(220 * a)}
		if t.Type == ToastSuccess {
			bg = color.RGBA{50, 150, 50, uint8(220 * a)}
		}
		fg := color.RGBA{255, 255, 255, uint8(255 * a)}

		w, h := MeasureText(t.Message, face)
		const padding = 10.0
		boxW, boxH := w+padding*2, h+padding*2
		x := screenW/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bg, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+padding, y+padding)
		op.ColorScale.ScaleWithColor(fg)
		text.Draw(screen, t.Message, face, op)

		y += boxH + 8
	}
}

// FeedbackManager turns board events into toasts and sounds.
type FeedbackManager struct {
	toasts *ToastManager
	audio  *AudioManager
}

// NewFeedbackManager creates a new feedback manager. audio may be nil.
func NewFeedbackManager(audio *AudioManager) *FeedbackManager {
	return &FeedbackManager{
		toasts: NewToastManager(),
		audio:  audio,
	}
}

// Update updates all feedback systems.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
}

// Draw renders all feedback overlays.
func (fm *FeedbackManager) Draw(screen *ebiten.Image) {
	fm.toasts.Draw(screen)
}

// OnSelect handles a square click.
func (fm *FeedbackManager) OnSelect(sq board.Square) {
	fm.toasts.Show(fmt.Sprintf("Selected %v", sq), ToastInfo, 1500*time.Millisecond)
	fm.audio.Play(SoundSelect)
}

// OnArrive handles a piece reaching its square.
func (fm *FeedbackManager) OnArrive(p *pieces.Piece) {
	fm.toasts.Show(fmt.Sprintf("%v arrived", p), ToastSuccess, 2*time.Second)
	fm.audio.Play(SoundArrive)
}

// OnToggle handles a settings key press.
func (fm *FeedbackManager) OnToggle(name string, on bool) {
	state := "off"
	if on {
		state = "on"
	}
	fm.toasts.Show(fmt.Sprintf("%s %s", name, state), ToastInfo, time.Second)
	fm.audio.Play(SoundToggle)
}

// Toasts returns the toast manager.
func (fm *FeedbackManager) Toasts() *ToastManager {
	return fm.toasts
}

// Audio returns the audio manager, which may be nil.
func (fm *FeedbackManager) Audio() *AudioManager {
	return fm.audio
}
