// Package ui draws the board with Ebitengine and feeds pointer input to the session.
package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/hailam/chessplay3d/internal/board"
	"github.com/hailam/chessplay3d/internal/config"
	"github.com/hailam/chessplay3d/internal/selection"
	"github.com/hailam/chessplay3d/internal/session"
	"github.com/hailam/chessplay3d/internal/storage"
	"github.com/hailam/chessplay3d/internal/view"
)

// Camera control rates.
const (
	orbitSpeed = 90.0 // degrees per second
	pitchSpeed = 45.0 // degrees per second
	zoomStep   = 0.8  // world units per wheel notch
)

// Options configures a Game.
type Options struct {
	Config *config.Config
	// Storage may be nil when persistence is disabled.
	Storage *storage.Storage
	Log     *zap.SugaredLogger
}

// Game implements ebiten.Game interface.
type Game struct {
	cfg *config.Config
	log *zap.SugaredLogger

	session *session.Session
	camera  *view.Camera

	// Components
	renderer *Renderer
	input    *InputHandler
	pointer  *pointerTracker
	feedback *FeedbackManager
	hud      *HUD
	frames   *FrameStats

	// Storage
	storage *storage.Storage
	prefs   *storage.Preferences
	record  *storage.Session

	showDiagnostics bool
	lastFrame       time.Time
	lastDiagLog     time.Time
	closed          bool

	// HiDPI scaling
	scale float64
}

// NewGame creates the session and restores preferences.
func NewGame(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	sess, err := session.New(cfg.Animation, log)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	g := &Game{
		cfg:             cfg,
		log:             log,
		session:         sess,
		camera:          view.NewCamera(cfg.Camera.Yaw, cfg.Camera.Pitch, cfg.Camera.Distance, cfg.Camera.FOV),
		renderer:        NewRenderer(sess.Kit()),
		input:           NewInputHandler(),
		pointer:         newPointerTracker(),
		frames:          NewFrameStats(120),
		storage:         opts.Storage,
		record:          storage.NewSession(time.Now()),
		showDiagnostics: cfg.Diagnostics.Overlay,
		scale:           1,
	}
	g.camera.SetViewport(cfg.Window.Width, cfg.Window.Height)
	g.hud = NewHUD(g.renderer.Theme())

	soundOn := g.loadPreferences()
	g.feedback = NewFeedbackManager(NewAudioManager(soundOn, cfg.Audio.Volume))

	log.Infow("session started", "id", g.record.ID, "pieces", sess.Pieces().Len(), "entities", sess.Scene().Len())
	return g, nil
}

// loadPreferences restores the camera and toggles from storage.
// The first launch keeps the configured values. It returns whether sound is on.
func (g *Game) loadPreferences() bool {
	soundOn := g.cfg.Audio.Enabled
	g.prefs = storage.DefaultPreferences()
	if g.storage == nil {
		return soundOn
	}

	isFirst, err := g.storage.IsFirstLaunch()
	if err != nil {
		g.log.Warnf("Warning: Failed to check first launch: %v", err)
		return soundOn
	}
	if isFirst {
		if err := g.storage.MarkFirstLaunchComplete(); err != nil {
			g.log.Warnf("Warning: Failed to mark first launch complete: %v", err)
		}
		return soundOn
	}

	prefs, err := g.storage.LoadPreferences()
	if err != nil {
		g.log.Warnf("Warning: Failed to load preferences: %v", err)
		return soundOn
	}
	g.prefs = prefs

	g.camera.Yaw = prefs.CameraYaw
	g.camera.Orbit(0, prefs.CameraPitch-g.camera.Pitch)
	g.camera.Zoom(prefs.CameraDistance - g.camera.Distance)
	g.showDiagnostics = g.showDiagnostics || prefs.ShowDiagnostics

	g.log.Debugw("preferences restored", "yaw", g.camera.Yaw, "pitch", g.camera.Pitch,
		"distance", g.camera.Distance, "last_played", prefs.LastPlayed)
	return soundOn && prefs.SoundEnabled
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}

	g.prefs.CameraYaw = g.camera.Yaw
	g.prefs.CameraPitch = g.camera.Pitch
	g.prefs.CameraDistance = g.camera.Distance
	g.prefs.ShowDiagnostics = g.showDiagnostics
	g.prefs.SoundEnabled = g.feedback.Audio().IsEnabled()
	g.prefs.LastPlayed = time.Now()

	if err := g.storage.SavePreferences(g.prefs); err != nil {
		g.log.Warnf("Warning: Failed to save preferences: %v", err)
	}
}

// Update runs one frame: input, picking, animation and diagnostics.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.Close()
		return ebiten.Termination
	}

	now := time.Now()
	var dt float64
	if !g.lastFrame.IsZero() {
		dt = now.Sub(g.lastFrame).Seconds()
	}
	g.lastFrame = now
	g.frames.Add(dt)

	g.input.Update()
	g.handleKeys(dt)
	g.handleBoardInput()

	for _, p := range g.session.Advance(dt) {
		g.record.Arrivals++
		g.feedback.OnArrive(p)
	}

	g.feedback.Update()
	g.logDiagnostics(now)
	return nil
}

// handleKeys applies camera and toggle keys.
func (g *Game) handleKeys(dt float64) {
	var dYaw, dPitch float64
	if IsKeyPressed(ebiten.KeyArrowLeft) {
		dYaw -= orbitSpeed * dt
	}
	if IsKeyPressed(ebiten.KeyArrowRight) {
		dYaw += orbitSpeed * dt
	}
	if IsKeyPressed(ebiten.KeyArrowUp) {
		dPitch += pitchSpeed * dt
	}
	if IsKeyPressed(ebiten.KeyArrowDown) {
		dPitch -= pitchSpeed * dt
	}
	if dYaw != 0 || dPitch != 0 {
		g.camera.Orbit(dYaw, dPitch)
	}
	if w := g.input.WheelY(); w != 0 {
		g.camera.Zoom(-w * zoomStep)
	}

	if IsKeyJustPressed(ebiten.KeyF3) {
		g.showDiagnostics = !g.showDiagnostics
		g.feedback.OnToggle("Diagnostics", g.showDiagnostics)
	}
	if IsKeyJustPressed(ebiten.KeyM) {
		audio := g.feedback.Audio()
		audio.SetEnabled(!audio.IsEnabled())
		g.feedback.OnToggle("Sound", audio.IsEnabled())
	}
}

// handleBoardInput picks the square under the cursor and emits selection events on click.
func (g *Game) handleBoardInput() {
	mx, my := g.input.MousePosition()
	under, ok := g.camera.Pick(float64(mx), float64(my))
	if !ok {
		under = board.NoSquare
	}

	clicked, ok := g.pointer.update(under, g.input.IsLeftJustPressed(), g.input.IsLeftPressed(), g.input.IsLeftJustReleased())
	if !ok {
		return
	}
	g.session.HandleSquareSelected(selection.Event{Square: clicked})
	g.record.Selections++
	g.feedback.OnSelect(clicked)
}

// logDiagnostics writes frame statistics at the configured interval.
func (g *Game) logDiagnostics(now time.Time) {
	interval := g.cfg.Diagnostics.LogInterval
	if interval <= 0 {
		return
	}
	if g.lastDiagLog.IsZero() {
		g.lastDiagLog = now
		return
	}
	if now.Sub(g.lastDiagLog) < interval {
		return
	}
	g.lastDiagLog = now

	g.log.Infow("[DIAG] frame time",
		"fps", g.frames.FPS(),
		"tps", ebiten.ActualTPS(),
		"frame_time_ms", g.frames.Mean()*1000,
		"frames", g.frames.Frames(),
		"moving", g.session.Moving(),
	)
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)

	selected, _ := g.session.Selected()
	g.renderer.DrawBoard(screen, g.session, g.camera, g.pointer.state(selected))
	g.renderer.DrawPieces(screen, g.session, g.camera)

	g.feedback.Draw(screen)

	if g.showDiagnostics {
		g.hud.Draw(screen, "Diagnostics (F3)", g.diagnosticLines())
	}
}

// diagnosticLines returns the overlay text.
func (g *Game) diagnosticLines() []string {
	sel := "none"
	if sq, ok := g.session.Selected(); ok {
		sel = sq.String()
	}
	hover := "none"
	if g.pointer.hovered != board.NoSquare {
		hover = g.pointer.hovered.String()
	}
	return []string{
		fmt.Sprintf("FPS %.1f  TPS %.1f  %.2f ms", g.frames.FPS(), ebiten.ActualTPS(), g.frames.Mean()*1000),
		fmt.Sprintf("Entities %d  Moving %d", g.session.Scene().Len(), g.session.Moving()),
		fmt.Sprintf("Hover %s  Selected %s", hover, sel),
		fmt.Sprintf("Camera yaw %.0f pitch %.0f dist %.1f", g.camera.Yaw, g.camera.Pitch, g.camera.Distance),
	}
}

// Layout returns the game's screen dimensions.
// Uses device scale factor for crisp rendering on HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	w := int(float64(outsideWidth) * g.scale)
	h := int(float64(outsideHeight) * g.scale)
	g.camera.SetViewport(w, h)
	return w, h
}

// Session returns the running session.
func (g *Game) Session() *session.Session {
	return g.session
}

// Close saves preferences and records the session. It is safe to call twice.
// The storage itself is closed by its owner.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true

	g.record.Ended = time.Now()
	g.log.Infow("session ended", "id", g.record.ID, "duration", g.record.Duration(),
		"selections", g.record.Selections, "arrivals", g.record.Arrivals)

	if g.storage == nil {
		return
	}
	g.savePreferences()
	if err := g.storage.RecordSession(g.record); err != nil {
		g.log.Warnf("Warning: Failed to record session: %v", err)
	}
}
