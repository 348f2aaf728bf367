// Package view projects the board into screen space and picks squares under the cursor.
package view

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/hailam/chessplay3d/internal/board"
	"github.com/hailam/chessplay3d/internal/geom"
)

// BoardCentre is the point the camera orbits.
var BoardCentre = geom.V3(3.5, 0, 3.5)

const (
	minPitch    = 5.0
	maxPitch    = 89.0
	minDistance = 4.0
	maxDistance = 30.0
	nearPlane   = 0.05
	farPlane    = 200.0
)

var worldUp = geom.V3(0, 1, 0)

// mirrorX flips view-space X. Files run left to right seen from White while
// ranks run away from the viewer, which is a left-handed frame.
var mirrorX = mgl64.Scale3D(-1, 1, 1)

// Camera is a perspective camera orbiting the board centre.
// Angles are in degrees; yaw 0 looks from behind White's back rank.
type Camera struct {
	Yaw      float64
	Pitch    float64
	Distance float64
	FOV      float64
	Focus    geom.Vec3

	width, height int
}

// NewCamera creates a camera aimed at the board centre.
func NewCamera(yaw, pitch, distance, fov float64) *Camera {
	c := &Camera{
		Yaw:      yaw,
		Pitch:    pitch,
		Distance: distance,
		FOV:      fov,
		Focus:    BoardCentre,
		width:    1280,
		height:   720,
	}
	c.clamp()
	return c
}

// SetViewport sets the screen size in pixels.
func (c *Camera) SetViewport(w, h int) {
	if w > 0 && h > 0 {
		c.width, c.height = w, h
	}
}

// Orbit rotates the camera around the focus point.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw = math.Mod(c.Yaw+dYaw, 360)
	c.Pitch += dPitch
	c.clamp()
}

// Zoom moves the camera toward (negative) or away from the focus.
func (c *Camera) Zoom(delta float64) {
	c.Distance += delta
	c.clamp()
}

func (c *Camera) clamp() {
	c.Pitch = mgl64.Clamp(c.Pitch, minPitch, maxPitch)
	c.Distance = mgl64.Clamp(c.Distance, minDistance, maxDistance)
}

// Eye returns the camera position.
func (c *Camera) Eye() geom.Vec3 {
	yaw := mgl64.DegToRad(c.Yaw)
	pitch := mgl64.DegToRad(c.Pitch)
	offset := geom.V3(
		math.Cos(pitch)*math.Sin(yaw),
		math.Sin(pitch),
		-math.Cos(pitch)*math.Cos(yaw),
	)
	return c.Focus.Add(offset.Mul(c.Distance))
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye(), c.Focus, worldUp)
}

// Projection returns the camera-to-clip matrix.
func (c *Camera) Projection() mgl64.Mat4 {
	aspect := float64(c.width) / float64(c.height)
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, nearPlane, farPlane).Mul4(mirrorX)
}

// Project maps a world point to screen pixels with y growing downward.
// depth is the distance along the view axis; ok is false behind the near plane.
func (c *Camera) Project(p geom.Vec3) (x, y, depth float64, ok bool) {
	view := c.View()
	depth = -view.Mul4x1(p.Vec4(1)).Z()
	if depth < nearPlane {
		return 0, 0, depth, false
	}
	win := mgl64.Project(p, view, c.Projection(), 0, 0, c.width, c.height)
	return win.X(), float64(c.height) - win.Y(), depth, true
}

// PixelsPerUnit returns the on-screen size of one world unit at depth.
func (c *Camera) PixelsPerUnit(depth float64) float64 {
	if depth < nearPlane {
		depth = nearPlane
	}
	// Element (1,1) of the perspective matrix is 1/tan(fov/2).
	return c.Projection().At(1, 1) * float64(c.height) / 2 / depth
}

// Ray returns the world-space ray through a screen pixel.
func (c *Camera) Ray(x, y float64) (origin, dir geom.Vec3, ok bool) {
	view, proj := c.View(), c.Projection()
	winY := float64(c.height) - y

	near, err := mgl64.UnProject(geom.V3(x, winY, 0), view, proj, 0, 0, c.width, c.height)
	if err != nil {
		return geom.Vec3{}, geom.Vec3{}, false
	}
	far, err := mgl64.UnProject(geom.V3(x, winY, 1), view, proj, 0, 0, c.width, c.height)
	if err != nil {
		return geom.Vec3{}, geom.Vec3{}, false
	}
	return near, far.Sub(near).Normalize(), true
}

// PickPlane intersects the ray through (x, y) with the board plane.
func (c *Camera) PickPlane(x, y float64) (geom.Vec3, bool) {
	origin, dir, ok := c.Ray(x, y)
	if !ok || dir.Y() >= 0 {
		return geom.Vec3{}, false
	}
	t := -origin.Y() / dir.Y()
	return origin.Add(dir.Mul(t)), true
}

// Pick returns the square under a screen pixel.
// Tiles are unit squares centred on integer coordinates.
func (c *Camera) Pick(x, y float64) (board.Square, bool) {
	hit, ok := c.PickPlane(x, y)
	if !ok {
		return board.NoSquare, false
	}
	file := int(math.Floor(hit.X() + 0.5))
	rank := int(math.Floor(hit.Z() + 0.5))
	if file < 0 || file >= board.Size || rank < 0 || rank >= board.Size {
		return board.NoSquare, false
	}
	return board.NewSquare(file, rank), true
}

// TileCorners returns the four world corners of a square's tile in winding order.
func TileCorners(sq board.Square) [4]geom.Vec3 {
	c := sq.World()
	return [4]geom.Vec3{
		c.Add(geom.V3(-0.5, 0, -0.5)),
		c.Add(geom.V3(0.5, 0, -0.5)),
		c.Add(geom.V3(0.5, 0, 0.5)),
		c.Add(geom.V3(-0.5, 0, 0.5)),
	}
}
