package view

import (
	"math"
	"testing"

	"github.com/hailam/chessplay3d/internal/board"
	"github.com/hailam/chessplay3d/internal/geom"
)

func TestFocusProjectsToCentre(t *testing.T) {
	c := NewCamera(0, 55, 12, 45)
	c.SetViewport(800, 600)

	x, y, depth, ok := c.Project(BoardCentre)
	if !ok {
		t.Fatal("board centre not visible")
	}
	if math.Abs(x-400) > 1e-6 || math.Abs(y-300) > 1e-6 {
		t.Errorf("centre projected to (%v, %v), want (400, 300)", x, y)
	}
	if math.Abs(depth-12) > 1e-9 {
		t.Errorf("depth = %v, want 12", depth)
	}
}

func TestPickRoundTrip(t *testing.T) {
	for _, yaw := range []float64{0, 45, 180, 270} {
		c := NewCamera(yaw, 55, 12, 45)
		c.SetViewport(1280, 720)

		for _, sq := range board.AllSquares() {
			x, y, _, ok := c.Project(sq.World())
			if !ok {
				t.Fatalf("yaw %v: %v not visible", yaw, sq)
			}
			got, ok := c.Pick(x, y)
			if !ok || got != sq {
				t.Errorf("yaw %v: Pick(project(%v)) = %v, %v", yaw, sq, got, ok)
			}
		}
	}
}

func TestWhiteAtBottom(t *testing.T) {
	c := NewCamera(0, 55, 12, 45)
	_, yA1, _, _ := c.Project(board.A1.World())
	_, yA8, _, _ := c.Project(board.A8.World())
	xA1, _, _, _ := c.Project(board.A1.World())
	xH1, _, _, _ := c.Project(board.H1.World())

	if yA1 <= yA8 {
		t.Errorf("rank 1 (y=%v) should be drawn below rank 8 (y=%v)", yA1, yA8)
	}
	if xA1 >= xH1 {
		t.Errorf("file a (x=%v) should be left of file h (x=%v)", xA1, xH1)
	}
}

func TestPickOffBoard(t *testing.T) {
	c := NewCamera(0, 55, 12, 45)
	for _, p := range []geom.Vec3{geom.V3(-3, 0, -3), geom.V3(10, 0, 4), geom.V3(3, 0, 8.6)} {
		x, y, _, ok := c.Project(p)
		if !ok {
			t.Fatalf("%v not visible", p)
		}
		if sq, ok := c.Pick(x, y); ok {
			t.Errorf("Pick at %v returned %v", p, sq)
		}
	}
}

func TestPickAboveHorizon(t *testing.T) {
	c := NewCamera(0, 10, 12, 90)
	c.SetViewport(800, 600)
	if _, ok := c.PickPlane(400, 0); ok {
		t.Error("ray toward the sky should not hit the board")
	}
}

func TestBehindCamera(t *testing.T) {
	c := NewCamera(0, 55, 12, 45)
	behind := c.Eye().Add(c.Eye().Sub(c.Focus))
	if _, _, _, ok := c.Project(behind); ok {
		t.Error("point behind the camera reported visible")
	}
}

func TestOrbitAndZoomClamp(t *testing.T) {
	c := NewCamera(0, 55, 12, 45)
	c.Orbit(370, 100)
	if c.Pitch != maxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, maxPitch)
	}
	if math.Abs(c.Yaw-10) > 1e-9 {
		t.Errorf("Yaw = %v, want 10", c.Yaw)
	}
	c.Zoom(-100)
	if c.Distance != minDistance {
		t.Errorf("Distance = %v, want %v", c.Distance, minDistance)
	}
	c.Zoom(100)
	if c.Distance != maxDistance {
		t.Errorf("Distance = %v, want %v", c.Distance, maxDistance)
	}
}

func TestPixelsPerUnitShrinksWithDepth(t *testing.T) {
	c := NewCamera(0, 55, 12, 45)
	if c.PixelsPerUnit(5) <= c.PixelsPerUnit(10) {
		t.Error("nearer objects should appear larger")
	}
}

func TestTileCorners(t *testing.T) {
	corners := TileCorners(board.B3)
	centre := geom.Vec3{}
	for _, p := range corners {
		centre = centre.Add(p)
	}
	centre = centre.Mul(0.25)
	if geom.Dist(centre, board.B3.World()) > 1e-12 {
		t.Errorf("corner centroid %v, want %v", centre, board.B3.World())
	}
}

func TestRayThroughCentreHitsFocus(t *testing.T) {
	c := NewCamera(30, 40, 10, 60)
	c.SetViewport(800, 600)

	hit, ok := c.PickPlane(400, 300)
	if !ok {
		t.Fatal("centre ray missed the board")
	}
	if geom.Dist(hit, c.Focus) > 1e-6 {
		t.Errorf("centre ray hit %s, want %s", geom.Format(hit), geom.Format(c.Focus))
	}
}
