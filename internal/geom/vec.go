// Package geom names the world-space vector type shared by the board, the
// animator and the camera. The board lies in the XZ plane with Y pointing up.
package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a point or direction in world space.
type Vec3 = mgl64.Vec3

// V3 creates a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Dist returns the distance between a and b.
func Dist(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// Format renders v for logs.
func Format(v Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X(), v.Y(), v.Z())
}
