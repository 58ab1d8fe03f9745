// Package interop converts the point types to and from the point/vector
// representations of commonly used geometry packages. Every conversion is
// total and lossless; no vector math happens here.
package interop

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hnimtadd/points"
)

// ToVec2 converts p to an mgl32 vector.
func ToVec2(p points.Point2D[float32]) mgl32.Vec2 {
	return mgl32.Vec2{p.X, p.Y}
}

// FromVec2 converts an mgl32 vector to a point.
func FromVec2(v mgl32.Vec2) points.Point2D[float32] {
	return points.NewPoint2D(v.X(), v.Y())
}

// ToVec3 converts p to an mgl32 vector.
func ToVec3(p points.Point3D[float32]) mgl32.Vec3 {
	return mgl32.Vec3{p.X, p.Y, p.Z}
}

// FromVec3 converts an mgl32 vector to a point.
func FromVec3(v mgl32.Vec3) points.Point3D[float32] {
	return points.NewPoint3D(v.X(), v.Y(), v.Z())
}
