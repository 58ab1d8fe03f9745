package interop

import (
	"github.com/paulmach/orb"

	"github.com/hnimtadd/points"
)

// ToOrb converts p to an orb.Point. orb points are bare float64 pairs with
// no coordinate-system meaning attached, matching Point2D semantics.
func ToOrb(p points.Point2D[float64]) orb.Point {
	return orb.Point{p.X, p.Y}
}

// FromOrb converts an orb.Point to a point.
func FromOrb(o orb.Point) points.Point2D[float64] {
	return points.NewPoint2D(o.X(), o.Y())
}
