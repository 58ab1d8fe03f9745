// Package points provides generic value types for points in two and three
// dimensional space: construction and conversions, componentwise
// arithmetic, equality and hashing, per-type bounds, an overflow-checked
// squared distance from the origin, and "( x, y )" display formatting.
//
// Points are plain data. Copy them freely, compare them with ==, and use
// the zero value as the origin. Subpackage numeric defines the Real
// constraint and the checked arithmetic the points build on.
package points

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/hnimtadd/points/internal/utils"
	"github.com/hnimtadd/points/numeric"
)

// Point2D is a point in two dimensional space. The zero value is the
// origin.
type Point2D[N numeric.Real] struct {
	X N
	Y N
}

// NewPoint2D returns the point (x, y).
func NewPoint2D[N numeric.Real](x, y N) Point2D[N] {
	return Point2D[N]{X: x, Y: y}
}

// Point2DFromArray returns the point (arr[0], arr[1]).
func Point2DFromArray[N numeric.Real](arr [2]N) Point2D[N] {
	return Point2D[N]{X: arr[0], Y: arr[1]}
}

// Array returns the coordinates as [x, y]. Inverse of Point2DFromArray.
func (p Point2D[N]) Array() [2]N {
	return [2]N{p.X, p.Y}
}

// XY returns the coordinates. Inverse of NewPoint2D.
func (p Point2D[N]) XY() (x, y N) {
	return p.X, p.Y
}

// Add returns the componentwise sum p + q. Overflow follows N's own plain
// arithmetic; see HypotSq for the checked path.
func (p Point2D[N]) Add(q Point2D[N]) Point2D[N] {
	pa, qa := p.Array(), q.Array()
	var out [2]N
	combine(out[:], pa[:], qa[:], add[N])
	return Point2DFromArray(out)
}

// AddAssign adds q to p in place.
func (p *Point2D[N]) AddAssign(q Point2D[N]) {
	*p = p.Add(q)
}

// Sub returns the componentwise difference p - q.
func (p Point2D[N]) Sub(q Point2D[N]) Point2D[N] {
	pa, qa := p.Array(), q.Array()
	var out [2]N
	combine(out[:], pa[:], qa[:], sub[N])
	return Point2DFromArray(out)
}

// SubAssign subtracts q from p in place.
func (p *Point2D[N]) SubAssign(q Point2D[N]) {
	*p = p.Sub(q)
}

// Neg returns the componentwise negation of p.
func (p Point2D[N]) Neg() Point2D[N] {
	pa := p.Array()
	var out [2]N
	apply(out[:], pa[:], neg[N])
	return Point2DFromArray(out)
}

// HypotSq returns the sum of squares of the coordinates, computed with
// checked multiplies and adds. ok is false as soon as any checked step
// overflows; no partial sum is returned.
func (p Point2D[N]) HypotSq() (sum N, ok bool) {
	pa := p.Array()
	return hypotSq(pa[:])
}

// Hash returns a hash of the coordinates, consistent with ==.
func (p Point2D[N]) Hash() uint64 {
	hashed, err := hashstructure.Hash(p, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash point: %v", err))
	return hashed
}

// String renders p as "( x, y )".
func (p Point2D[N]) String() string {
	return fmt.Sprintf("( %v, %v )", p.X, p.Y)
}

// MinPoint2D returns the point whose every coordinate is N's minimum
// representable value.
func MinPoint2D[N numeric.Real]() Point2D[N] {
	return splat2(numeric.MinValue[N]())
}

// MaxPoint2D returns the point whose every coordinate is N's maximum
// representable value.
func MaxPoint2D[N numeric.Real]() Point2D[N] {
	return splat2(numeric.MaxValue[N]())
}

func splat2[N numeric.Real](v N) Point2D[N] {
	return Point2D[N]{X: v, Y: v}
}
