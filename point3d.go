package points

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/hnimtadd/points/internal/utils"
	"github.com/hnimtadd/points/numeric"
)

// Point3D is a point in three dimensional space. The x/y pair lives in the
// embedded Point2D, so p.X and p.Y resolve to the embedded point's fields:
// reads and writes through either path hit the same storage, and p.Point2D
// is the packaged two dimensional sub-view. The zero value is the origin.
type Point3D[N numeric.Real] struct {
	Point2D[N]
	Z N
}

// NewPoint3D returns the point (x, y, z).
func NewPoint3D[N numeric.Real](x, y, z N) Point3D[N] {
	return Point3D[N]{Point2D: NewPoint2D(x, y), Z: z}
}

// Point3DFromArray returns the point (arr[0], arr[1], arr[2]). The x/y pair
// goes through the 2-element conversion.
func Point3DFromArray[N numeric.Real](arr [3]N) Point3D[N] {
	return Point3D[N]{
		Point2D: Point2DFromArray([2]N{arr[0], arr[1]}),
		Z:       arr[2],
	}
}

// Array returns the coordinates as [x, y, z]. Inverse of Point3DFromArray.
func (p Point3D[N]) Array() [3]N {
	xy := p.Point2D.Array()
	return [3]N{xy[0], xy[1], p.Z}
}

// XYZ returns the coordinates. Inverse of NewPoint3D.
func (p Point3D[N]) XYZ() (x, y, z N) {
	return p.X, p.Y, p.Z
}

// Add returns the componentwise sum p + q. Overflow follows N's own plain
// arithmetic; see HypotSq for the checked path.
func (p Point3D[N]) Add(q Point3D[N]) Point3D[N] {
	pa, qa := p.Array(), q.Array()
	var out [3]N
	combine(out[:], pa[:], qa[:], add[N])
	return Point3DFromArray(out)
}

// AddAssign adds q to p in place.
func (p *Point3D[N]) AddAssign(q Point3D[N]) {
	*p = p.Add(q)
}

// Sub returns the componentwise difference p - q.
func (p Point3D[N]) Sub(q Point3D[N]) Point3D[N] {
	pa, qa := p.Array(), q.Array()
	var out [3]N
	combine(out[:], pa[:], qa[:], sub[N])
	return Point3DFromArray(out)
}

// SubAssign subtracts q from p in place.
func (p *Point3D[N]) SubAssign(q Point3D[N]) {
	*p = p.Sub(q)
}

// Neg returns the componentwise negation of p.
func (p Point3D[N]) Neg() Point3D[N] {
	pa := p.Array()
	var out [3]N
	apply(out[:], pa[:], neg[N])
	return Point3DFromArray(out)
}

// HypotSq returns the sum of squares of all three coordinates, computed
// with checked multiplies and adds. ok is false as soon as any checked
// step overflows; no partial sum is returned.
func (p Point3D[N]) HypotSq() (sum N, ok bool) {
	pa := p.Array()
	return hypotSq(pa[:])
}

// Hash returns a hash of the coordinates, consistent with ==.
func (p Point3D[N]) Hash() uint64 {
	hashed, err := hashstructure.Hash(p, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash point: %v", err))
	return hashed
}

// String renders p as "( x, y, z )".
func (p Point3D[N]) String() string {
	return fmt.Sprintf("( %v, %v, %v )", p.X, p.Y, p.Z)
}

// MinPoint3D returns the point whose every coordinate is N's minimum
// representable value.
func MinPoint3D[N numeric.Real]() Point3D[N] {
	return splat3(numeric.MinValue[N]())
}

// MaxPoint3D returns the point whose every coordinate is N's maximum
// representable value.
func MaxPoint3D[N numeric.Real]() Point3D[N] {
	return splat3(numeric.MaxValue[N]())
}

func splat3[N numeric.Real](v N) Point3D[N] {
	return Point3D[N]{Point2D: splat2(v), Z: v}
}
