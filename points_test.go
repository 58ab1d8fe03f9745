package points

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint2DAdd(t *testing.T) {
	p1 := Point2DFromArray([2]int{1, 2})
	p2 := Point2DFromArray([2]int{3, 4})
	assert.Equal(t, Point2DFromArray([2]int{4, 6}), p1.Add(p2))
}

func TestPoint2DAddCommutes(t *testing.T) {
	p1 := NewPoint2D(-5, 12)
	p2 := NewPoint2D(7, -3)
	assert.Equal(t, p1.Add(p2), p2.Add(p1))
}

func TestPoint2DAddAssign(t *testing.T) {
	p1 := Point2DFromArray([2]int{1, 2})
	p2 := Point2DFromArray([2]int{3, 4})
	p1.AddAssign(p2)
	assert.Equal(t, Point2DFromArray([2]int{4, 6}), p1)
}

func TestPoint2DSub(t *testing.T) {
	p1 := Point2DFromArray([2]int{1, 2})
	p2 := Point2DFromArray([2]int{3, 4})
	assert.Equal(t, Point2DFromArray([2]int{2, 2}), p2.Sub(p1))
}

func TestPoint2DSubAssign(t *testing.T) {
	p1 := Point2DFromArray([2]int{1, 2})
	p2 := Point2DFromArray([2]int{3, 4})
	p2.SubAssign(p1)
	assert.Equal(t, Point2DFromArray([2]int{2, 2}), p2)
}

func TestPoint2DNeg(t *testing.T) {
	p := Point2DFromArray([2]int{1, -2})
	assert.Equal(t, Point2DFromArray([2]int{-1, 2}), p.Neg())
}

func TestPoint2DAdditiveInverse(t *testing.T) {
	p := NewPoint2D(9, -41)
	assert.Equal(t, Point2D[int]{}, p.Add(p.Neg()))
}

func TestPoint2DEquality(t *testing.T) {
	p1 := Point2DFromArray([2]int{1, 2})
	p2 := Point2DFromArray([2]int{3, 4})
	p3 := Point2DFromArray([2]int{2, 2})
	assert.NotEqual(t, p1, p2)
	assert.Equal(t, p3, p1.Add(NewPoint2D(1, 0)))
}

func TestPoint2DArrayRoundTrip(t *testing.T) {
	p := NewPoint2D(1, -2)
	assert.Equal(t, [2]int{1, -2}, p.Array())
	assert.Equal(t, p, Point2DFromArray(p.Array()))
}

func TestPoint2DXYRoundTrip(t *testing.T) {
	p := NewPoint2D(1, -2)
	x, y := p.XY()
	assert.Equal(t, 1, x)
	assert.Equal(t, -2, y)
	assert.Equal(t, p, NewPoint2D(x, y))
}

func TestPoint2DHashConsistency(t *testing.T) {
	p1 := NewPoint2D(1, -2)
	p2 := Point2DFromArray([2]int{1, -2})
	assert.Equal(t, p1, p2)
	assert.Equal(t, p1.Hash(), p2.Hash())
	assert.NotEqual(t, p1.Hash(), NewPoint2D(-2, 1).Hash())
}

func TestPoint2DString(t *testing.T) {
	assert.Equal(t, "( 1, -2 )", Point2DFromArray([2]int{1, -2}).String())
	assert.Equal(t, "( 1.5, -0.25 )", NewPoint2D(1.5, -0.25).String())
}

func TestPoint2DBounds(t *testing.T) {
	assert.Equal(t,
		Point2DFromArray([2]int32{math.MinInt32, math.MinInt32}),
		MinPoint2D[int32](),
	)
	assert.Equal(t,
		Point2DFromArray([2]float64{math.MaxFloat64, math.MaxFloat64}),
		MaxPoint2D[float64](),
	)
}

func TestPoint2DHypotSq(t *testing.T) {
	sum, ok := NewPoint2D(3, 4).HypotSq()
	assert.True(t, ok)
	assert.Equal(t, 25, sum)
}

func TestPoint2DHypotSqOverflow(t *testing.T) {
	p := MaxPoint2D[int8]()
	sum, ok := p.HypotSq()
	assert.False(t, ok, "squaring 127 must overflow int8")
	assert.Equal(t, int8(0), sum, "no partial sum on overflow")
}

func TestPoint2DZeroValueIsOrigin(t *testing.T) {
	var p Point2D[float64]
	assert.Equal(t, NewPoint2D(0.0, 0.0), p)
}
