// Command pointsdemo walks through the points library: construction,
// arithmetic, checked hypot-squared, bounds, and aligned formatting. It
// also reinterprets a flat coordinate buffer as packed pairs, the
// unchecked counterpart of the array conversions. Demo only; nothing here
// is part of the library contract.
package main

import (
	"fmt"
	"math"
	"os"
	"unsafe"

	"github.com/hnimtadd/points"
	"github.com/hnimtadd/points/logger"
	"github.com/hnimtadd/points/pointfmt"
)

func main() {
	log := logger.New(logger.Options{
		Output: os.Stdout,
		Level:  logger.DebugLevel,
		Type:   logger.TypeText,
	})

	p := points.NewPoint2D(3, 4)
	q := points.Point2DFromArray([2]int{1, -2})
	log.Info("arithmetic",
		"p", p.String(),
		"q", q.String(),
		"p+q", p.Add(q).String(),
		"p-q", p.Sub(q).String(),
		"-p", p.Neg().String(),
	)

	if sum, ok := p.HypotSq(); ok {
		log.Info("hypot squared", "point", p.String(), "value", sum)
	}
	if _, ok := points.NewPoint2D(math.MaxInt, 1).HypotSq(); !ok {
		log.Warn("hypot squared overflows at max int coordinates")
	}

	log.Debug("int8 bounds",
		"min", points.MinPoint3D[int8]().String(),
		"max", points.MaxPoint3D[int8]().String(),
	)

	rows := []points.Point3D[int]{
		points.NewPoint3D(1, -2, 3),
		points.NewPoint3D(100, 20, -3),
		points.NewPoint3D(-7, 800, 90),
	}
	fmt.Print(pointfmt.Rows3(rows))

	// A flat buffer of four coordinates is also two packed (x, y) pairs.
	buf := [4]uint32{1, 2, 3, 4}
	pairs := (*[2][2]uint32)(unsafe.Pointer(&buf))
	fmt.Println(
		points.Point2DFromArray(pairs[0]),
		points.Point2DFromArray(pairs[1]),
	)
}
