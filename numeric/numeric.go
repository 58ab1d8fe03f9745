// Package numeric is the numeric capability layer for the point types: the
// Real constraint, overflow-checked arithmetic, and per-type bounds.
//
// Plain +, -, * on a Real type keep that type's own semantics (integers
// wrap, floats follow IEEE 754). The Checked variants here are the only
// place overflow is detected.
package numeric

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Real is satisfied by every built-in or derived integer and floating-point
// type.
type Real interface {
	constraints.Integer | constraints.Float
}

// isFloat reports whether N is a floating-point type. Integer division
// truncates 1/2 to zero, float division does not.
func isFloat[N Real]() bool {
	return N(1)/N(2) != 0
}

// IsFinite reports whether x is neither an infinity nor NaN. Always true
// for integer types.
func IsFinite[N Real](x N) bool {
	// x-x is zero for every finite x and NaN otherwise.
	return x-x == 0
}

// CheckedAdd returns a+b and reports whether the sum is representable in N.
// For floats a finite sum counts as representable.
func CheckedAdd[N Real](a, b N) (N, bool) {
	sum := a + b
	if isFloat[N]() {
		return sum, IsFinite(sum)
	}
	// Wraparound moves the sum to the wrong side of a. Holds for signed and
	// unsigned: an unsigned b is never < 0.
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return sum, false
	}
	return sum, true
}

// CheckedMul returns a*b and reports whether the product is representable
// in N.
func CheckedMul[N Real](a, b N) (N, bool) {
	prod := a * b
	if isFloat[N]() {
		return prod, IsFinite(prod)
	}
	if a == 0 || b == 0 {
		return prod, true
	}
	var negOne N
	negOne-- // -1 for signed types, maximum for unsigned
	if negOne < 0 {
		// x * -1 overflows only for the minimum value, and MinValue / -1
		// would make the division check below trap.
		if a == negOne {
			return prod, b != MinValue[N]()
		}
		if b == negOne {
			return prod, a != MinValue[N]()
		}
	}
	return prod, prod/b == a
}

// MinValue returns the minimum representable value of N: zero for unsigned
// integers, the most negative finite value for floats. Resolved per
// instantiation, so derived types work too.
func MinValue[N Real]() N {
	var v N
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(int64(-1) << (rv.Type().Bits() - 1))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		rv.SetUint(0)
	case reflect.Float32:
		rv.SetFloat(-math.MaxFloat32)
	case reflect.Float64:
		rv.SetFloat(-math.MaxFloat64)
	}
	return v
}

// MaxValue returns the maximum representable value of N.
func MaxValue[N Real]() N {
	var v N
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(int64(uint64(1)<<(rv.Type().Bits()-1) - 1))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		rv.SetUint(^uint64(0) >> (64 - rv.Type().Bits()))
	case reflect.Float32:
		rv.SetFloat(math.MaxFloat32)
	case reflect.Float64:
		rv.SetFloat(math.MaxFloat64)
	}
	return v
}
