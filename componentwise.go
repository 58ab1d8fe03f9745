package points

import "github.com/hnimtadd/points/numeric"

// Componentwise building blocks shared by both point arities. Operator
// methods slice the coordinate arrays through these instead of repeating
// the per-field arithmetic.

// combine writes f(a[i], b[i]) into dst. All three slices share a length.
func combine[N numeric.Real](dst, a, b []N, f func(N, N) N) {
	for i := range dst {
		dst[i] = f(a[i], b[i])
	}
}

// apply writes f(a[i]) into dst. Both slices share a length.
func apply[N numeric.Real](dst, a []N, f func(N) N) {
	for i := range dst {
		dst[i] = f(a[i])
	}
}

// hypotSq folds the coordinates into a sum of squares using checked
// arithmetic, stopping at the first overflowing step.
func hypotSq[N numeric.Real](coords []N) (N, bool) {
	var zero N
	sum, ok := numeric.CheckedMul(coords[0], coords[0])
	if !ok {
		return zero, false
	}
	for _, c := range coords[1:] {
		sq, ok := numeric.CheckedMul(c, c)
		if !ok {
			return zero, false
		}
		if sum, ok = numeric.CheckedAdd(sum, sq); !ok {
			return zero, false
		}
	}
	return sum, true
}

func add[N numeric.Real](a, b N) N { return a + b }
func sub[N numeric.Real](a, b N) N { return a - b }
func neg[N numeric.Real](a N) N    { return -a }
