package utils

// Assert panics with message when the condition does not hold. Reserved
// for invariants that cannot fail unless the library itself is broken.
func Assert(condition bool, message ...string) {
	if !condition {
		if len(message) == 1 {
			panic(message[0])
		}
		panic("failed assertion")
	}
}
