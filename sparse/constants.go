package sparse

// Numeric policy shared by every vector. These are process-wide constants;
// tests and kernels refer to them by name.
const (
	// TinyElement is the magnitude below which a value is treated as zero
	// when it is inserted or produced by an update.
	TinyElement = 1.0e-50

	// ReallyTinyElement replaces an update result that fell below TinyElement
	// on an already tracked position, keeping the slot nonzero and tracked.
	ReallyTinyElement = 1.0e-100

	// EqualTolerance is the relative tolerance used by Equal.
	EqualTolerance = 1.0e-8
)

// sparseClearRatio selects the Clear strategy: tracked slots are zeroed one
// by one while sparseClearRatio*n < capacity, otherwise the whole buffer is.
const sparseClearRatio = 3

// snap applies the tiny-value policy to the result of an update on a tracked slot.
func snap(v float64) float64 {
	if v >= TinyElement || v <= -TinyElement {
		return v
	}

	return ReallyTinyElement
}

// isTiny reports whether v would be dropped on insertion.
func isTiny(v float64) bool {
	return v < TinyElement && v > -TinyElement
}
