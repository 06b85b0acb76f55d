// SPDX-License-Identifier: MIT
// Package sparse: elementwise arithmetic on Indexed vectors.
//
// Binary operations work over the union of tracked positions. A position
// tracked by one operand only reads 0 on the other side, so Times drops it and
// Quotient yields 0/x = 0 or fails on x/0. Results below TinyElement are
// removed before returning.

package sparse

// Plus returns v+b as a new vector with capacity max(v,b).
// Complexity: O(capacity + nnz(b)).
func (v *Indexed) Plus(b *Indexed) *Indexed {
	out := v.Clone()
	out.AddVector(b)

	return out
}

// Minus returns v-b as a new vector.
func (v *Indexed) Minus(b *Indexed) *Indexed {
	out := v.Clone()
	out.SubVector(b)

	return out
}

// Times returns the elementwise product v*b.
func (v *Indexed) Times(b *Indexed) *Indexed {
	out := v.Clone()
	out.MulVector(b)

	return out
}

// Quotient returns the elementwise quotient v/b.
// Errors: ErrZeroDivisor when a position tracked in v is zero in b.
func (v *Indexed) Quotient(b *Indexed) (*Indexed, error) {
	out := v.Clone()
	if err := out.DivVector(b); err != nil {
		return nil, err
	}

	return out, nil
}

// AddVector adds b into v in place.
func (v *Indexed) AddVector(b *Indexed) { v.merge(b, 1) }

// SubVector subtracts b from v in place.
func (v *Indexed) SubVector(b *Indexed) { v.merge(b, -1) }

// merge accumulates sign*b into v, cleaning cancelled positions at the end.
func (v *Indexed) merge(b *Indexed, sign float64) {
	v.ensure(b.Capacity())
	needClean := false
	for _, idx := range b.indices[:b.n] {
		value := sign * b.elements[idx]
		if old := v.elements[idx]; old != 0 {
			sum := old + value
			v.elements[idx] = sum
			if isTiny(sum) {
				needClean = true
			}
		} else if !isTiny(value) {
			v.QuickInsert(idx, value)
		}
	}
	if needClean {
		v.Clean(TinyElement)
	}
}

// MulVector multiplies v by b elementwise in place. Positions not tracked in
// b become zero and are dropped.
func (v *Indexed) MulVector(b *Indexed) {
	v.ensure(b.Capacity())
	for _, idx := range v.indices[:v.n] {
		v.elements[idx] *= b.Value(idx)
	}
	v.Clean(TinyElement)
}

// DivVector divides v by b elementwise in place. The divisors are checked
// before anything is written, so v is unchanged on error.
// Errors: ErrZeroDivisor.
func (v *Indexed) DivVector(b *Indexed) error {
	for _, idx := range v.indices[:v.n] {
		if b.Value(idx) == 0 {
			return opError("Indexed.DivVector", ErrZeroDivisor, "index=%d", idx)
		}
	}
	v.ensure(b.Capacity())
	for _, idx := range v.indices[:v.n] {
		v.elements[idx] /= b.elements[idx]
	}
	v.Clean(TinyElement)

	return nil
}

// AddScalar adds s to every tracked value. Untracked positions stay zero.
func (v *Indexed) AddScalar(s float64) {
	for _, idx := range v.indices[:v.n] {
		v.elements[idx] = snap(v.elements[idx] + s)
	}
}

// SubScalar subtracts s from every tracked value.
func (v *Indexed) SubScalar(s float64) { v.AddScalar(-s) }

// Scale multiplies every tracked value by s.
func (v *Indexed) Scale(s float64) {
	for _, idx := range v.indices[:v.n] {
		v.elements[idx] = snap(v.elements[idx] * s)
	}
}

// DivScalar divides every tracked value by s.
// Errors: ErrZeroDivisor when s == 0 and v is not empty.
func (v *Indexed) DivScalar(s float64) error {
	if s == 0 {
		if v.n == 0 {
			return nil
		}

		return opError("Indexed.DivScalar", ErrZeroDivisor, "s=0")
	}
	v.Scale(1 / s)

	return nil
}
