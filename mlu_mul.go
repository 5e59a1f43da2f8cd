package num

// mulInto computes u*n modulo 2^Bits() by double-and-add and reports whether
// the true product did not fit.
//
// The multiplier's most significant nonzero limb is the seed: its bits are
// walked from its top set bit down, doubling the accumulator and adding the
// multiplicand for every set bit. Each lower limb is then walked the same way
// over its full width, except that a zero limb shifts the accumulator by a
// whole limb at once.
func (u MLU[T, A]) mulInto(n MLU[T, A]) (acc MLU[T, A], overflow bool) {
	if u.IsZero() || n.IsZero() {
		return acc, false
	}

	w := limbBits[T]()
	seed := len(n.limbs) - 1
	for n.at(seed).IsZero() {
		seed--
	}

	step := func(l T, from uint) {
		for i := from; i > 0; i-- {
			if acc.lshBits(1) {
				overflow = true
			}
			if l.Rsh(i - 1).IsOdd() {
				if acc.addCarry(&u, false) {
					overflow = true
				}
			}
		}
	}

	s := n.at(seed)
	step(s, w-s.LeadingZeros())
	for k := seed - 1; k >= 0; k-- {
		l := n.at(k)
		if l.IsZero() {
			if acc.lshBits(w) {
				overflow = true
			}
			continue
		}
		step(l, w)
	}
	return acc, overflow
}

// Mul returns u*n modulo 2^Bits(). If the true product does not fit, the
// result has the Overflow flag set.
func (u MLU[T, A]) Mul(n MLU[T, A]) MLU[T, A] {
	p, o := u.mulInto(n)
	if o {
		return p.withFlags(Overflow)
	}
	return p
}

func (u MLU[T, A]) WrappingMul(n MLU[T, A]) MLU[T, A] { return u.Mul(n) }

func (u MLU[T, A]) OverflowingMul(n MLU[T, A]) (MLU[T, A], bool) {
	p := u.Mul(n)
	return p, p.IsOverflow()
}

// CheckedMul returns u*n, or ok == false if the product does not fit.
func (u MLU[T, A]) CheckedMul(n MLU[T, A]) (v MLU[T, A], ok bool) {
	p, o := u.mulInto(n)
	if o {
		return v, false
	}
	return p, true
}

// SaturatingMul returns u*n, or the maximum value with the Overflow flag set
// if the product does not fit.
func (u MLU[T, A]) SaturatingMul(n MLU[T, A]) MLU[T, A] {
	p, o := u.mulInto(n)
	if o {
		return Max[T, A]().withFlags(Overflow)
	}
	return p
}

// MulAssign sets u to u*n. Flags are cleared first; Overflow is set if the
// product did not fit.
func (u *MLU[T, A]) MulAssign(n MLU[T, A]) {
	*u = u.Mul(n)
}

// MulLimb returns u*v for a single limb v.
func (u MLU[T, A]) MulLimb(v T) MLU[T, A] {
	var n MLU[T, A]
	n.put(0, v)
	return u.Mul(n)
}
