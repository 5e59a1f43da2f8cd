package num

// addCarry adds n into u limb by limb, least significant first, and returns
// the carry out of the most significant limb.
func (u *MLU[T, A]) addCarry(n *MLU[T, A], carry bool) bool {
	for k := 0; k < len(u.limbs); k++ {
		var s T
		s, carry = u.at(k).CarryingAdd(n.at(k), carry)
		u.put(k, s)
	}
	return carry
}

// subBorrow subtracts n from u limb by limb, least significant first, and
// returns the borrow out of the most significant limb.
func (u *MLU[T, A]) subBorrow(n *MLU[T, A], borrow bool) bool {
	for k := 0; k < len(u.limbs); k++ {
		var d T
		d, borrow = u.at(k).BorrowingSub(n.at(k), borrow)
		u.put(k, d)
	}
	return borrow
}

// addLimb adds a single limb at significance 0 and propagates the carry.
func (u *MLU[T, A]) addLimb(v T) (carry bool) {
	var s T
	s, carry = u.at(0).CarryingAdd(v, false)
	u.put(0, s)
	var z T
	for k := 1; carry && k < len(u.limbs); k++ {
		s, carry = u.at(k).CarryingAdd(z, true)
		u.put(k, s)
	}
	return carry
}

func (u *MLU[T, A]) subLimb(v T) (borrow bool) {
	var d T
	d, borrow = u.at(0).BorrowingSub(v, false)
	u.put(0, d)
	var z T
	for k := 1; borrow && k < len(u.limbs); k++ {
		d, borrow = u.at(k).BorrowingSub(z, true)
		u.put(k, d)
	}
	return borrow
}

// CarryingAdd returns u+n+carry modulo 2^Bits() and the carry out of the most
// significant limb. Chaining CarryingAdd across several MLUs adds values wider
// than a single MLU.
func (u MLU[T, A]) CarryingAdd(n MLU[T, A], carry bool) (MLU[T, A], bool) {
	c := u.addCarry(&n, carry)
	return u.withFlags(0), c
}

// BorrowingSub returns u-n-borrow modulo 2^Bits() and the borrow out of the
// most significant limb.
func (u MLU[T, A]) BorrowingSub(n MLU[T, A], borrow bool) (MLU[T, A], bool) {
	b := u.subBorrow(&n, borrow)
	return u.withFlags(0), b
}

// Add returns u+n modulo 2^Bits(). If the sum wrapped, the result has the
// Overflow flag set.
func (u MLU[T, A]) Add(n MLU[T, A]) MLU[T, A] {
	u.AddAssign(n)
	return u
}

// Sub returns u-n modulo 2^Bits(). If the difference wrapped, the result has
// the Underflow flag set.
func (u MLU[T, A]) Sub(n MLU[T, A]) MLU[T, A] {
	u.SubAssign(n)
	return u
}

func (u MLU[T, A]) WrappingAdd(n MLU[T, A]) MLU[T, A] { return u.Add(n) }
func (u MLU[T, A]) WrappingSub(n MLU[T, A]) MLU[T, A] { return u.Sub(n) }

func (u MLU[T, A]) OverflowingAdd(n MLU[T, A]) (MLU[T, A], bool) {
	u.AddAssign(n)
	return u, u.IsOverflow()
}

func (u MLU[T, A]) OverflowingSub(n MLU[T, A]) (MLU[T, A], bool) {
	u.SubAssign(n)
	return u, u.IsUnderflow()
}

// CheckedAdd returns u+n, or ok == false if the sum does not fit.
func (u MLU[T, A]) CheckedAdd(n MLU[T, A]) (v MLU[T, A], ok bool) {
	if u.addCarry(&n, false) {
		return v, false
	}
	return u.withFlags(0), true
}

// CheckedSub returns u-n, or ok == false if n > u.
func (u MLU[T, A]) CheckedSub(n MLU[T, A]) (v MLU[T, A], ok bool) {
	if u.subBorrow(&n, false) {
		return v, false
	}
	return u.withFlags(0), true
}

// SaturatingAdd returns u+n, or the maximum value with the Overflow flag set
// if the sum does not fit.
func (u MLU[T, A]) SaturatingAdd(n MLU[T, A]) MLU[T, A] {
	if u.addCarry(&n, false) {
		return Max[T, A]().withFlags(Overflow)
	}
	return u.withFlags(0)
}

// SaturatingSub returns u-n, or zero with the Underflow flag set if n > u.
func (u MLU[T, A]) SaturatingSub(n MLU[T, A]) MLU[T, A] {
	if u.subBorrow(&n, false) {
		return Zero[T, A]().withFlags(Underflow)
	}
	return u.withFlags(0)
}

// AddAssign sets u to u+n. Flags are cleared first; Overflow is set if the
// sum wrapped.
func (u *MLU[T, A]) AddAssign(n MLU[T, A]) {
	u.flags = 0
	if u.addCarry(&n, false) {
		u.flags |= Overflow
	}
}

// SubAssign sets u to u-n. Flags are cleared first; Underflow is set if the
// difference wrapped.
func (u *MLU[T, A]) SubAssign(n MLU[T, A]) {
	u.flags = 0
	if u.subBorrow(&n, false) {
		u.flags |= Underflow
	}
}

// Inc returns u+1. Max().Inc() wraps to zero with Overflow set.
func (u MLU[T, A]) Inc() MLU[T, A] {
	var z T
	return u.AddLimb(z.One())
}

// Dec returns u-1. Zero().Dec() wraps to Max() with Underflow set.
func (u MLU[T, A]) Dec() MLU[T, A] {
	var z T
	return u.SubLimb(z.One())
}

func (u MLU[T, A]) AddLimb(v T) MLU[T, A] {
	if u.addLimb(v) {
		return u.withFlags(Overflow)
	}
	return u.withFlags(0)
}

func (u MLU[T, A]) SubLimb(v T) MLU[T, A] {
	if u.subLimb(v) {
		return u.withFlags(Underflow)
	}
	return u.withFlags(0)
}
