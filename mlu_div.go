package num

// QuoRem returns the quotient u/by and remainder u%by. It panics with an
// ErrDivisionByZero error if by is zero. Results carry no flags.
func (u MLU[T, A]) QuoRem(by MLU[T, A]) (q, r MLU[T, A]) {
	if by.IsZero() {
		panic(ErrDivisionByZero.New("%d-bit quotient", u.Bits()))
	}
	u.flags, by.flags = 0, 0

	if by.IsOne() {
		return u, r
	}

	byLeading0 := by.LeadingZeros()
	byTrailing0 := by.TrailingZeros()
	if byLeading0+byTrailing0 == u.Bits()-1 {
		q = u
		q.rshBits(byTrailing0)
		r = by.Dec().And(u)
		return q, r
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder

	} else if cmp == 0 {
		return One[T, A](), r
	}

	return quoremBin(u, by, u.LeadingZeros(), byLeading0)
}

// quoremBin is shift-and-subtract long division. by is aligned with the top
// set bit of u and walked back down one bit per step.
func quoremBin[T Limb[T], A Array[T]](u, by MLU[T, A], uLeading0, byLeading0 uint) (q, r MLU[T, A]) {
	var z T
	shift := int(byLeading0 - uLeading0)
	by.lshBits(uint(shift))

	for {
		q.lshBits(1)

		if u.Cmp(by) >= 0 {
			u.subBorrow(&by, false)
			q.put(0, q.at(0).Or(z.One()))
		}

		by.rshBits(1)

		if shift <= 0 {
			break
		}
		shift--
	}

	return q, u
}

func (u MLU[T, A]) Quo(by MLU[T, A]) (q MLU[T, A]) {
	q, _ = u.QuoRem(by)
	return q
}

func (u MLU[T, A]) Rem(by MLU[T, A]) (r MLU[T, A]) {
	_, r = u.QuoRem(by)
	return r
}

func (u MLU[T, A]) WrappingDiv(by MLU[T, A]) MLU[T, A] { return u.Quo(by) }
func (u MLU[T, A]) WrappingRem(by MLU[T, A]) MLU[T, A] { return u.Rem(by) }

// CheckedQuoRem returns u/by and u%by, or ok == false if by is zero.
func (u MLU[T, A]) CheckedQuoRem(by MLU[T, A]) (q, r MLU[T, A], ok bool) {
	if by.IsZero() {
		return q, r, false
	}
	q, r = u.QuoRem(by)
	return q, r, true
}

func (u MLU[T, A]) CheckedQuo(by MLU[T, A]) (q MLU[T, A], ok bool) {
	q, _, ok = u.CheckedQuoRem(by)
	return q, ok
}

func (u MLU[T, A]) CheckedRem(by MLU[T, A]) (r MLU[T, A], ok bool) {
	_, r, ok = u.CheckedQuoRem(by)
	return r, ok
}

// QuoRemLimb divides u by a single limb. It panics with an ErrDivisionByZero
// error if v is zero.
func (u MLU[T, A]) QuoRemLimb(v T) (q MLU[T, A], r T) {
	if v.IsZero() {
		panic(ErrDivisionByZero.New("%d-bit quotient by limb", u.Bits()))
	}

	w := limbBits[T]()
	if w > 64 {
		var by MLU[T, A]
		by.put(0, v)
		q, rem := u.QuoRem(by)
		return q, rem.at(0)
	}

	// Each partial dividend is below v<<w, so it fits in 128 bits.
	var z T
	by := v.AsU128()
	var rem U128
	for k := len(u.limbs) - 1; k >= 0; k-- {
		cur := rem.Lsh(w).Or(u.at(k).AsU128())
		var d U128
		d, rem = cur.QuoRem(by)
		q.put(k, z.FromU128(d))
	}
	return q, z.FromU128(rem)
}

// powInto computes u**exp modulo 2^Bits() by square-and-multiply and reports
// whether the true power did not fit.
func (u MLU[T, A]) powInto(exp uint64) (acc MLU[T, A], overflow bool) {
	acc = One[T, A]()
	base := u.withFlags(0)
	for exp > 0 {
		var o bool
		if exp&1 == 1 {
			acc, o = acc.mulInto(base)
			overflow = overflow || o
		}
		exp >>= 1
		if exp > 0 {
			base, o = base.mulInto(base)
			overflow = overflow || o
		}
	}
	return acc, overflow
}

// WrappingPow returns u**exp modulo 2^Bits(). If the true power does not fit,
// the result has the Overflow flag set. Any value to the power of 0 is 1.
func (u MLU[T, A]) WrappingPow(exp uint64) MLU[T, A] {
	p, o := u.powInto(exp)
	if o {
		return p.withFlags(Overflow)
	}
	return p
}

func (u MLU[T, A]) OverflowingPow(exp uint64) (MLU[T, A], bool) {
	p := u.WrappingPow(exp)
	return p, p.IsOverflow()
}

func (u MLU[T, A]) CheckedPow(exp uint64) (v MLU[T, A], ok bool) {
	p, o := u.powInto(exp)
	if o {
		return v, false
	}
	return p, true
}

func (u MLU[T, A]) SaturatingPow(exp uint64) MLU[T, A] {
	p, o := u.powInto(exp)
	if o {
		return Max[T, A]().withFlags(Overflow)
	}
	return p
}
