package num

// lshBits shifts u left by d bits in place and reports whether any nonzero
// bit was shifted out of the top.
//
// The shift is split into a chunk phase, which moves whole limbs by d/w
// positions, and a piece phase, which moves the remaining d%w bits in one
// sweep, carrying the bits that cross each limb boundary into the next limb.
func (u *MLU[T, A]) lshBits(d uint) (lost bool) {
	var z T
	n := len(u.limbs)
	w := limbBits[T]()
	chunk, piece := d/w, d%w

	if chunk >= uint(n) {
		lost = !u.IsZero()
		for k := 0; k < n; k++ {
			u.limbs[k] = z
		}
		return lost
	}

	c := int(chunk)
	if c > 0 {
		for k := n - c; k < n; k++ {
			if !u.at(k).IsZero() {
				lost = true
				break
			}
		}
		for k := n - 1; k >= c; k-- {
			u.put(k, u.at(k-c))
		}
		for k := 0; k < c; k++ {
			u.put(k, z)
		}
	}
	if piece == 0 {
		return lost
	}

	if u.at(n-1).LeadingZeros() < piece {
		lost = true
	}
	carry := z
	for k := c; k < n; k++ {
		v := u.at(k)
		u.put(k, v.Lsh(piece).Or(carry))
		carry = v.Rsh(w - piece)
	}
	return lost
}

// rshBits shifts u right by d bits in place and reports whether any nonzero
// bit was shifted out of the bottom.
func (u *MLU[T, A]) rshBits(d uint) (lost bool) {
	var z T
	n := len(u.limbs)
	w := limbBits[T]()
	chunk, piece := d/w, d%w

	if chunk >= uint(n) {
		lost = !u.IsZero()
		for k := 0; k < n; k++ {
			u.limbs[k] = z
		}
		return lost
	}

	c := int(chunk)
	if c > 0 {
		for k := 0; k < c; k++ {
			if !u.at(k).IsZero() {
				lost = true
				break
			}
		}
		for k := 0; k < n-c; k++ {
			u.put(k, u.at(k+c))
		}
		for k := n - c; k < n; k++ {
			u.put(k, z)
		}
	}
	if piece == 0 {
		return lost
	}

	if u.at(0).TrailingZeros() < piece {
		lost = true
	}
	carry := z
	for k := n - 1 - c; k >= 0; k-- {
		v := u.at(k)
		u.put(k, v.Rsh(piece).Or(carry))
		carry = v.Lsh(w - piece)
	}
	return lost
}

// negDist returns |d| for a negative d without overflowing on math.MinInt.
func negDist(d int) uint { return uint(-(d + 1)) + 1 }

// shift moves u by d bits, left if d >= 0 and right otherwise. It returns the
// flag that applies if bits were lost and whether they were.
func (u *MLU[T, A]) shift(d int) (Flags, bool) {
	if d < 0 {
		return Underflow, u.rshBits(negDist(d))
	}
	return Overflow, u.lshBits(uint(d))
}

// LshAssign shifts u left by d bits; a negative d shifts right by -d bits.
// Flags are cleared first. Overflow is set if a nonzero bit left through the
// top; Underflow is set if a nonzero bit left through the bottom.
func (u *MLU[T, A]) LshAssign(d int) {
	u.flags = 0
	if f, lost := u.shift(d); lost {
		u.flags = f
	}
}

// RshAssign shifts u right by d bits; a negative d shifts left by -d bits.
// Flags are set as for LshAssign.
func (u *MLU[T, A]) RshAssign(d int) {
	u.flags = 0
	if d < 0 {
		if u.lshBits(negDist(d)) {
			u.flags = Overflow
		}
		return
	}
	if u.rshBits(uint(d)) {
		u.flags = Underflow
	}
}

// Lsh returns u << d; a negative d shifts right.
func (u MLU[T, A]) Lsh(d int) MLU[T, A] {
	u.LshAssign(d)
	return u
}

// Rsh returns u >> d; a negative d shifts left.
func (u MLU[T, A]) Rsh(d int) MLU[T, A] {
	u.RshAssign(d)
	return u
}

// OverflowingLsh returns u << d and whether any nonzero bit was lost.
func (u MLU[T, A]) OverflowingLsh(d int) (MLU[T, A], bool) {
	u.LshAssign(d)
	return u, u.flags != 0
}

// OverflowingRsh returns u >> d and whether any nonzero bit was lost.
func (u MLU[T, A]) OverflowingRsh(d int) (MLU[T, A], bool) {
	u.RshAssign(d)
	return u, u.flags != 0
}

// CheckedLsh returns u << d, or ok == false if a nonzero bit would be lost.
func (u MLU[T, A]) CheckedLsh(d int) (v MLU[T, A], ok bool) {
	if u.LshAssign(d); u.flags != 0 {
		return v, false
	}
	return u, true
}

// CheckedRsh returns u >> d, or ok == false if a nonzero bit would be lost.
func (u MLU[T, A]) CheckedRsh(d int) (v MLU[T, A], ok bool) {
	if u.RshAssign(d); u.flags != 0 {
		return v, false
	}
	return u, true
}

// RotateLeft rotates u left by k bits across the whole width of u; a
// negative k rotates right. No flags are set.
func (u MLU[T, A]) RotateLeft(k int) MLU[T, A] {
	b := int(u.Bits())
	s := uint(((k % b) + b) % b)
	if s == 0 {
		return u.withFlags(0)
	}
	lo := u
	u.lshBits(s)
	lo.rshBits(uint(b) - s)
	return u.Or(lo)
}

func (u MLU[T, A]) RotateRight(k int) MLU[T, A] { return u.RotateLeft(-k) }
