package num

// RandSource is the external source of randomness consumed by Rand and
// RandU128. *math/rand.Rand satisfies it.
type RandSource interface {
	Uint64() uint64
}

// Difference subtracts the smaller of a and b from the larger. The result
// carries no flags.
func Difference[T Limb[T], A Array[T]](a, b MLU[T, A]) MLU[T, A] {
	if a.LessThan(b) {
		a, b = b, a
	}
	d, _ := a.BorrowingSub(b, false)
	return d
}

func Larger[T Limb[T], A Array[T]](a, b MLU[T, A]) MLU[T, A] {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func Smaller[T Limb[T], A Array[T]](a, b MLU[T, A]) MLU[T, A] {
	if b.LessThan(a) {
		return b
	}
	return a
}

// DifferenceU128 subtracts the smaller of a and b from the larger.
func DifferenceU128(a, b U128) U128 {
	if a.hi > b.hi {
		return a.Sub(b)
	} else if a.hi < b.hi {
		return b.Sub(a)
	} else if a.lo > b.lo {
		return a.Sub(b)
	} else if a.lo < b.lo {
		return b.Sub(a)
	}
	return U128{}
}
