package num

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// The helpers in this file implement the Limb operations once for every Go
// primitive unsigned type. U8, U16, U32 and U64 forward to them.

var hostLittleEndian = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

func primBits[P constraints.Unsigned]() uint {
	var x P
	return uint(bits.OnesCount64(uint64(^x)))
}

func primMax[P constraints.Unsigned]() P {
	var x P
	return ^x
}

func primCarryingAdd[P constraints.Unsigned](a, b P, carry bool) (P, bool) {
	s := a + b
	c := s < a
	if carry {
		s++
		if s == 0 {
			c = true
		}
	}
	return s, c
}

func primBorrowingSub[P constraints.Unsigned](a, b P, borrow bool) (P, bool) {
	d := a - b
	c := a < b
	if borrow {
		if d == 0 {
			c = true
		}
		d--
	}
	return d, c
}

func primOverflowingMul[P constraints.Unsigned](a, b P) (P, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return P(lo), hi != 0 || lo > uint64(primMax[P]())
}

func primOverflowingPow[P constraints.Unsigned](base P, exp uint32) (acc P, overflow bool) {
	acc = 1
	for exp > 0 {
		var o bool
		if exp&1 == 1 {
			acc, o = primOverflowingMul(acc, base)
			overflow = overflow || o
		}
		exp >>= 1
		if exp > 0 {
			base, o = primOverflowingMul(base, base)
			overflow = overflow || o
		}
	}
	return acc, overflow
}

func primCheckedDiv[P constraints.Unsigned](a, b P) (P, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

func primCheckedRem[P constraints.Unsigned](a, b P) (P, bool) {
	if b == 0 {
		return 0, false
	}
	return a % b, true
}

func primSaturatingAdd[P constraints.Unsigned](a, b P) P {
	if s := a + b; s >= a {
		return s
	}
	return primMax[P]()
}

func primSaturatingSub[P constraints.Unsigned](a, b P) P {
	if a < b {
		return 0
	}
	return a - b
}

func primSaturatingMul[P constraints.Unsigned](a, b P) P {
	if p, o := primOverflowingMul(a, b); !o {
		return p
	}
	return primMax[P]()
}

func primCmp[P constraints.Unsigned](a, b P) int {
	if a > b {
		return 1
	} else if a < b {
		return -1
	}
	return 0
}

// primRotateLeft rotates x left by k bits; negative k rotates right.
func primRotateLeft[P constraints.Unsigned](x P, k int) P {
	w := int(primBits[P]())
	s := uint(((k % w) + w) % w)
	if s == 0 {
		return x
	}
	return x<<s | x>>(uint(w)-s)
}

func primLeadingZeros[P constraints.Unsigned](x P) uint {
	return uint(bits.LeadingZeros64(uint64(x))) - (64 - primBits[P]())
}

func primTrailingZeros[P constraints.Unsigned](x P) uint {
	if x == 0 {
		return primBits[P]()
	}
	return uint(bits.TrailingZeros64(uint64(x)))
}

func primOnesCount[P constraints.Unsigned](x P) uint {
	return uint(bits.OnesCount64(uint64(x)))
}

func primReverseBits[P constraints.Unsigned](x P) P {
	return P(bits.Reverse64(uint64(x)) >> (64 - primBits[P]()))
}

func primSwapBytes[P constraints.Unsigned](x P) P {
	return P(bits.ReverseBytes64(uint64(x)) >> (64 - primBits[P]()))
}

// primToBE converts x from host order to big-endian order. The conversion is
// its own inverse, so it also serves FromBE.
func primToBE[P constraints.Unsigned](x P) P {
	if hostLittleEndian {
		return primSwapBytes(x)
	}
	return x
}

func primToLE[P constraints.Unsigned](x P) P {
	if hostLittleEndian {
		return x
	}
	return primSwapBytes(x)
}
