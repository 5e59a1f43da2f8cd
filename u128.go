package num

import (
	"fmt"
	"math/big"
	"math/bits"
)

// U128 is a 128-bit limb. It is also the canonical integer every other limb
// converts through (see Limb.AsU128).
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{hi: 0, lo: v} }
func U128From32(v uint32) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{hi: 0, lo: uint64(v)} }

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		switch len(words) {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{hi: uint64(words[1]), lo: uint64(words[0])}, true
		default:
			return MaxU128, false
		}

	case 32:
		switch len(words) {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 3:
			return U128{hi: uint64(words[2]), lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 4:
			return U128{
				hi: (uint64(words[3]) << 32) | (uint64(words[2])),
				lo: (uint64(words[1]) << 32) | (uint64(words[0])),
			}, true
		default:
			return MaxU128, false
		}

	default:
		panic("num: unsupported bit size")
	}
}

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

func (u U128) Bits() uint           { return 128 }
func (u U128) One() U128            { return U128{lo: 1} }
func (u U128) Max() U128            { return MaxU128 }
func (u U128) IsZero() bool         { return u == zeroU128 }
func (u U128) IsMax() bool          { return u == MaxU128 }
func (u U128) IsOdd() bool          { return u.lo&1 == 1 }
func (u U128) AsU128() U128         { return u }
func (u U128) FromU128(v U128) U128 { return v }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) String() string {
	if u.hi == 0 {
		return fmt.Sprint(u.lo)
	}
	return u.AsBigInt().String()
}

func (u U128) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u U128) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 2 {
			bits = append(bits, make([]big.Word, 2-ln)...)
		}
		bits = bits[:2]
		bits[0] = big.Word(u.lo)
		bits[1] = big.Word(u.hi)
		b.SetBits(bits)

	case 32:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 4 {
			bits = append(bits, make([]big.Word, 4-ln)...)
		}
		bits = bits[:4]
		bits[0] = big.Word(u.lo & 0xFFFFFFFF)
		bits[1] = big.Word(u.lo >> 32)
		bits[2] = big.Word(u.hi & 0xFFFFFFFF)
		bits[3] = big.Word(u.hi >> 32)
		b.SetBits(bits)

	default:
		b.SetUint64(u.hi)
		b.Lsh(b, 64)
		var lo big.Int
		lo.SetUint64(u.lo)
		b.Add(b, &lo)
	}
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsUint64 truncates the U128 to fit in a uint64.
func (u U128) AsUint64() uint64 { return u.lo }

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool { return u.hi == 0 }

func (u U128) Inc() (v U128) {
	v.lo = u.lo + 1
	v.hi = u.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U128) Dec() (v U128) {
	v.lo = u.lo - 1
	v.hi = u.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

func (u U128) Add(n U128) (v U128) {
	v.lo = u.lo + n.lo
	v.hi = u.hi + n.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U128) Sub(n U128) (v U128) {
	v.lo = u.lo - n.lo
	v.hi = u.hi - n.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

func (u U128) CarryingAdd(n U128, carry bool) (v U128, carryOut bool) {
	var c uint64
	if carry {
		c = 1
	}
	v.lo, c = bits.Add64(u.lo, n.lo, c)
	v.hi, c = bits.Add64(u.hi, n.hi, c)
	return v, c != 0
}

func (u U128) BorrowingSub(n U128, borrow bool) (v U128, borrowOut bool) {
	var b uint64
	if borrow {
		b = 1
	}
	v.lo, b = bits.Sub64(u.lo, n.lo, b)
	v.hi, b = bits.Sub64(u.hi, n.hi, b)
	return v, b != 0
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) And(v U128) (out U128) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

func (u U128) Or(v U128) (out U128) {
	out.hi = u.hi | v.hi
	out.lo = u.lo | v.lo
	return out
}

func (u U128) Xor(v U128) (out U128) {
	out.hi = u.hi ^ v.hi
	out.lo = u.lo ^ v.lo
	return out
}

func (u U128) Not() U128 {
	return U128{hi: ^u.hi, lo: ^u.lo}
}

// Lsh shifts u left by n bits. Shifting by 128 or more yields zero.
func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
		v.lo = 0
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else if n == 64 {
		v.hi = u.lo
		v.lo = 0
	}
	return v
}

// Rsh shifts u right by n bits. Shifting by 128 or more yields zero.
func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
		v.hi = 0
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else if n == 64 {
		v.lo = u.hi
		v.hi = 0
	}
	return v
}

func (u U128) RotateLeft(k int) U128 {
	s := uint(((k % 128) + 128) % 128)
	if s == 0 {
		return u
	}
	return u.Lsh(s).Or(u.Rsh(128 - s))
}

func (u U128) RotateRight(k int) U128 { return u.RotateLeft(-k) }

func (u U128) OnesCount() uint {
	return uint(bits.OnesCount64(u.hi) + bits.OnesCount64(u.lo))
}

func (u U128) ZerosCount() uint { return 128 - u.OnesCount() }

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

func (u U128) LeadingOnes() uint  { return u.Not().LeadingZeros() }
func (u U128) TrailingOnes() uint { return u.Not().TrailingZeros() }

func (u U128) ReverseBits() U128 {
	return U128{hi: bits.Reverse64(u.lo), lo: bits.Reverse64(u.hi)}
}

func (u U128) SwapBytes() U128 {
	return U128{hi: bits.ReverseBytes64(u.lo), lo: bits.ReverseBytes64(u.hi)}
}

func (u U128) ToBE() U128 {
	if hostLittleEndian {
		return u.SwapBytes()
	}
	return u
}

func (u U128) ToLE() U128 {
	if hostLittleEndian {
		return u
	}
	return u.SwapBytes()
}

func (u U128) FromBE() U128 { return u.ToBE() }
func (u U128) FromLE() U128 { return u.ToLE() }

func (u U128) Mul(n U128) (dest U128) {
	hi, lo := bits.Mul64(u.lo, n.lo)
	dest.lo = lo
	dest.hi = hi + u.hi*n.lo + u.lo*n.hi
	return dest
}

func (u U128) WrappingAdd(n U128) U128 { return u.Add(n) }
func (u U128) WrappingSub(n U128) U128 { return u.Sub(n) }
func (u U128) WrappingMul(n U128) U128 { return u.Mul(n) }
func (u U128) WrappingDiv(n U128) U128 { return u.Quo(n) }
func (u U128) WrappingRem(n U128) U128 { return u.Rem(n) }

func (u U128) WrappingPow(exp uint32) U128 {
	p, _ := u.OverflowingPow(exp)
	return p
}

func (u U128) OverflowingAdd(n U128) (U128, bool) { return u.CarryingAdd(n, false) }
func (u U128) OverflowingSub(n U128) (U128, bool) { return u.BorrowingSub(n, false) }

func (u U128) OverflowingMul(n U128) (U128, bool) {
	hi, lo := mul128to256(u, n)
	return lo, !hi.IsZero()
}

func (u U128) OverflowingPow(exp uint32) (acc U128, overflow bool) {
	base := u
	acc = U128{lo: 1}
	for exp > 0 {
		var o bool
		if exp&1 == 1 {
			acc, o = acc.OverflowingMul(base)
			overflow = overflow || o
		}
		exp >>= 1
		if exp > 0 {
			base, o = base.OverflowingMul(base)
			overflow = overflow || o
		}
	}
	return acc, overflow
}

func (u U128) CheckedAdd(n U128) (U128, bool) {
	v, o := u.CarryingAdd(n, false)
	return v, !o
}

func (u U128) CheckedSub(n U128) (U128, bool) {
	v, o := u.BorrowingSub(n, false)
	return v, !o
}

func (u U128) CheckedMul(n U128) (U128, bool) {
	v, o := u.OverflowingMul(n)
	return v, !o
}

func (u U128) CheckedPow(exp uint32) (U128, bool) {
	v, o := u.OverflowingPow(exp)
	return v, !o
}

func (u U128) CheckedDiv(n U128) (U128, bool) {
	if n.IsZero() {
		return U128{}, false
	}
	return u.Quo(n), true
}

func (u U128) CheckedRem(n U128) (U128, bool) {
	if n.IsZero() {
		return U128{}, false
	}
	return u.Rem(n), true
}

func (u U128) SaturatingAdd(n U128) U128 {
	if v, o := u.CarryingAdd(n, false); !o {
		return v
	}
	return MaxU128
}

func (u U128) SaturatingSub(n U128) U128 {
	if v, o := u.BorrowingSub(n, false); !o {
		return v
	}
	return U128{}
}

func (u U128) SaturatingMul(n U128) U128 {
	if v, o := u.OverflowingMul(n); !o {
		return v
	}
	return MaxU128
}

func (u U128) SaturatingDiv(n U128) U128 { return u.Quo(n) }

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs.
func (u U128) Quo(by U128) (q U128) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u U128) Rem(by U128) (r U128) {
	_, r = u.QuoRem(by)
	return r
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.hi == 0 && by.lo == 0 {
		panic("num: u128 division by zero")
	}

	if by.hi == 0 {
		if u.hi < by.lo {
			q.lo, r.lo = bits.Div64(u.hi, u.lo, by.lo)
			return q, r
		}
		q.hi, r.hi = u.hi/by.lo, u.hi%by.lo
		q.lo, r.lo = bits.Div64(r.hi, u.lo, by.lo)
		r.hi = 0
		return q, r
	}

	// Adapted from Warren, Hacker's Delight, divlu2: normalise the divisor,
	// estimate from the top word, then correct by at most one.
	sh := uint(bits.LeadingZeros64(by.hi))
	v1 := by.Lsh(sh)
	u1 := u.Rsh(1)
	tq, _ := bits.Div64(u1.hi, u1.lo, v1.hi)
	tq >>= 63 - sh
	if tq != 0 {
		tq--
	}
	q = U128{lo: tq}
	r = u.Sub(q.Mul(by))
	if r.Cmp(by) >= 0 {
		q = q.Inc()
		r = r.Sub(by)
	}
	return q, r
}

// mul128to256 returns the full 256-bit product of n and by.
func mul128to256(n, by U128) (hi, lo U128) {
	h00, l00 := bits.Mul64(n.lo, by.lo)
	h01, l01 := bits.Mul64(n.lo, by.hi)
	h10, l10 := bits.Mul64(n.hi, by.lo)
	h11, l11 := bits.Mul64(n.hi, by.hi)

	var c1, c2, c3, c4 uint64
	lo.lo = l00
	lo.hi, c1 = bits.Add64(h00, l01, 0)
	lo.hi, c2 = bits.Add64(lo.hi, l10, 0)
	hi.lo, c3 = bits.Add64(h01, h10, c1)
	hi.lo, c4 = bits.Add64(hi.lo, l11, c2)
	hi.hi = h11 + c3 + c4
	return hi, lo
}
