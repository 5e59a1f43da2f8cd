package num

import "strconv"

// U8 is an 8-bit limb.
type U8 uint8

func (u U8) Bits() uint         { return 8 }
func (u U8) One() U8            { return 1 }
func (u U8) Max() U8            { return primMax[U8]() }
func (u U8) IsZero() bool       { return u == 0 }
func (u U8) IsMax() bool        { return u == primMax[U8]() }
func (u U8) IsOdd() bool        { return u&1 == 1 }
func (u U8) Cmp(n U8) int       { return primCmp(u, n) }
func (u U8) String() string     { return strconv.FormatUint(uint64(u), 10) }
func (u U8) AsU128() U128       { return U128{lo: uint64(u)} }
func (u U8) FromU128(v U128) U8 { return U8(v.lo) }

func (u U8) CarryingAdd(n U8, carry bool) (U8, bool)   { return primCarryingAdd(u, n, carry) }
func (u U8) BorrowingSub(n U8, borrow bool) (U8, bool) { return primBorrowingSub(u, n, borrow) }

func (u U8) WrappingAdd(n U8) U8            { return u + n }
func (u U8) WrappingSub(n U8) U8            { return u - n }
func (u U8) WrappingMul(n U8) U8            { return u * n }
func (u U8) WrappingDiv(n U8) U8            { return u / n }
func (u U8) WrappingRem(n U8) U8            { return u % n }
func (u U8) OverflowingAdd(n U8) (U8, bool) { return primCarryingAdd(u, n, false) }
func (u U8) OverflowingSub(n U8) (U8, bool) { return primBorrowingSub(u, n, false) }
func (u U8) OverflowingMul(n U8) (U8, bool) { return primOverflowingMul(u, n) }

func (u U8) OverflowingPow(exp uint32) (U8, bool) { return primOverflowingPow(u, exp) }

func (u U8) WrappingPow(exp uint32) U8 {
	p, _ := primOverflowingPow(u, exp)
	return p
}

func (u U8) CheckedAdd(n U8) (U8, bool) {
	s, o := primCarryingAdd(u, n, false)
	return s, !o
}

func (u U8) CheckedSub(n U8) (U8, bool) {
	d, o := primBorrowingSub(u, n, false)
	return d, !o
}

func (u U8) CheckedMul(n U8) (U8, bool) {
	p, o := primOverflowingMul(u, n)
	return p, !o
}

func (u U8) CheckedPow(exp uint32) (U8, bool) {
	p, o := primOverflowingPow(u, exp)
	return p, !o
}

func (u U8) CheckedDiv(n U8) (U8, bool) { return primCheckedDiv(u, n) }
func (u U8) CheckedRem(n U8) (U8, bool) { return primCheckedRem(u, n) }

func (u U8) SaturatingAdd(n U8) U8 { return primSaturatingAdd(u, n) }
func (u U8) SaturatingSub(n U8) U8 { return primSaturatingSub(u, n) }
func (u U8) SaturatingMul(n U8) U8 { return primSaturatingMul(u, n) }
func (u U8) SaturatingDiv(n U8) U8 { return u / n }

func (u U8) And(n U8) U8          { return u & n }
func (u U8) Or(n U8) U8           { return u | n }
func (u U8) Xor(n U8) U8          { return u ^ n }
func (u U8) Not() U8              { return ^u }
func (u U8) Lsh(n uint) U8        { return u << n }
func (u U8) Rsh(n uint) U8        { return u >> n }
func (u U8) RotateLeft(k int) U8  { return primRotateLeft(u, k) }
func (u U8) RotateRight(k int) U8 { return primRotateLeft(u, -k) }
func (u U8) OnesCount() uint      { return primOnesCount(u) }
func (u U8) ZerosCount() uint     { return 8 - primOnesCount(u) }
func (u U8) LeadingZeros() uint   { return primLeadingZeros(u) }
func (u U8) TrailingZeros() uint  { return primTrailingZeros(u) }
func (u U8) LeadingOnes() uint    { return primLeadingZeros(^u) }
func (u U8) TrailingOnes() uint   { return primTrailingZeros(^u) }
func (u U8) ReverseBits() U8      { return primReverseBits(u) }
func (u U8) SwapBytes() U8        { return primSwapBytes(u) }
func (u U8) ToBE() U8             { return primToBE(u) }
func (u U8) FromBE() U8           { return primToBE(u) }
func (u U8) ToLE() U8             { return primToLE(u) }
func (u U8) FromLE() U8           { return primToLE(u) }
