package num

import "strconv"

// U16 is a 16-bit limb.
type U16 uint16

func (u U16) Bits() uint          { return 16 }
func (u U16) One() U16            { return 1 }
func (u U16) Max() U16            { return primMax[U16]() }
func (u U16) IsZero() bool        { return u == 0 }
func (u U16) IsMax() bool         { return u == primMax[U16]() }
func (u U16) IsOdd() bool         { return u&1 == 1 }
func (u U16) Cmp(n U16) int       { return primCmp(u, n) }
func (u U16) String() string      { return strconv.FormatUint(uint64(u), 10) }
func (u U16) AsU128() U128        { return U128{lo: uint64(u)} }
func (u U16) FromU128(v U128) U16 { return U16(v.lo) }

func (u U16) CarryingAdd(n U16, carry bool) (U16, bool)   { return primCarryingAdd(u, n, carry) }
func (u U16) BorrowingSub(n U16, borrow bool) (U16, bool) { return primBorrowingSub(u, n, borrow) }

func (u U16) WrappingAdd(n U16) U16            { return u + n }
func (u U16) WrappingSub(n U16) U16            { return u - n }
func (u U16) WrappingMul(n U16) U16            { return u * n }
func (u U16) WrappingDiv(n U16) U16            { return u / n }
func (u U16) WrappingRem(n U16) U16            { return u % n }
func (u U16) OverflowingAdd(n U16) (U16, bool) { return primCarryingAdd(u, n, false) }
func (u U16) OverflowingSub(n U16) (U16, bool) { return primBorrowingSub(u, n, false) }
func (u U16) OverflowingMul(n U16) (U16, bool) { return primOverflowingMul(u, n) }

func (u U16) OverflowingPow(exp uint32) (U16, bool) { return primOverflowingPow(u, exp) }

func (u U16) WrappingPow(exp uint32) U16 {
	p, _ := primOverflowingPow(u, exp)
	return p
}

func (u U16) CheckedAdd(n U16) (U16, bool) {
	s, o := primCarryingAdd(u, n, false)
	return s, !o
}

func (u U16) CheckedSub(n U16) (U16, bool) {
	d, o := primBorrowingSub(u, n, false)
	return d, !o
}

func (u U16) CheckedMul(n U16) (U16, bool) {
	p, o := primOverflowingMul(u, n)
	return p, !o
}

func (u U16) CheckedPow(exp uint32) (U16, bool) {
	p, o := primOverflowingPow(u, exp)
	return p, !o
}

func (u U16) CheckedDiv(n U16) (U16, bool) { return primCheckedDiv(u, n) }
func (u U16) CheckedRem(n U16) (U16, bool) { return primCheckedRem(u, n) }

func (u U16) SaturatingAdd(n U16) U16 { return primSaturatingAdd(u, n) }
func (u U16) SaturatingSub(n U16) U16 { return primSaturatingSub(u, n) }
func (u U16) SaturatingMul(n U16) U16 { return primSaturatingMul(u, n) }
func (u U16) SaturatingDiv(n U16) U16 { return u / n }

func (u U16) And(n U16) U16         { return u & n }
func (u U16) Or(n U16) U16          { return u | n }
func (u U16) Xor(n U16) U16         { return u ^ n }
func (u U16) Not() U16              { return ^u }
func (u U16) Lsh(n uint) U16        { return u << n }
func (u U16) Rsh(n uint) U16        { return u >> n }
func (u U16) RotateLeft(k int) U16  { return primRotateLeft(u, k) }
func (u U16) RotateRight(k int) U16 { return primRotateLeft(u, -k) }
func (u U16) OnesCount() uint       { return primOnesCount(u) }
func (u U16) ZerosCount() uint      { return 16 - primOnesCount(u) }
func (u U16) LeadingZeros() uint    { return primLeadingZeros(u) }
func (u U16) TrailingZeros() uint   { return primTrailingZeros(u) }
func (u U16) LeadingOnes() uint     { return primLeadingZeros(^u) }
func (u U16) TrailingOnes() uint    { return primTrailingZeros(^u) }
func (u U16) ReverseBits() U16      { return primReverseBits(u) }
func (u U16) SwapBytes() U16        { return primSwapBytes(u) }
func (u U16) ToBE() U16             { return primToBE(u) }
func (u U16) FromBE() U16           { return primToBE(u) }
func (u U16) ToLE() U16             { return primToLE(u) }
func (u U16) FromLE() U16           { return primToLE(u) }
