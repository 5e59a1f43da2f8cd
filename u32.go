package num

import "strconv"

// U32 is a 32-bit limb.
type U32 uint32

func (u U32) Bits() uint          { return 32 }
func (u U32) One() U32            { return 1 }
func (u U32) Max() U32            { return primMax[U32]() }
func (u U32) IsZero() bool        { return u == 0 }
func (u U32) IsMax() bool         { return u == primMax[U32]() }
func (u U32) IsOdd() bool         { return u&1 == 1 }
func (u U32) Cmp(n U32) int       { return primCmp(u, n) }
func (u U32) String() string      { return strconv.FormatUint(uint64(u), 10) }
func (u U32) AsU128() U128        { return U128{lo: uint64(u)} }
func (u U32) FromU128(v U128) U32 { return U32(v.lo) }

func (u U32) CarryingAdd(n U32, carry bool) (U32, bool)   { return primCarryingAdd(u, n, carry) }
func (u U32) BorrowingSub(n U32, borrow bool) (U32, bool) { return primBorrowingSub(u, n, borrow) }

func (u U32) WrappingAdd(n U32) U32            { return u + n }
func (u U32) WrappingSub(n U32) U32            { return u - n }
func (u U32) WrappingMul(n U32) U32            { return u * n }
func (u U32) WrappingDiv(n U32) U32            { return u / n }
func (u U32) WrappingRem(n U32) U32            { return u % n }
func (u U32) OverflowingAdd(n U32) (U32, bool) { return primCarryingAdd(u, n, false) }
func (u U32) OverflowingSub(n U32) (U32, bool) { return primBorrowingSub(u, n, false) }
func (u U32) OverflowingMul(n U32) (U32, bool) { return primOverflowingMul(u, n) }

func (u U32) OverflowingPow(exp uint32) (U32, bool) { return primOverflowingPow(u, exp) }

func (u U32) WrappingPow(exp uint32) U32 {
	p, _ := primOverflowingPow(u, exp)
	return p
}

func (u U32) CheckedAdd(n U32) (U32, bool) {
	s, o := primCarryingAdd(u, n, false)
	return s, !o
}

func (u U32) CheckedSub(n U32) (U32, bool) {
	d, o := primBorrowingSub(u, n, false)
	return d, !o
}

func (u U32) CheckedMul(n U32) (U32, bool) {
	p, o := primOverflowingMul(u, n)
	return p, !o
}

func (u U32) CheckedPow(exp uint32) (U32, bool) {
	p, o := primOverflowingPow(u, exp)
	return p, !o
}

func (u U32) CheckedDiv(n U32) (U32, bool) { return primCheckedDiv(u, n) }
func (u U32) CheckedRem(n U32) (U32, bool) { return primCheckedRem(u, n) }

func (u U32) SaturatingAdd(n U32) U32 { return primSaturatingAdd(u, n) }
func (u U32) SaturatingSub(n U32) U32 { return primSaturatingSub(u, n) }
func (u U32) SaturatingMul(n U32) U32 { return primSaturatingMul(u, n) }
func (u U32) SaturatingDiv(n U32) U32 { return u / n }

func (u U32) And(n U32) U32         { return u & n }
func (u U32) Or(n U32) U32          { return u | n }
func (u U32) Xor(n U32) U32         { return u ^ n }
func (u U32) Not() U32              { return ^u }
func (u U32) Lsh(n uint) U32        { return u << n }
func (u U32) Rsh(n uint) U32        { return u >> n }
func (u U32) RotateLeft(k int) U32  { return primRotateLeft(u, k) }
func (u U32) RotateRight(k int) U32 { return primRotateLeft(u, -k) }
func (u U32) OnesCount() uint       { return primOnesCount(u) }
func (u U32) ZerosCount() uint      { return 32 - primOnesCount(u) }
func (u U32) LeadingZeros() uint    { return primLeadingZeros(u) }
func (u U32) TrailingZeros() uint   { return primTrailingZeros(u) }
func (u U32) LeadingOnes() uint     { return primLeadingZeros(^u) }
func (u U32) TrailingOnes() uint    { return primTrailingZeros(^u) }
func (u U32) ReverseBits() U32      { return primReverseBits(u) }
func (u U32) SwapBytes() U32        { return primSwapBytes(u) }
func (u U32) ToBE() U32             { return primToBE(u) }
func (u U32) FromBE() U32           { return primToBE(u) }
func (u U32) ToLE() U32             { return primToLE(u) }
func (u U32) FromLE() U32           { return primToLE(u) }
