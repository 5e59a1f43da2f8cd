package num

import "strconv"

// U64 is a 64-bit limb.
type U64 uint64

func (u U64) Bits() uint          { return 64 }
func (u U64) One() U64            { return 1 }
func (u U64) Max() U64            { return primMax[U64]() }
func (u U64) IsZero() bool        { return u == 0 }
func (u U64) IsMax() bool         { return u == primMax[U64]() }
func (u U64) IsOdd() bool         { return u&1 == 1 }
func (u U64) Cmp(n U64) int       { return primCmp(u, n) }
func (u U64) String() string      { return strconv.FormatUint(uint64(u), 10) }
func (u U64) AsU128() U128        { return U128{lo: uint64(u)} }
func (u U64) FromU128(v U128) U64 { return U64(v.lo) }

func (u U64) CarryingAdd(n U64, carry bool) (U64, bool)   { return primCarryingAdd(u, n, carry) }
func (u U64) BorrowingSub(n U64, borrow bool) (U64, bool) { return primBorrowingSub(u, n, borrow) }

func (u U64) WrappingAdd(n U64) U64            { return u + n }
func (u U64) WrappingSub(n U64) U64            { return u - n }
func (u U64) WrappingMul(n U64) U64            { return u * n }
func (u U64) WrappingDiv(n U64) U64            { return u / n }
func (u U64) WrappingRem(n U64) U64            { return u % n }
func (u U64) OverflowingAdd(n U64) (U64, bool) { return primCarryingAdd(u, n, false) }
func (u U64) OverflowingSub(n U64) (U64, bool) { return primBorrowingSub(u, n, false) }
func (u U64) OverflowingMul(n U64) (U64, bool) { return primOverflowingMul(u, n) }

func (u U64) OverflowingPow(exp uint32) (U64, bool) { return primOverflowingPow(u, exp) }

func (u U64) WrappingPow(exp uint32) U64 {
	p, _ := primOverflowingPow(u, exp)
	return p
}

func (u U64) CheckedAdd(n U64) (U64, bool) {
	s, o := primCarryingAdd(u, n, false)
	return s, !o
}

func (u U64) CheckedSub(n U64) (U64, bool) {
	d, o := primBorrowingSub(u, n, false)
	return d, !o
}

func (u U64) CheckedMul(n U64) (U64, bool) {
	p, o := primOverflowingMul(u, n)
	return p, !o
}

func (u U64) CheckedPow(exp uint32) (U64, bool) {
	p, o := primOverflowingPow(u, exp)
	return p, !o
}

func (u U64) CheckedDiv(n U64) (U64, bool) { return primCheckedDiv(u, n) }
func (u U64) CheckedRem(n U64) (U64, bool) { return primCheckedRem(u, n) }

func (u U64) SaturatingAdd(n U64) U64 { return primSaturatingAdd(u, n) }
func (u U64) SaturatingSub(n U64) U64 { return primSaturatingSub(u, n) }
func (u U64) SaturatingMul(n U64) U64 { return primSaturatingMul(u, n) }
func (u U64) SaturatingDiv(n U64) U64 { return u / n }

func (u U64) And(n U64) U64         { return u & n }
func (u U64) Or(n U64) U64          { return u | n }
func (u U64) Xor(n U64) U64         { return u ^ n }
func (u U64) Not() U64              { return ^u }
func (u U64) Lsh(n uint) U64        { return u << n }
func (u U64) Rsh(n uint) U64        { return u >> n }
func (u U64) RotateLeft(k int) U64  { return primRotateLeft(u, k) }
func (u U64) RotateRight(k int) U64 { return primRotateLeft(u, -k) }
func (u U64) OnesCount() uint       { return primOnesCount(u) }
func (u U64) ZerosCount() uint      { return 64 - primOnesCount(u) }
func (u U64) LeadingZeros() uint    { return primLeadingZeros(u) }
func (u U64) TrailingZeros() uint   { return primTrailingZeros(u) }
func (u U64) LeadingOnes() uint     { return primLeadingZeros(^u) }
func (u U64) TrailingOnes() uint    { return primTrailingZeros(^u) }
func (u U64) ReverseBits() U64      { return primReverseBits(u) }
func (u U64) SwapBytes() U64        { return primSwapBytes(u) }
func (u U64) ToBE() U64             { return primToBE(u) }
func (u U64) FromBE() U64           { return primToBE(u) }
func (u U64) ToLE() U64             { return primToLE(u) }
func (u U64) FromLE() U64           { return primToLE(u) }
