package num

import "fmt"

// Limb is the set of operations every fixed-width unsigned cell of an MLU
// must provide. It is implemented by U8, U16, U32, U64 and U128.
//
// Methods that need no receiver state (One, Max, Bits, FromU128) are still
// methods so that generic code can reach them through the zero value:
//
//	var z T
//	one := z.One()
//
// Wrapping* operations are always modulo 2^Bits(). Checked* operations return
// ok == false instead of a result when the mathematical result is not
// representable. WrappingDiv, WrappingRem and SaturatingDiv panic when the
// divisor is zero.
type Limb[T any] interface {
	comparable
	fmt.Stringer

	Bits() uint
	One() T
	Max() T
	IsZero() bool
	IsMax() bool
	IsOdd() bool
	Cmp(n T) int

	// AsU128 and FromU128 convert to and from the 128-bit canonical integer.
	// FromU128 keeps the low Bits() bits of v.
	AsU128() U128
	FromU128(v U128) T

	CarryingAdd(n T, carry bool) (sum T, carryOut bool)
	BorrowingSub(n T, borrow bool) (diff T, borrowOut bool)

	WrappingAdd(n T) T
	WrappingSub(n T) T
	WrappingMul(n T) T
	WrappingDiv(n T) T
	WrappingRem(n T) T
	WrappingPow(exp uint32) T

	OverflowingAdd(n T) (T, bool)
	OverflowingSub(n T) (T, bool)
	OverflowingMul(n T) (T, bool)
	OverflowingPow(exp uint32) (T, bool)

	CheckedAdd(n T) (T, bool)
	CheckedSub(n T) (T, bool)
	CheckedMul(n T) (T, bool)
	CheckedDiv(n T) (T, bool)
	CheckedRem(n T) (T, bool)
	CheckedPow(exp uint32) (T, bool)

	SaturatingAdd(n T) T
	SaturatingSub(n T) T
	SaturatingMul(n T) T
	SaturatingDiv(n T) T

	And(n T) T
	Or(n T) T
	Xor(n T) T
	Not() T
	Lsh(n uint) T
	Rsh(n uint) T
	RotateLeft(k int) T
	RotateRight(k int) T

	OnesCount() uint
	ZerosCount() uint
	LeadingZeros() uint
	TrailingZeros() uint
	LeadingOnes() uint
	TrailingOnes() uint

	ReverseBits() T
	SwapBytes() T
	ToBE() T
	FromBE() T
	ToLE() T
	FromLE() T
}

// Compile-time checks that every limb satisfies the contract. Limb embeds
// comparable, so it can only be checked through an instantiation.
var (
	_ = limbBits[U8]
	_ = limbBits[U16]
	_ = limbBits[U32]
	_ = limbBits[U64]
	_ = limbBits[U128]
)

// limbBits returns the width of T without needing a value at hand.
func limbBits[T Limb[T]]() uint {
	var z T
	return z.Bits()
}
