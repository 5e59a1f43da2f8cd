/*
Package num provides fixed-capacity multi-limb unsigned integers (MLU), built
from an array of fixed-width unsigned limbs, with carry-propagating arithmetic
across the limbs.

An MLU is parameterised by its limb type and its limb array. The array length
fixes the capacity at compile time:

	type U256 = MLU[U64, [4]U64]
	type Tiny = MLU[U8, [2]U8] // 16 bits

MLU values are value types; all operations return new values, except for the
*Assign methods, which update the receiver. Arithmetic wraps modulo 2^Bits().

Simple example:

	u1 := FromUint64[U64, [4]U64](math.MaxUint64)
	u2 := FromUint64[U64, [4]U64](math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

Limbs implement the Limb contract. U8, U16, U32 and U64 wrap the Go unsigned
primitives and U128 is a 128-bit struct; any of them may be used as the limb
of an MLU.

Every result carries a Flags status register describing only the operation
that produced it. Operations come in several families that differ only in
how they report a result that does not fit:

	u.Add(n)            // modular; result has Overflow set if it wrapped
	u.OverflowingAdd(n) // modular result and a bool
	u.CheckedAdd(n)     // ok == false if the sum does not fit
	u.SaturatingAdd(n)  // clamps to Max

The physical order of the limbs inside the array is least significant first,
unless the package is built with the mlu_msfirst tag. Numeric behaviour is the
same either way; only Limb, SetLimb, Limbs and FromLimbs expose the layout.

SharedValue and SharedArrays reinterpret a limb, or an array of limbs, as limbs
of another width, and Convert moves an MLU between shapes:

	wide := FromUint64[U64, [2]U64](0x0102)
	narrow, accurate := Convert[U8, [16]U8](wide)

MLU supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- encoding.BinaryMarshaler
	- encoding.BinaryUnmarshaler

*/
package num
