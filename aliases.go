package num

// Common fixed-capacity shapes on 64-bit limbs.
type (
	U256  = MLU[U64, [4]U64]
	U512  = MLU[U64, [8]U64]
	U1024 = MLU[U64, [16]U64]
	U2048 = MLU[U64, [32]U64]
	U4096 = MLU[U64, [64]U64]
)

func U256From64(v uint64) U256   { return FromUint64[U64, [4]U64](v) }
func U512From64(v uint64) U512   { return FromUint64[U64, [8]U64](v) }
func U1024From64(v uint64) U1024 { return FromUint64[U64, [16]U64](v) }
func U2048From64(v uint64) U2048 { return FromUint64[U64, [32]U64](v) }
func U4096From64(v uint64) U4096 { return FromUint64[U64, [64]U64](v) }

// U256From128 widens a U128 into a U256.
func U256From128(v U128) U256 { return FromLimb[U64, [4]U64](v) }
