package num

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1

	intSize = 32 << (^uint(0) >> 63)
)

var (
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	zeroU128 U128

	big1 = new(big.Int).SetInt64(1)
)
