package num

import (
	"math/rand"
	"testing"

	"github.com/holiman/uint256"
	"github.com/shabbyrobe/golib/assert"
)

// These tests check U256 against github.com/holiman/uint256, whose Int is a
// little-endian [4]uint64 with wrapping semantics.

func toHoliman(u U256) *uint256.Int {
	var x uint256.Int
	for k := 0; k < 4; k++ {
		x[k] = uint64(u.at(k))
	}
	return &x
}

func fromHoliman(x *uint256.Int) (u U256) {
	for k := 0; k < 4; k++ {
		u.put(k, U64(x[k]))
	}
	return u
}

// randU256 returns a U256 with a random bit length, so that both sides of
// every overflow boundary get hit. The shift's flags are dropped.
func randU256(rng *rand.Rand) U256 {
	u := Rand[U64, [4]U64](rng)
	return u.Rsh(rng.Intn(257)).withFlags(0)
}

func TestU256AgainstHoliman(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(fuzzSeed))

	iterations := 2000
	if testing.Short() {
		iterations = 200
	}

	for i := 0; i < iterations; i++ {
		a, b := randU256(rng), randU256(rng)
		ha, hb := toHoliman(a), toHoliman(b)
		tt.MustEqual(a, fromHoliman(ha))

		{
			r, o := new(uint256.Int).AddOverflow(ha, hb)
			v := a.Add(b)
			tt.MustEqual(fromHoliman(r), v.withFlags(0), "%s + %s", a, b)
			tt.MustEqual(o, v.IsOverflow())
		}

		{
			r, o := new(uint256.Int).SubOverflow(ha, hb)
			v := a.Sub(b)
			tt.MustEqual(fromHoliman(r), v.withFlags(0), "%s - %s", a, b)
			tt.MustEqual(o, v.IsUnderflow())
		}

		{
			r, o := new(uint256.Int).MulOverflow(ha, hb)
			v := a.Mul(b)
			tt.MustEqual(fromHoliman(r), v.withFlags(0), "%s * %s", a, b)
			tt.MustEqual(o, v.IsOverflow())
		}

		if !b.IsZero() {
			q, r := a.QuoRem(b)
			tt.MustEqual(fromHoliman(new(uint256.Int).Div(ha, hb)), q, "%s / %s", a, b)
			tt.MustEqual(fromHoliman(new(uint256.Int).Mod(ha, hb)), r, "%s %% %s", a, b)
		}

		{
			n := uint(rng.Intn(300))
			tt.MustEqual(fromHoliman(new(uint256.Int).Lsh(ha, n)), a.Lsh(int(n)).withFlags(0), "%s << %d", a, n)
			tt.MustEqual(fromHoliman(new(uint256.Int).Rsh(ha, n)), a.Rsh(int(n)).withFlags(0), "%s >> %d", a, n)
		}

		{
			exp := uint64(rng.Intn(40))
			r := new(uint256.Int).Exp(ha, uint256.NewInt(exp))
			tt.MustEqual(fromHoliman(r), a.WrappingPow(exp).withFlags(0), "%s ** %d", a, exp)
		}

		tt.MustEqual(fromHoliman(new(uint256.Int).And(ha, hb)), a.And(b))
		tt.MustEqual(fromHoliman(new(uint256.Int).Or(ha, hb)), a.Or(b))
		tt.MustEqual(fromHoliman(new(uint256.Int).Xor(ha, hb)), a.Xor(b))
		tt.MustEqual(fromHoliman(new(uint256.Int).Not(ha)), a.Not())

		tt.MustEqual(ha.Cmp(hb), a.Cmp(b))
		tt.MustEqual(ha.BitLen(), int(a.BitLen()))
		tt.MustEqual(ha.IsUint64(), a.IsUint64())
		tt.MustEqual(ha.Dec(), a.String())

		// The binary encoding is the same big-endian 32 bytes.
		bts, err := a.MarshalBinary()
		tt.MustOK(err)
		b32 := ha.Bytes32()
		tt.MustEqual(b32[:], bts)
		tt.MustEqual(ha, new(uint256.Int).SetBytes32(bts))
	}
}
