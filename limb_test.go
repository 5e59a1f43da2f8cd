package num

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

// randLimb returns a random limb, biased towards the values that tend to find
// carry bugs.
func randLimb[T Limb[T]](rng *rand.Rand) T {
	var z T
	v := U128{hi: rng.Uint64(), lo: rng.Uint64()}
	switch rng.Intn(8) {
	case 0:
		return z
	case 1:
		return z.Max()
	case 2:
		return z.One()
	case 3:
		v = v.Rsh(uint(rng.Intn(128)))
	}
	return z.FromU128(v)
}

func limbBig[T Limb[T]](v T) *big.Int { return v.AsU128().AsBigInt() }

func bigReverseBits(b *big.Int, w uint) *big.Int {
	out := new(big.Int)
	for i := 0; i < int(w); i++ {
		if b.Bit(i) == 1 {
			out.SetBit(out, int(w)-1-i, 1)
		}
	}
	return out
}

func bigSwapBytes(b *big.Int, w uint) *big.Int {
	bts := b.FillBytes(make([]byte, w/8))
	for i, j := 0, len(bts)-1; i < j; i, j = i+1, j-1 {
		bts[i], bts[j] = bts[j], bts[i]
	}
	return new(big.Int).SetBytes(bts)
}

func testLimbContract[T Limb[T]](t *testing.T, iterations int) {
	tt := assert.WrapTB(t)

	var z T
	w := z.Bits()
	wrap := bigWrap(w)
	rng := rand.New(rand.NewSource(fuzzSeed))

	eq := func(expected *big.Int, v T, op string, a, b T) {
		t.Helper()
		tt.MustEqual(expected.String(), v.String(), "%s %s %s", a, op, b)
	}

	tt.MustAssert(z.IsZero())
	tt.MustAssert(z.One().IsOdd())
	tt.MustAssert(z.Max().IsMax())
	tt.MustEqual(bigMask(w).String(), z.Max().String())
	tt.MustEqual(w, z.Max().OnesCount())
	tt.MustEqual(w, z.ZerosCount())

	for i := 0; i < iterations; i++ {
		a, b := randLimb[T](rng), randLimb[T](rng)
		ba, bb := limbBig(a), limbBig(b)
		carry := rng.Intn(2) == 1

		tt.MustEqual(ba.Cmp(bb), a.Cmp(b))
		tt.MustEqual(ba.Bit(0) == 1, a.IsOdd())
		tt.MustEqual(ba.String(), a.String())

		{ // add
			sum := new(big.Int).Add(ba, bb)
			over := sum.Cmp(wrap) >= 0
			wrapped := bigMod(sum, w)

			eq(wrapped, a.WrappingAdd(b), "+", a, b)
			r, o := a.OverflowingAdd(b)
			eq(wrapped, r, "+", a, b)
			tt.MustEqual(over, o)
			_, ok := a.CheckedAdd(b)
			tt.MustEqual(!over, ok)
			if over {
				tt.MustEqual(z.Max(), a.SaturatingAdd(b))
			} else {
				eq(sum, a.SaturatingAdd(b), "+", a, b)
			}

			if carry {
				sum.Add(sum, big1)
			}
			r, o = a.CarryingAdd(b, carry)
			eq(bigMod(sum, w), r, "+c", a, b)
			tt.MustEqual(sum.Cmp(wrap) >= 0, o)
		}

		{ // sub
			diff := new(big.Int).Sub(ba, bb)
			under := diff.Sign() < 0
			wrapped := bigMod(diff, w)

			eq(wrapped, a.WrappingSub(b), "-", a, b)
			r, o := a.OverflowingSub(b)
			eq(wrapped, r, "-", a, b)
			tt.MustEqual(under, o)
			_, ok := a.CheckedSub(b)
			tt.MustEqual(!under, ok)
			if under {
				tt.MustEqual(z, a.SaturatingSub(b))
			} else {
				eq(diff, a.SaturatingSub(b), "-", a, b)
			}

			if carry {
				diff.Sub(diff, big1)
			}
			r, o = a.BorrowingSub(b, carry)
			eq(bigMod(diff, w), r, "-b", a, b)
			tt.MustEqual(diff.Sign() < 0, o)
		}

		{ // mul
			prod := new(big.Int).Mul(ba, bb)
			over := prod.Cmp(wrap) >= 0
			eq(bigMod(prod, w), a.WrappingMul(b), "*", a, b)
			r, o := a.OverflowingMul(b)
			eq(bigMod(prod, w), r, "*", a, b)
			tt.MustEqual(over, o)
			_, ok := a.CheckedMul(b)
			tt.MustEqual(!over, ok)
			if over {
				tt.MustEqual(z.Max(), a.SaturatingMul(b))
			}
		}

		{ // div
			q, qok := a.CheckedDiv(b)
			r, rok := a.CheckedRem(b)
			if b.IsZero() {
				tt.MustAssert(!qok && !rok)
			} else {
				tt.MustAssert(qok && rok)
				eq(new(big.Int).Quo(ba, bb), q, "/", a, b)
				eq(new(big.Int).Rem(ba, bb), r, "%", a, b)
				tt.MustEqual(q, a.WrappingDiv(b))
				tt.MustEqual(r, a.WrappingRem(b))
				tt.MustEqual(q, a.SaturatingDiv(b))
			}
		}

		{ // pow
			exp := uint32(rng.Intn(12))
			pow := new(big.Int).Exp(ba, big.NewInt(int64(exp)), nil)
			r, o := a.OverflowingPow(exp)
			eq(bigMod(pow, w), r, "**", a, b)
			eq(bigMod(pow, w), a.WrappingPow(exp), "**", a, b)
			tt.MustEqual(pow.Cmp(wrap) >= 0, o, "%s ** %d", a, exp)
			_, ok := a.CheckedPow(exp)
			tt.MustEqual(!o, ok)
		}

		{ // bits
			eq(new(big.Int).And(ba, bb), a.And(b), "&", a, b)
			eq(new(big.Int).Or(ba, bb), a.Or(b), "|", a, b)
			eq(new(big.Int).Xor(ba, bb), a.Xor(b), "^", a, b)
			eq(new(big.Int).Xor(ba, bigMask(w)), a.Not(), "^", a, a)

			n := uint(rng.Intn(int(w)))
			eq(bigMod(new(big.Int).Lsh(ba, n), w), a.Lsh(n), "<<", a, z.FromU128(U128From64(uint64(n))))
			eq(new(big.Int).Rsh(ba, n), a.Rsh(n), ">>", a, z.FromU128(U128From64(uint64(n))))

			rot := new(big.Int).Lsh(ba, n)
			rot.Or(rot, new(big.Int).Rsh(ba, w-n))
			eq(bigMod(rot, w), a.RotateLeft(int(n)), "rotl", a, a)
			tt.MustEqual(a, a.RotateLeft(int(n)).RotateRight(int(n)))
			tt.MustEqual(a.RotateLeft(int(n)), a.RotateRight(-int(n)))

			tt.MustEqual(w-uint(ba.BitLen()), a.LeadingZeros())
			tt.MustEqual(a.Not().LeadingZeros(), a.LeadingOnes())
			tt.MustEqual(a.Not().TrailingZeros(), a.TrailingOnes())
			if a.IsZero() {
				tt.MustEqual(w, a.TrailingZeros())
			} else {
				tt.MustEqual(ba.TrailingZeroBits(), a.TrailingZeros())
			}
			tt.MustEqual(w, a.OnesCount()+a.ZerosCount())

			eq(bigReverseBits(ba, w), a.ReverseBits(), "reverse", a, a)
			eq(bigSwapBytes(ba, w), a.SwapBytes(), "swap", a, a)
			tt.MustEqual(a, a.ToBE().FromBE())
			tt.MustEqual(a, a.ToLE().FromLE())
			if hostLittleEndian {
				tt.MustEqual(a.SwapBytes(), a.ToBE())
				tt.MustEqual(a, a.ToLE())
			} else {
				tt.MustEqual(a, a.ToBE())
			}
		}
	}
}

func TestLimbContract(t *testing.T) {
	t.Run("u8", func(t *testing.T) { testLimbContract[U8](t, 2000) })
	t.Run("u16", func(t *testing.T) { testLimbContract[U16](t, 2000) })
	t.Run("u32", func(t *testing.T) { testLimbContract[U32](t, 2000) })
	t.Run("u64", func(t *testing.T) { testLimbContract[U64](t, 2000) })
	t.Run("u128", func(t *testing.T) { testLimbContract[U128](t, 2000) })
}

func TestLimbCarryingAddChain(t *testing.T) {
	// Two-limb values over 8-bit limbs, added low limb first.
	for idx, tc := range []struct {
		ah, al, bh, bl U8
		rh, rl         U8
		carry          bool
	}{
		{100, 101, 100, 200, 201, 45, false},
		{201, 45, 100, 200, 45, 245, true},
		{0, 255, 0, 1, 1, 0, false},
		{255, 255, 0, 1, 0, 0, true},
	} {
		t.Run(fmt.Sprintf("%d/(%d,%d)+(%d,%d)", idx, tc.ah, tc.al, tc.bh, tc.bl), func(t *testing.T) {
			tt := assert.WrapTB(t)
			rl, c := tc.al.CarryingAdd(tc.bl, false)
			rh, c := tc.ah.CarryingAdd(tc.bh, c)
			tt.MustEqual(tc.rl, rl)
			tt.MustEqual(tc.rh, rh)
			tt.MustEqual(tc.carry, c)
		})
	}
}

func TestLimbWrappingIsModular(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(U8(255), U8(255-55).WrappingAdd(55))
	tt.MustEqual(U8(0), U8(255).WrappingAdd(1))
	tt.MustEqual(U16(0), U16(0).Max().WrappingAdd(1))
	tt.MustEqual(U32(0), U32(0).Max().WrappingAdd(1))
	tt.MustEqual(U64(0), U64(0).Max().WrappingAdd(1))
	tt.MustEqual(U128{}, MaxU128.WrappingAdd(U128From64(1)))
	tt.MustEqual(MaxU128, MaxU128.Sub(U128From64(55)).WrappingAdd(U128From64(55)))
}

func TestLimbDivisionByZeroPanics(t *testing.T) {
	for _, tc := range []struct {
		name string
		fn   func()
	}{
		{"u8", func() { U8(1).WrappingDiv(0) }},
		{"u16", func() { U16(1).WrappingRem(0) }},
		{"u32", func() { U32(1).SaturatingDiv(0) }},
		{"u64", func() { U64(1).WrappingDiv(0) }},
		{"u128", func() { U128From64(1).WrappingRem(U128{}) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tt := assert.WrapTB(t)
			defer func() {
				tt.MustAssert(recover() != nil)
			}()
			tc.fn()
		})
	}
}

func TestLimbFromU128Truncates(t *testing.T) {
	tt := assert.WrapTB(t)
	v := U128FromRaw(0x0102030405060708, 0x090a0b0c0d0e0f10)
	tt.MustEqual(U8(0x10), U8(0).FromU128(v))
	tt.MustEqual(U16(0x0f10), U16(0).FromU128(v))
	tt.MustEqual(U32(0x0d0e0f10), U32(0).FromU128(v))
	tt.MustEqual(U64(0x090a0b0c0d0e0f10), U64(0).FromU128(v))
	tt.MustEqual(v, U128{}.FromU128(v))
	tt.MustEqual(U128From64(0xff), U8(0xff).AsU128())
}
