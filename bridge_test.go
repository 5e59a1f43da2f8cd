package num

import (
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestConvertWiden(t *testing.T) {
	tt := assert.WrapTB(t)

	u := mlus[U8, [5]U8]("0x0102030405")
	w, ok := Convert[U32, [2]U32](u)
	tt.MustAssert(ok)
	tt.MustEqual(u.String(), w.String())
	tt.MustEqual(U32(0x02030405), w.at(0))
	tt.MustEqual(U32(0x01), w.at(1))

	wide, ok := Convert[U128, [2]U128](u)
	tt.MustAssert(ok)
	tt.MustEqual(u.String(), wide.String())
	tt.MustAssert(wide.at(1).IsZero())

	u.flags = Overflow
	w, _ = Convert[U32, [2]U32](u)
	tt.MustEqual(Flags(0), w.Flags())
}

func TestConvertNarrow(t *testing.T) {
	tt := assert.WrapTB(t)

	u := mlus[U64, [2]U64]("0x0000000000000000 00000000deadbeef")
	n, ok := Convert[U16, [2]U16](u)
	tt.MustAssert(ok)
	tt.MustEqual("deadbeef", n.AsBigInt().Text(16))

	u = mlus[U64, [2]U64]("0x0000000000000001 00000000deadbeef")
	n, ok = Convert[U16, [2]U16](u)
	tt.MustAssert(!ok)
	tt.MustEqual(uint64(0xdeadbeef), n.AsUint64())

	// A nonzero bit straddling the boundary of a destination that is not a
	// whole number of source limbs.
	s := mlus[U8, [3]U8]("0x010000")
	h, ok := Convert[U16, [1]U16](s)
	tt.MustAssert(!ok)
	tt.MustAssert(h.IsZero())

	s = mlus[U8, [3]U8]("0x00ffff")
	h, ok = Convert[U16, [1]U16](s)
	tt.MustAssert(ok)
	tt.MustEqual(U16(0xffff), h.at(0))

	p := mlus[U32, [1]U32]("0x00012345")
	q, ok := Convert[U16, [1]U16](p)
	tt.MustAssert(!ok)
	tt.MustEqual(U16(0x2345), q.at(0))
}

func TestConvertRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(fuzzSeed))

	for i := 0; i < 200; i++ {
		u := Rand[U64, [3]U64](rng)
		s := u.String()

		a, ok := Convert[U8, [24]U8](u)
		tt.MustAssert(ok)
		tt.MustEqual(s, a.String())

		b, ok := Convert[U16, [12]U16](a)
		tt.MustAssert(ok)
		tt.MustEqual(s, b.String())

		c, ok := Convert[U128, [2]U128](b)
		tt.MustAssert(ok)
		tt.MustEqual(s, c.String())

		d, ok := Convert[U32, [6]U32](c)
		tt.MustAssert(ok)
		tt.MustEqual(s, d.String())

		back, ok := Convert[U64, [3]U64](d)
		tt.MustAssert(ok)
		tt.MustEqual(u, back)

		// Narrowing keeps the low bits.
		lo, ok := Convert[U32, [3]U32](u)
		tt.MustEqual(u.BitLen() <= 96, ok)
		tt.MustEqual(bigMod(u.AsBigInt(), 96).String(), lo.String())
	}
}

func TestSharedArrays(t *testing.T) {
	tt := assert.WrapTB(t)

	src := mlus[U8, [4]U8]("0xaabbccdd").Limbs()
	a := NewSharedArrays[U16, [2]U16, U8, [4]U8](src)
	tt.MustAssert(a.IsSrcLive())
	tt.MustAssert(a.Fits())
	tt.MustAssert(a.Lossless())
	tt.MustEqual(src, a.Src())

	des := a.Des()
	tt.MustEqual(U16(0xccdd), des[phys(2, 0)])
	tt.MustEqual(U16(0xaabb), des[phys(2, 1)])

	a.SetDes(des)
	tt.MustAssert(!a.IsSrcLive())
	tt.MustEqual(src, a.Src())

	var d2 [2]U16
	d2[phys(2, 0)] = 0x1234
	a.SetDes(d2)
	tt.MustEqual("1234", FromLimbs[U8, [4]U8](a.Src()).AsBigInt().Text(16))

	a.SetSrc(src)
	tt.MustAssert(a.IsSrcLive())
	tt.MustEqual(des, a.Des())

	// A narrower destination does not fit.
	n := NewSharedArrays[U8, [2]U8, U32, [1]U32]([1]U32{0x0000ffff})
	tt.MustAssert(!n.Fits())
	tt.MustAssert(n.Lossless())
	n.SetSrc([1]U32{0x00010000})
	tt.MustAssert(!n.Lossless())
	tt.MustEqual([2]U8{}, n.Des())

	// Reading back through the wider side of a des-live pair is always
	// lossless.
	w := SharedArraysFromDes[U8, [2]U8, U32, [1]U32]([2]U8{0xff, 0xff})
	tt.MustAssert(w.Lossless())
	tt.MustEqual([1]U32{0xffff}, w.Src())
}
