package num

// shape tags which interpretation of a shared slot is live.
type shape uint8

const (
	shapeSrc shape = iota
	shapeDes
)

// SharedValue holds one value that can be read as either a destination limb
// of type D or a source limb of type S.
//
// Only one interpretation is live at a time. Reading through the other one
// converts explicitly via the 128-bit canonical integer: a narrower reading
// keeps the least significant bits, a wider reading is zero-extended.
type SharedValue[D Limb[D], S Limb[S]] struct {
	live shape
	des  D
	src  S
}

// NewSharedValue creates a SharedValue whose source interpretation is live.
func NewSharedValue[D Limb[D], S Limb[S]](s S) SharedValue[D, S] {
	return SharedValue[D, S]{live: shapeSrc, src: s}
}

// SharedValueFromDes creates a SharedValue whose destination interpretation
// is live.
func SharedValueFromDes[D Limb[D], S Limb[S]](d D) SharedValue[D, S] {
	return SharedValue[D, S]{live: shapeDes, des: d}
}

func (v SharedValue[D, S]) IsSrcLive() bool { return v.live == shapeSrc }

// Des returns the value read as a D.
func (v SharedValue[D, S]) Des() D {
	if v.live == shapeDes {
		return v.des
	}
	var d D
	return d.FromU128(v.src.AsU128())
}

// Src returns the value read as an S.
func (v SharedValue[D, S]) Src() S {
	if v.live == shapeSrc {
		return v.src
	}
	var s S
	return s.FromU128(v.des.AsU128())
}

func (v *SharedValue[D, S]) SetDes(d D) {
	var s S
	v.live, v.des, v.src = shapeDes, d, s
}

func (v *SharedValue[D, S]) SetSrc(s S) {
	var d D
	v.live, v.des, v.src = shapeSrc, d, s
}

// Chunk returns the i-th D-wide chunk of the value read as an S, i.e.
// (src >> (i * D.Bits())) truncated to D. ok is false once the chunk would
// start past the width of S; the last chunk for which ok is true is the one
// holding the most significant source bits.
func (v SharedValue[D, S]) Chunk(i uint) (chunk D, ok bool) {
	var d D
	var s S
	dw, sw := d.Bits(), s.Bits()
	if i >= (sw+dw-1)/dw {
		return d, false
	}
	return d.FromU128(v.Src().AsU128().Rsh(i * dw)), true
}

// Chunks returns the number of D-wide chunks Chunk will return for S.
func (v SharedValue[D, S]) Chunks() uint {
	var d D
	var s S
	return (s.Bits() + d.Bits() - 1) / d.Bits()
}
