package num

// SharedArrays holds one multi-limb value that can be read either as a limb
// array DA of D limbs or as a limb array SA of S limbs.
//
// As with SharedValue, only one interpretation is live. Reading through the
// other one repacks the limbs: the numeric value is preserved when the target
// is at least as wide in bits as the live array, extra target limbs are zero.
// When the target is narrower, the least significant bits are kept and the
// rest are discarded.
type SharedArrays[D Limb[D], DA Array[D], S Limb[S], SA Array[S]] struct {
	live shape
	des  DA
	src  SA
}

func NewSharedArrays[D Limb[D], DA Array[D], S Limb[S], SA Array[S]](src SA) SharedArrays[D, DA, S, SA] {
	return SharedArrays[D, DA, S, SA]{live: shapeSrc, src: src}
}

func SharedArraysFromDes[D Limb[D], DA Array[D], S Limb[S], SA Array[S]](des DA) SharedArrays[D, DA, S, SA] {
	return SharedArrays[D, DA, S, SA]{live: shapeDes, des: des}
}

func (a SharedArrays[D, DA, S, SA]) IsSrcLive() bool { return a.live == shapeSrc }

// Des returns the value as an array of D limbs.
func (a SharedArrays[D, DA, S, SA]) Des() DA {
	if a.live == shapeDes {
		return a.des
	}
	out, _ := repack[D, DA, S, SA](a.src)
	return out
}

// Src returns the value as an array of S limbs.
func (a SharedArrays[D, DA, S, SA]) Src() SA {
	if a.live == shapeSrc {
		return a.src
	}
	out, _ := repack[S, SA, D, DA](a.des)
	return out
}

func (a *SharedArrays[D, DA, S, SA]) SetDes(des DA) {
	var src SA
	a.live, a.des, a.src = shapeDes, des, src
}

func (a *SharedArrays[D, DA, S, SA]) SetSrc(src SA) {
	var des DA
	a.live, a.des, a.src = shapeSrc, des, src
}

// Fits reports whether the destination array holds at least as many bits as
// the source array. If it does, reading through either side never loses
// information held by the source.
func (a SharedArrays[D, DA, S, SA]) Fits() bool {
	var des DA
	var src SA
	return uint(len(des))*limbBits[D]() >= uint(len(src))*limbBits[S]()
}

// Lossless reports whether reading the live value through the other
// interpretation keeps every nonzero bit.
func (a SharedArrays[D, DA, S, SA]) Lossless() bool {
	if a.live == shapeSrc {
		_, ok := repack[D, DA, S, SA](a.src)
		return ok
	}
	_, ok := repack[S, SA, D, DA](a.des)
	return ok
}

// Convert re-expresses u as an MLU of a different limb width and count.
// accurate is false if nonzero bits of u did not fit and were discarded. The
// result carries no flags.
func Convert[D Limb[D], DA Array[D], S Limb[S], SA Array[S]](u MLU[S, SA]) (out MLU[D, DA], accurate bool) {
	out.limbs, accurate = repack[D, DA, S, SA](u.limbs)
	return out, accurate
}

// repack copies the value held in src into an array of D limbs, walking both
// arrays in significance order. lossless is false if any nonzero source bit
// lies at or beyond the capacity of the destination.
func repack[D Limb[D], DA Array[D], S Limb[S], SA Array[S]](src SA) (dst DA, lossless bool) {
	var zd D
	dw, sw := limbBits[D](), limbBits[S]()
	nd, ns := len(dst), len(src)

	for k := 0; k < nd; k++ {
		bit := uint(k) * dw
		j := int(bit / sw)
		if j >= ns {
			break
		}
		v := src[phys(ns, j)].AsU128().Rsh(bit % sw)
		for got := sw - bit%sw; got < dw && j+1 < ns; got += sw {
			j++
			v = v.Or(src[phys(ns, j)].AsU128().Lsh(got))
		}
		dst[phys(nd, k)] = zd.FromU128(v)
	}

	capBits := uint(nd) * dw
	for j := ns - 1; j >= 0; j-- {
		lo := uint(j) * sw
		if lo+sw <= capBits {
			break
		}
		var keep uint
		if capBits > lo {
			keep = capBits - lo
		}
		if !src[phys(ns, j)].AsU128().Rsh(keep).IsZero() {
			return dst, false
		}
	}
	return dst, true
}
