package num

// Array is the set of limb arrays an MLU can be built on. The array length is
// the limb count N of the MLU, so capacity is fixed at compile time.
type Array[T any] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[12]T | ~[16]T | ~[24]T | ~[32]T | ~[48]T | ~[64]T |
		~[96]T | ~[128]T | ~[256]T | ~[512]T
}

// MLU is a fixed-capacity multi-limb unsigned integer of len(A) limbs of
// type T, i.e. of len(A)*T.Bits() bits. Arithmetic wraps modulo
// 2^(len(A)*T.Bits()).
//
// MLU is a value type: the limbs live inline in the struct, and methods with
// value receivers return new values. Each result carries its own Flags,
// reflecting only the operation that produced it. Methods named *Assign
// update the receiver in place.
type MLU[T Limb[T], A Array[T]] struct {
	limbs A
	flags Flags
}

func Zero[T Limb[T], A Array[T]]() (out MLU[T, A]) { return out }

func One[T Limb[T], A Array[T]]() (out MLU[T, A]) {
	var z T
	out.put(0, z.One())
	return out
}

// Min returns the smallest value representable by MLU[T, A], which is zero.
func Min[T Limb[T], A Array[T]]() (out MLU[T, A]) { return out }

// Max returns the largest value representable by MLU[T, A].
func Max[T Limb[T], A Array[T]]() (out MLU[T, A]) {
	var z T
	for k := 0; k < len(out.limbs); k++ {
		out.limbs[k] = z.Max()
	}
	return out
}

// FromLimb creates an MLU from a single limb of any width. Source bits that
// do not fit are discarded.
func FromLimb[T Limb[T], A Array[T], S Limb[S]](v S) (out MLU[T, A]) {
	sv := NewSharedValue[T](v)
	n := len(out.limbs)
	for k := 0; k < n; k++ {
		c, ok := sv.Chunk(uint(k))
		if !ok {
			break
		}
		out.limbs[phys(n, k)] = c
	}
	return out
}

func FromUint64[T Limb[T], A Array[T]](v uint64) MLU[T, A] { return FromLimb[T, A](U64(v)) }
func FromUint32[T Limb[T], A Array[T]](v uint32) MLU[T, A] { return FromLimb[T, A](U32(v)) }
func FromUint16[T Limb[T], A Array[T]](v uint16) MLU[T, A] { return FromLimb[T, A](U16(v)) }
func FromUint8[T Limb[T], A Array[T]](v uint8) MLU[T, A]   { return FromLimb[T, A](U8(v)) }

// FromLimbs creates an MLU from its physical limb array. See MSFirst for the
// order of the limbs.
func FromLimbs[T Limb[T], A Array[T]](limbs A) MLU[T, A] {
	return MLU[T, A]{limbs: limbs}
}

// Rand fills every limb of an MLU from an external source.
func Rand[T Limb[T], A Array[T]](source RandSource) (out MLU[T, A]) {
	var z T
	for k := 0; k < len(out.limbs); k++ {
		out.limbs[k] = z.FromU128(RandU128(source))
	}
	return out
}

// at returns the limb of significance k.
func (u *MLU[T, A]) at(k int) T { return u.limbs[phys(len(u.limbs), k)] }

// put sets the limb of significance k.
func (u *MLU[T, A]) put(k int, v T) { u.limbs[phys(len(u.limbs), k)] = v }

// Len returns the number of limbs, N.
func (u MLU[T, A]) Len() int { return len(u.limbs) }

// Bits returns the capacity of u in bits.
func (u MLU[T, A]) Bits() uint { return uint(len(u.limbs)) * limbBits[T]() }

// Limbs returns a copy of the physical limb array.
func (u MLU[T, A]) Limbs() A { return u.limbs }

// Limb returns the limb at physical index i. It panics with an
// ErrIndexOutOfRange error if i is not in [0, N).
func (u MLU[T, A]) Limb(i int) T {
	if uint(i) >= uint(len(u.limbs)) {
		panic(ErrIndexOutOfRange.New("limb %d of %d", i, len(u.limbs)))
	}
	return u.limbs[i]
}

// LimbChecked returns the limb at physical index i, or an ErrIndexOutOfRange
// error if i is not in [0, N).
func (u MLU[T, A]) LimbChecked(i int) (T, error) {
	if uint(i) >= uint(len(u.limbs)) {
		var z T
		return z, ErrIndexOutOfRange.New("limb %d of %d", i, len(u.limbs))
	}
	return u.limbs[i], nil
}

// SetLimb sets the limb at physical index i. It panics with an
// ErrIndexOutOfRange error if i is not in [0, N).
func (u *MLU[T, A]) SetLimb(i int, v T) {
	if uint(i) >= uint(len(u.limbs)) {
		panic(ErrIndexOutOfRange.New("limb %d of %d", i, len(u.limbs)))
	}
	u.limbs[i] = v
}

func (u *MLU[T, A]) SetLimbChecked(i int, v T) error {
	if uint(i) >= uint(len(u.limbs)) {
		return ErrIndexOutOfRange.New("limb %d of %d", i, len(u.limbs))
	}
	u.limbs[i] = v
	return nil
}

// SetLimbs replaces the whole physical limb array. Flags are left alone.
func (u *MLU[T, A]) SetLimbs(limbs A) { u.limbs = limbs }

func (u MLU[T, A]) Flags() Flags      { return u.flags }
func (u MLU[T, A]) IsOverflow() bool  { return u.flags.Has(Overflow) }
func (u MLU[T, A]) IsUnderflow() bool { return u.flags.Has(Underflow) }

func (u *MLU[T, A]) ClearFlags()     { u.flags = 0 }
func (u *MLU[T, A]) ClearOverflow()  { u.flags &^= Overflow }
func (u *MLU[T, A]) ClearUnderflow() { u.flags &^= Underflow }

func (u MLU[T, A]) withFlags(f Flags) MLU[T, A] {
	u.flags = f
	return u
}

func (u MLU[T, A]) IsZero() bool {
	for k := 0; k < len(u.limbs); k++ {
		if !u.limbs[k].IsZero() {
			return false
		}
	}
	return true
}

func (u MLU[T, A]) IsOne() bool {
	if !u.at(0).IsOdd() || !u.at(0).Rsh(1).IsZero() {
		return false
	}
	for k := 1; k < len(u.limbs); k++ {
		if !u.at(k).IsZero() {
			return false
		}
	}
	return true
}

func (u MLU[T, A]) IsMax() bool {
	for k := 0; k < len(u.limbs); k++ {
		if !u.limbs[k].IsMax() {
			return false
		}
	}
	return true
}

func (u MLU[T, A]) IsOdd() bool { return u.at(0).IsOdd() }

// Cmp compares u and n and returns -1 if u < n, 0 if u == n and +1 if u > n.
// Flags are ignored.
func (u MLU[T, A]) Cmp(n MLU[T, A]) int {
	for k := len(u.limbs) - 1; k >= 0; k-- {
		if c := u.at(k).Cmp(n.at(k)); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether u and n hold the same value. Flags are ignored.
func (u MLU[T, A]) Equal(n MLU[T, A]) bool {
	for k := 0; k < len(u.limbs); k++ {
		if u.limbs[k] != n.limbs[k] {
			return false
		}
	}
	return true
}

func (u MLU[T, A]) GreaterThan(n MLU[T, A]) bool      { return u.Cmp(n) > 0 }
func (u MLU[T, A]) GreaterOrEqualTo(n MLU[T, A]) bool { return u.Cmp(n) >= 0 }
func (u MLU[T, A]) LessThan(n MLU[T, A]) bool         { return u.Cmp(n) < 0 }
func (u MLU[T, A]) LessOrEqualTo(n MLU[T, A]) bool    { return u.Cmp(n) <= 0 }

func (u MLU[T, A]) LeadingZeros() uint {
	var lz uint
	for k := len(u.limbs) - 1; k >= 0; k-- {
		l := u.at(k)
		if !l.IsZero() {
			return lz + l.LeadingZeros()
		}
		lz += l.Bits()
	}
	return lz
}

func (u MLU[T, A]) TrailingZeros() uint {
	var tz uint
	for k := 0; k < len(u.limbs); k++ {
		l := u.at(k)
		if !l.IsZero() {
			return tz + l.TrailingZeros()
		}
		tz += l.Bits()
	}
	return tz
}

// BitLen returns the number of bits required to represent u; zero for zero.
func (u MLU[T, A]) BitLen() uint { return u.Bits() - u.LeadingZeros() }

func (u MLU[T, A]) OnesCount() uint {
	var c uint
	for k := 0; k < len(u.limbs); k++ {
		c += u.limbs[k].OnesCount()
	}
	return c
}

// Bit returns the value of bit i of u. Bits past the capacity read as false.
func (u MLU[T, A]) Bit(i uint) bool {
	w := limbBits[T]()
	k := i / w
	if k >= uint(len(u.limbs)) {
		return false
	}
	return u.at(int(k)).Rsh(i % w).IsOdd()
}

// SetBit returns u with bit i set to v. It panics if i is not less than
// u.Bits().
func (u MLU[T, A]) SetBit(i uint, v bool) MLU[T, A] {
	w := limbBits[T]()
	k := i / w
	if k >= uint(len(u.limbs)) {
		panic(ErrIndexOutOfRange.New("bit %d of %d", i, u.Bits()))
	}
	var z T
	mask := z.One().Lsh(i % w)
	l := u.at(int(k))
	if v {
		l = l.Or(mask)
	} else {
		l = l.And(mask.Not())
	}
	u.put(int(k), l)
	return u
}

func (u MLU[T, A]) And(n MLU[T, A]) MLU[T, A] {
	for k := 0; k < len(u.limbs); k++ {
		u.limbs[k] = u.limbs[k].And(n.limbs[k])
	}
	return u.withFlags(0)
}

func (u MLU[T, A]) AndNot(n MLU[T, A]) MLU[T, A] {
	for k := 0; k < len(u.limbs); k++ {
		u.limbs[k] = u.limbs[k].And(n.limbs[k].Not())
	}
	return u.withFlags(0)
}

func (u MLU[T, A]) Or(n MLU[T, A]) MLU[T, A] {
	for k := 0; k < len(u.limbs); k++ {
		u.limbs[k] = u.limbs[k].Or(n.limbs[k])
	}
	return u.withFlags(0)
}

func (u MLU[T, A]) Xor(n MLU[T, A]) MLU[T, A] {
	for k := 0; k < len(u.limbs); k++ {
		u.limbs[k] = u.limbs[k].Xor(n.limbs[k])
	}
	return u.withFlags(0)
}

func (u MLU[T, A]) Not() MLU[T, A] {
	for k := 0; k < len(u.limbs); k++ {
		u.limbs[k] = u.limbs[k].Not()
	}
	return u.withFlags(0)
}

// low128 returns the least significant 128 bits of u.
func (u MLU[T, A]) low128() (acc U128) {
	w := limbBits[T]()
	for k := 0; k < len(u.limbs) && uint(k)*w < 128; k++ {
		acc = acc.Or(u.at(k).AsU128().Lsh(uint(k) * w))
	}
	return acc
}
