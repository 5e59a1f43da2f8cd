package num

import (
	"fmt"
	"math/big"
)

// FromBigInt creates an MLU from a big.Int. Overflow truncates to the maximum
// value and sets accurate to 'false'. Negative values produce zero and set
// accurate to 'false'.
func FromBigInt[T Limb[T], A Array[T]](v *big.Int) (out MLU[T, A], accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	var z T
	w := z.Bits()
	mask := new(big.Int).Lsh(big1, w)
	mask.Sub(mask, big1)

	var low big.Int
	rest := new(big.Int).Set(v)
	for k := 0; k < len(out.limbs) && rest.Sign() > 0; k++ {
		l, _ := U128FromBigInt(low.And(rest, mask))
		out.put(k, z.FromU128(l))
		rest.Rsh(rest, w)
	}
	if rest.Sign() != 0 {
		return Max[T, A](), false
	}
	return out, true
}

// FromString creates an MLU from a string, accepting any base prefix
// big.Int.SetString does. Overflow truncates to the maximum value and sets
// accurate to 'false'.
func FromString[T Limb[T], A Array[T]](s string) (out MLU[T, A], accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return out, false, Error.New("invalid %d-bit string %q", out.Bits(), s)
	}
	out, accurate = FromBigInt[T, A](b)
	return out, accurate, nil
}

func (u MLU[T, A]) IntoBigInt(b *big.Int) {
	w := limbBits[T]()
	var l big.Int
	b.SetUint64(0)
	for k := len(u.limbs) - 1; k >= 0; k-- {
		b.Lsh(b, w)
		u.at(k).AsU128().IntoBigInt(&l)
		b.Or(b, &l)
	}
}

func (u MLU[T, A]) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsUint64 truncates u to fit in a uint64.
func (u MLU[T, A]) AsUint64() uint64 { return u.low128().lo }

// IsUint64 reports whether u can be represented as a uint64.
func (u MLU[T, A]) IsUint64() bool { return u.BitLen() <= 64 }

func (u MLU[T, A]) String() string {
	if u.IsUint64() {
		return fmt.Sprint(u.AsUint64())
	}
	return u.AsBigInt().String()
}

func (u MLU[T, A]) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u MLU[T, A]) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *MLU[T, A]) UnmarshalText(bts []byte) (err error) {
	v, _, err := FromString[T, A](string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u MLU[T, A]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *MLU[T, A]) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return Error.New("invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, _, err := FromString[T, A](string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalBinary encodes u as exactly Bits()/8 big-endian bytes, whatever the
// physical limb layout.
func (u MLU[T, A]) MarshalBinary() ([]byte, error) {
	lb := int(limbBits[T]() / 8)
	out := make([]byte, 0, len(u.limbs)*lb)
	for k := len(u.limbs) - 1; k >= 0; k-- {
		v := u.at(k).AsU128()
		for i := lb - 1; i >= 0; i-- {
			out = append(out, byte(v.Rsh(uint(i)*8).lo))
		}
	}
	return out, nil
}

// UnmarshalBinary decodes the output of MarshalBinary. The input must be
// exactly Bits()/8 bytes long.
func (u *MLU[T, A]) UnmarshalBinary(data []byte) error {
	var z T
	lb := int(z.Bits() / 8)
	n := len(u.limbs)
	if len(data) != n*lb {
		return Error.New("binary length %d, expected %d", len(data), n*lb)
	}
	for k := 0; k < n; k++ {
		var v U128
		for _, b := range data[(n-1-k)*lb : (n-k)*lb] {
			v = v.Lsh(8).Or(U128From8(b))
		}
		u.put(k, z.FromU128(v))
	}
	u.flags = 0
	return nil
}
