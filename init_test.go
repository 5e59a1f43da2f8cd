package num

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"
)

var (
	fuzzIterations   = fuzzDefaultIterations
	fuzzOpsActive    = allFuzzOps
	fuzzShapesActive = allFuzzShapes
	fuzzSeed         int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList
	var shapes StringList

	flag.IntVar(&fuzzIterations, "num.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "num.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "num.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Var(&shapes, "num.fuzzshape", "Fuzz shape (u8x16, u64x4, ...) (can pass multiple)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	if len(shapes) > 0 {
		fuzzShapesActive = nil
		for _, s := range shapes {
			fuzzShapesActive = append(fuzzShapesActive, fuzzShape(s))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)
	log.Println("msfirst:   ", MSFirst)

	code := m.Run()
	os.Exit(code)
}

// bigs parses a big.Int in any base big.Int accepts. Spaces are ignored so
// long hex constants can be grouped.
func bigs(s string) *big.Int {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("num: test string %q invalid", s))
	}
	return b
}

func bigU64(u uint64) *big.Int { return new(big.Int).SetUint64(u) }

// bigWrap returns 2^bits.
func bigWrap(bits uint) *big.Int { return new(big.Int).Lsh(big1, bits) }

// bigMask returns 2^bits - 1.
func bigMask(bits uint) *big.Int {
	m := bigWrap(bits)
	return m.Sub(m, big1)
}

// bigMod reduces b modulo 2^bits into a new big.Int, simulating wraparound in
// either direction.
func bigMod(b *big.Int, bits uint) *big.Int {
	return new(big.Int).And(b, bigMask(bits))
}

func accFromBigInt[T Limb[T], A Array[T]](b *big.Int) MLU[T, A] {
	u, acc := FromBigInt[T, A](b)
	if !acc {
		panic(fmt.Errorf("num: inaccurate conversion to %T in fuzz tester for %s", u, b))
	}
	return u
}

// mlus parses an MLU for a test table, panicking if it does not fit.
func mlus[T Limb[T], A Array[T]](s string) MLU[T, A] {
	return accFromBigInt[T, A](bigs(s))
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

// randomBig returns a random value of up to bits bits, choosing the bit
// length uniformly so that small values are as likely as large ones.
func randomBig(rng *rand.Rand, bits uint) *big.Int {
	if rng == nil {
		rng = globalRNG
	}

	var v = new(big.Int)
	n := rng.Intn(int(bits)+1) - 1 // +1 for "0 bits"
	if n < 0 {
		return v // "-1 bits" == "0"
	}
	v = v.Rand(rng, bigWrap(uint(n)+1))
	v.SetBit(v, n, 1)
	return v
}
