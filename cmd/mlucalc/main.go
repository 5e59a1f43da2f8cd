// Command mlucalc evaluates a single binary operation on fixed-capacity
// unsigned integers of a chosen width and limb size.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	num "github.com/piaoyh/cryptocol-sub010"
)

const usage = `Fixed-capacity integer calculator

Usage: mlucalc [flags] <a> <op> <b>

Ops: + - * / % << >> ** cmp

Environment: MLUCALC_BITS, MLUCALC_LIMB, MLUCALC_LOG_LEVEL, MLUCALC_DUMP`

// shape identifies an MLU instantiation by its capacity and limb width.
type shape struct {
	bits, limb uint
}

// outcome is what a calculator returns for display.
type outcome struct {
	Value     string
	Flags     num.Flags
	Limbs     interface{}
	Truncated bool
}

type calcFunc func(a, op, b string) (outcome, error)

var calculators = map[shape]calcFunc{
	{128, 8}:   calc[num.U8, [16]num.U8],
	{128, 16}:  calc[num.U16, [8]num.U16],
	{128, 32}:  calc[num.U32, [4]num.U32],
	{128, 64}:  calc[num.U64, [2]num.U64],
	{128, 128}: calc[num.U128, [1]num.U128],
	{256, 8}:   calc[num.U8, [32]num.U8],
	{256, 16}:  calc[num.U16, [16]num.U16],
	{256, 32}:  calc[num.U32, [8]num.U32],
	{256, 64}:  calc[num.U64, [4]num.U64],
	{256, 128}: calc[num.U128, [2]num.U128],
	{512, 8}:   calc[num.U8, [64]num.U8],
	{512, 16}:  calc[num.U16, [32]num.U16],
	{512, 32}:  calc[num.U32, [16]num.U32],
	{512, 64}:  calc[num.U64, [8]num.U64],
	{512, 128}: calc[num.U128, [4]num.U128],
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out, errOut io.Writer) error {
	cfg, rest, err := parseConfig(args, errOut)
	if isHelpError(err) {
		return nil
	} else if err != nil {
		return err
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: errOut, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()

	if len(rest) != 3 {
		fmt.Fprintln(errOut, usage)
		return fmt.Errorf("expected 3 arguments, found %d", len(rest))
	}

	logger.Debug().
		Uint("bits", cfg.Bits).
		Uint("limb", cfg.Limb).
		Bool("msfirst", num.MSFirst).
		Msg("evaluating")

	res, err := calculators[shape{cfg.Bits, cfg.Limb}](rest[0], rest[1], rest[2])
	if err != nil {
		logger.Error().Err(err).Str("op", rest[1]).Msg("evaluation failed")
		return err
	}
	if res.Truncated {
		logger.Warn().Uint("bits", cfg.Bits).Msg("operand truncated to capacity")
	}
	if res.Flags != 0 {
		logger.Warn().Stringer("flags", res.Flags).Msg("result wrapped")
	}

	fmt.Fprintln(out, res.Value)
	if cfg.Dump {
		spew.Fdump(out, res.Limbs)
	}
	return nil
}

func calc[T num.Limb[T], A num.Array[T]](as, op, bs string) (res outcome, err error) {
	a, accA, err := num.FromString[T, A](as)
	if err != nil {
		return res, err
	}

	var r num.MLU[T, A]
	switch op {
	case "<<", ">>", "**":
		d, err := strconv.ParseInt(bs, 0, 0)
		if err != nil {
			return res, err
		}
		switch op {
		case "<<":
			r = a.Lsh(int(d))
		case ">>":
			r = a.Rsh(int(d))
		case "**":
			if d < 0 {
				return res, fmt.Errorf("negative exponent %d", d)
			}
			r = a.WrappingPow(uint64(d))
		}
		res.Truncated = !accA

	default:
		b, accB, err := num.FromString[T, A](bs)
		if err != nil {
			return res, err
		}
		res.Truncated = !accA || !accB

		switch op {
		case "+":
			r = a.Add(b)
		case "-":
			r = a.Sub(b)
		case "*":
			r = a.Mul(b)
		case "/", "%":
			q, rem, ok := a.CheckedQuoRem(b)
			if !ok {
				return res, fmt.Errorf("%s %s %s: division by zero", as, op, bs)
			}
			r = q
			if op == "%" {
				r = rem
			}
		case "cmp":
			res.Value = strconv.Itoa(a.Cmp(b))
			res.Limbs = a.Limbs()
			return res, nil
		default:
			return res, fmt.Errorf("unknown op %q", op)
		}
	}

	res.Value = r.String()
	res.Flags = r.Flags()
	res.Limbs = r.Limbs()
	return res, nil
}
