package num

import "strings"

// Flags is the status register carried by every MLU. Flags are cleared at the
// start of each arithmetic operation and set only by that operation; they are
// never consulted by arithmetic.
type Flags uint8

const (
	// Overflow is set when a carry survives past the most significant limb,
	// or a left shift pushes a nonzero bit out of range.
	Overflow Flags = 1 << iota

	// Underflow is set when a borrow survives past the most significant limb,
	// or a right shift pushes a nonzero bit out of range.
	Underflow
)

func (f Flags) Has(g Flags) bool { return f&g == g }

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	if f.Has(Overflow) {
		parts = append(parts, "overflow")
	}
	if f.Has(Underflow) {
		parts = append(parts, "underflow")
	}
	return strings.Join(parts, "|")
}
