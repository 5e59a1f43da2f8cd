package num

import "github.com/zeebo/errs"

var (
	// Error wraps parse and decode failures.
	Error = errs.Class("num")

	// ErrIndexOutOfRange is returned by the checked limb accessors, and is the
	// panic value of the unchecked ones, when a limb index is not in [0, N).
	ErrIndexOutOfRange = errs.Class("index out of range")

	// ErrDivisionByZero is the panic value of the unchecked division
	// operations.
	ErrDivisionByZero = errs.Class("division by zero")
)
