package control

import "github.com/zeebo/errs"

// Error is the error class for control block failures.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when a read does not apply to the current
// block (e.g. asking a Null block for its data).
var ErrInvalidOperation = Error.New("invalid operation")
