package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a violated precondition (negative or inverted
// range, non-positive count or span). The grid is left untouched.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrWriteRejected indicates a guarded write that was refused: the value was
// nil, or the target lies inside a merged region without being its anchor.
// The grid is left untouched, so callers that accept the lenient behavior can
// ignore it with IgnoreRejected.
var ErrWriteRejected = errors.New("write rejected")

// ErrRegionOverlap indicates two merged regions sharing at least one cell.
var ErrRegionOverlap = errors.New("merged regions overlap")

// ErrAddressOutOfRange indicates a coordinate that has no A1 representation.
var ErrAddressOutOfRange = errors.New("address out of range")

// OpError records the operation and coordinate that failed.
type OpError struct {
	Op  string
	Row int
	Col int
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s at (%d, %d): %v", e.Op, e.Row, e.Col, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func opErr(op string, row, col int, err error) *OpError {
	return &OpError{Op: op, Row: row, Col: col, Err: err}
}

// IgnoreRejected drops ErrWriteRejected and returns any other error as is.
func IgnoreRejected(err error) error {
	if errors.Is(err, ErrWriteRejected) {
		return nil
	}
	return err
}
