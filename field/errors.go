package field

import "golang.org/x/xerrors"

var (
	// ErrInvalidArgument is returned when an input is out of range, empty or
	// otherwise unusable. It is always reported before any computation starts.
	ErrInvalidArgument = xerrors.New("invalid argument")

	// ErrFieldMismatch is returned when the operands of an operation belong to
	// fields that are not structurally equal. It wraps ErrInvalidArgument.
	ErrFieldMismatch = xerrors.Errorf("field mismatch: %w", ErrInvalidArgument)

	// ErrDivisionByZero is returned when inverting the zero element or dividing
	// by a zero polynomial.
	ErrDivisionByZero = xerrors.New("division by zero")
)
