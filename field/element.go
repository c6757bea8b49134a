package field

import (
	"strconv"

	"golang.org/x/xerrors"
)

// Element is a value of a finite field. The zero value is not usable; build
// elements through a Field.
//
// Add, Sub, Mul and Neg panic when the operands come from different fields.
// The checked methods on Field return ErrFieldMismatch instead.
type Element struct {
	field *Field
	value int
}

// Field returns the field the element belongs to.
func (e Element) Field() *Field {
	return e.field
}

// Value returns the integer representation of the element in [0, q).
func (e Element) Value() int {
	return e.value
}

// IsZero returns true for the additive identity.
func (e Element) IsZero() bool {
	return e.value == 0
}

// IsOne returns true for the multiplicative identity.
func (e Element) IsOne() bool {
	return e.value == 1
}

// Equal reports whether both elements have the same value in structurally
// equal fields.
func (e Element) Equal(b Element) bool {
	return e.value == b.value && e.field.Equal(b.field)
}

// SameField reports whether b can be combined with e.
func (e Element) SameField(b Element) bool {
	return e.field.Equal(b.field)
}

// Add returns e + b.
func (e Element) Add(b Element) Element {
	e.mustMatch(b)
	return Element{field: e.field, value: e.field.add(e.value, b.value)}
}

// Sub returns e - b.
func (e Element) Sub(b Element) Element {
	e.mustMatch(b)
	return Element{field: e.field, value: e.field.add(e.value, e.field.neg(b.value))}
}

// Mul returns e * b.
func (e Element) Mul(b Element) Element {
	e.mustMatch(b)
	return Element{field: e.field, value: e.field.mul(e.value, b.value)}
}

// Neg returns -e.
func (e Element) Neg() Element {
	return Element{field: e.field, value: e.field.neg(e.value)}
}

// Inverse returns 1/e.
func (e Element) Inverse() (Element, error) {
	if e.value == 0 {
		return Element{}, xerrors.Errorf("inverse of zero in %v: %w", e.field, ErrDivisionByZero)
	}
	return Element{field: e.field, value: e.field.inv(e.value)}, nil
}

// Div returns e / b.
func (e Element) Div(b Element) (Element, error) {
	e.mustMatch(b)
	inv, err := b.Inverse()
	if err != nil {
		return Element{}, err
	}
	return e.Mul(inv), nil
}

// Pow returns e^n. Negative exponents are only defined for nonzero e.
func (e Element) Pow(n int) (Element, error) {
	if e.value == 0 {
		switch {
		case n < 0:
			return Element{}, xerrors.Errorf("zero to the power %d: %w", n, ErrDivisionByZero)
		case n == 0:
			return e.field.One(), nil
		default:
			return e, nil
		}
	}
	order := e.field.order - 1
	exp := (e.field.logTable[e.value] * (n % order)) % order
	if exp < 0 {
		exp += order
	}
	return Element{field: e.field, value: e.field.expTable[exp]}, nil
}

func (e Element) String() string {
	return strconv.Itoa(e.value)
}

func (e Element) mustMatch(b Element) {
	if e.field == b.field {
		return
	}
	if !e.field.Equal(b.field) {
		panic(xerrors.Errorf("%v and %v: %w", e.field, b.field, ErrFieldMismatch))
	}
}
