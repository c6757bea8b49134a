// Package reedsolomon provides Reed-Solomon codes over the finite fields of
// the field package, list decoded with the Guruswami-Sudan decoder, and a
// byte oriented Berlekamp-Welch code used as the unique decoding baseline.
package reedsolomon

import (
	"student_25_listdecoding/field"
	"student_25_listdecoding/listdecoding"
	"student_25_listdecoding/polynomial"

	"golang.org/x/xerrors"
)

// Code is an [n, k] Reed-Solomon code: a message polynomial of degree below k
// is sent as its evaluations at n distinct points.
type Code struct {
	field   *field.Field
	k       int
	points  []field.Element
	decoder *listdecoding.Decoder
}

// NewCode returns the [n, k] code over f evaluated at g^0, ..., g^(n-1) for
// the generator g of f. It requires 1 <= k <= n <= q-1.
func NewCode(f *field.Field, n, k int) (*Code, error) {
	if f == nil {
		return nil, xerrors.Errorf("nil field: %w", field.ErrInvalidArgument)
	}
	if n < 1 || n > f.Order()-1 {
		return nil, xerrors.Errorf("code length %d not in [1, %d]: %w", n, f.Order()-1, field.ErrInvalidArgument)
	}
	points := make([]field.Element, n)
	for i := range points {
		points[i] = f.GeneratorPower(i)
	}
	return NewCodeWithPoints(f, k, points)
}

// NewCodeWithPoints returns the code over f evaluated at the given distinct
// points.
func NewCodeWithPoints(f *field.Field, k int, points []field.Element) (*Code, error) {
	if f == nil {
		return nil, xerrors.Errorf("nil field: %w", field.ErrInvalidArgument)
	}
	if k < 1 || k > len(points) {
		return nil, xerrors.Errorf("message length %d for %d points: %w", k, len(points), field.ErrInvalidArgument)
	}
	seen := make(map[int]struct{}, len(points))
	for _, x := range points {
		if !f.Equal(x.Field()) {
			return nil, xerrors.Errorf("evaluation point %v: %w", x, field.ErrFieldMismatch)
		}
		if _, ok := seen[x.Value()]; ok {
			return nil, xerrors.Errorf("evaluation point %v used twice: %w", x, field.ErrInvalidArgument)
		}
		seen[x.Value()] = struct{}{}
	}
	return &Code{
		field:   f,
		k:       k,
		points:  append([]field.Element(nil), points...),
		decoder: listdecoding.NewDefaultDecoder(),
	}, nil
}

// WithDecoder makes the code decode with d.
func (c *Code) WithDecoder(d *listdecoding.Decoder) *Code {
	c.decoder = d
	return c
}

func (c *Code) Field() *field.Field {
	return c.field
}

// N is the code length
func (c *Code) N() int {
	return len(c.points)
}

// K is the message length
func (c *Code) K() int {
	return c.k
}

func (c *Code) Points() []field.Element {
	return append([]field.Element(nil), c.points...)
}

// UniqueDecodingRadius is the number of errors a unique decoder corrects,
// (n-k)/2.
func (c *Code) UniqueDecodingRadius() int {
	return (c.N() - c.k) / 2
}

// EncodePolynomial returns the codeword of message, whose degree must be
// below k.
func (c *Code) EncodePolynomial(message *polynomial.Polynomial) ([]listdecoding.Point, error) {
	if !c.field.Equal(message.Field()) {
		return nil, xerrors.Errorf("message over %v: %w", message.Field(), field.ErrFieldMismatch)
	}
	if message.Degree() >= c.k {
		return nil, xerrors.Errorf("message of degree %d for k = %d: %w", message.Degree(), c.k, field.ErrInvalidArgument)
	}
	word := make([]listdecoding.Point, len(c.points))
	for i, x := range c.points {
		y, err := message.Evaluate(x)
		if err != nil {
			return nil, err
		}
		word[i] = listdecoding.Point{X: x, Y: y}
	}
	return word, nil
}

// Encode returns the codeword of the message whose coefficients, by
// ascending degree, are the k given symbols.
func (c *Code) Encode(symbols []field.Element) ([]listdecoding.Point, error) {
	if len(symbols) != c.k {
		return nil, xerrors.Errorf("%d symbols for k = %d: %w", len(symbols), c.k, field.ErrInvalidArgument)
	}
	message, err := polynomial.New(c.field, symbols...)
	if err != nil {
		return nil, err
	}
	return c.EncodePolynomial(message)
}

// ListDecode returns every message whose codeword agrees with word on at
// least minCorrectValuesCount positions.
func (c *Code) ListDecode(word []listdecoding.Point, minCorrectValuesCount int) ([]*polynomial.Polynomial, error) {
	return c.decoder.Decode(c.N(), c.k, word, minCorrectValuesCount)
}
