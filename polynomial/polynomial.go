// Package polynomial implements univariate polynomials over a finite field.
package polynomial

import (
	"encoding/binary"
	"fmt"
	"strings"

	"student_25_listdecoding/field"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/xerrors"
)

// Polynomial is an immutable polynomial with coefficients in a finite field,
// stored by ascending degree. Trailing zero coefficients are trimmed so that
// the degree is exact; the zero polynomial has no coefficient and degree -1.
type Polynomial struct {
	field        *field.Field
	coefficients []field.Element
}

// New returns the polynomial c0 + c1 x + c2 x^2 + ... Every coefficient must
// belong to f.
func New(f *field.Field, coefficients ...field.Element) (*Polynomial, error) {
	if f == nil {
		return nil, xerrors.Errorf("nil field: %w", field.ErrInvalidArgument)
	}
	for i, c := range coefficients {
		if !f.Equal(c.Field()) {
			return nil, xerrors.Errorf("coefficient %d: %w", i, field.ErrFieldMismatch)
		}
	}
	return newTrimmed(f, append([]field.Element(nil), coefficients...)), nil
}

// FromInts builds a polynomial from coefficient representations, ascending.
func FromInts(f *field.Field, coefficients ...int) (*Polynomial, error) {
	elements := make([]field.Element, len(coefficients))
	for i, c := range coefficients {
		e, err := f.Element(c)
		if err != nil {
			return nil, xerrors.Errorf("coefficient %d: %w", i, err)
		}
		elements[i] = e
	}
	return newTrimmed(f, elements), nil
}

// Zero returns the zero polynomial of f.
func Zero(f *field.Field) *Polynomial {
	return &Polynomial{field: f}
}

// Monomial returns c x^degree.
func Monomial(c field.Element, degree int) *Polynomial {
	if degree < 0 || c.IsZero() {
		return Zero(c.Field())
	}
	coefficients := make([]field.Element, degree+1)
	for i := range coefficients {
		coefficients[i] = c.Field().Zero()
	}
	coefficients[degree] = c
	return &Polynomial{field: c.Field(), coefficients: coefficients}
}

// newTrimmed takes ownership of coefficients.
func newTrimmed(f *field.Field, coefficients []field.Element) *Polynomial {
	n := len(coefficients)
	for n > 0 && coefficients[n-1].IsZero() {
		n--
	}
	return &Polynomial{field: f, coefficients: coefficients[:n:n]}
}

// Field returns the coefficient field.
func (p *Polynomial) Field() *field.Field {
	return p.field
}

// Degree returns the degree, -1 for the zero polynomial.
func (p *Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// IsZero returns true for the zero polynomial.
func (p *Polynomial) IsZero() bool {
	return len(p.coefficients) == 0
}

// Coefficient returns the coefficient of x^i, zero outside the stored range.
func (p *Polynomial) Coefficient(i int) field.Element {
	if i < 0 || i >= len(p.coefficients) {
		return p.field.Zero()
	}
	return p.coefficients[i]
}

// Coefficients returns a copy of the trimmed coefficients, ascending.
func (p *Polynomial) Coefficients() []field.Element {
	return append([]field.Element(nil), p.coefficients...)
}

// LeadingCoefficient returns the coefficient of the highest degree term.
func (p *Polynomial) LeadingCoefficient() field.Element {
	return p.Coefficient(p.Degree())
}

func (p *Polynomial) check(other *Polynomial) error {
	if other == nil {
		return xerrors.Errorf("nil polynomial: %w", field.ErrInvalidArgument)
	}
	if !p.field.Equal(other.field) {
		return xerrors.Errorf("%v and %v: %w", p.field, other.field, field.ErrFieldMismatch)
	}
	return nil
}

// Add returns p + other.
func (p *Polynomial) Add(other *Polynomial) (*Polynomial, error) {
	if err := p.check(other); err != nil {
		return nil, err
	}
	return p.combine(other, field.Element.Add), nil
}

// Sub returns p - other.
func (p *Polynomial) Sub(other *Polynomial) (*Polynomial, error) {
	if err := p.check(other); err != nil {
		return nil, err
	}
	return p.combine(other, field.Element.Sub), nil
}

func (p *Polynomial) combine(other *Polynomial, op func(a, b field.Element) field.Element) *Polynomial {
	size := max(len(p.coefficients), len(other.coefficients))
	res := make([]field.Element, size)
	for i := range res {
		res[i] = op(p.Coefficient(i), other.Coefficient(i))
	}
	return newTrimmed(p.field, res)
}

// Mul returns p * other.
func (p *Polynomial) Mul(other *Polynomial) (*Polynomial, error) {
	if err := p.check(other); err != nil {
		return nil, err
	}
	if p.IsZero() || other.IsZero() {
		return Zero(p.field), nil
	}
	res := make([]field.Element, len(p.coefficients)+len(other.coefficients)-1)
	for i := range res {
		res[i] = p.field.Zero()
	}
	for i, a := range p.coefficients {
		if a.IsZero() {
			continue
		}
		for j, b := range other.coefficients {
			res[i+j] = res[i+j].Add(a.Mul(b))
		}
	}
	return newTrimmed(p.field, res), nil
}

// Scale returns c * p.
func (p *Polynomial) Scale(c field.Element) (*Polynomial, error) {
	if !p.field.Equal(c.Field()) {
		return nil, xerrors.Errorf("scalar of %v: %w", c.Field(), field.ErrFieldMismatch)
	}
	res := make([]field.Element, len(p.coefficients))
	for i, a := range p.coefficients {
		res[i] = a.Mul(c)
	}
	return newTrimmed(p.field, res), nil
}

// DivMod returns the quotient and remainder of the euclidean division of p
// by divisor.
func (p *Polynomial) DivMod(divisor *Polynomial) (*Polynomial, *Polynomial, error) {
	if err := p.check(divisor); err != nil {
		return nil, nil, err
	}
	if divisor.IsZero() {
		return nil, nil, xerrors.Errorf("division by the zero polynomial: %w", field.ErrDivisionByZero)
	}
	if p.Degree() < divisor.Degree() {
		return Zero(p.field), p, nil
	}

	invLead, err := divisor.LeadingCoefficient().Inverse()
	if err != nil {
		return nil, nil, err
	}
	rem := append([]field.Element(nil), p.coefficients...)
	quot := make([]field.Element, p.Degree()-divisor.Degree()+1)
	for i := range quot {
		quot[i] = p.field.Zero()
	}

	dd := divisor.Degree()
	for i := len(rem) - 1; i >= dd; i-- {
		if rem[i].IsZero() {
			continue
		}
		factor := rem[i].Mul(invLead)
		quot[i-dd] = factor
		for j, c := range divisor.coefficients {
			rem[i-dd+j] = rem[i-dd+j].Sub(factor.Mul(c))
		}
	}
	return newTrimmed(p.field, quot), newTrimmed(p.field, rem), nil
}

// Evaluate returns p(x) using Horner's method.
func (p *Polynomial) Evaluate(x field.Element) (field.Element, error) {
	if !p.field.Equal(x.Field()) {
		return field.Element{}, xerrors.Errorf("point of %v: %w", x.Field(), field.ErrFieldMismatch)
	}
	res := p.field.Zero()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		res = res.Mul(x).Add(p.coefficients[i])
	}
	return res, nil
}

// Shift multiplies p by x^k. A negative k divides by x^-k and drops the
// low-order terms that do not divide.
func (p *Polynomial) Shift(k int) *Polynomial {
	if p.IsZero() || k == 0 {
		return p
	}
	if k < 0 {
		if -k >= len(p.coefficients) {
			return Zero(p.field)
		}
		return newTrimmed(p.field, append([]field.Element(nil), p.coefficients[-k:]...))
	}
	res := make([]field.Element, len(p.coefficients)+k)
	for i := 0; i < k; i++ {
		res[i] = p.field.Zero()
	}
	copy(res[k:], p.coefficients)
	return newTrimmed(p.field, res)
}

// RaiseVariableDegree returns p(x^d).
func (p *Polynomial) RaiseVariableDegree(d int) (*Polynomial, error) {
	if d < 1 {
		return nil, xerrors.Errorf("variable degree %d: %w", d, field.ErrInvalidArgument)
	}
	if p.IsZero() || d == 1 {
		return p, nil
	}
	res := make([]field.Element, p.Degree()*d+1)
	for i := range res {
		res[i] = p.field.Zero()
	}
	for i, c := range p.coefficients {
		res[i*d] = c
	}
	return newTrimmed(p.field, res), nil
}

// Roots returns every x with p(x) = 0 by scanning the whole field. The zero
// polynomial has every element as a root.
func (p *Polynomial) Roots() []field.Element {
	roots := make([]field.Element, 0)
	for _, x := range p.field.Enumerate() {
		v, _ := p.Evaluate(x)
		if v.IsZero() {
			roots = append(roots, x)
		}
	}
	return roots
}

// Equal reports whether both polynomials have structurally equal fields and
// the same coefficients.
func (p *Polynomial) Equal(other *Polynomial) bool {
	if other == nil || !p.field.Equal(other.field) {
		return false
	}
	if len(p.coefficients) != len(other.coefficients) {
		return false
	}
	for i, c := range p.coefficients {
		if c.Value() != other.coefficients[i].Value() {
			return false
		}
	}
	return true
}

// Hash combines the field structure and the coefficients. Equal polynomials
// have equal hashes.
func (p *Polynomial) Hash() uint64 {
	d := xxhash.New()
	buf := make([]byte, 4)
	write := func(v int) {
		binary.BigEndian.PutUint32(buf, uint32(v))
		_, _ = d.Write(buf)
	}
	write(p.field.Order())
	for _, c := range p.field.DefiningPolynomial() {
		write(c)
	}
	write(len(p.coefficients))
	for _, c := range p.coefficients {
		write(c.Value())
	}
	return d.Sum64()
}

func (p *Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	terms := make([]string, 0, len(p.coefficients))
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		c := p.coefficients[i]
		if c.IsZero() {
			continue
		}
		switch {
		case i == 0:
			terms = append(terms, c.String())
		case c.IsOne() && i == 1:
			terms = append(terms, "x")
		case c.IsOne():
			terms = append(terms, fmt.Sprintf("x^%d", i))
		case i == 1:
			terms = append(terms, fmt.Sprintf("%sx", c))
		default:
			terms = append(terms, fmt.Sprintf("%sx^%d", c, i))
		}
	}
	return strings.Join(terms, " + ")
}
