// Package field implements arithmetic in small finite fields GF(p^m).
//
// Elements are stored as integers in [0, q). For extension fields the integer
// is read in base p: digit i is the coefficient of a^i, where a is a root of
// the field's defining polynomial. Multiplication goes through exp/log tables
// built from a primitive element, which is also the field's generator.
package field

import (
	"fmt"
	"strings"

	"golang.org/x/xerrors"
)

// MaxOrder is the largest field order supported. Tables grow linearly with
// the order and the list decoder scans the whole field when finding roots.
const MaxOrder = 1 << 16

// Field describes a finite field of order q = p^m. It is immutable once
// constructed and meant to be shared by pointer.
type Field struct {
	order          int
	characteristic int
	degree         int
	// ascending coefficients of the monic defining polynomial, nil for m = 1
	definingPolynomial []int

	generator int
	expTable  []int
	logTable  []int
}

// NewPrimeField returns GF(p). It fails if p is not a prime or is too large.
func NewPrimeField(p int) (*Field, error) {
	if p < 2 || p > MaxOrder || !isPrime(p) {
		return nil, xerrors.Errorf("%d is not a supported prime: %w", p, ErrInvalidArgument)
	}
	f := &Field{
		order:          p,
		characteristic: p,
		degree:         1,
	}
	err := f.buildTables()
	if err != nil {
		return nil, err
	}
	return f, nil
}

// NewExtensionField returns GF(p^m) defined by the given monic irreducible
// polynomial, whose coefficients are listed by ascending degree and must
// therefore have length m+1 and end with 1.
func NewExtensionField(p, m int, definingPolynomial []int) (*Field, error) {
	if m == 1 && len(definingPolynomial) == 0 {
		return NewPrimeField(p)
	}
	if p < 2 || !isPrime(p) {
		return nil, xerrors.Errorf("characteristic %d is not a prime: %w", p, ErrInvalidArgument)
	}
	if m < 1 {
		return nil, xerrors.Errorf("extension degree %d: %w", m, ErrInvalidArgument)
	}
	order := 1
	for i := 0; i < m; i++ {
		order *= p
		if order > MaxOrder {
			return nil, xerrors.Errorf("order %d^%d exceeds %d: %w", p, m, MaxOrder, ErrInvalidArgument)
		}
	}
	if len(definingPolynomial) != m+1 || definingPolynomial[m] != 1 {
		return nil, xerrors.Errorf("defining polynomial %v must be monic of degree %d: %w",
			definingPolynomial, m, ErrInvalidArgument)
	}
	for _, c := range definingPolynomial {
		if c < 0 || c >= p {
			return nil, xerrors.Errorf("defining polynomial coefficient %d not in GF(%d): %w",
				c, p, ErrInvalidArgument)
		}
	}
	if !isIrreducible(definingPolynomial, p) {
		return nil, xerrors.Errorf("defining polynomial %v is reducible over GF(%d): %w",
			definingPolynomial, p, ErrInvalidArgument)
	}

	f := &Field{
		order:              order,
		characteristic:     p,
		degree:             m,
		definingPolynomial: append([]int(nil), definingPolynomial...),
	}
	if m == 1 {
		f.definingPolynomial = nil
	}
	err := f.buildTables()
	if err != nil {
		return nil, err
	}
	return f, nil
}

// NewField returns a field of order q. Prime powers get the smallest monic
// irreducible polynomial of the right degree, ordered by the base-p value of
// its lower coefficients.
func NewField(q int) (*Field, error) {
	p, m, ok := primePower(q)
	if !ok || q > MaxOrder {
		return nil, xerrors.Errorf("%d is not a supported prime power: %w", q, ErrInvalidArgument)
	}
	if m == 1 {
		return NewPrimeField(p)
	}
	poly, found := smallestIrreducible(p, m)
	if !found {
		return nil, xerrors.Errorf("no irreducible polynomial of degree %d over GF(%d): %w",
			m, p, ErrInvalidArgument)
	}
	return NewExtensionField(p, m, poly)
}

// buildTables finds the smallest primitive element and fills the exp/log
// tables from it.
func (f *Field) buildTables() error {
	q := f.order
	f.expTable = make([]int, q-1)
	f.logTable = make([]int, q)

	if q == 2 {
		f.generator = 1
		f.expTable[0] = 1
		return nil
	}

	for g := 2; g < q; g++ {
		if !f.fillTables(g) {
			continue
		}
		f.generator = g
		return nil
	}
	return xerrors.Errorf("no primitive element in %s: %w", f, ErrInvalidArgument)
}

// fillTables fills the tables with the powers of g and reports whether g has
// multiplicative order q-1.
func (f *Field) fillTables(g int) bool {
	x := 1
	for i := 0; i < f.order-1; i++ {
		if i > 0 && x == 1 {
			return false
		}
		f.expTable[i] = x
		f.logTable[x] = i
		x = f.slowMul(x, g)
	}
	return x == 1
}

// slowMul multiplies two representations without the tables.
func (f *Field) slowMul(a, b int) int {
	p := f.characteristic
	if f.degree == 1 {
		return a * b % p
	}
	da := f.digits(a)
	db := f.digits(b)
	prod := make([]int, 2*f.degree-1)
	for i, x := range da {
		if x == 0 {
			continue
		}
		for j, y := range db {
			prod[i+j] = (prod[i+j] + x*y) % p
		}
	}
	return f.fromDigits(polyMod(prod, f.definingPolynomial, p))
}

func (f *Field) digits(v int) []int {
	d := make([]int, f.degree)
	for i := range d {
		d[i] = v % f.characteristic
		v /= f.characteristic
	}
	return d
}

func (f *Field) fromDigits(d []int) int {
	v := 0
	for i := len(d) - 1; i >= 0; i-- {
		v = v*f.characteristic + d[i]
	}
	return v
}

// Order returns q, the number of elements.
func (f *Field) Order() int {
	return f.order
}

// Characteristic returns p.
func (f *Field) Characteristic() int {
	return f.characteristic
}

// Degree returns m, the extension degree over the prime subfield.
func (f *Field) Degree() int {
	return f.degree
}

// DefiningPolynomial returns a copy of the defining polynomial coefficients
// (ascending), or nil for a prime field.
func (f *Field) DefiningPolynomial() []int {
	if f.definingPolynomial == nil {
		return nil
	}
	return append([]int(nil), f.definingPolynomial...)
}

// Equal reports whether both fields have the same order and defining
// polynomial, which makes their elements interchangeable.
func (f *Field) Equal(other *Field) bool {
	if f == other {
		return true
	}
	if f == nil || other == nil {
		return false
	}
	if f.order != other.order || f.characteristic != other.characteristic {
		return false
	}
	if len(f.definingPolynomial) != len(other.definingPolynomial) {
		return false
	}
	for i, c := range f.definingPolynomial {
		if other.definingPolynomial[i] != c {
			return false
		}
	}
	return true
}

func (f *Field) String() string {
	if f.degree == 1 {
		return fmt.Sprintf("GF(%d)", f.order)
	}
	terms := make([]string, 0, len(f.definingPolynomial))
	for i := len(f.definingPolynomial) - 1; i >= 0; i-- {
		c := f.definingPolynomial[i]
		switch {
		case c == 0:
			continue
		case i == 0:
			terms = append(terms, fmt.Sprintf("%d", c))
		case c == 1:
			terms = append(terms, fmt.Sprintf("x^%d", i))
		default:
			terms = append(terms, fmt.Sprintf("%dx^%d", c, i))
		}
	}
	return fmt.Sprintf("GF(%d^%d)[%s]", f.characteristic, f.degree, strings.Join(terms, "+"))
}

// IsElement reports whether repr is a valid element representation.
func (f *Field) IsElement(repr int) bool {
	return repr >= 0 && repr < f.order
}

// Element returns the element with the given representation.
func (f *Field) Element(repr int) (Element, error) {
	if !f.IsElement(repr) {
		return Element{}, xerrors.Errorf("%d is not an element of %s: %w", repr, f, ErrInvalidArgument)
	}
	return Element{field: f, value: repr}, nil
}

// FromInteger maps an integer into the prime subfield, i.e. returns n·1.
func (f *Field) FromInteger(n int) Element {
	v := n % f.characteristic
	if v < 0 {
		v += f.characteristic
	}
	return Element{field: f, value: v}
}

// Zero returns the additive identity.
func (f *Field) Zero() Element {
	return Element{field: f, value: 0}
}

// One returns the multiplicative identity.
func (f *Field) One() Element {
	return Element{field: f, value: 1}
}

// Generator returns the field's fixed primitive element.
func (f *Field) Generator() Element {
	return Element{field: f, value: f.generator}
}

// GeneratorPower returns g^i for the field generator g. Negative exponents
// are reduced modulo q-1.
func (f *Field) GeneratorPower(i int) Element {
	n := f.order - 1
	i %= n
	if i < 0 {
		i += n
	}
	return Element{field: f, value: f.expTable[i]}
}

// Enumerate returns every element of the field by increasing representation.
func (f *Field) Enumerate() []Element {
	elements := make([]Element, f.order)
	for i := range elements {
		elements[i] = Element{field: f, value: i}
	}
	return elements
}

// Add returns a + b.
func (f *Field) Add(a, b Element) (Element, error) {
	if err := f.check(a, b); err != nil {
		return Element{}, err
	}
	return a.Add(b), nil
}

// Subtract returns a - b.
func (f *Field) Subtract(a, b Element) (Element, error) {
	if err := f.check(a, b); err != nil {
		return Element{}, err
	}
	return a.Sub(b), nil
}

// Multiply returns a * b.
func (f *Field) Multiply(a, b Element) (Element, error) {
	if err := f.check(a, b); err != nil {
		return Element{}, err
	}
	return a.Mul(b), nil
}

// Divide returns a / b, failing with ErrDivisionByZero when b is zero.
func (f *Field) Divide(a, b Element) (Element, error) {
	if err := f.check(a, b); err != nil {
		return Element{}, err
	}
	return a.Div(b)
}

// InverseForAddition returns -a.
func (f *Field) InverseForAddition(a Element) (Element, error) {
	if err := f.check(a); err != nil {
		return Element{}, err
	}
	return a.Neg(), nil
}

// InverseForMultiplication returns 1/a, failing with ErrDivisionByZero when
// a is zero.
func (f *Field) InverseForMultiplication(a Element) (Element, error) {
	if err := f.check(a); err != nil {
		return Element{}, err
	}
	return a.Inverse()
}

func (f *Field) check(elements ...Element) error {
	for _, e := range elements {
		if !f.Equal(e.field) {
			return xerrors.Errorf("element %v of %v used in %v: %w", e.value, e.field, f, ErrFieldMismatch)
		}
	}
	return nil
}

// add, neg and mul work on representations of this field.

func (f *Field) add(a, b int) int {
	if f.degree == 1 {
		return (a + b) % f.order
	}
	if f.characteristic == 2 {
		return a ^ b
	}
	p := f.characteristic
	res, scale := 0, 1
	for a > 0 || b > 0 {
		res += ((a%p + b%p) % p) * scale
		a /= p
		b /= p
		scale *= p
	}
	return res
}

func (f *Field) neg(a int) int {
	if f.degree == 1 {
		return (f.order - a) % f.order
	}
	if f.characteristic == 2 {
		return a
	}
	p := f.characteristic
	res, scale := 0, 1
	for a > 0 {
		res += ((p - a%p) % p) * scale
		a /= p
		scale *= p
	}
	return res
}

func (f *Field) mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return f.expTable[(f.logTable[a]+f.logTable[b])%(f.order-1)]
}

func (f *Field) inv(a int) int {
	return f.expTable[(f.order-1-f.logTable[a])%(f.order-1)]
}
