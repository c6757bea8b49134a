// Package bivariate implements sparse polynomials in two variables x and y
// over a finite field.
package bivariate

import (
	"fmt"
	"sort"
	"strings"

	"student_25_listdecoding/combinations"
	"student_25_listdecoding/field"
	"student_25_listdecoding/polynomial"

	"golang.org/x/xerrors"
)

// Polynomial maps exponent pairs to coefficients. Only nonzero coefficients
// are stored, so the zero polynomial has no term. Values are immutable once
// returned to the caller.
type Polynomial struct {
	field *field.Field
	terms map[Monomial]field.Element
}

// New returns the zero polynomial of f.
func New(f *field.Field) *Polynomial {
	return &Polynomial{
		field: f,
		terms: make(map[Monomial]field.Element),
	}
}

// FromTerms builds a polynomial from a coefficient map. Zero coefficients are
// dropped and every coefficient must belong to f.
func FromTerms(f *field.Field, terms map[Monomial]field.Element) (*Polynomial, error) {
	if f == nil {
		return nil, xerrors.Errorf("nil field: %w", field.ErrInvalidArgument)
	}
	p := New(f)
	for m, c := range terms {
		if m.X < 0 || m.Y < 0 {
			return nil, xerrors.Errorf("negative exponent in %v: %w", m, field.ErrInvalidArgument)
		}
		if !f.Equal(c.Field()) {
			return nil, xerrors.Errorf("coefficient of %v: %w", m, field.ErrFieldMismatch)
		}
		p.addTerm(m, c)
	}
	return p, nil
}

// FromTermInts is FromTerms with coefficient representations.
func FromTermInts(f *field.Field, terms map[Monomial]int) (*Polynomial, error) {
	elements := make(map[Monomial]field.Element, len(terms))
	for m, v := range terms {
		e, err := f.Element(v)
		if err != nil {
			return nil, err
		}
		elements[m] = e
	}
	return FromTerms(f, elements)
}

// Single returns c x^i y^j.
func Single(c field.Element, i, j int) *Polynomial {
	p := New(c.Field())
	p.addTerm(Monomial{X: i, Y: j}, c)
	return p
}

// Constant returns the constant polynomial c.
func Constant(c field.Element) *Polynomial {
	return Single(c, 0, 0)
}

// X returns the polynomial x.
func X(f *field.Field) *Polynomial {
	return Single(f.One(), 1, 0)
}

// Y returns the polynomial y.
func Y(f *field.Field) *Polynomial {
	return Single(f.One(), 0, 1)
}

// FromPolynomialInX lifts a univariate polynomial to p(x) with no y.
func FromPolynomialInX(u *polynomial.Polynomial) *Polynomial {
	p := New(u.Field())
	for i, c := range u.Coefficients() {
		p.addTerm(Monomial{X: i}, c)
	}
	return p
}

// addTerm adds c to the coefficient of m, pruning the entry if it cancels.
// Only used while building a fresh polynomial.
func (p *Polynomial) addTerm(m Monomial, c field.Element) {
	if c.IsZero() {
		return
	}
	if old, ok := p.terms[m]; ok {
		c = old.Add(c)
	}
	if c.IsZero() {
		delete(p.terms, m)
		return
	}
	p.terms[m] = c
}

// Field returns the coefficient field.
func (p *Polynomial) Field() *field.Field {
	return p.field
}

// Len returns the number of nonzero terms.
func (p *Polynomial) Len() int {
	return len(p.terms)
}

// IsZero returns true for the zero polynomial.
func (p *Polynomial) IsZero() bool {
	return len(p.terms) == 0
}

// Coefficient returns the coefficient of x^i y^j.
func (p *Polynomial) Coefficient(i, j int) field.Element {
	if c, ok := p.terms[Monomial{X: i, Y: j}]; ok {
		return c
	}
	return p.field.Zero()
}

// Terms returns the nonzero terms ordered by y-degree, then x-degree.
func (p *Polynomial) Terms() []Term {
	res := make([]Term, 0, len(p.terms))
	for m, c := range p.terms {
		res = append(res, Term{Monomial: m, Coefficient: c})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Y != res[j].Y {
			return res[i].Y < res[j].Y
		}
		return res[i].X < res[j].X
	})
	return res
}

// XDegree returns the largest x exponent, -1 for the zero polynomial.
func (p *Polynomial) XDegree() int {
	d := -1
	for m := range p.terms {
		d = max(d, m.X)
	}
	return d
}

// YDegree returns the largest y exponent, -1 for the zero polynomial.
func (p *Polynomial) YDegree() int {
	d := -1
	for m := range p.terms {
		d = max(d, m.Y)
	}
	return d
}

// WeightedDegree returns the largest weighted degree of a term, -1 for the
// zero polynomial.
func (p *Polynomial) WeightedDegree(w Weight) int {
	d := -1
	for m := range p.terms {
		d = max(d, w.Degree(m))
	}
	return d
}

// LeadingMonomial returns the greatest monomial under w.Compare. The boolean
// is false for the zero polynomial.
func (p *Polynomial) LeadingMonomial(w Weight) (Monomial, bool) {
	var lead Monomial
	found := false
	for m := range p.terms {
		if !found || w.Compare(m, lead) > 0 {
			lead = m
			found = true
		}
	}
	return lead, found
}

func (p *Polynomial) checkElement(e field.Element) error {
	if !p.field.Equal(e.Field()) {
		return xerrors.Errorf("element of %v used with %v: %w", e.Field(), p.field, field.ErrFieldMismatch)
	}
	return nil
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

// Evaluate returns p(x, y).
func (p *Polynomial) Evaluate(x, y field.Element) (field.Element, error) {
	if err := p.checkElement(x); err != nil {
		return field.Element{}, err
	}
	if err := p.checkElement(y); err != nil {
		return field.Element{}, err
	}
	res := p.field.Zero()
	for m, c := range p.terms {
		res = res.Add(c.Mul(pow(x, m.X)).Mul(pow(y, m.Y)))
	}
	return res, nil
}

// EvaluateX fixes x and returns the resulting polynomial in y.
func (p *Polynomial) EvaluateX(x field.Element) (*polynomial.Polynomial, error) {
	if err := p.checkElement(x); err != nil {
		return nil, err
	}
	coefficients := make([]field.Element, p.YDegree()+1)
	for i := range coefficients {
		coefficients[i] = p.field.Zero()
	}
	for m, c := range p.terms {
		coefficients[m.Y] = coefficients[m.Y].Add(c.Mul(pow(x, m.X)))
	}
	return polynomial.New(p.field, coefficients...)
}

// EvaluateY fixes y and returns the resulting polynomial in x.
func (p *Polynomial) EvaluateY(y field.Element) (*polynomial.Polynomial, error) {
	if err := p.checkElement(y); err != nil {
		return nil, err
	}
	coefficients := make([]field.Element, p.XDegree()+1)
	for i := range coefficients {
		coefficients[i] = p.field.Zero()
	}
	for m, c := range p.terms {
		coefficients[m.X] = coefficients[m.X].Add(c.Mul(pow(y, m.Y)))
	}
	return polynomial.New(p.field, coefficients...)
}

// SubstituteY returns p(x, f(x)) as a polynomial in x. It is zero exactly
// when y - f(x) divides p.
func (p *Polynomial) SubstituteY(f *polynomial.Polynomial) (*polynomial.Polynomial, error) {
	if f == nil || !p.field.Equal(f.Field()) {
		return nil, xerrors.Errorf("substituted polynomial: %w", field.ErrFieldMismatch)
	}
	// rows[j] holds the polynomial in x multiplying y^j
	rows := make([][]field.Element, p.YDegree()+1)
	for m, c := range p.terms {
		if rows[m.Y] == nil {
			rows[m.Y] = make([]field.Element, p.XDegree()+1)
			for i := range rows[m.Y] {
				rows[m.Y][i] = p.field.Zero()
			}
		}
		rows[m.Y][m.X] = c
	}

	res := polynomial.Zero(p.field)
	power, err := polynomial.New(p.field, p.field.One())
	if err != nil {
		return nil, err
	}
	for j, row := range rows {
		if j > 0 {
			power, err = power.Mul(f)
			if err != nil {
				return nil, err
			}
		}
		if row == nil {
			continue
		}
		coefficient, err := polynomial.New(p.field, row...)
		if err != nil {
			return nil, err
		}
		term, err := coefficient.Mul(power)
		if err != nil {
			return nil, err
		}
		res, err = res.Add(term)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// HasseDerivative returns the (r, s) Hasse derivative: x^i y^j becomes
// C(i, r) C(j, s) x^(i-r) y^(j-s), and vanishes when r > i or s > j. The
// cache may be nil.
func (p *Polynomial) HasseDerivative(r, s int, cache *combinations.Cache) (*Polynomial, error) {
	if r < 0 || s < 0 {
		return nil, xerrors.Errorf("derivative order (%d, %d): %w", r, s, field.ErrInvalidArgument)
	}
	res := New(p.field)
	for m, c := range p.terms {
		if m.X < r || m.Y < s {
			continue
		}
		factor, err := hasseFactor(p.field, m, r, s, cache)
		if err != nil {
			return nil, err
		}
		res.addTerm(Monomial{X: m.X - r, Y: m.Y - s}, c.Mul(factor))
	}
	return res, nil
}

// HasseDerivativeAt evaluates the (r, s) Hasse derivative at (x, y) without
// building it.
func (p *Polynomial) HasseDerivativeAt(r, s int, x, y field.Element, cache *combinations.Cache) (field.Element, error) {
	if r < 0 || s < 0 {
		return field.Element{}, xerrors.Errorf("derivative order (%d, %d): %w", r, s, field.ErrInvalidArgument)
	}
	if err := p.checkElement(x); err != nil {
		return field.Element{}, err
	}
	if err := p.checkElement(y); err != nil {
		return field.Element{}, err
	}
	res := p.field.Zero()
	for m, c := range p.terms {
		if m.X < r || m.Y < s {
			continue
		}
		factor, err := hasseFactor(p.field, m, r, s, cache)
		if err != nil {
			return field.Element{}, err
		}
		if factor.IsZero() {
			continue
		}
		res = res.Add(c.Mul(factor).Mul(pow(x, m.X-r)).Mul(pow(y, m.Y-s)))
	}
	return res, nil
}

func hasseFactor(f *field.Field, m Monomial, r, s int, cache *combinations.Cache) (field.Element, error) {
	cx, err := combinations.Calculate(f, m.X, r, cache)
	if err != nil {
		return field.Element{}, err
	}
	cy, err := combinations.Calculate(f, m.Y, s, cache)
	if err != nil {
		return field.Element{}, err
	}
	return cx.Mul(cy), nil
}

// SubstituteVariables returns p(xSub(x, y), ySub(x, y)).
func (p *Polynomial) SubstituteVariables(xSub, ySub *Polynomial) (*Polynomial, error) {
	if err := p.check(xSub); err != nil {
		return nil, err
	}
	if err := p.check(ySub); err != nil {
		return nil, err
	}
	xPowers := []*Polynomial{Constant(p.field.One())}
	yPowers := []*Polynomial{Constant(p.field.One())}
	power := func(powers *[]*Polynomial, base *Polynomial, n int) *Polynomial {
		for len(*powers) <= n {
			last := (*powers)[len(*powers)-1]
			*powers = append(*powers, last.mul(base))
		}
		return (*powers)[n]
	}

	res := New(p.field)
	for _, t := range p.Terms() {
		product := power(&xPowers, xSub, t.X).mul(power(&yPowers, ySub, t.Y))
		for m, c := range product.terms {
			res.addTerm(m, c.Mul(t.Coefficient))
		}
	}
	return res, nil
}

// DivideByMaxPossibleXDegree divides p by the largest power of x dividing
// every term.
func (p *Polynomial) DivideByMaxPossibleXDegree() *Polynomial {
	if p.IsZero() {
		return p
	}
	shift := -1
	for m := range p.terms {
		if shift < 0 || m.X < shift {
			shift = m.X
		}
	}
	if shift == 0 {
		return p
	}
	res := New(p.field)
	for m, c := range p.terms {
		res.terms[Monomial{X: m.X - shift, Y: m.Y}] = c
	}
	return res
}

// Add returns p + other.
func (p *Polynomial) Add(other *Polynomial) (*Polynomial, error) {
	if err := p.check(other); err != nil {
		return nil, err
	}
	res := p.clone()
	for m, c := range other.terms {
		res.addTerm(m, c)
	}
	return res, nil
}

// Sub returns p - other.
func (p *Polynomial) Sub(other *Polynomial) (*Polynomial, error) {
	if err := p.check(other); err != nil {
		return nil, err
	}
	res := p.clone()
	for m, c := range other.terms {
		res.addTerm(m, c.Neg())
	}
	return res, nil
}

// Mul returns p * other.
func (p *Polynomial) Mul(other *Polynomial) (*Polynomial, error) {
	if err := p.check(other); err != nil {
		return nil, err
	}
	return p.mul(other), nil
}

func (p *Polynomial) mul(other *Polynomial) *Polynomial {
	res := New(p.field)
	for ma, a := range p.terms {
		for mb, b := range other.terms {
			res.addTerm(Monomial{X: ma.X + mb.X, Y: ma.Y + mb.Y}, a.Mul(b))
		}
	}
	return res
}

// Scale returns c * p.
func (p *Polynomial) Scale(c field.Element) (*Polynomial, error) {
	if err := p.checkElement(c); err != nil {
		return nil, err
	}
	res := New(p.field)
	for m, a := range p.terms {
		res.addTerm(m, a.Mul(c))
	}
	return res, nil
}

// Pow returns p^n for n >= 0.
func (p *Polynomial) Pow(n int) (*Polynomial, error) {
	if n < 0 {
		return nil, xerrors.Errorf("negative power %d: %w", n, field.ErrInvalidArgument)
	}
	res := Constant(p.field.One())
	base := p
	for n > 0 {
		if n&1 == 1 {
			res = res.mul(base)
		}
		base = base.mul(base)
		n >>= 1
	}
	return res, nil
}

// Equal reports whether both polynomials have equal fields and terms.
func (p *Polynomial) Equal(other *Polynomial) bool {
	if other == nil || !p.field.Equal(other.field) || len(p.terms) != len(other.terms) {
		return false
	}
	for m, c := range p.terms {
		o, ok := other.terms[m]
		if !ok || o.Value() != c.Value() {
			return false
		}
	}
	return true
}

func (p *Polynomial) clone() *Polynomial {
	res := &Polynomial{
		field: p.field,
		terms: make(map[Monomial]field.Element, len(p.terms)),
	}
	for m, c := range p.terms {
		res.terms[m] = c
	}
	return res
}

func (p *Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	terms := p.Terms()
	parts := make([]string, 0, len(terms))
	for i := len(terms) - 1; i >= 0; i-- {
		t := terms[i]
		var b strings.Builder
		if !t.Coefficient.IsOne() || (t.X == 0 && t.Y == 0) {
			b.WriteString(t.Coefficient.String())
		}
		writeVar(&b, "x", t.X)
		writeVar(&b, "y", t.Y)
		parts = append(parts, b.String())
	}
	return strings.Join(parts, " + ")
}

func writeVar(b *strings.Builder, name string, exp int) {
	switch exp {
	case 0:
	case 1:
		b.WriteString(name)
	default:
		fmt.Fprintf(b, "%s^%d", name, exp)
	}
}

// pow returns e^n for n >= 0, which cannot fail.
func pow(e field.Element, n int) field.Element {
	res, _ := e.Pow(n)
	return res
}

func sortMonomials(monomials []Monomial, w Weight) {
	sort.Slice(monomials, func(i, j int) bool {
		return w.Compare(monomials[i], monomials[j]) < 0
	})
}
