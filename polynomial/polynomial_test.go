package polynomial

import (
	"errors"
	"math/rand"
	"testing"

	"student_25_listdecoding/field"

	"github.com/stretchr/testify/require"
)

func randomPolynomial(t *testing.T, rng *rand.Rand, f *field.Field, degree int) *Polynomial {
	coefficients := make([]int, degree+1)
	for i := range coefficients {
		coefficients[i] = rng.Intn(f.Order())
	}
	coefficients[degree] = 1 + rng.Intn(f.Order()-1)
	p, err := FromInts(f, coefficients...)
	require.NoError(t, err)
	return p
}

// TestPolynomial_Trim checks that trailing zeros are dropped and the zero
// polynomial has degree -1
func TestPolynomial_Trim(t *testing.T) {
	f, err := field.NewPrimeField(5)
	require.NoError(t, err)

	p, err := FromInts(f, 1, 2, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, p.Degree())
	require.Len(t, p.Coefficients(), 2)

	z, err := FromInts(f, 0, 0)
	require.NoError(t, err)
	require.Equal(t, -1, z.Degree())
	require.True(t, z.IsZero())
	require.True(t, z.Equal(Zero(f)))
	require.Equal(t, "0", z.String())
	require.Equal(t, "2x + 1", p.String())

	_, err = FromInts(f, 7)
	require.True(t, errors.Is(err, field.ErrInvalidArgument))
}

// TestPolynomial_Arithmetic checks ring operations on small examples
func TestPolynomial_Arithmetic(t *testing.T) {
	f, err := field.NewPrimeField(5)
	require.NoError(t, err)

	// (x + 1)(x + 4) = x^2 + 4 over GF(5)
	a, err := FromInts(f, 1, 1)
	require.NoError(t, err)
	b, err := FromInts(f, 4, 1)
	require.NoError(t, err)
	prod, err := a.Mul(b)
	require.NoError(t, err)
	expected, err := FromInts(f, 4, 0, 1)
	require.NoError(t, err)
	require.True(t, prod.Equal(expected), "got %s", prod)

	sum, err := a.Add(b)
	require.NoError(t, err)
	expected, err = FromInts(f, 0, 2)
	require.NoError(t, err)
	require.True(t, sum.Equal(expected))

	diff, err := a.Sub(a)
	require.NoError(t, err)
	require.True(t, diff.IsZero())

	scaled, err := a.Scale(f.FromInteger(3))
	require.NoError(t, err)
	expected, err = FromInts(f, 3, 3)
	require.NoError(t, err)
	require.True(t, scaled.Equal(expected))
}

// TestPolynomial_DivMod checks that (p*q) % q == 0 and that
// quotient*divisor + remainder gives back the dividend
func TestPolynomial_DivMod(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, q := range []int{5, 8, 9} {
		f, err := field.NewField(q)
		require.NoError(t, err)

		for i := 0; i < 20; i++ {
			p := randomPolynomial(t, rng, f, rng.Intn(6))
			d := randomPolynomial(t, rng, f, rng.Intn(4))

			prod, err := p.Mul(d)
			require.NoError(t, err)
			quot, rem, err := prod.DivMod(d)
			require.NoError(t, err)
			require.True(t, rem.IsZero(), "%s mod %s = %s", prod, d, rem)
			require.True(t, quot.Equal(p))

			quot, rem, err = p.DivMod(d)
			require.NoError(t, err)
			require.Less(t, rem.Degree(), d.Degree())
			back, err := quot.Mul(d)
			require.NoError(t, err)
			back, err = back.Add(rem)
			require.NoError(t, err)
			require.True(t, back.Equal(p))
		}

		_, _, err = Monomial(f.One(), 2).DivMod(Zero(f))
		require.True(t, errors.Is(err, field.ErrDivisionByZero))
	}
}

// TestPolynomial_FieldMismatch checks that polynomials over unequal fields
// are not combined
func TestPolynomial_FieldMismatch(t *testing.T) {
	f5, err := field.NewPrimeField(5)
	require.NoError(t, err)
	f7, err := field.NewPrimeField(7)
	require.NoError(t, err)

	a := Monomial(f5.One(), 1)
	b := Monomial(f7.One(), 1)

	_, err = a.Add(b)
	require.True(t, errors.Is(err, field.ErrFieldMismatch))
	_, err = a.Mul(b)
	require.True(t, errors.Is(err, field.ErrFieldMismatch))
	_, _, err = a.DivMod(b)
	require.True(t, errors.Is(err, field.ErrFieldMismatch))
	_, err = a.Evaluate(f7.One())
	require.True(t, errors.Is(err, field.ErrFieldMismatch))
	_, err = New(f5, f7.One())
	require.True(t, errors.Is(err, field.ErrFieldMismatch))
	require.False(t, a.Equal(b))
}

// TestPolynomial_Evaluate compares Horner's method with a direct sum
func TestPolynomial_Evaluate(t *testing.T) {
	f, err := field.NewField(27)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(2))
	p := randomPolynomial(t, rng, f, 5)

	for _, x := range f.Enumerate() {
		expected := f.Zero()
		for i, c := range p.Coefficients() {
			xi, err := x.Pow(i)
			require.NoError(t, err)
			expected = expected.Add(c.Mul(xi))
		}
		got, err := p.Evaluate(x)
		require.NoError(t, err)
		require.True(t, expected.Equal(got))
	}
}

// TestPolynomial_RaiseVariableDegree checks that p(x^d) evaluated at x is p
// evaluated at x^d
func TestPolynomial_RaiseVariableDegree(t *testing.T) {
	f, err := field.NewField(16)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(3))

	for d := 1; d <= 4; d++ {
		p := randomPolynomial(t, rng, f, 4)
		raised, err := p.RaiseVariableDegree(d)
		require.NoError(t, err)
		require.Equal(t, p.Degree()*d, raised.Degree())

		for _, x := range f.Enumerate() {
			xd, err := x.Pow(d)
			require.NoError(t, err)
			expected, err := p.Evaluate(xd)
			require.NoError(t, err)
			got, err := raised.Evaluate(x)
			require.NoError(t, err)
			require.True(t, expected.Equal(got))
		}
	}

	_, err = Zero(f).RaiseVariableDegree(0)
	require.True(t, errors.Is(err, field.ErrInvalidArgument))
}

// TestPolynomial_Shift checks multiplication and truncating division by x^k
func TestPolynomial_Shift(t *testing.T) {
	f, err := field.NewPrimeField(7)
	require.NoError(t, err)

	p, err := FromInts(f, 1, 2, 3)
	require.NoError(t, err)

	up := p.Shift(2)
	expected, err := FromInts(f, 0, 0, 1, 2, 3)
	require.NoError(t, err)
	require.True(t, up.Equal(expected))
	require.True(t, up.Shift(-2).Equal(p))

	down := p.Shift(-1)
	expected, err = FromInts(f, 2, 3)
	require.NoError(t, err)
	require.True(t, down.Equal(expected))
	require.True(t, p.Shift(-3).IsZero())
}

// TestPolynomial_Roots checks exhaustive root finding
func TestPolynomial_Roots(t *testing.T) {
	f, err := field.NewPrimeField(7)
	require.NoError(t, err)

	// (x - 2)(x - 5) = x^2 - 7x + 10 = x^2 + 3
	p, err := FromInts(f, 3, 0, 1)
	require.NoError(t, err)
	roots := p.Roots()
	require.Len(t, roots, 2)
	require.Equal(t, 2, roots[0].Value())
	require.Equal(t, 5, roots[1].Value())

	require.Len(t, Zero(f).Roots(), 7)
}

// TestPolynomial_Set checks equality-based deduplication
func TestPolynomial_Set(t *testing.T) {
	f, err := field.NewPrimeField(5)
	require.NoError(t, err)
	other, err := field.NewField(5)
	require.NoError(t, err)

	a, err := FromInts(f, 1, 2)
	require.NoError(t, err)
	sameAsA, err := FromInts(other, 1, 2, 0)
	require.NoError(t, err)
	b, err := FromInts(f, 3)
	require.NoError(t, err)

	require.Equal(t, a.Hash(), sameAsA.Hash())

	s := NewSet(a, b)
	require.False(t, s.Add(sameAsA))
	require.True(t, s.Contains(sameAsA))
	require.Equal(t, 2, s.Len())

	ordered := s.Slice()
	require.True(t, ordered[0].Equal(b))
	require.True(t, ordered[1].Equal(a))
}
