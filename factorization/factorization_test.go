package factorization

import (
	"errors"
	"math/rand"
	"testing"

	"student_25_listdecoding/bivariate"
	"student_25_listdecoding/field"
	"student_25_listdecoding/polynomial"

	"github.com/stretchr/testify/require"
)

// linearFactor returns y - f(x)
func linearFactor(t *testing.T, f *polynomial.Polynomial) *bivariate.Polynomial {
	res, err := bivariate.Y(f.Field()).Sub(bivariate.FromPolynomialInX(f))
	require.NoError(t, err)
	return res
}

func product(t *testing.T, polys ...*bivariate.Polynomial) *bivariate.Polynomial {
	res := bivariate.Constant(polys[0].Field().One())
	for _, p := range polys {
		var err error
		res, err = res.Mul(p)
		require.NoError(t, err)
	}
	return res
}

func requireContains(t *testing.T, factors []*polynomial.Polynomial, expected *polynomial.Polynomial) {
	for _, f := range factors {
		if f.Equal(expected) {
			return
		}
	}
	require.Fail(t, "factor not found", "%s not in %v", expected, factors)
}

// TestFactorizer_Product checks that the linear factors of a product are all
// found and that nothing else is returned
func TestFactorizer_Product(t *testing.T) {
	f, err := field.NewPrimeField(7)
	require.NoError(t, err)

	f1, err := polynomial.FromInts(f, 1, 2, 3)
	require.NoError(t, err)
	f2, err := polynomial.FromInts(f, 4, 0, 0)
	require.NoError(t, err)
	f3, err := polynomial.FromInts(f, 0, 5)
	require.NoError(t, err)
	// an irreducible extra factor y^2 - x^3 - 3 has no polynomial root
	extra, err := bivariate.FromTermInts(f, map[bivariate.Monomial]int{{Y: 2}: 1, {X: 3}: 6, {}: 4})
	require.NoError(t, err)

	q := product(t, linearFactor(t, f1), linearFactor(t, f2), linearFactor(t, f3), extra)

	factors, err := Factorize(q, 2)
	require.NoError(t, err)
	require.Len(t, factors, 3)
	requireContains(t, factors, f1)
	requireContains(t, factors, f2)
	requireContains(t, factors, f3)

	// the degree bound excludes f1
	factors, err = Factorize(q, 1)
	require.NoError(t, err)
	require.Len(t, factors, 2)
	requireContains(t, factors, f2)
	requireContains(t, factors, f3)
}

// TestFactorizer_XFactor checks that a power of x in front of the polynomial
// does not produce spurious factors
func TestFactorizer_XFactor(t *testing.T) {
	f, err := field.NewPrimeField(5)
	require.NoError(t, err)
	g, err := polynomial.FromInts(f, 2, 1)
	require.NoError(t, err)

	x2, err := bivariate.X(f).Pow(2)
	require.NoError(t, err)
	q := product(t, x2, linearFactor(t, g))

	factors, err := Factorize(q, 3)
	require.NoError(t, err)
	require.Len(t, factors, 1)
	require.True(t, factors[0].Equal(g))
}

// TestFactorizer_ZeroFactor checks that y itself yields the zero polynomial
// and that repeated factors are reported once
func TestFactorizer_ZeroFactor(t *testing.T) {
	f, err := field.NewPrimeField(3)
	require.NoError(t, err)
	g, err := polynomial.FromInts(f, 1, 1)
	require.NoError(t, err)

	q := product(t, bivariate.Y(f), linearFactor(t, g), linearFactor(t, g))
	factors, err := Factorize(q, 2)
	require.NoError(t, err)
	require.Len(t, factors, 2)
	require.True(t, factors[0].IsZero())
	require.True(t, factors[1].Equal(g))
}

// TestFactorizer_RoundTrip checks on random polynomials that every returned
// factor really divides and respects the degree bound
func TestFactorizer_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for _, q := range []int{5, 8} {
		f, err := field.NewField(q)
		require.NoError(t, err)

		for round := 0; round < 10; round++ {
			degree := rng.Intn(3)
			planted := make([]int, degree+1)
			for i := range planted {
				planted[i] = rng.Intn(q)
			}
			g, err := polynomial.FromInts(f, planted...)
			require.NoError(t, err)

			noise := make(map[bivariate.Monomial]int)
			for i := 0; i < 4; i++ {
				noise[bivariate.Monomial{X: rng.Intn(4), Y: rng.Intn(3)}] = rng.Intn(q)
			}
			noise[bivariate.Monomial{Y: 3}] = 1
			other, err := bivariate.FromTermInts(f, noise)
			require.NoError(t, err)
			poly := product(t, linearFactor(t, g), other)

			factors, err := Factorize(poly, 2)
			require.NoError(t, err)
			requireContains(t, factors, g)
			for _, factor := range factors {
				require.LessOrEqual(t, factor.Degree(), 2)
				res, err := poly.SubstituteY(factor)
				require.NoError(t, err)
				require.True(t, res.IsZero(), "%s does not divide %s", factor, poly)
			}
		}
	}
}

// TestFactorizer_InvalidArguments checks the validation
func TestFactorizer_InvalidArguments(t *testing.T) {
	f, err := field.NewPrimeField(5)
	require.NoError(t, err)

	_, err = Factorize(bivariate.New(f), 2)
	require.True(t, errors.Is(err, field.ErrInvalidArgument))

	_, err = Factorize(bivariate.Y(f), -1)
	require.True(t, errors.Is(err, field.ErrInvalidArgument))

	// a polynomial without y has no root curve
	factors, err := Factorize(bivariate.X(f), 3)
	require.NoError(t, err)
	require.Empty(t, factors)
}
