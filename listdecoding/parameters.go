package listdecoding

import (
	"student_25_listdecoding/bivariate"
	"student_25_listdecoding/field"
	"student_25_listdecoding/interpolation"

	"golang.org/x/xerrors"
)

// Parameters drive one list decoding run.
type Parameters struct {
	// Multiplicity is the root multiplicity required at every received point
	Multiplicity int
	// Weight is (1, k-1), or (1, 1) for k = 1
	Weight bivariate.Weight
	// WeightedDegree bounds the weighted degree of the interpolation polynomial
	WeightedDegree int
	// ListSize bounds the y-degree of the interpolation polynomial, hence the
	// number of candidates
	ListSize int
	// MaxFactorDegree is k-1, the degree of a message polynomial
	MaxFactorDegree int
}

// monomialCount returns how many monomials x^i y^j satisfy i + wy·j <= d.
func monomialCount(d, wy int) int {
	count := 0
	for j := 0; wy*j <= d; j++ {
		count += d - wy*j + 1
	}
	return count
}

// ComputeParameters derives the decoding parameters for an (n, k) code when
// the caller guarantees that at least t = minCorrectValuesCount received
// values are correct.
//
// For a multiplicity m there are n·m(m+1)/2 constraints, so a nonzero
// interpolation polynomial exists as soon as the weighted degree bound D
// leaves more monomials than that. A message f agreeing with t positions makes
// Q(x, f(x)) a polynomial of degree at most D with at least t·m roots counted
// with multiplicity, so it vanishes when t·m > D. The smallest m up to
// maxMultiplicity meeting that condition is chosen.
func ComputeParameters(n, k, minCorrectValuesCount, maxMultiplicity int) (Parameters, error) {
	if k < 1 || k > n {
		return Parameters{}, xerrors.Errorf("message length %d for code length %d: %w",
			k, n, field.ErrInvalidArgument)
	}
	if minCorrectValuesCount <= 0 || minCorrectValuesCount > n {
		return Parameters{}, xerrors.Errorf("minimum correct values count %d not in (0, %d]: %w",
			minCorrectValuesCount, n, field.ErrInvalidArgument)
	}
	if maxMultiplicity < 1 {
		return Parameters{}, xerrors.Errorf("maximum multiplicity %d: %w", maxMultiplicity, field.ErrInvalidArgument)
	}

	wy := max(k-1, 1)
	for m := 1; m <= maxMultiplicity; m++ {
		constraints := interpolation.ConstraintCount(n, m)
		d := 0
		for monomialCount(d, wy) <= constraints {
			d++
		}
		if minCorrectValuesCount*m <= d {
			continue
		}
		return Parameters{
			Multiplicity:    m,
			Weight:          bivariate.Weight{X: 1, Y: wy},
			WeightedDegree:  d,
			ListSize:        d / wy,
			MaxFactorDegree: k - 1,
		}, nil
	}
	return Parameters{}, xerrors.Errorf("%d correct values out of %d is beyond the decoding radius of a [%d, %d] code "+
		"with multiplicity up to %d: %w", minCorrectValuesCount, n, n, k, maxMultiplicity, field.ErrInvalidArgument)
}
