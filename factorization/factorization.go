// Package factorization finds the factors y - f(x) of a bivariate polynomial
// with the Roth–Ruckenstein method.
package factorization

import (
	"student_25_listdecoding/bivariate"
	"student_25_listdecoding/field"
	"student_25_listdecoding/logging"
	"student_25_listdecoding/polynomial"
	"student_25_listdecoding/tools"

	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
)

// Factorizer enumerates the polynomial roots y = f(x) of a bivariate
// polynomial.
type Factorizer struct {
	log zerolog.Logger
}

// NewFactorizer returns a Factorizer logging under the "factorization"
// component.
func NewFactorizer() *Factorizer {
	return &Factorizer{
		log: logging.GetLogger("factorization"),
	}
}

// frame is one node of the search: the polynomial obtained after peeling off
// coefficients, lowest degree first. coefficients is never modified once the
// frame is pushed.
type frame struct {
	poly         *bivariate.Polynomial
	coefficients []field.Element
}

// Factorize returns every polynomial f of degree at most maxFactorDegree
// such that y - f(x) divides q, without duplicates and ordered by degree.
//
// Starting from q, the coefficient f_i is a root of Q_i(0, y). For each such
// root r the search continues with Q_{i+1}(x, y) = Q_i(x, r + xy) divided by
// the largest power of x it contains. The coefficients collected so far form
// a factor as soon as Q_i(x, 0) is identically zero.
func (fz *Factorizer) Factorize(q *bivariate.Polynomial, maxFactorDegree int) ([]*polynomial.Polynomial, error) {
	if q == nil || q.IsZero() {
		return nil, xerrors.Errorf("cannot factorize the zero polynomial: %w", field.ErrInvalidArgument)
	}
	if maxFactorDegree < 0 {
		return nil, xerrors.Errorf("factor degree bound %d: %w", maxFactorDegree, field.ErrInvalidArgument)
	}

	f := q.Field()
	zero := f.Zero()
	x := bivariate.X(f)
	xy, err := x.Mul(bivariate.Y(f))
	if err != nil {
		return nil, err
	}

	found := polynomial.NewSet()
	stack := tools.NewStack[frame](maxFactorDegree + 1)
	stack.Push(frame{poly: q.DivideByMaxPossibleXDegree()})
	visited := 0

	for !stack.IsEmpty() {
		current, err := stack.Pop()
		if err != nil {
			return nil, err
		}
		visited++

		atYZero, err := current.poly.EvaluateY(zero)
		if err != nil {
			return nil, err
		}
		if atYZero.IsZero() {
			factor, err := polynomial.New(f, current.coefficients...)
			if err != nil {
				return nil, err
			}
			if found.Add(factor) {
				fz.log.Trace().Str("factor", factor.String()).Msg("Found factor")
			}
		}

		if len(current.coefficients) > maxFactorDegree {
			continue
		}

		atXZero, err := current.poly.EvaluateX(zero)
		if err != nil {
			return nil, err
		}
		for _, root := range atXZero.Roots() {
			ySub, err := xy.Add(bivariate.Constant(root))
			if err != nil {
				return nil, err
			}
			next, err := current.poly.SubstituteVariables(x, ySub)
			if err != nil {
				return nil, err
			}

			coefficients := make([]field.Element, len(current.coefficients)+1)
			copy(coefficients, current.coefficients)
			coefficients[len(current.coefficients)] = root
			stack.Push(frame{
				poly:         next.DivideByMaxPossibleXDegree(),
				coefficients: coefficients,
			})
		}
	}

	fz.log.Debug().
		Int("visited", visited).
		Int("factors", found.Len()).
		Int("maxFactorDegree", maxFactorDegree).
		Msg("Factorization done")
	return found.Slice(), nil
}

// Factorize runs a default Factorizer.
func Factorize(q *bivariate.Polynomial, maxFactorDegree int) ([]*polynomial.Polynomial, error) {
	return NewFactorizer().Factorize(q, maxFactorDegree)
}
