// Package interpolation builds the bivariate polynomial of smallest weighted
// degree that passes through a set of points with a given root multiplicity.
package interpolation

import (
	"student_25_listdecoding/bivariate"
	"student_25_listdecoding/combinations"
	"student_25_listdecoding/field"
	"student_25_listdecoding/logging"

	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
)

// ErrNoValidPolynomial is returned when the constraints leave no nonzero
// polynomial within the weighted degree bound. The bounds must be widened.
var ErrNoValidPolynomial = xerrors.New("no valid interpolation polynomial")

// Point is an interpolation point (x, y).
type Point struct {
	X field.Element
	Y field.Element
}

// Builder runs the interpolation step of list decoding.
type Builder struct {
	// MaxYDegree caps the y-degree of the candidates. It is required when the
	// weight gives no weight to y; a negative value means no extra cap.
	MaxYDegree int
	log        zerolog.Logger
}

// NewBuilder returns a builder without y-degree cap.
func NewBuilder() *Builder {
	return &Builder{
		MaxYDegree: -1,
		log:        logging.GetLogger("interpolation"),
	}
}

// candidate is a member of the working set. Its leading monomial never
// changes during elimination, so it is computed once.
type candidate struct {
	poly *bivariate.Polynomial
	lead bivariate.Monomial
}

// ConstraintCount returns the number of linear conditions imposed by
// nbPoints points of the given multiplicity, i.e. one per Hasse derivative
// order (r, s) with r + s < multiplicity.
func ConstraintCount(nbPoints, multiplicity int) int {
	return nbPoints * multiplicity * (multiplicity + 1) / 2
}

// Build returns the monic nonzero polynomial Q of smallest leading monomial
// under weight, with weighted degree at most maxWeightedDegree, such that
// every Hasse derivative of order (r, s) with r + s < multiplicity vanishes at
// every point.
//
// The working set starts as every monomial within the bound. Each constraint
// is evaluated on every candidate; the nonzero candidate with the smallest
// leading monomial becomes the pivot, is used to cancel the constraint on all
// other candidates and then leaves the working set.
func (b *Builder) Build(weight bivariate.Weight, maxWeightedDegree int, points []Point,
	multiplicity int) (*bivariate.Polynomial, error) {

	f, err := b.validate(weight, maxWeightedDegree, points, multiplicity)
	if err != nil {
		return nil, err
	}

	maxY := b.MaxYDegree
	if weight.Y > 0 {
		byWeight := maxWeightedDegree / weight.Y
		if maxY < 0 || byWeight < maxY {
			maxY = byWeight
		}
	}
	monomials := weight.Monomials(maxWeightedDegree, maxY)
	candidates := make([]candidate, len(monomials))
	for i, m := range monomials {
		candidates[i] = candidate{
			poly: bivariate.Single(f.One(), m.X, m.Y),
			lead: m,
		}
	}

	b.log.Debug().
		Int("monomials", len(monomials)).
		Int("constraints", ConstraintCount(len(points), multiplicity)).
		Int("maxWeightedDegree", maxWeightedDegree).
		Int("multiplicity", multiplicity).
		Msg("Starting interpolation")

	maxX := maxWeightedDegree / weight.X
	cache := combinations.NewCache(f, max(maxX, maxY, multiplicity)+1)

	values := make([]field.Element, len(candidates))
	for idx, pt := range points {
		for total := 0; total < multiplicity; total++ {
			for r := 0; r <= total; r++ {
				s := total - r
				candidates, err = b.eliminate(candidates, values, weight, pt, r, s, cache)
				if err != nil {
					return nil, xerrors.Errorf("point %d, order (%d, %d): %w", idx, r, s, err)
				}
			}
		}
	}

	best := 0
	for i, c := range candidates {
		if weight.Compare(c.lead, candidates[best].lead) < 0 {
			best = i
		}
	}
	q := candidates[best].poly
	inv, err := q.Coefficient(candidates[best].lead.X, candidates[best].lead.Y).Inverse()
	if err != nil {
		return nil, err
	}
	q, err = q.Scale(inv)
	if err != nil {
		return nil, err
	}

	b.log.Debug().
		Int("survivors", len(candidates)).
		Int("weightedDegree", q.WeightedDegree(weight)).
		Msg("Interpolation done")
	return q, nil
}

// eliminate enforces one constraint on the working set and returns the
// reduced set.
func (b *Builder) eliminate(candidates []candidate, values []field.Element, weight bivariate.Weight,
	pt Point, r, s int, cache *combinations.Cache) ([]candidate, error) {

	pivot := -1
	for i, c := range candidates {
		v, err := c.poly.HasseDerivativeAt(r, s, pt.X, pt.Y, cache)
		if err != nil {
			return nil, err
		}
		values[i] = v
		if v.IsZero() {
			continue
		}
		if pivot < 0 || weight.Compare(c.lead, candidates[pivot].lead) < 0 {
			pivot = i
		}
	}
	if pivot < 0 {
		// Already satisfied by every candidate
		return candidates, nil
	}

	p := candidates[pivot].poly
	inv, err := values[pivot].Inverse()
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		if i == pivot || values[i].IsZero() {
			continue
		}
		scaled, err := p.Scale(values[i].Mul(inv))
		if err != nil {
			return nil, err
		}
		candidates[i].poly, err = candidates[i].poly.Sub(scaled)
		if err != nil {
			return nil, err
		}
	}

	b.log.Trace().
		Int("r", r).
		Int("s", s).
		Int("pivotX", candidates[pivot].lead.X).
		Int("pivotY", candidates[pivot].lead.Y).
		Msg("Eliminated constraint")

	candidates = append(candidates[:pivot], candidates[pivot+1:]...)
	if len(candidates) == 0 {
		return nil, ErrNoValidPolynomial
	}
	return candidates, nil
}

func (b *Builder) validate(weight bivariate.Weight, maxWeightedDegree int, points []Point,
	multiplicity int) (*field.Field, error) {

	if multiplicity <= 0 {
		return nil, xerrors.Errorf("multiplicity %d: %w", multiplicity, field.ErrInvalidArgument)
	}
	if len(points) == 0 {
		return nil, xerrors.Errorf("no interpolation point: %w", field.ErrInvalidArgument)
	}
	if maxWeightedDegree < 0 {
		return nil, xerrors.Errorf("weighted degree bound %d: %w", maxWeightedDegree, field.ErrInvalidArgument)
	}
	if weight.X <= 0 || weight.Y < 0 {
		return nil, xerrors.Errorf("weight %v: %w", weight, field.ErrInvalidArgument)
	}
	if weight.Y == 0 && b.MaxYDegree < 0 {
		return nil, xerrors.Errorf("weight %v needs a y-degree cap: %w", weight, field.ErrInvalidArgument)
	}

	f := points[0].X.Field()
	if f == nil {
		return nil, xerrors.Errorf("point without field: %w", field.ErrInvalidArgument)
	}
	seen := make(map[[2]int]struct{}, len(points))
	for i, pt := range points {
		if !f.Equal(pt.X.Field()) || !f.Equal(pt.Y.Field()) {
			return nil, xerrors.Errorf("point %d: %w", i, field.ErrFieldMismatch)
		}
		key := [2]int{pt.X.Value(), pt.Y.Value()}
		if _, ok := seen[key]; ok {
			return nil, xerrors.Errorf("duplicated point (%v, %v): %w", pt.X, pt.Y, field.ErrInvalidArgument)
		}
		seen[key] = struct{}{}
	}
	return f, nil
}

// Satisfies reports whether every point is a root of q of at least the given
// multiplicity.
func Satisfies(q *bivariate.Polynomial, points []Point, multiplicity int) (bool, error) {
	cache := combinations.NewCache(q.Field(), max(q.XDegree(), q.YDegree(), multiplicity)+1)
	for _, pt := range points {
		for total := 0; total < multiplicity; total++ {
			for r := 0; r <= total; r++ {
				v, err := q.HasseDerivativeAt(r, total-r, pt.X, pt.Y, cache)
				if err != nil {
					return false, err
				}
				if !v.IsZero() {
					return false, nil
				}
			}
		}
	}
	return true, nil
}
