package bivariate

import "student_25_listdecoding/field"

// Monomial is the exponent pair of x^X y^Y.
type Monomial struct {
	X int
	Y int
}

// Term is a monomial with its nonzero coefficient.
type Term struct {
	Monomial
	Coefficient field.Element
}

// Weight gives the weighted degree X·i + Y·j of x^i y^j.
type Weight struct {
	X int
	Y int
}

// Degree returns the weighted degree of m.
func (w Weight) Degree(m Monomial) int {
	return w.X*m.X + w.Y*m.Y
}

// Compare orders monomials by weighted degree, ties broken by ascending
// x-degree. It returns -1, 0 or 1.
func (w Weight) Compare(a, b Monomial) int {
	da, db := w.Degree(a), w.Degree(b)
	switch {
	case da < db:
		return -1
	case da > db:
		return 1
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	default:
		return 0
	}
}

// Monomials lists every monomial of weighted degree at most maxDegree whose
// y-degree does not exceed maxY, ordered by Compare.
func (w Weight) Monomials(maxDegree, maxY int) []Monomial {
	res := make([]Monomial, 0)
	if maxDegree < 0 || w.X <= 0 || w.Y < 0 {
		return res
	}
	for j := 0; j <= maxY && w.Y*j <= maxDegree; j++ {
		for i := 0; w.X*i+w.Y*j <= maxDegree; i++ {
			res = append(res, Monomial{X: i, Y: j})
		}
	}
	sortMonomials(res, w)
	return res
}
