package polynomial

import "sort"

// Set is a collection of distinct polynomials. Polynomials are bucketed by
// Hash and compared with Equal. The zero value is not usable, use NewSet.
type Set struct {
	buckets map[uint64][]*Polynomial
	size    int
}

// NewSet returns a set holding the given polynomials.
func NewSet(polys ...*Polynomial) *Set {
	s := &Set{buckets: make(map[uint64][]*Polynomial)}
	for _, p := range polys {
		s.Add(p)
	}
	return s
}

// Add inserts p and reports whether it was not already present.
func (s *Set) Add(p *Polynomial) bool {
	h := p.Hash()
	for _, q := range s.buckets[h] {
		if q.Equal(p) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], p)
	s.size++
	return true
}

// Contains reports whether an equal polynomial is in the set.
func (s *Set) Contains(p *Polynomial) bool {
	for _, q := range s.buckets[p.Hash()] {
		if q.Equal(p) {
			return true
		}
	}
	return false
}

// Len returns the number of polynomials in the set.
func (s *Set) Len() int {
	return s.size
}

// Slice returns the polynomials ordered by degree, then by coefficients from
// the highest degree down.
func (s *Set) Slice() []*Polynomial {
	res := make([]*Polynomial, 0, s.size)
	for _, bucket := range s.buckets {
		res = append(res, bucket...)
	}
	sort.Slice(res, func(i, j int) bool {
		return Less(res[i], res[j])
	})
	return res
}

// Less orders polynomials by degree, then by coefficient values starting at
// the leading one.
func Less(a, b *Polynomial) bool {
	if a.Degree() != b.Degree() {
		return a.Degree() < b.Degree()
	}
	for i := a.Degree(); i >= 0; i-- {
		ca, cb := a.coefficients[i].Value(), b.coefficients[i].Value()
		if ca != cb {
			return ca < cb
		}
	}
	return false
}
