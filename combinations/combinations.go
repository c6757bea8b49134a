// Package combinations computes binomial coefficients inside a finite field.
package combinations

import (
	"student_25_listdecoding/field"

	"golang.org/x/xerrors"
)

// Cache memoizes binomial coefficients for one field. It is a square table
// indexed by (n, k); values outside the table are computed but not stored.
// A Cache is not safe for concurrent use.
type Cache struct {
	field *field.Field
	table [][]field.Element
	set   [][]bool
}

// NewCache returns an empty cache covering 0 <= k <= n < side.
func NewCache(f *field.Field, side int) *Cache {
	if side < 0 {
		side = 0
	}
	table := make([][]field.Element, side)
	set := make([][]bool, side)
	for i := range table {
		table[i] = make([]field.Element, side)
		set[i] = make([]bool, side)
	}
	return &Cache{
		field: f,
		table: table,
		set:   set,
	}
}

// Size returns the side of the table.
func (c *Cache) Size() int {
	return len(c.table)
}

func (c *Cache) get(n, k int) (field.Element, bool) {
	if n >= len(c.table) || k >= len(c.table) {
		return field.Element{}, false
	}
	return c.table[n][k], c.set[n][k]
}

func (c *Cache) put(n, k int, v field.Element) {
	if n >= len(c.table) || k >= len(c.table) {
		return
	}
	c.table[n][k] = v
	c.set[n][k] = true
}

// Calculate returns C(n, k) reduced in f, i.e. the binomial coefficient
// modulo the characteristic. It follows Pascal's rule with C(n, 0) = C(n, n) = 1
// and C(n, k) = 0 when k > n. The optional cache is filled along the way; the
// result does not depend on whether one is given.
func Calculate(f *field.Field, n, k int, cache *Cache) (field.Element, error) {
	if f == nil {
		return field.Element{}, xerrors.Errorf("nil field: %w", field.ErrInvalidArgument)
	}
	if n < 0 {
		return field.Element{}, xerrors.Errorf("C(%d, %d): %w", n, k, field.ErrInvalidArgument)
	}
	if cache == nil {
		cache = NewCache(f, n+1)
	} else if !f.Equal(cache.field) {
		return field.Element{}, xerrors.Errorf("cache of %v used with %v: %w", cache.field, f, field.ErrFieldMismatch)
	}
	return calculate(f, n, k, cache), nil
}

func calculate(f *field.Field, n, k int, cache *Cache) field.Element {
	if k < 0 || k > n {
		return f.Zero()
	}
	if k == 0 || k == n {
		return f.One()
	}
	if v, ok := cache.get(n, k); ok {
		return v
	}
	v := calculate(f, n-1, k-1, cache).Add(calculate(f, n-1, k, cache))
	cache.put(n, k, v)
	return v
}
