package combinations

import (
	"errors"
	"testing"

	"student_25_listdecoding/field"

	"github.com/stretchr/testify/require"
)

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	res := 1
	for i := 1; i <= k; i++ {
		res = res * (n - k + i) / i
	}
	return res
}

// TestCombinations_GF27 checks values taken from reference data over GF(27)
func TestCombinations_GF27(t *testing.T) {
	f, err := field.NewField(27)
	require.NoError(t, err)

	c, err := Calculate(f, 6, 3, nil)
	require.NoError(t, err)
	require.Equal(t, 2, c.Value())

	c, err = Calculate(f, 52, 5, nil)
	require.NoError(t, err)
	require.Equal(t, 0, c.Value())

	c, err = Calculate(f, 13, 10, nil)
	require.NoError(t, err)
	require.Equal(t, 1, c.Value())
}

// TestCombinations_CacheIndependence checks that results are the same with
// and without a cache, and match the integer binomial modulo p
func TestCombinations_CacheIndependence(t *testing.T) {
	for _, q := range []int{7, 27} {
		f, err := field.NewField(q)
		require.NoError(t, err)
		cache := NewCache(f, 21)
		small := NewCache(f, 5)

		for n := 0; n <= 20; n++ {
			for k := 0; k <= n; k++ {
				plain, err := Calculate(f, n, k, nil)
				require.NoError(t, err)
				cached, err := Calculate(f, n, k, cache)
				require.NoError(t, err)
				partial, err := Calculate(f, n, k, small)
				require.NoError(t, err)

				require.True(t, plain.Equal(cached), "C(%d,%d) over %s", n, k, f)
				require.True(t, plain.Equal(partial))
				require.Equal(t, binomial(n, k)%f.Characteristic(), plain.Value())
			}
		}
		require.Equal(t, 21, cache.Size())
	}
}

// TestCombinations_Edges checks the base cases and validation
func TestCombinations_Edges(t *testing.T) {
	f, err := field.NewPrimeField(5)
	require.NoError(t, err)

	c, err := Calculate(f, 3, 4, nil)
	require.NoError(t, err)
	require.True(t, c.IsZero())

	c, err = Calculate(f, 0, 0, nil)
	require.NoError(t, err)
	require.True(t, c.IsOne())

	c, err = Calculate(f, 4, -1, nil)
	require.NoError(t, err)
	require.True(t, c.IsZero())

	_, err = Calculate(f, -1, 0, nil)
	require.True(t, errors.Is(err, field.ErrInvalidArgument))

	other, err := field.NewPrimeField(7)
	require.NoError(t, err)
	_, err = Calculate(f, 3, 1, NewCache(other, 4))
	require.True(t, errors.Is(err, field.ErrFieldMismatch))
}
