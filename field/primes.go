package field

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// primePower splits q into p^m.
func primePower(q int) (p, m int, ok bool) {
	if q < 2 {
		return 0, 0, false
	}
	p = q
	for d := 2; d*d <= q; d++ {
		if q%d == 0 {
			p = d
			break
		}
	}
	for q > 1 {
		if q%p != 0 {
			return 0, 0, false
		}
		q /= p
		m++
	}
	return p, m, true
}

// polyMod returns a mod b over GF(p). b must be monic. Coefficients are
// ascending and the result has exactly len(b)-1 entries.
func polyMod(a, b []int, p int) []int {
	rem := append([]int(nil), a...)
	db := len(b) - 1
	for i := len(rem) - 1; i >= db; i-- {
		c := rem[i]
		if c == 0 {
			continue
		}
		for j := 0; j <= db; j++ {
			rem[i-db+j] = ((rem[i-db+j]-c*b[j])%p + p) % p
		}
	}
	out := make([]int, db)
	copy(out, rem)
	return out
}

// isIrreducible checks a monic polynomial over GF(p) by trial division with
// every monic polynomial of degree at most half its own.
func isIrreducible(poly []int, p int) bool {
	deg := len(poly) - 1
	if deg < 1 {
		return false
	}
	for d := 1; 2*d <= deg; d++ {
		count := 1
		for i := 0; i < d; i++ {
			count *= p
		}
		divisor := make([]int, d+1)
		divisor[d] = 1
		for c := 0; c < count; c++ {
			v := c
			for i := 0; i < d; i++ {
				divisor[i] = v % p
				v /= p
			}
			if isZeroPoly(polyMod(poly, divisor, p)) {
				return false
			}
		}
	}
	return true
}

func smallestIrreducible(p, m int) ([]int, bool) {
	count := 1
	for i := 0; i < m; i++ {
		count *= p
	}
	poly := make([]int, m+1)
	poly[m] = 1
	for c := 0; c < count; c++ {
		v := c
		for i := 0; i < m; i++ {
			poly[i] = v % p
			v /= p
		}
		if isIrreducible(poly, p) {
			return append([]int(nil), poly...), true
		}
	}
	return nil, false
}

func isZeroPoly(poly []int) bool {
	for _, c := range poly {
		if c != 0 {
			return false
		}
	}
	return true
}
