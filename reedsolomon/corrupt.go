package reedsolomon

import (
	"crypto/cipher"
	"math/big"
	"sort"

	"student_25_listdecoding/field"
	"student_25_listdecoding/listdecoding"

	"go.dedis.ch/kyber/v4/util/random"
	"golang.org/x/xerrors"
)

// Corrupt returns a copy of word where nbErrors distinct positions hold a
// different value, and those positions in increasing order. Positions and new
// values are drawn from stream; use random.New() for fresh randomness.
func Corrupt(word []listdecoding.Point, nbErrors int, stream cipher.Stream) ([]listdecoding.Point, []int, error) {
	if nbErrors < 0 || nbErrors > len(word) {
		return nil, nil, xerrors.Errorf("%d errors in a word of length %d: %w", nbErrors, len(word), field.ErrInvalidArgument)
	}
	if stream == nil {
		stream = random.New()
	}

	res := append([]listdecoding.Point(nil), word...)
	if nbErrors == 0 {
		return res, []int{}, nil
	}

	// partial Fisher-Yates shuffle of the positions
	indices := make([]int, len(word))
	for i := range indices {
		indices[i] = i
	}
	for i := 0; i < nbErrors; i++ {
		j := i + uniform(len(word)-i, stream)
		indices[i], indices[j] = indices[j], indices[i]
	}
	positions := indices[:nbErrors]
	sort.Ints(positions)

	for _, pos := range positions {
		f := res[pos].Y.Field()
		// a nonzero offset guarantees a different value
		offset := 1 + uniform(f.Order()-1, stream)
		delta, err := f.Element(offset)
		if err != nil {
			return nil, nil, err
		}
		res[pos].Y = res[pos].Y.Add(delta)
	}
	return res, positions, nil
}

// uniform returns a value in [0, m). random.Int never returns 0, so the draw
// is made in [1, m] and shifted.
func uniform(m int, stream cipher.Stream) int {
	return int(random.Int(big.NewInt(int64(m+1)), stream).Int64()) - 1
}
