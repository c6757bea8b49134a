package reedsolomon

import (
	"bytes"
	"errors"
	"testing"

	"student_25_listdecoding/field"
	"student_25_listdecoding/polynomial"

	"github.com/HACKERALERT/infectious"
	"github.com/stretchr/testify/require"
	"go.dedis.ch/kyber/v4/util/random"
)

func checkEncoding(t *testing.T, encoded []Symbol, expected []byte, decoder *BWCodes) {
	// Decode the message
	decoded, err := decoder.Decode(encoded)
	require.NoError(t, err)

	// Check that the decoded message is the same as the original
	require.Equal(t, expected, decoded)
}

// TestBWCodes_Simple tests that encoding and decoding a message without any errors in the message to decode
// works.
func TestBWCodes_Simple(t *testing.T) {
	k := 3
	n := 7
	rsCodes, err := NewBWCodes(k, n)
	require.NoError(t, err)

	// Create a message with values  from 0 to k-1
	message := make([]byte, k)
	for i := 0; i < k; i++ {
		message[i] = byte(i)
	}

	encoded, err := rsCodes.Encode(message)
	require.NoError(t, err)
	require.Len(t, encoded, n)

	checkEncoding(t, encoded, message, rsCodes)
}

// TestBWCodes_Corrupted tests that a message with at most (n-k)/2 corrupted
// symbols is corrected and that one more corrupted symbol is detected
func TestBWCodes_Corrupted(t *testing.T) {
	k := 3
	n := 7
	rsCodes, err := NewBWCodes(k, n)
	require.NoError(t, err)

	message := make([]byte, 2*k)
	for i := 0; i < 2*k; i++ {
		message[i] = byte(i)
	}

	encoded, err := rsCodes.Encode(message)
	require.NoError(t, err)

	// Alter some data
	encoded[1].Val[0] = byte('s')
	encoded[1].Val[1] = byte('e')
	encoded[0].Val[0] = byte('x')
	encoded[0].Val[1] = byte('y')

	checkEncoding(t, encoded, message, rsCodes)

	// Decode works on a copy, so the two corrupted symbols are still there
	encoded[2].Val[0] = byte('!')

	_, err = rsCodes.Decode(encoded)
	require.Equal(t, infectious.TooManyErrors, err)
}

// TestBWCodes_Erasure tests that encoding and decoding a message where some
// data got erased
func TestBWCodes_Erasure(t *testing.T) {
	k := 3
	n := 7
	rsCodes, err := NewBWCodes(k, n)
	require.NoError(t, err)

	message := make([]byte, 2*k)
	for i := 0; i < 2*k; i++ {
		message[i] = byte(i)
	}

	encoded, err := rsCodes.Encode(message)
	require.NoError(t, err)

	// Drop some data
	encoded = encoded[2:]
	checkEncoding(t, encoded, message, rsCodes)

	// Drop 2 more packets
	encoded = encoded[2:]
	checkEncoding(t, encoded, message, rsCodes)

	// Drop one more packet and expect it to fail
	encoded = encoded[1:]
	_, err = rsCodes.Decode(encoded)
	require.Error(t, err)
}

// TestBWCodes_InvalidParameters checks that impossible codes are rejected
func TestBWCodes_InvalidParameters(t *testing.T) {
	_, err := NewBWCodes(0, 7)
	require.Error(t, err)
	_, err = NewBWCodes(8, 7)
	require.Error(t, err)

	rsCodes, err := NewBWCodes(3, 7)
	require.NoError(t, err)
	require.Equal(t, 2, rsCodes.UniqueDecodingRadius())
	_, err = rsCodes.Encode([]byte{1, 2})
	require.True(t, errors.Is(err, field.ErrInvalidArgument))
	_, err = rsCodes.Encode(nil)
	require.True(t, errors.Is(err, field.ErrInvalidArgument))
}

// TestBWCodes_ListDecodingBeyondRadius corrupts the same positions of a byte
// codeword and of a GF(256) codeword carrying the same message, one more than
// the unique decoding radius. Berlekamp-Welch cannot return the message while
// the list decoder still finds it.
func TestBWCodes_ListDecodingBeyondRadius(t *testing.T) {
	k := 3
	n := 7
	rsCodes, err := NewBWCodes(k, n)
	require.NoError(t, err)
	f, err := field.NewField(256)
	require.NoError(t, err)
	code, err := NewCode(f, n, k)
	require.NoError(t, err)
	require.Equal(t, rsCodes.UniqueDecodingRadius(), code.UniqueDecodingRadius())

	message := []byte{42, 7, 199}
	symbols := make([]field.Element, k)
	for i, b := range message {
		symbols[i], err = f.Element(int(b))
		require.NoError(t, err)
	}
	expected, err := polynomial.New(f, symbols...)
	require.NoError(t, err)

	word, err := code.Encode(symbols)
	require.NoError(t, err)
	encoded, err := rsCodes.Encode(message)
	require.NoError(t, err)

	nbErrors := code.UniqueDecodingRadius() + 1
	corrupted, positions, err := Corrupt(word, nbErrors, random.New())
	require.NoError(t, err)
	for _, pos := range positions {
		encoded[pos].Val[0] ^= 0xff
	}

	decoded, err := rsCodes.Decode(encoded)
	require.False(t, err == nil && bytes.Equal(decoded, message),
		"byte code corrected %d errors", nbErrors)
	if err != nil {
		require.ErrorIs(t, err, infectious.TooManyErrors)
	}

	list, err := code.ListDecode(corrupted, n-nbErrors)
	require.NoError(t, err)
	require.True(t, polynomial.NewSet(list...).Contains(expected))
}
