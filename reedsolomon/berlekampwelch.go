package reedsolomon

import (
	"student_25_listdecoding/field"

	"github.com/HACKERALERT/infectious"
	"golang.org/x/xerrors"
)

// Symbol is one position of a byte codeword. Val holds one byte per stripe of
// the message.
type Symbol struct {
	Idx int
	Val []byte
}

// BWCodes is a systematic Reed-Solomon code over GF(256) bytes, uniquely
// decoded with Berlekamp-Welch by github.com/HACKERALERT/infectious. It
// corrects at most UniqueDecodingRadius corrupted symbols, where Code
// returns a list.
type BWCodes struct {
	fec *infectious.FEC
}

// NewBWCodes returns the byte code with k data symbols out of n
func NewBWCodes(k, n int) (*BWCodes, error) {
	fec, err := infectious.NewFEC(k, n)
	if err != nil {
		return nil, xerrors.Errorf("byte code [%d, %d]: %w", n, k, err)
	}
	return &BWCodes{fec: fec}, nil
}

func (bw *BWCodes) N() int {
	return bw.fec.Total()
}

func (bw *BWCodes) K() int {
	return bw.fec.Required()
}

// UniqueDecodingRadius is (n-k)/2
func (bw *BWCodes) UniqueDecodingRadius() int {
	return (bw.N() - bw.K()) / 2
}

// Encode splits msg into k symbols and returns the n symbols of its
// codeword. The message length must be a nonzero multiple of k.
func (bw *BWCodes) Encode(msg []byte) ([]Symbol, error) {
	if len(msg) == 0 || len(msg)%bw.K() != 0 {
		return nil, xerrors.Errorf("message of %d bytes for k = %d: %w", len(msg), bw.K(), field.ErrInvalidArgument)
	}
	symbols := make([]Symbol, bw.N())
	err := bw.fec.Encode(msg, func(s infectious.Share) {
		// infectious reuses the share buffer between calls
		symbols[s.Number] = Symbol{Idx: s.Number, Val: append([]byte(nil), s.Data...)}
	})
	if err != nil {
		return nil, err
	}
	return symbols, nil
}

// Decode returns the message of the received symbols. Missing symbols count
// as erasures. Beyond the decoding radius it fails with
// infectious.TooManyErrors, or returns another message when the word happens
// to lie close to a different codeword.
func (bw *BWCodes) Decode(symbols []Symbol) ([]byte, error) {
	shares := make([]infectious.Share, len(symbols))
	for i, s := range symbols {
		shares[i] = infectious.Share{Number: s.Idx, Data: append([]byte(nil), s.Val...)}
	}
	return bw.fec.Decode(nil, shares)
}
