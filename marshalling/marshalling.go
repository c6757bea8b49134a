// Package marshalling encodes fields, polynomials and received words with
// go.dedis.ch/protobuf so they can be stored or sent between processes.
package marshalling

import (
	"student_25_listdecoding/field"
	"student_25_listdecoding/listdecoding"
	"student_25_listdecoding/polynomial"

	"go.dedis.ch/protobuf"
	"golang.org/x/xerrors"
)

// WireField identifies a field by its characteristic, its degree and, for an
// extension field, its defining polynomial
type WireField struct {
	Characteristic     uint32
	Degree             uint32
	DefiningPolynomial []uint32
}

type WirePolynomial struct {
	Field        WireField
	Coefficients []uint32
}

// WireReceivedWord stores the evaluation points and the received values side
// by side
type WireReceivedWord struct {
	Field WireField
	X     []uint32
	Y     []uint32
}

func toWireField(f *field.Field) WireField {
	w := WireField{
		Characteristic: uint32(f.Characteristic()),
		Degree:         uint32(f.Degree()),
	}
	if f.Degree() > 1 {
		w.DefiningPolynomial = toUint32s(f.DefiningPolynomial())
	}
	return w
}

func fromWireField(w WireField) (*field.Field, error) {
	if w.Degree <= 1 {
		return field.NewPrimeField(int(w.Characteristic))
	}
	poly := make([]int, len(w.DefiningPolynomial))
	for i, c := range w.DefiningPolynomial {
		poly[i] = int(c)
	}
	return field.NewExtensionField(int(w.Characteristic), int(w.Degree), poly)
}

func toUint32s(values []int) []uint32 {
	res := make([]uint32, len(values))
	for i, v := range values {
		res[i] = uint32(v)
	}
	return res
}

func toElements(f *field.Field, values []uint32) ([]field.Element, error) {
	res := make([]field.Element, len(values))
	for i, v := range values {
		e, err := f.Element(int(v))
		if err != nil {
			return nil, xerrors.Errorf("value %d: %w", i, err)
		}
		res[i] = e
	}
	return res, nil
}

func MarshalField(f *field.Field) ([]byte, error) {
	if f == nil {
		return nil, xerrors.Errorf("nil field: %w", field.ErrInvalidArgument)
	}
	w := toWireField(f)
	return protobuf.Encode(&w)
}

// UnmarshalField rebuilds a field structurally equal to the marshalled one
func UnmarshalField(bs []byte) (*field.Field, error) {
	w := &WireField{}
	if err := protobuf.Decode(bs, w); err != nil {
		return nil, err
	}
	return fromWireField(*w)
}

func MarshalPolynomial(p *polynomial.Polynomial) ([]byte, error) {
	if p == nil {
		return nil, xerrors.Errorf("nil polynomial: %w", field.ErrInvalidArgument)
	}
	coefficients := p.Coefficients()
	values := make([]uint32, len(coefficients))
	for i, c := range coefficients {
		values[i] = uint32(c.Value())
	}
	w := &WirePolynomial{
		Field:        toWireField(p.Field()),
		Coefficients: values,
	}
	return protobuf.Encode(w)
}

func UnmarshalPolynomial(bs []byte) (*polynomial.Polynomial, error) {
	w := &WirePolynomial{}
	if err := protobuf.Decode(bs, w); err != nil {
		return nil, err
	}
	f, err := fromWireField(w.Field)
	if err != nil {
		return nil, err
	}
	coefficients, err := toElements(f, w.Coefficients)
	if err != nil {
		return nil, err
	}
	return polynomial.New(f, coefficients...)
}

// MarshalReceivedWord encodes a non empty word whose points share one field
func MarshalReceivedWord(word []listdecoding.Point) ([]byte, error) {
	if len(word) == 0 {
		return nil, xerrors.Errorf("empty received word: %w", field.ErrInvalidArgument)
	}
	f := word[0].X.Field()
	w := &WireReceivedWord{
		Field: toWireField(f),
		X:     make([]uint32, len(word)),
		Y:     make([]uint32, len(word)),
	}
	for i, pt := range word {
		if !f.Equal(pt.X.Field()) || !f.Equal(pt.Y.Field()) {
			return nil, xerrors.Errorf("position %d: %w", i, field.ErrFieldMismatch)
		}
		w.X[i] = uint32(pt.X.Value())
		w.Y[i] = uint32(pt.Y.Value())
	}
	return protobuf.Encode(w)
}

func UnmarshalReceivedWord(bs []byte) ([]listdecoding.Point, error) {
	w := &WireReceivedWord{}
	if err := protobuf.Decode(bs, w); err != nil {
		return nil, err
	}
	if len(w.X) != len(w.Y) {
		return nil, xerrors.Errorf("%d points for %d values: %w", len(w.X), len(w.Y), field.ErrInvalidArgument)
	}
	f, err := fromWireField(w.Field)
	if err != nil {
		return nil, err
	}
	xs, err := toElements(f, w.X)
	if err != nil {
		return nil, err
	}
	ys, err := toElements(f, w.Y)
	if err != nil {
		return nil, err
	}
	word := make([]listdecoding.Point, len(xs))
	for i := range word {
		word[i] = listdecoding.Point{X: xs[i], Y: ys[i]}
	}
	return word, nil
}
