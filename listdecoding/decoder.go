// Package listdecoding implements Guruswami–Sudan list decoding of
// polynomial evaluation codes: interpolation with multiplicities followed by
// Roth–Ruckenstein factorization.
package listdecoding

import (
	"runtime"
	"time"

	"student_25_listdecoding/factorization"
	"student_25_listdecoding/field"
	"student_25_listdecoding/interpolation"
	"student_25_listdecoding/logging"
	"student_25_listdecoding/polynomial"

	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
)

// Point is one position of a received word: the evaluation point and the
// received value.
type Point = interpolation.Point

// Config holds the tunables of a Decoder
type Config struct {
	// MaxMultiplicity bounds the root multiplicity tried when deriving the
	// parameters
	MaxMultiplicity int
	// Workers bounds the number of concurrent decodes in DecodeAll
	Workers int
	// Metrics is optional
	Metrics *Metrics
}

// DefaultConfig returns the configuration used by NewDefaultDecoder.
func DefaultConfig() Config {
	return Config{
		MaxMultiplicity: 8,
		Workers:         runtime.NumCPU(),
	}
}

// Decoder list decodes received words. It holds no state across calls and
// may be shared between goroutines.
type Decoder struct {
	conf       Config
	builder    *interpolation.Builder
	factorizer *factorization.Factorizer
	log        zerolog.Logger
}

// NewDecoder returns a decoder with the given configuration.
func NewDecoder(conf Config) *Decoder {
	if conf.MaxMultiplicity < 1 {
		conf.MaxMultiplicity = 1
	}
	if conf.Workers < 1 {
		conf.Workers = 1
	}
	return &Decoder{
		conf:       conf,
		builder:    interpolation.NewBuilder(),
		factorizer: factorization.NewFactorizer(),
		log:        logging.GetLogger("listdecoding"),
	}
}

// NewDefaultDecoder returns a decoder using DefaultConfig.
func NewDefaultDecoder() *Decoder {
	return NewDecoder(DefaultConfig())
}

// Decode returns every message polynomial of degree below k whose evaluations
// agree with receivedWord on at least minCorrectValuesCount positions, for an
// [n, k] code. An empty result means no such message exists and is not an
// error. The result is sorted by degree then coefficients.
//
// When minCorrectValuesCount is too small for any multiplicity up to
// Config.MaxMultiplicity to guarantee the messages are found, Decode fails
// with field.ErrInvalidArgument instead of returning a partial list. This is
// always the case at or below sqrt(n(k-1)) correct values.
func (d *Decoder) Decode(n, k int, receivedWord []Point, minCorrectValuesCount int) ([]*polynomial.Polynomial, error) {
	start := time.Now()
	candidates := 0
	res, err := d.decode(n, k, receivedWord, minCorrectValuesCount, &candidates)
	d.conf.Metrics.observe(start, candidates, len(res), err)
	return res, err
}

func (d *Decoder) decode(n, k int, receivedWord []Point, minCorrectValuesCount int,
	candidates *int) ([]*polynomial.Polynomial, error) {

	if len(receivedWord) != n {
		return nil, xerrors.Errorf("received word of length %d for code length %d: %w",
			len(receivedWord), n, field.ErrInvalidArgument)
	}
	if err := validateWord(receivedWord); err != nil {
		return nil, err
	}
	params, err := ComputeParameters(n, k, minCorrectValuesCount, d.conf.MaxMultiplicity)
	if err != nil {
		return nil, err
	}

	d.log.Debug().
		Int("n", n).
		Int("k", k).
		Int("minCorrect", minCorrectValuesCount).
		Int("multiplicity", params.Multiplicity).
		Int("weightedDegree", params.WeightedDegree).
		Int("listSize", params.ListSize).
		Msg("Decoding")

	q, err := d.builder.Build(params.Weight, params.WeightedDegree, receivedWord, params.Multiplicity)
	if err != nil {
		return nil, xerrors.Errorf("interpolation: %w", err)
	}

	factors, err := d.factorizer.Factorize(q, params.MaxFactorDegree)
	if err != nil {
		return nil, xerrors.Errorf("factorization: %w", err)
	}
	*candidates = len(factors)

	res := make([]*polynomial.Polynomial, 0, len(factors))
	for _, f := range factors {
		agreement, err := Agreement(f, receivedWord)
		if err != nil {
			return nil, err
		}
		if f.Degree() <= params.MaxFactorDegree && agreement >= minCorrectValuesCount {
			res = append(res, f)
		}
	}

	d.log.Info().
		Int("candidates", len(factors)).
		Int("decoded", len(res)).
		Msg("Decoded received word")
	return res, nil
}

// Agreement returns the number of positions where f evaluates to the
// received value.
func Agreement(f *polynomial.Polynomial, receivedWord []Point) (int, error) {
	count := 0
	for _, pt := range receivedWord {
		v, err := f.Evaluate(pt.X)
		if err != nil {
			return 0, err
		}
		if v.Equal(pt.Y) {
			count++
		}
	}
	return count, nil
}

// validateWord checks that the word lives in one field and that its
// evaluation points are distinct.
func validateWord(word []Point) error {
	if len(word) == 0 {
		return xerrors.Errorf("empty received word: %w", field.ErrInvalidArgument)
	}
	f := word[0].X.Field()
	if f == nil {
		return xerrors.Errorf("received word without field: %w", field.ErrInvalidArgument)
	}
	seen := make(map[int]struct{}, len(word))
	for i, pt := range word {
		if !f.Equal(pt.X.Field()) || !f.Equal(pt.Y.Field()) {
			return xerrors.Errorf("position %d: %w", i, field.ErrFieldMismatch)
		}
		if _, ok := seen[pt.X.Value()]; ok {
			return xerrors.Errorf("evaluation point %v used twice: %w", pt.X, field.ErrInvalidArgument)
		}
		seen[pt.X.Value()] = struct{}{}
	}
	return nil
}
