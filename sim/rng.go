package sim

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/iti/rngstream"
)

// RandomSource yields uniform variates in [0, 1).
// *rand.Rand satisfies it directly. Tests inject scripted sources.
//
// Thread-safety: a RandomSource belongs to exactly one Simulator and is
// drawn from sequentially; it is never shared across runs.
type RandomSource interface {
	Float64() float64
}

// RNGKind names a RandomSource implementation.
type RNGKind string

const (
	// RNGMath uses math/rand seeded from the run seed. Runs with the same
	// seed and config are bit-for-bit identical.
	RNGMath RNGKind = "math"

	// RNGStream uses an MRG32k3a stream from rngstream whose six-word
	// state is derived from the run seed.
	RNGStream RNGKind = "mrg32k3a"
)

var validRNGKinds = map[RNGKind]bool{
	RNGMath:   true,
	RNGStream: true,
	"":        true, // empty defaults to math
}

// IsValidRNGKind returns true if kind is a recognized RandomSource name.
func IsValidRNGKind(kind string) bool {
	return validRNGKinds[RNGKind(kind)]
}

// NewRandomSource builds a fresh RandomSource for one run.
func NewRandomSource(kind RNGKind, seed int64) (RandomSource, error) {
	switch kind {
	case RNGMath, "":
		return rand.New(rand.NewSource(seed)), nil
	case RNGStream:
		src, err := newStreamSource(seed)
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		return nil, fmt.Errorf("%w: unknown rng %q; valid: math, mrg32k3a", ErrInvalidConfig, kind)
	}
}

// MRG32k3a moduli; seed words must lie in [1, m) for their component.
const (
	mrgM1 = 4294967087
	mrgM2 = 4294944443
)

// streamMu serializes rngstream.New, which advances package-level state.
var streamMu sync.Mutex

func newStreamSource(seed int64) (*streamSource, error) {
	streamMu.Lock()
	stream := rngstream.New(fmt.Sprintf("dumptruck-%d", seed))
	streamMu.Unlock()

	words := streamSeed(seed)
	if !stream.SetSeed(words[:]) {
		return nil, fmt.Errorf("%w: rejected mrg32k3a seed %v", ErrInvalidConfig, words)
	}
	return &streamSource{stream: stream}, nil
}

// streamSeed expands seed into six MRG32k3a seed words with splitmix64.
// Every word is non-zero and below its component's modulus.
func streamSeed(seed int64) [6]uint64 {
	var words [6]uint64
	x := uint64(seed)
	for i := range words {
		x += 0x9e3779b97f4a7c15
		z := x
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		z ^= z >> 31
		m := uint64(mrgM1)
		if i >= 3 {
			m = mrgM2
		}
		words[i] = z%(m-1) + 1
	}
	return words
}

// streamSource adapts an rngstream.RngStream to RandomSource.
type streamSource struct {
	stream *rngstream.RngStream
}

// Float64 returns the next variate of the stream, which lies in (0, 1).
func (s *streamSource) Float64() float64 {
	return s.stream.RandU01()
}
