package sim

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRandomSource_Math_SameSeedSameSequence(t *testing.T) {
	a, err := NewRandomSource(RNGMath, 42)
	require.NoError(t, err)
	b, err := NewRandomSource(RNGMath, 42)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Float64(), b.Float64(), "draw %d", i)
	}
}

func TestNewRandomSource_Stream_InUnitInterval(t *testing.T) {
	src, err := NewRandomSource(RNGStream, 1)
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		v := src.Float64()
		assert.True(t, v >= 0 && v < 1, "draw %d = %v outside [0, 1)", i, v)
	}
}

func TestNewRandomSource_Stream_SameSeedSameSequence(t *testing.T) {
	a, err := NewRandomSource(RNGStream, 7)
	require.NoError(t, err)
	b, err := NewRandomSource(RNGStream, 7)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Float64(), b.Float64(), "draw %d", i)
	}

	c, err := NewRandomSource(RNGStream, 8)
	require.NoError(t, err)
	d, err := NewRandomSource(RNGStream, 7)
	require.NoError(t, err)
	assert.NotEqual(t, c.Float64(), d.Float64(), "different seeds should give different streams")
}

func TestNewRandomSource_Stream_ConcurrentConstruction(t *testing.T) {
	const n = 8
	firsts := make([]float64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			src, err := NewRandomSource(RNGStream, 42)
			if err != nil {
				t.Error(err)
				return
			}
			firsts[i] = src.Float64()
		}(i)
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		assert.Equal(t, firsts[0], firsts[i], "source %d", i)
	}
}

func TestStreamSeed_WordsInRange(t *testing.T) {
	for _, seed := range []int64{0, 1, -1, 42, math.MaxInt64, math.MinInt64} {
		words := streamSeed(seed)
		for i, w := range words {
			m := uint64(mrgM1)
			if i >= 3 {
				m = mrgM2
			}
			assert.NotZero(t, w, "seed %d word %d", seed, i)
			assert.Less(t, w, m, "seed %d word %d", seed, i)
		}
		assert.Equal(t, words, streamSeed(seed))
	}
}

func TestNewRandomSource_Unknown(t *testing.T) {
	_, err := NewRandomSource("lcg", 1)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.False(t, IsValidRNGKind("lcg"))
	assert.True(t, IsValidRNGKind(""))
}
