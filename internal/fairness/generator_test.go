package fairness

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/fairdice/internal/common/random"
)

// scriptedSource serves reads from a fixed byte stream, wrapping around when
// exhausted, so commitments can be reproduced exactly.
type scriptedSource struct {
	data []byte
	pos  int
}

func (s *scriptedSource) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = s.data[s.pos%len(s.data)]
		s.pos++
	}
	return len(p), nil
}

func newGenerator(t *testing.T, source random.Source) *Generator {
	t.Helper()

	gen, err := New(&Config{Source: source})
	require.NoError(t, err)

	return gen
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilConfig)

	_, err = New(&Config{})
	assert.ErrorIs(t, err, ErrNilSource)
}

func TestGenerate_InvalidRange(t *testing.T) {
	gen := newGenerator(t, random.NewCryptoSource())

	_, err := gen.Generate(1, 0)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestGenerate_ValueInRange(t *testing.T) {
	gen := newGenerator(t, random.NewCryptoSource())

	rapid.Check(t, func(t *rapid.T) {
		min := rapid.IntRange(0, 1000).Draw(t, "min")
		span := rapid.IntRange(0, 1000).Draw(t, "span")
		max := min + span

		c, err := gen.Generate(min, max)
		require.NoError(t, err)

		c.Tag()
		value, _, err := c.Reveal()
		require.NoError(t, err)

		assert.GreaterOrEqual(t, value, min)
		assert.LessOrEqual(t, value, max)
	})
}

func TestGenerate_TagRoundTrip(t *testing.T) {
	gen := newGenerator(t, random.NewCryptoSource())

	for i := 0; i < 100; i++ {
		c, err := gen.Generate(0, 5)
		require.NoError(t, err)

		tag := c.Tag()
		value, key, err := c.Reveal()
		require.NoError(t, err)

		assert.True(t, Verify(key, value, tag),
			"revealed value and key must reproduce the shown tag")
	}
}

func TestGenerate_FreshKeyPerCommitment(t *testing.T) {
	gen := newGenerator(t, random.NewCryptoSource())

	c1, err := gen.Generate(0, 5)
	require.NoError(t, err)
	c2, err := gen.Generate(0, 5)
	require.NoError(t, err)

	c1.Tag()
	c2.Tag()

	_, key1, err := c1.Reveal()
	require.NoError(t, err)
	_, key2, err := c2.Reveal()
	require.NoError(t, err)

	assert.NotEqual(t, key1, key2)
	assert.Len(t, key1, KeySize*2)
}

func TestReveal_BeforeTagShown(t *testing.T) {
	gen := newGenerator(t, random.NewCryptoSource())

	c, err := gen.Generate(0, 1)
	require.NoError(t, err)

	_, _, err = c.Reveal()
	assert.ErrorIs(t, err, ErrTagNotShown)
}

func TestReveal_Twice(t *testing.T) {
	gen := newGenerator(t, random.NewCryptoSource())

	c, err := gen.Generate(0, 1)
	require.NoError(t, err)

	c.Tag()
	_, _, err = c.Reveal()
	require.NoError(t, err)

	_, _, err = c.Reveal()
	assert.ErrorIs(t, err, ErrAlreadyRevealed)
}

func TestVerify_TamperDetection(t *testing.T) {
	gen := newGenerator(t, random.NewCryptoSource())

	c, err := gen.Generate(0, 5)
	require.NoError(t, err)

	tag := c.Tag()
	value, key, err := c.Reveal()
	require.NoError(t, err)

	t.Run("tampered value", func(t *testing.T) {
		assert.False(t, Verify(key, value+1, tag))
	})

	t.Run("tampered key", func(t *testing.T) {
		raw, err := hex.DecodeString(key)
		require.NoError(t, err)

		raw[0] ^= 0x01
		assert.False(t, Verify(hex.EncodeToString(raw), value, tag))
	})

	t.Run("tampered tag", func(t *testing.T) {
		raw, err := hex.DecodeString(tag)
		require.NoError(t, err)

		raw[len(raw)-1] ^= 0x80
		assert.False(t, Verify(key, value, hex.EncodeToString(raw)))
	})

	t.Run("malformed hex", func(t *testing.T) {
		assert.False(t, Verify("not-hex", value, tag))
		assert.False(t, Verify(key, value, "not-hex"))
	})
}

func TestGenerate_Uniformity(t *testing.T) {
	gen := newGenerator(t, random.NewCryptoSource())

	const (
		bins   = 6
		trials = 6000
	)

	counts := make([]int, bins)
	for i := 0; i < trials; i++ {
		c, err := gen.Generate(0, bins-1)
		require.NoError(t, err)

		c.Tag()
		value, _, err := c.Reveal()
		require.NoError(t, err)

		counts[value]++
	}

	// Chi-square goodness of fit against uniform, 5 degrees of freedom.
	// 20.515 is the critical value at p = 0.001, so a fair generator fails
	// this roughly once in a thousand runs.
	expected := float64(trials) / float64(bins)
	stat := 0.0
	for _, c := range counts {
		diff := float64(c) - expected
		stat += diff * diff / expected
	}

	assert.Less(t, stat, 20.515, "distribution over %v diverges from uniform", counts)
}

func TestGenerate_Deterministic(t *testing.T) {
	// The same byte stream must yield the same commitment, tag included.
	mk := func() (*Commitment, string) {
		gen := newGenerator(t, &scriptedSource{data: []byte{0x5a, 0x01, 0x33, 0x07}})
		c, err := gen.Generate(0, 5)
		require.NoError(t, err)
		return c, c.Tag()
	}

	c1, tag1 := mk()
	c2, tag2 := mk()

	v1, k1, err := c1.Reveal()
	require.NoError(t, err)
	v2, k2, err := c2.Reveal()
	require.NoError(t, err)

	assert.Equal(t, tag1, tag2)
	assert.Equal(t, v1, v2)
	assert.Equal(t, k1, k2)
}
