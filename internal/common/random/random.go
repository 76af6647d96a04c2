package random

import (
	crand "crypto/rand"
	"errors"
	"io"
	"math/bits"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/fairdice/internal/common/random Source

// Define errors
var (
	ErrNonPositiveBound = errors.New("bound must be at least 1")
	ErrNegativeCount    = errors.New("byte count cannot be negative")
)

// Source yields cryptographically secure random bytes. It is injected into
// everything that consumes randomness so tests can substitute a
// deterministic sequence.
type Source interface {
	Read(p []byte) (n int, err error)
}

// CryptoSource implements Source using the operating system's CSPRNG
type CryptoSource struct{}

// NewCryptoSource creates a new crypto-backed source
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{}
}

// Read fills p with random bytes from crypto/rand
func (s *CryptoSource) Read(p []byte) (int, error) {
	return crand.Read(p)
}

// Bytes draws exactly n bytes from the source
func Bytes(src Source, n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(src, buf); err != nil {
		return nil, err
	}

	return buf, nil
}

// Int returns a uniformly distributed integer in [0, bound) using rejection
// sampling: draw just enough bytes to cover the range, interpret them as a
// big-endian unsigned integer, and redraw whenever the result falls outside
// the range. Out-of-range draws are rejected rather than reduced modulo the
// bound, which would skew the distribution.
func Int(src Source, bound int) (int, error) {
	if bound < 1 {
		return 0, ErrNonPositiveBound
	}

	if bound == 1 {
		return 0, nil
	}

	bitLen := bits.Len(uint(bound - 1))
	byteLen := (bitLen + 7) / 8
	// Mask off the high bits the range cannot reach so rejection stays rare.
	mask := byte(0xff >> (byteLen*8 - bitLen))

	buf := make([]byte, byteLen)
	for {
		if _, err := io.ReadFull(src, buf); err != nil {
			return 0, err
		}

		buf[0] &= mask

		v := 0
		for _, b := range buf {
			v = v<<8 | int(b)
		}

		if v < bound {
			return v, nil
		}
	}
}
