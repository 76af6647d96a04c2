package fairness

import (
	"crypto/hmac"
	"encoding/binary"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/KirkDiggler/fairdice/internal/common/random"
)

// KeySize is the length in bytes of the per-commitment secret key
const KeySize = 32

// Generator produces committed random values. Each call to Generate draws a
// fresh secret key and value; keys are never reused across commitments.
type Generator struct {
	source random.Source
}

// Config holds configuration for the generator
type Config struct {
	// Source supplies the cryptographically secure randomness
	Source random.Source
}

// New creates a new commitment generator
func New(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Source == nil {
		return nil, ErrNilSource
	}

	return &Generator{
		source: cfg.Source,
	}, nil
}

// Commitment binds a secret value drawn in [min, max] to an authentication
// tag. The tag can be shown before the counterparty acts; the value and key
// stay hidden until Reveal. A commitment is single use: one tag, one reveal.
type Commitment struct {
	key      []byte
	value    int
	min      int
	max      int
	tag      []byte
	tagShown bool
	revealed bool
}

// Generate draws a uniformly distributed value in [min, max] together with a
// fresh secret key and computes the tag that commits to the value
func (g *Generator) Generate(min, max int) (*Commitment, error) {
	if max < min {
		return nil, ErrInvalidRange
	}

	key, err := random.Bytes(g.source, KeySize)
	if err != nil {
		return nil, err
	}

	offset, err := random.Int(g.source, max-min+1)
	if err != nil {
		return nil, err
	}

	value := min + offset

	return &Commitment{
		key:   key,
		value: value,
		min:   min,
		max:   max,
		tag:   computeTag(key, value),
	}, nil
}

// Range returns the closed interval the committed value was drawn from
func (c *Commitment) Range() (min, max int) {
	return c.min, c.max
}

// Tag returns the commitment's authentication tag as uppercase hex and marks
// the commitment as shown. It must be called before Reveal.
func (c *Commitment) Tag() string {
	c.tagShown = true
	return encodeHex(c.tag)
}

// Reveal discloses the committed value and the key needed to verify the tag.
// It fails if the tag was never shown or if the commitment was already
// revealed; both indicate the fairness guarantee has been compromised.
func (c *Commitment) Reveal() (value int, key string, err error) {
	if !c.tagShown {
		return 0, "", ErrTagNotShown
	}

	if c.revealed {
		return 0, "", ErrAlreadyRevealed
	}

	c.revealed = true

	return c.value, encodeHex(c.key), nil
}

// Verify recomputes the tag from a revealed key and value and compares it in
// constant time against the tag shown before the reveal
func Verify(keyHex string, value int, tagHex string) bool {
	key, err := hex.DecodeString(strings.ToLower(keyHex))
	if err != nil {
		return false
	}

	tag, err := hex.DecodeString(strings.ToLower(tagHex))
	if err != nil {
		return false
	}

	return hmac.Equal(computeTag(key, value), tag)
}

// computeTag produces an HMAC-SHA3-256 tag over the canonical big-endian
// encoding of the value. Committed values are never negative.
func computeTag(key []byte, value int) []byte {
	mac := hmac.New(sha3.New256, key)

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(value))
	mac.Write(buf[:])

	return mac.Sum(nil)
}

func encodeHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
