package balancer

import (
	"fmt"
	"math"

	"party-lab/errors"
)

const (
	DefaultMinSize = 3
	DefaultMaxSize = 5
)

// Config bounds the size of every generated party.
type Config struct {
	MinSize int
	MaxSize int
}

func DefaultConfig() Config {
	return Config{MinSize: DefaultMinSize, MaxSize: DefaultMaxSize}
}

// Validate rejects non-positive bounds and inverted ranges.
func (c Config) Validate() error {
	if c.MinSize <= 0 || c.MaxSize <= 0 {
		return fmt.Errorf("%w: party sizes must be positive, got min=%d max=%d",
			errors.ErrInvalidConfiguration, c.MinSize, c.MaxSize)
	}
	if c.MinSize > c.MaxSize {
		return fmt.Errorf("%w: min party size %d exceeds max party size %d",
			errors.ErrInvalidConfiguration, c.MinSize, c.MaxSize)
	}
	return nil
}

// IdealSize is the midpoint of the allowed range.
func (c Config) IdealSize() float64 {
	return float64(c.MinSize+c.MaxSize) / 2
}

// PartyCount returns how many parties count characters are split into.
//
// The count is the one making each party's size closest to IdealSize.
// A roster smaller than MinSize still yields a single party so that a
// session is never blocked by the size floor.
func (c Config) PartyCount(count int) int {
	if count <= 0 {
		return 0
	}
	if count < c.MinSize {
		return 1
	}
	k := int(math.Round(float64(count) / c.IdealSize()))
	return max(1, min(k, count))
}
