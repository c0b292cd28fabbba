package qsim

import (
	"math/rand"
	"time"
)

// DefaultTolerance is the absolute tolerance used for normalization and
// unitarity checks.
const DefaultTolerance = 1e-5

// Config carries the tunables of a simulation. Rand is the randomness
// source drawn from during measurement; inject a seeded generator to
// make measurement outcomes reproducible.
type Config struct {
	Tolerance float64
	Rand      *rand.Rand
}

func NewConfig() *Config {
	return &Config{
		Tolerance: DefaultTolerance,
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededConfig returns a Config whose measurement outcomes replay
// deterministically for a given seed.
func NewSeededConfig(seed int64) *Config {
	cfg := NewConfig()
	cfg.Rand = rand.New(rand.NewSource(seed))
	return cfg
}
