package builtins

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource is the generator behind RND and RANDOMIZE
type RandomSource interface {
	Float64() float64
	Seed(seed int64)
}

// lockedSource is a *rand.Rand safe for concurrent use
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource creates a generator with a fixed seed, so runs that
// share a seed draw the same sequence
func NewRandomSource(seed int64) RandomSource {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

// NewTimeSeededSource creates a generator seeded from the clock
func NewTimeSeededSource() RandomSource {
	return NewRandomSource(time.Now().UnixNano())
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Seed(seed)
}

var defaultRandom = NewTimeSeededSource()
