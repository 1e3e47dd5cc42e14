package garden

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/bee-garden/internal/config"
)

// frame is one reference tick at 60 FPS.
const frame = time.Second / 60

// scriptedSource replays fixed draws, falling back to the middle of the range.
type scriptedSource struct {
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

// countingStore records writes and can be told to fail them.
type countingStore struct {
	*MemoryStore
	sets    int
	failSet bool
	failGet bool
}

func newCountingStore() *countingStore {
	return &countingStore{MemoryStore: NewMemoryStore()}
}

func (s *countingStore) Get(key string) (string, bool, error) {
	if s.failGet {
		return "", false, errors.New("disk on fire")
	}
	return s.MemoryStore.Get(key)
}

func (s *countingStore) Set(key, value string) error {
	s.sets++
	if s.failSet {
		return errors.New("disk full")
	}
	return s.MemoryStore.Set(key, value)
}

// newTestGame creates a game on the default 480x480 board with a manual clock.
func newTestGame(t *testing.T, opts ...Option) (*Game, *ManualClock) {
	t.Helper()
	clock := NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	base := []Option{WithClock(clock), WithSeed(1)}
	g := New(config.DefaultGardenConfig(), append(base, opts...)...)
	return g, clock
}

// quiet pushes both spawn countdowns far into the future so a test controls
// the pools by hand.
func quiet(g *Game) {
	g.spawner.pickupTimer = 1e9
	g.spawner.hazardTimer = 1e9
}
