package garden

import (
	"sync"
	"testing"

	"github.com/vovakirdan/bee-garden/internal/config"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	if _, ok, _ := s.Get("bee_best"); ok {
		t.Error("Empty store should have no value")
	}
	s.Set("bee_best", "10")
	if v, ok, _ := s.Get("bee_best"); !ok || v != "10" {
		t.Errorf("Get() = %q, %v; expected \"10\", true", v, ok)
	}
}

func TestMonotonicStoreNeverLowers(t *testing.T) {
	inner := NewMemoryStore()
	s := NewMonotonicStore(inner)

	steps := []struct {
		write    string
		expected string
	}{
		{"50", "50"},
		{"30", "50"},
		{"80", "80"},
		{"80", "80"},
		{"garbage", "80"},
	}

	for _, step := range steps {
		if err := s.Set("bee_best", step.write); err != nil {
			t.Fatalf("Set(%q) failed: %v", step.write, err)
		}
		if v, _, _ := inner.Get("bee_best"); v != step.expected {
			t.Errorf("After writing %q stored %q, expected %q", step.write, v, step.expected)
		}
	}
}

func TestMonotonicStoreReplacesMalformed(t *testing.T) {
	inner := NewMemoryStore()
	inner.Set("bee_best", "oops")
	s := NewMonotonicStore(inner)

	s.Set("bee_best", "20")
	if v, _, _ := inner.Get("bee_best"); v != "20" {
		t.Errorf("Malformed value should be replaced, got %q", v)
	}
}

func TestMonotonicStoreSharedBySessions(t *testing.T) {
	shared := NewMonotonicStore(NewMemoryStore())

	// Both sessions load best 0 before either finishes
	slow := New(config.DefaultGardenConfig(), WithStore(shared), WithSeed(1))
	fast := New(config.DefaultGardenConfig(), WithStore(shared), WithSeed(2))

	fast.Start()
	fast.score = 100
	fast.end()

	slow.Start()
	slow.score = 40
	slow.end()

	if v, _, _ := shared.Get("bee_best"); v != "100" {
		t.Errorf("Shared best = %q, expected the higher session's 100", v)
	}
}

func TestMonotonicStoreConcurrent(t *testing.T) {
	s := NewMonotonicStore(NewMemoryStore())

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Set("bee_best", FormatBest(n))
		}(i)
	}
	wg.Wait()

	if v, _, _ := s.Get("bee_best"); v != "50" {
		t.Errorf("Best = %q, expected 50", v)
	}
}
