package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/bee-garden/internal/config"
	"github.com/vovakirdan/bee-garden/internal/garden"
)

// Store persists the garden's best score.
var _ garden.BestStore = (*Store)(nil)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestStoreOpenClose(t *testing.T) {
	_, dbPath := openTestStore(t)

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSettings(t *testing.T) {
	store, _ := openTestStore(t)

	if _, ok, err := store.Get("bee_best"); err != nil || ok {
		t.Fatalf("Get() on empty store = ok %v, err %v; expected no value", ok, err)
	}

	if err := store.Set("bee_best", "40"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("bee_best", "90"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, ok, err := store.Get("bee_best")
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v", ok, err)
	}
	if v != "90" {
		t.Errorf("Expected the latest value 90, got %q", v)
	}
}

func TestStoreSettingsSurviveReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Set("bee_best", "120")
	store.SaveScore(uuid.NewString(), 120)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store.Close()

	if v, _, _ := store.Get("bee_best"); v != "120" {
		t.Errorf("Best should persist across reopen, got %q", v)
	}
	if high, _ := store.HighScore(); high != 120 {
		t.Errorf("History should persist across reopen, high = %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store, _ := openTestStore(t)

	runs := []struct {
		id    string
		score int
	}{
		{uuid.NewString(), 100},
		{uuid.NewString(), 50},
		{uuid.NewString(), 200},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r.id, r.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].RunID != runs[2].id {
		t.Errorf("Top run ID = %s, expected %s", scores[0].RunID, runs[2].id)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store, _ := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(uuid.NewString(), (i+1)*100)
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTopScoresTiesKeepOrder(t *testing.T) {
	store, _ := openTestStore(t)

	first, _ := store.SaveScore("first", 70)
	store.SaveScore("second", 70)

	scores, _ := store.TopScores(1)
	if len(scores) != 1 || scores[0].ID != first {
		t.Errorf("Tied scores should rank the earlier run first, got %v", scores)
	}
}

func TestStoreRecentScores(t *testing.T) {
	store, _ := openTestStore(t)

	for _, s := range []int{30, 10, 20} {
		store.SaveScore(uuid.NewString(), s)
	}

	scores, err := store.RecentScores(2)
	if err != nil {
		t.Fatalf("RecentScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 20 || scores[1].Score != 10 {
		t.Errorf("Expected newest first [20 10], got %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store, _ := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 with no runs, got %d", high)
	}

	store.SaveScore(uuid.NewString(), 100)
	store.SaveScore(uuid.NewString(), 300)
	store.SaveScore(uuid.NewString(), 200)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store, _ := openTestStore(t)

	store.SaveScore(uuid.NewString(), 100)
	store.SaveScore(uuid.NewString(), 200)
	store.Set("bee_best", "200")
	store.Set("theme", "dark")

	if err := store.ClearScores("bee_best"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.AllScores(); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if _, ok, _ := store.Get("bee_best"); ok {
		t.Error("Best score should be cleared")
	}
	if _, ok, _ := store.Get("theme"); !ok {
		t.Error("Other settings should not be affected")
	}
}

func TestStoreAllScores(t *testing.T) {
	store, _ := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore(uuid.NewString(), i*10)
	}

	scores, err := store.AllScores()
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store, _ := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.HighScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Empty stats = %+v", stats)
	}

	for _, s := range []int{10, 20, 60} {
		store.SaveScore(uuid.NewString(), s)
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.HighScore != 60 || stats.TotalScore != 90 {
		t.Errorf("Stats = %+v", stats)
	}
	if stats.AvgScore != 30 {
		t.Errorf("AvgScore = %f, expected 30", stats.AvgScore)
	}
	if time.Since(stats.LastPlayed) > 24*time.Hour {
		t.Errorf("LastPlayed = %v, expected recent", stats.LastPlayed)
	}
}

func TestStoreConcurrentWriters(t *testing.T) {
	store, _ := openTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				if _, err := store.SaveScore(uuid.NewString(), n*10+j); err != nil {
					t.Errorf("SaveScore() failed: %v", err)
				}
			}
		}(i)
	}
	wg.Wait()

	if scores, _ := store.AllScores(); len(scores) != 80 {
		t.Errorf("Expected 80 scores, got %d", len(scores))
	}
}

func TestStoreBacksGameBest(t *testing.T) {
	store, _ := openTestStore(t)
	store.Set("bee_best", "not a number")

	g := garden.New(config.DefaultGardenConfig(), garden.WithStore(store), garden.WithSeed(1))
	if g.Best() != 0 {
		t.Errorf("Malformed stored best should read as 0, got %d", g.Best())
	}

	store.Set("bee_best", "75")
	g = garden.New(config.DefaultGardenConfig(), garden.WithStore(store), garden.WithSeed(1))
	if g.Best() != 75 {
		t.Errorf("Best = %d, expected 75 from the store", g.Best())
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
