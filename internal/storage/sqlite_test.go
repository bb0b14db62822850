package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("trashpanda", "alice", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", "bob", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("trashpanda", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	for i, want := range []int{200, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
	}
	if scores[0].Player != "alice" {
		t.Errorf("Player = %q, expected alice", scores[0].Player)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be parsed")
	}

	other, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 score for the other game, got %d", len(other))
	}
}

func TestStoreEmptyPlayerIsDefault(t *testing.T) {
	store := openTemp(t)

	if _, err := store.SaveScore("trashpanda", "", 7); err != nil {
		t.Fatal(err)
	}
	scores, _ := store.TopScores("trashpanda", 1)
	if len(scores) != 1 || scores[0].Player != DefaultPlayer {
		t.Errorf("expected a %q entry, got %+v", DefaultPlayer, scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", "p", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limits fall back to ten
	all, _ := store.TopScores("test", 0)
	if len(all) != 5 {
		t.Errorf("TopScores(0) returned %d entries", len(all))
	}
}

func TestStoreHighScoreAndPlayerBest(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("trashpanda")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("trashpanda", "alice", 10)
	store.SaveScore("trashpanda", "bob", 30)
	store.SaveScore("trashpanda", "alice", 20)

	if high, _ := store.HighScore("trashpanda"); high != 30 {
		t.Errorf("HighScore() = %d, expected 30", high)
	}
	if best, _ := store.PlayerBest("trashpanda", "alice"); best != 20 {
		t.Errorf("PlayerBest(alice) = %d, expected 20", best)
	}
	if best, _ := store.PlayerBest("trashpanda", "carol"); best != 0 {
		t.Errorf("PlayerBest(carol) = %d, expected 0", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("trashpanda", "a", 100)
	store.SaveScore("trashpanda", "a", 200)
	store.SaveScore("other", "a", 300)

	if err := store.ClearScores("trashpanda"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("trashpanda", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Errorf("Other game scores should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTemp(t)

	empty, err := store.GetGameStats("trashpanda")
	if err != nil {
		t.Fatalf("GetGameStats() on empty table failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("trashpanda", "alice", 10)
	store.SaveScore("trashpanda", "bob", 20)
	store.SaveScore("trashpanda", "alice", 30)
	store.SaveScore("other", "alice", 5)

	stats, err := store.GetGameStats("trashpanda")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.Players != 2 || stats.HighScore != 30 || stats.TotalScore != 60 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["other"].HighScore != 5 {
		t.Errorf("all stats = %+v", all)
	}
}

func TestStoreMigratesLegacySchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "legacy.db")

	// A database from before scores had a player column
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`
		CREATE TABLE scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO scores (game_id, score) VALUES ('trashpanda', 42);
	`)
	db.Close()
	if err != nil {
		t.Fatal(err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on legacy database failed: %v", err)
	}

	scores, err := store.TopScores("trashpanda", 10)
	store.Close()
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 42 || scores[0].Player != DefaultPlayer {
		t.Errorf("legacy rows = %+v", scores)
	}

	// Re-opening an upgraded database is a no-op
	again, err := Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	again.Close()
}

func TestStoreNestedPath(t *testing.T) {
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
