package manager

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStateManager() *StateManager {
	return &StateManager{
		sessionID: "test-session",
		stats:     GameStats{History: make([]GameRecord, 0)},
	}
}

func TestRecordGameUpdatesHighScore(t *testing.T) {
	sm := newTestStateManager()
	now := time.Now()

	sm.RecordGame(30, now.Add(-time.Minute), now)
	sm.RecordGame(120, now.Add(-time.Minute), now)
	sm.RecordGame(50, now.Add(-time.Minute), now)

	if sm.GetHighScore() != 120 {
		t.Errorf("Expected high score 120, got %d", sm.GetHighScore())
	}
	if sm.GetGamesPlayed() != 3 {
		t.Errorf("Expected 3 games played, got %d", sm.GetGamesPlayed())
	}
	if avg := sm.GetAverageScore(); avg != 200.0/3.0 {
		t.Errorf("Expected average %f, got %f", 200.0/3.0, avg)
	}
}

func TestAverageScoreEmpty(t *testing.T) {
	sm := newTestStateManager()
	if avg := sm.GetAverageScore(); avg != 0 {
		t.Errorf("Expected average 0 with no games, got %f", avg)
	}
}

func TestSaveAndLoadStats(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "gamestats.json")
	now := time.Now().Truncate(time.Second)

	sm := newTestStateManager()
	sm.RecordGame(70, now.Add(-30*time.Second), now)
	if err := sm.SaveStats(filename); err != nil {
		t.Fatalf("SaveStats failed: %v", err)
	}

	loaded := newTestStateManager()
	if err := loaded.LoadStats(filename); err != nil {
		t.Fatalf("LoadStats failed: %v", err)
	}

	if loaded.GetHighScore() != 70 {
		t.Errorf("Expected high score 70 after reload, got %d", loaded.GetHighScore())
	}
	if loaded.GetGamesPlayed() != 1 {
		t.Errorf("Expected 1 game after reload, got %d", loaded.GetGamesPlayed())
	}
	rec := loaded.stats.History[0]
	if rec.Score != 70 || rec.SessionID != "test-session" {
		t.Errorf("Unexpected record after reload: %+v", rec)
	}
}
