package manager

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	DataDir   = "data"
	StatsFile = DataDir + "/gamestats.json"
)

// GameRecord rappresenta i dati di una singola partita conclusa.
type GameRecord struct {
	SessionID string    `json:"sessionId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
}

// GameStats contiene il punteggio massimo e lo storico delle partite.
type GameStats struct {
	HighScore int          `json:"highScore"`
	History   []GameRecord `json:"history"`
}

// StateManager persiste le statistiche di gioco su file in formato JSON.
// Ogni processo riceve un proprio session id con cui marca le partite.
type StateManager struct {
	sessionID string
	stats     GameStats
}

func NewStateManager() *StateManager {
	sm := &StateManager{
		sessionID: uuid.New().String(),
		stats: GameStats{
			History: make([]GameRecord, 0),
		},
	}

	if err := os.MkdirAll(DataDir, 0755); err != nil {
		log.Printf("warning: could not create data directory: %v", err)
	}

	if err := sm.LoadStats(StatsFile); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load stats: %v", err)
	}

	return sm
}

// RecordGame aggiunge una partita conclusa allo storico e aggiorna
// il punteggio massimo.
func (sm *StateManager) RecordGame(score int, startTime, endTime time.Time) {
	sm.stats.History = append(sm.stats.History, GameRecord{
		SessionID: sm.sessionID,
		StartTime: startTime,
		EndTime:   endTime,
		Score:     score,
	})
	if score > sm.stats.HighScore {
		sm.stats.HighScore = score
	}
}

func (sm *StateManager) GetHighScore() int {
	return sm.stats.HighScore
}

// GetGamesPlayed restituisce il numero totale di partite registrate.
func (sm *StateManager) GetGamesPlayed() int {
	return len(sm.stats.History)
}

// GetAverageScore calcola e restituisce il punteggio medio.
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.stats.History) == 0 {
		return 0
	}
	total := 0
	for _, rec := range sm.stats.History {
		total += rec.Score
	}
	return float64(total) / float64(len(sm.stats.History))
}

// SaveStats salva le statistiche su file.
func (sm *StateManager) SaveStats(filename string) error {
	data, err := json.MarshalIndent(sm.stats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats data: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create stats directory: %v", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %v", err)
	}

	return nil
}

// LoadStats carica le statistiche da file.
func (sm *StateManager) LoadStats(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return err
	}

	sm.stats = stats
	if sm.stats.History == nil {
		sm.stats.History = make([]GameRecord, 0)
	}
	return nil
}
