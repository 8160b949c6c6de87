package session

import (
	"log"
	"time"

	"snake-game/game"
	"snake-game/game/entity"
	"snake-game/game/manager"
	"snake-game/game/types"

	"golang.org/x/exp/rand"
)

// Phase is the lifecycle state of a single game instance.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
	PhaseWon
)

// Key is a rendering-agnostic input event. The mapping from raw key codes
// (raylib, terminal, whatever drives the session) happens outside.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyRight
	KeyDown
	KeyLeft
	KeyStart
	KeyPause
	KeyRestart
	KeyToggle
)

// Snapshot is a read-only view of the session handed to the renderer.
type Snapshot struct {
	Grid        types.Grid
	Cells       []types.Point // head first
	Direction   types.Direction
	Food        types.Point
	Color       entity.Color
	Score       int
	HighScore   int
	GamesPlayed int
	AvgScore    float64
	Speed       time.Duration
	Phase       Phase
}

// Session owns one live game and the scheduling of its ticks. All calls are
// expected from a single goroutine (the frame loop); at most one tick is
// pending at a time, tracked by the due timestamp.
type Session struct {
	cfg   game.Config
	rng   *rand.Rand
	game  *game.Game
	stats *manager.StateManager

	phase      Phase
	due        time.Time // zero when no tick is scheduled
	dueGen     uint64    // generation the pending tick was scheduled against
	generation uint64    // bumped on restart so a stale tick is discardable
}

func NewSession(cfg game.Config, rng *rand.Rand, stats *manager.StateManager) (*Session, error) {
	g, err := game.NewGame(cfg, rng)
	if err != nil {
		return nil, err
	}
	return &Session{
		cfg:   cfg,
		rng:   rng,
		game:  g,
		stats: stats,
		phase: PhaseNotStarted,
	}, nil
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) Game() *game.Game {
	return s.game
}

func (s *Session) over() bool {
	return s.phase == PhaseGameOver || s.phase == PhaseWon
}

// Start schedules the first tick one interval from now. Redundant starts and
// starts after the game has ended are no-ops.
func (s *Session) Start(now time.Time) {
	if s.phase == PhaseRunning || s.over() {
		return
	}
	s.phase = PhaseRunning
	s.game.Running = true
	s.due = now.Add(s.game.Speed)
	s.dueGen = s.generation
}

// Pause cancels the pending tick; idempotent.
func (s *Session) Pause() {
	if s.phase != PhaseRunning {
		return
	}
	s.phase = PhasePaused
	s.game.Running = false
	s.due = time.Time{}
}

// Restart throws the current game away and builds a fresh one. A game
// abandoned mid-run is recorded in the stats before being dropped; a game
// that already ended was recorded by Advance when it finished.
func (s *Session) Restart(now time.Time) {
	if s.game.Steps > 0 && !s.game.Over {
		s.recordGame(now)
	}

	s.generation++
	s.due = time.Time{}

	g, err := game.NewGame(s.cfg, s.rng)
	if err != nil {
		// cfg was validated when the session was built
		log.Printf("restart failed: %v", err)
		return
	}
	s.game = g
	s.phase = PhaseNotStarted
}

// Toggle is the context-sensitive space-bar action: pause while running,
// start while paused or not started, restart once the game is over.
func (s *Session) Toggle(now time.Time) {
	switch {
	case s.over():
		s.Restart(now)
	case s.phase == PhaseRunning:
		s.Pause()
	default:
		s.Start(now)
	}
}

// HandleKey dispatches one input event. Unmapped keys are ignored.
func (s *Session) HandleKey(k Key, now time.Time) {
	switch k {
	case KeyUp:
		s.game.RequestDirection(types.UP)
	case KeyRight:
		s.game.RequestDirection(types.RIGHT)
	case KeyDown:
		s.game.RequestDirection(types.DOWN)
	case KeyLeft:
		s.game.RequestDirection(types.LEFT)
	case KeyStart:
		s.Start(now)
	case KeyPause:
		s.Pause()
	case KeyRestart:
		s.Restart(now)
	case KeyToggle:
		s.Toggle(now)
	}
}

// Advance runs at most one due tick. The caller drives it every frame with
// the current time; tests drive it with a manual clock. The next tick is
// scheduled with the post-step speed so a speedup takes effect immediately.
func (s *Session) Advance(now time.Time) (bool, game.StepResult) {
	if s.phase != PhaseRunning || s.due.IsZero() || now.Before(s.due) {
		return false, game.ResultContinued
	}
	// A tick scheduled against an older game generation must not touch the
	// current one, and a cancelled game must not be stepped even if a due
	// time survived; re-check both before acting.
	if s.dueGen != s.generation || !s.game.Running {
		s.due = time.Time{}
		return false, game.ResultContinued
	}

	result := s.game.Step()

	switch result {
	case game.ResultGameOver:
		s.phase = PhaseGameOver
		s.due = time.Time{}
		s.recordGame(now)
	case game.ResultBoardFull:
		s.phase = PhaseWon
		s.due = time.Time{}
		s.recordGame(now)
	default:
		s.due = now.Add(s.game.Speed)
	}

	return true, result
}

func (s *Session) recordGame(now time.Time) {
	if s.stats == nil {
		return
	}
	s.stats.RecordGame(s.game.GetSnake().Score, s.game.StartTime, now)
}

// Snapshot copies the state the renderer needs.
func (s *Session) Snapshot() Snapshot {
	snake := s.game.GetSnake()
	snap := Snapshot{
		Grid:      s.game.Grid,
		Cells:     snake.Cells(),
		Direction: snake.Direction,
		Food:      s.game.GetFood(),
		Color:     snake.Color,
		Score:     snake.Score,
		Speed:     s.game.Speed,
		Phase:     s.phase,
	}
	if s.stats != nil {
		snap.HighScore = s.stats.GetHighScore()
		snap.GamesPlayed = s.stats.GetGamesPlayed()
		snap.AvgScore = s.stats.GetAverageScore()
	}
	return snap
}
