package game

import (
	"fmt"
	"time"

	"snake-game/game/entity"
	"snake-game/game/manager"
	"snake-game/game/types"

	"golang.org/x/exp/rand"
)

// Config holds the fixed parameters a game is created with.
type Config struct {
	GridSize      int
	InitialLength int
	InitialSpeed  time.Duration
}

func DefaultConfig() Config {
	return Config{
		GridSize:      types.GridSize,
		InitialLength: types.InitialLength,
		InitialSpeed:  types.InitialSpeed,
	}
}

// Validate rejects parameter combinations the simulation cannot start from.
func (c Config) Validate() error {
	if c.GridSize < 2 {
		return fmt.Errorf("grid size %d too small, need at least 2", c.GridSize)
	}
	if c.InitialLength < 1 {
		return fmt.Errorf("initial length %d invalid, need at least 1", c.InitialLength)
	}
	if c.InitialLength >= c.GridSize {
		return fmt.Errorf("initial length %d does not fit on a %dx%d grid", c.InitialLength, c.GridSize, c.GridSize)
	}
	if c.InitialSpeed < types.SpeedFloor {
		return fmt.Errorf("initial speed %v below minimum interval %v", c.InitialSpeed, types.SpeedFloor)
	}
	return nil
}

// StepResult is the outcome of a single simulation tick.
type StepResult int

const (
	ResultContinued StepResult = iota
	ResultGameOver
	ResultBoardFull
)

type Game struct {
	Grid      types.Grid
	snake     *entity.Snake
	food      types.Point
	Speed     time.Duration
	Running   bool
	Over      bool
	Won       bool
	Steps     int
	StartTime time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

// NewGame builds a fresh game from cfg: a horizontal snake centered on the
// grid moving right, food on a random free cell, score zero, not running.
func NewGame(cfg Config, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid := types.Grid{
		Width:  cfg.GridSize,
		Height: cfg.GridSize,
	}

	color := entity.Color{
		R: uint8(rng.Intn(200) + 55),
		G: uint8(rng.Intn(200) + 55),
		B: uint8(rng.Intn(200) + 55),
	}
	head := types.Point{X: grid.Width / 2, Y: grid.Height / 2}
	snake := entity.NewSnake(head, cfg.InitialLength, types.RIGHT, color)

	game := &Game{
		Grid:         grid,
		snake:        snake,
		Speed:        cfg.InitialSpeed,
		Running:      false,
		Over:         false,
		Steps:        0,
		StartTime:    time.Now(),
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, rng),
	}

	food, ok := game.foodMgr.SpawnFood(snake)
	if !ok {
		return nil, fmt.Errorf("no free cell for food on a %dx%d grid", grid.Width, grid.Height)
	}
	game.food = food

	return game, nil
}

// ElapsedTime restituisce la durata corrente della partita in secondi.
func (g *Game) ElapsedTime() float64 {
	return time.Since(g.StartTime).Seconds()
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.food
}

// RequestDirection records dir for the next step; a request that would
// reverse the committed direction is dropped.
func (g *Game) RequestDirection(dir types.Direction) {
	if g.Over {
		return
	}
	g.snake.SetDirection(dir)
}

// Step advances the simulation by one tick.
func (g *Game) Step() StepResult {
	if g.Over {
		if g.Won {
			return ResultBoardFull
		}
		return ResultGameOver
	}

	g.Steps++

	dir := g.snake.CommitDirection()
	newHead := g.snake.GetHead().Add(dir.ToPoint())

	// Collisions are checked against the pre-move body: the tail cell is not
	// vacated until after the head lands, so it is fatal too.
	if collision := g.collisionMgr.CheckMove(newHead, g.snake); collision != types.NoCollision {
		g.snake.Dead = true
		g.snake.GameOver = true
		g.Running = false
		g.Over = true
		return ResultGameOver
	}

	ateFood := g.collisionMgr.IsFoodCollision(newHead, g.food)

	g.snake.Move(newHead)

	if ateFood {
		g.snake.Score += types.ScoreReward
		g.applySpeedup()

		food, ok := g.foodMgr.SpawnFood(g.snake)
		if !ok {
			// Snake covers the whole grid, nowhere left to put food.
			g.Running = false
			g.Over = true
			g.Won = true
			return ResultBoardFull
		}
		g.food = food
	} else {
		g.snake.RemoveTail()
	}

	return ResultContinued
}

// applySpeedup shortens the tick interval every SpeedupThreshold points
// until the interval reaches the floor, where it stays.
func (g *Game) applySpeedup() {
	if g.snake.Score%types.SpeedupThreshold != 0 {
		return
	}
	if g.Speed <= types.SpeedFloor {
		return
	}
	g.Speed -= types.SpeedupDecrement
	if g.Speed < types.SpeedFloor {
		g.Speed = types.SpeedFloor
	}
}
