package manager

import (
	"snake-game/game/entity"
	"snake-game/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager places food on cells not occupied by the snake. It draws from
// an explicit free-cell list instead of retrying random coordinates, so a
// spawn is bounded in time and a full board is detected exactly rather than
// guessed at with a retry cap.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// FreeCells returns every grid cell not occupied by the snake.
func (fm *FoodManager) FreeCells(snake *entity.Snake) []types.Point {
	occupied := make(map[types.Point]bool, snake.Length())
	for _, part := range snake.Body {
		occupied[part] = true
	}

	free := make([]types.Point, 0, fm.grid.Cells()-snake.Length())
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}
	return free
}

// SpawnFood picks a uniformly random free cell. The second return value is
// false when the snake covers the whole grid and no food can be placed.
func (fm *FoodManager) SpawnFood(snake *entity.Snake) (types.Point, bool) {
	free := fm.FreeCells(snake)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}
