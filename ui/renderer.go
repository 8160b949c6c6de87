package ui

import (
	"fmt"

	"snake-game/game/types"
	"snake-game/session"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const borderPadding = 10 // Padding around game area

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) Draw(snap session.Snapshot) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := int32(r.screenHeight / 45) // Dynamic font size
	statsHeight := fontSize + borderPadding

	// Calculate available space for grid after border padding and stats line
	availableWidth := r.screenWidth - (borderPadding * 2)
	availableHeight := r.screenHeight - (borderPadding * 3) - statsHeight

	// Calculate cell size based on available space and grid dimensions
	cellW := availableWidth / int32(snap.Grid.Width)
	cellH := availableHeight / int32(snap.Grid.Height)
	r.cellSize = min(cellW, cellH)

	r.totalGridWidth = r.cellSize * int32(snap.Grid.Width)
	r.totalGridHeight = r.cellSize * int32(snap.Grid.Height)

	// Position grid at the top with padding
	r.offsetX = borderPadding
	r.offsetY = borderPadding

	// Draw grid background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)

	r.drawSnake(snap)

	// Draw food
	rl.DrawRectangle(
		r.offsetX+int32(snap.Food.X*int(r.cellSize)),
		r.offsetY+int32(snap.Food.Y*int(r.cellSize)),
		r.cellSize, r.cellSize, rl.Red)

	r.drawStats(snap, fontSize)
	r.drawOverlay(snap, fontSize)

	rl.EndDrawing()
}

func (r *Renderer) drawSnake(snap session.Snapshot) {
	bodyColor := rl.Color{R: snap.Color.R, G: snap.Color.G, B: snap.Color.B, A: 255}

	// Cells are head first
	for i, p := range snap.Cells {
		color := bodyColor
		if i == 0 { // Head
			color = rl.Color{
				R: uint8(float32(snap.Color.R) * 1.3),
				G: uint8(float32(snap.Color.G) * 1.3),
				B: uint8(float32(snap.Color.B) * 1.3),
				A: 255,
			}
		}
		rl.DrawRectangle(
			r.offsetX+int32(p.X*int(r.cellSize)),
			r.offsetY+int32(p.Y*int(r.cellSize)),
			r.cellSize, r.cellSize, color)
	}

	if len(snap.Cells) > 0 {
		r.drawHeadMarker(snap.Cells[0], snap.Direction)
	}
}

// drawHeadMarker draws the yellow triangle showing where the head points.
func (r *Renderer) drawHeadMarker(head types.Point, dir types.Direction) {
	headX := r.offsetX + int32(head.X*int(r.cellSize))
	headY := r.offsetY + int32(head.Y*int(r.cellSize))
	halfCell := r.cellSize / 2

	switch dir {
	case types.RIGHT:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	case types.LEFT:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	case types.DOWN:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	case types.UP:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	}
}

func (r *Renderer) drawStats(snap session.Snapshot, fontSize int32) {
	yOffset := r.offsetY + r.totalGridHeight + borderPadding
	xOffset := r.offsetX + 10
	spacing := int32(180) // Fixed spacing between stats

	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), xOffset, yOffset, fontSize, rl.White)
	xOffset += spacing

	rl.DrawText(fmt.Sprintf("High Score: %d", snap.HighScore), xOffset, yOffset, fontSize, rl.Green)
	xOffset += spacing

	rl.DrawText(fmt.Sprintf("Games: %d", snap.GamesPlayed), xOffset, yOffset, fontSize, rl.White)
	xOffset += spacing

	rl.DrawText(fmt.Sprintf("Avg Score: %.1f", snap.AvgScore), xOffset, yOffset, fontSize, rl.Green)
	xOffset += spacing

	rl.DrawText(fmt.Sprintf("Speed: %dms", snap.Speed.Milliseconds()), xOffset, yOffset, fontSize, rl.Purple)
}

func (r *Renderer) drawOverlay(snap session.Snapshot, fontSize int32) {
	centerX := r.offsetX + r.totalGridWidth/2
	centerY := r.offsetY + r.totalGridHeight/2
	bigFont := fontSize * 2

	center := func(text string, size int32) int32 {
		return centerX - rl.MeasureText(text, size)/2
	}

	switch snap.Phase {
	case session.PhaseNotStarted:
		msg := "Press SPACE to start"
		rl.DrawText(msg, center(msg, fontSize), centerY, fontSize, rl.White)
	case session.PhasePaused:
		msg := "PAUSED"
		rl.DrawText(msg, center(msg, bigFont), centerY-bigFont/2, bigFont, rl.Yellow)
	case session.PhaseGameOver:
		msg := "GAME OVER"
		hint := "Press SPACE to restart"
		rl.DrawText(msg, center(msg, bigFont), centerY-bigFont, bigFont, rl.Red)
		rl.DrawText(hint, center(hint, fontSize), centerY+fontSize, fontSize, rl.White)
	case session.PhaseWon:
		msg := "YOU WIN"
		hint := "Press SPACE to restart"
		rl.DrawText(msg, center(msg, bigFont), centerY-bigFont, bigFont, rl.Green)
		rl.DrawText(hint, center(hint, fontSize), centerY+fontSize, fontSize, rl.White)
	}
}
