package entity

import (
	"snake-game/game/types"
)

type Color struct {
	R, G, B uint8
}

// Snake stores its body tail-first: the head is always Body[len(Body)-1].
type Snake struct {
	Body      []types.Point
	Direction types.Direction // direction committed on the last step
	pending   types.Direction // requested direction for the next step
	Score     int
	Dead      bool
	GameOver  bool
	Color     Color
}

// NewSnake builds a snake of the given length with the head at headPos and
// the body extending away from dir, ready to move along dir.
func NewSnake(headPos types.Point, length int, dir types.Direction, color Color) *Snake {
	if length < 1 {
		length = 1
	}
	back := dir.Opposite().ToPoint()
	body := make([]types.Point, length)
	for i := 0; i < length; i++ {
		// Body[length-1] is the head, Body[0] the tail
		offset := length - 1 - i
		body[i] = types.Point{X: headPos.X + back.X*offset, Y: headPos.Y + back.Y*offset}
	}
	return &Snake{
		Body:      body,
		Direction: dir,
		pending:   dir,
		Score:     0,
		Dead:      false,
		GameOver:  false,
		Color:     color,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[0]
}

func (s *Snake) Length() int {
	return len(s.Body)
}

func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, newHead)
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[1:]
	}
}

// SetDirection records dir as the pending direction for the next step.
// A 180-degree turn relative to the committed direction is silently ignored,
// so mashing keys between two ticks can never reverse the snake into itself.
func (s *Snake) SetDirection(dir types.Direction) {
	if dir == types.NONE {
		return
	}
	if dir == s.Direction.Opposite() {
		return
	}
	s.pending = dir
}

// CommitDirection applies the pending request and returns the direction to
// move along for this step.
func (s *Snake) CommitDirection() types.Direction {
	if s.pending != types.NONE {
		s.Direction = s.pending
	}
	return s.Direction
}

// Occupies reports whether any body segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if p == part {
			return true
		}
	}
	return false
}

// Cells returns a head-first copy of the body, safe to hand to a renderer.
func (s *Snake) Cells() []types.Point {
	cells := make([]types.Point, len(s.Body))
	for i, p := range s.Body {
		cells[len(s.Body)-1-i] = p
	}
	return cells
}
