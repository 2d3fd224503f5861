package entity

import (
	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

// Snake is the player-controlled body. The head is Body()[0].
type Snake struct {
	body       []types.Point
	direction  types.Direction
	pending    types.Direction
	hasPending bool
	length     int
	rng        *rand.Rand
}

func NewSnake(rng *rand.Rand) *Snake {
	s := &Snake{rng: rng}
	s.Reset()
	return s
}

// Reset puts the snake back on the center cell with length 1 and a random heading.
func (s *Snake) Reset() {
	s.body = append(s.body[:0], types.Center())
	s.direction = types.Directions[s.rng.Intn(len(types.Directions))]
	s.pending = 0
	s.hasPending = false
	s.length = 1
}

// SetPendingDirection buffers d for the next Move. A reversal of the
// current direction is rejected and leaves any earlier buffered turn intact.
func (s *Snake) SetPendingDirection(d types.Direction) bool {
	if !d.Valid() || d == s.direction.Opposite() {
		return false
	}
	s.pending = d
	s.hasPending = true
	return true
}

// Move advances the head one cell, wrapping at the board edges, and trims the
// tail down to the target length.
func (s *Snake) Move() {
	if s.hasPending {
		s.direction = s.pending
		s.pending = 0
		s.hasPending = false
	}

	v := s.direction.Vector()
	newHead := s.Head().Add(types.Point{X: v.X * types.GridSize, Y: v.Y * types.GridSize}).Wrap()

	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead

	if len(s.body) > s.length {
		s.body = s.body[:s.length]
	}
}

// Grow raises the target length by one; the body catches up on the next Move.
func (s *Snake) Grow() {
	s.length++
}

func (s *Snake) Head() types.Point {
	return s.body[0]
}

// Body returns a copy of the occupied cells, head first.
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

// Pending returns the buffered direction, if any.
func (s *Snake) Pending() (types.Direction, bool) {
	return s.pending, s.hasPending
}

// Length is the target length, not necessarily len(Body()).
func (s *Snake) Length() int {
	return s.length
}

// Place overwrites the body and heading. The target length becomes at least
// len(body). Used to set up positions that random play rarely reaches.
func (s *Snake) Place(body []types.Point, d types.Direction) {
	if len(body) == 0 {
		return
	}
	s.body = append(s.body[:0], body...)
	s.direction = d
	s.pending = 0
	s.hasPending = false
	if s.length < len(body) {
		s.length = len(body)
	}
}
