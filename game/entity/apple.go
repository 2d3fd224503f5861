package entity

import (
	"errors"

	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

// MaxSpawnAttempts bounds the random sampling in RandomizePosition before it
// falls back to picking among the free cells directly.
const MaxSpawnAttempts = 1000

// ErrBoardFull is returned when every cell is occupied.
var ErrBoardFull = errors.New("board full: no free cell for apple")

type Apple struct {
	position types.Point
	rng      *rand.Rand
}

// NewApple places an apple anywhere except the snake's spawn cell.
func NewApple(rng *rand.Rand) *Apple {
	a := &Apple{rng: rng}
	// The center cell alone can never fill the board.
	_ = a.RandomizePosition()
	return a
}

func (a *Apple) Position() types.Point {
	return a.position
}

// RandomizePosition moves the apple to a uniformly random cell not in
// occupied. With no arguments the snake's spawn cell is excluded.
func (a *Apple) RandomizePosition(occupied ...types.Point) error {
	if len(occupied) == 0 {
		occupied = []types.Point{types.Center()}
	}

	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	for i := 0; i < MaxSpawnAttempts; i++ {
		p := a.randomCell()
		if _, ok := taken[p]; !ok {
			a.position = p
			return nil
		}
	}

	free := make([]types.Point, 0, max(types.Board.Cells()-len(taken), 0))
	for y := 0; y < types.Board.Height; y++ {
		for x := 0; x < types.Board.Width; x++ {
			p := types.Point{X: x * types.GridSize, Y: y * types.GridSize}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return ErrBoardFull
	}
	a.position = free[a.rng.Intn(len(free))]
	return nil
}

func (a *Apple) randomCell() types.Point {
	return types.Point{
		X: a.rng.Intn(types.Board.Width) * types.GridSize,
		Y: a.rng.Intn(types.Board.Height) * types.GridSize,
	}
}

// Place puts the apple on p without any occupancy check.
func (a *Apple) Place(p types.Point) {
	a.position = p
}
