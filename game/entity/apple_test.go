package entity

import (
	"errors"
	"testing"

	"the-snake/game/types"
)

func TestNewAppleAvoidsSpawnCell(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 1000; i++ {
		a := NewApple(rng)
		if a.Position() == types.Center() {
			t.Fatalf("trial %d: apple spawned on center", i)
		}
	}
}

func TestRandomizePositionAvoidsBody(t *testing.T) {
	rng := newTestRand()
	a := NewApple(rng)
	s := NewSnake(rng)

	for trial := 0; trial < 1000; trial++ {
		// Long random snakes make collisions with naive sampling likely.
		s.Reset()
		for i := 0; i < 200; i++ {
			s.Grow()
			s.SetPendingDirection(types.Directions[rng.Intn(4)])
			s.Move()
		}
		body := s.Body()

		if err := a.RandomizePosition(body...); err != nil {
			t.Fatalf("trial %d: %v", trial, err)
		}
		for _, p := range body {
			if p == a.Position() {
				t.Fatalf("trial %d: apple placed on body cell %v", trial, p)
			}
		}
	}
}

func TestRandomizePositionIsGridAligned(t *testing.T) {
	a := NewApple(newTestRand())
	for i := 0; i < 1000; i++ {
		if err := a.RandomizePosition(); err != nil {
			t.Fatal(err)
		}
		p := a.Position()
		if p.X%types.GridSize != 0 || p.Y%types.GridSize != 0 {
			t.Fatalf("position %v not aligned to grid", p)
		}
		if p.X < 0 || p.X >= types.ScreenWidth || p.Y < 0 || p.Y >= types.ScreenHeight {
			t.Fatalf("position %v off board", p)
		}
	}
}

func allCells() []types.Point {
	cells := make([]types.Point, 0, types.Board.Cells())
	for y := 0; y < types.Board.Height; y++ {
		for x := 0; x < types.Board.Width; x++ {
			cells = append(cells, types.Point{X: x * types.GridSize, Y: y * types.GridSize})
		}
	}
	return cells
}

func TestRandomizePositionFindsLastFreeCell(t *testing.T) {
	cells := allCells()
	last := cells[137]
	occupied := append(append([]types.Point{}, cells[:137]...), cells[138:]...)

	a := NewApple(newTestRand())
	if err := a.RandomizePosition(occupied...); err != nil {
		t.Fatal(err)
	}
	if a.Position() != last {
		t.Errorf("position = %v, want only free cell %v", a.Position(), last)
	}
}

func TestRandomizePositionBoardFull(t *testing.T) {
	a := NewApple(newTestRand())
	before := a.Position()

	err := a.RandomizePosition(allCells()...)
	if !errors.Is(err, ErrBoardFull) {
		t.Fatalf("err = %v, want ErrBoardFull", err)
	}
	if a.Position() != before {
		t.Errorf("position changed on full board: %v -> %v", before, a.Position())
	}
}
