package manager

import (
	"the-snake/game/types"
)

// SelfCollisionWindow is the number of leading body cells skipped when
// looking for a self collision. It is a heuristic against false positives
// right behind the head, not a geometric bound; keep it at 4.
const SelfCollisionWindow = 4

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsSelfCollision reports whether the head (body[0]) overlaps the body past
// the first SelfCollisionWindow cells.
func (cm *CollisionManager) IsSelfCollision(body []types.Point) bool {
	if len(body) <= SelfCollisionWindow {
		return false
	}

	head := body[0]
	for _, part := range body[SelfCollisionWindow:] {
		if part == head {
			return true
		}
	}
	return false
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// IsOnBoard reports whether pos is a grid-aligned cell inside the board.
func (cm *CollisionManager) IsOnBoard(pos types.Point) bool {
	return pos.X >= 0 && pos.X < cm.grid.Width*types.GridSize &&
		pos.Y >= 0 && pos.Y < cm.grid.Height*types.GridSize &&
		pos.X%types.GridSize == 0 && pos.Y%types.GridSize == 0
}
