package manager

import (
	"fmt"

	"the-snake/game/entity"
	"the-snake/game/types"
)

type FoodManager struct {
	apple        *entity.Apple
	collisionMgr *CollisionManager
}

func NewFoodManager(apple *entity.Apple, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		apple:        apple,
		collisionMgr: collisionMgr,
	}
}

// TryConsume grows the snake and relocates the apple when the head is on it.
// eaten is true even if relocation failed; the apple then stays put.
func (fm *FoodManager) TryConsume(snake *entity.Snake) (eaten bool, err error) {
	if !fm.collisionMgr.IsFoodCollision(snake.Head(), fm.apple.Position()) {
		return false, nil
	}

	snake.Grow()
	if err := fm.apple.RandomizePosition(snake.Body()...); err != nil {
		return true, fmt.Errorf("relocate apple: %w", err)
	}
	return true, nil
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.apple.Position()
}
