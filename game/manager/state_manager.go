package manager

import (
	"time"
)

// GameStats is a snapshot of the current session. Nothing is persisted.
type GameStats struct {
	Ticks       int
	ApplesEaten int
	Resets      int
	BestLength  int
	StartTime   time.Time
}

type StateManager struct {
	stats GameStats
	now   func() time.Time
}

func NewStateManager() *StateManager {
	sm := &StateManager{now: time.Now}
	sm.stats = GameStats{
		BestLength: 1,
		StartTime:  sm.now(),
	}
	return sm
}

func (sm *StateManager) RecordTick() {
	sm.stats.Ticks++
}

// RecordApple notes a consumed apple and the snake's new target length.
func (sm *StateManager) RecordApple(length int) {
	sm.stats.ApplesEaten++
	if length > sm.stats.BestLength {
		sm.stats.BestLength = length
	}
}

func (sm *StateManager) RecordReset() {
	sm.stats.Resets++
}

func (sm *StateManager) Stats() GameStats {
	return sm.stats
}

// Elapsed returns the time since the session started.
func (sm *StateManager) Elapsed() time.Duration {
	return sm.now().Sub(sm.stats.StartTime)
}
