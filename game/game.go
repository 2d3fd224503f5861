package game

import (
	"errors"

	"the-snake/game/entity"
	"the-snake/game/manager"
	"the-snake/game/types"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// Game holds one snake, one apple and the per-tick rules between them.
type Game struct {
	Grid  types.Grid
	snake *entity.Snake
	apple *entity.Apple

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	listeners []Listener
	log       zerolog.Logger
}

func NewGame(rng *rand.Rand, log zerolog.Logger) *Game {
	grid := types.Board
	snake := entity.NewSnake(rng)
	apple := entity.NewApple(rng)
	collisionMgr := manager.NewCollisionManager(grid)

	return &Game{
		Grid:         grid,
		snake:        snake,
		apple:        apple,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(apple, collisionMgr),
		stateMgr:     manager.NewStateManager(),
		log:          log,
	}
}

// AddListener registers l for apple and reset notifications.
func (g *Game) AddListener(l Listener) {
	g.listeners = append(g.listeners, l)
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetApple() *entity.Apple {
	return g.apple
}

func (g *Game) Stats() manager.GameStats {
	return g.stateMgr.Stats()
}

// HandleInput applies queued events to the snake. It reports false as soon
// as a quit event is seen; later events are dropped.
func (g *Game) HandleInput(events []Event) bool {
	for _, ev := range events {
		switch ev.Kind {
		case EventQuit:
			return false
		case EventKeyDown:
			g.snake.SetPendingDirection(ev.Direction)
		}
	}
	return true
}

// Update advances the game one tick: move, then check self collision, then
// the apple. A collision resets the snake and leaves the apple alone.
func (g *Game) Update() {
	g.stateMgr.RecordTick()
	g.snake.Move()

	if g.collisionMgr.IsSelfCollision(g.snake.Body()) {
		length := g.snake.Length()
		g.snake.Reset()
		g.stateMgr.RecordReset()
		g.log.Info().
			Int("length", length).
			Int("resets", g.stateMgr.Stats().Resets).
			Msg("Snake hit itself")
		for _, l := range g.listeners {
			l.SnakeReset(length)
		}
		return
	}

	eaten, err := g.foodMgr.TryConsume(g.snake)
	if err != nil {
		if errors.Is(err, entity.ErrBoardFull) {
			g.log.Warn().Err(err).Int("length", g.snake.Length()).Msg("Apple left in place")
		} else {
			g.log.Err(err).Msg("Apple relocation")
		}
	}
	if eaten {
		g.stateMgr.RecordApple(g.snake.Length())
		g.log.Debug().
			Int("length", g.snake.Length()).
			Int("apple_x", g.apple.Position().X).
			Int("apple_y", g.apple.Position().Y).
			Msg("Apple eaten")
		for _, l := range g.listeners {
			l.AppleEaten(g.snake.Length())
		}
	}
}

// Step handles input and, unless it asked to quit, updates the game.
func (g *Game) Step(events []Event) bool {
	if !g.HandleInput(events) {
		return false
	}
	g.Update()
	return true
}

// Draw renders the current state onto s.
func (g *Game) Draw(s Surface) {
	s.FillBackground(types.BoardBackgroundColor)
	for _, p := range g.snake.Body() {
		s.DrawCell(p, types.SnakeColor, types.BorderColor)
	}
	s.DrawCell(g.apple.Position(), types.AppleColor, types.BorderColor)
	s.Present()
}
