package ui

import (
	"the-snake/game"
	"the-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const windowTitle = "Snake"

// Renderer is the raylib window front-end. It is both the draw surface and
// the input source for the game loop.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	drawing      bool
}

// NewRenderer opens the window. Close must be called to release it.
func NewRenderer() *Renderer {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(types.ScreenWidth, types.ScreenHeight, windowTitle)
	// Pacing belongs to the game loop's clock.
	rl.SetTargetFPS(0)

	return &Renderer{
		cellSize:     types.GridSize,
		screenWidth:  types.ScreenWidth,
		screenHeight: types.ScreenHeight,
	}
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}

func toRL(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func (r *Renderer) FillBackground(c types.Color) {
	if !r.drawing {
		rl.BeginDrawing()
		r.drawing = true
	}
	rl.ClearBackground(toRL(c))
}

func (r *Renderer) DrawCell(pos types.Point, fill, border types.Color) {
	x, y := int32(pos.X), int32(pos.Y)
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, toRL(fill))
	rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, toRL(border))
}

func (r *Renderer) Present() {
	if !r.drawing {
		rl.BeginDrawing()
	}
	rl.EndDrawing()
	r.drawing = false
}

var keyDirections = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyW:     types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyS:     types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyA:     types.Left,
	rl.KeyRight: types.Right,
	rl.KeyD:     types.Right,
}

// PollEvents drains raylib's key queue. Closing the window (or Escape,
// raylib's default exit key) is reported as a quit.
func (r *Renderer) PollEvents() []game.Event {
	var events []game.Event

	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if d, ok := keyDirections[key]; ok {
			events = append(events, game.KeyDown(d))
		}
	}

	if rl.WindowShouldClose() {
		events = append(events, game.Quit())
	}
	return events
}
