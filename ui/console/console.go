// Package console is the terminal front-end. Every board cell is drawn as
// two terminal columns so cells look roughly square.
package console

import (
	"fmt"

	"the-snake/game"
	"the-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	cellColumns = 2
	eventBuffer = 100
)

// Console draws the board on a tcell screen and turns key presses into game
// events.
type Console struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
}

// New initializes the terminal screen.
func New() (*Console, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	return NewWithScreen(screen)
}

// NewWithScreen takes ownership of screen, initializes it and starts the
// event pump.
func NewWithScreen(screen tcell.Screen) (*Console, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	c := &Console{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		quit:   make(chan struct{}),
	}
	go c.pump()
	return c, nil
}

// pump forwards the screen's blocking PollEvent into a buffered channel so
// PollEvents can drain it without blocking. It stops when the screen is
// finalized.
func (c *Console) pump() {
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case c.events <- ev:
		case <-c.quit:
			return
		}
	}
}

func (c *Console) Close() {
	close(c.quit)
	c.screen.Fini()
}

func toTcell(col types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B))
}

// Size returns the board size in terminal columns and rows.
func Size() (width, height int) {
	return types.GridWidth * cellColumns, types.GridHeight
}

func (c *Console) FillBackground(col types.Color) {
	style := tcell.StyleDefault.Background(toTcell(col))
	c.screen.Fill(' ', style)
}

// DrawCell paints the cell in the fill color. The border color becomes the
// glyph color since a single terminal cell has no room for an outline.
func (c *Console) DrawCell(pos types.Point, fill, border types.Color) {
	style := tcell.StyleDefault.Background(toTcell(fill)).Foreground(toTcell(border))
	x := pos.X / types.GridSize * cellColumns
	y := pos.Y / types.GridSize
	c.screen.SetContent(x, y, '[', nil, style)
	c.screen.SetContent(x+1, y, ']', nil, style)
}

func (c *Console) Present() {
	c.screen.Show()
}

// PollEvents returns the events received since the last call.
func (c *Console) PollEvents() []game.Event {
	var events []game.Event
	for {
		select {
		case ev := <-c.events:
			if e, ok := translate(ev); ok {
				events = append(events, e)
			}
		default:
			return events
		}
	}
}

func translate(ev tcell.Event) (game.Event, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return game.Event{}, false
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Quit(), true
	case tcell.KeyUp:
		return game.KeyDown(types.Up), true
	case tcell.KeyDown:
		return game.KeyDown(types.Down), true
	case tcell.KeyLeft:
		return game.KeyDown(types.Left), true
	case tcell.KeyRight:
		return game.KeyDown(types.Right), true
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q', 'Q':
			return game.Quit(), true
		case 'w', 'W':
			return game.KeyDown(types.Up), true
		case 's', 'S':
			return game.KeyDown(types.Down), true
		case 'a', 'A':
			return game.KeyDown(types.Left), true
		case 'd', 'D':
			return game.KeyDown(types.Right), true
		}
	}
	return game.Event{}, false
}
