package console

import (
	"testing"
	"time"

	"the-snake/game"
	"the-snake/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

func newTestConsole(t *testing.T) (*Console, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	c, err := NewWithScreen(screen)
	if err != nil {
		t.Fatal(err)
	}
	w, h := Size()
	screen.SetSize(w, h)
	t.Cleanup(c.Close)
	return c, screen
}

func TestSize(t *testing.T) {
	w, h := Size()
	if w != 64 || h != 24 {
		t.Errorf("Size() = %dx%d, want 64x24", w, h)
	}
}

func TestDrawCell(t *testing.T) {
	c, screen := newTestConsole(t)

	c.FillBackground(types.BoardBackgroundColor)
	c.DrawCell(types.Point{X: 60, Y: 40}, types.SnakeColor, types.BorderColor)
	c.Present()

	want := tcell.StyleDefault.Background(toTcell(types.SnakeColor)).Foreground(toTcell(types.BorderColor))
	for i, r := range []rune{'[', ']'} {
		got, _, style, _ := screen.GetContent(6+i, 2)
		if got != r {
			t.Errorf("column %d: rune %q, want %q", 6+i, got, r)
		}
		if style != want {
			t.Errorf("column %d: unexpected style", 6+i)
		}
	}

	bg := tcell.StyleDefault.Background(toTcell(types.BoardBackgroundColor))
	if got, _, style, _ := screen.GetContent(0, 0); got != ' ' || style != bg {
		t.Errorf("background cell = %q with unexpected style", got)
	}
}

func TestDrawGameFrame(t *testing.T) {
	c, screen := newTestConsole(t)

	g := game.NewGame(rand.New(rand.NewSource(1)), zerolog.Nop())
	g.GetSnake().Place([]types.Point{{X: 620, Y: 460}}, types.Right)
	g.GetApple().Place(types.Point{X: 0, Y: 0})
	g.Draw(c)

	apple := tcell.StyleDefault.Background(toTcell(types.AppleColor)).Foreground(toTcell(types.BorderColor))
	if r, _, style, _ := screen.GetContent(0, 0); r != '[' || style != apple {
		t.Errorf("apple cell = %q, want apple style", r)
	}
	if r, _, _, _ := screen.GetContent(63, 23); r != ']' {
		t.Errorf("bottom-right cell = %q, want ']'", r)
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want game.Event
	}{
		{"arrow up", tcell.KeyUp, 0, game.KeyDown(types.Up)},
		{"arrow down", tcell.KeyDown, 0, game.KeyDown(types.Down)},
		{"arrow left", tcell.KeyLeft, 0, game.KeyDown(types.Left)},
		{"arrow right", tcell.KeyRight, 0, game.KeyDown(types.Right)},
		{"w", tcell.KeyRune, 'w', game.KeyDown(types.Up)},
		{"d", tcell.KeyRune, 'd', game.KeyDown(types.Right)},
		{"escape", tcell.KeyEscape, 0, game.Quit()},
		{"ctrl-c", tcell.KeyCtrlC, 0, game.Quit()},
		{"q", tcell.KeyRune, 'q', game.Quit()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, screen := newTestConsole(t)
			screen.InjectKey(tt.key, tt.r, tcell.ModNone)

			events := pollUntil(t, c, 1)
			if events[0] != tt.want {
				t.Errorf("event = %+v, want %+v", events[0], tt.want)
			}
		})
	}
}

func TestPollEventsIgnoresUnmappedKeys(t *testing.T) {
	c, screen := newTestConsole(t)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)

	events := pollUntil(t, c, 1)
	if len(events) != 1 || events[0] != game.KeyDown(types.Up) {
		t.Errorf("events = %+v, want only up", events)
	}
}

func TestPollEventsDoesNotBlock(t *testing.T) {
	c, _ := newTestConsole(t)

	done := make(chan []game.Event)
	go func() { done <- c.PollEvents() }()

	select {
	case events := <-done:
		if len(events) != 0 {
			t.Errorf("events = %+v, want none", events)
		}
	case <-time.After(time.Second):
		t.Fatal("PollEvents blocked with an empty queue")
	}
}

// pollUntil drains the console until at least n events arrived; the pump
// goroutine delivers injected keys asynchronously.
func pollUntil(t *testing.T, c *Console, n int) []game.Event {
	t.Helper()
	var events []game.Event
	deadline := time.Now().Add(2 * time.Second)
	for len(events) < n {
		if time.Now().After(deadline) {
			t.Fatalf("got %d events, want %d", len(events), n)
		}
		events = append(events, c.PollEvents()...)
		time.Sleep(5 * time.Millisecond)
	}
	return events
}
