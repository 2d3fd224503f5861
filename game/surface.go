package game

import (
	"the-snake/game/types"
)

// Surface is where a frame is drawn. Calls arrive once per tick in the
// order FillBackground, DrawCell for every snake cell, DrawCell for the
// apple, Present.
type Surface interface {
	FillBackground(c types.Color)
	DrawCell(pos types.Point, fill, border types.Color)
	Present()
}

type EventKind int

const (
	EventKeyDown EventKind = iota + 1
	EventQuit
)

// Event is a single input event. Direction is set for EventKeyDown only.
type Event struct {
	Kind      EventKind
	Direction types.Direction
}

func KeyDown(d types.Direction) Event {
	return Event{Kind: EventKeyDown, Direction: d}
}

func Quit() Event {
	return Event{Kind: EventQuit}
}

// InputSource returns every event queued since the previous call without
// blocking.
type InputSource interface {
	PollEvents() []Event
}

// Clock paces the loop.
type Clock interface {
	WaitForNextTick(rateHz int)
}

// Listener is told about notable game events. Implementations must not block.
type Listener interface {
	AppleEaten(length int)
	SnakeReset(length int)
}
