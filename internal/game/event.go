package game

import (
	"github.com/vovakirdan/bricks/internal/brick"
	"github.com/vovakirdan/bricks/internal/core"
)

// EventKind classifies something that happened during a tick or transition.
type EventKind int

const (
	EventPaddleHit EventKind = iota
	EventBrickHit            // Brick struck but survived
	EventBrickDestroyed
	EventBorderHit
	EventBallLost
	EventLevelComplete
	EventLevelStart
	EventGameOver
	EventAllLevelsDone
)

var eventNames = [...]string{
	EventPaddleHit:      "paddle-hit",
	EventBrickHit:       "brick-hit",
	EventBrickDestroyed: "brick-destroyed",
	EventBorderHit:      "border-hit",
	EventBallLost:       "ball-lost",
	EventLevelComplete:  "level-complete",
	EventLevelStart:     "level-start",
	EventGameOver:       "game-over",
	EventAllLevelsDone:  "all-levels-done",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is emitted by Session.Tick and Session.Advance.
type Event struct {
	Kind  EventKind
	Level int            // Level index at the time of the event
	Brick brick.Kind     // Kind of the struck brick
	Face  core.Direction // Struck brick face or border
}

func (c Collision) events() []Event {
	var ev []Event
	if c.Paddle {
		ev = append(ev, Event{Kind: EventPaddleHit})
	}
	if c.Brick != nil {
		k := EventBrickHit
		if c.Destroyed {
			k = EventBrickDestroyed
		}
		ev = append(ev, Event{Kind: k, Brick: c.Brick.Kind(), Face: c.Face})
	}
	if c.Border != core.DirNone {
		ev = append(ev, Event{Kind: EventBorderHit, Face: c.Border})
	}
	if c.Lost {
		ev = append(ev, Event{Kind: EventBallLost})
	}
	return ev
}
