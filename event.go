package bouncy

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// EventType identifies the kind of an Event.
type EventType uint8

const (
	EventTick      EventType = iota // advance the simulation one step
	EventRedraw                     // hand a Frame to the renderer
	EventClick                      // left click at Event.Point (NDC)
	EventKey                        // key press carried in Event.Key
	EventDirection                  // arrow stimulus carried in Event.Direction
	EventMenu                       // context menu command in Event.Command
)

func (t EventType) String() string {
	switch t {
	case EventTick:
		return "tick"
	case EventRedraw:
		return "redraw"
	case EventClick:
		return "click"
	case EventKey:
		return "key"
	case EventDirection:
		return "direction"
	case EventMenu:
		return "menu"
	default:
		return fmt.Sprintf("event(%d)", uint8(t))
	}
}

// Direction is a speed tuning stimulus.
type Direction uint8

const (
	DirectionUp    Direction = iota // velocity up
	DirectionDown                   // velocity down
	DirectionLeft                   // rotation speed down
	DirectionRight                  // rotation speed up
)

var directionNames = [...]string{"up", "down", "left", "right"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// ParseDirection converts "up", "down", "left" or "right" to a Direction.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return 0, errors.Errorf("unknown direction %q", s)
}

// MenuCommand is an entry of the context menu.
type MenuCommand uint8

const (
	MenuDefineBoundary MenuCommand = iota // reset everything and draw a boundary
	MenuDefineObject                      // reset the object and draw a new one
	MenuStartMovement                     // enable translation
)

// MenuCommands lists the context menu entries in display order.
var MenuCommands = []MenuCommand{MenuDefineBoundary, MenuDefineObject, MenuStartMovement}

// Label returns the text shown in the context menu.
func (c MenuCommand) Label() string {
	switch c {
	case MenuDefineBoundary:
		return "Define Boundary"
	case MenuDefineObject:
		return "Define Object"
	case MenuStartMovement:
		return "Start Movement"
	default:
		return fmt.Sprintf("Command %d", uint8(c))
	}
}

func (c MenuCommand) String() string {
	switch c {
	case MenuDefineBoundary:
		return "define-boundary"
	case MenuDefineObject:
		return "define-object"
	case MenuStartMovement:
		return "start-movement"
	default:
		return fmt.Sprintf("command(%d)", uint8(c))
	}
}

// ParseMenuCommand accepts either the String form ("define-boundary") or the
// Label form ("Define Boundary"), case-insensitively.
func ParseMenuCommand(s string) (MenuCommand, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, " ", "-")
	norm = strings.ReplaceAll(norm, "_", "-")
	for _, c := range MenuCommands {
		if c.String() == norm {
			return c, nil
		}
	}
	return 0, errors.Errorf("unknown menu command %q", s)
}

// Event is one input to the loop. Only the field matching Type is read.
type Event struct {
	Type      EventType
	Point     Point
	Key       rune
	Direction Direction
	Command   MenuCommand
}

func (e Event) String() string {
	switch e.Type {
	case EventClick:
		return fmt.Sprintf("click(%.3f, %.3f)", e.Point.X, e.Point.Y)
	case EventKey:
		return fmt.Sprintf("key(%q)", e.Key)
	case EventDirection:
		return "direction(" + e.Direction.String() + ")"
	case EventMenu:
		return "menu(" + e.Command.String() + ")"
	default:
		return e.Type.String()
	}
}

// Tick, Redraw, Click, Key, Direction and Menu build events of each type.

func Tick() Event                      { return Event{Type: EventTick} }
func Redraw() Event                    { return Event{Type: EventRedraw} }
func Click(p Point) Event              { return Event{Type: EventClick, Point: p} }
func Key(r rune) Event                 { return Event{Type: EventKey, Key: r} }
func DirectionInput(d Direction) Event { return Event{Type: EventDirection, Direction: d} }
func Menu(c MenuCommand) Event         { return Event{Type: EventMenu, Command: c} }
