package playback

import "github.com/cockroachdb/errors"

// ErrUnknownEvent is returned when an event type name is not recognized.
var ErrUnknownEvent = errors.New("unknown player event")

// EventType represents a player widget callback type.
type EventType int

const (
	EventReady       EventType = iota // Widget finished loading
	EventStateChange                  // Widget playback state changed
	EventError                        // Widget failed to play the current item
)

// String returns the string representation of the event type.
func (e EventType) String() string {
	switch e {
	case EventReady:
		return "ready"
	case EventStateChange:
		return "state_change"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseEventType parses an event type name.
func ParseEventType(name string) (EventType, error) {
	switch name {
	case "ready":
		return EventReady, nil
	case "state_change":
		return EventStateChange, nil
	case "error":
		return EventError, nil
	default:
		return 0, errors.Wrapf(ErrUnknownEvent, "%q", name)
	}
}

// Event represents a callback reported by the player widget, together with
// the widget's playlist position at the time it fired.
type Event struct {
	Type     EventType
	State    State     // New state (EventStateChange)
	Error    ErrorCode // Error code (EventError)
	Index    int       // Current playlist index
	Playlist []string  // Current playlist video IDs (nil if unknown)
}

// Dispatch delivers the event to the handler method matching its type.
func (e Event) Dispatch(h Handler) {
	switch e.Type {
	case EventReady:
		h.OnReady()
	case EventStateChange:
		h.OnStateChange(e.State)
	case EventError:
		h.OnError(e.Error)
	}
}
