package state

// Event is a structural event on an element stack.
type Event struct {
	Type EventType

	// Tag is the element name. It is informational on close events.
	Tag string

	// ID identifies the element owner. Zero means anonymous: a close
	// event with ID 0 pops whatever is on top.
	ID uint64
}

// EventType represents the type of a structural event.
type EventType int

const (
	EventOpen EventType = iota
	EventClose
)

func (t EventType) String() string {
	switch t {
	case EventOpen:
		return "Open"
	case EventClose:
		return "Close"
	default:
		return "Unknown"
	}
}
