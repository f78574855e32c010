package state

import (
	"errors"
	"strings"
)

var (
	// ErrEmpty is returned when a close event arrives with nothing open.
	ErrEmpty = errors.New("close with no open element")
	// ErrNotTop is returned when a close event names an element which
	// is open but is not the innermost one.
	ErrNotTop = errors.New("close of element which is not innermost")
	// ErrUnknown is returned when a close event names an element which
	// is not open at all.
	ErrUnknown = errors.New("close of element which is not open")
)

// State provides minimal stack/path management for open elements.
// It only processes events and tracks state; it writes nothing.
type State struct {
	stack []Event
}

// NewState creates a new State for tracking open elements.
func NewState() *State {
	return &State{}
}

func (s *State) pop() {
	n := len(s.stack)
	s.stack = s.stack[:n-1]
}

// ProcessEvent processes an event and updates the stack.
// Call this for each event in order. A rejected event leaves the
// stack unchanged.
func (s *State) ProcessEvent(event *Event) error {
	switch event.Type {
	case EventOpen:
		s.stack = append(s.stack, Event{Type: EventOpen, Tag: event.Tag, ID: event.ID})
	case EventClose:
		if len(s.stack) == 0 {
			return ErrEmpty
		}
		if event.ID == 0 {
			s.pop()
			return nil
		}
		top := s.stack[len(s.stack)-1]
		if top.ID == event.ID {
			s.pop()
			return nil
		}
		if s.Contains(event.ID) {
			return ErrNotTop
		}
		return ErrUnknown
	default:
		return errors.New("unknown event type " + event.Type.String())
	}
	return nil
}

// Depth returns the current nesting depth (0 = top level).
func (s *State) Depth() int {
	return len(s.stack)
}

// Top returns the innermost open element.
func (s *State) Top() (Event, bool) {
	if len(s.stack) == 0 {
		return Event{}, false
	}
	return s.stack[len(s.stack)-1], true
}

// Contains reports whether an element with the given id is open.
func (s *State) Contains(id uint64) bool {
	for i := range s.stack {
		if s.stack[i].ID == id {
			return true
		}
	}
	return false
}

// IndexOf returns the stack position of the element with the given id,
// or -1.
func (s *State) IndexOf(id uint64) int {
	for i := len(s.stack) - 1; i >= 0; i-- {
		if s.stack[i].ID == id {
			return i
		}
	}
	return -1
}

// CurrentPath returns the slash separated tags of the open elements,
// outermost first (e.g. "", "html", "html/body").
func (s *State) CurrentPath() string {
	return s.pathTo(len(s.stack))
}

// ParentPath returns the path one level up.
func (s *State) ParentPath() string {
	if len(s.stack) == 0 {
		return ""
	}
	return s.pathTo(len(s.stack) - 1)
}

// PathAbove returns the path of the elements opened after the element
// at stack position i, i.e. those which would need closing first.
func (s *State) PathAbove(i int) string {
	if i < 0 || i >= len(s.stack) {
		return ""
	}
	tags := make([]string, 0, len(s.stack)-i-1)
	for j := i + 1; j < len(s.stack); j++ {
		tags = append(tags, s.stack[j].Tag)
	}
	return strings.Join(tags, "/")
}

func (s *State) pathTo(n int) string {
	tags := make([]string, n)
	for i := 0; i < n; i++ {
		tags[i] = s.stack[i].Tag
	}
	return strings.Join(tags, "/")
}
