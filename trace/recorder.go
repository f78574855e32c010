package trace

import (
	"errors"
	"fmt"

	"github.com/signadot/nest"
	"github.com/signadot/nest/state"
)

// Op is the kind of a recorded writer call.
type Op int

const (
	OpOpen Op = iota
	OpClose
	OpText
)

func (o Op) String() string {
	switch o {
	case OpOpen:
		return "open"
	case OpClose:
		return "close"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Call is one recorded writer call. Tag is filled in for closes too,
// from the recorder's own stack.
type Call struct {
	Op    Op
	Tag   string
	Attrs []nest.Attr
	Text  string
}

func (c Call) String() string {
	switch c.Op {
	case OpClose:
		return "close(" + c.Tag + ")"
	case OpText:
		return fmt.Sprintf("text(%q)", c.Text)
	}
	return fmt.Sprintf("open(%s%s)", c.Tag, attrSuffix(c.Attrs))
}

func attrSuffix(attrs []nest.Attr) string {
	if len(attrs) == 0 {
		return ""
	}
	return " " + nest.Attrs(attrs).String()
}

// Open returns the Call expected for opening tag with attrs.
func Open(tag string, attrs ...nest.Attr) Call {
	return Call{Op: OpOpen, Tag: tag, Attrs: attrs}
}

// Close returns the Call expected for closing tag.
func Close(tag string) Call {
	return Call{Op: OpClose, Tag: tag}
}

// Recorder is a nest.Writer which records every call and tracks the
// open stack the way a real writer does. Calls may be forwarded to Next.
type Recorder struct {
	Next nest.Writer

	calls     []Call
	stack     *state.State
	failOpen  map[string]error
	failClose map[int]error
	closes    int
}

var _ nest.Writer = (*Recorder)(nil)

// NewRecorder creates a Recorder forwarding to next, which may be nil.
func NewRecorder(next nest.Writer) *Recorder {
	return &Recorder{
		Next:      next,
		stack:     state.NewState(),
		failOpen:  map[string]error{},
		failClose: map[int]error{},
	}
}

// FailOpen makes every OpenTag of tag fail with err.
func (r *Recorder) FailOpen(tag string, err error) {
	r.failOpen[tag] = err
}

// FailCloseAt makes the n'th CloseTag call (counting from 1) fail with
// err. The failing close still pops the recorder's stack.
func (r *Recorder) FailCloseAt(n int, err error) {
	r.failClose[n] = err
}

func (r *Recorder) OpenTag(name string, attrs []nest.Attr) error {
	if err := r.failOpen[name]; err != nil {
		return err
	}
	if r.Next != nil {
		if err := r.Next.OpenTag(name, attrs); err != nil {
			return err
		}
	}
	r.stack.ProcessEvent(&state.Event{Type: state.EventOpen, Tag: name})
	r.calls = append(r.calls, Call{Op: OpOpen, Tag: name, Attrs: nest.Attrs(attrs).Clone()})
	return nil
}

var ErrNoOpenTag = errors.New("close tag with no open tag")

func (r *Recorder) CloseTag() error {
	top, ok := r.stack.Top()
	if !ok {
		return ErrNoOpenTag
	}
	r.closes++
	r.stack.ProcessEvent(&state.Event{Type: state.EventClose})
	r.calls = append(r.calls, Call{Op: OpClose, Tag: top.Tag})
	if err := r.failClose[r.closes]; err != nil {
		return err
	}
	if r.Next != nil {
		return r.Next.CloseTag()
	}
	return nil
}

type textWriter interface {
	Text(string) error
}

// Text records character data and forwards it to Next when Next
// accepts text.
func (r *Recorder) Text(s string) error {
	if tw, ok := r.Next.(textWriter); ok {
		if err := tw.Text(s); err != nil {
			return err
		}
	}
	r.calls = append(r.calls, Call{Op: OpText, Text: s})
	return nil
}

// Calls returns the recorded calls.
func (r *Recorder) Calls() []Call {
	return r.calls
}

// Depth returns the number of elements currently open.
func (r *Recorder) Depth() int {
	return r.stack.Depth()
}

// Reset forgets recorded calls and the open stack; injected faults stay.
func (r *Recorder) Reset() {
	r.calls = nil
	r.closes = 0
	r.stack = state.NewState()
}

// Check verifies that the recorded calls are balanced and properly
// nested.
func (r *Recorder) Check() error {
	return Check(r.calls)
}

// Check verifies that calls are balanced: each close matches the most
// recent unmatched open and nothing remains open.
func Check(calls []Call) error {
	var open []string
	for i, c := range calls {
		switch c.Op {
		case OpOpen:
			open = append(open, c.Tag)
		case OpClose:
			if len(open) == 0 {
				return fmt.Errorf("call %d: close(%s) with nothing open", i, c.Tag)
			}
			top := open[len(open)-1]
			if c.Tag != "" && c.Tag != top {
				return fmt.Errorf("call %d: close(%s) but innermost open is %s", i, c.Tag, top)
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) != 0 {
		return fmt.Errorf("%d element(s) left open: %v", len(open), open)
	}
	return nil
}
