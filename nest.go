package nest

import (
	"github.com/signadot/nest/debug"
	"github.com/signadot/nest/state"
)

// Nest is one open element bound to a scope. It is created open and
// closes exactly once.
type Nest struct {
	tag    string
	attrs  Attrs
	w      Writer
	depth  int
	closed bool
	err    error

	id     uint64
	shared *shared
}

// shared is the state common to all Nests descending from one root.
type shared struct {
	stack  *state.State // nil unless checking
	nextID uint64
}

// New opens tag with attrs on w and returns the Nest representing it.
// The open tag has been written when New returns. On failure the error
// is an *OpenError and nothing needs closing.
func New(tag string, attrs Attrs, w Writer, opts ...Option) (*Nest, error) {
	o := optsFrom(opts...)
	sh := &shared{}
	if o.checkStack {
		sh.stack = state.NewState()
	}
	return open(tag, attrs, w, sh, 0)
}

func open(tag string, attrs Attrs, w Writer, sh *shared, depth int) (*Nest, error) {
	if w == nil {
		return nil, &OpenError{Tag: tag, Err: ErrNilWriter}
	}
	if tag == "" {
		return nil, &OpenError{Tag: tag, Err: ErrEmptyTag}
	}
	attrs = attrs.Clone()
	if debug.Calls() {
		debug.Logf("nest: %*sopen <%s> %s\n", depth*2, "", tag, attrs)
	}
	if err := w.OpenTag(tag, attrs); err != nil {
		return nil, &OpenError{Tag: tag, Err: err}
	}
	n := &Nest{
		tag:    tag,
		attrs:  attrs,
		w:      w,
		depth:  depth,
		shared: sh,
	}
	if sh.stack != nil {
		sh.nextID++
		n.id = sh.nextID
		sh.stack.ProcessEvent(&state.Event{Type: state.EventOpen, Tag: tag, ID: n.id})
	}
	return n, nil
}

// Nest opens a child element on the same writer. The child must be
// closed before n.
func (n *Nest) Nest(tag string, attrs ...Attr) (*Nest, error) {
	if n.closed {
		return nil, &OpenError{Tag: tag, Err: ErrClosed}
	}
	return open(tag, attrs, n.w, n.shared, n.depth+1)
}

// NestFlat is like Nest with the attributes given as a flat alternating
// name, value sequence.
func (n *Nest) NestFlat(tag string, kv ...string) (*Nest, error) {
	attrs, err := Flat(kv...)
	if err != nil {
		return nil, &OpenError{Tag: tag, Err: err}
	}
	return n.Nest(tag, attrs...)
}

// Close closes the element. Only the first successful call writes; later
// calls return nil. A writer failure is returned as a *CloseError and
// also kept for Err; the Nest counts as closed since the writer has seen
// the attempt.
func (n *Nest) Close() error {
	if n == nil || n.closed {
		return nil
	}
	if st := n.shared.stack; st != nil {
		err := st.ProcessEvent(&state.Event{Type: state.EventClose, Tag: n.tag, ID: n.id})
		if err != nil {
			return &OutOfOrderError{Tag: n.tag, Open: st.PathAbove(st.IndexOf(n.id))}
		}
	}
	n.closed = true
	if debug.Calls() {
		debug.Logf("nest: %*sclose <%s>\n", n.depth*2, "", n.tag)
	}
	if err := n.w.CloseTag(); err != nil {
		n.err = &CloseError{Tag: n.tag, Err: err}
		return n.err
	}
	return nil
}

// Release closes n and merges a close failure into *errp: if *errp is
// nil it becomes the close failure, otherwise *errp is kept first with
// the close failure suppressed behind it. Use as
//
//	defer n.Release(&err)
func (n *Nest) Release(errp *error) {
	err := n.Close()
	if err == nil || errp == nil {
		return
	}
	if *errp == nil {
		*errp = err
		return
	}
	*errp = &SuppressedError{Err: *errp, Suppressed: err}
}

// Tag returns the element name.
func (n *Nest) Tag() string { return n.tag }

// Attrs returns a copy of the attributes the element was opened with.
func (n *Nest) Attrs() Attrs { return n.attrs.Clone() }

// Writer returns the shared writer, for content between children.
func (n *Nest) Writer() Writer { return n.w }

// Depth returns the number of ancestors of n.
func (n *Nest) Depth() int { return n.depth }

// Closed reports whether n has been closed.
func (n *Nest) Closed() bool { return n.closed }

// Err returns the close failure, if any.
func (n *Nest) Err() error { return n.err }
