package stream

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/signadot/nest"
	"github.com/signadot/nest/state"
)

// Encoder provides explicit stack management for streaming XML output.
type Encoder struct {
	writer  io.Writer
	state   *state.State
	frames  []frame
	offset  int64
	opts    *streamOpts
	pending bool // start tag written without its '>'
	buf     bytes.Buffer
}

// frame is what has been written inside one open element.
type frame struct {
	children bool
	text     bool
}

var _ nest.Writer = (*Encoder)(nil)

// NewEncoder creates a new Encoder writing to w.
func NewEncoder(w io.Writer, opts ...StreamOption) (*Encoder, error) {
	streamOpts := &streamOpts{indent: "  "}
	for _, opt := range opts {
		opt(streamOpts)
	}
	if w == nil {
		return nil, &Error{Msg: "stream encoder requires a writer"}
	}
	if strings.TrimLeft(streamOpts.indent, " \t") != "" {
		return nil, &Error{Msg: "indent must be spaces or tabs, got " + quote(streamOpts.indent)}
	}
	return &Encoder{
		writer: w,
		state:  state.NewState(),
		opts:   streamOpts,
	}, nil
}

// Depth returns the current nesting depth (0 = top level).
func (e *Encoder) Depth() int {
	return e.state.Depth()
}

// CurrentPath returns the slash separated names of the open elements.
func (e *Encoder) CurrentPath() string {
	return e.state.CurrentPath()
}

// Offset returns the byte offset in the output stream.
func (e *Encoder) Offset() int64 {
	return e.offset
}

func (e *Encoder) pretty() bool {
	return !e.opts.wire
}

// OpenTag writes the start tag of name with attrs.
func (e *Encoder) OpenTag(name string, attrs []nest.Attr) error {
	if !isName(name) {
		return &Error{Msg: quote(name), Err: ErrInvalidName}
	}
	for i := range attrs {
		if !isName(attrs[i].Name) {
			return &Error{Msg: "attribute " + quote(attrs[i].Name) + " of <" + name + ">", Err: ErrInvalidName}
		}
	}
	e.buf.Reset()
	e.prolog()
	e.finishStart()
	inText := false
	if n := len(e.frames); n > 0 {
		e.frames[n-1].children = true
		inText = e.frames[n-1].text
	}
	if e.pretty() && !inText {
		e.newline(e.Depth())
	}
	e.buf.WriteByte('<')
	e.buf.WriteString(name)
	for i := range attrs {
		a := &attrs[i]
		e.buf.WriteByte(' ')
		e.buf.WriteString(a.Name)
		e.buf.WriteString(`="`)
		v := a.Name
		if a.Value != nil {
			v = *a.Value
		}
		xml.EscapeText(&e.buf, []byte(v))
		e.buf.WriteByte('"')
	}
	if !e.opts.empty {
		e.buf.WriteByte('>')
	}
	if err := e.flush(); err != nil {
		return err
	}
	e.pending = e.opts.empty
	e.state.ProcessEvent(&state.Event{Type: state.EventOpen, Tag: name})
	e.frames = append(e.frames, frame{})
	return nil
}

// CloseTag writes the end tag of the innermost open element.
func (e *Encoder) CloseTag() error {
	top, ok := e.state.Top()
	if !ok {
		return &Error{Err: ErrNoOpenTag}
	}
	f := e.frames[len(e.frames)-1]
	e.buf.Reset()
	if e.pending {
		e.pending = false
		e.buf.WriteString("/>")
	} else {
		if e.pretty() && f.children && !f.text {
			e.newline(e.Depth() - 1)
		}
		e.buf.WriteString("</")
		e.buf.WriteString(top.Tag)
		e.buf.WriteByte('>')
	}
	// the element is closed even if the write fails
	e.state.ProcessEvent(&state.Event{Type: state.EventClose})
	e.frames = e.frames[:len(e.frames)-1]
	return e.flush()
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\r", "&#xD;")

// Text writes escaped character data inside the innermost open element.
func (e *Encoder) Text(s string) error {
	n := len(e.frames)
	if n == 0 {
		return &Error{Msg: "text", Err: ErrNoElement}
	}
	e.buf.Reset()
	e.finishStart()
	e.frames[n-1].text = true
	e.buf.WriteString(textEscaper.Replace(s))
	return e.flush()
}

// Comment writes an XML comment. At top level it goes before or after
// the document element.
func (e *Encoder) Comment(s string) error {
	if strings.Contains(s, "--") || strings.HasSuffix(s, "-") {
		return &Error{Msg: quote(s), Err: ErrBadComment}
	}
	e.buf.Reset()
	e.prolog()
	e.finishStart()
	inText := false
	if n := len(e.frames); n > 0 {
		e.frames[n-1].children = true
		inText = e.frames[n-1].text
	}
	if e.pretty() && !inText {
		e.newline(e.Depth())
	}
	e.buf.WriteString("<!--")
	e.buf.WriteString(s)
	e.buf.WriteString("-->")
	return e.flush()
}

// End finishes the document. It fails if elements are still open.
func (e *Encoder) End() error {
	if d := e.Depth(); d != 0 {
		return &Error{Msg: e.CurrentPath(), Err: ErrUnclosed}
	}
	if e.pretty() && e.offset > 0 {
		return e.writeBytes([]byte("\n"))
	}
	return nil
}

func (e *Encoder) prolog() {
	if e.offset == 0 && e.opts.decl {
		e.buf.WriteString(strings.TrimSuffix(xml.Header, "\n"))
	}
}

func (e *Encoder) finishStart() {
	if e.pending {
		e.pending = false
		e.buf.WriteByte('>')
	}
}

// newline starts a line indented for depth, unless nothing has been
// written yet.
func (e *Encoder) newline(depth int) {
	if e.offset == 0 && e.buf.Len() == 0 {
		return
	}
	e.buf.WriteByte('\n')
	for i := 0; i < depth; i++ {
		e.buf.WriteString(e.opts.indent)
	}
}

func (e *Encoder) flush() error {
	if e.buf.Len() == 0 {
		return nil
	}
	return e.writeBytes(e.buf.Bytes())
}

func (e *Encoder) writeBytes(d []byte) error {
	n, err := e.writer.Write(d)
	e.offset += int64(n)
	if err != nil {
		return &Error{Msg: "write", Err: err}
	}
	return nil
}

func quote(s string) string {
	return `"` + s + `"`
}
