package stream

import (
	"bytes"
	"errors"
	"testing"

	"github.com/signadot/nest"
)

func TestNewEncoder(t *testing.T) {
	enc, err := NewEncoder(&bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enc == nil {
		t.Error("expected encoder")
	}

	// Test: nil writer
	if _, err := NewEncoder(nil); err == nil {
		t.Error("expected error for nil writer")
	}

	// Test: indentation must be whitespace
	if _, err := NewEncoder(&bytes.Buffer{}, WithIndent("xx")); err == nil {
		t.Error("expected error for non whitespace indent")
	}
}

func scenario(w nest.Writer) error {
	attrs := nest.Pairs([2]string{"maintain", "order"}, [2]string{"in", "attributes"})
	return nest.With(w, "level1", attrs, func(l1 *nest.Nest) error {
		return l1.With("level2", nest.Attrs{nest.A("attr1", "3")}, func(l2 *nest.Nest) error {
			return l2.With("level3", nil, nil)
		})
	})
}

func TestEncoderScenario(t *testing.T) {
	tests := []struct {
		name string
		opts []StreamOption
		want string
	}{
		{
			name: "indent",
			want: `<level1 maintain="order" in="attributes">
  <level2 attr1="3">
    <level3></level3>
  </level2>
</level1>
`,
		},
		{
			name: "tabs",
			opts: []StreamOption{WithIndent("\t")},
			want: "<level1 maintain=\"order\" in=\"attributes\">\n\t<level2 attr1=\"3\">\n\t\t<level3></level3>\n\t</level2>\n</level1>\n",
		},
		{
			name: "wire",
			opts: []StreamOption{WithWire()},
			want: `<level1 maintain="order" in="attributes"><level2 attr1="3"><level3></level3></level2></level1>`,
		},
		{
			name: "wire empty",
			opts: []StreamOption{WithWire(), WithEmptyElements()},
			want: `<level1 maintain="order" in="attributes"><level2 attr1="3"><level3/></level2></level1>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			enc, err := NewEncoder(&buf, tt.opts...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := scenario(enc); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := enc.End(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("expected:\n%s\ngot:\n%s", tt.want, buf.String())
			}
			if enc.Offset() != int64(buf.Len()) {
				t.Errorf("expected offset %d, got %d", buf.Len(), enc.Offset())
			}
		})
	}
}

func TestEncoderText(t *testing.T) {
	var buf bytes.Buffer
	enc, _ := NewEncoder(&buf)
	err := nest.With(enc, "doc", nil, func(d *nest.Nest) error {
		return d.With("title", nil, func(*nest.Nest) error {
			return enc.Text(`1 < 2 & "q"`)
		})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	enc.End()
	want := "<doc>\n  <title>1 &lt; 2 &amp; \"q\"</title>\n</doc>\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestEncoderMixedContent(t *testing.T) {
	var buf bytes.Buffer
	enc, _ := NewEncoder(&buf)
	err := nest.With(enc, "p", nil, func(p *nest.Nest) error {
		enc.Text("a")
		if err := p.With("b", nil, func(*nest.Nest) error { return enc.Text("bold") }); err != nil {
			return err
		}
		return enc.Text("c")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	enc.End()
	want := "<p>a<b>bold</b>c</p>\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestEncoderAttributes(t *testing.T) {
	var buf bytes.Buffer
	enc, _ := NewEncoder(&buf, WithWire())
	attrs := []nest.Attr{nest.A("q", `a"b<c&`), nest.Bare("checked"), nest.A("nl", "x\ny")}
	if err := enc.OpenTag("input", attrs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := enc.CloseTag(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<input q="a&#34;b&lt;c&amp;" checked="checked" nl="x&#xA;y"></input>`
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestEncoderDecl(t *testing.T) {
	var buf bytes.Buffer
	enc, _ := NewEncoder(&buf, WithDecl())
	enc.OpenTag("r", nil)
	enc.CloseTag()
	enc.End()
	want := "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<r></r>\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestEncoderComment(t *testing.T) {
	var buf bytes.Buffer
	enc, _ := NewEncoder(&buf)
	enc.OpenTag("r", nil)
	if err := enc.Comment(" c "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	enc.CloseTag()
	enc.End()
	want := "<r>\n  <!-- c -->\n</r>\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestEncoderPath(t *testing.T) {
	enc, _ := NewEncoder(&bytes.Buffer{})
	enc.OpenTag("a", nil)
	enc.OpenTag("b", nil)
	if enc.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", enc.Depth())
	}
	if enc.CurrentPath() != "a/b" {
		t.Errorf("expected path a/b, got %q", enc.CurrentPath())
	}
	err := enc.End()
	if !errors.Is(err, ErrUnclosed) {
		t.Errorf("expected ErrUnclosed, got %v", err)
	}
}

func TestEncoderErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func(e *Encoder) error
		want error
	}{
		{name: "bad name", run: func(e *Encoder) error { return e.OpenTag("1abc", nil) }, want: ErrInvalidName},
		{name: "empty name", run: func(e *Encoder) error { return e.OpenTag("", nil) }, want: ErrInvalidName},
		{name: "bad attr", run: func(e *Encoder) error { return e.OpenTag("a", []nest.Attr{nest.A("a b", "")}) }, want: ErrInvalidName},
		{name: "close empty", run: func(e *Encoder) error { return e.CloseTag() }, want: ErrNoOpenTag},
		{name: "top text", run: func(e *Encoder) error { return e.Text("x") }, want: ErrNoElement},
		{name: "comment", run: func(e *Encoder) error { return e.Comment("a--b") }, want: ErrBadComment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			enc, _ := NewEncoder(&buf)
			err := tt.run(enc)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			var se *Error
			if !errors.As(err, &se) {
				t.Errorf("expected *Error, got %T", err)
			}
			if buf.Len() != 0 {
				t.Errorf("expected nothing written, got %q", buf.String())
			}
		})
	}
}

type failWriter struct{ err error }

func (f failWriter) Write(p []byte) (int, error) { return 0, f.err }

func TestEncoderWriteFailure(t *testing.T) {
	boom := errors.New("disk full")
	enc, _ := NewEncoder(failWriter{err: boom})
	err := nest.With(enc, "a", nil, nil)
	if !errors.Is(err, boom) {
		t.Errorf("expected write failure, got %v", err)
	}
	var oe *nest.OpenError
	if !errors.As(err, &oe) {
		t.Errorf("expected *nest.OpenError, got %T", err)
	}
	if enc.Depth() != 0 {
		t.Errorf("expected nothing open, got depth %d", enc.Depth())
	}
}

// flakyWriter fails its first fails writes, then appends to buf.
type flakyWriter struct {
	fails int
	buf   bytes.Buffer
}

func (f *flakyWriter) Write(p []byte) (int, error) {
	if f.fails > 0 {
		f.fails--
		return 0, errors.New("transient")
	}
	return f.buf.Write(p)
}

func TestEncoderOpenFailureLeavesNoStartTag(t *testing.T) {
	fw := &flakyWriter{fails: 1}
	enc, _ := NewEncoder(fw, WithWire(), WithEmptyElements())
	if err := enc.OpenTag("a", nil); err == nil {
		t.Fatal("expected write failure")
	}
	if enc.Depth() != 0 {
		t.Fatalf("expected depth 0, got %d", enc.Depth())
	}
	if err := enc.OpenTag("b", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := enc.CloseTag(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fw.buf.String(); got != "<b/>" {
		t.Errorf("expected %q, got %q", "<b/>", got)
	}
}

func TestIsName(t *testing.T) {
	for _, s := range []string{"a", "_x", "ns:tag", "a-b.c1", "été"} {
		if !isName(s) {
			t.Errorf("expected %q to be a name", s)
		}
	}
	for _, s := range []string{"", "1a", "-a", "a b", "a>"} {
		if isName(s) {
			t.Errorf("expected %q not to be a name", s)
		}
	}
}
