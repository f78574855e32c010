package stream

// StreamOption configures Encoder behavior.
type StreamOption func(*streamOpts)

type streamOpts struct {
	indent string
	wire   bool // no newlines, no indentation
	decl   bool
	empty  bool // self close elements without content
}

// WithIndent sets the per level indentation. The default is two spaces.
func WithIndent(s string) StreamOption {
	return func(opts *streamOpts) {
		opts.indent = s
	}
}

// WithWire enables compact output with no line breaks.
func WithWire() StreamOption {
	return func(opts *streamOpts) {
		opts.wire = true
	}
}

// WithDecl writes an XML declaration before the first element.
func WithDecl() StreamOption {
	return func(opts *streamOpts) {
		opts.decl = true
	}
}

// WithEmptyElements writes elements without content as <name/>.
func WithEmptyElements() StreamOption {
	return func(opts *streamOpts) {
		opts.empty = true
	}
}
