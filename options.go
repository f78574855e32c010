package nest

import "github.com/signadot/nest/debug"

// Option configures a root Nest. Children inherit the configuration of
// their root.
type Option func(*nestOpts)

type nestOpts struct {
	checkStack bool
}

// CheckStack enables or disables the shared open stack check. The
// default is taken from NEST_DEBUG_STACK.
func CheckStack(v bool) Option {
	return func(o *nestOpts) { o.checkStack = v }
}

func optsFrom(opts ...Option) *nestOpts {
	o := &nestOpts{checkStack: debug.Stack()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
