package nest

import "github.com/signadot/nest/debug"

// With opens tag on w, runs body with the Nest and closes it when body
// returns or panics. A close failure never replaces an error from body.
func With(w Writer, tag string, attrs Attrs, body func(*Nest) error, opts ...Option) error {
	n, err := New(tag, attrs, w, opts...)
	if err != nil {
		return err
	}
	return n.scope(body)
}

// With opens a child of n, runs body with it and closes it afterwards.
// A nil body just opens and closes the child.
func (n *Nest) With(tag string, attrs Attrs, body func(*Nest) error) error {
	c, err := n.Nest(tag, attrs...)
	if err != nil {
		return err
	}
	return c.scope(body)
}

func (n *Nest) scope(body func(*Nest) error) (err error) {
	done := false
	defer func() {
		if done {
			n.Release(&err)
			return
		}
		// panic or runtime.Goexit: close and let it continue
		if cerr := n.Close(); cerr != nil {
			debug.Logf("nest: %v while unwinding\n", cerr)
		}
	}()
	if body != nil {
		err = body(n)
	}
	done = true
	return err
}
