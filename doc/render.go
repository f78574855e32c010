package doc

import (
	"fmt"

	"github.com/signadot/nest"
)

// TextWriter is a nest.Writer which also accepts character data.
type TextWriter interface {
	nest.Writer
	Text(string) error
}

type renderer struct {
	w   nest.Writer
	env Env
}

// Render writes root and its descendants to w. Nodes whose when
// expression is false are skipped with their descendants. Every element
// opened is closed, including when rendering fails part way.
func Render(w nest.Writer, root *Node, env Env, opts ...nest.Option) error {
	if err := root.Validate(); err != nil {
		return err
	}
	r := &renderer{w: w, env: env}
	ok, attrs, err := r.prepare(root)
	if err != nil || !ok {
		return err
	}
	return nest.With(w, root.Tag, attrs, r.body(root), opts...)
}

// prepare evaluates n's when expression and expands its attributes.
func (r *renderer) prepare(n *Node) (bool, nest.Attrs, error) {
	ok, err := When(n.When, r.env)
	if err != nil {
		return false, nil, fmt.Errorf("<%s>: %w", n.Tag, err)
	}
	if !ok {
		return false, nil, nil
	}
	attrs := make(nest.Attrs, 0, len(n.Attrs)/2)
	for i := 0; i < len(n.Attrs); i += 2 {
		name := n.Attrs[i].(string)
		v, err := scalar(n.Attrs[i+1])
		if err != nil {
			return false, nil, fmt.Errorf("<%s>: %w", n.Tag, err)
		}
		if v != nil {
			s, err := ExpandString(*v, r.env)
			if err != nil {
				return false, nil, fmt.Errorf("<%s> attribute %s: %w", n.Tag, name, err)
			}
			v = &s
		}
		attrs = append(attrs, nest.Attr{Name: name, Value: v})
	}
	return true, attrs, nil
}

func (r *renderer) body(n *Node) func(*nest.Nest) error {
	return func(el *nest.Nest) error {
		if n.Text != "" {
			tw, ok := r.w.(TextWriter)
			if !ok {
				return fmt.Errorf("<%s>: %w", n.Tag, ErrNoText)
			}
			s, err := ExpandString(n.Text, r.env)
			if err != nil {
				return fmt.Errorf("<%s> text: %w", n.Tag, err)
			}
			if err := tw.Text(s); err != nil {
				return err
			}
		}
		for _, c := range n.Children {
			ok, attrs, err := r.prepare(c)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if err := el.With(c.Tag, attrs, r.body(c)); err != nil {
				return err
			}
		}
		return nil
	}
}
