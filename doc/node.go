package doc

import (
	"errors"
	"fmt"
)

var (
	ErrNoTag    = errors.New("node without tag")
	ErrAttrs    = errors.New("attrs must be a flat list of name, value pairs")
	ErrNoText   = errors.New("writer does not accept text")
	ErrNotBool  = errors.New("when expression is not boolean")
	ErrBadValue = errors.New("attribute value must be a scalar")
)

// Node is one element of a document.
type Node struct {
	Tag      string  `yaml:"tag"`
	Attrs    []any   `yaml:"attrs,omitempty"`
	Text     string  `yaml:"text,omitempty"`
	When     string  `yaml:"when,omitempty"`
	Children []*Node `yaml:"children,omitempty"`
}

// Validate checks n and its descendants.
func (n *Node) Validate() error {
	if n == nil {
		return fmt.Errorf("/: %w", ErrNoTag)
	}
	return n.validate("")
}

func (n *Node) validate(path string) error {
	path += "/" + n.Tag
	if n.Tag == "" {
		return fmt.Errorf("%s: %w", path, ErrNoTag)
	}
	if len(n.Attrs)%2 != 0 {
		return fmt.Errorf("%s: %w", path, ErrAttrs)
	}
	for i, a := range n.Attrs {
		if i%2 == 0 {
			if _, ok := a.(string); !ok {
				return fmt.Errorf("%s: attribute name %v: %w", path, a, ErrAttrs)
			}
			continue
		}
		if _, err := scalar(a); err != nil {
			return fmt.Errorf("%s: attribute %v: %w", path, n.Attrs[i-1], err)
		}
	}
	for _, c := range n.Children {
		if c == nil {
			return fmt.Errorf("%s: %w", path, ErrNoTag)
		}
		if err := c.validate(path); err != nil {
			return err
		}
	}
	return nil
}

// scalar renders an attribute value; nil means absent.
func scalar(v any) (*string, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		return &x, nil
	case bool, int, int64, uint64, float64:
		s := fmt.Sprint(x)
		return &s, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrBadValue, v)
	}
}
