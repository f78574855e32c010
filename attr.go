package nest

import (
	"fmt"
	"strconv"
	"strings"
)

// Attr is one attribute of an element. A nil Value is an absent value;
// how it renders is up to the Writer.
type Attr struct {
	Name  string
	Value *string
}

// A returns an attribute with a value.
func A(name, value string) Attr {
	return Attr{Name: name, Value: &value}
}

// Bare returns an attribute with an absent value.
func Bare(name string) Attr {
	return Attr{Name: name}
}

func (a Attr) String() string {
	if a.Value == nil {
		return a.Name
	}
	return a.Name + "=" + strconv.Quote(*a.Value)
}

// Attrs is an ordered attribute list. Order is significant and is never
// changed, nor are duplicates removed.
type Attrs []Attr

// Pairs builds Attrs from name/value pairs.
func Pairs(pairs ...[2]string) Attrs {
	if len(pairs) == 0 {
		return nil
	}
	res := make(Attrs, len(pairs))
	for i, p := range pairs {
		res[i] = A(p[0], p[1])
	}
	return res
}

// Flat builds Attrs from a flat alternating name, value, name, value...
// sequence.
func Flat(kv ...string) (Attrs, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddAttrs, len(kv))
	}
	if len(kv) == 0 {
		return nil, nil
	}
	res := make(Attrs, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		res = append(res, A(kv[i], kv[i+1]))
	}
	return res, nil
}

// Clone returns a deep copy of as.
func (as Attrs) Clone() Attrs {
	if len(as) == 0 {
		return nil
	}
	res := make(Attrs, len(as))
	for i, a := range as {
		res[i].Name = a.Name
		if a.Value != nil {
			v := *a.Value
			res[i].Value = &v
		}
	}
	return res
}

func (as Attrs) String() string {
	parts := make([]string, len(as))
	for i := range as {
		parts[i] = as[i].String()
	}
	return strings.Join(parts, " ")
}
