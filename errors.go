package nest

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTag   = errors.New("empty tag")
	ErrNilWriter  = errors.New("nil writer")
	ErrClosed     = errors.New("nest is closed")
	ErrOddAttrs   = errors.New("odd number of flat attribute values")
	ErrOutOfOrder = errors.New("close out of order")
)

// OpenError is returned when an element could not be opened. No Nest
// exists for it and no close is owed.
type OpenError struct {
	Tag string
	Err error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open <%s>: %v", e.Tag, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// CloseError is returned when the writer failed to close an element.
type CloseError struct {
	Tag string
	Err error
}

func (e *CloseError) Error() string {
	return fmt.Sprintf("close <%s>: %v", e.Tag, e.Err)
}

func (e *CloseError) Unwrap() error {
	return e.Err
}

// OutOfOrderError is returned by a stack checked Nest when it is closed
// while some of its descendants are still open.
type OutOfOrderError struct {
	Tag string
	// Open is the slash separated path of the descendants still open.
	Open string
}

func (e *OutOfOrderError) Error() string {
	return fmt.Sprintf("close <%s> with %q still open: %v", e.Tag, e.Open, ErrOutOfOrder)
}

func (e *OutOfOrderError) Unwrap() error {
	return ErrOutOfOrder
}

// SuppressedError carries an error from a scope together with a close
// failure which happened while it was being returned. Err takes
// precedence; both are reachable with errors.Is and errors.As.
type SuppressedError struct {
	Err        error
	Suppressed error
}

func (e *SuppressedError) Error() string {
	return fmt.Sprintf("%v (suppressed: %v)", e.Err, e.Suppressed)
}

func (e *SuppressedError) Unwrap() []error {
	return []error{e.Err, e.Suppressed}
}
