package stream

import "errors"

var (
	ErrNoOpenTag   = errors.New("no open tag")
	ErrInvalidName = errors.New("invalid XML name")
	ErrUnclosed    = errors.New("unclosed elements")
	ErrNoElement   = errors.New("content outside of an element")
	ErrBadComment  = errors.New("comment contains \"--\"")
)

// Error represents a stream error.
type Error struct {
	Msg string
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	if e.Msg == "" {
		return e.Err.Error()
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
