package nest

// Writer is the low-level element writer a Nest drives.
//
// OpenTag writes the opening tag of name with attrs in the given order.
// CloseTag closes the most recently opened element which is not yet
// closed; the Writer tracks its own open stack. Both return an error on
// stream or validation failure, CloseTag also when nothing is open.
type Writer interface {
	OpenTag(name string, attrs []Attr) error
	CloseTag() error
}
