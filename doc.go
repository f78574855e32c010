// Package nest manages nested markup elements on top of a low-level
// element writer by binding each element to a scope.
//
// A Nest emits its opening tag when it is created and its closing tag
// exactly once when its scope ends, however that end is reached. Child
// Nests share the parent's writer, so the structure of the document
// follows the structure of the code which builds it.
//
// The writer is a collaborator satisfying Writer. It is responsible for
// escaping, indentation, encoding and tracking which tag a CloseTag
// closes. A Nest never owns its writer.
//
// # Example: defer
//
//	func page(w nest.Writer) (err error) {
//	    html, err := nest.New("html", nil, w)
//	    if err != nil {
//	        return err
//	    }
//	    defer html.Release(&err)
//
//	    body, err := html.NestFlat("body", "class", "main")
//	    if err != nil {
//	        return err
//	    }
//	    defer body.Release(&err)
//	    ...
//	}
//
// # Example: With
//
//	err := nest.With(w, "level1", nest.Pairs([2]string{"maintain", "order"}), func(l1 *nest.Nest) error {
//	    return l1.With("level2", nest.Attrs{nest.A("attr1", "3")}, func(l2 *nest.Nest) error {
//	        return l2.With("level3", nil, nil)
//	    })
//	})
//
// # Release failures
//
// A failing CloseTag is returned from Close. Release and With never let
// it replace an error already returned by the scope: the original error
// comes first and the close failure is attached as a SuppressedError.
// When the scope panics, the close still happens, the panic continues
// unchanged and the close failure is available from Err.
//
// # Stack checking
//
// Closing a Nest while one of its descendants is still open is a caller
// error. With CheckStack (or NEST_DEBUG_STACK=true) all Nests of one
// root share an open stack and such a close is refused with an
// OutOfOrderError instead of producing malformed output.
//
// Nests are not safe for concurrent use; use one writer per goroutine.
package nest
