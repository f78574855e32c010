// Package stream provides a streaming XML element writer which
// satisfies nest.Writer.
//
// The Encoder tracks its own open element stack, so CloseTag needs no
// name. It handles escaping, name checking and indentation; structure is
// left to the caller, typically through package nest.
//
// # Example
//
//	enc, err := stream.NewEncoder(w, stream.WithIndent("  "))
//	if err != nil {
//	    return err
//	}
//	err = nest.With(enc, "doc", nil, func(d *nest.Nest) error {
//	    return d.With("title", nil, func(*nest.Nest) error {
//	        return enc.Text("hello")
//	    })
//	})
//	if err != nil {
//	    return err
//	}
//	return enc.End()
//
// produces
//
//	<doc>
//	  <title>hello</title>
//	</doc>
//
// # Absent attribute values
//
// An attribute with a nil value is written in the expanded form of a
// minimised attribute: name="name".
package stream
