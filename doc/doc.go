// Package doc renders declarative element trees through package nest.
//
// A document is YAML or JSON:
//
//	tag: html
//	attrs: [lang, "$[lang]"]
//	children:
//	  - tag: body
//	    attrs: [class, main, hidden, null]
//	    when: show
//	    text: "hello $[name]"
//
// attrs is a flat alternating name, value list; a null value is an
// absent value. when is an expr-lang boolean expression evaluated
// against the environment, and $[expr] in attribute values and text is
// replaced by the value of expr. A backslash escapes ']' inside $[...].
//
// Documents may be patched with RFC 6902 JSON patches before loading.
package doc
