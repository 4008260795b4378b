// Package template implements tplgen's placeholder engine.
//
// # Syntax
//
// A placeholder is a start delimiter, an identifier and an end delimiter:
//
//	Hello, $name$!
//
// Identifiers are runs of letters, digits and underscores. Both delimiters
// are single characters and may be the same character (the default is '$'
// for both). Placeholders never nest.
//
// A doubled start delimiter emits one literal delimiter, so "$$" renders as
// "$". When the delimiters differ, a doubled end delimiter outside a
// placeholder renders as one end delimiter and a lone end delimiter is
// copied as-is.
//
// # Resolution
//
// A placeholder whose identifier is a key of the attribute map is replaced
// by the value. Unknown identifiers fail with ErrUnresolvedAttribute unless
// the engine was built WithAllowUnresolved, in which case the placeholder
// text is kept verbatim.
//
// Rendering is a pure function of its inputs: it performs no I/O and never
// modifies the attribute map.
package template
