// Package errors declares the error surface shared by the tools
// built on top of the lexer.
package errors

import "github.com/prepor/Eden/lexer"

// SituatedErr is implemented by errors that point at a position in
// the source text.
type SituatedErr interface {
	Unwrap() error
	At() lexer.Location
}
