package lexer

import "fmt"

// LexerError wraps the scan-aborting error with the start location of
// the token that was being built when it happened.
type LexerError struct {
	Inner    error
	Location Location
}

func (e *LexerError) Unwrap() error {
	return e.Inner
}

func (e *LexerError) Error() string {
	return fmt.Sprintf("%s at %s", e.Inner, &e.Location)
}

func (e *LexerError) At() Location {
	return e.Location
}

type UnexpectedRuneError struct {
	Got      rune
	Expected string
}

func (e *UnexpectedRuneError) Error() string {
	return fmt.Sprintf("expected %s, found %q", e.Expected, e.Got)
}

// UnfinishedTokenError reports input that ran out (or hit a
// separator) before the token under construction was complete. Type
// and Value describe the partial token.
type UnfinishedTokenError struct {
	Type  TokenType
	Value string
}

func (e *UnfinishedTokenError) Error() string {
	return fmt.Sprintf("unfinished %s token %q", e.Type, e.Value)
}
