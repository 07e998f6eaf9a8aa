// Package lexer turns EDN-style source text into a flat sequence of
// typed tokens in a single left-to-right pass.
package lexer

import "unicode/utf8"

type stateFunc func() stateFunc

type state struct {
	str      []rune
	strStart Location

	byteIndex int
	line, col int

	typ     TokenType
	slashed bool
}

type Lexer struct {
	filename string
	file     []byte

	withLocations bool

	tokens []Token

	state

	err *LexerError
}

type Option func(*Lexer)

// WithLocations makes every emitted token carry the position of its
// first character. Errors carry positions regardless.
func WithLocations() Option {
	return func(l *Lexer) {
		l.withLocations = true
	}
}

func New(file []byte, fileName string, opts ...Option) *Lexer {
	lexer := &Lexer{
		file:     file,
		filename: fileName,
		tokens:   []Token{},
	}
	lexer.line = 1

	for _, opt := range opts {
		opt(lexer)
	}

	lexer.discard()

	return lexer
}

// Tokenize scans file in one pass and returns its tokens in source
// order, or the error that aborted the scan.
func Tokenize(file []byte, fileName string, opts ...Option) ([]Token, error) {
	return New(file, fileName, opts...).Collect()
}

// Collect drives the scanner to the end of the input. It returns the
// complete token sequence or, if any character is malformed, an error
// and no tokens at all.
func (l *Lexer) Collect() ([]Token, error) {
	state := l.lexAny
	for state != nil {
		state = state()
	}

	if l.err != nil {
		return nil, l.err
	}

	return l.tokens, nil
}

func (l *Lexer) take() (r rune, eof bool) {
	if l.byteIndex >= len(l.file) {
		return 0, true
	}

	r, size := utf8.DecodeRune(l.file[l.byteIndex:])

	l.str = append(l.str, r)
	l.byteIndex += size

	switch r {
	case '\n':
		l.line++
		l.col = 0
	case '\r':
		// zero-width: a carriage return never moves the cursor
	default:
		l.col++
	}

	return r, false
}

func (l *Lexer) peek() (r rune, eof bool) {
	if l.byteIndex >= len(l.file) {
		return 0, true
	}

	r, _ = utf8.DecodeRune(l.file[l.byteIndex:])
	return
}

// drop removes the last taken rune from the pending payload. The
// cursor keeps counting it; only the token contents forget it.
func (l *Lexer) drop() {
	l.str = l.str[:len(l.str)-1]
}

func (l *Lexer) emit(typ TokenType) {
	tok := Token{
		Type:     typ,
		Contents: string(l.str),
	}
	if l.withLocations {
		tok.Start = l.strStart
	}

	l.tokens = append(l.tokens, tok)

	l.discard()
}

func (l *Lexer) discard() {
	l.strStart = Location{
		File:   l.filename,
		Line:   l.line,
		Column: l.col,
	}
	l.str = l.str[:0]
	l.slashed = false
}

func (l *Lexer) isEmpty() bool {
	return len(l.str) == 0
}

func (l *Lexer) lexError(err error) stateFunc {
	l.err = &LexerError{
		Inner:    err,
		Location: l.strStart,
	}
	return nil
}

func (l *Lexer) lexUnexpected(got rune, expected string) stateFunc {
	return l.lexError(&UnexpectedRuneError{
		Got:      got,
		Expected: expected,
	})
}

func (l *Lexer) lexUnfinished(typ TokenType) stateFunc {
	return l.lexError(&UnfinishedTokenError{
		Type:  typ,
		Value: string(l.str),
	})
}

func (l *Lexer) lexAny() stateFunc {
	r, eof := l.take()
	if eof {
		return nil
	}

	switch {
	case isWhitespace(r) || r == ',':
		l.discard()
		return l.lexAny

	case r == ';':
		l.drop()
		return l.lexComment

	case r == '"':
		l.drop()
		return l.lexString

	case r == '\\':
		return l.lexCharacter

	case r == ':':
		l.drop()
		l.typ = TokenKeyword
		return l.lexName

	case r == '#':
		return l.lexDispatch

	case r == '-' || r == '+' || isASCIIDigit(r):
		l.typ = TokenInteger
		return l.lexNumber

	case isDelimiter(r):
		l.emit(delimiterType(r))
		return l.lexAny

	case r == 'n':
		return l.lexLiteral("nil", TokenNil)

	case r == 't':
		return l.lexLiteral("true", TokenTrue)

	case r == 'f':
		return l.lexLiteral("false", TokenFalse)

	case isASCIILetter(r):
		l.typ = TokenSymbol
		return l.lexName
	}

	return l.lexUnexpected(r, "the start of a token")
}

// lexLiteral matches the rest of word, whose first rune has already
// been taken, as a tentative nil/true/false token. If the word is cut
// short or runs into more name characters, the consumed prefix seeds
// a symbol token and scanning carries on without re-reading anything.
func (l *Lexer) lexLiteral(word string, typ TokenType) stateFunc {
	return func() stateFunc {
		for _, want := range word[1:] {
			r, eof := l.peek()
			if eof || r != want {
				l.typ = TokenSymbol
				return l.lexName
			}

			l.take()
		}

		// The whole word matched; it only stands on its own if a
		// separator (or the end of input) follows.
		r, eof := l.peek()
		if eof || isSeparator(r) {
			l.emit(typ)
			return l.lexAny
		}

		l.typ = TokenSymbol
		return l.lexName
	}
}

// lexName scans the shared name tail of symbol, keyword, tag and
// namespace-map tokens; l.typ decides what gets emitted.
func (l *Lexer) lexName() stateFunc {
	for {
		state := l.state

		r, eof := l.take()
		if eof {
			return l.finishName()
		}

		switch {
		case r == '/':
			if l.slashed {
				return l.lexUnexpected(r, "at most one namespace separator per name")
			}
			l.slashed = true

		case isSymbolRune(r):

		case isSeparator(r):
			l.state = state
			return l.finishName()

		default:
			return l.lexUnexpected(r, "a name character or separator")
		}
	}
}

func (l *Lexer) finishName() stateFunc {
	if l.typ == TokenKeyword && l.isEmpty() {
		return l.lexUnfinished(TokenKeyword)
	}

	l.emit(l.typ)
	return l.lexAny
}

func (l *Lexer) lexString() stateFunc {
	for {
		r, eof := l.take()
		if eof {
			return l.lexUnfinished(TokenString)
		}

		switch r {
		case '"':
			l.drop()
			l.emit(TokenString)
			return l.lexAny

		case '\\':
			esc, eof := l.take()
			if eof {
				// report the decoded payload, not the dangling backslash
				l.drop()
				return l.lexUnfinished(TokenString)
			}

			decoded, ok := decodeEscape(esc)
			if !ok {
				return l.lexUnexpected(esc, "a string escape character")
			}

			// The cursor has counted the raw two-rune sequence; only
			// the decoded character lands in the payload.
			l.str = append(l.str[:len(l.str)-2], decoded)
		}
	}
}

func (l *Lexer) lexCharacter() stateFunc {
	l.drop()

	if _, eof := l.take(); eof {
		return l.lexUnfinished(TokenCharacter)
	}

	l.emit(TokenCharacter)
	return l.lexAny
}

func (l *Lexer) lexComment() stateFunc {
	for {
		r, eof := l.take()
		if eof {
			l.emit(TokenComment)
			return l.lexAny
		}

		switch r {
		case '\n':
			l.drop()
			l.emit(TokenComment)
			return l.lexAny

		case ';':
			l.drop()
		}
	}
}

// lexDispatch resolves the '#' prefix forms: "#{" and "#_" are
// complete tokens on their own, "#:" opens a namespace-map name, and
// everything else is a tag whose name includes the '#'.
func (l *Lexer) lexDispatch() stateFunc {
	r, eof := l.peek()
	if !eof {
		switch r {
		case '{':
			l.take()
			l.emit(TokenSetOpen)
			return l.lexAny

		case '_':
			l.take()
			l.emit(TokenDiscard)
			return l.lexAny

		case ':':
			l.take()
			l.typ = TokenNsMap
			return l.lexName
		}
	}

	l.typ = TokenTag
	return l.lexName
}

func (l *Lexer) lexNumber() stateFunc {
	for {
		state := l.state

		r, eof := l.take()
		if eof {
			l.emit(l.typ)
			return l.lexAny
		}

		switch {
		case isASCIIDigit(r):

		case r == '.':
			l.typ = TokenFloat
			return l.lexFraction

		case r == 'e' || r == 'E':
			l.typ = TokenFloat
			return l.lexExponent

		case r == 'N':
			return l.lexNumberSuffix

		case r == 'M':
			l.typ = TokenFloat
			return l.lexNumberSuffix

		case isSeparator(r):
			l.state = state
			l.emit(l.typ)
			return l.lexAny

		default:
			return l.lexUnexpected(r, "a digit, exponent or numeric suffix")
		}
	}
}

// lexNumberSuffix finishes a number whose 'N' or 'M' suffix has just
// been taken. The suffixes are terminal: the token must end here.
func (l *Lexer) lexNumberSuffix() stateFunc {
	if r, eof := l.peek(); !eof && !isSeparator(r) {
		return l.lexUnexpected(r, "a separator after a numeric suffix")
	}

	l.emit(l.typ)
	return l.lexAny
}

func (l *Lexer) lexFraction() stateFunc {
	state := l.state

	r, eof := l.take()
	if eof {
		return l.lexUnfinished(l.typ)
	}

	switch {
	case isASCIIDigit(r):
		return l.lexNumber

	case isSeparator(r):
		l.state = state
		return l.lexUnfinished(l.typ)

	default:
		return l.lexUnexpected(r, "a digit after the decimal point")
	}
}

func (l *Lexer) lexExponent() stateFunc {
	for {
		state := l.state

		r, eof := l.take()
		if eof {
			return l.lexUnfinished(l.typ)
		}

		switch {
		case r == '+' || r == '-':
			// exponent sign, keep looking for digits

		case isASCIIDigit(r):
			return l.lexNumber

		case isSeparator(r):
			l.state = state
			return l.lexUnfinished(l.typ)

		default:
			return l.lexUnexpected(r, "a digit or exponent sign")
		}
	}
}
