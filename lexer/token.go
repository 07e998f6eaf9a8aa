package lexer

import "fmt"

type TokenType int

const (
	TokenNil TokenType = iota
	TokenTrue
	TokenFalse

	TokenSymbol
	TokenKeyword
	TokenString
	TokenCharacter
	TokenInteger
	TokenFloat
	TokenComment

	TokenDiscard
	TokenTag
	TokenNsMap
	TokenSetOpen

	TokenCurlyOpen
	TokenCurlyClose
	TokenBracketOpen
	TokenBracketClose
	TokenParenOpen
	TokenParenClose
)

func (t TokenType) String() string {
	switch t {
	case TokenNil:
		return "nil"
	case TokenTrue:
		return "true"
	case TokenFalse:
		return "false"

	case TokenSymbol:
		return "symbol"
	case TokenKeyword:
		return "keyword"
	case TokenString:
		return "string"
	case TokenCharacter:
		return "character"
	case TokenInteger:
		return "integer"
	case TokenFloat:
		return "float"
	case TokenComment:
		return "comment"

	case TokenDiscard:
		return "discard"
	case TokenTag:
		return "tag"
	case TokenNsMap:
		return "ns_map"
	case TokenSetOpen:
		return "set_open"

	case TokenCurlyOpen:
		return "curly_open"
	case TokenCurlyClose:
		return "curly_close"
	case TokenBracketOpen:
		return "bracket_open"
	case TokenBracketClose:
		return "bracket_close"
	case TokenParenOpen:
		return "paren_open"
	case TokenParenClose:
		return "paren_close"
	}

	return "<unknown>"
}

// Token is a single lexeme of the source text. Contents holds the
// decoded payload: string escapes are already resolved, a keyword's
// leading ':' is stripped, while numbers keep their signs and
// suffixes verbatim and marker tokens keep their prefixes.
type Token struct {
	Type     TokenType
	Start    Location
	Contents string
}

type Location struct {
	File string

	// Line is 1-based, Column is 0-based.
	Line, Column int
}

func (l *Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column+1)
}
