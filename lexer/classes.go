package lexer

func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// isSymbolRune reports whether r may appear inside a symbol, keyword,
// tag or namespace-map name. '/' is deliberately absent: it is the
// namespace separator and allowed at most once per name.
func isSymbolRune(r rune) bool {
	if isASCIILetter(r) || isASCIIDigit(r) {
		return true
	}

	switch r {
	case '_', '?', '.', '*', '+', '!', '-', '$', '%', '&', '=', '<', '>', '#', ':', '|':
		return true
	}

	return false
}

func isDelimiter(r rune) bool {
	switch r {
	case '{', '}', '[', ']', '(', ')':
		return true
	}

	return false
}

// isSeparator reports whether r ends a pending literal, number or
// name token. Note that ';' and '"' are not separators: a comment or
// string glued to a name is malformed input.
func isSeparator(r rune) bool {
	return isWhitespace(r) || r == ',' || isDelimiter(r)
}

func delimiterType(r rune) TokenType {
	switch r {
	case '{':
		return TokenCurlyOpen
	case '}':
		return TokenCurlyClose
	case '[':
		return TokenBracketOpen
	case ']':
		return TokenBracketClose
	case '(':
		return TokenParenOpen
	case ')':
		return TokenParenClose
	}

	panic("not a delimiter")
}

func decodeEscape(r rune) (rune, bool) {
	switch r {
	case '"':
		return '"', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case 'n':
		return '\n', true
	case '\\':
		return '\\', true
	}

	return 0, false
}
