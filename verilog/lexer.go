package verilog

// lexer tokenizes one source buffer. All state is instance-scoped so
// independent parses never interfere.
type lexer struct {
	src  string
	i    int
	line int
	col  int
}

func newLexer(src []byte) *lexer {
	return &lexer{src: string(src), line: 1, col: 1}
}

func (l *lexer) advance() byte {
	ch := l.src[l.i]
	l.i++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *lexer) peekByte() (byte, bool) {
	if l.i >= len(l.src) {
		return 0, false
	}
	return l.src[l.i], true
}

// next returns the next token, skipping whitespace and comments. At end
// of input it returns a tokEOF token; it may be called again after that.
func (l *lexer) next() (token, error) {
	if err := l.skipSpace(); err != nil {
		return token{}, err
	}

	line, col := l.line, l.col
	ch, ok := l.peekByte()
	if !ok {
		return token{kind: tokEOF, line: line, col: col}, nil
	}

	switch ch {
	case '(':
		l.advance()
		return token{kind: tokLParen, text: "(", line: line, col: col}, nil
	case ')':
		l.advance()
		return token{kind: tokRParen, text: ")", line: line, col: col}, nil
	case '[':
		l.advance()
		return token{kind: tokLBrack, text: "[", line: line, col: col}, nil
	case ']':
		l.advance()
		return token{kind: tokRBrack, text: "]", line: line, col: col}, nil
	case '{':
		l.advance()
		return token{kind: tokLBrace, text: "{", line: line, col: col}, nil
	case '}':
		l.advance()
		return token{kind: tokRBrace, text: "}", line: line, col: col}, nil
	case ':':
		l.advance()
		return token{kind: tokColon, text: ":", line: line, col: col}, nil
	case ';':
		l.advance()
		return token{kind: tokSemicolon, text: ";", line: line, col: col}, nil
	case ',':
		l.advance()
		return token{kind: tokComma, text: ",", line: line, col: col}, nil
	case '.':
		l.advance()
		return token{kind: tokDot, text: ".", line: line, col: col}, nil
	case '=':
		l.advance()
		return token{kind: tokEquals, text: "=", line: line, col: col}, nil
	case '&', '|', '^', '~':
		l.advance()
		return token{kind: tokOp, text: string(ch), line: line, col: col}, nil
	case '\\':
		return l.scanEscapedIdent()
	case '"':
		return l.scanString()
	case '\'':
		return l.scanBased("")
	}

	switch {
	case isIdentStart(ch):
		return l.scanIdent()
	case isDigit(ch):
		return l.scanNumber()
	}

	return token{}, lexErrorf(line, col, "unrecognized character %q", ch)
}

func (l *lexer) skipSpace() error {
	for {
		ch, ok := l.peekByte()
		if !ok {
			return nil
		}
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.advance()
		case ch == '/':
			if l.i+1 >= len(l.src) {
				return nil
			}
			switch l.src[l.i+1] {
			case '/':
				for {
					c, ok := l.peekByte()
					if !ok || c == '\n' {
						break
					}
					l.advance()
				}
			case '*':
				line, col := l.line, l.col
				l.advance() // /
				l.advance() // *
				for {
					c, ok := l.peekByte()
					if !ok {
						return lexErrorf(line, col, "unterminated block comment")
					}
					if c == '*' && l.i+1 < len(l.src) && l.src[l.i+1] == '/' {
						l.advance()
						l.advance()
						break
					}
					l.advance()
				}
			default:
				return nil
			}
		default:
			return nil
		}
	}
}

func (l *lexer) scanIdent() (token, error) {
	line, col := l.line, l.col
	start := l.i
	l.advance()
	for {
		ch, ok := l.peekByte()
		if !ok || !isIdentPart(ch) {
			break
		}
		l.advance()
	}
	text := l.src[start:l.i]
	if kw, ok := keywords[text]; ok {
		return token{kind: kw, text: text, line: line, col: col}, nil
	}
	return token{kind: tokIdent, text: text, line: line, col: col}, nil
}

// scanEscapedIdent consumes a backslash-introduced identifier extending
// to the next whitespace. The token text excludes the backslash itself.
func (l *lexer) scanEscapedIdent() (token, error) {
	line, col := l.line, l.col
	l.advance() // backslash
	start := l.i
	for {
		ch, ok := l.peekByte()
		if !ok || ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			break
		}
		l.advance()
	}
	if l.i == start {
		return token{}, lexErrorf(line, col, "empty escaped identifier")
	}
	return token{kind: tokIdent, text: l.src[start:l.i], line: line, col: col}, nil
}

func (l *lexer) scanString() (token, error) {
	line, col := l.line, l.col
	l.advance() // opening quote
	start := l.i
	for {
		ch, ok := l.peekByte()
		if !ok || ch == '\n' {
			return token{}, lexErrorf(line, col, "unterminated string")
		}
		if ch == '\\' {
			l.advance()
			if _, ok := l.peekByte(); !ok {
				return token{}, lexErrorf(line, col, "unterminated string")
			}
			l.advance()
			continue
		}
		if ch == '"' {
			text := l.src[start:l.i]
			l.advance()
			return token{kind: tokString, text: text, line: line, col: col}, nil
		}
		l.advance()
	}
}

func (l *lexer) scanNumber() (token, error) {
	line, col := l.line, l.col
	start := l.i
	l.advance()
	for {
		ch, ok := l.peekByte()
		if !ok || !(isDigit(ch) || ch == '_') {
			break
		}
		l.advance()
	}
	digits := l.src[start:l.i]
	if ch, ok := l.peekByte(); ok && ch == '\'' {
		tok, err := l.scanBased(digits)
		if err != nil {
			return token{}, err
		}
		tok.line, tok.col = line, col
		return tok, nil
	}
	return token{kind: tokNumber, text: digits, line: line, col: col}, nil
}

// scanBased consumes the '<base><digits> tail of a based literal; width
// holds the already-consumed size digits, empty for widthless literals
// like 'hFF. The token text is the full literal as written.
func (l *lexer) scanBased(width string) (token, error) {
	line, col := l.line, l.col
	l.advance() // apostrophe
	base, ok := l.peekByte()
	if !ok || !isBaseChar(base) {
		got := "end of input"
		if ok {
			got = "'" + string(base) + "'"
		}
		return token{}, lexErrorf(l.line, l.col, "expected base (b, o, d, or h) in literal, found %s", got)
	}
	l.advance()
	start := l.i
	for {
		ch, ok := l.peekByte()
		if !ok {
			break
		}
		if ch == '_' || ch == 'x' || ch == 'X' || ch == 'z' || ch == 'Z' || ch == '?' {
			l.advance()
			continue
		}
		if !isIdentPart(ch) && !isDigit(ch) {
			break
		}
		if !digitValid(ch, base) {
			return token{}, lexErrorf(l.line, l.col, "invalid digit %q for base '%c'", ch, lowerByte(base))
		}
		l.advance()
	}
	if l.i == start {
		return token{}, lexErrorf(l.line, l.col, "missing digits in based literal")
	}
	text := width + "'" + string(base) + l.src[start:l.i]
	return token{kind: tokBased, text: text, line: line, col: col}, nil
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b) || b == '$'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isBaseChar(b byte) bool {
	switch lowerByte(b) {
	case 'b', 'o', 'd', 'h':
		return true
	}
	return false
}

func digitValid(b, base byte) bool {
	switch lowerByte(base) {
	case 'b':
		return b == '0' || b == '1'
	case 'o':
		return b >= '0' && b <= '7'
	case 'd':
		return isDigit(b)
	case 'h':
		return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
	}
	return false
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
