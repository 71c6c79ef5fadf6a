package verilog

import "fmt"

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// LexicalError marks input the tokenizer could not classify: an
	// unrecognized character, an unterminated string or block comment,
	// or a digit invalid for a literal's base.
	LexicalError ErrorKind = iota
	// SyntaxError marks a token stream that matches no production at
	// the current parser state.
	SyntaxError
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical error"
	case SyntaxError:
		return "syntax error"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is the single failure type surfaced by Parse and ParseFile.
// Line and Col locate the offending character or token, 1-based.
type ParseError struct {
	Kind ErrorKind
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Col, e.Kind, e.Msg)
}

func lexErrorf(line, col int, format string, args ...any) *ParseError {
	return &ParseError{Kind: LexicalError, Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}

func synErrorf(tok token, format string, args ...any) *ParseError {
	return &ParseError{Kind: SyntaxError, Line: tok.line, Col: tok.col, Msg: fmt.Sprintf(format, args...)}
}
