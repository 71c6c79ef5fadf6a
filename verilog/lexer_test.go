package verilog

import (
	"testing"
)

func lexAll(t *testing.T, src string) []token {
	t.Helper()
	l := newLexer([]byte(src))
	var toks []token
	for {
		tok, err := l.next()
		if err != nil {
			t.Fatalf("lex %q: %v", src, err)
		}
		if tok.kind == tokEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func lexErr(t *testing.T, src string) *ParseError {
	t.Helper()
	l := newLexer([]byte(src))
	for {
		tok, err := l.next()
		if err != nil {
			pe, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("lex %q: error is %T, want *ParseError", src, err)
			}
			return pe
		}
		if tok.kind == tokEOF {
			t.Fatalf("lex %q: expected an error", src)
		}
	}
}

func TestLexBasicTokens(t *testing.T) {
	toks := lexAll(t, "module m (a, b);")
	want := []struct {
		kind tokenKind
		text string
	}{
		{tokModule, "module"},
		{tokIdent, "m"},
		{tokLParen, "("},
		{tokIdent, "a"},
		{tokComma, ","},
		{tokIdent, "b"},
		{tokRParen, ")"},
		{tokSemicolon, ";"},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].kind != w.kind || toks[i].text != w.text {
			t.Errorf("token %d: got %v %q, want %v %q", i, toks[i].kind, toks[i].text, w.kind, w.text)
		}
	}
}

func TestLexKeywords(t *testing.T) {
	src := "module endmodule input output inout wire reg wand wor tri triand trior supply0 supply1 assign"
	toks := lexAll(t, src)
	want := []tokenKind{
		tokModule, tokEndmodule, tokInput, tokOutput, tokInout, tokWire, tokReg,
		tokWand, tokWor, tokTri, tokTriand, tokTrior, tokSupply0, tokSupply1, tokAssign,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].kind != k {
			t.Errorf("token %d: got %v, want %v", i, toks[i].kind, k)
		}
	}
}

func TestLexCommentsSkipped(t *testing.T) {
	src := "// line comment\n/* block\ncomment */ module"
	toks := lexAll(t, src)
	if len(toks) != 1 || toks[0].kind != tokModule {
		t.Fatalf("got %v, want single module keyword", toks)
	}
	if toks[0].line != 3 {
		t.Errorf("module token line = %d, want 3", toks[0].line)
	}
}

func TestLexEscapedIdent(t *testing.T) {
	toks := lexAll(t, `\bus[3].x~ plain`)
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2", len(toks))
	}
	if toks[0].kind != tokIdent || toks[0].text != "bus[3].x~" {
		t.Errorf("escaped ident = %v %q, want bus[3].x~", toks[0].kind, toks[0].text)
	}
	if toks[1].kind != tokIdent || toks[1].text != "plain" {
		t.Errorf("second token = %v %q, want plain", toks[1].kind, toks[1].text)
	}
}

func TestLexEscapedKeywordIsIdent(t *testing.T) {
	toks := lexAll(t, `\module`)
	if len(toks) != 1 || toks[0].kind != tokIdent || toks[0].text != "module" {
		t.Fatalf("got %v, want identifier \"module\"", toks)
	}
}

func TestLexNumbers(t *testing.T) {
	cases := []struct {
		src  string
		kind tokenKind
		text string
	}{
		{"42", tokNumber, "42"},
		{"4'b0101", tokBased, "4'b0101"},
		{"4'B0101", tokBased, "4'B0101"},
		{"12'o777", tokBased, "12'o777"},
		{"16'hBEEF", tokBased, "16'hBEEF"},
		{"'hff", tokBased, "'hff"},
		{"8'd255", tokBased, "8'd255"},
		{"8'bxxxx_zzzz", tokBased, "8'bxxxx_zzzz"},
	}
	for _, tc := range cases {
		toks := lexAll(t, tc.src)
		if len(toks) != 1 {
			t.Errorf("%q: got %d tokens, want 1", tc.src, len(toks))
			continue
		}
		if toks[0].kind != tc.kind || toks[0].text != tc.text {
			t.Errorf("%q: got %v %q, want %v %q", tc.src, toks[0].kind, toks[0].text, tc.kind, tc.text)
		}
	}
}

func TestLexString(t *testing.T) {
	toks := lexAll(t, `"hello \"world\""`)
	if len(toks) != 1 || toks[0].kind != tokString {
		t.Fatalf("got %v, want single string token", toks)
	}
	if toks[0].text != `hello \"world\"` {
		t.Errorf("string text = %q", toks[0].text)
	}
}

func TestLexOperators(t *testing.T) {
	toks := lexAll(t, "a & b | ~c ^ d")
	kinds := []tokenKind{tokIdent, tokOp, tokIdent, tokOp, tokOp, tokIdent, tokOp, tokIdent}
	if len(toks) != len(kinds) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(kinds))
	}
	for i, k := range kinds {
		if toks[i].kind != k {
			t.Errorf("token %d: got %v, want %v", i, toks[i].kind, k)
		}
	}
}

func TestLexPositions(t *testing.T) {
	toks := lexAll(t, "module\n  foo;")
	if toks[0].line != 1 || toks[0].col != 1 {
		t.Errorf("module at %d:%d, want 1:1", toks[0].line, toks[0].col)
	}
	if toks[1].line != 2 || toks[1].col != 3 {
		t.Errorf("foo at %d:%d, want 2:3", toks[1].line, toks[1].col)
	}
	if toks[2].line != 2 || toks[2].col != 6 {
		t.Errorf("semicolon at %d:%d, want 2:6", toks[2].line, toks[2].col)
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		msg  string
		line int
		col  int
	}{
		{"UnrecognizedChar", "wire w;\n#", "unrecognized character '#'", 2, 1},
		{"UnterminatedString", `"abc`, "unterminated string", 1, 1},
		{"UnterminatedComment", "wire /* w", "unterminated block comment", 1, 6},
		{"InvalidBinaryDigit", "4'b012", `invalid digit '2' for base 'b'`, 1, 6},
		{"InvalidOctalDigit", "3'o8", `invalid digit '8' for base 'o'`, 1, 4},
		{"InvalidHexDigit", "8'hfg", `invalid digit 'g' for base 'h'`, 1, 5},
		{"BadBase", "4'q1", "expected base (b, o, d, or h) in literal, found 'q'", 1, 3},
		{"MissingDigits", "4'b;", "missing digits in based literal", 1, 4},
		{"EmptyEscaped", "\\ wire", "empty escaped identifier", 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pe := lexErr(t, tc.src)
			if pe.Kind != LexicalError {
				t.Errorf("kind = %v, want %v", pe.Kind, LexicalError)
			}
			if pe.Msg != tc.msg {
				t.Errorf("msg = %q, want %q", pe.Msg, tc.msg)
			}
			if pe.Line != tc.line || pe.Col != tc.col {
				t.Errorf("position = %d:%d, want %d:%d", pe.Line, pe.Col, tc.line, tc.col)
			}
		})
	}
}
