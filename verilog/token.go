package verilog

import "fmt"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber // plain decimal literal
	tokBased  // based literal, e.g. 4'b0101
	tokString
	tokOp // &, |, ^, ~

	tokLParen
	tokRParen
	tokLBrack
	tokRBrack
	tokLBrace
	tokRBrace
	tokColon
	tokSemicolon
	tokComma
	tokDot
	tokEquals

	tokModule
	tokEndmodule
	tokInput
	tokOutput
	tokInout
	tokWire
	tokReg
	tokWand
	tokWor
	tokTri
	tokTriand
	tokTrior
	tokSupply0
	tokSupply1
	tokAssign
)

var keywords = map[string]tokenKind{
	"module":    tokModule,
	"endmodule": tokEndmodule,
	"input":     tokInput,
	"output":    tokOutput,
	"inout":     tokInout,
	"wire":      tokWire,
	"reg":       tokReg,
	"wand":      tokWand,
	"wor":       tokWor,
	"tri":       tokTri,
	"triand":    tokTriand,
	"trior":     tokTrior,
	"supply0":   tokSupply0,
	"supply1":   tokSupply1,
	"assign":    tokAssign,
}

var kindNames = map[tokenKind]string{
	tokEOF:       "end of input",
	tokIdent:     "identifier",
	tokNumber:    "number",
	tokBased:     "based literal",
	tokString:    "string",
	tokOp:        "operator",
	tokLParen:    `"("`,
	tokRParen:    `")"`,
	tokLBrack:    `"["`,
	tokRBrack:    `"]"`,
	tokLBrace:    `"{"`,
	tokRBrace:    `"}"`,
	tokColon:     `":"`,
	tokSemicolon: `";"`,
	tokComma:     `","`,
	tokDot:       `"."`,
	tokEquals:    `"="`,
}

func (k tokenKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	for name, kw := range keywords {
		if kw == k {
			return fmt.Sprintf("%q", name)
		}
	}
	return fmt.Sprintf("tokenKind(%d)", int(k))
}

// token is one lexeme with its source position. For escaped identifiers
// text holds the semantic name without the leading backslash; for based
// literals it holds the literal as written.
type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

func (t token) describe() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokIdent, tokNumber, tokBased, tokString, tokOp:
		return fmt.Sprintf("%s %q", t.kind, t.text)
	}
	return t.kind.String()
}
