package verilog

import (
	"os"
	"strconv"
	"strings"
)

// Parse parses src as one or more structural Verilog modules and streams
// every completed entity to h in source order. The first lexical or
// syntax error aborts the parse; entities already dispatched remain
// delivered. The returned error is always a *ParseError (or nil).
func Parse(src []byte, h Handler) error {
	p := &parser{lex: newLexer(src), h: h}
	if err := p.next(); err != nil {
		return err
	}
	return p.source()
}

// ParseFile reads path and parses its contents as with Parse. Errors
// opening or reading the file are returned as-is.
func ParseFile(path string, h Handler) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return Parse(data, h)
}

// parser is the grammar engine for one parse call: a recursive-descent
// parser with a single token of lookahead in tok. All state is
// instance-scoped.
type parser struct {
	lex *lexer
	tok token
	h   Handler
}

func (p *parser) next() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expect(k tokenKind) (token, error) {
	if p.tok.kind != k {
		return token{}, synErrorf(p.tok, "expected %s, found %s", k, p.tok.describe())
	}
	tok := p.tok
	return tok, p.next()
}

func (p *parser) accept(k tokenKind) (bool, error) {
	if p.tok.kind != k {
		return false, nil
	}
	return true, p.next()
}

// productions

func (p *parser) source() error {
	for {
		if err := p.module(); err != nil {
			return err
		}
		if p.tok.kind == tokEOF {
			return nil
		}
	}
}

func (p *parser) module() error {
	if _, err := p.expect(tokModule); err != nil {
		return err
	}
	name, err := p.expect(tokIdent)
	if err != nil {
		return err
	}
	p.h.Module(name.text)

	// The header port list only names ports; Port entities are built
	// from the declarations inside the module body.
	ok, err := p.accept(tokLParen)
	if err != nil {
		return err
	}
	if ok {
		if err := p.portNameList(); err != nil {
			return err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return err
		}
	}
	if _, err := p.expect(tokSemicolon); err != nil {
		return err
	}

	for p.tok.kind != tokEndmodule {
		if err := p.moduleItem(); err != nil {
			return err
		}
	}
	_, err = p.expect(tokEndmodule)
	return err
}

func (p *parser) portNameList() error {
	if p.tok.kind == tokRParen { // empty port list
		return nil
	}
	if _, err := p.expect(tokIdent); err != nil {
		return err
	}
	for {
		ok, err := p.accept(tokComma)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if _, err := p.expect(tokIdent); err != nil {
			return err
		}
	}
}

func (p *parser) moduleItem() error {
	switch p.tok.kind {
	case tokInput, tokOutput, tokInout:
		return p.portDecl()
	case tokWire, tokReg, tokWand, tokWor, tokTri, tokTriand, tokTrior, tokSupply0, tokSupply1:
		return p.netDecl()
	case tokAssign:
		return p.assignStmt()
	case tokIdent:
		return p.instanceStmt()
	case tokEOF:
		return synErrorf(p.tok, `expected "endmodule", found end of input`)
	}
	return synErrorf(p.tok, "expected declaration, assignment, or instance, found %s", p.tok.describe())
}

func (p *parser) portDecl() error {
	var port Port
	switch p.tok.kind {
	case tokInput:
		port.Dir = DirInput
	case tokOutput:
		port.Dir = DirOutput
	case tokInout:
		port.Dir = DirInout
	}
	if err := p.next(); err != nil {
		return err
	}

	switch p.tok.kind {
	case tokWire:
		port.Conn = ConnWire
		if err := p.next(); err != nil {
			return err
		}
	case tokReg:
		port.Conn = ConnReg
		if err := p.next(); err != nil {
			return err
		}
	}

	if p.tok.kind == tokLBrack {
		beg, end, err := p.bitRange()
		if err != nil {
			return err
		}
		port.Beg, port.End, port.Ranged = beg, end, true
	}

	names, err := p.nameList()
	if err != nil {
		return err
	}
	port.Names = names
	if _, err := p.expect(tokSemicolon); err != nil {
		return err
	}
	p.h.Port(port)
	return nil
}

func (p *parser) netDecl() error {
	var net Net
	switch p.tok.kind {
	case tokReg:
		net.Type = NetReg
	case tokWire:
		net.Type = NetWire
	case tokWand:
		net.Type = NetWand
	case tokWor:
		net.Type = NetWor
	case tokTri:
		net.Type = NetTri
	case tokTriand:
		net.Type = NetTriand
	case tokTrior:
		net.Type = NetTrior
	case tokSupply0:
		net.Type = NetSupply0
	case tokSupply1:
		net.Type = NetSupply1
	}
	if err := p.next(); err != nil {
		return err
	}

	if p.tok.kind == tokLBrack {
		beg, end, err := p.bitRange()
		if err != nil {
			return err
		}
		net.Beg, net.End, net.Ranged = beg, end, true
	}

	names, err := p.nameList()
	if err != nil {
		return err
	}
	net.Names = names
	if _, err := p.expect(tokSemicolon); err != nil {
		return err
	}
	p.h.Net(net)
	return nil
}

// nameList parses ident (, ident)* preserving declared order.
func (p *parser) nameList() ([]string, error) {
	tok, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	names := []string{tok.text}
	for {
		ok, err := p.accept(tokComma)
		if err != nil {
			return nil, err
		}
		if !ok {
			return names, nil
		}
		tok, err := p.expect(tokIdent)
		if err != nil {
			return nil, err
		}
		names = append(names, tok.text)
	}
}

// bitRange parses [beg:end]. Bounds are kept in declared order, whether
// ascending or descending.
func (p *parser) bitRange() (beg, end int, err error) {
	if _, err = p.expect(tokLBrack); err != nil {
		return 0, 0, err
	}
	if beg, err = p.rangeBound(); err != nil {
		return 0, 0, err
	}
	if _, err = p.expect(tokColon); err != nil {
		return 0, 0, err
	}
	if end, err = p.rangeBound(); err != nil {
		return 0, 0, err
	}
	if _, err = p.expect(tokRBrack); err != nil {
		return 0, 0, err
	}
	return beg, end, nil
}

// rangeBound requires a plain decimal integer literal. Parameterized
// widths are outside the structural subset and rejected here.
func (p *parser) rangeBound() (int, error) {
	tok := p.tok
	if tok.kind != tokNumber {
		return 0, synErrorf(tok, "expected integer bound, found %s", tok.describe())
	}
	v, err := strconv.Atoi(tok.text)
	if err != nil {
		return 0, synErrorf(tok, "malformed bound %q", tok.text)
	}
	return v, p.next()
}

func (p *parser) assignStmt() error {
	if _, err := p.expect(tokAssign); err != nil {
		return err
	}
	lhs, err := p.lvalue()
	if err != nil {
		return err
	}
	if _, err := p.expect(tokEquals); err != nil {
		return err
	}
	rhs, err := p.rvalue()
	if err != nil {
		return err
	}
	if _, err := p.expect(tokSemicolon); err != nil {
		return err
	}
	p.h.Assignment(Assignment{LHS: lhs, RHS: rhs})
	return nil
}

// lvalue parses the assignment target: a single net reference or a
// concatenation of them, expanded into one sequence.
func (p *parser) lvalue() ([]Expr, error) {
	ok, err := p.accept(tokLBrace)
	if err != nil {
		return nil, err
	}
	if ok {
		return p.braceList(p.refExpr)
	}
	e, err := p.refExpr()
	if err != nil {
		return nil, err
	}
	return []Expr{e}, nil
}

// rvalue parses the assignment source. Concatenation braces expand into
// the returned sequence. Operator tokens between or before operands are
// accepted and discarded: the sequence carries operands only.
func (p *parser) rvalue() ([]Expr, error) {
	var out []Expr
	for {
		es, err := p.rterm()
		if err != nil {
			return nil, err
		}
		out = append(out, es...)
		if p.tok.kind != tokOp {
			return out, nil
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	}
}

func (p *parser) rterm() ([]Expr, error) {
	for p.tok.kind == tokOp { // unary prefixes
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	ok, err := p.accept(tokLBrace)
	if err != nil {
		return nil, err
	}
	if ok {
		return p.braceList(p.operand)
	}
	e, err := p.operand()
	if err != nil {
		return nil, err
	}
	return []Expr{e}, nil
}

func (p *parser) instanceStmt() error {
	typ, err := p.expect(tokIdent)
	if err != nil {
		return err
	}
	name, err := p.expect(tokIdent)
	if err != nil {
		return err
	}
	inst := Instance{Type: typ.text, Name: name.text}

	if _, err := p.expect(tokLParen); err != nil {
		return err
	}
	if p.tok.kind != tokRParen { // connection list may be empty
		for {
			conn, err := p.connection()
			if err != nil {
				return err
			}
			inst.Conns = append(inst.Conns, conn)
			ok, err := p.accept(tokComma)
			if err != nil {
				return err
			}
			if !ok {
				break
			}
		}
	}
	if _, err := p.expect(tokRParen); err != nil {
		return err
	}
	if _, err := p.expect(tokSemicolon); err != nil {
		return err
	}
	p.h.Instance(inst)
	return nil
}

// connection parses one instance port connection; a leading "." marks
// the named form. An unconnected named port, .clk(), yields an empty
// expression list.
func (p *parser) connection() (Connection, error) {
	ok, err := p.accept(tokDot)
	if err != nil {
		return Connection{}, err
	}
	if !ok {
		exprs, err := p.connExprs()
		if err != nil {
			return Connection{}, err
		}
		return Connection{Exprs: exprs}, nil
	}

	port, err := p.expect(tokIdent)
	if err != nil {
		return Connection{}, err
	}
	if _, err := p.expect(tokLParen); err != nil {
		return Connection{}, err
	}
	conn := Connection{Port: port.text}
	if p.tok.kind != tokRParen {
		if conn.Exprs, err = p.connExprs(); err != nil {
			return Connection{}, err
		}
	}
	if _, err := p.expect(tokRParen); err != nil {
		return Connection{}, err
	}
	return conn, nil
}

func (p *parser) connExprs() ([]Expr, error) {
	ok, err := p.accept(tokLBrace)
	if err != nil {
		return nil, err
	}
	if ok {
		return p.braceList(p.operand)
	}
	e, err := p.operand()
	if err != nil {
		return nil, err
	}
	return []Expr{e}, nil
}

// braceList parses the elements of a concatenation after its opening
// brace has been consumed.
func (p *parser) braceList(elem func() (Expr, error)) ([]Expr, error) {
	var out []Expr
	for {
		e, err := elem()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
		ok, err := p.accept(tokComma)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	if _, err := p.expect(tokRBrace); err != nil {
		return nil, err
	}
	return out, nil
}

// operand parses one expression element: a literal constant or a net
// reference.
func (p *parser) operand() (Expr, error) {
	switch p.tok.kind {
	case tokNumber, tokBased:
		return p.constant()
	case tokIdent:
		return p.refExpr()
	}
	return nil, synErrorf(p.tok, "expected identifier or literal, found %s", p.tok.describe())
}

// refExpr parses a net reference. One token of lookahead past the first
// bound distinguishes a bit-select from a range-select.
func (p *parser) refExpr() (Expr, error) {
	name, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	ok, err := p.accept(tokLBrack)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Ident{Name: name.text}, nil
	}
	first, err := p.rangeBound()
	if err != nil {
		return nil, err
	}
	ok, err = p.accept(tokColon)
	if err != nil {
		return nil, err
	}
	if ok {
		second, err := p.rangeBound()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRBrack); err != nil {
			return nil, err
		}
		return NetRange{Name: name.text, Beg: first, End: second}, nil
	}
	if _, err := p.expect(tokRBrack); err != nil {
		return nil, err
	}
	return NetBit{Name: name.text, Bit: first}, nil
}

func (p *parser) constant() (Expr, error) {
	tok := p.tok
	if err := p.next(); err != nil {
		return nil, err
	}
	if tok.kind == tokNumber {
		return Constant{Digits: tok.text}, nil
	}
	return parseBased(tok)
}

// parseBased splits a based-literal token, e.g. 4'b0101, into width,
// base, and digits. The lexer has already validated the digits against
// the base.
func parseBased(tok token) (Expr, error) {
	i := strings.IndexByte(tok.text, '\'')
	c := Constant{Base: lowerByte(tok.text[i+1]), Digits: tok.text[i+2:]}
	if i > 0 {
		w, err := strconv.Atoi(strings.ReplaceAll(tok.text[:i], "_", ""))
		if err != nil {
			return nil, synErrorf(tok, "malformed literal width %q", tok.text[:i])
		}
		c.Width, c.HasWidth = w, true
	}
	return c, nil
}
