// Package verilog parses the structural (gate-level netlist) subset of
// Verilog: module headers, port and net declarations, continuous
// assignments, and cell instantiations. Parsed entities are streamed, in
// source order, to a caller-supplied Handler; behavioral constructs are
// out of scope.
package verilog

import "fmt"

// Direction is a port direction.
type Direction int

const (
	DirInput Direction = iota
	DirOutput
	DirInout
)

func (d Direction) String() string {
	switch d {
	case DirInput:
		return "input"
	case DirOutput:
		return "output"
	case DirInout:
		return "inout"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ConnType is the optional connection type on a port declaration.
type ConnType int

const (
	ConnNone ConnType = iota
	ConnWire
	ConnReg
)

func (c ConnType) String() string {
	switch c {
	case ConnNone:
		return ""
	case ConnWire:
		return "wire"
	case ConnReg:
		return "reg"
	}
	return fmt.Sprintf("ConnType(%d)", int(c))
}

// NetType is the keyword of a net declaration.
type NetType int

const (
	NetNone NetType = iota
	NetReg
	NetWire
	NetWand
	NetWor
	NetTri
	NetTriand
	NetTrior
	NetSupply0
	NetSupply1
)

func (n NetType) String() string {
	switch n {
	case NetNone:
		return ""
	case NetReg:
		return "reg"
	case NetWire:
		return "wire"
	case NetWand:
		return "wand"
	case NetWor:
		return "wor"
	case NetTri:
		return "tri"
	case NetTriand:
		return "triand"
	case NetTrior:
		return "trior"
	case NetSupply0:
		return "supply0"
	case NetSupply1:
		return "supply1"
	}
	return fmt.Sprintf("NetType(%d)", int(n))
}

// Port is one port declaration statement. A statement declaring several
// comma-separated names produces a single Port whose Names preserves the
// declared order. Beg and End hold the bit-range bounds exactly as
// written (no normalization); Ranged reports whether a range was given.
type Port struct {
	Names  []string  `yaml:"names"`
	Dir    Direction `yaml:"direction"`
	Conn   ConnType  `yaml:"connection,omitempty"`
	Beg    int       `yaml:"beg,omitempty"`
	End    int       `yaml:"end,omitempty"`
	Ranged bool      `yaml:"ranged,omitempty"`
}

// Net is one net declaration statement, with the same name-list and
// range conventions as Port.
type Net struct {
	Names  []string `yaml:"names"`
	Type   NetType  `yaml:"type"`
	Beg    int      `yaml:"beg,omitempty"`
	End    int      `yaml:"end,omitempty"`
	Ranged bool     `yaml:"ranged,omitempty"`
}

// Expr AST
//
// Expr is an operand of an assignment or instance connection: a plain
// identifier, a bit-select, a range-select, or a literal constant.
// The variant set is closed; consumers can type-switch exhaustively.

type Expr interface{ isExpr() }

// Ident is a whole-identifier reference.
type Ident struct {
	Name string `yaml:"name"`
}

func (Ident) isExpr() {}

// NetBit is a single-bit reference, name[bit].
type NetBit struct {
	Name string `yaml:"name"`
	Bit  int    `yaml:"bit"`
}

func (NetBit) isExpr() {}

// NetRange is a contiguous bit-range reference, name[beg:end], bounds in
// declared order.
type NetRange struct {
	Name string `yaml:"name"`
	Beg  int    `yaml:"beg"`
	End  int    `yaml:"end"`
}

func (NetRange) isExpr() {}

// Constant is a numeric literal. Based literals carry their base letter
// (b, o, d, or h) and, when written, their bit width; plain decimal
// literals carry digits only.
type Constant struct {
	Width    int    `yaml:"width,omitempty"`
	HasWidth bool   `yaml:"-"`
	Base     byte   `yaml:"base,omitempty"`
	Digits   string `yaml:"digits"`
}

func (Constant) isExpr() {}

// Assignment is one continuous-assignment statement. Concatenations are
// expanded: each brace list contributes its elements, in order, to the
// side's sequence. A non-concatenated side is a one-element sequence.
// LHS elements are Ident, NetBit, or NetRange; RHS elements may also be
// Constant. Operators between RHS operands are accepted by the grammar
// but not represented.
type Assignment struct {
	LHS []Expr `yaml:"lhs"`
	RHS []Expr `yaml:"rhs"`
}

// Connection is one port connection of an instance. Port is empty for a
// positional connection. Exprs holds the connection expression,
// concatenations expanded; it is empty for an unconnected named port
// such as .clk().
type Connection struct {
	Port  string `yaml:"port,omitempty"`
	Exprs []Expr `yaml:"exprs"`
}

// Named reports whether the connection was written in .port(expr) form.
func (c Connection) Named() bool { return c.Port != "" }

// Instance is one cell or module instantiation statement.
type Instance struct {
	Type  string       `yaml:"type"`
	Name  string       `yaml:"name"`
	Conns []Connection `yaml:"connections"`
}
