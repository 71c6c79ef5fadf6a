package verilog

import (
	"fmt"
	"strings"
)

// Statement re-serialization. Every dispatched entity formats back to
// canonical statement text; a Design formats back to compilable source.
// Because assignment operators are not represented, a multi-operand RHS
// prints as a concatenation.

func (p Port) String() string {
	var b strings.Builder
	b.WriteString(p.Dir.String())
	if p.Conn != ConnNone {
		b.WriteByte(' ')
		b.WriteString(p.Conn.String())
	}
	b.WriteString(rangeText(p.Beg, p.End, p.Ranged))
	b.WriteByte(' ')
	b.WriteString(namesText(p.Names))
	b.WriteByte(';')
	return b.String()
}

func (n Net) String() string {
	var b strings.Builder
	b.WriteString(n.Type.String())
	b.WriteString(rangeText(n.Beg, n.End, n.Ranged))
	b.WriteByte(' ')
	b.WriteString(namesText(n.Names))
	b.WriteByte(';')
	return b.String()
}

func (a Assignment) String() string {
	return fmt.Sprintf("assign %s = %s;", exprsText(a.LHS), exprsText(a.RHS))
}

func (c Connection) String() string {
	if c.Named() {
		return fmt.Sprintf(".%s(%s)", identText(c.Port), exprsText(c.Exprs))
	}
	return exprsText(c.Exprs)
}

func (i Instance) String() string {
	conns := make([]string, len(i.Conns))
	for n, c := range i.Conns {
		conns[n] = c.String()
	}
	return fmt.Sprintf("%s %s (%s);", identText(i.Type), identText(i.Name), strings.Join(conns, ", "))
}

func (m DesignModule) String() string {
	var b strings.Builder
	b.WriteString("module ")
	b.WriteString(identText(m.Name))
	b.WriteString(" (")
	first := true
	for _, p := range m.Ports {
		for _, name := range p.Names {
			if !first {
				b.WriteString(", ")
			}
			b.WriteString(identText(name))
			first = false
		}
	}
	b.WriteString(");\n")
	for _, p := range m.Ports {
		b.WriteString("  " + p.String() + "\n")
	}
	for _, n := range m.Nets {
		b.WriteString("  " + n.String() + "\n")
	}
	for _, a := range m.Assignments {
		b.WriteString("  " + a.String() + "\n")
	}
	for _, inst := range m.Instances {
		b.WriteString("  " + inst.String() + "\n")
	}
	b.WriteString("endmodule\n")
	return b.String()
}

func (d *Design) String() string {
	var b strings.Builder
	for i, m := range d.Modules {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.String())
	}
	return b.String()
}

// YAML views. Enums marshal as their keyword and expression variants as
// their statement text, so a dumped design reads like the source.

func (d Direction) MarshalYAML() (any, error) { return d.String(), nil }
func (c ConnType) MarshalYAML() (any, error)  { return c.String(), nil }
func (n NetType) MarshalYAML() (any, error)   { return n.String(), nil }

func (x Ident) MarshalYAML() (any, error)    { return exprText(x), nil }
func (x NetBit) MarshalYAML() (any, error)   { return exprText(x), nil }
func (x NetRange) MarshalYAML() (any, error) { return exprText(x), nil }
func (x Constant) MarshalYAML() (any, error) { return exprText(x), nil }

func rangeText(beg, end int, ranged bool) string {
	if !ranged {
		return ""
	}
	return fmt.Sprintf(" [%d:%d]", beg, end)
}

func exprText(e Expr) string {
	switch v := e.(type) {
	case Ident:
		return identText(v.Name)
	case NetBit:
		return fmt.Sprintf("%s[%d]", identText(v.Name), v.Bit)
	case NetRange:
		return fmt.Sprintf("%s[%d:%d]", identText(v.Name), v.Beg, v.End)
	case Constant:
		if v.Base == 0 {
			return v.Digits
		}
		if v.HasWidth {
			return fmt.Sprintf("%d'%c%s", v.Width, v.Base, v.Digits)
		}
		return fmt.Sprintf("'%c%s", v.Base, v.Digits)
	}
	return fmt.Sprintf("Expr(%T)", e)
}

// exprsText prints a one-element sequence bare and a longer one as a
// concatenation. An empty sequence (an unconnected port) prints empty.
func exprsText(es []Expr) string {
	switch len(es) {
	case 0:
		return ""
	case 1:
		return exprText(es[0])
	}
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = exprText(e)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func namesText(names []string) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = identText(n)
	}
	return strings.Join(parts, ", ")
}

// identText re-escapes names that are not plain identifiers. The
// trailing space is part of the escaped form.
func identText(name string) string {
	if plainIdent(name) {
		return name
	}
	return `\` + name + " "
}

func plainIdent(name string) bool {
	if name == "" || !isIdentStart(name[0]) {
		return false
	}
	if _, kw := keywords[name]; kw {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isIdentPart(name[i]) {
			return false
		}
	}
	return true
}
