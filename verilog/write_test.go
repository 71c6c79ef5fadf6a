package verilog

import "testing"

func TestEntityStrings(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{
			"ScalarPort",
			Port{Names: []string{"a"}, Dir: DirInput}.String(),
			"input a;",
		},
		{
			"RangedRegPort",
			Port{Names: []string{"q", "r"}, Dir: DirOutput, Conn: ConnReg, Beg: 3, End: 0, Ranged: true}.String(),
			"output reg [3:0] q, r;",
		},
		{
			"AscendingRangeNet",
			Net{Names: []string{"w"}, Type: NetWire, Beg: 0, End: 7, Ranged: true}.String(),
			"wire [0:7] w;",
		},
		{
			"EscapedNetName",
			Net{Names: []string{"n$1[2]"}, Type: NetTri}.String(),
			`tri \n$1[2] ;`,
		},
		{
			"Assignment",
			Assignment{
				LHS: []Expr{NetRange{Name: "y", Beg: 1, End: 0}},
				RHS: []Expr{NetBit{Name: "a", Bit: 2}, Constant{Width: 2, HasWidth: true, Base: 'b', Digits: "01"}},
			}.String(),
			"assign y[1:0] = {a[2], 2'b01};",
		},
		{
			"WidthlessConstant",
			exprText(Constant{Base: 'h', Digits: "ff"}),
			"'hff",
		},
		{
			"PlainConstant",
			exprText(Constant{Digits: "42"}),
			"42",
		},
		{
			"Instance",
			Instance{
				Type: "nand2",
				Name: "u1",
				Conns: []Connection{
					{Exprs: []Expr{Ident{Name: "a"}}},
					{Port: "y", Exprs: []Expr{Ident{Name: "n1"}}},
					{Port: "nc"},
				},
			}.String(),
			"nand2 u1 (a, .y(n1), .nc());",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %q, want %q", tc.got, tc.want)
			}
		})
	}
}

func TestKeywordNameReEscaped(t *testing.T) {
	// A keyword captured via an escaped identifier must re-escape.
	if got := identText("wire"); got != `\wire ` {
		t.Errorf("got %q, want %q", got, `\wire `)
	}
}

func TestDesignString(t *testing.T) {
	d := parseDesign(t, "module half_add (a, b, s, c);\ninput a, b;\noutput s, c;\nxor2 x0 (a, b, s);\nand2 a0 (a, b, c);\nendmodule\n")
	want := "module half_add (a, b, s, c);\n" +
		"  input a, b;\n" +
		"  output s, c;\n" +
		"  xor2 x0 (a, b, s);\n" +
		"  and2 a0 (a, b, c);\n" +
		"endmodule\n"
	if d.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", d.String(), want)
	}
}
