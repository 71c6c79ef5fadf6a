package verilog_test

import (
	"testing"

	"github.com/tzyysang/vnetlist/examples"
	"github.com/tzyysang/vnetlist/internal/testutil"
	"github.com/tzyysang/vnetlist/verilog"
)

func TestGoldenExamples(t *testing.T) {
	cases := []struct {
		name   string
		vPath  string
		golden string
	}{
		{
			name:   "And2",
			vPath:  "and2.v",
			golden: "and2.golden.v",
		},
		{
			name:   "Adder4",
			vPath:  "adder4.v",
			golden: "adder4.golden.v",
		},
		{
			name:   "BusSplit",
			vPath:  "bus_split.v",
			golden: "bus_split.golden.v",
		},
		{
			name:   "Synthesized",
			vPath:  "synthesized.v",
			golden: "synthesized.golden.v",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got verilog.Design
			if err := verilog.Parse(mustRead(t, tc.vPath), &got); err != nil {
				t.Fatalf("parse: %v", err)
			}
			var want verilog.Design
			if err := verilog.Parse(mustRead(t, tc.golden), &want); err != nil {
				t.Fatalf("parse golden: %v", err)
			}
			if diff := testutil.CompareDesigns(got, want); diff != "" {
				t.Fatalf("%s", diff)
			}
			if text := got.String(); text != string(mustRead(t, tc.golden)) {
				t.Fatalf("canonical text differs from %s:\n%s", tc.golden, text)
			}
		})
	}
}

func mustRead(t *testing.T, path string) []byte {
	t.Helper()
	b, err := examples.FS.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return b
}
