// Package testutil holds comparison helpers shared by the parser tests.
package testutil

import (
	"fmt"
	"reflect"

	"github.com/tzyysang/vnetlist/verilog"
)

// CompareDesigns compares two collected designs and returns a
// human-readable description of the first mismatch, or "" when equal.
func CompareDesigns(got, want verilog.Design) string {
	if len(got.Modules) != len(want.Modules) {
		return fmt.Sprintf("module count mismatch: got %d want %d", len(got.Modules), len(want.Modules))
	}
	for i := range got.Modules {
		if diff := compareModules(got.Modules[i], want.Modules[i]); diff != "" {
			return fmt.Sprintf("module %q: %s", want.Modules[i].Name, diff)
		}
	}
	return ""
}

func compareModules(got, want verilog.DesignModule) string {
	if got.Name != want.Name {
		return fmt.Sprintf("name mismatch: got %q want %q", got.Name, want.Name)
	}
	if !reflect.DeepEqual(got.Ports, want.Ports) {
		return fmt.Sprintf("ports mismatch:\n  got  %v\n  want %v", got.Ports, want.Ports)
	}
	if !reflect.DeepEqual(got.Nets, want.Nets) {
		return fmt.Sprintf("nets mismatch:\n  got  %v\n  want %v", got.Nets, want.Nets)
	}
	if !reflect.DeepEqual(got.Assignments, want.Assignments) {
		return fmt.Sprintf("assignments mismatch:\n  got  %v\n  want %v", got.Assignments, want.Assignments)
	}
	if !reflect.DeepEqual(got.Instances, want.Instances) {
		return fmt.Sprintf("instances mismatch:\n  got  %v\n  want %v", got.Instances, want.Instances)
	}
	return ""
}
