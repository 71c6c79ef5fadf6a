// Command vnetlist parses structural Verilog netlists.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/pkg/profile"

	"github.com/tzyysang/vnetlist"
	"github.com/tzyysang/vnetlist/verilog"
)

type cli struct {
	Profile string `help:"Profile the run (${enum})." enum:",cpu,mem" default:""`

	Check   checkCmd   `cmd:"" help:"Parse netlist files and report errors."`
	Dump    dumpCmd    `cmd:"" help:"Parse a netlist and print its contents."`
	Version versionCmd `cmd:"" help:"Print the version."`
}

type checkCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Netlist source files."`
}

func (c *checkCmd) Run() error {
	failed := 0
	for _, path := range c.Files {
		var d verilog.Design
		if err := verilog.ParseFile(path, &d); err != nil {
			fmt.Fprintf(os.Stderr, "%s:%v\n", path, err)
			failed++
			continue
		}
		for _, m := range d.Modules {
			fmt.Printf("%s: module %s: %d ports, %d nets, %d assignments, %d instances\n",
				path, m.Name, len(m.Ports), len(m.Nets), len(m.Assignments), len(m.Instances))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(c.Files))
	}
	return nil
}

type dumpCmd struct {
	Format string `help:"Output format (${enum})." enum:"yaml,verilog" short:"f" default:"yaml"`
	File   string `arg:"" type:"existingfile" help:"Netlist source file."`
}

func (c *dumpCmd) Run() error {
	var d verilog.Design
	if err := verilog.ParseFile(c.File, &d); err != nil {
		return err
	}
	if c.Format == "verilog" {
		fmt.Print(d.String())
		return nil
	}
	out, err := yaml.Marshal(&d)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

type versionCmd struct{}

func (versionCmd) Run() error {
	fmt.Println(vnetlist.Version())
	return nil
}

func main() {
	var c cli
	ktx := kong.Parse(&c,
		kong.Name("vnetlist"),
		kong.Description("Structural Verilog netlist parser."),
	)
	if err := run(ktx, c.Profile); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ktx *kong.Context, profileMode string) error {
	switch profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}
	return ktx.Run()
}
