package verilog

// DesignModule is one module accumulated by Design, with its entities in
// source order.
type DesignModule struct {
	Name        string       `yaml:"name"`
	Ports       []Port       `yaml:"ports,omitempty"`
	Nets        []Net        `yaml:"nets,omitempty"`
	Assignments []Assignment `yaml:"assignments,omitempty"`
	Instances   []Instance   `yaml:"instances,omitempty"`
}

// Design is a Handler that accumulates every dispatched entity into a
// list of modules. Use it when a whole-netlist view is more convenient
// than streaming:
//
//	var d verilog.Design
//	if err := verilog.ParseFile(path, &d); err != nil { ... }
type Design struct {
	Modules []DesignModule `yaml:"modules"`
}

var _ Handler = (*Design)(nil)

func (d *Design) Module(name string) {
	d.Modules = append(d.Modules, DesignModule{Name: name})
}

func (d *Design) current() *DesignModule {
	return &d.Modules[len(d.Modules)-1]
}

func (d *Design) Port(p Port) {
	m := d.current()
	m.Ports = append(m.Ports, p)
}

func (d *Design) Net(n Net) {
	m := d.current()
	m.Nets = append(m.Nets, n)
}

func (d *Design) Assignment(a Assignment) {
	m := d.current()
	m.Assignments = append(m.Assignments, a)
}

func (d *Design) Instance(i Instance) {
	m := d.current()
	m.Instances = append(m.Instances, i)
}
