package verilog

// Handler receives parsed entities in strict source order, one call per
// completed statement. The parser invokes it synchronously on the
// goroutine driving Parse, transfers ownership of each entity with the
// call, and keeps no reference afterward; the handler may mutate or
// discard its argument freely. A handler that needs to abort the parse
// may panic; the parser performs no recovery of its own beyond dropping
// its in-progress state.
type Handler interface {
	// Module is called once per module header with the module name.
	Module(name string)
	// Port is called once per port declaration statement.
	Port(p Port)
	// Net is called once per net declaration statement.
	Net(n Net)
	// Assignment is called once per continuous-assignment statement.
	Assignment(a Assignment)
	// Instance is called once per instantiation statement.
	Instance(i Instance)
}

// NopHandler implements Handler with no-op methods. Embed it to handle
// only the entity kinds of interest.
type NopHandler struct{}

func (NopHandler) Module(string)         {}
func (NopHandler) Port(Port)             {}
func (NopHandler) Net(Net)               {}
func (NopHandler) Assignment(Assignment) {}
func (NopHandler) Instance(Instance)     {}

var _ Handler = NopHandler{}
