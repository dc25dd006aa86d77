// Package env implements the name-resolution environment: the
// locals/globals/builtins namespace chain, variable-access operations,
// and the caller-driven frame switch that lets __build_class__ and
// function calls install a fresh locals namespace and guarantee its
// restoration.
//
// Expressed as a three-namespace chain rather than a single scope stack.
package env

import (
	"pyrtcore/internal/nsmap"
	"pyrtcore/internal/rtexc"
	"pyrtcore/internal/rtobjects"
	"pyrtcore/internal/rtvalue"
)

// Environment holds the three process-wide namespaces. Builtins is
// shared by every module in a process and the core never swaps it;
// Locals and Globals are swapped by the caller entering a
// class/function/module frame.
type Environment struct {
	Locals   *nsmap.Table
	Globals  *nsmap.Table
	Builtins *nsmap.Table
}

// New creates an environment whose locals and globals are the same
// namespace, the top-level-frame invariant.
func New(builtins *nsmap.Table) *Environment {
	top := nsmap.New()
	return &Environment{Locals: top, Globals: top, Builtins: builtins}
}

// LoadName resolves q against locals, then globals, then builtins, in
// that fixed L->G->B order, raising NameError on a final miss.
func (e *Environment) LoadName(q string) rtvalue.Value {
	if v, ok := e.Locals.Get(q); ok {
		return v
	}
	if v, ok := e.Globals.Get(q); ok {
		return v
	}
	if v, ok := e.Builtins.Get(q); ok {
		return v
	}
	rtexc.RaiseNameError("name '" + q + "' is not defined")
	panic("unreachable")
}

// LoadGlobal resolves q against globals, then builtins, raising the same
// NameError on a final miss.
func (e *Environment) LoadGlobal(q string) rtvalue.Value {
	if v, ok := e.Globals.Get(q); ok {
		return v
	}
	if v, ok := e.Builtins.Get(q); ok {
		return v
	}
	rtexc.RaiseNameError("name '" + q + "' is not defined")
	panic("unreachable")
}

// StoreName inserts or overwrites q in locals.
func (e *Environment) StoreName(q string, v rtvalue.Value) { e.Locals.Set(q, v) }

// StoreGlobal inserts or overwrites q in globals.
func (e *Environment) StoreGlobal(q string, v rtvalue.Value) { e.Globals.Set(q, v) }

// LocalsGet returns the current locals namespace, for a caller about to
// swap it out and restore it later (class/function entry).
func (e *Environment) LocalsGet() *nsmap.Table { return e.Locals }

// LocalsSet installs m as the current locals namespace.
func (e *Environment) LocalsSet(m *nsmap.Table) { e.Locals = m }

// GlobalsGet returns the current globals namespace.
func (e *Environment) GlobalsGet() *nsmap.Table { return e.Globals }

// GlobalsSet installs m as the current globals namespace.
func (e *Environment) GlobalsSet(m *nsmap.Table) { e.Globals = m }

// LoadBuildClass returns the __build_class__ builtin, a convenience
// lookup so the compiler never has to special-case it.
func (e *Environment) LoadBuildClass() rtvalue.Value {
	return e.LoadGlobal("__build_class__")
}

// GetCell reads a closure cell's value.
func GetCell(c *rtobjects.Cell) rtvalue.Value { return c.Get() }

// SetCell writes a closure cell's value.
func SetCell(c *rtobjects.Cell, v rtvalue.Value) { c.Set(v) }
