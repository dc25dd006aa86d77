// Package builtins implements built-in bootstrap: the initial
// population of the builtins namespace with types, exception factories,
// singletons, and the core functions every module frame falls back to.
//
// Built against this core's type-slot/call-protocol model rather than a
// switch over opcode names.
package builtins

import (
	"pyrtcore/internal/env"
	"pyrtcore/internal/nsmap"
	"pyrtcore/internal/ops"
	"pyrtcore/internal/rtexc"
	"pyrtcore/internal/rtobjects"
	"pyrtcore/internal/rtvalue"
)

// Bootstrap populates a fresh builtins namespace with types, exceptions,
// and functions. e is the environment __build_class__ will swap locals
// on; it must already exist (typically created via env.New(nil), with the
// table this function returns then assigned to its Builtins field).
func Bootstrap(e *env.Environment) *nsmap.Table {
	b := nsmap.New()

	registerTypes(b)
	for name, cls := range rtexc.Classes() {
		b.Set(name, cls)
	}
	b.Set("Ellipsis", rtvalue.Ellipsis)
	b.Set("__build_class__", newBuildClassFn(e))
	b.Set("__repl_print__", replPrintFn)
	b.Set("__import__", importFn)
	registerFunctions(b)

	return b
}

func registerTypes(b *nsmap.Table) {
	b.Set("bool", rtobjects.NewBuiltinType("bool", rtvalue.BoolType))
	b.Set("dict", rtobjects.NewBuiltinType("dict", rtobjects.DictType))
	b.Set("int", rtobjects.NewBuiltinType("int", rtvalue.IntType))
	b.Set("list", rtobjects.NewBuiltinType("list", rtobjects.ListType))
	b.Set("set", rtobjects.NewBuiltinType("set", rtobjects.SetType))
	b.Set("tuple", rtobjects.NewBuiltinType("tuple", rtobjects.TupleType))
	b.Set("type", rtobjects.NewBuiltinType("type", rtobjects.TypeType))

	rtvalue.IntType.MakeNew = func(args []rtvalue.Value) rtvalue.Value {
		if len(args) == 0 {
			return rtvalue.Int(0)
		}
		return args[0]
	}
	rtvalue.BoolType.MakeNew = func(args []rtvalue.Value) rtvalue.Value {
		if len(args) == 0 {
			return rtvalue.False
		}
		return rtvalue.Bool(ops.Truthy(args[0]))
	}
	rtobjects.ListType.MakeNew = func(args []rtvalue.Value) rtvalue.Value {
		if len(args) == 0 {
			return rtobjects.NewList(nil)
		}
		return rtobjects.NewList(materialize(args[0]))
	}
	rtobjects.TupleType.MakeNew = func(args []rtvalue.Value) rtvalue.Value {
		if len(args) == 0 {
			return rtobjects.NewTuple(nil)
		}
		return rtobjects.NewTuple(materialize(args[0]))
	}
	rtobjects.DictType.MakeNew = func(args []rtvalue.Value) rtvalue.Value { return rtobjects.NewDict() }
	rtobjects.SetType.MakeNew = func(args []rtvalue.Value) rtvalue.Value { return rtobjects.NewSet() }
}
