package builtins

import (
	"pyrtcore/internal/callproto"
	"pyrtcore/internal/env"
	"pyrtcore/internal/nsmap"
	"pyrtcore/internal/rtexc"
	"pyrtcore/internal/rtobjects"
	"pyrtcore/internal/rtvalue"
)

// classCellSentinel is the implementation-internal marker passed to
// body_fn as its class-cell argument; nothing outside this file ever
// constructs or compares against it, so identity (the default heap
// Equality fallback) is all it needs.
var classCellSentinel = rtvalue.Heap(&rtvalue.Object{Type: &rtvalue.TypeDescriptor{Name: "<class-cell-sentinel>"}})

// newBuildClassFn builds the __build_class__ builtin bound to e, the
// environment whose locals it swaps for the duration of the class body.
// A native-only realization of this core has no compiler emitting a
// class-cell return, so storing the resulting class into a returned cell
// is necessarily a no-op here: a Go closure standing in for a class body
// already has direct access to any *rtobjects.Cell it wants to populate,
// without needing to round-trip it through body_fn's return value.
func newBuildClassFn(e *env.Environment) rtvalue.Value {
	return rtobjects.NewNativeFunc("__build_class__", func(args []rtvalue.Value) rtvalue.Value {
		if len(args) < 2 {
			rtexc.RaiseTypeError("__build_class__: not enough arguments")
		}
		bodyFn := args[0]
		if rtvalue.TypeOf(args[1]) != rtobjects.StringType {
			rtexc.RaiseTypeError("__build_class__: name must be a string")
		}
		name := rtobjects.AsString(args[1])
		bases := append([]rtvalue.Value(nil), args[2:]...)

		saved := e.LocalsGet()
		fresh := nsmap.New()
		e.LocalsSet(fresh)
		func() {
			defer e.LocalsSet(saved)
			callproto.Call1(bodyFn, classCellSentinel)
		}()

		// Metaclass selection: if no explicit bases, use type; else use
		// type_of(bases[0]). This core has exactly one metaclass
		// implementation (rtobjects.NewClass), so the type_of(bases[0])
		// branch is satisfied trivially whenever bases[0] is itself a
		// user-defined class; subclassing a builtin type goes through the
		// same constructor too, since there is no second metaclass to
		// delegate to (proper multi-base MRO resolution is deferred).
		return rtobjects.NewClass(name, fresh, bases)
	})
}

// replPrintFn implements __repl_print__: no-op on None, else
// print the value's representation followed by a newline.
var replPrintFn = rtobjects.NewNativeFunc("__repl_print__", func(args []rtvalue.Value) rtvalue.Value {
	if len(args) == 0 || args[0] == rtvalue.None {
		return rtvalue.None
	}
	return builtinPrint(args[:1])
})
