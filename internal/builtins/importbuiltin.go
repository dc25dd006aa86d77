package builtins

import (
	"pyrtcore/internal/rtexc"
	"pyrtcore/internal/rtobjects"
	"pyrtcore/internal/rtvalue"
)

// importFn is the default __import__ hook import_name calls through:
// this core has no module loader or filesystem/search-path machinery, so
// resolving any module name fails with ImportError. An embedder wanting
// real module resolution installs its own callable over this name in the
// builtins namespace before running user code.
var importFn = rtobjects.NewNativeFunc("__import__", func(args []rtvalue.Value) rtvalue.Value {
	if len(args) == 0 {
		rtexc.RaiseTypeError("__import__() missing required argument: 'name'")
	}
	name := "?"
	if rtvalue.TypeOf(args[0]) == rtobjects.StringType {
		name = rtobjects.AsString(args[0])
	}
	rtexc.RaiseImportError("no module named '" + name + "'")
	panic("unreachable")
})
