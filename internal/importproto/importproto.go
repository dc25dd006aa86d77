// Package importproto implements the one import-adjacent hook this core
// exposes: import_name, which hands off to an externally supplied
// __import__ the way a real module system's resolution would plug in,
// and import_from, which reads an attribute off the resulting module and
// turns a missing-attribute failure into ImportError rather than letting
// AttributeError escape.
package importproto

import (
	"pyrtcore/internal/attrproto"
	"pyrtcore/internal/callproto"
	"pyrtcore/internal/env"
	"pyrtcore/internal/rtexc"
	"pyrtcore/internal/rtobjects"
	"pyrtcore/internal/rtvalue"
)

// ImportName implements import_name(name, fromlist, level): builds the
// five-element argument tuple (name, None, None, fromlist, level) the
// __import__ builtin expects and calls it. level must be 0; this core
// supports no other value (no package-relative import resolution).
func ImportName(e *env.Environment, name string, fromlist rtvalue.Value, level int64) rtvalue.Value {
	if level != 0 {
		rtexc.RaiseValueError("level != 0 is not supported")
	}
	hook := e.LoadGlobal("__import__")
	args := []rtvalue.Value{
		rtobjects.NewString(name),
		rtvalue.None,
		rtvalue.None,
		fromlist,
		rtvalue.Int(level),
	}
	return callproto.CallN(hook, args)
}

// ImportFrom implements import_from(module, name): loads name off module
// the same way load_attr does, converting a resulting AttributeError into
// ImportError instead of letting it propagate as-is, so `from mod import
// missing` raises ImportError rather than AttributeError.
func ImportFrom(module rtvalue.Value, name string) rtvalue.Value {
	var result rtvalue.Value
	exc, caught := rtexc.Protect(func() {
		result = attrproto.LoadAttr(module, name)
	}, func() {})
	if !caught {
		return result
	}
	if rtexc.IsAttributeError(exc) {
		rtexc.RaiseImportError("cannot import name '" + name + "'")
	}
	rtvalue.Raise(exc)
	panic("unreachable")
}
