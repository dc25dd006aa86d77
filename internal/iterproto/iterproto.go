// Package iterproto implements the iterator protocol: getiter and
// iternext, translating the internal stop-iteration marker at the
// protocol boundary so it never reaches user code.
package iterproto

import (
	"pyrtcore/internal/rtexc"
	"pyrtcore/internal/rtvalue"
)

// GetIter implements getiter(v): delegates to type.getiter,
// raising TypeError on a missing slot or a small-int input.
func GetIter(v rtvalue.Value) rtvalue.Value {
	if rtvalue.IsSmallInt(v) {
		rtexc.RaiseTypeError("'int' object is not iterable")
	}
	t := rtvalue.TypeOf(v)
	if t == nil || t.GetIter == nil {
		rtexc.RaiseTypeError("'" + typeName(v) + "' object is not iterable")
	}
	return t.GetIter(v)
}

// IterNext implements iternext(iter), delegating to
// type.iternext and returning the raw stop-iteration marker untranslated:
// loop constructs (comprehensions, for) want the sentinel itself to detect
// termination without paying for an exception. Use Next for the
// user-visible next() semantics that raise StopIteration instead.
func IterNext(iter rtvalue.Value) rtvalue.Value {
	t := rtvalue.TypeOf(iter)
	if t == nil || t.IterNext == nil {
		rtexc.RaiseTypeError("'" + typeName(iter) + "' object is not an iterator")
	}
	return t.IterNext(iter)
}

// Next is the user-visible next(): one iternext step, translating
// exhaustion into a StopIteration exception.
func Next(iter rtvalue.Value) rtvalue.Value {
	v := IterNext(iter)
	if rtvalue.IsStopIterMarker(v) {
		rtexc.RaiseStopIteration("")
	}
	return v
}

func typeName(v rtvalue.Value) string {
	t := rtvalue.TypeOf(v)
	if t == nil {
		return "?"
	}
	return t.Name
}
