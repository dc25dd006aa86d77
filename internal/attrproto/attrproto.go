// Package attrproto implements the attribute, subscription, and bound
// method protocol: load_method, load_attr, store_attr, and
// store_subscr.
//
// Attribute and index lookups run against a fixed type-slot search
// order: load_attr first, then the "__next__" synthesis, then a linear
// method-table scan.
package attrproto

import (
	"unsafe"

	"pyrtcore/internal/iterproto"
	"pyrtcore/internal/rtexc"
	"pyrtcore/internal/rtobjects"
	"pyrtcore/internal/rtvalue"
)

// BoundMethod is a function value paired with the self (or class) it
// prepends on call ("bound method"). It satisfies the call
// protocol itself so callproto.CallN can call it directly.
type BoundMethod struct {
	rtvalue.Object
	Self rtvalue.Value
	Fn   rtvalue.Value
}

var BoundMethodType = &rtvalue.TypeDescriptor{Name: "method"}

func init() {
	BoundMethodType.Print = func(v rtvalue.Value) string { return "<bound method>" }
	BoundMethodType.CallN = func(self rtvalue.Value, args []rtvalue.Value) rtvalue.Value {
		bm := boundMethodOf(self)
		full := append([]rtvalue.Value{bm.Self}, args...)
		t := rtvalue.TypeOf(bm.Fn)
		if t == nil || t.CallN == nil {
			rtexc.RaiseTypeError("'" + typeName(bm.Fn) + "' object is not callable")
		}
		return t.CallN(bm.Fn, full)
	}
}

func boundMethodOf(v rtvalue.Value) *BoundMethod {
	return (*BoundMethod)(unsafe.Pointer(rtvalue.AsHeapObj(v)))
}

func newBoundMethod(self, fn rtvalue.Value) rtvalue.Value {
	obj := &BoundMethod{Object: rtvalue.Object{Type: BoundMethodType}, Self: self, Fn: fn}
	return rtvalue.Heap(&obj.Object)
}

// LoadMethod implements load_method(base, attr): returns
// (self, fn) when a bound method was found (self == rtvalue.Null for an
// unbound/static method or a plain non-method attribute), following a
// fixed four-step search order.
func LoadMethod(base rtvalue.Value, attr string) (self, fn rtvalue.Value) {
	t := rtvalue.TypeOf(base)
	if t == nil {
		raiseAttributeError(base, attr)
	}

	// Step 1: type.load_attr, if present.
	if t.LoadAttr != nil {
		if v, ok := t.LoadAttr(base, attr); ok {
			return rtvalue.Null, v
		}
	}

	// Step 2: synthesise `next` as a bound method over __next__ when the
	// type supports the iterator protocol.
	if attr == "__next__" && t.IterNext != nil {
		return base, nextBuiltin
	}

	// Step 3: linear scan of the method table.
	for _, m := range t.Methods {
		if m.Name != attr {
			continue
		}
		switch m.Kind {
		case rtvalue.MethodStatic:
			return rtvalue.Null, m.Fn
		case rtvalue.MethodClass:
			return rtvalue.Heap(classSelf(t)), m.Fn
		default:
			return base, m.Fn
		}
	}

	raiseAttributeError(base, attr)
	panic("unreachable")
}

// classSelf wraps a type descriptor as a Value so a class-method bind has
// something to point Self at. This core's only user-visible type values
// are the class objects in rtobjects (a type descriptor alone has no
// Object header); non-class types calling a class method is not a
// configuration this runtime's built-in types exercise.
func classSelf(t *rtvalue.TypeDescriptor) *rtvalue.Object {
	return &rtvalue.Object{Type: t}
}

// nextBuiltin is the bound-method target load_method synthesises for
// "__next__": calling it performs one iternext step and raises
// StopIteration on exhaustion, same as the builtin next() function.
var nextBuiltin = rtobjects.NewNativeFunc("next", func(args []rtvalue.Value) rtvalue.Value {
	if len(args) == 0 {
		rtexc.RaiseTypeError("next expected 1 argument, got 0")
	}
	return iterproto.Next(args[0])
})

func raiseAttributeError(base rtvalue.Value, attr string) {
	if isTypeDescriptorValue(base) {
		rtexc.RaiseAttributeError("type object has no attribute '" + attr + "'")
	}
	rtexc.RaiseAttributeError("'" + typeName(base) + "' object has no attribute '" + attr + "'")
}

// isTypeDescriptorValue reports whether base is itself acting as a type
// (a class value), which gets its own distinct load_method failure
// message.
func isTypeDescriptorValue(base rtvalue.Value) bool {
	return rtvalue.TypeOf(base) == rtobjects.TypeType
}

// LoadAttr implements load_attr: calls LoadMethod, and when
// the result is a method (self != NULL), constructs a fresh bound-method
// value rather than returning the raw function.
func LoadAttr(base rtvalue.Value, attr string) rtvalue.Value {
	self, fn := LoadMethod(base, attr)
	if rtvalue.IsNull(self) {
		return fn
	}
	return newBoundMethod(self, fn)
}

// StoreAttr implements store_attr: delegates to type.store_attr,
// raising AttributeError on a false or absent result.
func StoreAttr(base rtvalue.Value, attr string, v rtvalue.Value) {
	t := rtvalue.TypeOf(base)
	if t != nil && t.StoreAttr != nil && t.StoreAttr(base, attr, v) {
		return
	}
	rtexc.RaiseAttributeError("'" + typeName(base) + "' object has no attribute '" + attr + "'")
}

// StoreSubscr implements store_subscr: the core hard-codes
// list and dict handling since no dispatch slot exists for it yet. Any
// other base is a programming error: a front-end emitting store_subscr
// against a base it never checked is a compiler bug, not a user-facing
// exception, so this panics rather than raising.
func StoreSubscr(base, idx, v rtvalue.Value) {
	switch rtvalue.TypeOf(base) {
	case rtobjects.ListType:
		storeListSubscr(base, idx, v)
		return
	case rtobjects.DictType:
		storeDictSubscr(base, idx, v)
		return
	default:
		panic("attrproto: store_subscr on unsupported base type '" + typeName(base) + "'")
	}
}

func storeListSubscr(base, idx, v rtvalue.Value) {
	list := rtobjects.ListOf(base)
	if !rtvalue.IsSmallInt(idx) {
		rtexc.RaiseTypeError("list indices must be integers")
	}
	i := rtvalue.AsSmallInt(idx)
	if i < 0 {
		i += int64(len(list.Elements))
	}
	if i < 0 || i >= int64(len(list.Elements)) {
		rtexc.RaiseIndexError("list assignment index out of range")
	}
	list.Elements[i] = v
}

func storeDictSubscr(base, key, v rtvalue.Value) {
	d := rtobjects.DictOf(base)
	k, ok := rtobjects.DictKey(key)
	if !ok {
		rtexc.RaiseTypeError("unhashable key type: '" + typeName(key) + "'")
	}
	d.Table.Set(k, v)
}

func typeName(v rtvalue.Value) string {
	t := rtvalue.TypeOf(v)
	if t == nil {
		return "?"
	}
	return t.Name
}
