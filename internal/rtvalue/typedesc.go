package rtvalue

import "strconv"

// MethodKind distinguishes how a method-table entry binds when loaded:
// instance, static, or class.
type MethodKind uint8

const (
	MethodInstance MethodKind = iota
	MethodStatic
	MethodClass
)

// Method is one entry in a type's method table, consulted in lexical order
// during load_method's linear-scan fallback.
type Method struct {
	Name  string
	Fn    Value
	Kind  MethodKind
}

// TypeDescriptor is the immutable per-process operation-slot table every
// heap object's Object.Type points to. Any slot may be nil; a nil slot is an
// operation-not-supported signal the dispatch layer turns into a TypeError.
//
// Slots are plain Go function values rather than an interface because
// "absence of a slot" and "NULL return from a present slot" are two
// distinct signals (not-supported vs. try-the-next-dispatch-path); a nil
// func value models the first cleanly, while slots that can report the
// second return rtvalue.Null explicitly.
type TypeDescriptor struct {
	Name string

	// MakeNew constructs a new instance of the type from positional args.
	MakeNew func(args []Value) Value

	// CallN implements the call protocol for callable types. Returns
	// rtvalue.Null only if absent entirely (i.e. the slot itself is nil);
	// a present CallN must always produce a value or raise.
	CallN   func(self Value, args []Value) Value
	CallNKw func(self Value, args []Value, kwargs []KwArg) Value

	// UnaryOp/BinaryOp return Null to signal "operation not supported",
	// which the ops package maps to TypeError.
	UnaryOp  func(op UnaryOp, v Value) Value
	BinaryOp func(op BinaryOp, l, r Value) Value

	GetIter  func(v Value) Value
	IterNext func(it Value) Value

	// LoadAttr returns (value, true) on a direct hit, bypassing the
	// method-table scan entirely; (Null, false) falls through to it.
	LoadAttr func(base Value, attr string) (Value, bool)
	// StoreAttr reports whether the attribute was set.
	StoreAttr func(base Value, attr string, v Value) bool

	Equality func(a, b Value) bool
	Hash     func(v Value) uint64

	Print func(v Value) string

	// Methods is consulted in order; the first matching Name wins, which
	// makes method resolution deterministic.
	Methods []Method
}

// KwArg is a single keyword argument (name, value) used by CallNKw and the
// call-protocol layer.
type KwArg struct {
	Name  string
	Value Value
}

// Synthesised type descriptors for the immediate kinds. These are the
// process-wide "int-type", "bool-type" and singleton types; they carry no
// heap object, only a type_of/print/equality identity.
var (
	IntType      = &TypeDescriptor{Name: "int"}
	BoolType     = &TypeDescriptor{Name: "bool"}
	NoneType     = &TypeDescriptor{Name: "NoneType"}
	EllipsisType = &TypeDescriptor{Name: "ellipsis"}

	// stopIterMarkerType is deliberately unexported: the marker it
	// describes must never reach user code, so nothing outside this
	// package should ever ask for its type.
	stopIterMarkerType = &TypeDescriptor{Name: "<stop-iteration-marker>"}
)

func init() {
	IntType.Equality = func(a, b Value) bool { return AsSmallInt(a) == AsSmallInt(b) }
	IntType.Print = func(v Value) string { return strconv.FormatInt(AsSmallInt(v), 10) }
	IntType.Hash = func(v Value) uint64 { return uint64(AsSmallInt(v)) }

	BoolType.Equality = func(a, b Value) bool { return AsSingleton(a) == AsSingleton(b) }
	BoolType.Print = func(v Value) string {
		if AsSingleton(v) == SingletonTrue {
			return "True"
		}
		return "False"
	}
	BoolType.Hash = func(v Value) uint64 {
		if AsSingleton(v) == SingletonTrue {
			return 1
		}
		return 0
	}

	NoneType.Equality = func(a, b Value) bool { return true }
	NoneType.Print = func(v Value) string { return "None" }
	NoneType.Hash = func(v Value) uint64 { return 0 }

	EllipsisType.Equality = func(a, b Value) bool { return true }
	EllipsisType.Print = func(v Value) string { return "Ellipsis" }
}
