// Package rtvalue implements the tagged value representation at the base of
// the runtime: small integers, singletons, and heap object pointers, plus the
// type descriptor every heap object carries as its first field.
//
// A NaN-boxing VM packs all three kinds into one machine word for cache
// locality. Go has no portable way to steal bits from an interface or a
// float without unsafe tricks that fight the garbage collector, so this
// package instead models the value as an explicit sum type: a small
// struct with a kind tag and one active field per variant. The zero
// Value is the internal "absent" marker (NULL), which keeps
// call-protocol slots and method-lookup outputs zero-value-safe without
// a separate bool.
package rtvalue

// Kind discriminates the active variant of a Value.
type Kind uint8

const (
	// KindNull is the internal "absent" marker. It is the zero value of
	// Kind so a zero-value Value is Null without an explicit constructor.
	KindNull Kind = iota
	KindSmallInt
	KindSingleton
	KindHeap
)

// Singleton enumerates the fixed non-integer immediates.
type Singleton uint8

const (
	SingletonNone Singleton = iota
	SingletonTrue
	SingletonFalse
	SingletonEllipsis
	// SingletonStopIteration is the stop-iteration marker returned by
	// IterNext on exhaustion. It must never reach user code; callers at
	// the iterator-protocol boundary convert it to None or to a
	// StopIteration exception.
	SingletonStopIteration
)

// Value is a tagged immediate: a small integer, one of the fixed singletons,
// or a pointer to a heap object. Only the field matching Kind is meaningful.
type Value struct {
	kind Kind
	i    int64
	s    Singleton
	obj  *Object
}

// Null is the absent marker used by call-protocol slots and method-lookup
// outputs. It is never a user-visible value.
var Null = Value{}

// Object is the mandatory header of every heap-allocated value. Its Type
// field must be valid for the object's entire lifetime (invariant).
type Object struct {
	Type *TypeDescriptor
}

// Int boxes a machine int64 as a small integer. Arithmetic that would
// overflow this representation must promote to a boxed integer (see
// rtobjects.BigIntObj) instead of calling Int with a wrapped result.
func Int(i int64) Value {
	return Value{kind: KindSmallInt, i: i}
}

// Heap boxes a pointer to an object whose first field is a valid Object.
func Heap(obj *Object) Value {
	if obj == nil {
		return Null
	}
	return Value{kind: KindHeap, obj: obj}
}

func singleton(s Singleton) Value {
	return Value{kind: KindSingleton, s: s}
}

var (
	None           = singleton(SingletonNone)
	True           = singleton(SingletonTrue)
	False          = singleton(SingletonFalse)
	Ellipsis       = singleton(SingletonEllipsis)
	StopIterMarker = singleton(SingletonStopIteration)
)

// Bool boxes a Go bool as the True/False singleton.
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}

// IsNull reports whether v is the internal absent marker.
func IsNull(v Value) bool { return v.kind == KindNull }

// IsSmallInt reports whether v is a small-integer immediate.
func IsSmallInt(v Value) bool { return v.kind == KindSmallInt }

// IsSingleton reports whether v is one of the fixed singletons.
func IsSingleton(v Value) bool { return v.kind == KindSingleton }

// IsHeapObj reports whether v is a heap object pointer.
func IsHeapObj(v Value) bool { return v.kind == KindHeap }

// IsStopIterMarker reports whether v is the internal iterator-exhaustion
// sentinel. Used only at iterator-protocol boundaries.
func IsStopIterMarker(v Value) bool {
	return v.kind == KindSingleton && v.s == SingletonStopIteration
}

// AsSmallInt extracts the int64 payload. Callers must check IsSmallInt first.
func AsSmallInt(v Value) int64 { return v.i }

// AsHeapObj extracts the *Object payload. Callers must check IsHeapObj first.
func AsHeapObj(v Value) *Object { return v.obj }

// AsSingleton extracts the Singleton payload. Callers must check IsSingleton.
func AsSingleton(v Value) Singleton { return v.s }

// IsType reports whether v's type is exactly t.
func IsType(v Value, t *TypeDescriptor) bool {
	return TypeOf(v) == t
}

// TypeOf returns the type descriptor for any value, synthesising the
// immediate types (int, bool, NoneType, EllipsisType) for non-heap values.
func TypeOf(v Value) *TypeDescriptor {
	switch v.kind {
	case KindSmallInt:
		return IntType
	case KindSingleton:
		switch v.s {
		case SingletonTrue, SingletonFalse:
			return BoolType
		case SingletonEllipsis:
			return EllipsisType
		case SingletonStopIteration:
			return stopIterMarkerType
		default:
			return NoneType
		}
	case KindHeap:
		return v.obj.Type
	default:
		return nil
	}
}

// Equal implements identity equality for immediates and delegates to the
// type's Equality slot for heap objects,
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		// A small int and a heap BigInt of the same mathematical value
		// are still handled by the binary-op layer (ops package), not
		// here: this is raw identity/slot equality, one layer down.
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindSmallInt:
		return a.i == b.i
	case KindSingleton:
		return a.s == b.s
	case KindHeap:
		t := TypeOf(a)
		if t != nil && t.Equality != nil {
			return t.Equality(a, b)
		}
		return a.obj == b.obj
	default:
		return false
	}
}
