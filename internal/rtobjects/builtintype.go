package rtobjects

import "pyrtcore/internal/rtvalue"

// BuiltinTypeObj is the Value wrapper the builtins bootstrap installs for
// the concrete types int, bool, list, dict, set and tuple (and for type
// itself) so user code can reference them by name, call them as constructors,
// and pass them to isinstance/issubclass. It deliberately carries its own
// meta type rather than reusing ClassObj's TypeType: a builtin type has no
// class body/namespace to build from, and unifying the two object shapes
// behind one metaclass would make TypeType.CallN guess which layout it is
// looking at.
type BuiltinTypeObj struct {
	rtvalue.Object
	Name     string
	Described *rtvalue.TypeDescriptor
}

// BuiltinTypeMeta is the type of every built-in type value.
var BuiltinTypeMeta = &rtvalue.TypeDescriptor{Name: "type"}

func init() {
	BuiltinTypeMeta.Print = func(v rtvalue.Value) string {
		return "<class '" + builtinTypeOf(v).Name + "'>"
	}
	BuiltinTypeMeta.CallN = func(self rtvalue.Value, args []rtvalue.Value) rtvalue.Value {
		bt := builtinTypeOf(self)
		if bt.Described.MakeNew == nil {
			return rtvalue.None
		}
		return bt.Described.MakeNew(args)
	}
}

func builtinTypeOf(v rtvalue.Value) *BuiltinTypeObj { return (*BuiltinTypeObj)(objPtr(v)) }

// NewBuiltinType boxes a type descriptor as a callable, named type value.
func NewBuiltinType(name string, described *rtvalue.TypeDescriptor) rtvalue.Value {
	obj := &BuiltinTypeObj{Object: rtvalue.Object{Type: BuiltinTypeMeta}, Name: name, Described: described}
	return rtvalue.Heap(&obj.Object)
}

// BuiltinTypeDescribed returns the type descriptor a builtin type value
// wraps, for isinstance/issubclass.
func BuiltinTypeDescribed(v rtvalue.Value) (*rtvalue.TypeDescriptor, bool) {
	if rtvalue.TypeOf(v) != BuiltinTypeMeta {
		return nil, false
	}
	return builtinTypeOf(v).Described, true
}

// ClassInstanceType returns the instance type a user-defined class value
// constructs, for isinstance/issubclass over __build_class__ classes.
func ClassInstanceType(v rtvalue.Value) (*rtvalue.TypeDescriptor, bool) {
	if rtvalue.TypeOf(v) != TypeType {
		return nil, false
	}
	return classOf(v).InstanceType, true
}

// ClassBases returns a user-defined class's declared bases, for
// issubclass's recursive walk.
func ClassBases(v rtvalue.Value) ([]rtvalue.Value, bool) {
	if rtvalue.TypeOf(v) != TypeType {
		return nil, false
	}
	return classOf(v).Bases, true
}
