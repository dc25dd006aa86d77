package rtobjects

import "pyrtcore/internal/rtvalue"

// NativeFuncObj is a builtin/host function exposed as a Value: the shape
// every entry in the builtins namespace and every yield callback
// handed to a generator body takes. Grounded on vmregister.NativeFnObj.
type NativeFuncObj struct {
	rtvalue.Object
	Name string
	Fn   func(args []rtvalue.Value) rtvalue.Value
}

var NativeFuncType = &rtvalue.TypeDescriptor{Name: "builtin_function_or_method"}

func init() {
	NativeFuncType.Print = func(v rtvalue.Value) string {
		return "<built-in function " + nativeFuncOf(v).Name + ">"
	}
	NativeFuncType.CallN = func(self rtvalue.Value, args []rtvalue.Value) rtvalue.Value {
		return nativeFuncOf(self).Fn(args)
	}
}

func nativeFuncOf(v rtvalue.Value) *NativeFuncObj { return (*NativeFuncObj)(objPtr(v)) }

// NewNativeFunc boxes a Go function as a callable builtin value.
func NewNativeFunc(name string, fn func(args []rtvalue.Value) rtvalue.Value) rtvalue.Value {
	obj := &NativeFuncObj{Object: rtvalue.Object{Type: NativeFuncType}, Name: name, Fn: fn}
	return rtvalue.Heap(&obj.Object)
}

// NewYieldFunc boxes a generator's yield callback as a one-argument callable
// Value (true while the generator should keep producing, false once the
// consumer has stopped asking for more).
func NewYieldFunc(yield func(rtvalue.Value) bool) rtvalue.Value {
	return NewNativeFunc("<yield>", func(args []rtvalue.Value) rtvalue.Value {
		var v rtvalue.Value = rtvalue.None
		if len(args) > 0 {
			v = args[0]
		}
		return rtvalue.Bool(yield(v))
	})
}
