package rtobjects

import "pyrtcore/internal/rtvalue"

// ExceptionObj is an instance of a built-in exception kind: a kind tag (via
// its Object.Type) and a formatted message, both first-class values the
// runtime can raise and inspect.
type ExceptionObj struct {
	rtvalue.Object
	Message string
}

// ExceptionClassObj is the callable "exception factory" the builtins
// bootstrap populates builtins with: calling it constructs a new
// ExceptionObj of its InstanceType.
type ExceptionClassObj struct {
	rtvalue.Object
	Name         string
	InstanceType *rtvalue.TypeDescriptor
}

// ExceptionClassMeta is the shared type of every exception class value; its
// CallN slot is what makes `TypeError("msg")` work.
var ExceptionClassMeta = &rtvalue.TypeDescriptor{Name: "type"}

func init() {
	ExceptionClassMeta.CallN = func(self rtvalue.Value, args []rtvalue.Value) rtvalue.Value {
		cls := exceptionClassOf(self)
		msg := ""
		if len(args) > 0 && rtvalue.TypeOf(args[0]) == StringType {
			msg = AsString(args[0])
		}
		return NewException(cls.InstanceType, msg)
	}
	ExceptionClassMeta.Print = func(v rtvalue.Value) string {
		return "<class '" + exceptionClassOf(v).Name + "'>"
	}
}

func exceptionClassOf(v rtvalue.Value) *ExceptionClassObj { return (*ExceptionClassObj)(objPtr(v)) }

// NewExceptionKind registers a new built-in exception kind, returning both
// its callable class value (for the builtins namespace) and the instance
// type descriptor (for raising it internally without going through a call).
func NewExceptionKind(name string) (classValue rtvalue.Value, instanceType *rtvalue.TypeDescriptor) {
	instanceType = &rtvalue.TypeDescriptor{Name: name}
	instanceType.Print = func(v rtvalue.Value) string { return name + ": " + ExceptionMessage(v) }
	classObj := &ExceptionClassObj{
		Object: rtvalue.Object{Type: ExceptionClassMeta},
		Name:   name,
	}
	classObj.InstanceType = instanceType
	classValue = rtvalue.Heap(&classObj.Object)
	return classValue, instanceType
}

// NewException constructs an exception instance directly, for internal
// raises that don't go through the call protocol (e.g. the operator dispatch
// layer raising TypeError itself).
func NewException(instanceType *rtvalue.TypeDescriptor, msg string) rtvalue.Value {
	obj := &ExceptionObj{Object: rtvalue.Object{Type: instanceType}, Message: msg}
	return rtvalue.Heap(&obj.Object)
}

// ExceptionMessage extracts the message from an exception instance.
func ExceptionMessage(v rtvalue.Value) string {
	return (*ExceptionObj)(objPtr(v)).Message
}

// IsExceptionInstance reports whether v is an instance of the exception
// kind described by instanceType.
func IsExceptionInstance(v rtvalue.Value, instanceType *rtvalue.TypeDescriptor) bool {
	return rtvalue.TypeOf(v) == instanceType
}

// ExceptionClassInstanceType returns the instance type an exception class
// value constructs, for exception_match's right-hand operand.
func ExceptionClassInstanceType(v rtvalue.Value) (*rtvalue.TypeDescriptor, bool) {
	if rtvalue.TypeOf(v) != ExceptionClassMeta {
		return nil, false
	}
	return exceptionClassOf(v).InstanceType, true
}
