package rtobjects

import (
	"pyrtcore/internal/nsmap"
	"pyrtcore/internal/rtvalue"
)

// ClassObj is a user-defined class produced by __build_class__. Its own
// Object.Type is always TypeType, the single-base metaclass fallback;
// proper multi-base MRO is deferred.
type ClassObj struct {
	rtvalue.Object
	Name string
	// ClassDict is the raw namespace the class body populated via
	// store_name before __build_class__ restored the caller's locals;
	// load_attr on the class object itself reads straight from it.
	ClassDict *nsmap.Table
	// InstanceType is the TypeDescriptor every instance of this class
	// carries as its Object.Type.
	InstanceType *rtvalue.TypeDescriptor
	Bases        []rtvalue.Value
}

// InstanceObj is an instance of a user-defined class; its fields live in
// their own namespace, independent of the class's shared ClassDict.
type InstanceObj struct {
	rtvalue.Object
	Class  *ClassObj
	Fields *nsmap.Table
}

// TypeType is the built-in `type`: both the default metaclass and the type
// of every class value.
var TypeType = &rtvalue.TypeDescriptor{Name: "type"}

func classOf(v rtvalue.Value) *ClassObj       { return (*ClassObj)(objPtr(v)) }
func instanceOf(v rtvalue.Value) *InstanceObj { return (*InstanceObj)(objPtr(v)) }

func init() {
	TypeType.Print = func(v rtvalue.Value) string { return "<class '" + classOf(v).Name + "'>" }
	TypeType.LoadAttr = func(base rtvalue.Value, attr string) (rtvalue.Value, bool) {
		return classOf(base).ClassDict.Get(attr)
	}
	TypeType.StoreAttr = func(base rtvalue.Value, attr string, v rtvalue.Value) bool {
		classOf(base).ClassDict.Set(attr, v)
		return true
	}
	// Calling a class constructs a fresh, empty-fielded instance of it;
	// __init__ invocation (if any) is the caller's responsibility via
	// load_method, same as every other bound-method call.
	TypeType.CallN = func(self rtvalue.Value, args []rtvalue.Value) rtvalue.Value {
		cls := classOf(self)
		obj := &InstanceObj{Object: rtvalue.Object{Type: cls.InstanceType}, Class: cls, Fields: nsmap.New()}
		return rtvalue.Heap(&obj.Object)
	}
}

// NewClass builds a class value from the namespace its body populated, its
// base classes, and its name. Every function-valued entry in classDict
// becomes an instance method entry in the instance type's method table,
// so load_method's linear scan can find it.
func NewClass(name string, classDict *nsmap.Table, bases []rtvalue.Value) rtvalue.Value {
	instType := &rtvalue.TypeDescriptor{Name: name}
	instType.LoadAttr = func(base rtvalue.Value, attr string) (rtvalue.Value, bool) {
		return instanceOf(base).Fields.Get(attr)
	}
	instType.StoreAttr = func(base rtvalue.Value, attr string, v rtvalue.Value) bool {
		instanceOf(base).Fields.Set(attr, v)
		return true
	}
	instType.Methods = methodsFromClassDict(classDict)

	cls := &ClassObj{
		Object:       rtvalue.Object{Type: TypeType},
		Name:         name,
		ClassDict:    classDict,
		InstanceType: instType,
		Bases:        bases,
	}
	return rtvalue.Heap(&cls.Object)
}

func methodsFromClassDict(classDict *nsmap.Table) []rtvalue.Method {
	var methods []rtvalue.Method
	classDict.Range(func(key string, v rtvalue.Value) bool {
		if isCallable(v) {
			methods = append(methods, rtvalue.Method{Name: key, Fn: v, Kind: rtvalue.MethodInstance})
		}
		return true
	})
	return methods
}

func isCallable(v rtvalue.Value) bool {
	t := rtvalue.TypeOf(v)
	return t != nil && (t.CallN != nil || t.CallNKw != nil)
}
