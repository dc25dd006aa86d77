package codereg

import (
	"unsafe"

	"pyrtcore/internal/rtexc"
	"pyrtcore/internal/rtobjects"
	"pyrtcore/internal/rtvalue"
)

// FunctionObj wraps a registered code descriptor as a callable heap value.
// A plain function and a closure over it are the same shape here (Cells
// is simply empty for a plain function), collapsing what is often a
// separate function/closure object pair into one type the way a Go
// closure already unifies the two at the language level.
type FunctionObj struct {
	rtvalue.Object
	Desc  *Descriptor
	Name  string
	Cells []*rtobjects.Cell
}

func ptrOf(v rtvalue.Value) unsafe.Pointer { return unsafe.Pointer(rtvalue.AsHeapObj(v)) }

func functionOf(v rtvalue.Value) *FunctionObj { return (*FunctionObj)(ptrOf(v)) }

// FunctionType is the type of every non-generator function/closure value.
var FunctionType = &rtvalue.TypeDescriptor{Name: "function"}

// GeneratorFactoryType is the type of a generator function's callable
// wrapper: calling it does not run the body, it produces a fresh generator
// object bound to the call's arguments.
var GeneratorFactoryType = &rtvalue.TypeDescriptor{Name: "function"}

func init() {
	FunctionType.Print = func(v rtvalue.Value) string { return "<function " + functionOf(v).Name + ">" }
	FunctionType.CallN = func(self rtvalue.Value, args []rtvalue.Value) rtvalue.Value {
		fn := functionOf(self)
		return invoke(fn.Desc, fn.Cells, args)
	}
	FunctionType.CallNKw = func(self rtvalue.Value, args []rtvalue.Value, kwargs []rtvalue.KwArg) rtvalue.Value {
		fn := functionOf(self)
		return invokeKw(fn.Desc, fn.Cells, args, kwargs)
	}

	GeneratorFactoryType.Print = func(v rtvalue.Value) string { return "<function " + functionOf(v).Name + ">" }
	GeneratorFactoryType.CallN = func(self rtvalue.Value, args []rtvalue.Value) rtvalue.Value {
		fn := functionOf(self)
		return newGeneratorFor(fn.Desc, fn.Cells, args)
	}
}

func invoke(desc *Descriptor, cells []*rtobjects.Cell, args []rtvalue.Value) rtvalue.Value {
	switch desc.Kind {
	case Bytecode:
		if desc.bytecodeCall == nil {
			panic("codereg: bytecode executor not installed")
		}
		return desc.bytecodeCall(desc, cells, args, nil)
	case Native, InlineAsm:
		return desc.NativeFn(args)
	default:
		panic("codereg: unknown code kind")
	}
}

func invokeKw(desc *Descriptor, cells []*rtobjects.Cell, args []rtvalue.Value, kwargs []rtvalue.KwArg) rtvalue.Value {
	switch desc.Kind {
	case Bytecode:
		if desc.bytecodeCall == nil {
			panic("codereg: bytecode executor not installed")
		}
		return desc.bytecodeCall(desc, cells, args, kwargs)
	case Native, InlineAsm:
		// Native/inline-asm thunks in this core take positional args
		// only; keyword arguments for them are a front-end concern that
		// never materializes without a compiler.
		if len(kwargs) > 0 {
			rtexc.RaiseTypeError("'" + desc.name() + "' object does not accept keyword arguments")
		}
		return desc.NativeFn(args)
	default:
		panic("codereg: unknown code kind")
	}
}

func (d *Descriptor) name() string {
	switch d.Kind {
	case Native:
		return "native function"
	case InlineAsm:
		return "inline-asm function"
	default:
		return "function"
	}
}

func newFunctionObj(desc *Descriptor, name string, cells []*rtobjects.Cell) *FunctionObj {
	t := FunctionType
	if desc.IsGenerator {
		t = GeneratorFactoryType
	}
	return &FunctionObj{Object: rtvalue.Object{Type: t}, Desc: desc, Name: name, Cells: cells}
}

// MakeFunctionFromID builds a function value wrapping the registered code
// descriptor. If the descriptor is marked is_generator, the resulting
// value is a generator factory: calling it returns a generator object
// instead of running the body.
func (r *Registry) MakeFunctionFromID(id int, name string) rtvalue.Value {
	desc := r.Get(id)
	if desc == nil {
		panic("codereg: make_function_from_id on unassigned code id")
	}
	if desc.Kind == Bytecode {
		desc.bytecodeCall = r.bytecodeThunk
	}
	fn := newFunctionObj(desc, name, nil)
	return rtvalue.Heap(&fn.Object)
}

// MakeClosureFromID builds a closure over the registered code and
// captured cells.
func (r *Registry) MakeClosureFromID(id int, name string, cells []*rtobjects.Cell) rtvalue.Value {
	desc := r.Get(id)
	if desc == nil {
		panic("codereg: make_closure_from_id on unassigned code id")
	}
	if desc.Kind == Bytecode {
		desc.bytecodeCall = r.bytecodeThunk
	}
	fn := newFunctionObj(desc, name, cells)
	return rtvalue.Heap(&fn.Object)
}

func (r *Registry) bytecodeThunk(desc *Descriptor, cells []*rtobjects.Cell, args []rtvalue.Value, kwargs []rtvalue.KwArg) rtvalue.Value {
	if r.BytecodeExecutor == nil {
		panic("codereg: bytecode executor not installed")
	}
	return r.BytecodeExecutor(desc, args)
}

// newGeneratorFor runs the generator body through rtobjects.NewGenerator,
// the goroutine+channel stand-in for the runtime's sole suspension
// surface. Bytecode-kind generator bodies must be driven by the host VM
// itself (suspension mid-bytecode is a VM concern), so only
// native/inline-asm bodies are supported directly here.
func newGeneratorFor(desc *Descriptor, cells []*rtobjects.Cell, args []rtvalue.Value) rtvalue.Value {
	if desc.Kind == Bytecode {
		panic("codereg: bytecode generator suspension must be driven by the host VM, not this factory")
	}
	return rtobjects.NewGenerator(func(yield func(rtvalue.Value) bool) {
		call := append([]rtvalue.Value{rtobjects.NewYieldFunc(yield)}, args...)
		desc.NativeFn(call)
	})
}
