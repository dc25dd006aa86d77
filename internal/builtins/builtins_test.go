package builtins

import (
	"testing"

	"pyrtcore/internal/env"
	"pyrtcore/internal/rtobjects"
	"pyrtcore/internal/rtvalue"
)

func catch(fn func()) (exc rtvalue.Value, caught bool) {
	defer func() {
		if r := recover(); r != nil {
			exc, caught = rtvalue.Recover(r)
		}
	}()
	fn()
	return rtvalue.Null, false
}

func newEnv() *env.Environment {
	e := env.New(nil)
	e.Builtins = Bootstrap(e)
	return e
}

func call(b *env.Environment, name string, args ...rtvalue.Value) rtvalue.Value {
	fn, ok := b.Builtins.Get(name)
	if !ok {
		panic("builtin not registered: " + name)
	}
	return rtvalue.TypeOf(fn).CallN(fn, args)
}

func TestBootstrapRegistersTypesExceptionsAndFunctions(t *testing.T) {
	e := newEnv()
	for _, name := range []string{"int", "bool", "list", "tuple", "dict", "set", "type",
		"ValueError", "TypeError", "StopIteration", "Ellipsis", "__build_class__", "len", "print", "range"} {
		if _, ok := e.Builtins.Get(name); !ok {
			t.Errorf("Bootstrap did not register %q", name)
		}
	}
}

func TestBuiltinAbs(t *testing.T) {
	e := newEnv()
	if got := call(e, "abs", rtvalue.Int(-5)); got != rtvalue.Int(5) {
		t.Errorf("abs(-5) = %v, want 5", got)
	}
	if got := call(e, "abs", rtvalue.Int(5)); got != rtvalue.Int(5) {
		t.Errorf("abs(5) = %v, want 5", got)
	}
}

func TestBuiltinAllAny(t *testing.T) {
	e := newEnv()
	ones := rtobjects.NewList([]rtvalue.Value{rtvalue.Int(1), rtvalue.Int(1)})
	if call(e, "all", ones) != rtvalue.True {
		t.Error("all([1,1]) should be True")
	}
	mixed := rtobjects.NewList([]rtvalue.Value{rtvalue.Int(1), rtvalue.Int(0)})
	if call(e, "all", mixed) != rtvalue.False {
		t.Error("all([1,0]) should be False")
	}
	if call(e, "any", mixed) != rtvalue.True {
		t.Error("any([1,0]) should be True")
	}
	zeros := rtobjects.NewList([]rtvalue.Value{rtvalue.Int(0), rtvalue.Int(0)})
	if call(e, "any", zeros) != rtvalue.False {
		t.Error("any([0,0]) should be False")
	}
}

func TestBuiltinLen(t *testing.T) {
	e := newEnv()
	l := rtobjects.NewList([]rtvalue.Value{rtvalue.Int(1), rtvalue.Int(2), rtvalue.Int(3)})
	if got := call(e, "len", l); got != rtvalue.Int(3) {
		t.Errorf("len([1,2,3]) = %v, want 3", got)
	}
}

func TestBuiltinLenOnUnsupportedTypeRaisesTypeError(t *testing.T) {
	e := newEnv()
	exc, caught := catch(func() { call(e, "len", rtvalue.Int(1)) })
	if !caught {
		t.Fatal("len(1) should raise")
	}
	if rtvalue.TypeOf(exc).Name != "TypeError" {
		t.Errorf("raised %s, want TypeError", rtvalue.TypeOf(exc).Name)
	}
}

func TestBuiltinMaxMin(t *testing.T) {
	e := newEnv()
	if got := call(e, "max", rtvalue.Int(1), rtvalue.Int(5), rtvalue.Int(3)); got != rtvalue.Int(5) {
		t.Errorf("max(1,5,3) = %v, want 5", got)
	}
	if got := call(e, "min", rtvalue.Int(1), rtvalue.Int(5), rtvalue.Int(3)); got != rtvalue.Int(1) {
		t.Errorf("min(1,5,3) = %v, want 1", got)
	}
	l := rtobjects.NewList([]rtvalue.Value{rtvalue.Int(4), rtvalue.Int(2)})
	if got := call(e, "max", l); got != rtvalue.Int(4) {
		t.Errorf("max([4,2]) = %v, want 4", got)
	}
}

func TestBuiltinMaxOnEmptySequenceRaisesValueError(t *testing.T) {
	e := newEnv()
	l := rtobjects.NewList(nil)
	exc, caught := catch(func() { call(e, "max", l) })
	if !caught {
		t.Fatal("max([]) should raise")
	}
	if rtvalue.TypeOf(exc).Name != "ValueError" {
		t.Errorf("raised %s, want ValueError", rtvalue.TypeOf(exc).Name)
	}
}

func TestBuiltinSum(t *testing.T) {
	e := newEnv()
	l := rtobjects.NewList([]rtvalue.Value{rtvalue.Int(1), rtvalue.Int(2), rtvalue.Int(3)})
	if got := call(e, "sum", l); got != rtvalue.Int(6) {
		t.Errorf("sum([1,2,3]) = %v, want 6", got)
	}
	if got := call(e, "sum", l, rtvalue.Int(10)); got != rtvalue.Int(16) {
		t.Errorf("sum([1,2,3], 10) = %v, want 16", got)
	}
}

func TestBuiltinRangeStepZeroRaisesValueError(t *testing.T) {
	e := newEnv()
	exc, caught := catch(func() { call(e, "range", rtvalue.Int(0), rtvalue.Int(10), rtvalue.Int(0)) })
	if !caught {
		t.Fatal("range(0, 10, 0) should raise")
	}
	if rtvalue.TypeOf(exc).Name != "ValueError" {
		t.Errorf("raised %s, want ValueError", rtvalue.TypeOf(exc).Name)
	}
}

func TestBuiltinDivmod(t *testing.T) {
	e := newEnv()
	got := call(e, "divmod", rtvalue.Int(-7), rtvalue.Int(2))
	tup := rtobjects.TupleOf(got)
	if tup.Elements[0] != rtvalue.Int(-4) || tup.Elements[1] != rtvalue.Int(1) {
		t.Errorf("divmod(-7, 2) = %v, want (-4, 1)", tup.Elements)
	}
}

func TestBuiltinChrOrdRoundTrip(t *testing.T) {
	e := newEnv()
	ch := call(e, "chr", rtvalue.Int(65))
	if rtobjects.AsString(ch) != "A" {
		t.Errorf("chr(65) = %q, want A", rtobjects.AsString(ch))
	}
	if got := call(e, "ord", ch); got != rtvalue.Int(65) {
		t.Errorf("ord('A') = %v, want 65", got)
	}
}

func TestBuiltinIsinstanceAndIssubclass(t *testing.T) {
	e := newEnv()
	intType, _ := e.Builtins.Get("int")
	if call(e, "isinstance", rtvalue.Int(1), intType) != rtvalue.True {
		t.Error("isinstance(1, int) should be True")
	}
	boolType, _ := e.Builtins.Get("bool")
	if call(e, "isinstance", rtvalue.Int(1), boolType) != rtvalue.False {
		t.Error("isinstance(1, bool) should be False")
	}
	if call(e, "issubclass", intType, intType) != rtvalue.True {
		t.Error("issubclass(int, int) should be True")
	}
}

func TestBuiltinCallable(t *testing.T) {
	e := newEnv()
	fn := rtobjects.NewNativeFunc("f", func(args []rtvalue.Value) rtvalue.Value { return rtvalue.None })
	if call(e, "callable", fn) != rtvalue.True {
		t.Error("callable(f) should be True")
	}
	if call(e, "callable", rtvalue.Int(1)) != rtvalue.False {
		t.Error("callable(1) should be False")
	}
}

func TestBuildClassConstructsClassAndRestoresLocals(t *testing.T) {
	e := newEnv()
	outerLocals := e.LocalsGet()
	body := rtobjects.NewNativeFunc("body", func(args []rtvalue.Value) rtvalue.Value {
		e.StoreName("value", rtvalue.Int(1))
		return rtvalue.None
	})
	buildClass, _ := e.Builtins.Get("__build_class__")
	cls := rtvalue.TypeOf(buildClass).CallN(buildClass, []rtvalue.Value{body, rtobjects.NewString("C")})

	if e.LocalsGet() != outerLocals {
		t.Error("__build_class__ should restore the caller's locals namespace")
	}
	instType, ok := rtobjects.ClassInstanceType(cls)
	if !ok {
		t.Fatal("__build_class__ should return a class value")
	}
	if _, ok := outerLocals.Get("value"); ok {
		t.Error("the class body's locals should not leak into the outer namespace")
	}
	_ = instType
}

func TestPrintAndReplPrintDoNotPanic(t *testing.T) {
	e := newEnv()
	call(e, "print", rtvalue.Int(1), rtobjects.NewString("x"))
	replPrint, _ := e.Builtins.Get("__repl_print__")
	rtvalue.TypeOf(replPrint).CallN(replPrint, []rtvalue.Value{rtvalue.None})
	rtvalue.TypeOf(replPrint).CallN(replPrint, []rtvalue.Value{rtvalue.Int(5)})
}
