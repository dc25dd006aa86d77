package importproto

import (
	"testing"

	"pyrtcore/internal/builtins"
	"pyrtcore/internal/env"
	"pyrtcore/internal/nsmap"
	"pyrtcore/internal/rtexc"
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
	e.Builtins = builtins.Bootstrap(e)
	return e
}

func TestImportNameWithDefaultHookRaisesImportError(t *testing.T) {
	e := newEnv()
	exc, caught := catch(func() { ImportName(e, "nonexistent_module", rtvalue.None, 0) })
	if !caught {
		t.Fatal("importing an unresolvable module should raise")
	}
	if rtvalue.TypeOf(exc).Name != "ImportError" {
		t.Errorf("raised %s, want ImportError", rtvalue.TypeOf(exc).Name)
	}
}

func TestImportNameRejectsNonzeroLevel(t *testing.T) {
	e := newEnv()
	exc, caught := catch(func() { ImportName(e, "pkg", rtvalue.None, 1) })
	if !caught {
		t.Fatal("import_name with level != 0 should raise")
	}
	if rtvalue.TypeOf(exc).Name != "ValueError" {
		t.Errorf("raised %s, want ValueError", rtvalue.TypeOf(exc).Name)
	}
}

// modStandin builds a class value to stand in for a module: import_from
// reads names straight off the class's own namespace the same way
// load_attr reads a class's ClassDict.
func modStandin(entries map[string]rtvalue.Value) rtvalue.Value {
	fields := nsmap.New()
	for k, v := range entries {
		fields.Set(k, v)
	}
	return rtobjects.NewClass("mod", fields, nil)
}

func TestImportFromTranslatesAttributeErrorToImportError(t *testing.T) {
	module := modStandin(nil)
	exc, caught := catch(func() { ImportFrom(module, "missing") })
	if !caught {
		t.Fatal("import_from of a missing name should raise")
	}
	if rtvalue.TypeOf(exc).Name != "ImportError" {
		t.Errorf("raised %s, want ImportError (translated from AttributeError)", rtvalue.TypeOf(exc).Name)
	}
}

func TestImportFromSucceedsOnPresentAttribute(t *testing.T) {
	module := modStandin(map[string]rtvalue.Value{"value": rtvalue.Int(42)})
	if got := ImportFrom(module, "value"); got != rtvalue.Int(42) {
		t.Errorf("ImportFrom(module, value) = %v, want 42", got)
	}
}

func TestImportFromTranslatesAcrossAnyBaseType(t *testing.T) {
	// import_from's translation is not special-cased to class/module
	// values: any base whose load_attr miss raises AttributeError gets
	// the same conversion.
	exc, caught := catch(func() { ImportFrom(rtvalue.Int(1), "x") })
	if !caught {
		t.Fatal("import_from of a missing attribute on an int should raise")
	}
	if rtvalue.TypeOf(exc).Name != "ImportError" {
		t.Errorf("raised %s, want ImportError", rtvalue.TypeOf(exc).Name)
	}
	if rtexc.IsAttributeError(exc) {
		t.Error("the raised exception should be ImportError, not the original AttributeError")
	}
}
