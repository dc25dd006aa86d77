// Package rtexc defines the runtime's exception taxonomy and the
// raise/protect helpers every other package uses to signal and catch a
// non-local exit. The actual unwind mechanism (panic/recover) lives in
// rtvalue, right next to Value, so that dispatch slots implemented
// outside this package (rtobjects, ops, ...) can raise without importing
// rtexc and creating a cycle; this package just owns the well-known
// exception kinds and convenience constructors.
package rtexc

import (
	"pyrtcore/internal/rtobjects"
	"pyrtcore/internal/rtvalue"
)

// Kind-to-(class value, instance type) pairs for every built-in exception
// name. Class values are what gets installed into builtins; instance
// types are what internal raises construct directly.
var (
	AttributeErrorClass, attributeErrorType = rtobjects.NewExceptionKind("AttributeError")
	IndexErrorClass, indexErrorType         = rtobjects.NewExceptionKind("IndexError")
	KeyErrorClass, keyErrorType             = rtobjects.NewExceptionKind("KeyError")
	NameErrorClass, nameErrorType           = rtobjects.NewExceptionKind("NameError")
	TypeErrorClass, typeErrorType           = rtobjects.NewExceptionKind("TypeError")
	SyntaxErrorClass, syntaxErrorType       = rtobjects.NewExceptionKind("SyntaxError")
	ValueErrorClass, valueErrorType         = rtobjects.NewExceptionKind("ValueError")
	OSErrorClass, osErrorType               = rtobjects.NewExceptionKind("OSError")
	AssertionErrorClass, assertionErrorType = rtobjects.NewExceptionKind("AssertionError")
	StopIterationClass, stopIterationType   = rtobjects.NewExceptionKind("StopIteration")
	ImportErrorClass, importErrorType       = rtobjects.NewExceptionKind("ImportError")
)

// Classes lists every (name, class value) pair for the builtins bootstrap.
func Classes() map[string]rtvalue.Value {
	return map[string]rtvalue.Value{
		"AttributeError": AttributeErrorClass,
		"IndexError":     IndexErrorClass,
		"KeyError":       KeyErrorClass,
		"NameError":      NameErrorClass,
		"TypeError":      TypeErrorClass,
		"SyntaxError":    SyntaxErrorClass,
		"ValueError":     ValueErrorClass,
		"OSError":        OSErrorClass,
		"AssertionError": AssertionErrorClass,
		"StopIteration":  StopIterationClass,
		"ImportError":    ImportErrorClass,
	}
}

func NewAttributeError(msg string) rtvalue.Value { return rtobjects.NewException(attributeErrorType, msg) }
func NewIndexError(msg string) rtvalue.Value     { return rtobjects.NewException(indexErrorType, msg) }
func NewKeyError(msg string) rtvalue.Value       { return rtobjects.NewException(keyErrorType, msg) }
func NewNameError(msg string) rtvalue.Value      { return rtobjects.NewException(nameErrorType, msg) }
func NewTypeError(msg string) rtvalue.Value      { return rtobjects.NewException(typeErrorType, msg) }
func NewSyntaxError(msg string) rtvalue.Value    { return rtobjects.NewException(syntaxErrorType, msg) }
func NewValueError(msg string) rtvalue.Value     { return rtobjects.NewException(valueErrorType, msg) }
func NewOSError(msg string) rtvalue.Value        { return rtobjects.NewException(osErrorType, msg) }
func NewAssertionError(msg string) rtvalue.Value { return rtobjects.NewException(assertionErrorType, msg) }
func NewStopIteration(msg string) rtvalue.Value  { return rtobjects.NewException(stopIterationType, msg) }
func NewImportError(msg string) rtvalue.Value    { return rtobjects.NewException(importErrorType, msg) }

// IsStopIteration reports whether exc is a StopIteration instance.
func IsStopIteration(exc rtvalue.Value) bool {
	return rtobjects.IsExceptionInstance(exc, stopIterationType)
}

// IsAttributeError reports whether exc is an AttributeError instance, used
// by import_from's AttributeError-to-ImportError translation.
func IsAttributeError(exc rtvalue.Value) bool {
	return rtobjects.IsExceptionInstance(exc, attributeErrorType)
}

func RaiseAttributeError(msg string) { rtvalue.Raise(NewAttributeError(msg)) }
func RaiseIndexError(msg string)     { rtvalue.Raise(NewIndexError(msg)) }
func RaiseKeyError(msg string)       { rtvalue.Raise(NewKeyError(msg)) }
func RaiseNameError(msg string)      { rtvalue.Raise(NewNameError(msg)) }
func RaiseTypeError(msg string)      { rtvalue.Raise(NewTypeError(msg)) }
func RaiseValueError(msg string)     { rtvalue.Raise(NewValueError(msg)) }
func RaiseOSError(msg string)        { rtvalue.Raise(NewOSError(msg)) }
func RaiseAssertionError(msg string) { rtvalue.Raise(NewAssertionError(msg)) }
func RaiseStopIteration(msg string)  { rtvalue.Raise(NewStopIteration(msg)) }
func RaiseImportError(msg string)    { rtvalue.Raise(NewImportError(msg)) }

// Protect runs fn, converting a raised exception into (exc, true); restore
// always runs via defer before Protect returns, matching scoped-namespace-switch callers like
// __build_class__ that must restore locals on every exit path.
func Protect(fn func(), restore func()) (exc rtvalue.Value, caught bool) {
	return rtvalue.Protect(fn, restore)
}
