// Package callproto implements the call protocol: the four
// call entry points the bytecode VM uses, all dispatching through a
// callee's type slots, preserving a reverse-order argument-array contract
// as a stable ABI with the VM.
//
// A bytecode VM typically pops a fixed-arity argument window off its
// value stack for a call instruction; this package takes the same
// reverse-ordered window as a slice instead of popping a stack.
package callproto

import (
	"pyrtcore/internal/rtexc"
	"pyrtcore/internal/rtvalue"
)

// Call0 calls f with no arguments.
func Call0(f rtvalue.Value) rtvalue.Value { return CallN(f, nil) }

// Call1 calls f with one argument.
func Call1(f, a rtvalue.Value) rtvalue.Value { return CallN(f, []rtvalue.Value{a}) }

// Call2 calls f with two arguments, in source order.
func Call2(f, a, b rtvalue.Value) rtvalue.Value { return CallN(f, []rtvalue.Value{a, b}) }

// CallN calls f with args in source order (callers that already hold a
// reverse-ordered VM argument window must reverse it before calling this;
// CallNReversed below is the direct VM-facing entry point).
func CallN(f rtvalue.Value, args []rtvalue.Value) rtvalue.Value {
	if rtvalue.IsSmallInt(f) {
		rtexc.RaiseTypeError("'int' object is not callable")
	}
	t := rtvalue.TypeOf(f)
	if t == nil || t.CallN == nil {
		rtexc.RaiseTypeError("'" + typeName(f) + "' object is not callable")
	}
	return t.CallN(f, args)
}

// CallNReversed is call_n(f, n, args*): args is in reverse order (last
// source argument first).
func CallNReversed(f rtvalue.Value, reversed []rtvalue.Value) rtvalue.Value {
	return CallN(f, reverseValues(reversed))
}

// CallNKw is call_n_kw(f, n_args, n_kw, args*): reversed positional args
// followed by reversed (value, key) keyword pairs, the VM-facing ABI
// layout for keyword calls.
func CallNKw(f rtvalue.Value, reversedArgs []rtvalue.Value, reversedKwPairs []rtvalue.Value) rtvalue.Value {
	args := reverseValues(reversedArgs)
	kwargs := make([]rtvalue.KwArg, 0, len(reversedKwPairs)/2)
	// reversedKwPairs is [kw_val(n-1), kw_key(n-1), ..., kw_val(0), kw_key(0)];
	// walk it front to back, each (value, key) pair already newest first,
	// and emit kwargs oldest-first to match a natural-order kwargs slice.
	pairs := make([]rtvalue.KwArg, 0, len(reversedKwPairs)/2)
	for i := 0; i+1 < len(reversedKwPairs); i += 2 {
		val, key := reversedKwPairs[i], reversedKwPairs[i+1]
		pairs = append(pairs, rtvalue.KwArg{Name: asKeyName(key), Value: val})
	}
	for i := len(pairs) - 1; i >= 0; i-- {
		kwargs = append(kwargs, pairs[i])
	}

	if rtvalue.IsSmallInt(f) {
		rtexc.RaiseTypeError("'int' object is not callable")
	}
	t := rtvalue.TypeOf(f)
	if t == nil || (t.CallNKw == nil && t.CallN == nil) {
		rtexc.RaiseTypeError("'" + typeName(f) + "' object is not callable")
	}
	if t.CallNKw != nil {
		return t.CallNKw(f, args, kwargs)
	}
	if len(kwargs) > 0 {
		rtexc.RaiseTypeError("'" + typeName(f) + "' object does not accept keyword arguments")
	}
	return t.CallN(f, args)
}

// CallMethodN is call_method_n(n, args*): args = [arg(n-1), ..., arg(0),
// self_or_null, fun]. self_or_null is rtvalue.Null when the loaded value
// was a plain attribute, not a bound method, matching load_method's
// output convention.
func CallMethodN(reversedArgsSelfFun []rtvalue.Value) rtvalue.Value {
	n := len(reversedArgsSelfFun) - 2
	fun := reversedArgsSelfFun[n+1]
	self := reversedArgsSelfFun[n]
	reversedArgs := reversedArgsSelfFun[:n]
	args := reverseValues(reversedArgs)
	if !rtvalue.IsNull(self) {
		args = append([]rtvalue.Value{self}, args...)
	}
	return CallN(fun, args)
}

// CallMethodNKw is the keyword-accepting analogue of CallMethodN:
// reversedArgsSelfFun is [kw pairs..., arg(n-1), ..., arg(0), self_or_null, fun]
// with nKw keyword pairs (2*nKw entries) at the front.
func CallMethodNKw(reversedArgsSelfFun []rtvalue.Value, nKw int) rtvalue.Value {
	kwPairs := reversedArgsSelfFun[:2*nKw]
	rest := reversedArgsSelfFun[2*nKw:]
	n := len(rest) - 2
	fun := rest[n+1]
	self := rest[n]
	reversedArgs := rest[:n]
	args := reverseValues(reversedArgs)
	if !rtvalue.IsNull(self) {
		args = append([]rtvalue.Value{self}, args...)
	}
	return CallNKw(fun, reverseValues(args), kwPairs)
}

func reverseValues(in []rtvalue.Value) []rtvalue.Value {
	out := make([]rtvalue.Value, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

func asKeyName(key rtvalue.Value) string {
	t := rtvalue.TypeOf(key)
	if t != nil && t.Print != nil {
		return t.Print(key)
	}
	return ""
}

func typeName(v rtvalue.Value) string {
	t := rtvalue.TypeOf(v)
	if t == nil {
		return "?"
	}
	return t.Name
}
