package builtins

import (
	"fmt"
	"math/big"
	"strings"

	"pyrtcore/internal/iterproto"
	"pyrtcore/internal/nsmap"
	"pyrtcore/internal/ops"
	"pyrtcore/internal/rtexc"
	"pyrtcore/internal/rtobjects"
	"pyrtcore/internal/rtvalue"
)

// materialize drains an iterable into a slice, the shared helper behind
// list(), tuple(), and every builtin that needs every element up front.
func materialize(v rtvalue.Value) []rtvalue.Value {
	it := iterproto.GetIter(v)
	var out []rtvalue.Value
	for {
		val := iterproto.IterNext(it)
		if rtvalue.IsStopIterMarker(val) {
			return out
		}
		out = append(out, val)
	}
}

func registerFunctions(b *nsmap.Table) {
	reg := func(name string, fn func(args []rtvalue.Value) rtvalue.Value) {
		b.Set(name, rtobjects.NewNativeFunc(name, fn))
	}

	reg("abs", builtinAbs)
	reg("all", builtinAll)
	reg("any", builtinAny)
	reg("callable", builtinCallable)
	reg("chr", builtinChr)
	reg("divmod", builtinDivmod)
	reg("hash", builtinHash)
	reg("isinstance", builtinIsinstance)
	reg("issubclass", builtinIssubclass)
	reg("iter", builtinIter)
	reg("len", builtinLen)
	reg("max", builtinMax)
	reg("min", builtinMin)
	reg("next", builtinNext)
	reg("ord", builtinOrd)
	reg("pow", builtinPow)
	reg("print", builtinPrint)
	reg("range", builtinRange)
	reg("sum", builtinSum)
}

func builtinAbs(args []rtvalue.Value) rtvalue.Value {
	requireArgs("abs", args, 1)
	v := args[0]
	if !rtobjects.IsInt(v) {
		rtexc.RaiseTypeError("bad operand type for abs(): '" + typeName(v) + "'")
	}
	n := rtobjects.AsBig(v)
	if n.Sign() >= 0 {
		return v
	}
	return rtobjects.NormalizeInt(new(big.Int).Neg(n))
}

func builtinAll(args []rtvalue.Value) rtvalue.Value {
	requireArgs("all", args, 1)
	for _, v := range materialize(args[0]) {
		if !ops.Truthy(v) {
			return rtvalue.False
		}
	}
	return rtvalue.True
}

func builtinAny(args []rtvalue.Value) rtvalue.Value {
	requireArgs("any", args, 1)
	for _, v := range materialize(args[0]) {
		if ops.Truthy(v) {
			return rtvalue.True
		}
	}
	return rtvalue.False
}

func builtinCallable(args []rtvalue.Value) rtvalue.Value {
	requireArgs("callable", args, 1)
	t := rtvalue.TypeOf(args[0])
	return rtvalue.Bool(t != nil && (t.CallN != nil || t.CallNKw != nil))
}

func builtinChr(args []rtvalue.Value) rtvalue.Value {
	requireArgs("chr", args, 1)
	if !rtvalue.IsSmallInt(args[0]) {
		rtexc.RaiseTypeError("an integer is required")
	}
	n := rtvalue.AsSmallInt(args[0])
	if n < 0 || n > 0x10FFFF {
		rtexc.RaiseValueError("chr() arg not in range(0x110000)")
	}
	return rtobjects.NewString(string(rune(n)))
}

func builtinDivmod(args []rtvalue.Value) rtvalue.Value {
	requireArgs("divmod", args, 2)
	a, b := args[0], args[1]
	if !rtobjects.IsInt(a) || !rtobjects.IsInt(b) {
		rtexc.RaiseTypeError("unsupported operand type(s) for divmod()")
	}
	q := ops.BinaryOp(rtvalue.FloorDiv, a, b)
	m := ops.BinaryOp(rtvalue.Mod, a, b)
	return rtobjects.NewTuple([]rtvalue.Value{q, m})
}

func builtinHash(args []rtvalue.Value) rtvalue.Value {
	requireArgs("hash", args, 1)
	t := rtvalue.TypeOf(args[0])
	if t == nil || t.Hash == nil {
		rtexc.RaiseTypeError("unhashable type: '" + typeName(args[0]) + "'")
	}
	// Full-width hash truncated to the small-int range by masking off the
	// sign bit.
	h := t.Hash(args[0]) & 0x7fffffffffffffff
	return rtvalue.Int(int64(h))
}

func classTargets(v rtvalue.Value) []*rtvalue.TypeDescriptor {
	if items, ok := rtobjects.Elements(v); ok {
		var out []*rtvalue.TypeDescriptor
		for _, it := range items {
			out = append(out, classTargets(it)...)
		}
		return out
	}
	if t, ok := resolveClassType(v); ok {
		return []*rtvalue.TypeDescriptor{t}
	}
	return nil
}

func resolveClassType(v rtvalue.Value) (*rtvalue.TypeDescriptor, bool) {
	if t, ok := rtobjects.BuiltinTypeDescribed(v); ok {
		return t, true
	}
	if t, ok := rtobjects.ExceptionClassInstanceType(v); ok {
		return t, true
	}
	if t, ok := rtobjects.ClassInstanceType(v); ok {
		return t, true
	}
	return nil, false
}

func builtinIsinstance(args []rtvalue.Value) rtvalue.Value {
	requireArgs("isinstance", args, 2)
	targets := classTargets(args[1])
	ot := rtvalue.TypeOf(args[0])
	for _, t := range targets {
		if ot == t {
			return rtvalue.True
		}
	}
	return rtvalue.False
}

func builtinIssubclass(args []rtvalue.Value) rtvalue.Value {
	requireArgs("issubclass", args, 2)
	targets := classTargets(args[1])
	return rtvalue.Bool(subclassMatches(args[0], targets))
}

func subclassMatches(cls rtvalue.Value, targets []*rtvalue.TypeDescriptor) bool {
	t, ok := resolveClassType(cls)
	if !ok {
		rtexc.RaiseTypeError("issubclass() arg 1 must be a class")
	}
	for _, target := range targets {
		if t == target {
			return true
		}
	}
	if bases, ok := rtobjects.ClassBases(cls); ok {
		for _, base := range bases {
			if subclassMatches(base, targets) {
				return true
			}
		}
	}
	return false
}

func builtinIter(args []rtvalue.Value) rtvalue.Value {
	requireArgs("iter", args, 1)
	return iterproto.GetIter(args[0])
}

func builtinLen(args []rtvalue.Value) rtvalue.Value {
	requireArgs("len", args, 1)
	v := args[0]
	switch rtvalue.TypeOf(v) {
	case rtobjects.ListType:
		return rtvalue.Int(int64(len(rtobjects.ListOf(v).Elements)))
	case rtobjects.TupleType:
		return rtvalue.Int(int64(len(rtobjects.TupleOf(v).Elements)))
	case rtobjects.DictType:
		return rtvalue.Int(int64(rtobjects.DictOf(v).Table.Len()))
	case rtobjects.SetType:
		return rtvalue.Int(int64(rtobjects.SetOf(v).Table.Len()))
	case rtobjects.StringType:
		return rtvalue.Int(int64(len([]rune(rtobjects.AsString(v)))))
	default:
		rtexc.RaiseTypeError("object of type '" + typeName(v) + "' has no len()")
		panic("unreachable")
	}
}

// builtinMaxMin implements max/min: a single iterable arg uses
// the stop-iteration marker to detect an empty sequence, multi-arg form
// uses strict comparisons with ties going to the earlier argument.
func builtinMaxMin(name string, args []rtvalue.Value, cmp rtvalue.BinaryOp) rtvalue.Value {
	if len(args) == 0 {
		rtexc.RaiseTypeError(name + " expected at least 1 argument, got 0")
	}
	var candidates []rtvalue.Value
	if len(args) == 1 {
		candidates = materialize(args[0])
		if len(candidates) == 0 {
			rtexc.RaiseValueError(name + "() arg is an empty sequence")
		}
	} else {
		candidates = args
	}
	best := candidates[0]
	for _, v := range candidates[1:] {
		if ops.BinaryOp(cmp, v, best) == rtvalue.True {
			best = v
		}
	}
	return best
}

func builtinMax(args []rtvalue.Value) rtvalue.Value { return builtinMaxMin("max", args, rtvalue.Gt) }
func builtinMin(args []rtvalue.Value) rtvalue.Value { return builtinMaxMin("min", args, rtvalue.Lt) }

func builtinNext(args []rtvalue.Value) rtvalue.Value {
	requireArgs("next", args, 1)
	v := iterproto.IterNext(args[0])
	if rtvalue.IsStopIterMarker(v) {
		if len(args) > 1 {
			return args[1]
		}
		rtexc.RaiseStopIteration("")
	}
	return v
}

func builtinOrd(args []rtvalue.Value) rtvalue.Value {
	requireArgs("ord", args, 1)
	if rtvalue.TypeOf(args[0]) != rtobjects.StringType {
		rtexc.RaiseTypeError("ord() expected string of length 1")
	}
	runes := []rune(rtobjects.AsString(args[0]))
	if len(runes) != 1 {
		rtexc.RaiseTypeError(fmt.Sprintf("ord() expected a character, but string of length %d found", len(runes)))
	}
	return rtvalue.Int(int64(runes[0]))
}

func builtinPow(args []rtvalue.Value) rtvalue.Value {
	requireArgs("pow", args, 2)
	if len(args) == 2 {
		return ops.BinaryOp(rtvalue.Pow, args[0], args[1])
	}
	a, b, m := args[0], args[1], args[2]
	if !rtobjects.IsInt(a) || !rtobjects.IsInt(b) || !rtobjects.IsInt(m) {
		rtexc.RaiseTypeError("pow() 3rd argument not allowed unless all arguments are integers")
	}
	if rtobjects.AsBig(b).Sign() < 0 {
		rtexc.RaiseValueError("pow() 2nd argument cannot be negative when 3rd argument specified")
	}
	result := new(big.Int).Exp(rtobjects.AsBig(a), rtobjects.AsBig(b), rtobjects.AsBig(m))
	return rtobjects.NormalizeInt(result)
}

// builtinPrint implements print: strings print raw (no
// quoting), everything else goes through the type's print slot,
// space-separated, trailing newline.
func builtinPrint(args []rtvalue.Value) rtvalue.Value {
	parts := make([]string, len(args))
	for i, v := range args {
		if rtvalue.TypeOf(v) == rtobjects.StringType {
			parts[i] = rtobjects.AsString(v)
			continue
		}
		t := rtvalue.TypeOf(v)
		if t != nil && t.Print != nil {
			parts[i] = t.Print(v)
			continue
		}
		parts[i] = "<object>"
	}
	fmt.Println(strings.Join(parts, " "))
	return rtvalue.None
}

func builtinRange(args []rtvalue.Value) rtvalue.Value {
	requireArgs("range", args, 1)
	for _, a := range args {
		if !rtvalue.IsSmallInt(a) {
			rtexc.RaiseTypeError("'" + typeName(a) + "' object cannot be interpreted as an integer")
		}
	}
	var start, stop, step int64
	switch len(args) {
	case 1:
		start, stop, step = 0, rtvalue.AsSmallInt(args[0]), 1
	case 2:
		start, stop, step = rtvalue.AsSmallInt(args[0]), rtvalue.AsSmallInt(args[1]), 1
	default:
		start, stop, step = rtvalue.AsSmallInt(args[0]), rtvalue.AsSmallInt(args[1]), rtvalue.AsSmallInt(args[2])
	}
	if step == 0 {
		rtexc.RaiseValueError("range() arg 3 must not be zero")
	}
	return rtobjects.NewRange(start, stop, step)
}

func builtinSum(args []rtvalue.Value) rtvalue.Value {
	requireArgs("sum", args, 1)
	start := rtvalue.Int(0)
	if len(args) > 1 {
		start = args[1]
	}
	acc := start
	for _, v := range materialize(args[0]) {
		acc = ops.BinaryOp(rtvalue.Add, acc, v)
	}
	return acc
}

func requireArgs(name string, args []rtvalue.Value, min int) {
	if len(args) < min {
		rtexc.RaiseTypeError(name + "() missing required argument")
	}
}

func typeName(v rtvalue.Value) string {
	t := rtvalue.TypeOf(v)
	if t == nil {
		return "?"
	}
	return t.Name
}
