package codereg

import (
	"pyrtcore/internal/attrproto"
	"pyrtcore/internal/callproto"
	"pyrtcore/internal/env"
	"pyrtcore/internal/iterproto"
	"pyrtcore/internal/ops"
	"pyrtcore/internal/seqproto"
)

// FunSlot indexes the dense function-pointer table FunTable builds, in
// the fixed order a native or inline-asm code blob expects to find each
// operation at: this is the stable ABI such code links against instead
// of calling back into Go identifiers directly.
type FunSlot int

const (
	FunLoadConstDec FunSlot = iota
	FunLoadConstStr
	FunLoadName
	FunLoadGlobal
	FunLoadBuildClass
	FunLoadAttr
	FunLoadMethod
	FunStoreName
	FunStoreAttr
	FunStoreSubscr
	FunIsTrue
	FunUnaryOp
	FunBuildTuple
	FunBuildList
	FunListAppend
	FunBuildMap
	FunStoreMap
	FunBuildSet
	FunStoreSet
	FunMakeFunctionFromID
	FunCallFunctionN
	FunCallMethodN
	FunBinaryOp
	FunGetIter
	FunIterNext
	numFunSlots
)

// FunTable builds the dense operation table bound to e (name resolution)
// and r (function-from-id construction). FunLoadConstDec/FunLoadConstStr
// are left nil: both load an immediate out of a bytecode constant pool,
// and this core has no compiler or constant-pool object to back one.
func FunTable(e *env.Environment, r *Registry) [numFunSlots]interface{} {
	var t [numFunSlots]interface{}
	t[FunLoadName] = e.LoadName
	t[FunLoadGlobal] = e.LoadGlobal
	t[FunLoadBuildClass] = e.LoadBuildClass
	t[FunLoadAttr] = attrproto.LoadAttr
	t[FunLoadMethod] = attrproto.LoadMethod
	t[FunStoreName] = e.StoreName
	t[FunStoreAttr] = attrproto.StoreAttr
	t[FunStoreSubscr] = attrproto.StoreSubscr
	t[FunIsTrue] = ops.Truthy
	t[FunUnaryOp] = ops.UnaryOp
	t[FunBuildTuple] = seqproto.BuildTuple
	t[FunBuildList] = seqproto.BuildList
	t[FunListAppend] = seqproto.ListAppend
	t[FunBuildMap] = seqproto.BuildMap
	t[FunStoreMap] = seqproto.StoreMap
	t[FunBuildSet] = seqproto.BuildSet
	t[FunStoreSet] = seqproto.StoreSet
	t[FunMakeFunctionFromID] = r.MakeFunctionFromID
	t[FunCallFunctionN] = callproto.CallNReversed
	t[FunCallMethodN] = callproto.CallMethodN
	t[FunBinaryOp] = ops.BinaryOp
	t[FunGetIter] = iterproto.GetIter
	t[FunIterNext] = iterproto.IterNext
	return t
}
