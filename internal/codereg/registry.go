// Package codereg implements the code-object registry and function
// factory: a dense, grow-on-demand vector of code descriptors keyed by a
// monotonically allocated dense integer ID, and the factory that turns a
// registered ID into a callable rtvalue.Value.
//
// The registry itself only *binds* compiled units to callables; it never
// executes bytecode. Executing a bytecode-kind function is the external
// bytecode VM's job, so a bytecode FunctionObj's CallN slot forwards to a
// single pluggable BytecodeExecutor hook the host VM installs once at
// startup. Native and inline-asm code carry their own Go function
// pointer and need no such hook.
package codereg

import (
	"fmt"

	"pyrtcore/internal/rtobjects"
	"pyrtcore/internal/rtvalue"
)

// Kind discriminates how a code descriptor's payload is executed.
type Kind uint8

const (
	Bytecode Kind = iota
	Native
	InlineAsm
)

// Descriptor is the per-code-unit record a registered code object names.
type Descriptor struct {
	ID          int
	Kind        Kind
	NArgs       int
	NLocals     int
	NStack      int
	IsGenerator bool

	// Bytecode payload.
	Code []byte

	// Native/inline-asm payload: a Go function pointer standing in for
	// the native/asm thunk a JIT compiler would install.
	NativeFn func(args []rtvalue.Value) rtvalue.Value
	Len      int

	// bytecodeCall is set by MakeFunctionFromID/MakeClosureFromID for
	// bytecode-kind descriptors so FunctionType's CallN/CallNKw slots
	// can forward to the owning registry's BytecodeExecutor without a
	// global.
	bytecodeCall func(desc *Descriptor, cells []*rtobjects.Cell, args []rtvalue.Value, kwargs []rtvalue.KwArg) rtvalue.Value
}

// Registry is a dense ID -> *Descriptor vector. Slot 0 always means "no
// code"; IDs are allocated starting at 1 via NextID.
type Registry struct {
	slots  []*Descriptor // slots[0] unused
	nextID int

	// BytecodeExecutor is the single hook bytecode-kind functions call
	// through. It is nil until the host VM installs one; calling a
	// bytecode function before that is a host wiring error, not a user
	// exception, so it panics rather than raising.
	BytecodeExecutor func(desc *Descriptor, args []rtvalue.Value) rtvalue.Value
}

// New creates an empty registry with slot 0 reserved.
func New() *Registry {
	return &Registry{slots: make([]*Descriptor, 1), nextID: 1}
}

// NextID returns the next unique code ID and advances the counter.
func (r *Registry) NextID() int {
	id := r.nextID
	r.nextID++
	r.grow(id)
	return id
}

func (r *Registry) grow(id int) {
	for len(r.slots) <= id {
		r.slots = append(r.slots, nil)
	}
}

func (r *Registry) assign(id int, d *Descriptor) {
	r.grow(id)
	if r.slots[id] != nil {
		panic(fmt.Sprintf("codereg: code id %d already assigned", id))
	}
	d.ID = id
	r.slots[id] = d
}

// AssignByteCode registers a bytecode-kind descriptor for id.
func (r *Registry) AssignByteCode(id int, buf []byte, nArgs, nLocals, nStack int, isGenerator bool) {
	r.assign(id, &Descriptor{
		Kind: Bytecode, Code: buf, Len: len(buf),
		NArgs: nArgs, NLocals: nLocals, NStack: nStack, IsGenerator: isGenerator,
	})
}

// AssignNativeCode registers a native-kind descriptor for id.
func (r *Registry) AssignNativeCode(id int, fn func(args []rtvalue.Value) rtvalue.Value, length, nArgs int) {
	r.assign(id, &Descriptor{Kind: Native, NativeFn: fn, Len: length, NArgs: nArgs})
}

// AssignInlineAsmCode registers an inline-assembly-kind descriptor for id.
func (r *Registry) AssignInlineAsmCode(id int, fn func(args []rtvalue.Value) rtvalue.Value, length, nArgs int) {
	r.assign(id, &Descriptor{Kind: InlineAsm, NativeFn: fn, Len: length, NArgs: nArgs})
}

// Get returns the descriptor for id, or nil if unassigned.
func (r *Registry) Get(id int) *Descriptor {
	if id <= 0 || id >= len(r.slots) {
		return nil
	}
	return r.slots[id]
}
