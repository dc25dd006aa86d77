// Package nsmap implements the mapping primitive: an open-addressed
// string-key to rtvalue.Value table. It backs the three process-wide
// namespaces (locals/globals/builtins) in internal/env and doubles as the
// storage for dict-like heap objects in internal/rtobjects.
//
// An explicit open-addressed table (linear probing, tombstone deletion,
// power-of-two resize) rather than delegating to Go's built-in map.
package nsmap

import "pyrtcore/internal/rtvalue"

type slotState uint8

const (
	slotEmpty slotState = iota
	slotFull
	slotTombstone
)

type slot struct {
	key   string
	value rtvalue.Value
	state slotState
}

// Table is an open-addressed string-keyed map to rtvalue.Value.
type Table struct {
	slots []slot
	count int // live entries
	used  int // live + tombstones, drives resize
}

// New creates an empty table with room for a handful of entries before the
// first resize.
func New() *Table {
	return &Table{slots: make([]slot, 8)}
}

func fnv1a(s string) uint64 {
	const offset = 14695981039346656037
	const prime = 1099511628211
	h := uint64(offset)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime
	}
	return h
}

func (t *Table) indexOf(key string) (int, bool) {
	mask := uint64(len(t.slots) - 1)
	i := fnv1a(key) & mask
	firstTombstone := -1
	for {
		s := &t.slots[i]
		switch s.state {
		case slotEmpty:
			if firstTombstone >= 0 {
				return firstTombstone, false
			}
			return int(i), false
		case slotTombstone:
			if firstTombstone < 0 {
				firstTombstone = int(i)
			}
		case slotFull:
			if s.key == key {
				return int(i), true
			}
		}
		i = (i + 1) & mask
	}
}

func (t *Table) maybeGrow() {
	if t.used*4 < len(t.slots)*3 {
		return
	}
	old := t.slots
	t.slots = make([]slot, len(old)*2)
	t.count, t.used = 0, 0
	for _, s := range old {
		if s.state == slotFull {
			t.Set(s.key, s.value)
		}
	}
}

// Get returns the value for key and whether it was present.
func (t *Table) Get(key string) (rtvalue.Value, bool) {
	if len(t.slots) == 0 {
		return rtvalue.Null, false
	}
	idx, found := t.indexOf(key)
	if !found {
		return rtvalue.Null, false
	}
	return t.slots[idx].value, true
}

// Set inserts or overwrites key's value.
func (t *Table) Set(key string, v rtvalue.Value) {
	t.maybeGrow()
	idx, found := t.indexOf(key)
	s := &t.slots[idx]
	if !found {
		if s.state == slotEmpty {
			t.used++
		}
		t.count++
	}
	s.key, s.value, s.state = key, v, slotFull
}

// Delete removes key, reporting whether it was present.
func (t *Table) Delete(key string) bool {
	if len(t.slots) == 0 {
		return false
	}
	idx, found := t.indexOf(key)
	if !found {
		return false
	}
	t.slots[idx] = slot{state: slotTombstone}
	t.count--
	return true
}

// Len returns the number of live entries.
func (t *Table) Len() int { return t.count }

// Keys returns the live keys in slot order (not insertion order).
func (t *Table) Keys() []string {
	keys := make([]string, 0, t.count)
	for _, s := range t.slots {
		if s.state == slotFull {
			keys = append(keys, s.key)
		}
	}
	return keys
}

// Range calls fn for every live entry; fn returning false stops iteration.
func (t *Table) Range(fn func(key string, v rtvalue.Value) bool) {
	for _, s := range t.slots {
		if s.state == slotFull {
			if !fn(s.key, s.value) {
				return
			}
		}
	}
}
