// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

// Valuer is anything that produces a B for an A, possibly from a cache.
type Valuer[A, B any] interface {
	Value(arg A) B
}

// Cacher wraps a calculation and runs it at most once.
//
// The cached value is not keyed by argument. Once populated, Value returns the
// first result regardless of the argument it is given. Use Keyed when the
// result must track the argument.
type Cacher[A, B any] struct {
	// The wrapped calculation.
	calculation func(A) B
	// The slot. nil until the first call to Value.
	value *B
}

// New returns an empty Cacher for calculation. calculation is not invoked
// until the first call to Value.
func New[A, B any](calculation func(A) B) *Cacher[A, B] {
	return &Cacher[A, B]{
		calculation: calculation,
	}
}

// Value returns the cached result, computing it from arg on the first call.
// arg is ignored on every later call.
func (c *Cacher[A, B]) Value(arg A) B {
	if c.value != nil {
		return *c.value
	}
	v := c.calculation(arg)
	c.value = &v
	return v
}

// Cached reports whether the slot has been populated.
func (c *Cacher[A, B]) Cached() bool {
	return c.value != nil
}

// Keyed wraps a calculation and runs it at most once per distinct argument.
// It is not safe for concurrent use.
type Keyed[A comparable, B any] struct {
	calculation func(A) B
	values      map[A]B
}

// NewKeyed returns an empty Keyed cache for calculation.
func NewKeyed[A comparable, B any](calculation func(A) B) *Keyed[A, B] {
	return &Keyed[A, B]{
		calculation: calculation,
		values:      make(map[A]B),
	}
}

// Value returns the cached result for arg, computing it on first use.
func (k *Keyed[A, B]) Value(arg A) B {
	if v, ok := k.values[arg]; ok {
		return v
	}
	v := k.calculation(arg)
	k.values[arg] = v
	return v
}

// Len returns the number of cached entries.
func (k *Keyed[A, B]) Len() int {
	return len(k.values)
}

var (
	_ Valuer[int, int] = (*Cacher[int, int])(nil)
	_ Valuer[int, int] = (*Keyed[int, int])(nil)
)
