// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cache

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacher_IgnoresLaterArguments(t *testing.T) {
	c := New(func(x int) int { return x })

	assert.Equal(t, 5, c.Value(5))
	assert.Equal(t, 5, c.Value(99))
}

func TestCacher_Lazy(t *testing.T) {
	calls := 0
	c := New(func(x uint32) uint32 {
		calls++
		return x * 2
	})

	assert.Equal(t, 0, calls, "construction must not invoke the calculation")
	assert.False(t, c.Cached())

	assert.Equal(t, uint32(86), c.Value(43))
	assert.Equal(t, uint32(86), c.Value(43))
	assert.Equal(t, uint32(86), c.Value(1))
	assert.Equal(t, 1, calls)
	assert.True(t, c.Cached())
}

func TestCacher_ZeroValueIsCached(t *testing.T) {
	calls := 0
	c := New(func(string) []string {
		calls++
		return nil
	})

	assert.Nil(t, c.Value("a"))
	assert.Nil(t, c.Value("b"))
	assert.Equal(t, 1, calls)
}

func TestCacher_ErrorsAreCachedNotRetried(t *testing.T) {
	type result struct {
		n   int
		err error
	}
	boom := errors.New("boom")

	calls := 0
	c := New(func(s string) result {
		calls++
		n, err := strconv.Atoi(s)
		if err != nil {
			return result{err: boom}
		}
		return result{n: n}
	})

	got := c.Value("nope")
	assert.ErrorIs(t, got.err, boom)

	got = c.Value("42")
	assert.ErrorIs(t, got.err, boom)
	assert.Equal(t, 1, calls)
}

func TestKeyed(t *testing.T) {
	calls := 0
	k := NewKeyed(func(x int) int {
		calls++
		return x * x
	})

	assert.Equal(t, 25, k.Value(5))
	assert.Equal(t, 9801, k.Value(99))
	assert.Equal(t, 25, k.Value(5))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, k.Len())
}

func TestValuer_DropIn(t *testing.T) {
	identity := func(x int) int { return x }

	tests := []struct {
		name   string
		valuer Valuer[int, int]
		want   []int
	}{
		{
			name:   "single slot",
			valuer: New(identity),
			want:   []int{5, 5},
		},
		{
			name:   "keyed",
			valuer: NewKeyed(identity),
			want:   []int{5, 99},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []int{tt.valuer.Value(5), tt.valuer.Value(99)}
			assert.Equal(t, tt.want, got)
		})
	}
}
