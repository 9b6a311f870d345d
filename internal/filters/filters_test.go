// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"github.com/staranto/minigrepgo/internal/search"
)

var rows = []search.Match{
	{Number: 1, Line: "Rust:"},
	{Number: 2, Line: "safe, fast, productive."},
	{Number: 3, Line: "Pick three."},
	{Number: 10, Line: "Trust me."},
}

func TestBuildFilters(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		delimiter string
		want      []Filter
	}{
		{
			name: "empty spec",
			spec: "",
		},
		{
			name: "single exact match filter",
			spec: "line=Rust:",
			want: []Filter{{Key: "line", Operand: "=", Target: "Rust:"}},
		},
		{
			name: "prefix match filter",
			spec: "line^Pick",
			want: []Filter{{Key: "line", Operand: "^", Target: "Pick"}},
		},
		{
			name: "regex match filter",
			spec: "line/^T.*\\.$",
			want: []Filter{{Key: "line", Operand: "/", Target: "^T.*\\.$"}},
		},
		{
			name: "negated contains",
			spec: "line!@fast",
			want: []Filter{{Key: "line", Operand: "@", Target: "fast", Negate: true}},
		},
		{
			name: "multiple filters",
			spec: "number>1,line~PICK THREE.",
			want: []Filter{
				{Key: "number", Operand: ">", Target: "1"},
				{Key: "line", Operand: "~", Target: "PICK THREE."},
			},
		},
		{
			name:      "custom delimiter",
			spec:      "number<5;line@,",
			delimiter: ";",
			want: []Filter{
				{Key: "number", Operand: "<", Target: "5"},
				{Key: "line", Operand: "@", Target: ","},
			},
		},
		{
			name: "invalid filter skipped",
			spec: "nonsense,line@a",
			want: []Filter{{Key: "line", Operand: "@", Target: "a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.delimiter != "" {
				t.Setenv("MINIGREP_FILTER_DELIM", tt.delimiter)
			}
			got := BuildFilters(tt.spec)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []int
	}{
		{name: "no filters", spec: "", want: []int{1, 2, 3, 10}},
		{name: "contains", spec: "line@st", want: []int{1, 2, 10}},
		{name: "negated contains", spec: "line!@st", want: []int{3}},
		{name: "equal fold", spec: "line~rust:", want: []int{1}},
		{name: "prefix", spec: "line^Pick", want: []int{3}},
		{name: "regex", spec: `line/^\w+:$`, want: []int{1}},
		{name: "numeric greater", spec: "number>2", want: []int{3, 10}},
		{name: "numeric less negated", spec: "number!<3", want: []int{3, 10}},
		{name: "number equal", spec: "number=10", want: []int{10}},
		{name: "combined", spec: "number>1,line@t", want: []int{2, 3, 10}},
		{name: "unknown key ignored", spec: "column=1,number<2", want: []int{1}},
		{name: "invalid regex excludes", spec: "line/[", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(rows, tt.spec)
			assert.NoError(t, err)

			var numbers []int
			for _, m := range got {
				numbers = append(numbers, m.Number)
			}
			assert.Equal(t, tt.want, numbers)
		})
	}
}

func TestCheckStringOperand(t *testing.T) {
	tests := []struct {
		value  string
		filter Filter
		want   bool
	}{
		{"abc", Filter{Operand: "=", Target: "abc"}, true},
		{"abc", Filter{Operand: "=", Target: "abc", Negate: true}, false},
		{"ABC", Filter{Operand: "~", Target: "abc"}, true},
		{"abc", Filter{Operand: "^", Target: "ab"}, true},
		{"abc", Filter{Operand: "@", Target: "bc"}, true},
		{"b", Filter{Operand: ">", Target: "a"}, true},
		{"a", Filter{Operand: "<", Target: "b"}, true},
		{"abc", Filter{Operand: "?", Target: "b"}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, checkStringOperand(tt.value, tt.filter), "%s %+v", tt.value, tt.filter)
	}
}

func TestApplyFilters_MissingValue(t *testing.T) {
	candidate := gjson.Parse(`{"number": 1}`)
	assert.False(t, applyFilters(candidate, []Filter{{Key: "line", Operand: "@", Target: "x"}}))
}
