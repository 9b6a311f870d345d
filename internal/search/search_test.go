// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package search

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

const poem = `Rust:
safe, fast, productive.
Pick three.
Trust me.`

func TestSearch_OneResult(t *testing.T) {
	contents := "Rust:\nsafe, fast, productive.\nPick three."
	assert.Equal(t, []string{"safe, fast, productive."}, Search("duct", contents, true))
}

func TestSearch_CaseInsensitive(t *testing.T) {
	assert.Equal(t, []string{"Rust:", "Trust me."}, Search("rUsT", poem, false))
	assert.Equal(t, []string{"Rust:", "Trust me."}, SearchCaseInsensitive("rUsT", poem))
}

func TestSearch_CaseSensitive(t *testing.T) {
	assert.Empty(t, SearchCaseSensitive("rUsT", poem))
	assert.Equal(t, []string{"Trust me."}, SearchCaseSensitive("rust", poem))
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		contents      string
		caseSensitive bool
		want          []string
	}{
		{
			name:          "empty query matches every line",
			query:         "",
			contents:      poem,
			caseSensitive: true,
			want:          []string{"Rust:", "safe, fast, productive.", "Pick three.", "Trust me."},
		},
		{
			name:          "empty query keeps blank lines",
			query:         "",
			contents:      "a\n\nb",
			caseSensitive: true,
			want:          []string{"a", "", "b"},
		},
		{
			name:          "empty contents sensitive",
			query:         "x",
			contents:      "",
			caseSensitive: true,
			want:          nil,
		},
		{
			name:          "empty contents insensitive",
			query:         "",
			contents:      "",
			caseSensitive: false,
			want:          nil,
		},
		{
			name:          "no match",
			query:         "golang",
			contents:      poem,
			caseSensitive: false,
			want:          nil,
		},
		{
			name:          "trailing newline adds no line",
			query:         "",
			contents:      "one\ntwo\n",
			caseSensitive: true,
			want:          []string{"one", "two"},
		},
		{
			name:          "crlf line endings",
			query:         "e",
			contents:      "one\r\ntwo\r\nthree",
			caseSensitive: true,
			want:          []string{"one", "three"},
		},
		{
			name:          "lone carriage return kept",
			query:         "x",
			contents:      "x\r",
			caseSensitive: true,
			want:          []string{"x\r"},
		},
		{
			name:          "original form returned",
			query:         "PICK",
			contents:      poem,
			caseSensitive: false,
			want:          []string{"Pick three."},
		},
		{
			name:          "non-ascii case fold",
			query:         "ÉCOLE",
			contents:      "l'école\nschool",
			caseSensitive: false,
			want:          []string{"l'école"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(tt.query, tt.contents, tt.caseSensitive)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearch_Properties(t *testing.T) {
	queries := []string{"", "t", "T", "rust", "Rust", ".", "fast, p", "zzz"}

	for _, q := range queries {
		sensitive := Search(q, poem, true)
		for _, line := range sensitive {
			assert.Contains(t, line, q)
		}

		insensitive := Search(q, poem, false)
		var want []string
		for _, line := range strings.Split(poem, "\n") {
			if strings.Contains(strings.ToLower(line), strings.ToLower(q)) {
				want = append(want, line)
			}
		}
		assert.Equal(t, want, insensitive, "query %q", q)

		// Deterministic across calls.
		assert.Equal(t, sensitive, Search(q, poem, true))
		assert.Equal(t, insensitive, Search(q, poem, false))
	}
}

func TestSearch_PreservesOrder(t *testing.T) {
	contents := "b1\na2\nb3\na4\nb5"
	assert.Equal(t, []string{"b1", "b3", "b5"}, Search("b", contents, true))
}

func TestMatches(t *testing.T) {
	got := Matches("rust", poem, false)
	assert.Equal(t, []Match{
		{Number: 1, Line: "Rust:"},
		{Number: 4, Line: "Trust me."},
	}, got)

	assert.Empty(t, Matches("rust", "", false))
}

func TestMatches_AgreesWithSearch(t *testing.T) {
	for _, cs := range []bool{true, false} {
		matches := Matches("e", poem, cs)
		lines := Search("e", poem, cs)
		if assert.Len(t, matches, len(lines)) {
			for i := range lines {
				assert.Equal(t, lines[i], matches[i].Line)
			}
		}
	}
}

func TestFunc(t *testing.T) {
	f := Func("duct", true)
	assert.Equal(t, []string{"safe, fast, productive."}, f(poem))
	assert.Empty(t, f("nothing here"))
}

func TestHighlights(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		line          string
		caseSensitive bool
		want          [][2]int
	}{
		{
			name:          "single",
			query:         "duct",
			line:          "safe, fast, productive.",
			caseSensitive: true,
			want:          [][2]int{{15, 19}},
		},
		{
			name:          "multiple non-overlapping",
			query:         "aa",
			line:          "aaaaa",
			caseSensitive: true,
			want:          [][2]int{{0, 2}, {2, 4}},
		},
		{
			name:          "insensitive",
			query:         "RUST",
			line:          "Rust trust",
			caseSensitive: false,
			want:          [][2]int{{0, 4}, {6, 10}},
		},
		{
			name:          "empty query",
			query:         "",
			line:          "anything",
			caseSensitive: true,
			want:          nil,
		},
		{
			name:          "no occurrence",
			query:         "x",
			line:          "abc",
			caseSensitive: true,
			want:          nil,
		},
		{
			name:          "shrinking fold",
			query:         "k",
			line:          "\u212a", // Kelvin sign lower-cases to a one byte 'k'
			caseSensitive: false,
			want:          [][2]int{{0, 3}},
		},
		{
			// Kelvin shrinks by two bytes and each U+023A grows by one, so the
			// folded line has the same length but shifted offsets.
			name:          "width changes cancel out",
			query:         "k",
			line:          "\u212a\u023a\u023ax",
			caseSensitive: false,
			want:          [][2]int{{0, 3}},
		},
		{
			name:          "after width changes",
			query:         "X",
			line:          "\u212a\u023a\u023ax",
			caseSensitive: false,
			want:          [][2]int{{7, 8}},
		},
		{
			name:          "growing fold",
			query:         "\u2c65",
			line:          "a\u023ab",
			caseSensitive: false,
			want:          [][2]int{{1, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Highlights(tt.query, tt.line, tt.caseSensitive)
			assert.Equal(t, tt.want, got)
			for _, span := range got {
				assert.True(t, utf8.ValidString(tt.line[span[0]:span[1]]), "span %v splits a rune", span)
			}
		})
	}
}

func BenchmarkSearch(b *testing.B) {
	contents := strings.Repeat(poem+"\n", 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Search("rUsT", contents, false)
	}
}
