// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match is a single matched line and its 1-based line number in the source
// text.
type Match struct {
	Number int    `json:"number" yaml:"number"`
	Line   string `json:"line" yaml:"line"`
}

// Search returns every line of contents that contains query, in original
// order. When caseSensitive is false both query and each line are lower-cased
// before comparison, but the line is returned in its original form.
//
// The returned strings are substrings of contents. An empty query matches
// every line and empty contents yield no lines.
func Search(query, contents string, caseSensitive bool) []string {
	var results []string
	scan(query, contents, caseSensitive, func(_ int, line string) {
		results = append(results, line)
	})
	return results
}

// SearchCaseSensitive is Search with exact-case matching.
func SearchCaseSensitive(query, contents string) []string {
	return Search(query, contents, true)
}

// SearchCaseInsensitive is Search with case-folded matching.
func SearchCaseInsensitive(query, contents string) []string {
	return Search(query, contents, false)
}

// Matches selects the same lines as Search and pairs each with its line
// number.
func Matches(query, contents string, caseSensitive bool) []Match {
	var results []Match
	scan(query, contents, caseSensitive, func(n int, line string) {
		results = append(results, Match{Number: n, Line: line})
	})
	return results
}

// Func returns the search for query as a unary function of the contents.
func Func(query string, caseSensitive bool) func(contents string) []string {
	return func(contents string) []string {
		return Search(query, contents, caseSensitive)
	}
}

// Highlights returns the [start, end) byte ranges of each non-overlapping
// occurrence of query in line. For case-insensitive matching the line is
// folded one rune at a time and every range is mapped back onto line, so the
// ranges always fall on rune boundaries of line even when folding changes a
// rune's encoded width.
func Highlights(query, line string, caseSensitive bool) [][2]int {
	if query == "" {
		return nil
	}

	haystack, needle := line, query
	var origin []int
	if !caseSensitive {
		haystack, origin = foldOffsets(line)
		needle, _ = foldOffsets(query)
	}

	var spans [][2]int
	for offset := 0; offset <= len(haystack)-len(needle); {
		i := strings.Index(haystack[offset:], needle)
		if i < 0 {
			break
		}
		start, end := offset+i, offset+i+len(needle)
		if origin != nil {
			spans = append(spans, [2]int{origin[start], origin[end]})
		} else {
			spans = append(spans, [2]int{start, end})
		}
		offset = end
	}
	return spans
}

// foldOffsets lower-cases s rune by rune. origin[i] is the offset in s of the
// rune that produced byte i of folded, and origin[len(folded)] is len(s).
// Invalid bytes are copied through unchanged.
func foldOffsets(s string) (folded string, origin []int) {
	b := make([]byte, 0, len(s))
	origin = make([]int, 0, len(s)+1)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		n := len(b)
		if r == utf8.RuneError && size == 1 {
			b = append(b, s[i])
		} else {
			b = utf8.AppendRune(b, unicode.ToLower(r))
		}
		for range len(b) - n {
			origin = append(origin, i)
		}
		i += size
	}
	origin = append(origin, len(s))
	return string(b), origin
}

// scan walks the lines of contents and calls emit for each one containing
// query.
func scan(query, contents string, caseSensitive bool, emit func(int, string)) {
	if !caseSensitive {
		query = fold(query)
	}

	n := 0
	for line := range strings.Lines(contents) {
		n++
		if l, ok := strings.CutSuffix(line, "\n"); ok {
			line = strings.TrimSuffix(l, "\r")
		}

		candidate := line
		if !caseSensitive {
			candidate = fold(line)
		}
		if strings.Contains(candidate, query) {
			emit(n, line)
		}
	}
}

// fold is the case-fold used for case-insensitive matching. strings.ToLower
// applies Unicode simple lower-case mappings and does not depend on the
// locale, which keeps results identical across environments.
func fold(s string) string {
	return strings.ToLower(s)
}
