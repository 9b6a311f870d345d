// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/staranto/minigrepgo/internal/search"
)

// filterRegex is the pattern used to parse filter expressions into key, operator, and target components.
// It matches: key + operator + target, where operator can be negated with !
// Operators are one of = ~ ^ @ / < >, optionally prefixed with '!'.
var filterRegex = regexp.MustCompile(`^([a-z_]+)(!?[=~^@/<>])(.*)$`)

// Keys are the row attributes a filter may refer to.
var Keys = []string{"number", "line"}

// Filter represents a single parsed --filter expression including the key,
// operand, optional negation and target value.
type Filter struct {
	Key     string
	Negate  bool
	Operand string
	Target  string
}

// BuildFilters parses a filter specification string into a slice of Filter.
// Invalid specs (unsupported operand or malformed expression) are skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter

	// If there are no filters specified, go home early.
	if spec == "" {
		return filters
	}

	// Default delimiter is ",", allow an override.
	delim := ","
	if d, ok := os.LookupEnv("MINIGREP_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	for _, filterSpec := range strings.Split(spec, delim) {
		parts := filterRegex.FindStringSubmatch(filterSpec)

		// If a supported operand was not found, log an error and throw it away.
		if parts == nil {
			log.Error("invalid filter: " + filterSpec)
			continue
		}

		// parts[2] is the operand. It may have a leading negation.
		negate := strings.HasPrefix(parts[2], "!")

		filters = append(filters, Filter{
			Key:     parts[1],
			Negate:  negate,
			Operand: strings.TrimPrefix(parts[2], "!"),
			Target:  parts[3],
		})
	}

	return filters
}

// Apply returns the matches that pass every filter in spec, in their original
// order.
func Apply(matches []search.Match, spec string) ([]search.Match, error) {
	filters := BuildFilters(spec)
	if len(filters) == 0 {
		return matches, nil
	}

	raw, err := json.Marshal(matches)
	if err != nil {
		return nil, fmt.Errorf("failed to encode matches: %w", err)
	}

	//nolint:prealloc // Don't prealloc because we don't know what len will be.
	var filtered []search.Match
	for i, candidate := range gjson.ParseBytes(raw).Array() {
		if applyFilters(candidate, filters) {
			filtered = append(filtered, matches[i])
		}
	}

	return filtered, nil
}

// applyFilters returns true if the candidate row matches all of the provided
// filters.
func applyFilters(candidate gjson.Result, filters []Filter) bool {
	for _, filter := range filters {
		if !IsKey(filter.Key) {
			msg := fmt.Sprintf("filter key not found: %s", filter.Key)
			log.Error(msg)
			fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
			continue
		}

		value := candidate.Get(filter.Key)
		if !value.Exists() {
			return false
		}

		var result bool
		if value.Type == gjson.Number && (filter.Operand == "<" || filter.Operand == ">") {
			result = checkNumberOperand(value.Num, filter)
		} else {
			result = checkStringOperand(value.String(), filter)
		}

		if !result {
			return false
		}
	}

	return true
}

// IsKey reports whether key names a row attribute.
func IsKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// checkNumberOperand compares numerically when the target parses as a number
// and falls back to string comparison otherwise.
func checkNumberOperand(value float64, filter Filter) bool {
	target := gjson.Parse(filter.Target)
	if target.Type != gjson.Number {
		return checkStringOperand(fmt.Sprintf("%v", value), filter)
	}

	switch filter.Operand {
	case ">":
		return value > target.Num == !filter.Negate
	case "<":
		return value < target.Num == !filter.Negate
	default:
		return false
	}
}

// checkStringOperand evaluates a string comparison style filter against the
// provided value using the operand semantics.
func checkStringOperand(value string, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return value == filter.Target == !filter.Negate
	case "~":
		return strings.EqualFold(value, filter.Target) == !filter.Negate
	case "^":
		return strings.HasPrefix(value, filter.Target) == !filter.Negate
	case ">":
		return value > filter.Target == !filter.Negate
	case "<":
		return value < filter.Target == !filter.Negate
	case "@":
		return strings.Contains(value, filter.Target) == !filter.Negate
	case "/":
		matched, err := regexp.MatchString(filter.Target, value)
		if err != nil {
			log.Error("invalid regex: " + filter.Target)
			return false
		}
		return matched == !filter.Negate
	default:
		log.Error("unsupported filtering operand: " + filter.Operand)
		return false
	}
}
