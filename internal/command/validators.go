// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/minigrepgo/internal/filters"
	"github.com/staranto/minigrepgo/internal/output"
)

// GlobalFlagsValidator runs before any command that carries the global flags.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.Bool("count") && c.String("output") == "table" {
		return errors.New("--count cannot be combined with --output=table")
	}
	return nil
}

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	if strings.HasPrefix(value.(string), "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

// FilterValidator rejects filter expressions that name an unknown key.
func FilterValidator(value any) error {
	for _, f := range filters.BuildFilters(value.(string)) {
		if !filters.IsKey(f.Key) {
			return fmt.Errorf("unknown filter key %q, must be one of %v", f.Key, filters.Keys)
		}
	}
	return nil
}

func OutputValidator(value any) error {
	valid := false
	for _, v := range output.Formats {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}
