// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/minigrepgo/internal/aws"
	"github.com/staranto/minigrepgo/internal/cache"
	"github.com/staranto/minigrepgo/internal/config"
	"github.com/staranto/minigrepgo/internal/filters"
	"github.com/staranto/minigrepgo/internal/meta"
	"github.com/staranto/minigrepgo/internal/output"
	"github.com/staranto/minigrepgo/internal/search"
	"github.com/staranto/minigrepgo/internal/source"
)

// ErrNoQuery is returned when search is run without a query.
var ErrNoQuery = errors.New("didn't get a query string")

// loaded is the outcome of reading a source, cached as one value.
type loaded struct {
	text string
	err  error
}

// SearchCommandAction is the action handler for the "search" subcommand. It
// loads the source once, searches it, filters the matches and emits them per
// common flags.
func SearchCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	// Bail out early if we're just dumping tldr.
	if ShortCircuitTLDR(ctx, cmd, "search") {
		return nil
	}

	config.Config.Namespace = "search"

	query, spec, err := searchArgs(cmd)
	if err != nil {
		return err
	}
	caseSensitive := !cmd.Bool("ignore-case")
	log.Debugf("query=%q source=%s caseSensitive=%v", query, source.Describe(spec), caseSensitive)

	opts := sourceOptions(cmd)
	contents := cache.New(func(spec string) loaded {
		text, err := source.Load(ctx, spec, opts...)
		return loaded{text: text, err: err}
	})

	stdout, stderr := Writers(cmd)

	if cmd.Bool("verbose") {
		fmt.Fprintf(stderr, "Searching for: `%s`\n", query)
		fmt.Fprintf(stderr, "In file: `%s`\n", source.Describe(spec))
		if l := contents.Value(spec); l.err == nil {
			fmt.Fprintf(stderr, "With text: %s\n", humanize.Bytes(uint64(len(l.text))))
		}
	}

	l := contents.Value(spec)
	if l.err != nil {
		log.WithError(l.err).Debug("source load failed")
		return fmt.Errorf("application error: %w", l.err)
	}

	matches := search.Matches(query, l.text, caseSensitive)
	log.Debugf("matched %d lines", len(matches))

	matches, err = filters.Apply(matches, cmd.String("filter"))
	if err != nil {
		return err
	}

	return output.Render(stdout, matches, output.Options{
		Format:        cmd.String("output"),
		Query:         query,
		CaseSensitive: caseSensitive,
		LineNumbers:   cmd.Bool("line-number"),
		Color:         UseColor(cmd, stdout),
		Titles:        cmd.Bool("titles"),
		Count:         cmd.Bool("count"),
	})
}

// searchArgs returns the query and the optional source spec.
func searchArgs(cmd *cli.Command) (query string, spec string, err error) {
	args := cmd.Args()
	switch {
	case args.Len() < 1:
		return "", "", fmt.Errorf("problem parsing arguments: %w", ErrNoQuery)
	case args.Len() > 2:
		return "", "", fmt.Errorf("problem parsing arguments: only one source may be searched, got %d", args.Len()-1)
	}
	return args.Get(0), args.Get(1), nil
}

// sourceOptions maps the S3 flags onto source options.
func sourceOptions(cmd *cli.Command) []source.Option {
	var s3Opts []source.S3Option
	if p := cmd.String("profile"); p != "" {
		s3Opts = append(s3Opts, aws.WithProfile(p))
	}
	if r := cmd.String("region"); r != "" {
		s3Opts = append(s3Opts, aws.WithRegion(r))
	}
	if e := cmd.String("endpoint"); e != "" {
		s3Opts = append(s3Opts, aws.WithEndpoint(e))
	}
	return []source.Option{source.WithS3Options(s3Opts...)}
}

// SearchCommandBuilder constructs the cli.Command for "search", wiring
// metadata, flags, and action/validator handlers.
func SearchCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	cfgSource := meta.Config.Source

	flags := append([]cli.Flag{
		&cli.BoolFlag{
			Name:  "count",
			Usage: "only print the number of matching lines",
			Value: false,
		},
		&cli.BoolFlag{
			Name:    "ignore-case",
			Aliases: []string{"i"},
			Usage:   "match without regard to case",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("MINIGREP_CASE_INSENSITIVE"),
				cli.EnvVar("CASE_INSENSITIVE"),
				yaml.YAML("search.ignore_case", altsrc.StringSourcer(cfgSource)),
			),
			Value: false,
		},
		&cli.BoolFlag{
			Name:    "line-number",
			Aliases: []string{"n"},
			Usage:   "prefix each line with its line number",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("search.line_number", altsrc.StringSourcer(cfgSource)),
			),
			Value: false,
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "print the query, source and text size before the results",
			Value: false,
		},
	}, NewS3Flags("search", cfgSource)...)

	return (&CommandBuilder{
		Name:  "search",
		Usage: "print lines of SOURCE that contain QUERY",
		UsageText: `minigrep search [options] QUERY [SOURCE]

SOURCE is a file path, - for stdin (the default) or s3://bucket/key.`,
		Flags:  flags,
		Global: true,
		Action: SearchCommandAction,
		Meta:   meta,
	}).Build()
}
