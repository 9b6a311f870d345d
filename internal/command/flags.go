// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// newTLDRFlag returns the --tldr flag, hidden when tldr is not installed.
func newTLDRFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "tldr",
		Usage:       "show tldr page",
		Hidden:      !pathHas("tldr"),
		HideDefault: true,
	}
}

// NewGlobalFlags returns the flags shared by commands that render results.
// ns is the command name, used as the config namespace, and source is the
// config file path.
func NewGlobalFlags(ns string, source string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output (default: auto)",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"color", altsrc.StringSourcer(source)),
				yaml.YAML("color", altsrc.StringSourcer(source)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, FilterValidator)
			},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"output", altsrc.StringSourcer(source)),
				yaml.YAML("output", altsrc.StringSourcer(source)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with table output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"titles", altsrc.StringSourcer(source)),
				yaml.YAML("titles", altsrc.StringSourcer(source)),
			),
			Value: false,
		},
	}

	return
}

// NewS3Flags returns the flags that shape the S3 client used for s3://
// sources. Each may also come from the AWS environment or the config file.
func NewS3Flags(ns string, source string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "profile",
			Usage: "AWS shared config profile for s3:// sources",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWS_PROFILE"),
				yaml.YAML(ns+"."+"profile", altsrc.StringSourcer(source)),
			),
		},
		&cli.StringFlag{
			Name:  "region",
			Usage: "AWS region for s3:// sources",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWS_REGION"),
				yaml.YAML(ns+"."+"region", altsrc.StringSourcer(source)),
			),
		},
		&cli.StringFlag{
			Name:  "endpoint",
			Usage: "S3 compatible endpoint URL for s3:// sources",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("MINIGREP_S3_ENDPOINT"),
				yaml.YAML(ns+"."+"endpoint", altsrc.StringSourcer(source)),
			),
		},
	}
}

// pathHas checks if the given executable is on the PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
