// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/minigrepgo/internal/command"
	"github.com/staranto/minigrepgo/internal/config"
	mylog "github.com/staranto/minigrepgo/internal/log"
	"github.com/staranto/minigrepgo/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()

	args := os.Args

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "No command specified.")
		args = append(args, "--help")
	} else {
		args = mangleArguments(args)
	}

	// Short-circuit --version/-v.
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}

// mangleArguments expands an argument set from config into args. A set is
// named by an @set arg immediately after the command; without one the
// "defaults" set is used. An @ arg that names no configured set is left in
// place as an ordinary argument. The set's args are inserted ahead of the
// user's so explicit flags win.
func mangleArguments(args []string) []string {
	// We know the first two args are going to be the executable and command.
	preamble := make([]string, 2, len(args))
	copy(preamble, args[:2])

	// Short-circuit for --help/-h. If help is requested, just keep the preamble
	// and add --help flag.
	for _, a := range args {
		if a == "--help" || a == "-h" {
			return append(preamble, "--help")
		}
	}

	if strings.HasPrefix(args[1], "-") {
		return args
	}

	rest := args[2:]
	set := "defaults"
	var setArgs []string

	if len(rest) > 0 && strings.HasPrefix(rest[0], "@") && len(rest[0]) > 1 {
		if named, err := config.GetStringSlice(args[1] + "." + rest[0][1:]); err == nil {
			set = rest[0][1:]
			setArgs = named
			rest = rest[1:]
		} else {
			log.Debugf("%s is not an arg set, keeping it as an argument: %v", rest[0], err)
		}
	}

	if set == "defaults" {
		var err error
		if setArgs, err = config.GetStringSlice(args[1] + "." + set); err != nil {
			log.Debugf("no %s.%s arg set: %v", args[1], set, err)
		}
	}

	out := preamble
	for _, arg := range setArgs {
		out = append(out, strings.Fields(arg)...)
	}
	out = append(out, rest...)

	log.Debugf("set=%s, args=%v", set, out)
	return out
}
