// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"time"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/minigrepgo/internal/cache"
	"github.com/staranto/minigrepgo/internal/meta"
	"github.com/staranto/minigrepgo/internal/workout"
)

// WorkoutCommandAction prints a workout plan. The slow calculation is wrapped
// in a cache.Cacher so it runs once however many times the plan needs it.
func WorkoutCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "workout") {
		return nil
	}

	intensity := cmd.Uint32("intensity")
	randomNumber := cmd.Uint32("random")
	delay := cmd.Duration("delay")
	log.Debugf("intensity=%d random=%d delay=%s", intensity, randomNumber, delay)

	calc := cache.New(workout.SlowCalculation(delay, nil))

	stdout, _ := Writers(cmd)
	return workout.Generate(stdout, intensity, randomNumber, calc)
}

// WorkoutCommandBuilder constructs the cli.Command for "workout".
func WorkoutCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "workout",
		Usage:     "generate a workout plan",
		UsageText: `minigrep workout [--intensity N] [--random N] [--delay D]`,
		Flags: []cli.Flag{
			&cli.Uint32Flag{
				Name:  "intensity",
				Usage: "workout intensity",
				Value: 43,
			},
			&cli.Uint32Flag{
				Name:  "random",
				Usage: "random number; 3 earns a break on low intensity days",
				Value: 8,
			},
			&cli.DurationFlag{
				Name:  "delay",
				Usage: "how long the expensive calculation takes",
				Sources: cli.NewValueSourceChain(
					cli.EnvVar("MINIGREP_WORKOUT_DELAY"),
				),
				Value: 2 * time.Second,
			},
		},
		Action: WorkoutCommandAction,
		Meta:   meta,
	}).Build()
}
