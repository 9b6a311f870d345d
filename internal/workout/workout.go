// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package workout builds a workout plan from an intensity, calling an
// expensive calculation no more often than it has to.
package workout

import (
	"fmt"
	"io"
	"time"

	"github.com/apex/log"

	"github.com/staranto/minigrepgo/internal/cache"
)

// HighIntensity is the intensity above which the plan is strength work.
const HighIntensity = 25

// BreakNumber is the random number that earns a rest day.
const BreakNumber = 3

// SlowCalculation returns the expensive calculation: the identity function,
// after sleeping for delay. sleep may be nil, in which case time.Sleep is used.
func SlowCalculation(delay time.Duration, sleep func(time.Duration)) func(uint32) uint32 {
	if sleep == nil {
		sleep = time.Sleep
	}
	return func(num uint32) uint32 {
		log.Info("Calculating slowly...")
		sleep(delay)
		return num
	}
}

// Generate writes the plan for intensity to w. calc supplies the expensive
// result and is consulted at most twice; wrap it in a cache.Cacher so the
// underlying calculation runs once.
func Generate(w io.Writer, intensity, randomNumber uint32, calc cache.Valuer[uint32, uint32]) error {
	var err error
	switch {
	case intensity > HighIntensity:
		if _, err = fmt.Fprintf(w, "Today, do %d pushups!\n", calc.Value(intensity)); err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "Next, do %d situps!\n", calc.Value(intensity))
	case randomNumber == BreakNumber:
		_, err = fmt.Fprintln(w, "Take a break today! Remember to stay hydrated!")
	default:
		_, err = fmt.Fprintf(w, "Today, run for %d minutes!\n", calc.Value(intensity))
	}
	return err
}
