// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package workout

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/staranto/minigrepgo/internal/cache"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name         string
		intensity    uint32
		randomNumber uint32
		want         string
		wantCalls    int
	}{
		{
			name:         "high intensity",
			intensity:    43,
			randomNumber: 8,
			want:         "Today, do 43 pushups!\nNext, do 43 situps!\n",
			wantCalls:    1,
		},
		{
			name:         "break day",
			intensity:    10,
			randomNumber: 3,
			want:         "Take a break today! Remember to stay hydrated!\n",
			wantCalls:    0,
		},
		{
			name:         "run",
			intensity:    25,
			randomNumber: 8,
			want:         "Today, run for 25 minutes!\n",
			wantCalls:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			var slept []time.Duration
			sleep := func(d time.Duration) {
				calls++
				slept = append(slept, d)
			}

			var buf bytes.Buffer
			calc := cache.New(SlowCalculation(2*time.Second, sleep))
			err := Generate(&buf, tt.intensity, tt.randomNumber, calc)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, tt.wantCalls, calls)
			for _, d := range slept {
				assert.Equal(t, 2*time.Second, d)
			}
		})
	}
}

func TestSlowCalculation_DefaultSleep(t *testing.T) {
	calc := SlowCalculation(0, nil)
	assert.Equal(t, uint32(7), calc(7))
}
