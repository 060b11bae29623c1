// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package driver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type countingStrategy struct {
	name      string
	doneAfter int
	steps     int
	killed    bool
}

func (c *countingStrategy) Name() string { return c.name }

func (c *countingStrategy) RunSteps(n int) bool {
	c.steps += n
	return c.steps >= c.doneAfter
}

func (c *countingStrategy) Kill() { c.killed = true }

func TestRacePicksFastestStrategy(t *testing.T) {
	slow := &countingStrategy{name: "slow", doneAfter: 1_000_000}
	fast := &countingStrategy{name: "fast", doneAfter: 1}

	res := Race([]Strategy{slow, fast}, 1)
	require.Equal(t, "fast", res.Strategy.Name())
	require.True(t, slow.killed)
}
