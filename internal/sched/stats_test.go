package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	avgWaiting, avgTurnaround, err := Aggregate([]ProcessTimes{
		{Waiting: 3, Turnaround: 8},
		{Waiting: 0, Turnaround: 3},
		{Waiting: 12, Turnaround: 20},
		{Waiting: 4, Turnaround: 10},
	})
	require.NoError(t, err)
	assert.InDelta(t, 4.75, avgWaiting, 1e-9)
	assert.InDelta(t, 10.25, avgTurnaround, 1e-9)
}

func TestAggregateSingle(t *testing.T) {
	avgWaiting, avgTurnaround, err := Aggregate([]ProcessTimes{{Waiting: 5, Turnaround: 9}})
	require.NoError(t, err)
	assert.Equal(t, 5.0, avgWaiting)
	assert.Equal(t, 9.0, avgTurnaround)
}

func TestAggregateEmpty(t *testing.T) {
	_, _, err := Aggregate(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}
