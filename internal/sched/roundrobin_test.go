package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRoundRobinScenario(t *testing.T) {
	processes := scenarioProcesses()

	res, err := ScheduleRoundRobin(processes, 3)
	require.NoError(t, err)

	// P2 and P3 arrive during P1's first slice and enter the queue ahead
	// of it; P4 arrives during P2's slice.
	assert.Equal(t, []TimeSlice{
		{PID: 1, Start: 0, Stop: 3},
		{PID: 2, Start: 3, Stop: 6},
		{PID: 3, Start: 6, Stop: 9},
		{PID: 1, Start: 9, Stop: 11},
		{PID: 4, Start: 11, Stop: 14},
		{PID: 3, Start: 14, Stop: 17},
		{PID: 4, Start: 17, Stop: 20},
		{PID: 3, Start: 20, Stop: 22},
	}, res.Gantt)

	// Dequeue order follows from the arrival-order rule.
	order := make([]int64, len(res.Gantt))
	for i, s := range res.Gantt {
		order[i] = s.PID
	}
	assert.Equal(t, []int64{1, 2, 3, 1, 4, 3, 4, 3}, order)

	assertConservation(t, processes, res)
	assertTimelineSound(t, processes, res)

	assert.Equal(t, ProcessTimes{Completion: 11, Turnaround: 11, Waiting: 6}, res.Times[1])
	assert.Equal(t, ProcessTimes{Completion: 6, Turnaround: 5, Waiting: 2}, res.Times[2])
	assert.Equal(t, ProcessTimes{Completion: 22, Turnaround: 20, Waiting: 12}, res.Times[3])
	assert.Equal(t, ProcessTimes{Completion: 20, Turnaround: 16, Waiting: 10}, res.Times[4])

	assert.InDelta(t, 7.5, res.AvgWaiting, 1e-9)
	assert.InDelta(t, 13.0, res.AvgTurnaround, 1e-9)
}

func TestScheduleRoundRobinDeterminism(t *testing.T) {
	first, err := ScheduleRoundRobin(scenarioProcesses(), 3)
	require.NoError(t, err)
	second, err := ScheduleRoundRobin(scenarioProcesses(), 3)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScheduleRoundRobinExactQuantumCompletion(t *testing.T) {
	// Remaining time equal to the quantum completes in place; no empty
	// slice, no re-enqueue.
	processes := []Process{{PID: 1, ArrivalTime: 0, BurstDuration: 3}}

	res, err := ScheduleRoundRobin(processes, 3)
	require.NoError(t, err)
	assert.Equal(t, []TimeSlice{{PID: 1, Start: 0, Stop: 3}}, res.Gantt)
	assert.Equal(t, ProcessTimes{Completion: 3, Turnaround: 3, Waiting: 0}, res.Times[1])
}

func TestScheduleRoundRobinLoneProcessCoalesces(t *testing.T) {
	// A lone process keeps the CPU across quantum expiries, so its
	// back-to-back slices collapse into one segment.
	processes := []Process{{PID: 1, ArrivalTime: 0, BurstDuration: 7}}

	res, err := ScheduleRoundRobin(processes, 3)
	require.NoError(t, err)
	assert.Equal(t, []TimeSlice{{PID: 1, Start: 0, Stop: 7}}, res.Gantt)
	assert.Equal(t, ProcessTimes{Completion: 7, Turnaround: 7, Waiting: 0}, res.Times[1])
}

func TestScheduleRoundRobinIdleGap(t *testing.T) {
	processes := []Process{
		{PID: 1, ArrivalTime: 0, BurstDuration: 2},
		{PID: 2, ArrivalTime: 5, BurstDuration: 1},
	}

	res, err := ScheduleRoundRobin(processes, 3)
	require.NoError(t, err)
	assert.Equal(t, []TimeSlice{
		{PID: 1, Start: 0, Stop: 2},
		{PID: IdlePID, Start: 2, Stop: 5},
		{PID: 2, Start: 5, Stop: 6},
	}, res.Gantt)
}

func TestScheduleRoundRobinArrivalAtSliceEnd(t *testing.T) {
	// A process arriving exactly when a slice expires enters the queue
	// before the preempted process is re-enqueued.
	processes := []Process{
		{PID: 1, ArrivalTime: 0, BurstDuration: 4},
		{PID: 2, ArrivalTime: 3, BurstDuration: 1},
	}

	res, err := ScheduleRoundRobin(processes, 3)
	require.NoError(t, err)
	assert.Equal(t, []TimeSlice{
		{PID: 1, Start: 0, Stop: 3},
		{PID: 2, Start: 3, Stop: 4},
		{PID: 1, Start: 4, Stop: 5},
	}, res.Gantt)
}

func TestScheduleRoundRobinBoundedWait(t *testing.T) {
	processes := scenarioProcesses()
	quantum := int64(3)

	res, err := ScheduleRoundRobin(processes, quantum)
	require.NoError(t, err)

	// Between two consecutive slices of the same process, every other
	// process runs at most one slice.
	bound := int64(len(processes)-1) * quantum
	lastStop := make(map[int64]int64)
	for _, s := range res.Gantt {
		if s.PID == IdlePID {
			continue
		}
		if stop, seen := lastStop[s.PID]; seen {
			assert.LessOrEqual(t, s.Start-stop, bound, "pid %d starved", s.PID)
		}
		lastStop[s.PID] = s.Stop
	}
}

func TestScheduleRoundRobinValidation(t *testing.T) {
	_, err := ScheduleRoundRobin([]Process{{PID: 1, BurstDuration: 3}}, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantum)

	_, err = ScheduleRoundRobin([]Process{{PID: 1, BurstDuration: 3}}, -2)
	assert.ErrorIs(t, err, ErrInvalidQuantum)

	_, err = ScheduleRoundRobin(nil, 3)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = ScheduleRoundRobin([]Process{{PID: 1, BurstDuration: -1}}, 3)
	assert.ErrorIs(t, err, ErrInvalidProcess)
}
