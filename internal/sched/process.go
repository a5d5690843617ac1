// Package sched simulates CPU scheduling policies over a fixed set of
// processes and derives per-process and aggregate timing metrics.
package sched

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrInvalidProcess = errors.New("invalid process")
	ErrInvalidQuantum = errors.New("invalid quantum")
	ErrDuplicatePID   = errors.New("duplicate pid")
	ErrEmptyInput     = errors.New("no processes")
)

type (
	// Process is the immutable static description of one process.
	Process struct {
		PID           int64
		ArrivalTime   int64
		BurstDuration int64
		Priority      int64
	}

	// ProcessTimes holds the metrics derived once a process completes.
	ProcessTimes struct {
		Completion int64
		Turnaround int64
		Waiting    int64
	}

	// Result is the full outcome of one simulation run: the execution
	// timeline, per-process metrics keyed by pid, and the averages.
	Result struct {
		Gantt         []TimeSlice
		Times         map[int64]ProcessTimes
		AvgWaiting    float64
		AvgTurnaround float64
	}
)

// runState is the mutable per-process state owned by a single simulation
// run. It is allocated fresh on every Schedule* call and discarded on
// return, so concurrent runs never share state.
type runState struct {
	proc       Process
	remaining  int64
	completion int64
}

func validate(processes []Process) error {
	if len(processes) == 0 {
		return ErrEmptyInput
	}
	seen := make(map[int64]struct{}, len(processes))
	for i := range processes {
		p := processes[i]
		if p.BurstDuration <= 0 {
			return fmt.Errorf("%w: pid %d has burst duration %d", ErrInvalidProcess, p.PID, p.BurstDuration)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: pid %d has arrival time %d", ErrInvalidProcess, p.PID, p.ArrivalTime)
		}
		if _, ok := seen[p.PID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicatePID, p.PID)
		}
		seen[p.PID] = struct{}{}
	}
	return nil
}

// newRunStates copies the input into per-run state sorted by arrival time,
// ties broken by pid. Both simulators rely on this ordering: it is the
// admission order for simultaneous arrivals.
func newRunStates(processes []Process) []*runState {
	states := make([]*runState, len(processes))
	for i := range processes {
		states[i] = &runState{proc: processes[i], remaining: processes[i].BurstDuration}
	}
	sort.Slice(states, func(i, j int) bool {
		if states[i].proc.ArrivalTime != states[j].proc.ArrivalTime {
			return states[i].proc.ArrivalTime < states[j].proc.ArrivalTime
		}
		return states[i].proc.PID < states[j].proc.PID
	})
	return states
}

func buildResult(states []*runState, gantt *timeline) (*Result, error) {
	times := make(map[int64]ProcessTimes, len(states))
	perProcess := make([]ProcessTimes, 0, len(states))
	for _, s := range states {
		t := ProcessTimes{
			Completion: s.completion,
			Turnaround: s.completion - s.proc.ArrivalTime,
		}
		t.Waiting = t.Turnaround - s.proc.BurstDuration
		times[s.proc.PID] = t
		perProcess = append(perProcess, t)
	}

	avgWaiting, avgTurnaround, err := Aggregate(perProcess)
	if err != nil {
		return nil, err
	}

	return &Result{
		Gantt:         gantt.slices(),
		Times:         times,
		AvgWaiting:    avgWaiting,
		AvgTurnaround: avgTurnaround,
	}, nil
}

func min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
