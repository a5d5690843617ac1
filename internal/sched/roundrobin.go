package sched

import "fmt"

// ScheduleRoundRobin simulates round-robin scheduling with a fixed time
// quantum. The ready queue is strictly FIFO: processes enter it at the
// moment they arrive (simultaneous arrivals in ascending pid order), and a
// process preempted at quantum expiry re-enters at the tail, behind
// anything that arrived during its slice. A process whose remaining time
// fits the quantum completes without being re-enqueued.
func ScheduleRoundRobin(processes []Process, quantum int64) (*Result, error) {
	if quantum <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantum, quantum)
	}
	if err := validate(processes); err != nil {
		return nil, err
	}

	var (
		states    = newRunStates(processes)
		gantt     timeline
		queue     []*runState
		now       int64
		next      int
		completed int
	)

	admit := func(upTo int64) {
		for next < len(states) && states[next].proc.ArrivalTime <= upTo {
			queue = append(queue, states[next])
			next++
		}
	}

	admit(now)

	for completed < len(states) {
		if len(queue) == 0 {
			idleUntil := states[next].proc.ArrivalTime
			gantt.record(IdlePID, now, idleUntil)
			now = idleUntil
			admit(now)
			continue
		}

		current := queue[0]
		queue = queue[1:]

		slice := min(quantum, current.remaining)
		gantt.record(current.proc.PID, now, now+slice)
		now += slice
		current.remaining -= slice

		// Arrivals during the slice go ahead of the preempted process.
		admit(now)

		if current.remaining == 0 {
			current.completion = now
			completed++
		} else {
			queue = append(queue, current)
		}
	}

	return buildResult(states, &gantt)
}
