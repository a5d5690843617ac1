package sched

// SchedulePriority simulates preemptive priority scheduling: lower numeric
// priority runs first, and a newly arrived process with a strictly lower
// priority value preempts the running one. Ties are broken by earliest
// arrival time, then by lowest pid, so results are reproducible.
//
// The simulation is event-driven rather than tick-driven: decision points
// are the initial time, arrivals, and completions, and the clock jumps
// straight to the next one.
func SchedulePriority(processes []Process) (*Result, error) {
	if err := validate(processes); err != nil {
		return nil, err
	}

	var (
		states    = newRunStates(processes)
		gantt     timeline
		ready     []*runState
		now       int64
		next      int // cursor into states: first process not yet arrived
		completed int
	)

	for completed < len(states) {
		for next < len(states) && states[next].proc.ArrivalTime <= now {
			ready = append(ready, states[next])
			next++
		}

		if len(ready) == 0 {
			idleUntil := states[next].proc.ArrivalTime
			gantt.record(IdlePID, now, idleUntil)
			now = idleUntil
			continue
		}

		current := takeHighestPriority(&ready)

		// Run until completion, unless a strictly higher-priority
		// process arrives first.
		stop := now + current.remaining
		for i := next; i < len(states); i++ {
			arrival := states[i]
			if arrival.proc.ArrivalTime >= stop {
				break
			}
			if arrival.proc.Priority < current.proc.Priority {
				stop = arrival.proc.ArrivalTime
				break
			}
		}

		gantt.record(current.proc.PID, now, stop)
		current.remaining -= stop - now
		now = stop

		if current.remaining == 0 {
			current.completion = now
			completed++
		} else {
			ready = append(ready, current)
		}
	}

	return buildResult(states, &gantt)
}

// takeHighestPriority removes and returns the ready process with the lowest
// priority value, breaking ties by arrival time and then pid.
func takeHighestPriority(ready *[]*runState) *runState {
	best := 0
	for i := 1; i < len(*ready); i++ {
		if priorityLess((*ready)[i], (*ready)[best]) {
			best = i
		}
	}
	picked := (*ready)[best]
	*ready = append((*ready)[:best], (*ready)[best+1:]...)
	return picked
}

func priorityLess(a, b *runState) bool {
	if a.proc.Priority != b.proc.Priority {
		return a.proc.Priority < b.proc.Priority
	}
	if a.proc.ArrivalTime != b.proc.ArrivalTime {
		return a.proc.ArrivalTime < b.proc.ArrivalTime
	}
	return a.proc.PID < b.proc.PID
}
