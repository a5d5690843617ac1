package sched

// Aggregate computes the arithmetic mean of waiting and turnaround time
// across all processes. Zero processes is an explicit error rather than a
// silent NaN.
func Aggregate(times []ProcessTimes) (avgWaiting, avgTurnaround float64, err error) {
	if len(times) == 0 {
		return 0, 0, ErrEmptyInput
	}

	var waitingSum, turnaroundSum float64
	for _, t := range times {
		waitingSum += float64(t.Waiting)
		turnaroundSum += float64(t.Turnaround)
	}

	count := float64(len(times))
	return waitingSum / count, turnaroundSum / count, nil
}
