package sched

// IdlePID marks Gantt segments where the CPU had no ready process.
const IdlePID int64 = -1

// TimeSlice is one contiguous execution segment of the Gantt timeline.
type TimeSlice struct {
	PID   int64
	Start int64
	Stop  int64
}

// timeline accumulates execution segments in time order. An append that
// continues the previous segment of the same pid is coalesced into it, and
// zero-length appends are dropped, so an exact-quantum completion never
// leaves an empty slice behind.
type timeline struct {
	segments []TimeSlice
}

func (t *timeline) record(pid, start, stop int64) {
	if start >= stop {
		return
	}
	if n := len(t.segments); n > 0 {
		last := &t.segments[n-1]
		if last.PID == pid && last.Stop == start {
			last.Stop = stop
			return
		}
	}
	t.segments = append(t.segments, TimeSlice{PID: pid, Start: start, Stop: stop})
}

func (t *timeline) slices() []TimeSlice {
	out := make([]TimeSlice, len(t.segments))
	copy(out, t.segments)
	return out
}
