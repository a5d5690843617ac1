package requests

type Job struct {
	ProcessID   int64 `json:"process_id"`
	ArrivalTime int64 `json:"arrival_time"`
	BurstTime   int64 `json:"burst_time"`
	Priority    int64 `json:"priority"`
}

type ScheduleRequest struct {
	Jobs []Job `json:"jobs"`
	// TimeQuantum applies to round robin only; the configured default is
	// used when omitted.
	TimeQuantum int64 `json:"time_quantum,omitempty"`
}
