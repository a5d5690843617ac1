package responses

type ProcessResponse struct {
	ProcessID      int64 `json:"process_id"`
	CompletionTime int64 `json:"completion_time"`
	WaitingTime    int64 `json:"waiting_time"`
	TurnAroundTime int64 `json:"turn_around_time"`
}

type SegmentResponse struct {
	ProcessID int64 `json:"process_id"`
	Start     int64 `json:"start"`
	Stop      int64 `json:"stop"`
	Idle      bool  `json:"idle,omitempty"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	Gantt                 []SegmentResponse `json:"gantt"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	Details               []ProcessResponse `json:"details"`
}

type AllResponse struct {
	Priority   ScheduleResponse `json:"priority"`
	RoundRobin ScheduleResponse `json:"round_robin"`
}
