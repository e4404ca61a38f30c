package responses

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	Priority       int `json:"priority"`
	StartTime      int `json:"start_time"`
	CompletionTime int `json:"completion_time"`
	WaitingTime    int `json:"waiting_time"`
	TurnAroundTime int `json:"turn_around_time"`
	ResponseTime   int `json:"response_time"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	Timeline              []int             `json:"timeline"`
	Makespan              int               `json:"makespan"`
	ContextSwitches       int               `json:"context_switches"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	Details               []ProcessResponse `json:"details"`
}
