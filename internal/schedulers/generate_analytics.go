package schedulers

import (
	"sort"

	"schedsim/internal/core"
	"schedsim/internal/responses"
	"schedsim/internal/util"
)

// generateResponse derives the per-process and aggregate metrics from a
// finished run. Every process must carry valid start and completion ticks.
// Details are reported in pid order regardless of dispatch order.
func generateResponse(algorithm string, procs []core.Process, timeline core.Timeline) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, len(procs))
	totalBurst := 0
	completed := 0
	for i, p := range procs {
		turnAround := p.Completion.At - p.Arrival
		proccessDetails[i] = responses.ProcessResponse{
			ProcessId:      p.Pid,
			ArrivalTime:    p.Arrival,
			BurstTime:      p.Burst,
			Priority:       p.Priority,
			StartTime:      p.Start.At,
			CompletionTime: p.Completion.At,
			TurnAroundTime: turnAround,
			WaitingTime:    turnAround - p.Burst,
			ResponseTime:   p.Start.At - p.Arrival,
		}
		totalBurst += p.Burst
		if p.Completion.Valid {
			completed++
		}
	}
	sort.Slice(proccessDetails, func(i, j int) bool {
		return proccessDetails[i].ProcessId < proccessDetails[j].ProcessId
	})

	averageWaitingTime, averageTurnAroundTime, averageResponseTime := util.CalculateAverage(proccessDetails)
	makespan := timeline.Makespan()

	return responses.ScheduleResponse{
		Algorithm:             algorithm,
		Timeline:              []int(timeline),
		Makespan:              makespan,
		ContextSwitches:       timeline.ContextSwitches(),
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		AverageResponseTime:   averageResponseTime,
		CpuThroughput:         float64(completed) / float64(makespan),
		CpuUtilization:        float64(totalBurst) / float64(makespan) * 100,
		Details:               proccessDetails,
	}
}
