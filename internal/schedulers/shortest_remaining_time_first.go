package schedulers

import (
	"schedsim/internal/core"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
)

// ScheduleShortestRemainingTimeFirst runs preemptive SJF: on every tick the
// arrived, unfinished process with the least remaining work gets the
// processor. Ties go to the lowest pid.
func ScheduleShortestRemainingTimeFirst(request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	if err := request.Validate(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	procs := core.Clone(toProcesses(request.Jobs))

	var timeline core.Timeline
	cur, completed := 0, 0
	for completed < len(procs) {
		idx := -1
		for i := range procs {
			if procs[i].Arrival > cur || procs[i].Remaining == 0 {
				continue
			}
			if idx == -1 ||
				procs[i].Remaining < procs[idx].Remaining ||
				(procs[i].Remaining == procs[idx].Remaining && procs[i].Pid < procs[idx].Pid) {
				idx = i
			}
		}
		if idx == -1 {
			timeline = append(timeline, core.Idle)
			cur++
			continue
		}

		p := &procs[idx]
		if !p.Start.Valid {
			p.Start = core.TickAt(cur)
		}
		timeline = append(timeline, p.Pid)
		p.Remaining--
		cur++
		if p.Remaining == 0 {
			p.Completion = core.TickAt(cur)
			completed++
		}
	}

	return generateResponse(AlgorithmSRTF, procs, timeline), nil
}
