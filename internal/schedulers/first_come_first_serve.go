package schedulers

import (
	"sort"

	"schedsim/internal/core"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
)

// ScheduleFirstComeFirstServe runs the non-preemptive FCFS policy: processes
// are served in (arrival, pid) order, each to completion, with idle ticks
// filling any gap before the next arrival.
func ScheduleFirstComeFirstServe(request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	if err := request.Validate(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	procs := core.Clone(toProcesses(request.Jobs))
	sort.SliceStable(procs, func(i, j int) bool {
		if procs[i].Arrival != procs[j].Arrival {
			return procs[i].Arrival < procs[j].Arrival
		}
		return procs[i].Pid < procs[j].Pid
	})

	var timeline core.Timeline
	cur := 0
	for i := range procs {
		p := &procs[i]
		for cur < p.Arrival {
			timeline = append(timeline, core.Idle)
			cur++
		}
		p.Start = core.TickAt(cur)
		for t := 0; t < p.Burst; t++ {
			timeline = append(timeline, p.Pid)
			p.Remaining--
			cur++
		}
		p.Completion = core.TickAt(cur)
	}

	return generateResponse(AlgorithmFCFS, procs, timeline), nil
}
