package schedulers

import (
	"schedsim/internal/core"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
)

// SchedulePreemptivePriority runs preemptive priority scheduling: on every
// tick the arrived, unfinished process with the lowest priority value gets
// the processor. Ties go to the least remaining work, then the lowest pid.
func SchedulePreemptivePriority(request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
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
			if idx == -1 || higherPriority(&procs[i], &procs[idx]) {
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

	return generateResponse(AlgorithmPriority, procs, timeline), nil
}

func higherPriority(a, b *core.Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.Remaining != b.Remaining {
		return a.Remaining < b.Remaining
	}
	return a.Pid < b.Pid
}
