package schedulers

import (
	"log"

	"schedsim/internal/core"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
)

// ScheduleRoundRobin runs the round robin policy with the request's time
// quantum. Arrivals are re-scanned after every executed tick, not just at
// slice boundaries, so a process arriving mid-slice enters the ready queue
// ahead of the re-queued incumbent.
func ScheduleRoundRobin(request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	if err := request.Validate(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	if err := request.ValidateQuantum(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	log.Println("running roundRobin algorithm with timeQuantum =", request.TimeQuantum)

	procs := core.Clone(toProcesses(request.Jobs))
	var (
		timeline core.Timeline
		ready    []int
		queued   = make([]bool, len(procs))
	)
	cur, completed := 0, 0

	enqueueArrivals := func() {
		for i := range procs {
			if !queued[i] && procs[i].Arrival <= cur && procs[i].Remaining > 0 {
				ready = append(ready, i)
				queued[i] = true
			}
		}
	}

	for completed < len(procs) {
		enqueueArrivals()
		if len(ready) == 0 {
			timeline = append(timeline, core.Idle)
			cur++
			continue
		}

		idx := ready[0]
		ready = ready[1:]
		p := &procs[idx]
		if !p.Start.Valid {
			p.Start = core.TickAt(cur)
		}

		slice := request.TimeQuantum
		if p.Remaining < slice {
			slice = p.Remaining
		}
		for t := 0; t < slice; t++ {
			timeline = append(timeline, p.Pid)
			p.Remaining--
			cur++
			enqueueArrivals()
		}

		if p.Remaining > 0 {
			ready = append(ready, idx)
		} else {
			p.Completion = core.TickAt(cur)
			completed++
		}
	}

	return generateResponse(AlgorithmRoundRobin, procs, timeline), nil
}
