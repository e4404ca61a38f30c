package schedulers

import (
	"schedsim/internal/core"
	"schedsim/internal/requests"
)

// Algorithm names used in responses and by the /all endpoint and CLI.
const (
	AlgorithmFCFS       = "fcfs"
	AlgorithmSRTF       = "srtf"
	AlgorithmPriority   = "priority"
	AlgorithmRoundRobin = "round_robin"
)

// toProcesses maps the request jobs onto process records. Callers clone the
// result before simulating so every run owns its state exclusively.
func toProcesses(jobs []requests.Job) []core.Process {
	procs := make([]core.Process, len(jobs))
	for i, job := range jobs {
		procs[i] = core.Process{
			Pid:      job.ProcessId,
			Arrival:  job.ArrivalTime,
			Burst:    job.BurstTime,
			Priority: job.Priority,
		}
	}
	return procs
}
