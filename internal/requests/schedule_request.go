package requests

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput rejects a request with zero jobs.
	ErrEmptyInput = errors.New("empty process set")
	// ErrInvalidRecord rejects a job with a non-positive pid or burst,
	// a negative arrival, or a duplicate pid.
	ErrInvalidRecord = errors.New("invalid process record")
	// ErrInvalidQuantum rejects a round robin run with a non-positive
	// time quantum.
	ErrInvalidQuantum = errors.New("invalid time quantum")
)

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}

type ScheduleRequest struct {
	Jobs []Job `json:"jobs"`
	// TimeQuantum is only consulted by round robin.
	TimeQuantum int `json:"time_quantum,omitempty"`
}

// Validate rejects requests the simulators must never see. The schedulers
// assume validated input and do not re-check while running.
func (r *ScheduleRequest) Validate() error {
	if len(r.Jobs) == 0 {
		return ErrEmptyInput
	}
	seen := make(map[int]struct{}, len(r.Jobs))
	for _, job := range r.Jobs {
		if job.ProcessId <= 0 {
			return fmt.Errorf("%w: pid %d is not positive", ErrInvalidRecord, job.ProcessId)
		}
		if _, dup := seen[job.ProcessId]; dup {
			return fmt.Errorf("%w: duplicate pid %d", ErrInvalidRecord, job.ProcessId)
		}
		seen[job.ProcessId] = struct{}{}
		if job.ArrivalTime < 0 {
			return fmt.Errorf("%w: pid %d has negative arrival %d", ErrInvalidRecord, job.ProcessId, job.ArrivalTime)
		}
		if job.BurstTime <= 0 {
			return fmt.Errorf("%w: pid %d has non-positive burst %d", ErrInvalidRecord, job.ProcessId, job.BurstTime)
		}
	}
	return nil
}

// ValidateQuantum additionally checks the round robin slice length.
func (r *ScheduleRequest) ValidateQuantum() error {
	if r.TimeQuantum <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantum, r.TimeQuantum)
	}
	return nil
}
