package schedulers

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"schedsim/internal/requests"
)

func TestPreemptivePriority(t *testing.T) {
	request := &requests.ScheduleRequest{Jobs: []requests.Job{
		{ProcessId: 1, ArrivalTime: 0, BurstTime: 4, Priority: 2},
		{ProcessId: 2, ArrivalTime: 1, BurstTime: 3, Priority: 1},
		{ProcessId: 3, ArrivalTime: 2, BurstTime: 2, Priority: 1},
	}}

	response, err := SchedulePreemptivePriority(request)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// P2 preempts P1 at its arrival. At tick 2 P2 and P3 tie on priority
	// and remaining work, so the lower pid wins; from tick 3 P2 also has
	// less remaining. P3 runs after P2 completes, P1 last.
	wantTimeline := []int{1, 2, 2, 2, 3, 3, 1, 1, 1}
	if diff := cmp.Diff(wantTimeline, response.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}

	byPid := func(pid int) int {
		for _, d := range response.Details {
			if d.ProcessId == pid {
				return d.CompletionTime
			}
		}
		t.Fatalf("pid %d missing from details", pid)
		return 0
	}
	if got := byPid(2); got != 4 {
		t.Errorf("P2 completion = %d, want 4", got)
	}
	if got := byPid(3); got != 6 {
		t.Errorf("P3 completion = %d, want 6", got)
	}
	if got := byPid(1); got != 9 {
		t.Errorf("P1 completion = %d, want 9", got)
	}
}

func TestPreemptivePriorityBreaksPriorityTiesByRemaining(t *testing.T) {
	request := &requests.ScheduleRequest{Jobs: []requests.Job{
		{ProcessId: 1, ArrivalTime: 0, BurstTime: 5, Priority: 1},
		{ProcessId: 2, ArrivalTime: 3, BurstTime: 1, Priority: 1},
	}}

	response, err := SchedulePreemptivePriority(request)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// At tick 3 both carry priority 1, but P2's remaining 1 beats P1's
	// remaining 2, so P2 preempts.
	wantTimeline := []int{1, 1, 1, 2, 1, 1}
	if diff := cmp.Diff(wantTimeline, response.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
}
