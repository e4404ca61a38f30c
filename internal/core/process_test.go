package core

import "testing"

func TestCloneOwnsItsState(t *testing.T) {
	procs := []Process{
		{Pid: 1, Arrival: 0, Burst: 4, Priority: 1},
		{Pid: 2, Arrival: 2, Burst: 3, Priority: 2},
	}

	run1 := Clone(procs)
	run1[0].Remaining = 0
	run1[0].Start = TickAt(0)
	run1[0].Completion = TickAt(4)

	run2 := Clone(procs)
	if run2[0].Remaining != 4 {
		t.Errorf("second clone saw Remaining = %d, want 4", run2[0].Remaining)
	}
	if run2[0].Start.Valid || run2[0].Completion.Valid {
		t.Error("second clone saw ticks recorded by the first run")
	}
	if procs[0].Start.Valid {
		t.Error("mutation of a clone leaked into the source set")
	}
}

func TestCloneResetsDirtyState(t *testing.T) {
	procs := []Process{{Pid: 1, Burst: 5, Remaining: 1, Start: TickAt(3), Completion: TickAt(9)}}
	got := Clone(procs)[0]
	if got.Remaining != 5 {
		t.Errorf("Remaining = %d, want burst 5", got.Remaining)
	}
	if got.Start.Valid || got.Completion.Valid {
		t.Error("clone kept start/completion from a previous run")
	}
}
