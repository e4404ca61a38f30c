package core

// Tick is an instant on the simulated clock. The zero value means the
// instant has not been recorded yet; Valid reports whether it has.
type Tick struct {
	At    int  `json:"at"`
	Valid bool `json:"valid"`
}

// TickAt records an instant.
func TickAt(t int) Tick {
	return Tick{At: t, Valid: true}
}

// Process is one simulated process: the immutable descriptor (Pid, Arrival,
// Burst, Priority) plus the state a single scheduler run mutates.
type Process struct {
	Pid       int
	Arrival   int
	Burst     int
	Priority  int // lower value = higher priority
	Remaining int

	Start      Tick // first dispatch, set at most once per run
	Completion Tick // set when Remaining reaches 0
}

// Reset restores the pre-run state.
func (p *Process) Reset() {
	p.Remaining = p.Burst
	p.Start = Tick{}
	p.Completion = Tick{}
}

// Clone returns an independently owned, freshly reset copy of procs. Each
// scheduler run mutates its own clone, so state from one algorithm never
// leaks into another.
func Clone(procs []Process) []Process {
	out := make([]Process, len(procs))
	copy(out, procs)
	for i := range out {
		out[i].Reset()
	}
	return out
}
