package core

// Idle marks a timeline tick during which no process owns the processor.
// Pids are validated positive, so the marker can never collide with one.
const Idle = 0

// Timeline records the owner of the processor for every simulated tick:
// entry t holds the pid running during tick t, or Idle.
type Timeline []int

// Makespan is the number of ticks elapsed until the last completion.
func (tl Timeline) Makespan() int {
	return len(tl)
}

// IdleTicks counts the ticks during which no process ran.
func (tl Timeline) IdleTicks() int {
	n := 0
	for _, pid := range tl {
		if pid == Idle {
			n++
		}
	}
	return n
}

// ContextSwitches counts transitions away from a running process, whether to
// another process or to idle. A transition from idle into a process does not
// count, and neither does the first tick.
func (tl Timeline) ContextSwitches() int {
	switches := 0
	prev := -1
	for t, pid := range tl {
		if pid != prev {
			if t > 0 && prev != Idle {
				switches++
			}
			prev = pid
		}
	}
	return switches
}
