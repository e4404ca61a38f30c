package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"schedsim/internal/core"
	"schedsim/internal/responses"
)

var (
	titleColor = color.New(color.Bold, color.FgCyan).SprintFunc()
	idleColor  = color.New(color.Faint).SprintFunc()
)

// Report renders one algorithm's full report: banner, Gantt chart,
// per-process table, aggregate summary.
func Report(w io.Writer, title string, r responses.ScheduleResponse) {
	Title(w, title)
	Gantt(w, r.Timeline)
	Schedule(w, r)
	Summary(w, r)
}

func Title(w io.Writer, title string) {
	rule := strings.Repeat("-", len(title)+8)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "   ", titleColor(title))
	fmt.Fprintln(w, rule)
}

// Gantt renders the tick-by-tick ownership chart with a time ruler under it.
func Gantt(w io.Writer, timeline []int) {
	fmt.Fprintln(w, "Gantt chart:")
	fmt.Fprint(w, "|")
	for _, pid := range timeline {
		if pid == core.Idle {
			fmt.Fprint(w, idleColor(" Idle"), " |")
		} else {
			fmt.Fprintf(w, " P%-3d |", pid)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, "0")
	for t := range timeline {
		fmt.Fprintf(w, "%7d", t+1)
	}
	fmt.Fprintf(w, "\n\n")
}

// Schedule renders the per-process metrics table with average footers.
func Schedule(w io.Writer, r responses.ScheduleResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Arrival", "Burst", "Start", "Exit", "Wait", "Turnaround", "Response"})
	for _, d := range r.Details {
		table.Append([]string{
			fmt.Sprintf("P%d", d.ProcessId),
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.StartTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.ResponseTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", r.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", r.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", r.AverageResponseTime)})
	table.Render()
}

// Summary prints the aggregate metrics below the table.
func Summary(w io.Writer, r responses.ScheduleResponse) {
	fmt.Fprintf(w, "Context switches : %d\n", r.ContextSwitches)
	fmt.Fprintf(w, "Throughput       : %.3f proc/tick\n", r.CpuThroughput)
	fmt.Fprintf(w, "CPU utilization  : %.3f %%\n", r.CpuUtilization)
	fmt.Fprintln(w)
}
