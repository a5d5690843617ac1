// Package report renders simulation results as Gantt strips and timing
// tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"schedsim/internal/sched"
)

// Render writes a titled Gantt chart and schedule table for one simulation
// run. Processes are listed in their input order.
func Render(w io.Writer, title string, processes []sched.Process, res *sched.Result) {
	outputTitle(w, title)
	outputGantt(w, res.Gantt)
	outputSchedule(w, processes, res)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []sched.TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		label := segmentLabel(gantt[i].PID)
		padding := strings.Repeat(" ", (8-len(label))/2)
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func segmentLabel(pid int64) string {
	if pid == sched.IdlePID {
		return "IDLE"
	}
	return fmt.Sprint(pid)
}

func outputSchedule(w io.Writer, processes []sched.Process, res *sched.Result) {
	rows := make([][]string, len(processes))
	for i := range processes {
		times := res.Times[processes[i].PID]
		rows[i] = []string{
			fmt.Sprint(processes[i].PID),
			fmt.Sprint(processes[i].Priority),
			fmt.Sprint(processes[i].BurstDuration),
			fmt.Sprint(processes[i].ArrivalTime),
			fmt.Sprint(times.Waiting),
			fmt.Sprint(times.Turnaround),
			fmt.Sprint(times.Completion),
		}
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", res.AvgWaiting),
		fmt.Sprintf("Average\n%.2f", res.AvgTurnaround),
		""})
	table.Render()
}
