package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// WriteReport writes the summary block of one run.
func WriteReport(w io.Writer, st Stats) error {
	_, err := fmt.Fprintf(w,
		"Algorithm %s\n"+
			"-- average CPU burst time: %.2f ms\n"+
			"-- average wait time: %.2f ms\n"+
			"-- average turnaround time: %.2f ms\n"+
			"-- total number of context switches: %d\n"+
			"-- total number of preemptions: %d\n",
		st.Algorithm,
		st.AvgBurstTime,
		st.AvgWaitTime,
		st.AvgTurnaroundTime,
		st.ContextSwitches,
		st.Preemptions,
	)
	if err != nil {
		return fmt.Errorf("writing %s report: %w", st.Algorithm, err)
	}
	return nil
}

//region Output helpers

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		pid := gantt[i].PID
		padding := strings.Repeat(" ", (8-len(pid))/2)
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
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

func outputSchedule(w io.Writer, res *Result, st Stats) {
	rows := make([][]string, len(res.Processes))
	for i, p := range res.Processes {
		rows[i] = []string{
			p.ID,
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.CPUBurstTime),
			fmt.Sprint(p.BurstCount),
			fmt.Sprint(p.IOTime),
			fmt.Sprint(p.WaitTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.ArrivalTime + p.TurnaroundTime),
		}
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Bursts", "I/O", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", st.AvgWaitTime),
		fmt.Sprintf("Average\n%.2f", st.AvgTurnaroundTime),
		fmt.Sprintf("Switches\n%d/%d", st.ContextSwitches, st.Preemptions)})
	table.Render()
}

//endregion
