package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport(&buf, Stats{
		Algorithm:         SJF,
		AvgBurstTime:      12,
		AvgWaitTime:       13.5,
		AvgTurnaroundTime: 33.5,
		ContextSwitches:   2,
	})
	if err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	want := "Algorithm SJF\n" +
		"-- average CPU burst time: 12.00 ms\n" +
		"-- average wait time: 13.50 ms\n" +
		"-- average turnaround time: 33.50 ms\n" +
		"-- total number of context switches: 2\n" +
		"-- total number of preemptions: 0\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestWriteReport_WrapsWriteError(t *testing.T) {
	err := WriteReport(failingWriter{}, Stats{Algorithm: RR})
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
	if !strings.Contains(err.Error(), "writing RR report") {
		t.Errorf("expected algorithm in error, got %q", err)
	}
}

func TestOutputGantt(t *testing.T) {
	var buf bytes.Buffer
	outputGantt(&buf, []TimeSlice{
		{PID: "A", Start: 4, Stop: 9},
		{PID: "B", Start: 17, Stop: 20},
	})

	want := "Gantt schedule\n|   A   |   B   |\n4\t17\t20\n\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("gantt mismatch (-want +got):\n%s", diff)
	}
}

func TestOutputSchedule(t *testing.T) {
	p := newProcess(spec("A", 0, 10, 1, 0))
	p.TurnaroundTime = 18
	res := &Result{Algorithm: FCFS, Processes: []*Process{p}, ContextSwitches: 1}

	var buf bytes.Buffer
	outputSchedule(&buf, res, NewStats(res))

	out := buf.String()
	if !strings.HasPrefix(out, "Schedule table\n") {
		t.Errorf("expected table heading, got:\n%s", out)
	}
	for _, want := range []string{"TURNAROUND", "18", "SWITCHES", "1/0"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in table:\n%s", want, out)
		}
	}
}
