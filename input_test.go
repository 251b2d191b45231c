package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadProcesses(t *testing.T) {
	input := `# id|arrival|burst|bursts|io
A|0|168|5|287

B|0|385|1|0

# late arrival
 C | 190 | 97 | 5 | 2499
`
	specs, err := loadProcesses(strings.NewReader(input))
	if err != nil {
		t.Fatalf("loadProcesses: %v", err)
	}

	want := []ProcessSpec{
		{ID: "A", ArrivalTime: 0, CPUBurstTime: 168, BurstCount: 5, IOTime: 287},
		{ID: "B", ArrivalTime: 0, CPUBurstTime: 385, BurstCount: 1, IOTime: 0},
		{ID: "C", ArrivalTime: 190, CPUBurstTime: 97, BurstCount: 5, IOTime: 2499},
	}
	if diff := cmp.Diff(want, specs); diff != "" {
		t.Errorf("specs mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadProcesses_Empty(t *testing.T) {
	specs, err := loadProcesses(strings.NewReader("# nothing here\n\n  \n"))
	if err != nil {
		t.Fatalf("loadProcesses: %v", err)
	}
	if len(specs) != 0 {
		t.Errorf("expected no processes, got %d", len(specs))
	}
}

func TestLoadProcesses_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  InputFormatError
	}{
		{
			name:  "lowercase id",
			input: "a|0|10|1|0",
			want:  InputFormatError{Line: 1, Field: "proc_id", Value: "a", Reason: "must be a capital letter"},
		},
		{
			name:  "long id",
			input: "AB|0|10|1|0",
			want:  InputFormatError{Line: 1, Field: "proc_id", Value: "AB", Reason: "must be a capital letter"},
		},
		{
			name:  "digit id",
			input: "# header\n1|0|10|1|0",
			want:  InputFormatError{Line: 2, Field: "proc_id", Value: "1", Reason: "must be a capital letter"},
		},
		{
			name:  "non-integer arrival",
			input: "A|soon|10|1|0",
			want:  InputFormatError{Line: 1, Field: "initial_arrival_time", Value: "soon", Reason: "must be a non-negative integer"},
		},
		{
			name:  "negative burst",
			input: "A|0|-10|1|0",
			want:  InputFormatError{Line: 1, Field: "cpu_burst_time", Value: "-10", Reason: "must be a non-negative integer"},
		},
		{
			name:  "fractional io",
			input: "A|0|10|2|1.5",
			want:  InputFormatError{Line: 1, Field: "io_time", Value: "1.5", Reason: "must be a non-negative integer"},
		},
		{
			name:  "zero bursts",
			input: "A|0|10|0|0",
			want:  InputFormatError{Line: 1, Field: "num_bursts", Value: "0", Reason: "must be at least 1"},
		},
		{
			name:  "missing field",
			input: "A|0|10|1",
			want:  InputFormatError{Line: 1, Field: "record", Value: "A|0|10|1", Reason: "must have 5 '|'-separated fields, has 4"},
		},
		{
			name:  "duplicate id",
			input: "A|0|10|1|0\nB|0|10|1|0\nA|5|10|1|0",
			want:  InputFormatError{Line: 3, Field: "proc_id", Value: "A", Reason: "already used on line 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadProcesses(strings.NewReader(tt.input))
			var got *InputFormatError
			if !errors.As(err, &got) {
				t.Fatalf("expected *InputFormatError, got %v", err)
			}
			if diff := cmp.Diff(tt.want, *got); diff != "" {
				t.Errorf("error mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInputFormatError_Message(t *testing.T) {
	err := &InputFormatError{Line: 4, Field: "cpu_burst_time", Value: "x", Reason: "must be a non-negative integer"}
	want := "line 4: cpu_burst_time 'x' must be a non-negative integer"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
