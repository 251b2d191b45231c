package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrInvalidArgs   = errors.New("invalid args")
	ErrEmptyWorkload = errors.New("no processes to simulate")
)

// InputFormatError reports a malformed field of an input record.
type InputFormatError struct {
	Line   int
	Field  string
	Value  string
	Reason string
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("line %d: %s '%s' %s", e.Line, e.Field, e.Value, e.Reason)
}

const fieldsPerRecord = 5

// loadProcesses parses pipe-delimited process records:
//
//	processId|arrivalTime|cpuBurstTime|burstCount|ioTime
//
// Lines starting with '#' and whitespace-only lines are skipped. The first
// malformed record aborts the load.
func loadProcesses(r io.Reader) ([]ProcessSpec, error) {
	var (
		specs  []ProcessSpec
		seen   = make(map[string]int)
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		spec, err := parseRecord(lineNo, strings.TrimSpace(line))
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[spec.ID]; ok {
			return nil, &InputFormatError{
				Line:   lineNo,
				Field:  "proc_id",
				Value:  spec.ID,
				Reason: fmt.Sprintf("already used on line %d", prev),
			}
		}
		seen[spec.ID] = lineNo
		specs = append(specs, spec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading processes: %w", err)
	}
	return specs, nil
}

func parseRecord(lineNo int, line string) (ProcessSpec, error) {
	fields := strings.Split(line, "|")
	if len(fields) != fieldsPerRecord {
		return ProcessSpec{}, &InputFormatError{
			Line:   lineNo,
			Field:  "record",
			Value:  line,
			Reason: fmt.Sprintf("must have %d '|'-separated fields, has %d", fieldsPerRecord, len(fields)),
		}
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	id := fields[0]
	if len(id) != 1 || id[0] < 'A' || id[0] > 'Z' {
		return ProcessSpec{}, &InputFormatError{Line: lineNo, Field: "proc_id", Value: id, Reason: "must be a capital letter"}
	}

	var (
		spec = ProcessSpec{ID: id}
		err  error
	)
	if spec.ArrivalTime, err = parseMillis(lineNo, "initial_arrival_time", fields[1]); err != nil {
		return ProcessSpec{}, err
	}
	if spec.CPUBurstTime, err = parseMillis(lineNo, "cpu_burst_time", fields[2]); err != nil {
		return ProcessSpec{}, err
	}
	if spec.BurstCount, err = parseMillis(lineNo, "num_bursts", fields[3]); err != nil {
		return ProcessSpec{}, err
	}
	if spec.BurstCount == 0 {
		return ProcessSpec{}, &InputFormatError{Line: lineNo, Field: "num_bursts", Value: fields[3], Reason: "must be at least 1"}
	}
	if spec.IOTime, err = parseMillis(lineNo, "io_time", fields[4]); err != nil {
		return ProcessSpec{}, err
	}
	return spec, nil
}

func parseMillis(lineNo int, field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, &InputFormatError{Line: lineNo, Field: field, Value: value, Reason: "must be a non-negative integer"}
	}
	return n, nil
}
