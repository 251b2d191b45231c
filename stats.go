package main

// Stats are the summary metrics of one algorithm run. Averages are rounded
// half away from zero to two decimals.
type Stats struct {
	Algorithm         Algorithm
	AvgBurstTime      float64 // over every burst of every process
	AvgWaitTime       float64 // over processes
	AvgTurnaroundTime float64 // over processes
	ContextSwitches   int
	Preemptions       int
}

// NewStats reduces a finished run. A run without processes yields zero
// averages.
func NewStats(res *Result) Stats {
	var (
		burstTime, bursts int
		wait, turnaround  int
	)
	for _, p := range res.Processes {
		burstTime += p.CPUBurstTime * p.BurstCount
		bursts += p.BurstCount
		wait += p.WaitTime
		turnaround += p.TurnaroundTime
	}

	return Stats{
		Algorithm:         res.Algorithm,
		AvgBurstTime:      roundedMean(burstTime, bursts),
		AvgWaitTime:       roundedMean(wait, len(res.Processes)),
		AvgTurnaroundTime: roundedMean(turnaround, len(res.Processes)),
		ContextSwitches:   res.ContextSwitches,
		Preemptions:       res.Preemptions,
	}
}

// roundedMean returns sum/n rounded half away from zero to hundredths, exactly.
func roundedMean(sum, n int) float64 {
	if n == 0 {
		return 0
	}
	neg := sum < 0
	if neg {
		sum = -sum
	}
	hundredths := (sum*200 + n) / (2 * n)
	if neg {
		hundredths = -hundredths
	}
	return float64(hundredths) / 100
}
