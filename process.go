package main

import "fmt"

type JobKind int

const (
	BurstJob JobKind = iota
	IOJob
)

func (k JobKind) String() string {
	switch k {
	case BurstJob:
		return "burst"
	case IOJob:
		return "io"
	default:
		return "unknown"
	}
}

// Job is one CPU burst or one I/O burst of a process.
type Job struct {
	Kind      JobKind
	Duration  int
	Remaining int
}

// Done reports whether the job has no time left.
func (j *Job) Done() bool {
	return j.Remaining == 0
}

// elapse consumes ms of the job, never going below zero.
func (j *Job) elapse(ms int) {
	j.Remaining -= ms
	if j.Remaining < 0 {
		j.Remaining = 0
	}
}

type ProcessState int

const (
	New ProcessState = iota
	Ready
	Running
	Blocked
	Terminated
)

func (s ProcessState) String() string {
	switch s {
	case New:
		return "new"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Blocked:
		return "blocked"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// ProcessSpec is one validated input record. It is never mutated; every
// run builds its own Process values from it.
type ProcessSpec struct {
	ID           string
	ArrivalTime  int
	CPUBurstTime int
	BurstCount   int
	IOTime       int
}

// Work is the least time the process needs from arrival to termination.
func (ps ProcessSpec) Work() int {
	return ps.CPUBurstTime*ps.BurstCount + ps.IOTime*(ps.BurstCount-1)
}

// Process is the per-run state of a simulated process.
type Process struct {
	ProcessSpec
	State ProcessState

	WaitTime        int // ms spent in the ready queue
	TurnaroundTime  int // set on termination
	BurstsCompleted int
	SwitchTime      int // context-switch ms charged to this process

	jobs   []Job // Burst, IO, Burst, ... , Burst
	next   int   // index of the pending job
	active int   // equals next while that job is active, -1 otherwise
}

func newProcess(spec ProcessSpec) *Process {
	jobs := make([]Job, 0, 2*spec.BurstCount)
	for i := 0; i < spec.BurstCount; i++ {
		if i > 0 {
			jobs = append(jobs, Job{Kind: IOJob, Duration: spec.IOTime, Remaining: spec.IOTime})
		}
		jobs = append(jobs, Job{Kind: BurstJob, Duration: spec.CPUBurstTime, Remaining: spec.CPUBurstTime})
	}
	return &Process{
		ProcessSpec: spec,
		State:       New,
		jobs:        jobs,
		active:      -1,
	}
}

// Current returns the active job, or nil.
func (p *Process) Current() *Job {
	if p.active < 0 {
		return nil
	}
	return &p.jobs[p.active]
}

// NextJob returns the pending job, which is also the active one while a job
// is active, or nil once every job is finished.
func (p *Process) NextJob() *Job {
	if p.next >= len(p.jobs) {
		return nil
	}
	return &p.jobs[p.next]
}

// activate makes the pending job active. It panics if that job is not of the
// wanted kind, which would mean the engine broke the Burst/IO alternation.
func (p *Process) activate(kind JobKind) *Job {
	j := p.NextJob()
	if j == nil || j.Kind != kind {
		panic(fmt.Sprintf("process %s: pending job is not %v (cursor %d of %d)", p.ID, kind, p.next, len(p.jobs)))
	}
	p.active = p.next
	return j
}

// finishJob moves the cursor past the active job.
func (p *Process) finishJob() {
	if j := p.Current(); j == nil || !j.Done() {
		panic(fmt.Sprintf("process %s: finishing a job that is not done", p.ID))
	}
	p.next++
	p.active = -1
}

// release deactivates the active job without finishing it; the job stays
// pending and resumes on the next activate.
func (p *Process) release() {
	p.active = -1
}

// BurstsLeft is the number of CPU bursts not yet completed.
func (p *Process) BurstsLeft() int {
	return p.BurstCount - p.BurstsCompleted
}

// Finished reports whether every burst is done and no job is pending.
func (p *Process) Finished() bool {
	return p.BurstsCompleted == p.BurstCount && p.NextJob() == nil
}
