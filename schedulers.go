package main

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

type Algorithm string

const (
	FCFS Algorithm = "FCFS"
	SJF  Algorithm = "SJF"
	RR   Algorithm = "RR"
)

// ParseAlgorithm accepts an algorithm name in any case.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch alg := Algorithm(strings.ToUpper(strings.TrimSpace(name))); alg {
	case FCFS, SJF, RR:
		return alg, nil
	default:
		return "", fmt.Errorf("unknown algorithm %q", name)
	}
}

type (
	// TimeSlice is one uninterrupted stretch of a process on the CPU.
	TimeSlice struct {
		PID   string
		Start int
		Stop  int
	}
	// Result is everything a finished run hands to the stats and output layers.
	Result struct {
		Algorithm       Algorithm
		Processes       []*Process // input order
		ContextSwitches int
		Preemptions     int
		Gantt           []TimeSlice
		EndTime         int
	}
)

//region Schedulers

// FCFSSchedule runs first-come first-served and returns its statistics given:
// • an output writer for the event log (and the tables, if enabled)
// • a title for the chart
// • a slice of processes
func FCFSSchedule(w io.Writer, title string, specs []ProcessSpec, cfg Config) Stats {
	return schedule(w, title, FCFS, specs, cfg)
}

// SJFSchedule runs non-preemptive shortest-job-first. A process keeps the CPU
// until its burst completes, even when a shorter burst becomes ready.
func SJFSchedule(w io.Writer, title string, specs []ProcessSpec, cfg Config) Stats {
	return schedule(w, title, SJF, specs, cfg)
}

// RRSchedule runs round-robin with cfg.TimeSlice ms of burst time per turn.
func RRSchedule(w io.Writer, title string, specs []ProcessSpec, cfg Config) Stats {
	return schedule(w, title, RR, specs, cfg)
}

func schedule(w io.Writer, title string, alg Algorithm, specs []ProcessSpec, cfg Config) Stats {
	res := NewSimulator(w, cfg).Run(alg, specs)
	stats := NewStats(res)
	if cfg.ShowTables {
		outputTitle(w, title)
		outputGantt(w, res.Gantt)
		outputSchedule(w, res, stats)
	}
	return stats
}

//endregion

type cpuPhase int

const (
	cpuIdle cpuPhase = iota
	cpuSwitchIn
	cpuRunning
	cpuSwitchOut
)

// Simulator is the single-processor, 1ms-step scheduling engine. It is not
// safe for concurrent use; Run resets all state, so one Simulator can run
// several algorithms one after the other.
type Simulator struct {
	cfg    Config
	events io.Writer
	logger *log.Entry

	alg   Algorithm
	t     int
	procs []*Process
	ready ReadyQueue

	cpu       *Process // switching in or running
	leaving   *Process // switching out
	phase     cpuPhase
	phaseLeft int // ms left of the current switch half
	sliceLeft int // RR only
	runStart  int // when cpu last started running

	terminated      int
	contextSwitches int
	preemptions     int
	gantt           []TimeSlice
}

// NewSimulator returns an engine writing its event log to events.
func NewSimulator(events io.Writer, cfg Config) *Simulator {
	return &Simulator{
		cfg:    cfg,
		events: events,
		logger: log.WithField("component", "simulator"),
	}
}

// Run simulates alg over fresh processes built from specs and runs until
// every process has terminated.
//
// Each instant t is handled in a fixed order: arrivals, I/O completions,
// then CPU transitions (which may cascade within the instant when a switch
// half is zero). Then one millisecond elapses.
func (s *Simulator) Run(alg Algorithm, specs []ProcessSpec) *Result {
	s.reset(alg, specs)
	logger := s.logger.WithField("algorithm", alg)
	logger.WithFields(log.Fields{
		"processes":      len(specs),
		"context_switch": s.cfg.ContextSwitch,
		"time_slice":     s.cfg.TimeSlice,
	}).Debug("run started")

	s.emit(fmt.Sprintf("Simulator started for %s %s", alg, s.queueTag()))
	for {
		s.admitArrivals()
		s.completeIO()
		s.stepCPU()
		if s.terminated == len(s.procs) {
			break
		}
		s.elapse()
	}
	s.emit(fmt.Sprintf("Simulator ended for %s", alg))

	logger.WithFields(log.Fields{
		"end_time":         s.t,
		"context_switches": s.contextSwitches,
		"preemptions":      s.preemptions,
	}).Debug("run finished")

	return &Result{
		Algorithm:       alg,
		Processes:       s.procs,
		ContextSwitches: s.contextSwitches,
		Preemptions:     s.preemptions,
		Gantt:           s.gantt,
		EndTime:         s.t,
	}
}

func (s *Simulator) reset(alg Algorithm, specs []ProcessSpec) {
	s.alg = alg
	s.t = 0
	s.procs = make([]*Process, len(specs))
	for i, spec := range specs {
		s.procs[i] = newProcess(spec)
	}
	s.ready = newReadyQueue(alg)
	s.cpu = nil
	s.leaving = nil
	s.phase = cpuIdle
	s.phaseLeft = 0
	s.sliceLeft = 0
	s.runStart = 0
	s.terminated = 0
	s.contextSwitches = 0
	s.preemptions = 0
	s.gantt = nil
}

// admitArrivals queues every process arriving now, in input order.
func (s *Simulator) admitArrivals() {
	for _, p := range s.procs {
		if p.State == New && p.ArrivalTime == s.t {
			s.enqueue(p)
			s.logEvent(p, "arrived")
		}
	}
}

// completeIO queues every blocked process whose I/O is done, in input order.
func (s *Simulator) completeIO() {
	for _, p := range s.procs {
		if p.State == Blocked && p.Current().Done() {
			s.wake(p)
		}
	}
}

func (s *Simulator) wake(p *Process) {
	p.finishJob()
	s.enqueue(p)
	s.logEvent(p, "completed I/O")
}

func (s *Simulator) enqueue(p *Process) {
	p.State = Ready
	s.ready.Push(p)
}

// stepCPU applies every CPU transition due at the current instant.
func (s *Simulator) stepCPU() {
	for {
		switch s.phase {
		case cpuIdle:
			if s.ready.Empty() {
				return
			}
			s.dispatch()
		case cpuSwitchIn:
			if s.phaseLeft > 0 {
				return
			}
			s.start()
		case cpuRunning:
			if !s.execute() {
				return
			}
		case cpuSwitchOut:
			if s.phaseLeft > 0 {
				return
			}
			s.finishSwitchOut()
		}
	}
}

// dispatch takes the next ready process and begins switching it in.
func (s *Simulator) dispatch() {
	p := s.ready.Pop()
	p.State = Running
	s.cpu = p
	s.contextSwitches++
	s.phase = cpuSwitchIn
	s.phaseLeft = s.cfg.halfSwitch()
}

func (s *Simulator) start() {
	p := s.cpu
	p.activate(BurstJob)
	s.phase = cpuRunning
	s.sliceLeft = s.cfg.TimeSlice
	s.runStart = s.t
	s.logEvent(p, "started using the CPU")
}

// execute checks the running burst and reports whether the CPU changed phase.
func (s *Simulator) execute() bool {
	p := s.cpu
	if p.Current().Done() {
		s.completeBurst(p)
		return true
	}
	if s.alg != RR || s.sliceLeft > 0 {
		return false
	}
	// an expired slice always preempts, even with nobody else ready
	s.preempt(p)
	return true
}

func (s *Simulator) completeBurst(p *Process) {
	s.recordSlice(p)
	p.finishJob()
	p.BurstsCompleted++
	if p.Finished() {
		s.switchOut()
		return
	}

	s.logEvent(p, fmt.Sprintf("completed a CPU burst; %d to go", p.BurstsLeft()))
	ioJob := p.activate(IOJob)
	p.State = Blocked
	s.logEvent(p, fmt.Sprintf("blocked on I/O until time %d ms", s.t+ioJob.Remaining))
	s.switchOut()
	if ioJob.Done() {
		s.wake(p)
	}
}

func (s *Simulator) preempt(p *Process) {
	s.recordSlice(p)
	p.release()
	s.preemptions++
	s.enqueue(p)
	s.logEvent(p, "preempted")
	s.switchOut()
}

// switchOut begins the trailing switch half of the process leaving the CPU.
// The process stays Running until it terminates, or is already Blocked or
// Ready in the queue.
func (s *Simulator) switchOut() {
	s.leaving = s.cpu
	s.cpu = nil
	s.phase = cpuSwitchOut
	s.phaseLeft = s.cfg.halfSwitch()
}

func (s *Simulator) finishSwitchOut() {
	if p := s.leaving; p.State == Running {
		p.State = Terminated
		p.TurnaroundTime = s.t - p.ArrivalTime
		s.terminated++
		s.logEvent(p, "terminated")
	}
	s.leaving = nil
	s.phase = cpuIdle
}

// elapse advances the clock by one millisecond. A process switching out is
// charged switch time unless its I/O is already running.
func (s *Simulator) elapse() {
	for _, p := range s.procs {
		switch p.State {
		case Ready:
			if p != s.leaving {
				p.WaitTime++
			}
		case Blocked:
			p.Current().elapse(1)
		}
	}

	switch s.phase {
	case cpuSwitchIn:
		s.cpu.SwitchTime++
		s.phaseLeft--
	case cpuSwitchOut:
		if s.leaving.State != Blocked {
			s.leaving.SwitchTime++
		}
		s.phaseLeft--
	case cpuRunning:
		s.cpu.Current().elapse(1)
		s.sliceLeft--
	}
	s.t++
}

func (s *Simulator) recordSlice(p *Process) {
	s.gantt = append(s.gantt, TimeSlice{PID: p.ID, Start: s.runStart, Stop: s.t})
}

func (s *Simulator) logEvent(p *Process, event string) {
	s.emit(fmt.Sprintf("Process %s %s %s", p.ID, event, s.queueTag()))
}

func (s *Simulator) emit(msg string) {
	_, _ = fmt.Fprintf(s.events, "time %dms: %s\n", s.t, msg)
}

func (s *Simulator) queueTag() string {
	ids := s.ready.IDs()
	if len(ids) == 0 {
		return "[Q empty]"
	}
	return "[Q " + strings.Join(ids, " ") + "]"
}
