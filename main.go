package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
	log "github.com/sirupsen/logrus"
)

const usage = "USAGE: cpusim [-config file] [-table] [-v] <input-file> <stats-output-file>"

var schedulers = map[Algorithm]struct {
	title string
	run   func(w io.Writer, title string, specs []ProcessSpec, cfg Config) Stats
}{
	FCFS: {"First-come, first-serve", FCFSSchedule},
	SJF:  {"Shortest-job-first", SJFSchedule},
	RR:   {"Round-robin", RRSchedule},
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	var formatErr *InputFormatError
	switch {
	case errors.Is(err, ErrInvalidArgs):
		_, _ = fmt.Fprintln(os.Stderr, "ERROR: Invalid arguments:", err)
		_, _ = fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	case errors.As(err, &formatErr):
		log.WithError(err).Fatal("invalid input file format")
	default:
		log.Fatal(err)
	}
}

// run simulates every configured algorithm over the input file, writing the
// event log to stdout and appending one report per algorithm to the stats file.
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("cpusim", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		configPath = fs.String("config", "", "YAML file overriding the engine parameters")
		tables     = fs.Bool("table", false, "print a Gantt chart and per-process table after each run")
		verbose    = fs.Bool("v", false, "enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: must give an input file and a stats output file", ErrInvalidArgs)
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			return err
		}
	}
	if *tables {
		cfg.ShowTables = true
	}
	log.Debugf("config:\n%s", pretty.Sprint(cfg))

	inputPath, statsPath := fs.Arg(0), fs.Arg(1)
	specs, err := readProcesses(inputPath)
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		log.WithError(ErrEmptyWorkload).WithField("input", inputPath).Warn("all statistics will be zero")
	}
	log.Debugf("processes:\n%s", pretty.Sprint(specs))

	out, closeOut, err := openStatsFile(statsPath)
	if err != nil {
		return err
	}
	defer closeOut()

	for i, name := range cfg.Algorithms {
		alg, err := ParseAlgorithm(name)
		if err != nil {
			return err
		}
		if i > 0 {
			_, _ = fmt.Fprintln(stdout)
		}
		sched := schedulers[alg]
		st := sched.run(stdout, sched.title, specs, cfg)
		if err := WriteReport(out, st); err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"algorithm": alg,
			"stats":     statsPath,
		}).Debug("report written")
	}
	return nil
}

func readProcesses(path string) ([]ProcessSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	specs, err := loadProcesses(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return specs, nil
}

// openStatsFile replaces any previous stats file; reports are then appended
// one run at a time.
func openStatsFile(path string) (*os.File, func(), error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, nil, fmt.Errorf("removing old stats file: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening stats file: %w", err)
	}
	closeFn := func() {
		if err := f.Close(); err != nil {
			log.WithError(err).WithField("stats", path).Error("closing stats file")
		}
	}
	return f, closeFn, nil
}
