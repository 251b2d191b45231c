package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the engine parameters. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	// Processors is the number of CPUs. Only a single processor is modeled.
	Processors int `yaml:"processors"`
	// ContextSwitch is t_cs in ms, charged as two equal halves.
	ContextSwitch int `yaml:"context_switch"`
	// TimeSlice is the RR quantum in ms of burst time.
	TimeSlice int `yaml:"time_slice"`
	// Algorithms are run in order.
	Algorithms []string `yaml:"algorithms"`
	// ShowTables prints the Gantt chart and per-process table after each run.
	ShowTables bool `yaml:"show_tables"`
}

func DefaultConfig() Config {
	return Config{
		Processors:    1,
		ContextSwitch: 8,
		TimeSlice:     84,
		Algorithms:    []string{string(FCFS), string(SJF), string(RR)},
	}
}

// LoadConfig reads a YAML config file. Keys missing from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// validate checks that all config values are valid.
func (c Config) validate() error {
	if c.Processors != 1 {
		return fmt.Errorf("invalid processors %d: only a single processor is supported", c.Processors)
	}
	if c.ContextSwitch < 0 || c.ContextSwitch%2 != 0 {
		return fmt.Errorf("invalid context_switch %d: must be a non-negative even number of ms", c.ContextSwitch)
	}
	if c.TimeSlice <= 0 {
		return fmt.Errorf("invalid time_slice %d: must be positive", c.TimeSlice)
	}
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("invalid algorithms: at least one is required")
	}
	for _, name := range c.Algorithms {
		if _, err := ParseAlgorithm(name); err != nil {
			return err
		}
	}
	return nil
}

// halfSwitch is the cost of one switch-in or switch-out.
func (c Config) halfSwitch() int {
	return c.ContextSwitch / 2
}
