package scheduler

import "time"

// Config controls the audit retention sweep.
type Config struct {
	// Retention is how long audit rows are kept.
	Retention time.Duration
	// SweepInterval is how often the sweep runs.
	SweepInterval time.Duration
	// BatchSize bounds rows deleted per sweep so a backlog never holds
	// a long-running delete.
	BatchSize int
}

func DefaultConfig() Config {
	return Config{
		Retention:     90 * 24 * time.Hour,
		SweepInterval: time.Hour,
		BatchSize:     500,
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.Retention <= 0 {
		c.Retention = defaults.Retention
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = defaults.SweepInterval
	}
	if c.BatchSize <= 0 {
		c.BatchSize = defaults.BatchSize
	}
	return c
}
