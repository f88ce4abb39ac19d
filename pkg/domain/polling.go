package domain

import (
	"fmt"
	"time"
)

// polling interval bounds in minutes
const (
	MinPollingInterval = 1
	MaxPollingInterval = 1440
)

// PollingJob is a named, interval-driven unit of scheduled feed ingestion
type PollingJob struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Active          bool       `json:"active"`
	IntervalMinutes int        `json:"interval_minutes"`
	Filter          FeedFilter `json:"filter"`
	LastRunTime     *time.Time `json:"last_run_time,omitempty"`
	NextRunTime     *time.Time `json:"next_run_time,omitempty"` // nil iff the job is inactive
	TotalRuns       int64      `json:"total_runs"`
	SuccessfulRuns  int64      `json:"successful_runs"`
	FailedRuns      int64      `json:"failed_runs"`
	LastRunStats    RunStats   `json:"last_run_stats"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Interval returns the polling interval as a duration
func (j *PollingJob) Interval() time.Duration {
	return time.Duration(j.IntervalMinutes) * time.Minute
}

// IsDue reports whether an active job should run at the given time
func (j *PollingJob) IsDue(now time.Time) bool {
	return j.Active && j.NextRunTime != nil && !j.NextRunTime.After(now)
}

// RunTrigger tells what started a polling run
type RunTrigger string

// run triggers
const (
	TriggerScheduled RunTrigger = "scheduled"
	TriggerManual    RunTrigger = "manual"
)

// RunStats describes a single polling run
type RunStats struct {
	Trigger           RunTrigger `json:"trigger,omitempty"`
	FeedsMatched      int        `json:"feeds_matched"`
	FeedsProcessed    int        `json:"feeds_processed"`
	FeedsFailed       int        `json:"feeds_failed"`
	ArticlesFound     int        `json:"articles_found"`
	DuplicatesSkipped int        `json:"duplicates_skipped"`
	ExecutionTimeMs   int64      `json:"execution_time_ms"`
	Error             string     `json:"error,omitempty"`
}

// RunResult is what the scheduler stores after a run finished
type RunResult struct {
	Success    bool
	Stats      RunStats
	FinishedAt time.Time
}

// ValidateInterval checks polling interval bounds
func ValidateInterval(minutes int) error {
	if minutes < MinPollingInterval || minutes > MaxPollingInterval {
		return fmt.Errorf("interval %d minutes is outside %d-%d: %w", minutes, MinPollingInterval, MaxPollingInterval, ErrValidation)
	}
	return nil
}
