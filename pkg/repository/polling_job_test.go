package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newswire/pkg/domain"
)

func TestPollingJobRepository_Create(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	next := time.Now().Add(30 * time.Minute)
	job := &domain.PollingJob{Name: "default", Active: true, IntervalMinutes: 30, NextRunTime: &next,
		Filter: domain.FeedFilter{Categories: []string{"world"}, FeedIDs: []int64{1, 2}}}
	require.NoError(t, repos.PollingJob.CreateJob(ctx, job))
	assert.NotZero(t, job.ID)

	got, err := repos.PollingJob.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "default", got.Name)
	assert.True(t, got.Active)
	assert.Equal(t, job.Filter, got.Filter)
	require.NotNil(t, got.NextRunTime)
	assert.WithinDuration(t, next, *got.NextRunTime, time.Millisecond)
	assert.Nil(t, got.LastRunTime)
	assert.Equal(t, domain.RunStats{}, got.LastRunStats)

	byName, err := repos.PollingJob.GetJobByName(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, job.ID, byName.ID)

	tbl := []struct {
		name string
		job  domain.PollingJob
		err  error
	}{
		{"duplicate name", domain.PollingJob{Name: "default", IntervalMinutes: 5}, domain.ErrConflict},
		{"empty name", domain.PollingJob{IntervalMinutes: 5}, domain.ErrValidation},
		{"interval too small", domain.PollingJob{Name: "a", IntervalMinutes: 0}, domain.ErrValidation},
		{"interval too big", domain.PollingJob{Name: "b", IntervalMinutes: 1441}, domain.ErrValidation},
		{"active without next run", domain.PollingJob{Name: "c", IntervalMinutes: 5, Active: true}, domain.ErrValidation},
		{"inactive with next run", domain.PollingJob{Name: "d", IntervalMinutes: 5, NextRunTime: &next}, domain.ErrValidation},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			j := tt.job
			require.ErrorIs(t, repos.PollingJob.CreateJob(ctx, &j), tt.err)
		})
	}

	t.Run("check constraint guards invariant", func(t *testing.T) {
		_, err := repos.DB.Exec("UPDATE polling_jobs SET next_run_time = NULL WHERE id = ?", job.ID)
		require.Error(t, err)
		_, err = repos.DB.Exec("UPDATE polling_jobs SET interval_minutes = 0 WHERE id = ?", job.ID)
		require.Error(t, err)
	})

	_, err = repos.PollingJob.GetJob(ctx, 999)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPollingJobRepository_ListDueJobs(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	now := time.Now().UTC()

	mk := func(name string, active bool, next time.Time) int64 {
		j := &domain.PollingJob{Name: name, Active: active, IntervalMinutes: 10}
		if active {
			j.NextRunTime = &next
		}
		require.NoError(t, repos.PollingJob.CreateJob(ctx, j))
		return j.ID
	}
	past := mk("past", true, now.Add(-time.Minute))
	exact := mk("exact", true, now)
	mk("future", true, now.Add(time.Minute))
	mk("inactive", false, time.Time{})

	due, err := repos.PollingJob.ListDueJobs(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, past, due[0].ID)
	assert.Equal(t, exact, due[1].ID)

	all, err := repos.PollingJob.ListJobs(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestPollingJobRepository_UpdateSchedule(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	job := &domain.PollingJob{Name: "j", IntervalMinutes: 15}
	require.NoError(t, repos.PollingJob.CreateJob(ctx, job))

	start := time.Now().UTC()
	updated, err := repos.PollingJob.UpdateSchedule(ctx, job.ID, func(j *domain.PollingJob) error {
		j.Active = true
		next := start.Add(j.Interval())
		j.NextRunTime = &next
		return nil
	})
	require.NoError(t, err)
	assert.True(t, updated.Active)

	stored, err := repos.PollingJob.GetJob(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.NextRunTime)
	assert.WithinDuration(t, start.Add(15*time.Minute), *stored.NextRunTime, time.Millisecond)

	t.Run("deactivate clears next run", func(t *testing.T) {
		_, err := repos.PollingJob.UpdateSchedule(ctx, job.ID, func(j *domain.PollingJob) error {
			j.Active = false
			return nil
		})
		require.NoError(t, err)
		stored, err := repos.PollingJob.GetJob(ctx, job.ID)
		require.NoError(t, err)
		assert.False(t, stored.Active)
		assert.Nil(t, stored.NextRunTime)
	})

	t.Run("invalid interval rejected", func(t *testing.T) {
		_, err := repos.PollingJob.UpdateSchedule(ctx, job.ID, func(j *domain.PollingJob) error {
			j.IntervalMinutes = 2000
			return nil
		})
		require.ErrorIs(t, err, domain.ErrValidation)
		stored, err := repos.PollingJob.GetJob(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, 15, stored.IntervalMinutes)
	})

	t.Run("callback error aborts", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := repos.PollingJob.UpdateSchedule(ctx, job.ID, func(j *domain.PollingJob) error { return boom })
		require.ErrorIs(t, err, boom)
	})

	t.Run("unknown job", func(t *testing.T) {
		_, err := repos.PollingJob.UpdateSchedule(ctx, 999, func(j *domain.PollingJob) error { return nil })
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPollingJobRepository_RecordRun(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	next := time.Now().Add(time.Hour)
	active := &domain.PollingJob{Name: "active", Active: true, IntervalMinutes: 20, NextRunTime: &next}
	require.NoError(t, repos.PollingJob.CreateJob(ctx, active))
	inactive := &domain.PollingJob{Name: "inactive", IntervalMinutes: 20}
	require.NoError(t, repos.PollingJob.CreateJob(ctx, inactive))

	finished := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	stats := domain.RunStats{Trigger: domain.TriggerScheduled, FeedsMatched: 3, FeedsProcessed: 3, ArticlesFound: 7, ExecutionTimeMs: 1200}

	job, err := repos.PollingJob.RecordRun(ctx, active.ID, domain.RunResult{Success: true, Stats: stats, FinishedAt: finished})
	require.NoError(t, err)
	assert.Equal(t, int64(1), job.TotalRuns)
	assert.Equal(t, int64(1), job.SuccessfulRuns)
	assert.Equal(t, int64(0), job.FailedRuns)
	assert.Equal(t, stats, job.LastRunStats)
	require.NotNil(t, job.LastRunTime)
	assert.True(t, finished.Equal(*job.LastRunTime))
	require.NotNil(t, job.NextRunTime)
	assert.True(t, finished.Add(20*time.Minute).Equal(*job.NextRunTime))

	job, err = repos.PollingJob.RecordRun(ctx, active.ID, domain.RunResult{Success: false, Stats: domain.RunStats{Error: "no feeds"}, FinishedAt: finished})
	require.NoError(t, err)
	assert.Equal(t, int64(2), job.TotalRuns)
	assert.Equal(t, int64(1), job.FailedRuns)
	assert.Equal(t, "no feeds", job.LastRunStats.Error)

	// manual run of an inactive job keeps it unscheduled
	job, err = repos.PollingJob.RecordRun(ctx, inactive.ID, domain.RunResult{Success: true, FinishedAt: finished})
	require.NoError(t, err)
	assert.Equal(t, int64(1), job.TotalRuns)
	assert.Nil(t, job.NextRunTime)

	_, err = repos.PollingJob.RecordRun(ctx, 999, domain.RunResult{Success: true})
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repos.PollingJob.DeleteJob(ctx, inactive.ID))
	require.ErrorIs(t, repos.PollingJob.DeleteJob(ctx, inactive.ID), domain.ErrNotFound)
}
