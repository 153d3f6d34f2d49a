package jobs

import (
	"context"
	"log/slog"
)

// Job is a background task with a cron lifecycle.
type Job interface {
	Start() error
	Stop()
}

// JobManager starts and stops the service's background jobs as one unit.
type JobManager struct {
	jobs   []Job
	logger *slog.Logger
}

// NewJobManager creates a manager over the given jobs.
func NewJobManager(logger *slog.Logger, jobs ...Job) *JobManager {
	return &JobManager{
		jobs:   jobs,
		logger: logger.With("component", "job_manager"),
	}
}

// StartAll starts every job. If one fails to start, the jobs already running
// are stopped again and the error is returned.
func (m *JobManager) StartAll() error {
	for i, job := range m.jobs {
		if err := job.Start(); err != nil {
			for _, started := range m.jobs[:i] {
				started.Stop()
			}
			return err
		}
	}

	m.logger.InfoContext(context.Background(), "All background jobs started",
		"count", len(m.jobs))
	return nil
}

// StopAll stops every job.
func (m *JobManager) StopAll() {
	for _, job := range m.jobs {
		job.Stop()
	}
	m.logger.InfoContext(context.Background(), "All background jobs stopped")
}
