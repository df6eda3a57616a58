package jobs

import (
	"context"
	"time"

	"jobboard-backend/internal/config"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/repository/postgres"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store  *postgres.Store
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store *postgres.Store, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:  store,
		config: cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// CloseExpiredJobs moves OPEN postings whose deadline has passed to CLOSED so
// they stop accepting applications
func (jr *JobRunner) CloseExpiredJobs() {
	jr.runWithRecovery("CloseExpiredJobs", func() {
		ctx := context.Background()

		count, err := jr.store.JobRepository.CloseExpired(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to close expired job postings", "error", err)
			return
		}

		logger.Info("Closed expired job postings", "count", count)
	})
}
