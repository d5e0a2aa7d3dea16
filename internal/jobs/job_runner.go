package jobs

import (
	"lendify-backend/internal/config"
	"lendify-backend/internal/logger"
	"lendify-backend/internal/repository"
)

// JobRunner coordinates the scheduled maintenance jobs. Jobs only copy
// the datastore file or log findings; they never mutate the store, so
// the API server's semantics are unaffected by the schedule.
type JobRunner struct {
	store  repository.StoreRepository
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store repository.StoreRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:  store,
		config: cfg,
	}
}

// Config exposes the runner's configuration to the scheduler
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

// RunAllJobs runs every job once (for manual execution)
func (jr *JobRunner) RunAllJobs() {
	jr.BackupStore()
	jr.ReportOverdueCheckouts()
}
