package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// ScheduleOff disables a job.
const ScheduleOff = "off"

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	consistencyAuditJob *ConsistencyAuditJob
	logger              *slog.Logger
}

// NewJobManager creates a new job manager with all required jobs.
// An audit schedule of ScheduleOff leaves the audit job out.
func NewJobManager(
	auditHandler InconsistentOrdersFinder,
	auditSchedule string,
	registerer prometheus.Registerer,
	logger *slog.Logger,
) (*JobManager, error) {
	jm := &JobManager{logger: logger.With("component", "job_manager")}

	if auditSchedule == ScheduleOff {
		return jm, nil
	}

	auditJob, err := NewConsistencyAuditJob(auditHandler, auditSchedule, registerer, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create consistency audit job: %w", err)
	}
	jm.consistencyAuditJob = auditJob

	return jm, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.consistencyAuditJob == nil {
		jm.logger.InfoContext(context.Background(), "Consistency audit job disabled")
		return nil
	}

	if err := jm.consistencyAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start consistency audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.consistencyAuditJob != nil {
		jm.consistencyAuditJob.Stop()
	}
}
