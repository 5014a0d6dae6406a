package jobs

import (
	"fmt"
)

type job interface {
	Start() error
	Stop()
}

// JobManager starts and stops the scheduled jobs as a unit.
type JobManager struct {
	jobs  []job
	names []string
}

// NewJobManager creates a manager for the orphan profile sweep.
func NewJobManager(orphanProfileCleanup *OrphanProfileCleanupJob) *JobManager {
	return &JobManager{
		jobs:  []job{orphanProfileCleanup},
		names: []string{"orphan profile cleanup"},
	}
}

// StartAll starts every job. On failure the jobs already started are stopped.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", jm.names[i], err)
		}
	}
	return nil
}

// StopAll stops every job gracefully.
func (jm *JobManager) StopAll() {
	for _, j := range jm.jobs {
		j.Stop()
	}
}
