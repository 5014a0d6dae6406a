package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"school/internal/core/application/usecases/queries"
	"school/internal/core/domain/model/kernel"
	"school/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DefaultOrphanProfileSchedule runs the sweep every five minutes.
const DefaultOrphanProfileSchedule = "0 */5 * * * *"

type orphanProfileFinder interface {
	Handle(ctx context.Context, query queries.GetOrphanProfilesQuery) ([]queries.GetOrphanProfilesQueryResponse, error)
}

type profileDeleter interface {
	Delete(ctx context.Context, id kernel.ID) error
}

// OrphanProfileCleanupJob deletes profiles no authority person or student
// refers to. Deletes go through the profile facade so each one is audited.
type OrphanProfileCleanupJob struct {
	finder    orphanProfileFinder
	profiles  profileDeleter
	schedule  string
	batchSize uint
	cron      *cron.Cron
	logger    *slog.Logger

	mu sync.Mutex
}

// NewOrphanProfileCleanupJob creates the job. schedule is a six field cron
// expression (with seconds); empty means DefaultOrphanProfileSchedule.
func NewOrphanProfileCleanupJob(
	finder orphanProfileFinder,
	profiles profileDeleter,
	schedule string,
	batchSize uint,
	logger *slog.Logger,
) *OrphanProfileCleanupJob {
	if schedule == "" {
		schedule = DefaultOrphanProfileSchedule
	}
	return &OrphanProfileCleanupJob{
		finder:    finder,
		profiles:  profiles,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "orphan_profile_cleanup_job"),
	}
}

// RunOnce deletes one batch of orphan profiles and returns how many were
// removed. A profile that gained an owner since the query is skipped.
func (j *OrphanProfileCleanupJob) RunOnce(ctx context.Context) (int, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	orphans, err := j.finder.Handle(ctx, queries.NewGetOrphanProfilesQuery(j.batchSize))
	if err != nil {
		return 0, err
	}

	deleted := 0
	var failures error
	for _, orphan := range orphans {
		err = j.profiles.Delete(ctx, orphan.ID)
		switch {
		case err == nil:
			deleted++
		case errors.Is(err, errs.ErrBusinessRuleViolated), errors.Is(err, errs.ErrObjectNotFound):
			j.logger.DebugContext(ctx, "Orphan profile changed before deletion", "profile_id", orphan.ID, "error", err)
		default:
			failures = errors.Join(failures, err)
		}
	}
	return deleted, failures
}

// Start schedules the sweep.
func (j *OrphanProfileCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		deleted, err := j.RunOnce(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Orphan profile cleanup failed", "deleted", deleted, "error", err)
			return
		}
		if deleted > 0 {
			j.logger.InfoContext(ctx, "Orphan profiles deleted", "deleted", deleted)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Orphan profile cleanup job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running sweep to finish.
func (j *OrphanProfileCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Orphan profile cleanup job stopped")
}
