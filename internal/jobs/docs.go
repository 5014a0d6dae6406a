// Package jobs provides scheduled background tasks for the school service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six field expressions with
// seconds) and managed through JobManager:
//
//	cleanup := jobs.NewOrphanProfileCleanupJob(orphansHandler, facades.Profiles, "", 100, logger)
//	jobManager := jobs.NewJobManager(cleanup)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// OrphanProfileCleanupJob deletes profiles left without an authority person
// or student, for example after a failed compensation. Profiles that gained
// an owner between the query and the delete are skipped.
package jobs
