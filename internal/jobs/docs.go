// Package jobs provides scheduled background tasks for the orders service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds field enabled).
//
// # Available Jobs
//
// ConsistencyAuditJob runs FindInconsistentOrdersQuery on AUDIT_SCHEDULE
// (default "0 */5 * * * *") and logs one warning per stored order whose
// total no longer matches its items. Orders only change through the order
// commands, which check the same rules, so a warning means the rows were
// edited outside the service.
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(auditHandler, schedule, registry, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// A schedule of "off" disables the audit.
package jobs
