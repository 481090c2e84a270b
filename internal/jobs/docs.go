// Package jobs provides scheduled background tasks.
//
// Jobs use github.com/robfig/cron/v3 with six-field expressions (seconds first).
//
// # Available Jobs
//
// 1. OutboxRelayJob - publishes pending order events to Kafka, every second by default.
// Only started when a broker is configured.
// 2. DailyReportJob - logs each vendor's order count and revenue for the day, 23:55 by default.
//
// # Usage
//
//	relay, err := jobs.NewOutboxRelayJob(relayHandler, "* * * * * *", 100, logger)
//	report := jobs.NewDailyReportJob(orders, catalog, clock, "0 55 23 * * *", logger)
//	jobManager := jobs.NewJobManager(logger, relay, report)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Failed runs are logged and retried on the next tick. A relay run that fails
// leaves its batch unpublished. Failed job starts stop the jobs already running.
package jobs
