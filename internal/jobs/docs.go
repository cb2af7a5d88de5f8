// Package jobs provides scheduled background tasks for the restaurant service.
//
// Jobs are built on github.com/robfig/cron/v3 with second precision, so both
// six-field expressions ("*/30 * * * * *") and descriptors ("@every 1m") work.
//
// # Available Jobs
//
//  1. KitchenBacklogJob logs how many orders are placed, preparing, served,
//     cancelled and unpaid.
//  2. MenuCacheWarmupJob copies the menu catalog into the menu cache.
//
// # Usage
//
//	manager := jobs.NewJobManager().
//		Add("kitchen backlog", jobs.NewKitchenBacklogJob(orderQueries, "@every 1m", logger)).
//		Add("menu cache warmup", jobs.NewMenuCacheWarmupJob(menuQueries, cache, "@every 5m", logger))
//
//	if err := manager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer manager.StopAll()
//
// # Error Handling
//
// A failing run is logged and the next tick tries again. A job that cannot
// be scheduled makes StartAll stop the jobs that were already started.
package jobs
