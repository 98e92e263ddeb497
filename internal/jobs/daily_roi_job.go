package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/primevest/backend/internal/services/roi"
)

// DailyRoiJob schedules the daily accrual cycle
type DailyRoiJob struct {
	roiService *roi.RoiService
	scheduler  *gocron.Scheduler
}

// NewDailyRoiJob creates a new daily ROI job
func NewDailyRoiJob(roiService *roi.RoiService) *DailyRoiJob {
	return &DailyRoiJob{
		roiService: roiService,
		scheduler:  gocron.NewScheduler(time.UTC),
	}
}

// Start schedules the cycle at the given UTC hour each day and begins the
// scheduler in the background. A failed run is logged and left to the next
// trigger; the engine's idempotency guard makes overlapping or repeated
// triggers harmless.
func (j *DailyRoiJob) Start(runHourUTC int) error {
	at := fmt.Sprintf("%02d:00", runHourUTC%24)
	_, err := j.scheduler.Every(1).Day().At(at).Do(j.Run)
	if err != nil {
		return fmt.Errorf("failed to schedule daily ROI job: %w", err)
	}

	j.scheduler.StartAsync()
	log.Printf("Daily ROI job scheduled (runs daily at %s UTC)", at)
	return nil
}

// Stop stops the scheduler
func (j *DailyRoiJob) Stop() {
	j.scheduler.Stop()
}

// Run executes one cycle and logs the summary
func (j *DailyRoiJob) Run() {
	log.Printf("Daily ROI job started")
	start := time.Now()

	summary, err := j.roiService.ProcessDailyCycle(context.Background())
	if err != nil {
		log.Printf("Daily ROI job failed: %v", err)
		return
	}

	log.Printf(
		"Daily ROI job completed in %s: processed=%d matured=%d roi=%.2f level_income=%.2f errors=%d",
		time.Since(start).Round(time.Millisecond),
		summary.ProcessedInvestments,
		summary.MaturedInvestments,
		summary.TotalRoiDistributed,
		summary.TotalLevelIncomeDistributed,
		len(summary.Errors),
	)

	for _, msg := range summary.Errors {
		log.Printf("Daily ROI job error: %s", msg)
	}
}
