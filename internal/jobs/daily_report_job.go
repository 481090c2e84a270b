package jobs

import (
	"context"
	"log/slog"

	"studel/internal/core/application/usecases/queries"
	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DailyReportJob logs every vendor's order count and revenue for the current
// day. It only reads.
type DailyReportJob struct {
	orders     queries.OrderReader
	catalog    queries.CatalogReader
	clock      kernel.Clock
	summarizer services.DailySummarizer
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

func NewDailyReportJob(
	orders queries.OrderReader,
	catalog queries.CatalogReader,
	clock kernel.Clock,
	schedule string,
	logger *slog.Logger,
) *DailyReportJob {
	return &DailyReportJob{
		orders:     orders,
		catalog:    catalog,
		clock:      clock,
		summarizer: services.NewDailySummarizer(),
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds(), cron.WithLocation(clock.Now().Location())),
		logger:     logger.With("component", "daily_report_job"),
	}
}

// Name identifies the job in manager errors.
func (j *DailyReportJob) Name() string { return "daily report" }

// Report computes today's summary for every vendor.
func (j *DailyReportJob) Report(ctx context.Context) ([]services.VendorDay, error) {
	vendors, err := j.catalog.ListVendors(ctx)
	if err != nil {
		return nil, err
	}

	now := j.clock.Now()
	report := make([]services.VendorDay, 0, len(vendors))
	for _, v := range vendors {
		day, err := queries.VendorDay(ctx, j.orders, j.summarizer, v.ID, now)
		if err != nil {
			return nil, err
		}
		report = append(report, day)
	}
	return report, nil
}

// RunOnce writes the report to the log.
func (j *DailyReportJob) RunOnce(ctx context.Context) {
	report, err := j.Report(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily report failed", "error", err)
		return
	}
	for _, day := range report {
		j.logger.InfoContext(ctx, "Vendor daily summary",
			"vendor_id", day.VendorID,
			"orders", day.Orders,
			"revenue", day.Revenue.String(),
		)
	}
}

// Start schedules the report.
func (j *DailyReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the daily report job.
func (j *DailyReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Daily report job stopped")
}
