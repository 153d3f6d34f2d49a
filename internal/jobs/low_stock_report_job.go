package jobs

import (
	"context"
	"log/slog"

	"eshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockReportJob reports products at or under the stock threshold.
// Runs hourly so operators notice scarce products before they sell out.
type LowStockReportJob struct {
	handler   queries.GetLowStockProductsQueryHandler
	threshold int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowStockReportJob creates a job reporting scarce products.
// The threshold is validated when the query is built on each run.
func NewLowStockReportJob(
	handler queries.GetLowStockProductsQueryHandler,
	threshold int,
	logger *slog.Logger,
) *LowStockReportJob {
	return &LowStockReportJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "low_stock_report_job"),
	}
}

// Start begins the low stock report job to run hourly.
func (j *LowStockReportJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Low stock report failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Low stock report job started (running hourly)", "threshold", j.threshold)
	return nil
}

// Stop stops the low stock report job.
func (j *LowStockReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock report job stopped")
}

// RunOnce performs a single report pass over the catalog.
func (j *LowStockReportJob) RunOnce(ctx context.Context) error {
	query, err := queries.NewGetLowStockProductsQuery(j.threshold)
	if err != nil {
		return err
	}

	scarce, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	if len(scarce) == 0 {
		j.logger.DebugContext(ctx, "No products at or under the stock threshold",
			"threshold", j.threshold)
		return nil
	}

	for _, entry := range scarce {
		j.logger.WarnContext(ctx, "Product stock is low",
			"product_id", entry.ID.String(),
			"name", entry.Name,
			"stock", entry.Stock,
			"threshold", j.threshold)
	}

	return nil
}
