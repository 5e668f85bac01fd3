package jobs

import (
	"context"
	"log/slog"

	"waterflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// lowStockSchedule runs the scan at the top of every hour.
const lowStockSchedule = "0 0 * * * *"

// LowStockJob periodically scans the inventory for items at or under
// their minimum threshold and surfaces them in the log so operators can
// reorder before the warehouse runs dry.
type LowStockJob struct {
	uowFactory commands.InventoryUoWFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewLowStockJob creates the hourly low-stock scan.
func NewLowStockJob(uowFactory commands.InventoryUoWFactory, logger *slog.Logger) *LowStockJob {
	return &LowStockJob{
		uowFactory: uowFactory,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "low_stock_job"),
	}
}

// Start schedules the hourly scan.
func (j *LowStockJob) Start() error {
	_, err := j.cron.AddFunc(lowStockSchedule, func() {
		ctx := context.Background()
		if err := j.scan(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Low stock scan failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock job started (running hourly)")
	return nil
}

// Stop stops the scan.
func (j *LowStockJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock job stopped")
}

func (j *LowStockJob) scan(ctx context.Context) error {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	// Read-only scan, nothing to commit.
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items, err := uow.InventoryRepository().GetAllLowStock(ctx)
	if err != nil {
		return err
	}

	for _, item := range items {
		j.logger.WarnContext(ctx, "Inventory item is low on stock",
			"itemId", item.ID().String(),
			"itemName", item.ItemName(),
			"currentStock", item.CurrentStock(),
			"minThreshold", item.MinThreshold(),
		)
	}
	return nil
}
