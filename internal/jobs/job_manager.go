package jobs

import (
	"fmt"
	"log/slog"

	"waterflow/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lowStockJob *LowStockJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(inventoryUoWFactory commands.InventoryUoWFactory, logger *slog.Logger) *JobManager {
	return &JobManager{
		lowStockJob: NewLowStockJob(inventoryUoWFactory, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockJob.Stop()
}
