package service

import (
	"context"
	"sync"

	"driver-planning-backend/internal/cache"
	apperrors "driver-planning-backend/internal/errors"
	"driver-planning-backend/internal/logger"
)

// MaintenanceReport is the outcome of one maintenance run
type MaintenanceReport struct {
	Advance   *AdvanceReport   `json:"advance"`
	Reconcile *ReconcileReport `json:"reconcile"`
}

// StartupRunner runs the advance and reconcile passes, one run at a time
type StartupRunner struct {
	mu          sync.Mutex
	recurrences RecurrenceServiceInterface
	reconciler  ReconcilerServiceInterface
	cache       cache.PlanningCache
}

var _ MaintenanceRunnerInterface = (*StartupRunner)(nil)

// NewStartupRunner creates a new maintenance runner
func NewStartupRunner(recurrences RecurrenceServiceInterface, reconciler ReconcilerServiceInterface, planningCache cache.PlanningCache) *StartupRunner {
	return &StartupRunner{
		recurrences: recurrences,
		reconciler:  reconciler,
		cache:       planningCache,
	}
}

// Run advances expired recurrences then reconciles every recurrence.
// A run started while another one is in progress fails with ErrMaintenanceRunning.
func (r *StartupRunner) Run(ctx context.Context) (*MaintenanceReport, error) {
	if !r.mu.TryLock() {
		return nil, apperrors.ErrMaintenanceRunning
	}
	defer r.mu.Unlock()
	defer r.cache.Delete(cache.TodayPlanningKey)

	log := logger.WithContext(ctx)
	log.Info("Starting recurrence maintenance")

	advance, err := r.recurrences.AdvanceIfExpired(ctx)
	if err != nil {
		return nil, err
	}
	reconcile, err := r.reconciler.Reconcile(ctx)
	if err != nil {
		return &MaintenanceReport{Advance: advance}, err
	}

	log.Info("Recurrence maintenance completed")
	return &MaintenanceReport{Advance: advance, Reconcile: reconcile}, nil
}
