package service

import (
	"context"
	"time"

	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/database/models"
	apperrors "driver-planning-backend/internal/errors"
	"driver-planning-backend/internal/logger"
	"driver-planning-backend/internal/metrics"
	"driver-planning-backend/internal/recurrence"
	"driver-planning-backend/internal/repository"
)

// ReconcileAction is what a reconciliation did to one recurrence
type ReconcileAction string

const (
	ReconcileUnchanged ReconcileAction = "unchanged"
	ReconcileRepaired  ReconcileAction = "repaired"
	ReconcileDeleted   ReconcileAction = "deleted"
)

// ReconcileReport summarizes a reconciliation pass
type ReconcileReport struct {
	Checked  int                 `json:"checked"`
	Repaired []uint              `json:"repaired"`
	Deleted  []uint              `json:"deleted"`
	Inserted int                 `json:"inserted"`
	Failures []RecurrenceFailure `json:"failures"`
}

// ReconcilerService repairs drift between recurrence definitions and their plannings.
// Repairs only ever add plannings; a recurrence without any planning is removed.
type ReconcilerService struct {
	recurrenceRepo repository.RecurrenceRepositoryInterface
	planningRepo   repository.PlanningRepositoryInterface
	recurrences    RecurrenceServiceInterface
	metrics        metrics.Recorder
}

var _ ReconcilerServiceInterface = (*ReconcilerService)(nil)

// NewReconcilerService creates a new reconciler
func NewReconcilerService(
	recurrenceRepo repository.RecurrenceRepositoryInterface,
	planningRepo repository.PlanningRepositoryInterface,
	recurrences RecurrenceServiceInterface,
	recorder metrics.Recorder,
) *ReconcilerService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &ReconcilerService{
		recurrenceRepo: recurrenceRepo,
		planningRepo:   planningRepo,
		recurrences:    recurrences,
		metrics:        recorder,
	}
}

// Reconcile visits every recurrence. A failing recurrence is reported and does not stop the pass.
func (s *ReconcilerService) Reconcile(ctx context.Context) (*ReconcileReport, error) {
	started := time.Now()
	log := logger.WithContext(ctx)

	recs, err := s.recurrenceRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("list recurrences", err)
	}

	report := &ReconcileReport{
		Checked:  len(recs),
		Repaired: []uint{},
		Deleted:  []uint{},
		Failures: []RecurrenceFailure{},
	}
	for i := range recs {
		rec := recs[i]
		action, inserted, err := s.reconcile(ctx, &rec)
		if err != nil {
			log.WithField("recurrence_id", rec.ID).Errorf("Failed to reconcile recurrence: %v", err)
			report.Failures = append(report.Failures, RecurrenceFailure{RecurrenceID: rec.ID, Error: err.Error(), err: err})
			continue
		}
		switch action {
		case ReconcileRepaired:
			report.Repaired = append(report.Repaired, rec.ID)
			report.Inserted += inserted
		case ReconcileDeleted:
			report.Deleted = append(report.Deleted, rec.ID)
		}
	}

	s.metrics.RecordMaintenance("reconcile", report.Checked, len(report.Failures), time.Since(started))
	log.WithFields(map[string]interface{}{
		"checked":  report.Checked,
		"repaired": len(report.Repaired),
		"inserted": report.Inserted,
		"deleted":  len(report.Deleted),
		"failed":   len(report.Failures),
	}).Info("Recurrences reconciled")

	return report, nil
}

func (s *ReconcilerService) reconcile(ctx context.Context, rec *models.Recurrence) (ReconcileAction, int, error) {
	set, err := recurrence.ParseWeekdaySet(rec.Frequency)
	if err != nil {
		return "", 0, err
	}
	exclusions, err := s.recurrences.Exclusions(ctx, rec.ID)
	if err != nil {
		return "", 0, err
	}
	plannings, err := s.planningRepo.GetByRecurrenceID(ctx, rec.ID)
	if err != nil {
		return "", 0, apperrors.NewStoreError("list recurrence plannings", err)
	}

	// orphaned
	if len(plannings) == 0 {
		if err := s.recurrences.DeleteRecurrence(ctx, rec.ID); err != nil {
			return "", 0, err
		}
		logger.WithContext(ctx).WithField("recurrence_id", rec.ID).Info("Orphaned recurrence deleted")
		return ReconcileDeleted, 0, nil
	}

	template := plannings[0]
	planned := make([]calendar.Date, 0, len(plannings)+1)
	for _, p := range plannings {
		planned = append(planned, p.Date)
	}

	// the anchor itself goes first
	missing := []calendar.Date{}
	if !rec.StartDate.IsZero() && !calendar.Contains(planned, rec.StartDate) && !calendar.Contains(exclusions, rec.StartDate) {
		missing = append(missing, rec.StartDate)
	}

	var expected []calendar.Date
	if len(exclusions) == 0 {
		expected = recurrence.Generate(rec.StartDate, set)
	} else {
		expected = recurrence.GenerateExcluding(rec.StartDate, set, exclusions)
	}
	missing = append(missing, calendar.Subtract(expected, planned, missing)...)

	if len(missing) == 0 {
		return ReconcileUnchanged, 0, nil
	}

	id := rec.ID
	clones := make([]models.Planning, 0, len(missing))
	for _, d := range missing {
		clones = append(clones, template.CloneAt(d, &id))
	}
	if err := s.planningRepo.CreateBatch(ctx, clones); err != nil {
		return "", 0, apperrors.NewStoreError("insert plannings", err)
	}
	return ReconcileRepaired, len(clones), nil
}
