package service

import (
	"context"
	"fmt"

	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/database/models"
	apperrors "driver-planning-backend/internal/errors"
	"driver-planning-backend/internal/logger"
	"driver-planning-backend/internal/metrics"
	"driver-planning-backend/internal/repository"
)

// ArchiveStore is where plannings past the retention window are kept
type ArchiveStore interface {
	ArchiveReader
	Save(ctx context.Context, plannings []models.Planning) error
	Checkpoint(ctx context.Context) error
}

// ArchiveReport summarizes an archive run
type ArchiveReport struct {
	Cutoff   calendar.Date `json:"cutoff"`
	Archived int           `json:"archived"`
}

// ArchiveService moves old plannings out of the main store
type ArchiveService struct {
	planningRepo  repository.PlanningRepositoryInterface
	store         ArchiveStore
	clock         calendar.Clock
	retentionDays int
	metrics       metrics.Recorder
}

var _ ArchiveServiceInterface = (*ArchiveService)(nil)

// NewArchiveService creates a new archive service
func NewArchiveService(planningRepo repository.PlanningRepositoryInterface, store ArchiveStore, clock calendar.Clock, retentionDays int, recorder metrics.Recorder) *ArchiveService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &ArchiveService{
		planningRepo:  planningRepo,
		store:         store,
		clock:         clock,
		retentionDays: retentionDays,
		metrics:       recorder,
	}
}

// ArchiveOldPlannings copies every planning older than the retention window to the archive,
// removes it from the main store and checkpoints the archive.
func (s *ArchiveService) ArchiveOldPlannings(ctx context.Context) (*ArchiveReport, error) {
	cutoff := s.clock.Today().AddDays(-s.retentionDays)
	log := logger.WithContext(ctx).WithField("cutoff", cutoff.String())

	plannings, err := s.planningRepo.GetOlderThan(ctx, cutoff)
	if err != nil {
		return nil, apperrors.NewStoreError("list old plannings", err)
	}
	report := &ArchiveReport{Cutoff: cutoff}

	if len(plannings) > 0 {
		if err := s.store.Save(ctx, plannings); err != nil {
			return nil, fmt.Errorf("failed to archive plannings: %w", err)
		}
		ids := make([]uint, 0, len(plannings))
		for _, p := range plannings {
			ids = append(ids, p.ID)
		}
		if err := s.planningRepo.DeleteByIDs(ctx, ids); err != nil {
			return nil, apperrors.NewStoreError("delete archived plannings", err)
		}
		report.Archived = len(plannings)
		s.metrics.RecordArchived(len(plannings))
	}

	if err := s.store.Checkpoint(ctx); err != nil {
		log.Warnf("Archive checkpoint failed: %v", err)
	}

	log.WithField("archived", report.Archived).Info("Old plannings archived")
	return report, nil
}
