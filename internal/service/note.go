package service

import (
	"context"
	"fmt"

	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/database/models"
	apperrors "driver-planning-backend/internal/errors"
	"driver-planning-backend/internal/repository"
)

// NoteService handles the free text attached to planning days
type NoteService struct {
	repo  repository.NoteRepositoryInterface
	clock calendar.Clock
}

var _ NoteServiceInterface = (*NoteService)(nil)

// NewNoteService creates a new note service
func NewNoteService(repo repository.NoteRepositoryInterface, clock calendar.Clock) *NoteService {
	return &NoteService{repo: repo, clock: clock}
}

// DayNote is the note of one day, empty when none was written
type DayNote struct {
	Date calendar.Date `json:"date"`
	Note string        `json:"note"`
}

// NoteRequest represents the request to write the note of a day
type NoteRequest struct {
	Date calendar.Date `json:"date" swaggertype:"string" example:"15/10/2026"`
	Note string        `json:"note"`
}

// GetWeekNotes returns the notes of the seven days starting at from, or at today when from is zero
func (s *NoteService) GetWeekNotes(ctx context.Context, from calendar.Date) ([]DayNote, error) {
	if from.IsZero() {
		from = s.clock.Today()
	}
	week := calendar.Week(from)
	notes, err := s.repo.GetBetween(ctx, week[0], week[len(week)-1])
	if err != nil {
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}

	byDate := make(map[calendar.Date]string, len(notes))
	for _, n := range notes {
		byDate[n.Date] = n.Note
	}
	result := make([]DayNote, 0, len(week))
	for _, d := range week {
		result = append(result, DayNote{Date: d, Note: byDate[d]})
	}
	return result, nil
}

// ModifyOrAddNote writes the note of a day, replacing the previous one
func (s *NoteService) ModifyOrAddNote(ctx context.Context, req *NoteRequest) error {
	if req.Date.IsZero() {
		return apperrors.NewValidationError("date", "is required")
	}
	if err := s.repo.Upsert(ctx, &models.Note{Date: req.Date, Note: req.Note}); err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}
	return nil
}
