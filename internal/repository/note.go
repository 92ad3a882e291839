package repository

import (
	"context"

	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NoteRepository handles database operations for day notes
type NoteRepository struct {
	db *gorm.DB
}

var _ NoteRepositoryInterface = (*NoteRepository)(nil)

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// GetBetween retrieves the notes of the inclusive date range
func (r *NoteRepository) GetBetween(ctx context.Context, from, to calendar.Date) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Upsert creates the note of a day or replaces its text
func (r *NoteRepository) Upsert(ctx context.Context, note *models.Note) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"note"}),
	}).Create(note).Error
}
