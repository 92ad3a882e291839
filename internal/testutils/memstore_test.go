package testutils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/database/models"
)

func TestMemoryStorePlannings(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	plannings := store.Plannings()
	factory := NewPlanningFactory()

	recID := uint(7)
	batch := []models.Planning{
		*factory.WithRecurrence(recID, calendar.MustParse("22/10/2025")),
		*factory.WithRecurrence(recID, calendar.MustParse("20/10/2025")),
		*factory.WithDriverAndDate(2, calendar.MustParse("20/10/2025")),
	}
	require.NoError(t, plannings.CreateBatch(ctx, batch))
	assert.NotZero(t, batch[0].ID)

	assert.Equal(t, []string{"20/10/2025", "22/10/2025"}, calendar.Strings(store.PlanningDates(recID)))

	first, err := plannings.GetOneByRecurrenceID(ctx, recID)
	require.NoError(t, err)
	assert.Equal(t, batch[0].ID, first.ID)

	require.NoError(t, plannings.DeleteByDatesAndRecurrenceID(ctx, []calendar.Date{calendar.MustParse("20/10/2025")}, recID))
	assert.Len(t, store.AllPlannings(), 2)

	_, err = plannings.GetByID(ctx, 999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestMemoryStoreFailCreateBatch(t *testing.T) {
	store := NewMemoryStore()
	store.FailCreateBatch = errors.New("disk full")

	err := store.Plannings().CreateBatch(context.Background(), []models.Planning{*NewPlanningFactory().Create()})
	assert.EqualError(t, err, "disk full")
	assert.Empty(t, store.AllPlannings())
}

func TestMemoryStoreExcludedDays(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := store.ExcludedDays()

	_, err := repo.GetByRecurrenceID(ctx, 1)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	dates, err := models.EncodeDates([]calendar.Date{calendar.MustParse("21/10/2025")})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, &models.ExcludedDays{RecurrenceID: 1, Dates: dates}))

	assert.Equal(t, []string{"21/10/2025"}, calendar.Strings(store.ExcludedDates(1)))
}
