package archive

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/database/models"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndRead(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	recurrenceID := uint(7)
	day := calendar.MustParse("02/09/2026")

	plannings := []models.Planning{
		{BaseModel: models.BaseModel{ID: 1}, DriverID: 3, Date: day, ClientName: "Martin", StartTime: "08:00", LongDistance: true, RecurrenceID: &recurrenceID},
		{BaseModel: models.BaseModel{ID: 2}, DriverID: 4, Date: day, ClientName: "Durand", StartTime: "07:30"},
		{BaseModel: models.BaseModel{ID: 3}, DriverID: 4, Date: day.AddDays(1), ClientName: "Petit"},
	}
	require.NoError(t, store.Save(ctx, plannings))

	got, err := store.GetByDate(ctx, day)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Durand", got[0].ClientName)
	assert.Nil(t, got[0].RecurrenceID)
	assert.Equal(t, "Martin", got[1].ClientName)
	assert.True(t, got[1].LongDistance)
	require.NotNil(t, got[1].RecurrenceID)
	assert.Equal(t, uint(7), *got[1].RecurrenceID)
	assert.True(t, got[1].Date.Equal(day))

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestStoreSaveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	p := models.Planning{BaseModel: models.BaseModel{ID: 9}, DriverID: 1, Date: calendar.MustParse("01/09/2026"), ClientName: "A"}

	require.NoError(t, store.Save(ctx, []models.Planning{p}))
	p.ClientName = "B"
	require.NoError(t, store.Save(ctx, []models.Planning{p}))

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := store.GetByDate(ctx, p.Date)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].ClientName)
}

func TestStoreCheckpoint(t *testing.T) {
	store := openStore(t)
	assert.NoError(t, store.Checkpoint(context.Background()))
	assert.NoError(t, store.Save(context.Background(), nil))
}
