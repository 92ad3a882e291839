package service_test

import (
	"context"
	"errors"
	"testing"

	"driver-planning-backend/internal/cache"
	apperrors "driver-planning-backend/internal/errors"
	"driver-planning-backend/internal/mocks"
	"driver-planning-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStartupRunner(t *testing.T) {
	t.Run("advances then reconciles and clears the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		recurrences := mocks.NewMockRecurrenceServiceInterface(ctrl)
		reconciler := mocks.NewMockReconcilerServiceInterface(ctrl)
		planningCache := cache.NewMemoryCache()
		planningCache.Set(cache.TodayPlanningKey, "stale")

		gomock.InOrder(
			recurrences.EXPECT().AdvanceIfExpired(gomock.Any()).Return(&service.AdvanceReport{Checked: 2}, nil),
			reconciler.EXPECT().Reconcile(gomock.Any()).Return(&service.ReconcileReport{Checked: 2}, nil),
		)

		report, err := service.NewStartupRunner(recurrences, reconciler, planningCache).Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, report.Advance.Checked)
		assert.Equal(t, 2, report.Reconcile.Checked)
		assert.False(t, planningCache.Has(cache.TodayPlanningKey))
	})

	t.Run("advance failure skips reconcile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		recurrences := mocks.NewMockRecurrenceServiceInterface(ctrl)
		reconciler := mocks.NewMockReconcilerServiceInterface(ctrl)

		recurrences.EXPECT().AdvanceIfExpired(gomock.Any()).Return(nil, errors.New("db down"))
		reconciler.EXPECT().Reconcile(gomock.Any()).Times(0)

		_, err := service.NewStartupRunner(recurrences, reconciler, cache.NewMemoryCache()).Run(context.Background())

		assert.EqualError(t, err, "db down")
	})

	t.Run("a second run is rejected while the first is in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		recurrences := mocks.NewMockRecurrenceServiceInterface(ctrl)
		reconciler := mocks.NewMockReconcilerServiceInterface(ctrl)
		runner := service.NewStartupRunner(recurrences, reconciler, cache.NewMemoryCache())

		entered := make(chan struct{})
		release := make(chan struct{})
		recurrences.EXPECT().
			AdvanceIfExpired(gomock.Any()).
			DoAndReturn(func(context.Context) (*service.AdvanceReport, error) {
				close(entered)
				<-release
				return &service.AdvanceReport{}, nil
			})
		reconciler.EXPECT().Reconcile(gomock.Any()).Return(&service.ReconcileReport{}, nil)

		done := make(chan error, 1)
		go func() {
			_, err := runner.Run(context.Background())
			done <- err
		}()
		<-entered

		_, err := runner.Run(context.Background())
		assert.True(t, errors.Is(err, apperrors.ErrMaintenanceRunning))

		close(release)
		require.NoError(t, <-done)
	})
}
