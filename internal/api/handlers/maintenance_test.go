package handlers_test

import (
	"net/http"
	"testing"

	"driver-planning-backend/internal/api/handlers"
	"driver-planning-backend/internal/calendar"
	apperrors "driver-planning-backend/internal/errors"
	"driver-planning-backend/internal/mocks"
	"driver-planning-backend/internal/service"
	"driver-planning-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMaintenanceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockMaintenanceRunnerInterface(ctrl)
	archive := mocks.NewMockArchiveServiceInterface(ctrl)
	handler := handlers.NewMaintenanceHandler(runner, archive)
	h := testutils.SetupHTTPTest()
	h.Router.POST("/maintenance/recurrences", handler.RunMaintenance)
	h.Router.POST("/maintenance/archive", handler.ArchivePlannings)

	t.Run("run completes", func(t *testing.T) {
		runner.EXPECT().Run(gomock.Any()).Return(&service.MaintenanceReport{
			Advance:   &service.AdvanceReport{Checked: 3, Advanced: []uint{1}},
			Reconcile: &service.ReconcileReport{Checked: 3},
		}, nil)

		var got service.MaintenanceReport
		testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodPost, "/maintenance/recurrences", nil), http.StatusOK, &got)
		assert.Equal(t, []uint{1}, got.Advance.Advanced)
	})

	t.Run("run already in progress", func(t *testing.T) {
		runner.EXPECT().Run(gomock.Any()).Return(nil, apperrors.ErrMaintenanceRunning)

		w := h.MakeRequest(http.MethodPost, "/maintenance/recurrences", nil)
		testutils.AssertErrorResponse(t, w, http.StatusConflict, "Recurrence maintenance failed")
	})

	t.Run("archive", func(t *testing.T) {
		archive.EXPECT().ArchiveOldPlannings(gomock.Any()).Return(&service.ArchiveReport{Cutoff: calendar.MustParse("15/09/2025"), Archived: 4}, nil)

		var got service.ArchiveReport
		testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodPost, "/maintenance/archive", nil), http.StatusOK, &got)
		assert.Equal(t, 4, got.Archived)
	})
}
