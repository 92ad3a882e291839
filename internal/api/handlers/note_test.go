package handlers_test

import (
	"net/http"
	"testing"

	"driver-planning-backend/internal/api/handlers"
	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/mocks"
	"driver-planning-backend/internal/service"
	"driver-planning-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockNoteSvc := mocks.NewMockNoteServiceInterface(ctrl)
	handler := handlers.NewNoteHandler(mockNoteSvc)
	h := testutils.SetupHTTPTest()
	h.Router.GET("/notes/week", handler.GetWeekNotes)
	h.Router.PUT("/notes", handler.ModifyOrAddNote)

	t.Run("week notes", func(t *testing.T) {
		mockNoteSvc.EXPECT().
			GetWeekNotes(gomock.Any(), calendar.Date{}).
			Return([]service.DayNote{{Date: calendar.MustParse("15/10/2025"), Note: "vehicle service"}}, nil)

		var got []map[string]string
		testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodGet, "/notes/week", nil), http.StatusOK, &got)
		assert.Equal(t, []map[string]string{{"date": "15/10/2025", "note": "vehicle service"}}, got)
	})

	t.Run("write a note", func(t *testing.T) {
		mockNoteSvc.EXPECT().
			ModifyOrAddNote(gomock.Any(), &service.NoteRequest{Date: calendar.MustParse("16/10/2025"), Note: "closed"}).
			Return(nil)

		w := h.MakeRequest(http.MethodPut, "/notes", `{"date":"16/10/2025","note":"closed"}`)
		testutils.AssertStatus(t, w, http.StatusOK)
	})
}
