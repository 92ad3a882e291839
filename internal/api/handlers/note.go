package handlers

import (
	"net/http"

	"driver-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NoteHandler handles HTTP requests for day notes
type NoteHandler struct {
	noteService service.NoteServiceInterface
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(noteService service.NoteServiceInterface) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// GetWeekNotes handles GET /notes/week
// @Summary Notes of a week
// @Tags notes
// @Produce json
// @Param from query string false "First day, dd/MM/yyyy (default today)"
// @Success 200 {array} service.DayNote
// @Router /notes/week [get]
func (h *NoteHandler) GetWeekNotes(c *gin.Context) {
	from, ok := dateQuery(c, "from")
	if !ok {
		return
	}
	notes, err := h.noteService.GetWeekNotes(c.Request.Context(), from)
	if err != nil {
		respondError(c, "Failed to get notes", err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// ModifyOrAddNote handles PUT /notes
// @Summary Write the note of a day
// @Tags notes
// @Accept json
// @Produce json
// @Param note body service.NoteRequest true "Note"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /notes [put]
func (h *NoteHandler) ModifyOrAddNote(c *gin.Context) {
	var req service.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	if err := h.noteService.ModifyOrAddNote(c.Request.Context(), &req); err != nil {
		respondError(c, "Failed to save note", err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "note saved"})
}
