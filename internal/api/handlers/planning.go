package handlers

import (
	"net/http"
	"strconv"

	"driver-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlanningHandler handles HTTP requests for plannings
type PlanningHandler struct {
	planningService service.PlanningServiceInterface
}

// NewPlanningHandler creates a new planning handler
func NewPlanningHandler(planningService service.PlanningServiceInterface) *PlanningHandler {
	return &PlanningHandler{
		planningService: planningService,
	}
}

// AddPlanning handles POST /plannings
// @Summary Add plannings
// @Description Store a batch of plannings. An item with a frequency starts a weekly recurrence.
// @Tags plannings
// @Accept json
// @Produce json
// @Param plannings body []service.CreatePlanningRequest true "Plannings to add"
// @Success 200 {object} service.AddPlanningResult "Every item was stored"
// @Success 207 {object} service.AddPlanningResult "Some items failed"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /plannings [post]
func (h *PlanningHandler) AddPlanning(c *gin.Context) {
	var items []service.CreatePlanningRequest
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	result := h.planningService.AddPlanning(c.Request.Context(), items)
	status := http.StatusOK
	if len(result.Failed) > 0 {
		status = http.StatusMultiStatus
	}
	c.JSON(status, result)
}

// ModifyPlanning handles PUT /plannings/:id
// @Summary Modify a planning
// @Description Edit a planning; a new date or frequency also updates its recurrence
// @Tags plannings
// @Accept json
// @Produce json
// @Param id path int true "Planning ID"
// @Param planning body service.ModifyPlanningRequest true "Planning edition"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /plannings/{id} [put]
func (h *PlanningHandler) ModifyPlanning(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.ModifyPlanningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	req.ID = id

	outcome, err := h.planningService.ModifyPlanning(c.Request.Context(), &req)
	if err != nil {
		respondError(c, outcome, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: outcome})
}

// DeletePlanning handles DELETE /plannings/:id
// @Summary Delete a planning
// @Tags plannings
// @Produce json
// @Param id path int true "Planning ID"
// @Param delete_recurrence query bool false "Delete the whole series"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /plannings/{id} [delete]
func (h *PlanningHandler) DeletePlanning(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleteRecurrence, _ := strconv.ParseBool(c.DefaultQuery("delete_recurrence", "false"))

	req := &service.DeletePlanningRequest{ID: id, DeleteRecurrence: deleteRecurrence}
	if err := h.planningService.DeletePlanning(c.Request.Context(), req); err != nil {
		respondError(c, "Failed to delete planning", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetTodayPlanning handles GET /plannings/today
// @Summary Today's planning
// @Tags plannings
// @Produce json
// @Success 200 {object} service.DayPlanning
// @Router /plannings/today [get]
func (h *PlanningHandler) GetTodayPlanning(c *gin.Context) {
	day, err := h.planningService.GetTodayPlanning(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to get today's planning", err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// GetWeekPlanning handles GET /plannings/week
// @Summary Week planning
// @Tags plannings
// @Produce json
// @Param from query string false "First day, dd/MM/yyyy (default today)"
// @Success 200 {array} service.DayPlanning
// @Failure 400 {object} ErrorResponse
// @Router /plannings/week [get]
func (h *PlanningHandler) GetWeekPlanning(c *gin.Context) {
	from, ok := dateQuery(c, "from")
	if !ok {
		return
	}
	week, err := h.planningService.GetWeekPlanning(c.Request.Context(), from)
	if err != nil {
		respondError(c, "Failed to get week planning", err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// GetHistoryPlanning handles GET /plannings/history
// @Summary Planning of a past day
// @Tags plannings
// @Produce json
// @Param date query string true "Day, dd/MM/yyyy"
// @Success 200 {object} service.HistoryPlanning
// @Failure 400 {object} ErrorResponse
// @Router /plannings/history [get]
func (h *PlanningHandler) GetHistoryPlanning(c *gin.Context) {
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}
	if date.IsZero() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date is required"})
		return
	}
	history, err := h.planningService.GetHistoryPlanning(c.Request.Context(), date)
	if err != nil {
		respondError(c, "Failed to get planning history", err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// GetDriverPlanning handles GET /drivers/:id/plannings
// @Summary Plannings of a driver on one day
// @Tags plannings
// @Produce json
// @Param id path int true "Driver ID"
// @Param date query string true "Day, dd/MM/yyyy"
// @Success 200 {array} models.Planning
// @Failure 400 {object} ErrorResponse
// @Router /drivers/{id}/plannings [get]
func (h *PlanningHandler) GetDriverPlanning(c *gin.Context) {
	driverID, ok := parseID(c, "id")
	if !ok {
		return
	}
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}
	if date.IsZero() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date is required"})
		return
	}
	plannings, err := h.planningService.GetDriverPlanningByDate(c.Request.Context(), driverID, date)
	if err != nil {
		respondError(c, "Failed to get driver planning", err)
		return
	}
	c.JSON(http.StatusOK, plannings)
}
