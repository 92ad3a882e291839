package handlers

import (
	"fmt"
	"net/http"

	"driver-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DriverHandler handles HTTP requests for drivers
type DriverHandler struct {
	driverService   service.DriverServiceInterface
	calendarService service.CalendarServiceInterface
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(driverService service.DriverServiceInterface, calendarService service.CalendarServiceInterface) *DriverHandler {
	return &DriverHandler{
		driverService:   driverService,
		calendarService: calendarService,
	}
}

// ListDrivers handles GET /drivers
// @Summary List drivers
// @Tags drivers
// @Produce json
// @Success 200 {array} models.Driver
// @Router /drivers [get]
func (h *DriverHandler) ListDrivers(c *gin.Context) {
	drivers, err := h.driverService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to get drivers", err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// GetDriver handles GET /drivers/:id
// @Summary Get a driver
// @Tags drivers
// @Produce json
// @Param id path int true "Driver ID"
// @Success 200 {object} models.Driver
// @Failure 404 {object} ErrorResponse
// @Router /drivers/{id} [get]
func (h *DriverHandler) GetDriver(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	driver, err := h.driverService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to get driver", err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

// CreateDriver handles POST /drivers
// @Summary Create a driver
// @Tags drivers
// @Accept json
// @Produce json
// @Param driver body service.DriverRequest true "Driver"
// @Success 201 {object} models.Driver
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /drivers [post]
func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var req service.DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	driver, err := h.driverService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "Failed to create driver", err)
		return
	}
	c.JSON(http.StatusCreated, driver)
}

// UpdateDriver handles PUT /drivers/:id
// @Summary Update a driver
// @Tags drivers
// @Accept json
// @Produce json
// @Param id path int true "Driver ID"
// @Param driver body service.DriverRequest true "Driver"
// @Success 200 {object} models.Driver
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /drivers/{id} [put]
func (h *DriverHandler) UpdateDriver(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	driver, err := h.driverService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, "Failed to update driver", err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

// DeleteDriver handles DELETE /drivers/:id
// @Summary Delete a driver
// @Tags drivers
// @Param id path int true "Driver ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /drivers/{id} [delete]
func (h *DriverHandler) DeleteDriver(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.driverService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "Failed to delete driver", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportCalendar handles GET /drivers/:id/calendar.ics
// @Summary Week of a driver as iCalendar
// @Tags drivers
// @Produce text/calendar
// @Param id path int true "Driver ID"
// @Param from query string false "First day, dd/MM/yyyy (default today)"
// @Success 200 {string} string "ICS document"
// @Failure 404 {object} ErrorResponse
// @Router /drivers/{id}/calendar.ics [get]
func (h *DriverHandler) ExportCalendar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	from, ok := dateQuery(c, "from")
	if !ok {
		return
	}
	feed, err := h.calendarService.ExportDriverWeek(c.Request.Context(), id, from)
	if err != nil {
		respondError(c, "Failed to export calendar", err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="driver-%d.ics"`, id))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}
