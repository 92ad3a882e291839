package handlers

import (
	"net/http"

	"driver-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MaintenanceHandler triggers the recurrence maintenance and archive passes on demand
type MaintenanceHandler struct {
	runner  service.MaintenanceRunnerInterface
	archive service.ArchiveServiceInterface
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(runner service.MaintenanceRunnerInterface, archive service.ArchiveServiceInterface) *MaintenanceHandler {
	return &MaintenanceHandler{
		runner:  runner,
		archive: archive,
	}
}

// RunMaintenance handles POST /maintenance/recurrences
// @Summary Advance and reconcile recurrences
// @Tags maintenance
// @Produce json
// @Success 200 {object} service.MaintenanceReport
// @Failure 409 {object} ErrorResponse "A run is already in progress"
// @Router /maintenance/recurrences [post]
func (h *MaintenanceHandler) RunMaintenance(c *gin.Context) {
	report, err := h.runner.Run(c.Request.Context())
	if err != nil {
		respondError(c, "Recurrence maintenance failed", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ArchivePlannings handles POST /maintenance/archive
// @Summary Archive old plannings
// @Tags maintenance
// @Produce json
// @Success 200 {object} service.ArchiveReport
// @Router /maintenance/archive [post]
func (h *MaintenanceHandler) ArchivePlannings(c *gin.Context) {
	report, err := h.archive.ArchiveOldPlannings(c.Request.Context())
	if err != nil {
		respondError(c, "Archive failed", err)
		return
	}
	c.JSON(http.StatusOK, report)
}
