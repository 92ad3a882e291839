package routes

import (
	"driver-planning-backend/internal/api/handlers"
	"driver-planning-backend/internal/api/middleware"
	"driver-planning-backend/internal/config"
	"driver-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Services groups everything the HTTP surface talks to
type Services struct {
	Plannings   service.PlanningServiceInterface
	Drivers     service.DriverServiceInterface
	Notes       service.NoteServiceInterface
	Calendar    service.CalendarServiceInterface
	Maintenance service.MaintenanceRunnerInterface
	Archive     service.ArchiveServiceInterface

	// Gatherer backs /metrics; nil disables the endpoint
	Gatherer prometheus.Gatherer
	// ArchivePing is checked by /health when set
	ArchivePing handlers.Pinger
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, svc *Services) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	healthHandler := handlers.NewHealthHandler(db, svc.ArchivePing)
	planningHandler := handlers.NewPlanningHandler(svc.Plannings)
	driverHandler := handlers.NewDriverHandler(svc.Drivers, svc.Calendar)
	noteHandler := handlers.NewNoteHandler(svc.Notes)
	maintenanceHandler := handlers.NewMaintenanceHandler(svc.Maintenance, svc.Archive)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	if svc.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(svc.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/api/v1")
	{
		plannings := v1.Group("/plannings")
		{
			plannings.POST("", planningHandler.AddPlanning)
			plannings.GET("/today", planningHandler.GetTodayPlanning)
			plannings.GET("/week", planningHandler.GetWeekPlanning)
			plannings.GET("/history", planningHandler.GetHistoryPlanning)
			plannings.PUT("/:id", planningHandler.ModifyPlanning)
			plannings.DELETE("/:id", planningHandler.DeletePlanning)
		}

		drivers := v1.Group("/drivers")
		{
			drivers.GET("", driverHandler.ListDrivers)
			drivers.POST("", driverHandler.CreateDriver)
			drivers.GET("/:id", driverHandler.GetDriver)
			drivers.PUT("/:id", driverHandler.UpdateDriver)
			drivers.DELETE("/:id", driverHandler.DeleteDriver)
			drivers.GET("/:id/plannings", planningHandler.GetDriverPlanning)
			drivers.GET("/:id/calendar.ics", driverHandler.ExportCalendar)
		}

		notes := v1.Group("/notes")
		{
			notes.GET("/week", noteHandler.GetWeekNotes)
			notes.PUT("", noteHandler.ModifyOrAddNote)
		}

		maintenance := v1.Group("/maintenance")
		{
			maintenance.POST("/recurrences", maintenanceHandler.RunMaintenance)
			maintenance.POST("/archive", maintenanceHandler.ArchivePlannings)
		}
	}

	return router
}
