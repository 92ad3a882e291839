package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"driver-planning-backend/internal/api/routes"
	"driver-planning-backend/internal/logger"
)

const shutdownTimeout = 10 * time.Second

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the nightly maintenance",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port, overrides PORT")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	systemCtx := logger.WithUser(ctx, "system")
	if cfg.StartupReconcile {
		if _, err := a.maintenance.Run(systemCtx); err != nil {
			logrus.WithError(err).Error("Startup maintenance failed")
		}
	}

	// an empty MAINTENANCE_CRON disables the nightly job
	if cfg.MaintenanceCron != "" {
		scheduler := cron.New(cron.WithLocation(a.clock.Location))
		if _, err := scheduler.AddFunc(cfg.MaintenanceCron, func() { a.nightly(systemCtx) }); err != nil {
			return err
		}
		scheduler.Start()
		defer func() { <-scheduler.Stop().Done() }()
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.SetupRoutes(a.db, cfg, a.services())

	port := cfg.Port
	if servePort != "" {
		port = servePort
	}
	if port == "" {
		port = "7008"
	}
	srv := &http.Server{Addr: ":" + port, Handler: router}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Starting server on port %s", port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logrus.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// nightly archives old plannings then advances and reconciles the recurrences
func (a *app) nightly(ctx context.Context) {
	log := logger.WithContext(ctx)
	if _, err := a.archiver.ArchiveOldPlannings(ctx); err != nil {
		log.Errorf("Nightly archive failed: %v", err)
	}
	if _, err := a.maintenance.Run(ctx); err != nil {
		log.Errorf("Nightly maintenance failed: %v", err)
	}
}
