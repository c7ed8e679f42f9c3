package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/epeers/portfoliocalc/docs"
	"github.com/epeers/portfoliocalc/internal/handlers"
	"github.com/epeers/portfoliocalc/internal/middleware"
	"github.com/epeers/portfoliocalc/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the records and serve the valuation API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		valuationSvc, err := loadValuation(cmd.Context())
		if err != nil {
			return err
		}
		historySvc := services.NewHistoryService(valuationSvc, cfg.Workers)
		valuationHandler := handlers.NewValuationHandler(valuationSvc, historySvc, cfg.Workers)

		srv := &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: newRouter(valuationHandler),
		}

		// Start server in goroutine
		go func() {
			log.Infof("Starting server on port %s", cfg.Port)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("Failed to start server: %v", err)
			}
		}()

		// Wait for interrupt signal for graceful shutdown
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("Shutting down server...")

		// Give outstanding requests 5 seconds to complete
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return err
		}
		log.Info("Server exited")
		return nil
	},
}

func newRouter(valuationHandler *handlers.ValuationHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Investor routes
	router.GET("/investors", valuationHandler.ListInvestors)
	router.GET("/investors/:investor_id/value", valuationHandler.GetValuation)
	router.GET("/investors/:investor_id/history", valuationHandler.GetHistory)
	router.POST("/valuations", valuationHandler.BatchValuations)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
