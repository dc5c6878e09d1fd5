package main

import (
	"errors"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pracaboard/job-offer-api/internal/config"
	"github.com/pracaboard/job-offer-api/internal/database"
	"github.com/pracaboard/job-offer-api/internal/handlers"
	"github.com/pracaboard/job-offer-api/internal/services"
	"github.com/pracaboard/job-offer-api/pkg/logging"
	"github.com/pracaboard/job-offer-api/pkg/shutdown"
)

func main() {
	// Optional in deployment, handy for local dev
	_ = godotenv.Load()

	cfg := config.Load()

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("database connection failed", "err", err)
	}
	logger.Info("database connection established")

	offerService := services.NewOfferService(db, logger)
	offerHandler := handlers.NewOfferHandler(offerService)

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		// Public browsing, same listing contract as the managed group
		api.GET("/offers", offerHandler.BrowseOffers)

		// Management routes; the deployment mounts its auth in front of these
		api.GET("/job-offers", offerHandler.ListOffers)
		api.POST("/job-offers", offerHandler.CreateOffer)
		api.PUT("/job-offers/:id", offerHandler.UpdateOffer)
		api.DELETE("/job-offers/:id", offerHandler.DeleteOffer)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM},
		srv,
		10*time.Second,
		logger,
	)

	logger.Info("server starting", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", "err", err)
	}
	logger.Info("server stopped")
}
