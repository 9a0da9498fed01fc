package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/reflectlog/backend/internal/apierror"
	"github.com/reflectlog/backend/internal/config"
	"github.com/reflectlog/backend/internal/handlers"
	"github.com/reflectlog/backend/internal/logger"
	"github.com/reflectlog/backend/internal/middleware"
	"github.com/reflectlog/backend/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	// Initialize logging
	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	log.Info("starting reflectlog analytics server",
		logger.String("env", cfg.Server.Env),
		logger.String("port", cfg.Server.Port),
	)

	// Initialize services
	analyticsService := service.NewAnalyticsService()

	// Initialize handlers
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.HTTP.CORSOrigins))
	router.Use(middleware.BodyLimit(cfg.HTTP.MaxBodyBytes))

	router.NoRoute(func(c *gin.Context) {
		apierror.WriteProblem(c, apierror.NewNotFoundError(
			apierror.GetRequestID(c), c.Request.URL.Path))
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		analytics := v1.Group("/analytics")
		{
			analytics.POST("/time-patterns", analyticsHandler.TimePatterns)
			analytics.POST("/co-occurrence", analyticsHandler.CoOccurrence)
			analytics.POST("/trends", analyticsHandler.Trends)
			analytics.POST("/statistics", analyticsHandler.Statistics)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
