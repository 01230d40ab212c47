package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ooda-AI-GB/gb-gdev-legal/config"
	"github.com/ooda-AI-GB/gb-gdev-legal/handler"
	"github.com/ooda-AI-GB/gb-gdev-legal/middleware"
	"github.com/ooda-AI-GB/gb-gdev-legal/pkg/logger"
	"github.com/ooda-AI-GB/gb-gdev-legal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	// Open database and run migrations
	db, err := service.Open(&cfg.Database)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	if err := service.AutoMigrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}
	if cfg.Database.Seed {
		if err := service.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := setupRouter(cfg, db)

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

// setupRouter builds the gin engine with the middleware chain and all API
// routes. Only /health is reachable without a key.
func setupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	contractSvc := service.NewContractService(db)
	clauseSvc := service.NewClauseService(db, contractSvc)
	complianceSvc := service.NewComplianceService(db)
	contactSvc := service.NewContactService(db)
	noteSvc := service.NewNoteService(db)
	dashboardSvc := service.NewDashboardService(db)

	contractHandler := handler.NewContractHandler(contractSvc)
	clauseHandler := handler.NewClauseHandler(clauseSvc)
	complianceHandler := handler.NewComplianceHandler(complianceSvc)
	contactHandler := handler.NewContactHandler(contactSvc)
	noteHandler := handler.NewNoteHandler(noteSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)

	router := gin.New() // Use New() instead of Default() to avoid default middleware

	// Add custom middleware
	router.Use(middleware.RequestID())     // Request ID for tracing
	router.Use(middleware.Recovery())      // Panic recovery
	router.Use(middleware.RequestLogger()) // Access logging
	router.Use(corsMiddleware())           // CORS
	router.Use(middleware.RateLimit(cfg.RateLimit.Requests, time.Duration(cfg.RateLimit.WindowSeconds)*time.Second))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Protected routes
	api := router.Group("/api/v1")
	api.Use(middleware.APIKeyAuth(&cfg.Auth))
	{
		api.GET("/contracts", contractHandler.List)
		api.POST("/contracts", contractHandler.Create)
		api.GET("/contracts/:id", contractHandler.Get)
		api.PUT("/contracts/:id", contractHandler.Update)
		api.DELETE("/contracts/:id", contractHandler.Delete)
		api.GET("/contracts/:id/clauses", contractHandler.Clauses)

		api.GET("/clauses", clauseHandler.List)
		api.POST("/clauses", clauseHandler.Create)
		api.GET("/clauses/:id", clauseHandler.Get)
		api.PUT("/clauses/:id", clauseHandler.Update)
		api.DELETE("/clauses/:id", clauseHandler.Delete)

		api.GET("/compliance", complianceHandler.List)
		api.POST("/compliance", complianceHandler.Create)
		api.GET("/compliance/:id", complianceHandler.Get)
		api.PUT("/compliance/:id", complianceHandler.Update)
		api.DELETE("/compliance/:id", complianceHandler.Delete)

		api.GET("/contacts", contactHandler.List)
		api.POST("/contacts", contactHandler.Create)
		api.GET("/contacts/:id", contactHandler.Get)
		api.PUT("/contacts/:id", contactHandler.Update)
		api.DELETE("/contacts/:id", contactHandler.Delete)

		api.GET("/notes", noteHandler.List)
		api.POST("/notes", noteHandler.Create)
		api.GET("/notes/:id", noteHandler.Get)
		api.PUT("/notes/:id", noteHandler.Update)
		api.DELETE("/notes/:id", noteHandler.Delete)

		api.GET("/dashboard", dashboardHandler.Get)
	}

	return router
}

// corsMiddleware handles CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, X-API-Key, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
