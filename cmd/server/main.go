package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"wayfinding/internal/config"
	"wayfinding/internal/handler"
	"wayfinding/internal/model"
	"wayfinding/internal/repository"
	"wayfinding/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Print version info
	log.Printf("Hospital Wayfinding System")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Load the directory catalog: PostgreSQL when configured, the embedded
	// table otherwise. The catalog is read once and immutable afterwards.
	buildings, rooms, err := loadCatalog(cfg)
	if err != nil {
		log.Fatalf("Failed to load directory catalog: %v", err)
	}

	directory, err := service.NewDirectory(buildings, rooms)
	if err != nil {
		log.Fatalf("Invalid directory catalog: %v", err)
	}
	b, f, r := directory.Stats()
	log.Printf("✅ Directory loaded: %d buildings, %d floors, %d rooms", b, f, r)

	// Initialize AI providers. Configured-ness is decided here once from
	// the credential shape; reachability is discovered per call.
	preamble := service.SystemPreamble(directory)
	openaiProvider := service.NewOpenAIProvider(&cfg.OpenAI, preamble)
	anthropicProvider := service.NewAnthropicProvider(&cfg.Anthropic, preamble)

	if openaiProvider.Configured() {
		log.Printf("✅ OpenAI provider configured (model: %s)", cfg.OpenAI.Model)
	}
	if anthropicProvider.Configured() {
		log.Printf("✅ Anthropic provider configured (model: %s)", cfg.Anthropic.Model)
	}
	if !openaiProvider.Configured() && !anthropicProvider.Configured() {
		log.Println("⚠️  No AI provider configured - chat uses the local responder only")
	}

	// Initialize services
	routes := service.NewRouteSynthesizer(directory)
	responder := service.NewLocalResponder(directory)
	chatService := service.NewChatService(responder, openaiProvider, anthropicProvider)

	log.Println("✅ Services initialized")

	// Initialize handlers
	navigationHandler := handler.NewNavigationHandler(directory, routes)
	chatHandler := handler.NewChatHandler(chatService)
	adminHandler := handler.NewAdminHandler(directory, cfg.Admin.Password)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "hospital-wayfinding",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	api := router.Group("/api")
	{
		api.GET("", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"message": "Hospital Wayfinding API",
				"version": Version,
				"status":  "running",
			})
		})

		navigation := api.Group("/navigation")
		{
			navigation.GET("/buildings", navigationHandler.Buildings)
			navigation.GET("/rooms/:building/:floor", navigationHandler.Rooms)
			navigation.GET("/route", navigationHandler.Route)
		}

		ai := api.Group("/ai")
		{
			ai.POST("/chat", chatHandler.Chat)
			ai.GET("/status", chatHandler.Status)
		}

		api.POST("/verify-password", adminHandler.VerifyPassword)
		api.GET("/admin/stats", adminHandler.Stats)
	}

	// Serve static files (frontend)
	// This function is implemented in embed.go (production) or static_dev.go (development)
	setupStaticFiles(router)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API: http://localhost:%d/api", cfg.Server.Port)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}

// loadCatalog resolves the directory catalog source.
func loadCatalog(cfg *config.Config) ([]model.Building, map[string]map[string][]model.Room, error) {
	if cfg.PostgreSQL.DSN == "" {
		log.Println("ℹ️  No DATABASE_URL set - using the embedded directory catalog")
		return repository.DefaultBuildings(), repository.DefaultRooms(), nil
	}

	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer repo.Close()

	log.Println("✅ Connected to PostgreSQL database")

	ctx := context.Background()
	buildings, err := repo.LoadBuildings(ctx)
	if err != nil {
		return nil, nil, err
	}
	rooms, err := repo.LoadRooms(ctx)
	if err != nil {
		return nil, nil, err
	}
	return buildings, rooms, nil
}
