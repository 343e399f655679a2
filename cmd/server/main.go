package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/coremade/core-hp/internal/config"
	"github.com/coremade/core-hp/internal/database"
	"github.com/coremade/core-hp/internal/handlers"
	"github.com/coremade/core-hp/internal/middleware"
	"github.com/coremade/core-hp/internal/repository"
	"github.com/coremade/core-hp/internal/services"
)

func main() {
	// A missing .env is fine; the environment may already be set
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Failed to load .env file")
	}

	// Load configuration
	cfg := config.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer func() { _ = database.Close(db) }()

	// Run migrations
	if err := database.MigrateDatabase(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if cfg.SeedCodes {
		if err := database.SeedCodes(db); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed reference codes")
		}
	}

	r := newRouter(cfg, db)

	// Start server
	addr := ":" + cfg.ServerPort
	log.Info().
		Str("addr", addr).
		Str("skill_match_mode", cfg.SkillMatchMode).
		Str("delete_policy", cfg.DeveloperDeletePolicy).
		Msg("Server starting")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func newRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Searches wait at most DBAcquireTimeout for one of DBPoolSize slots
	gate := database.NewGate(cfg.DBPoolSize, cfg.DBAcquireTimeout)

	// Initialize repositories
	developerRepo := repository.NewDeveloperRepository(db, gate)
	skillRepo := repository.NewSkillRecordRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)
	codeRepo := repository.NewCodeRepository(db)

	// Initialize services
	developerService := services.NewDeveloperService(developerRepo, skillRepo, services.DeveloperServiceConfigFrom(cfg))
	projectService := services.NewProjectService(projectRepo, developerRepo, cfg.DefaultPageSize)
	noticeService := services.NewNoticeService(noticeRepo, cfg.DefaultPageSize)
	codeService := services.NewCodeService(codeRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	developerHandler := handlers.NewDeveloperHandler(developerService)
	projectHandler := handlers.NewProjectHandler(projectService, cfg.DefaultPageSize)
	noticeHandler := handlers.NewNoticeHandler(noticeService, cfg.DefaultPageSize)
	codeHandler := handlers.NewCodeHandler(codeService)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	// Health check endpoint
	r.GET("/health", healthHandler.Health)

	developers := r.Group("/developers")
	{
		developers.GET("", developerHandler.ListDevelopers)
		developers.POST("", developerHandler.CreateDeveloper)
		developers.GET("/:id", developerHandler.GetDeveloper)
		developers.PUT("/:id", developerHandler.UpdateDeveloper)
		developers.DELETE("/:id", developerHandler.DeleteDeveloper)
		developers.GET("/:id/skills", developerHandler.ListSkillRecords)
		developers.POST("/:id/skills", developerHandler.AddSkillRecord)
		developers.DELETE("/:id/skills/:startYm", developerHandler.DeleteSkillRecord)
	}

	projects := r.Group("/projects")
	{
		projects.GET("", projectHandler.ListProjects)
		projects.POST("", projectHandler.CreateProject)
		projects.GET("/developers", developerHandler.SearchDevelopers)
		projects.GET("/:id", projectHandler.GetProject)
		projects.PUT("/:id", projectHandler.UpdateProject)
		projects.DELETE("/:id", projectHandler.DeleteProject)
		projects.GET("/:id/assignments", projectHandler.ListAssignments)
		projects.POST("/:id/assignments", projectHandler.AssignDeveloper)
		projects.DELETE("/:id/assignments/:developerId", projectHandler.RemoveAssignment)
	}

	notices := r.Group("/notices")
	{
		notices.GET("", noticeHandler.ListNotices)
		notices.POST("", noticeHandler.CreateNotice)
		notices.GET("/:id", noticeHandler.GetNotice)
		notices.PUT("/:id", noticeHandler.UpdateNotice)
		notices.DELETE("/:id", noticeHandler.DeleteNotice)
	}

	codes := r.Group("/codes")
	{
		codes.GET("/:group", codeHandler.ListCodes)
		codes.POST("", codeHandler.SaveCode)
		codes.DELETE("/:group/:code", codeHandler.DeleteCode)
	}

	return r
}
