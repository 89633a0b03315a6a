package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pixelforge/nexus-api/internal/api/handler"
	"github.com/pixelforge/nexus-api/internal/api/middleware"
	"github.com/pixelforge/nexus-api/internal/core/domain"
	"github.com/pixelforge/nexus-api/internal/core/ports"
	"github.com/pixelforge/nexus-api/internal/core/service"
	mongodb "github.com/pixelforge/nexus-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pixelforge/nexus-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/pixelforge/nexus-api/internal/infrastructure/http/handlers"
	"github.com/pixelforge/nexus-api/internal/pkg/config"
	"github.com/pixelforge/nexus-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *goredis.Client, fileStore ports.FileStore, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Component("api"))

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	documentRepo := mongodb.NewDocumentRepository(db)
	projectCache := redisdb.NewProjectCache(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, logger.Component("auth_service"))
	userService := service.NewUserService(userRepo)
	projectService := service.NewProjectService(projectRepo, userRepo, projectCache, logger.Component("project_service"))
	assignmentService := service.NewAssignmentService(projectRepo, userRepo, projectCache, logger.Component("assignment_service"))
	documentService := service.NewDocumentService(documentRepo, projectRepo, fileStore, logger.Component("document_service"))

	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService, assignmentService)
	documentHandler := handler.NewDocumentHandler(documentService)

	auth := middleware.Auth(tokenService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	leadOnly := middleware.RBAC(domain.RoleProjectLead)
	adminOrLead := middleware.RBAC(domain.RoleAdmin, domain.RoleProjectLead)

	// --- Users / auth ---
	users := e.Group("/api/users")
	users.POST("/login", authHandler.Login)
	users.POST("/register", authHandler.Register, auth, adminOnly)
	users.GET("", userHandler.List, auth, adminOnly)
	users.GET("/developers", userHandler.ListDevelopers, auth, leadOnly)
	users.PUT("/password", authHandler.UpdatePassword, auth)

	e.GET("/api/auth/me", authHandler.Me, auth)

	// --- Projects ---
	projects := e.Group("/api/projects", auth)
	projects.POST("", projectHandler.Create, adminOnly)
	projects.GET("", projectHandler.ListActive)
	projects.GET("/my-projects", projectHandler.ListMine)
	projects.GET("/:id", projectHandler.Get)
	projects.PUT("/:id/complete", projectHandler.Complete, adminOnly)
	// Assignment routes gate on Project Lead exactly; Admin is not in the set.
	projects.PUT("/:id/assign", projectHandler.Assign, leadOnly)
	projects.PUT("/:id/unassign", projectHandler.Unassign, leadOnly)
	projects.GET("/:id/available-developers", projectHandler.AvailableDevelopers, leadOnly)

	// --- Documents ---
	documents := e.Group("/api/documents", auth)
	documents.POST("/:projectId", documentHandler.Upload, adminOrLead)
	documents.GET("/:projectId", documentHandler.List)
	e.Static("/uploads", cfg.UploadDir)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
