package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/seobuddy/seobuddy-api/docs"
	"github.com/seobuddy/seobuddy-api/internal/api/handler"
	"github.com/seobuddy/seobuddy-api/internal/api/middleware"
	"github.com/seobuddy/seobuddy-api/internal/core/domain"
	"github.com/seobuddy/seobuddy-api/internal/core/ports"
	"github.com/seobuddy/seobuddy-api/internal/core/service"
	"github.com/seobuddy/seobuddy-api/internal/infrastructure/config"
	mongodb "github.com/seobuddy/seobuddy-api/internal/infrastructure/db/mongo"
	redisdb "github.com/seobuddy/seobuddy-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The notifier is constructed by the caller because its worker lifecycle is
// tied to the process, not the router.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, notifier ports.LeadNotifier, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("seobuddy"))
	// Session materialization is global: public pages render differently for
	// signed-in users, so every handler can see the claims.
	e.Use(middleware.Session(cfg.JWTSecret))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	leadRepo := mongodb.NewLeadRepository(db)
	uploadRepo := mongodb.NewUploadRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.SessionTTL)
	postService := service.NewPostService(postRepo, log)
	leadService := service.NewLeadService(leadRepo, redisdb.NewLeadDedup(rdb), notifier, log)
	uploadService := service.NewUploadService(uploadRepo, cfg.Upload.Dir, cfg.Upload.MaxBytes, log)
	dashboardService := service.NewDashboardService(userRepo, postRepo, leadRepo, uploadRepo)

	authHandler := handler.NewAuthHandler(authService, cfg.SessionTTL)
	postHandler := handler.NewPostHandler(postService)
	leadHandler := handler.NewLeadHandler(leadService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	seoHandler := handler.NewSEOHandler(postService, cfg.BaseURL)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Public content ---
	e.GET("/posts", postHandler.ListPublished)
	e.GET("/posts/:slug", postHandler.GetBySlug)
	e.POST("/leads", leadHandler.Capture)
	e.GET("/sitemap.xml", seoHandler.Sitemap)
	e.GET("/robots.txt", seoHandler.Robots)
	e.GET("/feed.xml", seoHandler.Feed)

	// --- Gated dashboards ---
	// Both prefixes require a session (fail closed for anonymous); the gate
	// cross-redirects only on the two exact dashboard paths.
	dash := e.Group("/dashboard", middleware.RequireSession(), middleware.DashboardGate())
	dash.GET("", dashboardHandler.Admin)
	dash.GET("/settings", dashboardHandler.Settings)

	userDash := e.Group("/user-dashboard", middleware.RequireSession(), middleware.DashboardGate())
	userDash.GET("", dashboardHandler.User)

	// --- Authenticated uploads ---
	e.POST("/uploads", uploadHandler.Store, middleware.RequireSession())

	// --- Admin management ---
	admin := e.Group("/admin", middleware.RequireSession(), middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/posts", postHandler.ListAll)
	admin.POST("/posts", postHandler.Create)
	admin.PUT("/posts/:id", postHandler.Update)
	admin.POST("/posts/:id/publish", postHandler.Publish)
	admin.DELETE("/posts/:id", postHandler.Delete)
	admin.GET("/leads", leadHandler.List)
	admin.GET("/uploads", uploadHandler.List)

	// --- Operational surfaces ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
