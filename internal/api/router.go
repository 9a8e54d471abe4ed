package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agrilink/farm-market/internal/api/handler"
	"github.com/agrilink/farm-market/internal/api/middleware"
	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
	"github.com/agrilink/farm-market/internal/core/service"
	"github.com/agrilink/farm-market/internal/core/token"
	"github.com/agrilink/farm-market/internal/infrastructure/config"
	mongodb "github.com/agrilink/farm-market/internal/infrastructure/db/mongo"
	redisdb "github.com/agrilink/farm-market/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// events receives booking lifecycle events; pass the dispatcher built in main.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	cfg *config.Config,
	events service.EventSink,
	audit ports.BookingEventService,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("farm_market"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	adminRepo := mongodb.NewAdminRepository(db)
	farmRepo := mongodb.NewFarmRepository(db)
	cropRepo := mongodb.NewCropRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	cropInfoRepo := mongodb.NewCropInfoRepository(db)

	issuer := token.NewIssuer(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, adminRepo, issuer, service.AuthConfig{
		UserTokenTTL:  cfg.UserTokenTTL,
		AdminTokenTTL: cfg.AdminTokenTTL,
		HashCost:      cfg.BcryptCost,
	}, log)
	adminService := service.NewAdminService(userRepo, farmRepo, cropRepo, cfg.BcryptCost, log)
	farmService := service.NewFarmService(farmRepo, log)
	cropService := service.NewCropService(cropRepo, log)
	bookingService := service.NewBookingService(bookingRepo, events, log)
	productService := service.NewProductService(productRepo, log)
	cropInfoService := service.NewCropInfoService(cropInfoRepo, redisdb.NewCropInfoCache(rdb), log)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(adminService)
	farmHandler := handler.NewFarmHandler(farmService)
	cropHandler := handler.NewCropHandler(cropService)
	bookingHandler := handler.NewBookingHandler(bookingService, audit)
	productHandler := handler.NewProductHandler(productService)
	cropInfoHandler := handler.NewCropInfoHandler(cropInfoService)

	gate := middleware.Auth(issuer, userRepo, adminRepo)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	// --- Ops endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	api := e.Group("/api")

	// --- Auth (public) ---
	api.POST("/users/register", authHandler.RegisterUser)
	api.POST("/users/login", authHandler.LoginUser)
	api.POST("/admin/register", authHandler.RegisterAdmin)
	api.POST("/admin/login", authHandler.LoginAdmin)

	// --- Profile (any authenticated identity) ---
	api.GET("/users/profile", authHandler.Profile, gate)
	api.PUT("/users/profile", authHandler.UpdateProfile, gate)

	// --- Admin management (gate + admin role) ---
	admin := api.Group("/admin", gate, adminOnly)
	admin.GET("/products", productHandler.List)
	admin.POST("/products", productHandler.Create)
	admin.GET("/products/:id", productHandler.Get)
	admin.PUT("/products/:id", productHandler.Update)
	admin.DELETE("/products/:id", productHandler.Delete)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/:id", adminHandler.GetUser)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)

	// --- Products (public reads) ---
	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)

	// --- Farms (public listing, ownership-scoped mutations) ---
	api.GET("/farms", farmHandler.ListAll)
	api.POST("/farms", farmHandler.Create, gate)
	api.GET("/farms/user/:userId", farmHandler.ListByOwner, gate)
	api.GET("/farms/:id", farmHandler.Get, gate)
	api.PUT("/farms/:id", farmHandler.Update, gate)
	api.DELETE("/farms/:id", farmHandler.Delete, gate)

	// --- Crops (all ownership-scoped) ---
	crops := api.Group("/crops", gate)
	crops.POST("", cropHandler.Create)
	crops.GET("/user/:userId", cropHandler.ListByOwner)
	crops.GET("/:id", cropHandler.Get)
	crops.PUT("/:id", cropHandler.Update)
	crops.DELETE("/:id", cropHandler.Delete)

	// --- Bookings (self-scoped reads, admin management) ---
	bookings := api.Group("/bookings", gate)
	bookings.POST("", bookingHandler.Create)
	bookings.GET("/user/:userId", bookingHandler.ListByOwner)
	bookings.GET("", bookingHandler.ListAll, adminOnly)
	bookings.GET("/:id/events", bookingHandler.History, adminOnly)
	bookings.PUT("/:id/status", bookingHandler.UpdateStatus, adminOnly)
	bookings.DELETE("/:id", bookingHandler.Delete, adminOnly)

	// --- Crop reference data (public reads, admin mutations) ---
	api.GET("/cropinfos", cropInfoHandler.List)
	api.GET("/cropinfos/:id", cropInfoHandler.Get)
	api.POST("/cropinfos", cropInfoHandler.Create, gate, adminOnly)
	api.PUT("/cropinfos/:id", cropInfoHandler.Update, gate, adminOnly)
	api.DELETE("/cropinfos/:id", cropInfoHandler.Delete, gate, adminOnly)

	return e
}
