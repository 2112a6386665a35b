package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/NeeleshGajare/Global-Location-Backend/internal/api/handler"
	"github.com/NeeleshGajare/Global-Location-Backend/internal/api/middleware"
	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/service"
	"github.com/NeeleshGajare/Global-Location-Backend/internal/infrastructure/config"
	mongodb "github.com/NeeleshGajare/Global-Location-Backend/internal/infrastructure/db/mongo"
	redisdb "github.com/NeeleshGajare/Global-Location-Backend/internal/infrastructure/db/redis"
	"github.com/NeeleshGajare/Global-Location-Backend/internal/infrastructure/geocoding"
	"github.com/NeeleshGajare/Global-Location-Backend/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(client *mongo.Client, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("places_http"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	placeRepo := mongodb.NewPlaceRepository(db)
	txRunner := mongodb.NewTxnRunner(client)
	placeCache := redisdb.NewPlaceCache(rdb)
	geocoder := geocoding.NewClient(cfg.Geocoder.BaseURL, cfg.Geocoder.Timeout, log)
	imageStore := storage.NewLocalImageStore(cfg.UploadDir)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, tokenService, log)
	placeService := service.NewPlaceService(placeRepo, userRepo, txRunner, geocoder, imageStore, placeCache, log)

	userHandler := handler.NewUserHandler(userService)
	placeHandler := handler.NewPlaceHandler(placeService)
	authRequired := middleware.Auth(tokenService)

	// --- User routes (public) ---
	users := e.Group("/api/users")
	users.GET("", userHandler.List)
	users.POST("/signup", userHandler.Signup)
	users.POST("/login", userHandler.Login)

	// --- Place routes: reads are public, writes require a valid token ---
	places := e.Group("/api/places")
	places.GET("/:pid", placeHandler.Get)
	places.GET("/user/:uid", placeHandler.ListByUser)
	places.POST("", placeHandler.Create, authRequired)
	places.PATCH("/:pid", placeHandler.Update, authRequired)
	places.DELETE("/:pid", placeHandler.Delete, authRequired)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
