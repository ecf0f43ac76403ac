package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/seniorconnect/seniorconnect-api/config"
	"github.com/seniorconnect/seniorconnect-api/internal/cache"
	"github.com/seniorconnect/seniorconnect-api/internal/handlers"
	"github.com/seniorconnect/seniorconnect-api/internal/middleware"
	"github.com/seniorconnect/seniorconnect-api/internal/repository"
	"github.com/seniorconnect/seniorconnect-api/internal/services"
	"github.com/seniorconnect/seniorconnect-api/internal/storage"
	"github.com/seniorconnect/seniorconnect-api/pkg/jwt"
	"github.com/seniorconnect/seniorconnect-api/pkg/logger"
	"github.com/seniorconnect/seniorconnect-api/pkg/metrics"
	"github.com/seniorconnect/seniorconnect-api/pkg/profiling"
	"github.com/seniorconnect/seniorconnect-api/pkg/tracing"
)

// registerAPIRoutes registers the application routes on the /api group
func registerAPIRoutes(
	api *gin.RouterGroup,
	cfg *config.Config,
	tokenManager *jwt.TokenManager,
	generalRateLimiter, authRateLimiter, registrationRateLimiter *middleware.RateLimiter,
	authHandler *handlers.AuthHandler,
	mentorHandler *handlers.MentorHandler,
	registrationHandler *handlers.RegistrationHandler,
	profileHandler *handlers.ProfileHandler,
	favoriteHandler *handlers.FavoriteHandler,
	viewHandler *handlers.ViewHandler,
) {
	sessionRequired := middleware.SessionMiddleware(tokenManager, cfg.Session.CookieDomain, cfg.Session.CookieSecure)
	sessionOptional := middleware.OptionalSessionMiddleware(tokenManager)

	// Authentication (public)
	auth := api.Group("/auth")
	auth.POST("/login", authRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(10*1024), authHandler.Login)
	auth.POST("/logout", generalRateLimiter.Middleware(), authHandler.Logout)
	auth.GET("/session", generalRateLimiter.Middleware(), sessionRequired, authHandler.Session)

	// Mentor directory (session required)
	api.GET("/mentors", generalRateLimiter.Middleware(), sessionRequired, mentorHandler.List)
	api.GET("/mentors/:id", generalRateLimiter.Middleware(), sessionRequired, mentorHandler.GetByID)

	// Mentor registration and own profile
	api.POST("/register-mentor", registrationRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), sessionRequired, registrationHandler.Register)
	api.GET("/profile", generalRateLimiter.Middleware(), sessionRequired, profileHandler.GetOwn)

	// Favorites
	api.GET("/favorites", generalRateLimiter.Middleware(), sessionRequired, favoriteHandler.List)
	api.PUT("/favorites/:mentorId", generalRateLimiter.Middleware(), sessionRequired, favoriteHandler.Add)
	api.DELETE("/favorites/:mentorId", generalRateLimiter.Middleware(), sessionRequired, favoriteHandler.Remove)

	// View state
	api.GET("/view", generalRateLimiter.Middleware(), sessionOptional, viewHandler.Get)
	api.POST("/view/onboarding", generalRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(10*1024), sessionRequired, viewHandler.CompleteOnboarding)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting SeniorConnect API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
		zap.String("storage_driver", cfg.Storage.Driver),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.ExporterEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Initialize metrics with service name from config
	metrics.Init(cfg.Observability.ServiceName)
	metrics.RecordInfrastructureMetrics()

	// Initialize continuous profiling (no-op when disabled)
	stopProfiler, err := profiling.InitProfiler(
		cfg.Profiling,
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
	)
	if err != nil {
		logger.Warn("Failed to initialize profiler", zap.Error(err))
	} else {
		defer stopProfiler()
	}

	// Initialize the key-value storage substrate
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	store, err := storage.New(startupCtx, cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err), zap.String("driver", cfg.Storage.Driver))
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("Failed to close storage", zap.Error(closeErr))
		}
	}()

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(store)
	favoriteRepo := repository.NewFavoriteRepository(store)
	onboardingRepo := repository.NewOnboardingRepository(store)

	// Seed demo data for local development
	if cfg.Seed.DemoData {
		if err := repository.SeedDemoData(startupCtx, profileRepo); err != nil {
			logger.Fatal("Failed to seed demo data", zap.Error(err))
		}
	}

	// Initialize directory cache synchronously before accepting requests so
	// the container is only marked healthy with a populated cache
	directoryCache := cache.NewDirectoryCache(profileRepo.GetAll, cfg.Cache.DirectoryTTLSeconds)
	var directorySource services.DirectorySource = directoryCache
	var directoryInvalidator services.DirectoryInvalidator = directoryCache
	cacheReadyFunc := directoryCache.IsReady
	if cfg.Cache.DisableDirectoryCache {
		logger.Warn("Directory cache is DISABLED - reading from storage on every request")
		directorySource = profileRepo
		directoryInvalidator = nil
		cacheReadyFunc = func() bool { return true }
	} else {
		if err := directoryCache.Initialize(); err != nil {
			logger.Fatal("Failed to initialize directory cache", zap.Error(err))
		}
	}

	// Initialize session token manager
	tokenManager := jwt.NewTokenManager(cfg.Session.JWTSecret, cfg.Session.JWTIssuer, cfg.Session.SessionTTLHours)

	// Initialize services
	authService := services.NewAuthService(cfg, tokenManager)
	viewService := services.NewViewService(profileRepo, onboardingRepo)
	directoryService := services.NewDirectoryService(directorySource, profileRepo, favoriteRepo)
	registrationService := services.NewRegistrationService(profileRepo, directoryInvalidator)
	favoriteService := services.NewFavoriteService(favoriteRepo, profileRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, viewService, cfg)
	mentorHandler := handlers.NewMentorHandler(directoryService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	profileHandler := handlers.NewProfileHandler(registrationService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	viewHandler := handlers.NewViewHandler(viewService)
	healthHandler := handlers.NewHealthHandler(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return store.Ping(ctx)
	}, cacheReadyFunc)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS: only allow configured origins; credentials needed for the
	// session cookie
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:5173", "http://127.0.0.1:5173")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiters per endpoint class
	generalRateLimiter := middleware.NewRateLimiter(100, 200)       // 100 req/sec, burst of 200
	authRateLimiter := middleware.NewRateLimiter(1, 5)              // 1 req/sec, burst of 5 (login abuse prevention)
	registrationRateLimiter := middleware.NewRateLimiter(0.0333, 3) // 2 req/min, burst of 3

	// API routes
	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	registerAPIRoutes(api, cfg, tokenManager,
		generalRateLimiter, authRateLimiter, registrationRateLimiter,
		authHandler, mentorHandler, registrationHandler, profileHandler, favoriteHandler, viewHandler)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
