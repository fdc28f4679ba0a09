package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lamaison/config"
	"lamaison/handlers"
	"lamaison/middleware"
	"lamaison/routes"
	"lamaison/services/dialog"
	"lamaison/services/relay"
	"lamaison/services/restaurant"
	"lamaison/services/session"
	"lamaison/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Restaurant data: built-in defaults, optionally overridden from YAML.
	menu := restaurant.DefaultMenu()
	if path := config.AppConfig.MenuFile; path != "" {
		loaded, err := restaurant.LoadMenuFile(path)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to load menu file: %v", err)
		}
		menu = loaded
	}
	schedule := restaurant.DefaultSchedule()
	if path := config.AppConfig.ScheduleFile; path != "" {
		loaded, err := restaurant.LoadScheduleFile(path)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to load schedule file: %v", err)
		}
		schedule = loaded
	}

	catalog := restaurant.NewCatalog(menu)
	table := restaurant.NewAvailabilityTable(schedule)
	engine := dialog.NewEngine(catalog, table)

	// Session store: in-process by default, Redis when configured.
	ttl := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
	var sessions session.Store
	var redisClient *redis.Client
	if config.AppConfig.SessionStore == "redis" {
		utils.InitSessionCache()
		redisClient = utils.GetSessionClient()
		sessions = session.NewRedisStore(redisClient, ttl)
	} else {
		sessions = session.NewMemoryStore(ttl)
	}
	utils.StartHealthMonitor(redisClient)

	// Hosted-model relay, only when an API key is configured.
	var relayClient *relay.Client
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		rc, err := relay.NewClient(context.Background(), key, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize model relay: %v", err)
		}
		relayClient = rc
		defer relayClient.Close()
	} else {
		logger.Warn("GEMINI_API_KEY not set, chat relay disabled")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	chatHandler := handlers.NewChatHandler(engine, sessions, relayClient, config.AppConfig.RelayFallback)
	restaurantHandler := handlers.NewRestaurantHandler(catalog, table)
	routes.RegisterRoutes(router, chatHandler, restaurantHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
