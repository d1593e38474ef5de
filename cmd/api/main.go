package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kavyaatn/Rag-HR-Chatbot/internal/api/handlers"
	"github.com/kavyaatn/Rag-HR-Chatbot/internal/cache"
	"github.com/kavyaatn/Rag-HR-Chatbot/internal/employee"
	"github.com/kavyaatn/Rag-HR-Chatbot/internal/engine"
	"github.com/kavyaatn/Rag-HR-Chatbot/internal/llm"
	"github.com/kavyaatn/Rag-HR-Chatbot/internal/metrics"
	"github.com/kavyaatn/Rag-HR-Chatbot/internal/middleware/ratelimit"
	"github.com/kavyaatn/Rag-HR-Chatbot/internal/middleware/security"
	"github.com/kavyaatn/Rag-HR-Chatbot/internal/middleware/validation"
	"github.com/kavyaatn/Rag-HR-Chatbot/internal/storage/sqlite"
	"github.com/kavyaatn/Rag-HR-Chatbot/pkg/config"
	appLogger "github.com/kavyaatn/Rag-HR-Chatbot/pkg/logger"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	err = appLogger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting HR Resource Query Chatbot API Server")

	metrics.Init()

	employees, err := loadEmployees(cfg)
	if err != nil {
		appLogger.Fatal("Failed to load employee directory", zap.Error(err))
	}

	ctx := context.Background()

	var embedder engine.Embedder
	if cfg.LLM.APIKey != "" {
		embedder = llm.NewClient(cfg.LLM.APIKey, cfg.LLM.EmbeddingModel, cfg.LLM.TimeoutSec)
	}
	encoder := engine.ChooseEncoder(ctx, embedder, cfg.Engine.MaxFeatures)

	eng, err := engine.NewEngine(ctx, employees, encoder, cfg.Engine.SkillVocabulary)
	if err != nil {
		appLogger.Fatal("Failed to build employee index", zap.Error(err))
	}

	metrics.EmployeesLoaded.Set(float64(len(employees)))
	metrics.EmbeddingStrategy.WithLabelValues(eng.Strategy()).Set(1)

	resultCache := newResultCache(cfg)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(security.HeadersMiddleware(security.HeadersConfig{}))

	limiter := ratelimit.New(ratelimit.Config{
		MaxRequestsPerMinute: cfg.RateLimit.MaxRequestsPerMinute,
		Logger:               appLogger.GetLogger(),
	})
	defer limiter.Stop()
	app.Use(limiter.Middleware())

	app.Use(validation.Middleware(validation.Config{
		Logger: appLogger.GetLogger(),
	}))

	chatHandler := handlers.NewChatHandler(eng, resultCache, cfg.Engine.DefaultMaxResults)
	employeeHandler := handlers.NewEmployeeHandler(eng)
	wsHandler := handlers.NewWebSocketHandler(eng, cfg.Engine.DefaultMaxResults)

	app.Get("/metrics", metrics.MetricsHandler())

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":          "HR Resource Query Chatbot API is running!",
			"status":           "healthy",
			"employees_loaded": len(eng.Employees()),
			"strategy":         eng.Strategy(),
		})
	})

	api.Post("/chat", chatHandler.HandleChat)
	api.Get("/employees", employeeHandler.ListEmployees)
	api.Get("/employees/search", employeeHandler.SearchEmployees)
	api.Get("/employees/:id", employeeHandler.GetEmployee)
	api.Get("/stats", employeeHandler.GetStats)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	api.Get("/ws/chat", websocket.New(wsHandler.HandleConnection))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info("Server starting", zap.String("address", addr))

	go func() {
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Server shutting down gracefully...")
	app.Shutdown()
	appLogger.Info("Server stopped")
}

// loadEmployees resolves the directory source: SQLite store, JSON file, or
// the embedded sample dataset.
func loadEmployees(cfg *config.Config) ([]employee.Employee, error) {
	if cfg.Directory.SQLitePath != "" {
		store, err := sqlite.NewClient(cfg.Directory.SQLitePath)
		if err != nil {
			return nil, err
		}
		return employee.LoadFromStore(store)
	}

	if cfg.Directory.DataFile != "" {
		if _, err := os.Stat(cfg.Directory.DataFile); err == nil {
			return employee.LoadFromFile(cfg.Directory.DataFile)
		}
	}

	return employee.LoadSample(), nil
}

func newResultCache(cfg *config.Config) cache.ResultCache {
	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second

	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB, ttl)
		if err != nil {
			appLogger.Warn("Redis unavailable, using in-memory query cache", zap.Error(err))
		} else {
			return redisCache
		}
	}

	return cache.NewMemoryCache(ttl)
}
