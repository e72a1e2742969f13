package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"catalog-backend/internal/config"
	"catalog-backend/internal/database"
	"catalog-backend/internal/handlers"
	"catalog-backend/internal/middleware"
	"catalog-backend/internal/repository"
	"catalog-backend/internal/routes"
	"catalog-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	loadEnvFile()

	// Load configuration
	cfg := config.Load()

	// Setup logger
	log := setupLogger()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	movieRepo := repository.NewMovieRepository(db)
	serieRepo := repository.NewSerieRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	commandRepo := repository.NewCommandRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	userRepo := repository.NewUserRepository(db)

	authService := services.NewAuthService(userRepo, cfg.Auth, log)

	h := routes.Handlers{
		Movie:    handlers.NewMovieHandler(services.NewMovieService(movieRepo, log), log),
		Serie:    handlers.NewSerieHandler(services.NewSerieService(serieRepo, log), log),
		Location: handlers.NewLocationHandler(services.NewLocationService(locationRepo, log), log),
		Category: handlers.NewCategoryHandler(services.NewCategoryService(categoryRepo, log), log),
		Command:  handlers.NewCommandHandler(services.NewCommandService(commandRepo, log), log),
		Stats:    handlers.NewStatsHandler(services.NewStatsService(statsRepo, log), log),
		Auth:     handlers.NewAuthHandler(authService, log),
		Health:   handlers.NewHealthHandler(db, log),
	}

	app := fiber.New(fiber.Config{
		AppName:      "Catalog Backend API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: customErrorHandler(log),
	})

	setupMiddleware(app)

	routes.Setup(app, h, middleware.JWT(cfg.Auth, authService))

	// Graceful shutdown
	go gracefulShutdown(app, log)

	log.Infof("Catalog Backend API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS, PATCH",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	}))
}

func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		}).Error("Request error")

		return c.Status(code).JSON(fiber.Map{
			"code":        code,
			"userMessage": message,
		})
	}
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Warnf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
