package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"seekr/backend/internal/config"
	"seekr/backend/internal/handlers"
	"seekr/backend/internal/logger"
	"seekr/backend/internal/models"
	"seekr/backend/internal/repositories"
	"seekr/backend/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()
	log.Info("config loaded", zap.String("env", cfg.Server.Env))

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}

	// Initialize repositories
	profileRepo := repositories.NewProfileRepository(db)
	oppRepo := repositories.NewOpportunityRepository(db)

	if err := oppRepo.SeedIfEmpty(models.SeedOpportunities()); err != nil {
		log.Fatal("failed to seed opportunities", zap.Error(err))
	}
	log.Info("repositories initialized")

	// Initialize services
	extractor := services.NewTextExtractor(log)
	heuristic := services.NewHeuristicStrategy(log)

	chatClient := services.NewOpenAIClient(cfg, log)
	assisted := services.NewAssistedStrategy(chatClient, cfg.OpenAI.ParseModel, log)
	matcher := services.NewMatcher(log)
	drafter := services.NewDrafter(chatClient, cfg.OpenAI.DraftModel, log)
	log.Info("services initialized")

	// Initialize handlers
	resumeHandler := handlers.NewResumeHandler(extractor, heuristic, assisted, cfg.Storage.MaxFileSize, log)
	profileHandler := handlers.NewProfileHandler(profileRepo, log)
	matchHandler := handlers.NewMatchHandler(profileRepo, oppRepo, matcher, log)
	draftHandler := handlers.NewDraftHandler(profileRepo, oppRepo, drafter, log)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Seekr API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1024*1024,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	app.Post("/parse-resume", resumeHandler.HandleParseResume)
	app.Get("/profiles/:id", profileHandler.HandleGetProfile)
	app.Put("/profiles/:id", profileHandler.HandleUpdateProfile)
	app.Put("/profiles/:id/resume", profileHandler.HandleUpdateResume)
	app.Post("/match", matchHandler.HandleMatch)
	app.Post("/draft-email", draftHandler.HandleDraftEmail)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Seekr API is running!",
			"endpoints": []string{
				"POST /parse-resume",
				"GET /profiles/:id",
				"PUT /profiles/:id",
				"PUT /profiles/:id/resume",
				"POST /match",
				"POST /draft-email",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
