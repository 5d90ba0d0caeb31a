package main

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/samber/do/v2"

	"github.com/MinhoKang/sallyrang/internal/config"
	"github.com/MinhoKang/sallyrang/internal/handlers"
	"github.com/MinhoKang/sallyrang/internal/routes"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := mustLoadConfig()
	log := initLogger(cfg)
	if missing := cfg.MissingNotionSettings(); len(missing) > 0 {
		log.Warn("notion is not fully configured; lookups will fail as not found", "missing", missing)
	}

	injector := setupDI(cfg, log)

	app := fiber.New(fiber.Config{
		AppName:      "sallyrang",
		ErrorHandler: errorHandler(log),
	})
	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	if err := routes.RegisterRoutes(app, injector); err != nil {
		log.Error("failed to register routes", "error", err)
		os.Exit(1)
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Error("shutdown failed", "error", err)
		}
	}()

	log.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

func mustLoadConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("config validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

func initLogger(cfg *config.Config) *slog.Logger {
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
	return log
}

func setupDI(cfg *config.Config, log *slog.Logger) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, log)
	routes.RegisterDI(injector)

	return injector
}

// errorHandler keeps unexpected handler errors out of the response body.
func errorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}
		if code == fiber.StatusNotFound {
			return handlers.NotFoundPage(c)
		}
		log.ErrorContext(c.UserContext(), "request failed", "path", c.Path(), "error", err)
		return c.Status(code).JSON(fiber.Map{"error": "Internal server error"})
	}
}
