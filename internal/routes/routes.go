package routes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"

	"github.com/MinhoKang/sallyrang/internal/config"
	"github.com/MinhoKang/sallyrang/internal/handlers"
	"github.com/MinhoKang/sallyrang/internal/i18n"
	"github.com/MinhoKang/sallyrang/internal/middleware"
)

func RegisterRoutes(app *fiber.App, injector do.Injector) error {
	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}
	translator, err := do.Invoke[*i18n.Translator](injector)
	if err != nil {
		return fmt.Errorf("resolve translator: %w", err)
	}
	memberHandler, err := do.Invoke[*handlers.MemberHandler](injector)
	if err != nil {
		return fmt.Errorf("resolve member handler: %w", err)
	}
	sessionHandler, err := do.Invoke[*handlers.SessionHandler](injector)
	if err != nil {
		return fmt.Errorf("resolve session handler: %w", err)
	}
	adminHandler, err := do.Invoke[*handlers.AdminHandler](injector)
	if err != nil {
		return fmt.Errorf("resolve admin handler: %w", err)
	}

	if err := registerDocsRoutes(app, cfg); err != nil {
		return err
	}

	app.Use(middleware.Localize(translator))

	members := app.Group("/members", middleware.NoIndex())
	members.Get("/:id", memberHandler.DashboardPage)
	members.Get("/:id/sessions/:sessionId", sessionHandler.SessionPage)
	members.Post("/:id/sessions/:sessionId/comment", sessionHandler.PostComment)

	admin := app.Group("/admin", middleware.NoIndex())
	admin.Get("", adminHandler.Index)
	admin.Post("/login", adminHandler.Login)
	admin.Post("/logout", adminHandler.Logout)

	api := app.Group("/api", middleware.NoIndex())
	api.Get("/members/:id", memberHandler.GetMember)
	api.Get("/members/:id/sessions", memberHandler.ListSessions)
	api.Get("/members/:id/dashboard", memberHandler.GetDashboard)
	api.Get("/sessions/:id", sessionHandler.GetSession)
	api.Put("/sessions/:id/comment", sessionHandler.UpdateComment)
	api.Get("/admin/members", middleware.AdminRequired(cfg.JWTSecret), adminHandler.ListMembers)

	app.Use(handlers.NotFoundPage)

	return nil
}
