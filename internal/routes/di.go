package routes

import (
	"github.com/samber/do/v2"

	"github.com/MinhoKang/sallyrang/internal/cache"
	"github.com/MinhoKang/sallyrang/internal/handlers"
	"github.com/MinhoKang/sallyrang/internal/i18n"
	"github.com/MinhoKang/sallyrang/internal/notion"
	"github.com/MinhoKang/sallyrang/internal/repository"
	"github.com/MinhoKang/sallyrang/internal/services"
)

// RegisterDI wires every package of the portal into injector. The caller
// provides *config.Config and *slog.Logger first.
func RegisterDI(injector do.Injector) {
	notion.RegisterDI(injector)
	repository.RegisterDI(injector)
	cache.RegisterDI(injector)
	i18n.RegisterDI(injector)
	services.RegisterDI(injector)
	handlers.RegisterDI(injector)
}
