package handlers

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/MinhoKang/sallyrang/internal/cache"
	"github.com/MinhoKang/sallyrang/internal/config"
	"github.com/MinhoKang/sallyrang/internal/services"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*MemberHandler, error) {
		return NewMemberHandler(
			do.MustInvoke[*services.PortalService](i),
			do.MustInvoke[*cache.RenderCache](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (*SessionHandler, error) {
		return NewSessionHandler(
			do.MustInvoke[*services.PortalService](i),
			do.MustInvoke[*services.CommentService](i),
			do.MustInvoke[*cache.RenderCache](i),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (*AdminHandler, error) {
		return NewAdminHandler(
			do.MustInvoke[*services.PortalService](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})
}
