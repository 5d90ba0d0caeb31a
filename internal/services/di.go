package services

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/MinhoKang/sallyrang/internal/cache"
	"github.com/MinhoKang/sallyrang/internal/repository"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*PortalService, error) {
		return NewPortalService(
			do.MustInvoke[*repository.MemberRepository](i),
			do.MustInvoke[*repository.SessionRepository](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (*CommentService, error) {
		return NewCommentService(
			do.MustInvoke[*repository.SessionRepository](i),
			do.MustInvoke[*cache.RenderCache](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})
}
