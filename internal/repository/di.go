package repository

import (
	"github.com/samber/do/v2"

	"github.com/MinhoKang/sallyrang/internal/config"
	"github.com/MinhoKang/sallyrang/internal/notion"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*MemberRepository, error) {
		c := do.MustInvoke[*config.Config](i)
		return NewMemberRepository(do.MustInvoke[*notion.Client](i), c.NotionMembersDBID), nil
	})
	do.Provide(injector, func(i do.Injector) (*SessionRepository, error) {
		c := do.MustInvoke[*config.Config](i)
		return NewSessionRepository(do.MustInvoke[*notion.Client](i), c.NotionSessionsDBID), nil
	})
}
