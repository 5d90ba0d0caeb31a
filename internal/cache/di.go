package cache

import (
	"github.com/samber/do/v2"

	"github.com/MinhoKang/sallyrang/internal/config"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*RenderCache, error) {
		c := do.MustInvoke[*config.Config](i)
		return New(c.RenderCacheSize, c.RenderRevalidate())
	})
}
