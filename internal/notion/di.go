package notion

import (
	"github.com/samber/do/v2"

	"github.com/MinhoKang/sallyrang/internal/config"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Client, error) {
		c := do.MustInvoke[*config.Config](i)
		return NewClient(Config{
			APIKey:  c.NotionAPIKey,
			BaseURL: c.NotionAPIBaseURL,
			Version: c.NotionAPIVersion,
		}), nil
	})
}
