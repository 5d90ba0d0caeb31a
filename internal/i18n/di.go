package i18n

import "github.com/samber/do/v2"

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(do.Injector) (*Translator, error) {
		return New()
	})
}
