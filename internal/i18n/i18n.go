package i18n

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLanguage is used when the request names nothing we have.
var DefaultLanguage = language.Korean

type Translator struct {
	bundle  *goi18n.Bundle
	matcher language.Matcher
}

func New() (*Translator, error) {
	bundle := goi18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.Glob(localeFS, "locales/*.yaml")
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	// The first supported tag is what the matcher falls back to.
	tags := []language.Tag{DefaultLanguage}
	for _, tag := range bundle.LanguageTags() {
		if tag != DefaultLanguage {
			tags = append(tags, tag)
		}
	}

	return &Translator{
		bundle:  bundle,
		matcher: language.NewMatcher(tags),
	}, nil
}

func MustNew() *Translator {
	t, err := New()
	if err != nil {
		panic(err)
	}
	return t
}

// For binds messages to an Accept-Language header value (or a bare tag).
func (t *Translator) For(accept string) *Messages {
	tag, _ := language.MatchStrings(t.matcher, accept)
	base, _ := tag.Base()
	return &Messages{
		localizer: goi18n.NewLocalizer(t.bundle, accept, DefaultLanguage.String()),
		tag:       language.Make(base.String()),
	}
}

type Messages struct {
	localizer *goi18n.Localizer
	tag       language.Tag
}

// T returns the message for id. An unknown id comes back verbatim.
func (m *Messages) T(id string, data ...map[string]any) string {
	cfg := &goi18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}
	msg, err := m.localizer.Localize(cfg)
	if err != nil {
		return id
	}
	return msg
}

func (m *Messages) Tag() language.Tag {
	return m.tag
}

type ctxKey struct{}

var fallback = MustNew().For(DefaultLanguage.String())

func NewContext(ctx context.Context, m *Messages) context.Context {
	return context.WithValue(ctx, ctxKey{}, m)
}

// FromContext returns the request's messages, or Korean ones.
func FromContext(ctx context.Context) *Messages {
	if m, ok := ctx.Value(ctxKey{}).(*Messages); ok && m != nil {
		return m
	}
	return fallback
}
