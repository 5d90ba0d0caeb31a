package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/MinhoKang/sallyrang/internal/i18n"
)

func TestLocalizePicksLanguage(t *testing.T) {
	app := fiber.New()
	app.Use(Localize(i18n.MustNew()))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(i18n.FromContext(c.UserContext()).T("app_title"))
	})

	cases := []struct {
		name   string
		target string
		accept string
		want   string
	}{
		{name: "default korean", target: "/", want: "샐리랑 회원 포털"},
		{name: "accept english", target: "/", accept: "en-US,en;q=0.9", want: "Sallyrang member portal"},
		{name: "query wins", target: "/?lang=ko", accept: "en-US", want: "샐리랑 회원 포털"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.target, nil)
			if tc.accept != "" {
				req.Header.Set(fiber.HeaderAcceptLanguage, tc.accept)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)
			if string(body) != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, body)
			}
		})
	}
}

func TestNoIndexSetsRobotsHeader(t *testing.T) {
	app := fiber.New()
	app.Use(NoIndex())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("X-Robots-Tag"); got != "noindex, nofollow" {
		t.Fatalf("expected noindex header, got %q", got)
	}
}
