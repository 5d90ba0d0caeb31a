package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/MinhoKang/sallyrang/pkg/utils"
)

func newAdminApp(secret string) *fiber.App {
	app := fiber.New()
	app.Get("/private", AdminRequired(secret), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("role").(string))
	})
	return app
}

func TestAdminRequired(t *testing.T) {
	secret := "supersecret"
	admin, err := utils.GenerateToken("admin", AdminRole, secret)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	member, _ := utils.GenerateToken("m1", "member", secret)

	cases := []struct {
		name   string
		header string
		cookie string
		want   int
	}{
		{name: "missing", want: fiber.StatusUnauthorized},
		{name: "bearer", header: "Bearer " + admin, want: fiber.StatusOK},
		{name: "cookie", cookie: admin, want: fiber.StatusOK},
		{name: "wrong role", header: "Bearer " + member, want: fiber.StatusUnauthorized},
		{name: "garbage", header: "Bearer nope", want: fiber.StatusUnauthorized},
		{name: "bad scheme", header: "Token " + admin, want: fiber.StatusUnauthorized},
	}

	app := newAdminApp(secret)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/private", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.Header.Set("Cookie", AdminCookieName+"="+tc.cookie)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.StatusCode)
			}
		})
	}
}

func TestNoIndexHeader(t *testing.T) {
	app := fiber.New()
	app.Use(NoIndex())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if got := resp.Header.Get("X-Robots-Tag"); got != "noindex, nofollow" {
		t.Fatalf("unexpected header %q", got)
	}
}
