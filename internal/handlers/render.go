package handlers

import (
	"bytes"
	"errors"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"

	"github.com/MinhoKang/sallyrang/internal/i18n"
	"github.com/MinhoKang/sallyrang/internal/services"
	"github.com/MinhoKang/sallyrang/internal/views"
)

type pageCache interface {
	Stamp(path string) uint64
	Get(path, lang string) ([]byte, bool)
	Set(path, lang string, stamp uint64, body []byte) bool
}

// pageLanguage is the cache variant a request renders in.
func pageLanguage(c *fiber.Ctx) string {
	return i18n.FromContext(c.UserContext()).Tag().String()
}

func renderPage(c *fiber.Ctx, status int, meta views.PageMeta, body templ.Component) ([]byte, error) {
	var buf bytes.Buffer
	if err := views.Page(meta, body).Render(c.UserContext(), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), sendHTML(c, status, buf.Bytes())
}

func sendHTML(c *fiber.Ctx, status int, body []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(body)
}

func renderNotFound(c *fiber.Ctx) error {
	_, err := renderPage(c, fiber.StatusNotFound, views.PageMeta{}, views.NotFound())
	return err
}

// NotFoundPage is the catch-all for unknown routes.
func NotFoundPage(c *fiber.Ctx) error {
	return renderNotFound(c)
}

// mapFetchError turns every failed read into a 404. The cause stays in the
// service log.
func mapFetchError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}

func mapCommentError(c *fiber.Ctx, err error) error {
	result := services.CommentResult{Error: services.CommentErrorMessage(c.UserContext(), err)}
	switch {
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrCommentTooLong):
		return c.Status(fiber.StatusBadRequest).JSON(result)
	case errors.Is(err, services.ErrRateLimited):
		return c.Status(fiber.StatusTooManyRequests).JSON(result)
	default:
		return c.Status(fiber.StatusBadGateway).JSON(result)
	}
}
