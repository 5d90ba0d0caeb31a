package handlers

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/MinhoKang/sallyrang/internal/cache"
	"github.com/MinhoKang/sallyrang/internal/i18n"
	"github.com/MinhoKang/sallyrang/internal/models"
	"github.com/MinhoKang/sallyrang/internal/services"
	"github.com/MinhoKang/sallyrang/internal/views"
)

// flashParam carries the outcome of a comment post across the redirect.
const flashParam = "comment"

const flashSaved = "saved"

var commentOutcomes = []struct {
	code string
	err  error
}{
	{code: "invalid", err: services.ErrInvalidInput},
	{code: "too_long", err: services.ErrCommentTooLong},
	{code: "rate_limited", err: services.ErrRateLimited},
	{code: "failed", err: services.ErrCommentFailed},
}

type SessionHandler struct {
	portal   sessionPortal
	comments sessionCommenter
	pages    pageCache
}

type sessionPortal interface {
	GetSession(ctx context.Context, sessionID string) (*models.SessionDetail, error)
}

type sessionCommenter interface {
	SaveComment(ctx context.Context, memberID, sessionID, comment string) error
}

func NewSessionHandler(portal *services.PortalService, comments *services.CommentService, pages *cache.RenderCache) *SessionHandler {
	return &SessionHandler{portal: portal, comments: comments, pages: pages}
}

type updateCommentRequest struct {
	MemberID string `json:"memberId"`
	Comment  string `json:"comment"`
}

func (h *SessionHandler) SessionPage(c *fiber.Ctx) error {
	memberID := strings.TrimSpace(c.Params("id"))
	sessionID := strings.TrimSpace(c.Params("sessionId"))
	key := cache.SessionKey(memberID, sessionID)
	lang := pageLanguage(c)

	flash := flashFor(c.UserContext(), c.Query(flashParam))
	if flash == nil {
		if body, ok := h.pages.Get(key, lang); ok {
			return sendHTML(c, fiber.StatusOK, body)
		}
	}
	stamp := h.pages.Stamp(key)

	detail, err := h.portal.GetSession(c.UserContext(), sessionID)
	if err != nil {
		return renderNotFound(c)
	}

	body, err := renderPage(c, fiber.StatusOK, views.PageMeta{Title: detail.Title}, views.SessionPage(views.SessionPageData{
		MemberID: memberID,
		Detail:   *detail,
		Flash:    flash,
	}))
	if err != nil {
		return err
	}
	if flash == nil {
		h.pages.Set(key, lang, stamp, body)
	}
	return nil
}

// PostComment is the form path. It always redirects back to the session
// page with the outcome in the query.
func (h *SessionHandler) PostComment(c *fiber.Ctx) error {
	memberID := strings.TrimSpace(c.Params("id"))
	sessionID := strings.TrimSpace(c.Params("sessionId"))

	err := h.comments.SaveComment(c.UserContext(), memberID, sessionID, c.FormValue("comment"))

	q := url.Values{}
	q.Set(flashParam, commentOutcome(err))
	return c.Redirect(views.SessionPath(memberID, sessionID)+"?"+q.Encode()+"#comment", fiber.StatusSeeOther)
}

func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	detail, err := h.portal.GetSession(c.UserContext(), strings.TrimSpace(c.Params("id")))
	if err != nil {
		return mapFetchError(c, err)
	}
	return c.JSON(fiber.Map{"session": detail})
}

func (h *SessionHandler) UpdateComment(c *fiber.Ctx) error {
	var req updateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	sessionID := strings.TrimSpace(c.Params("id"))
	if err := h.comments.SaveComment(c.UserContext(), strings.TrimSpace(req.MemberID), sessionID, req.Comment); err != nil {
		return mapCommentError(c, err)
	}
	return c.JSON(services.CommentResult{Success: true})
}

func commentOutcome(err error) string {
	if err == nil {
		return flashSaved
	}
	for _, o := range commentOutcomes {
		if errors.Is(err, o.err) {
			return o.code
		}
	}
	return "failed"
}

func flashFor(ctx context.Context, code string) *views.Flash {
	if code == "" {
		return nil
	}
	if code == flashSaved {
		return &views.Flash{Success: true, Message: i18n.FromContext(ctx).T("comment_saved")}
	}
	err := services.ErrCommentFailed
	for _, o := range commentOutcomes {
		if o.code == code {
			err = o.err
			break
		}
	}
	return &views.Flash{Message: services.CommentErrorMessage(ctx, err)}
}
