package handlers

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"

	"github.com/MinhoKang/sallyrang/internal/cache"
	"github.com/MinhoKang/sallyrang/internal/i18n"
	"github.com/MinhoKang/sallyrang/internal/models"
	"github.com/MinhoKang/sallyrang/internal/services"
	"github.com/MinhoKang/sallyrang/internal/views"
)

const (
	slotProfile  = "profile"
	slotSessions = "sessions"
)

type memberPortal interface {
	GetMember(ctx context.Context, memberID string) (*models.Member, error)
	GetSessions(ctx context.Context, memberID string) ([]models.Session, error)
	GetDashboard(ctx context.Context, memberID string) (*services.Dashboard, error)
}

type MemberHandler struct {
	portal memberPortal
	pages  pageCache
	logger *slog.Logger
	now    func() time.Time
}

func NewMemberHandler(portal *services.PortalService, pages *cache.RenderCache, logger *slog.Logger) *MemberHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MemberHandler{portal: portal, pages: pages, logger: logger, now: time.Now}
}

// DashboardPage streams the member dashboard. The shell goes out at once and
// the profile and session list fill in as their fetches finish.
func (h *MemberHandler) DashboardPage(c *fiber.Ctx) error {
	// Params are backed by the request buffer, which is recycled before the
	// stream writer below runs.
	memberID := fiberutils.CopyString(strings.TrimSpace(c.Params("id")))
	key := cache.MemberKey(memberID)
	lang := pageLanguage(c)
	if body, ok := h.pages.Get(key, lang); ok {
		return sendHTML(c, fiber.StatusOK, body)
	}
	stamp := h.pages.Stamp(key)

	now := h.now()
	sections := []views.Section{
		{
			Slot: slotProfile,
			Load: func(ctx context.Context) (templ.Component, error) {
				member, err := h.portal.GetMember(ctx, memberID)
				if err != nil {
					return nil, err
				}
				return views.ProfileSection(*member, now), nil
			},
		},
		{
			Slot: slotSessions,
			Load: func(ctx context.Context) (templ.Component, error) {
				sessions, err := h.portal.GetSessions(ctx, memberID)
				if err != nil {
					return nil, err
				}
				return views.SessionListSection(memberID, sessions), nil
			},
		},
	}

	// The stream writer runs after this handler returns, so it must not
	// touch c.
	msgs := i18n.FromContext(c.UserContext())
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	c.Status(fiber.StatusOK)
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		ctx, cancel := context.WithCancel(i18n.NewContext(context.Background(), msgs))
		defer cancel()

		var page bytes.Buffer
		complete, err := views.StreamPage(ctx, io.MultiWriter(w, &page), w.Flush, views.PageMeta{}, sections)
		if err != nil {
			h.logger.DebugContext(ctx, "dashboard stream aborted",
				slog.String("member_id", memberID),
				slog.Any("error", err),
			)
			return
		}
		if complete {
			h.pages.Set(key, lang, stamp, page.Bytes())
		}
	})
	return nil
}

func (h *MemberHandler) GetMember(c *fiber.Ctx) error {
	member, err := h.portal.GetMember(c.UserContext(), strings.TrimSpace(c.Params("id")))
	if err != nil {
		return mapFetchError(c, err)
	}
	return c.JSON(fiber.Map{"member": member})
}

func (h *MemberHandler) ListSessions(c *fiber.Ctx) error {
	sessions, err := h.portal.GetSessions(c.UserContext(), strings.TrimSpace(c.Params("id")))
	if err != nil {
		return mapFetchError(c, err)
	}
	return c.JSON(fiber.Map{"sessions": sessions})
}

func (h *MemberHandler) GetDashboard(c *fiber.Ctx) error {
	dashboard, err := h.portal.GetDashboard(c.UserContext(), strings.TrimSpace(c.Params("id")))
	if err != nil {
		return mapFetchError(c, err)
	}
	return c.JSON(dashboard)
}
