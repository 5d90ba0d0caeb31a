package handlers

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/MinhoKang/sallyrang/internal/config"
	"github.com/MinhoKang/sallyrang/internal/middleware"
	"github.com/MinhoKang/sallyrang/internal/models"
	"github.com/MinhoKang/sallyrang/internal/services"
	"github.com/MinhoKang/sallyrang/internal/views"
	"github.com/MinhoKang/sallyrang/pkg/utils"
)

const adminSubject = "admin"

type memberDirectory interface {
	GetAllMembers(ctx context.Context) ([]models.Member, error)
}

type AdminHandler struct {
	members      memberDirectory
	passwordHash string
	jwtSecret    string
	secureCookie bool
	memberURL    func(memberID string) string
	logger       *slog.Logger
}

func NewAdminHandler(portal *services.PortalService, cfg *config.Config, logger *slog.Logger) *AdminHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminHandler{
		members:      portal,
		passwordHash: cfg.AdminPasswordHash,
		jwtSecret:    cfg.JWTSecret,
		secureCookie: strings.HasPrefix(cfg.BaseURL, "https://"),
		memberURL:    cfg.MemberURL,
		logger:       logger,
	}
}

type adminMemberResponse struct {
	models.Member
	ShareURL string `json:"shareUrl"`
}

// Index shows the login form to visitors without a valid session and the
// member directory to everyone else.
func (h *AdminHandler) Index(c *fiber.Ctx) error {
	if !middleware.IsAdmin(c, h.jwtSecret) {
		_, err := renderPage(c, fiber.StatusOK, views.PageMeta{}, views.AdminLogin(c.Query("error") != ""))
		return err
	}

	members, err := h.members.GetAllMembers(c.UserContext())
	if err != nil {
		_, renderErr := renderPage(c, fiber.StatusBadGateway, views.PageMeta{}, views.SectionFailed())
		return renderErr
	}

	query := strings.TrimSpace(c.Query("q"))
	view := views.AdminViewList
	if c.Query("view") == views.AdminViewGrid {
		view = views.AdminViewGrid
	}
	page, limit := parsePagination(c)
	matched := filterMembers(members, query)

	data := views.AdminListData{
		Members: lo.Map(paginate(matched, page, limit), func(m models.Member, _ int) views.AdminMember {
			return views.AdminMember{Member: m, ShareURL: h.memberURL(m.ID)}
		}),
		Query:      query,
		View:       view,
		Pagination: buildPaginationMeta(page, limit, len(matched)),
	}
	_, err = renderPage(c, fiber.StatusOK, views.PageMeta{}, views.AdminMembers(data))
	return err
}

func (h *AdminHandler) Login(c *fiber.Ctx) error {
	if h.passwordHash == "" || !utils.CheckPassword(c.FormValue("password"), h.passwordHash) {
		h.logger.WarnContext(c.UserContext(), "admin login rejected", slog.String("ip", c.IP()))
		return c.Redirect("/admin?error=1", fiber.StatusSeeOther)
	}

	token, err := utils.GenerateToken(adminSubject, middleware.AdminRole, h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create session"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(utils.TokenTTL),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/admin", fiber.StatusSeeOther)
}

func (h *AdminHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/admin", fiber.StatusSeeOther)
}

func (h *AdminHandler) ListMembers(c *fiber.Ctx) error {
	members, err := h.members.GetAllMembers(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to fetch members"})
	}

	page, limit := parsePagination(c)
	matched := filterMembers(members, strings.TrimSpace(c.Query("q")))
	response := lo.Map(paginate(matched, page, limit), func(m models.Member, _ int) adminMemberResponse {
		return adminMemberResponse{Member: m, ShareURL: h.memberURL(m.ID)}
	})

	return c.JSON(fiber.Map{
		"members":    response,
		"pagination": buildPaginationMeta(page, limit, len(matched)),
	})
}

// filterMembers keeps members whose name contains query, ignoring case.
func filterMembers(members []models.Member, query string) []models.Member {
	if query == "" {
		return members
	}
	needle := strings.ToLower(query)
	return lo.Filter(members, func(m models.Member, _ int) bool {
		return strings.Contains(strings.ToLower(m.Name), needle)
	})
}
