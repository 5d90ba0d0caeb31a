package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MinhoKang/sallyrang/internal/cache"
	"github.com/MinhoKang/sallyrang/internal/models"
	"github.com/MinhoKang/sallyrang/internal/services"
)

type stubPortal struct {
	mu sync.Mutex

	member      *models.Member
	memberErr   error
	sessions    []models.Session
	sessionsErr error
	detail      *models.SessionDetail
	detailErr   error
	members     []models.Member
	membersErr  error
	onFetch     func()

	memberCalls   int
	sessionsCalls int
	detailCalls   int
	lastMemberID  string
	lastSessionID string
}

func (s *stubPortal) calls() (member, sessions, detail int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.memberCalls, s.sessionsCalls, s.detailCalls
}

func (s *stubPortal) memberID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastMemberID
}

func (s *stubPortal) GetMember(_ context.Context, memberID string) (*models.Member, error) {
	s.mu.Lock()
	s.memberCalls++
	s.lastMemberID = memberID
	member, err, onFetch := s.member, s.memberErr, s.onFetch
	s.mu.Unlock()
	if onFetch != nil {
		onFetch()
	}
	return member, err
}

func (s *stubPortal) GetSessions(_ context.Context, memberID string) ([]models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionsCalls++
	s.lastMemberID = memberID
	return s.sessions, s.sessionsErr
}

func (s *stubPortal) GetDashboard(ctx context.Context, memberID string) (*services.Dashboard, error) {
	member, err := s.GetMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	sessions, err := s.GetSessions(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return &services.Dashboard{Member: *member, Sessions: sessions}, nil
}

func (s *stubPortal) GetSession(_ context.Context, sessionID string) (*models.SessionDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detailCalls++
	s.lastSessionID = sessionID
	return s.detail, s.detailErr
}

func (s *stubPortal) GetAllMembers(context.Context) ([]models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.members, s.membersErr
}

func newTestCache(t *testing.T) *cache.RenderCache {
	t.Helper()
	pages, err := cache.New(16, time.Minute)
	if err != nil {
		t.Fatalf("cache.New: %v", err)
	}
	return pages
}

func fetchErr(resource, id string) error {
	return &services.FetchError{Resource: resource, ID: id, Err: fmt.Errorf("upstream status 404")}
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMapFetchErrorReturnsNotFound(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return mapFetchError(c, fetchErr("member", "m1"))
	})

	resp, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestMapFetchErrorDefaultsToInternalServerError(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return mapFetchError(c, fmt.Errorf("boom"))
	})

	resp, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
}

func TestNotFoundPageRendersHTML(t *testing.T) {
	app := fiber.New()
	app.Use(NotFoundPage)

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get(fiber.HeaderContentType); got != fiber.MIMETextHTMLCharsetUTF8 {
		t.Fatalf("expected html content type, got %q", got)
	}
	if !strings.Contains(body, "페이지를 찾을 수 없습니다") {
		t.Fatalf("expected korean not-found page, got %q", body)
	}
}

func TestPaginateClampsToBounds(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	if got := paginate(items, 2, 2); len(got) != 2 || got[0] != 3 {
		t.Fatalf("unexpected second page %v", got)
	}
	if got := paginate(items, 3, 2); len(got) != 1 || got[0] != 5 {
		t.Fatalf("unexpected last page %v", got)
	}
	if got := paginate(items, 9, 2); len(got) != 0 {
		t.Fatalf("expected empty page past the end, got %v", got)
	}
}

func TestBuildPaginationMeta(t *testing.T) {
	meta := buildPaginationMeta(1, 12, 25)
	if meta.TotalPages != 3 || meta.Total != 25 {
		t.Fatalf("unexpected meta %+v", meta)
	}
	if empty := buildPaginationMeta(1, 12, 0); empty.TotalPages != 0 {
		t.Fatalf("expected zero pages, got %+v", empty)
	}
}
