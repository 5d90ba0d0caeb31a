package routes

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"

	"github.com/MinhoKang/sallyrang/internal/config"
)

const memberPageJSON = `{
	"object": "page",
	"id": "m1",
	"properties": {
		"Name": {"type": "title", "title": [{"type": "text", "text": {"content": "김샐리"}, "plain_text": "김샐리"}]},
		"Age": {"type": "number", "number": 31},
		"Status": {"type": "select", "select": {"name": "진행중"}},
		"StartDate": {"type": "date", "date": {"start": "2026-03-01"}},
		"Tuition": {"type": "number", "number": 70000}
	}
}`

const sessionPageJSON = `{
	"object": "page",
	"id": "s1",
	"properties": {
		"Title": {"type": "title", "title": [{"type": "text", "text": {"content": "하체 루틴"}, "plain_text": "하체 루틴"}]},
		"Date": {"type": "date", "date": {"start": "2026-03-05"}},
		"Sequence": {"type": "number", "number": 3},
		"Member": {"type": "relation", "relation": [{"id": "m1"}]}
	}
}`

const sessionBlocksJSON = `{
	"object": "list",
	"results": [
		{"object": "block", "id": "b1", "type": "paragraph", "paragraph": {"rich_text": [{"type": "text", "text": {"content": "스쿼트 5세트"}, "plain_text": "스쿼트 5세트"}]}}
	],
	"has_more": false
}`

type fakeNotionServer struct {
	mu      sync.Mutex
	updates int
}

func (f *fakeNotionServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/pages/m1":
		_, _ = io.WriteString(w, memberPageJSON)
	case r.Method == http.MethodGet && r.URL.Path == "/pages/s1":
		_, _ = io.WriteString(w, sessionPageJSON)
	case r.Method == http.MethodPatch && r.URL.Path == "/pages/s1":
		f.mu.Lock()
		f.updates++
		f.mu.Unlock()
		_, _ = io.WriteString(w, sessionPageJSON)
	case r.Method == http.MethodGet && r.URL.Path == "/blocks/s1/children":
		_, _ = io.WriteString(w, sessionBlocksJSON)
	case r.Method == http.MethodPost && r.URL.Path == "/databases/sessions-db/query":
		_, _ = io.WriteString(w, `{"object":"list","results":[`+sessionPageJSON+`],"has_more":false,"next_cursor":null}`)
	case r.Method == http.MethodPost && r.URL.Path == "/databases/members-db/query":
		_, _ = io.WriteString(w, `{"object":"list","results":[`+memberPageJSON+`],"has_more":false,"next_cursor":null}`)
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"object":"error","status":404,"code":"object_not_found","message":"Could not find page"}`)
	}
}

func (f *fakeNotionServer) updateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.updates
}

func newTestApp(t *testing.T) (*fiber.App, *fakeNotionServer) {
	t.Helper()
	fake := &fakeNotionServer{}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		AppEnv:              "test",
		JWTSecret:           "secret",
		BaseURL:             "https://portal.example",
		NotionAPIKey:        "secret_test",
		NotionMembersDBID:   "members-db",
		NotionSessionsDBID:  "sessions-db",
		NotionAPIBaseURL:    server.URL,
		NotionAPIVersion:    "2022-06-28",
		RenderRevalidateSec: 60,
		RenderCacheSize:     16,
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, slog.New(slog.NewTextHandler(io.Discard, nil)))
	RegisterDI(injector)

	app := fiber.New()
	if err := RegisterRoutes(app, injector); err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}
	return app, fake
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	if err != nil {
		t.Fatalf("app.Test %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func TestMemberDashboardEndToEnd(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := get(t, app, "/members/m1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("X-Robots-Tag"); got != "noindex, nofollow" {
		t.Fatalf("expected noindex header, got %q", got)
	}
	for _, want := range []string{"김샐리", "하체 루틴", "3회차"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q, got %q", want, body)
		}
	}
}

func TestSessionAPIEndToEnd(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := get(t, app, "/api/sessions/s1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Session struct {
			Title    string `json:"title"`
			Sequence string `json:"sequence"`
			Blocks   []struct {
				Type string `json:"type"`
			} `json:"blocks"`
		} `json:"session"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Session.Title != "하체 루틴" || payload.Session.Sequence != "3" {
		t.Fatalf("unexpected session %+v", payload.Session)
	}
	if len(payload.Session.Blocks) != 1 || payload.Session.Blocks[0].Type != "paragraph" {
		t.Fatalf("unexpected blocks %+v", payload.Session.Blocks)
	}
}

func TestMissingRecordsReturnNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	if resp, _ := get(t, app, "/api/members/ghost"); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown member, got %d", resp.StatusCode)
	}
	if resp, _ := get(t, app, "/members/m1/sessions/ghost"); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 page for unknown session, got %d", resp.StatusCode)
	}
	if resp, _ := get(t, app, "/no/such/route"); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", resp.StatusCode)
	}
}

func TestCommentWriteInvalidatesRenderedPage(t *testing.T) {
	app, fake := newTestApp(t)

	get(t, app, "/members/m1/sessions/s1")

	req := httptest.NewRequest(http.MethodPut, "/api/sessions/s1/comment", strings.NewReader(`{"memberId":"m1","comment":"감사합니다"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if fake.updateCount() != 1 {
		t.Fatalf("expected one remote update, got %d", fake.updateCount())
	}

	tooLong := strings.Repeat("가", 2001)
	req = httptest.NewRequest(http.MethodPut, "/api/sessions/s1/comment", strings.NewReader(`{"memberId":"m1","comment":"`+tooLong+`"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if fake.updateCount() != 1 {
		t.Fatalf("expected no remote update for a rejected comment, got %d", fake.updateCount())
	}
}

func TestAdminMembersRequiresSession(t *testing.T) {
	app, _ := newTestApp(t)

	if resp, _ := get(t, app, "/api/admin/members"); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	resp, body := get(t, app, "/admin")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, `name="password"`) {
		t.Fatalf("expected login form, got %d %q", resp.StatusCode, body)
	}
}
