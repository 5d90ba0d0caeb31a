package views

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/MinhoKang/sallyrang/internal/i18n"
	"github.com/MinhoKang/sallyrang/internal/models"
)

func statusClass(status string) string {
	switch status {
	case models.MemberStatusActive:
		return "status-active"
	case models.MemberStatusHolding:
		return "status-holding"
	default:
		return "status-ended"
	}
}

// ProfileSection is the greeting card at the top of a member dashboard.
func ProfileSection(member models.Member, now time.Time) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		msgs := i18n.FromContext(ctx)
		unset := msgs.T("profile_unregistered")

		h.raw(`<section aria-labelledby="member-greeting"><h1 id="member-greeting">`)
		h.text(msgs.T("profile_greeting", map[string]any{"Name": member.Name}))
		h.raw(`</h1>`)
		if dday := FormatDDay(member.StartDate, now); dday != "" {
			h.raw(`<span class="badge">`)
			h.text(msgs.T("profile_dday", map[string]any{"DDay": dday}))
			h.raw(`</span>`)
		}

		age := unset
		if member.Age != nil {
			age = msgs.T("profile_age_value", map[string]any{"Age": *member.Age})
		}
		experience := member.Experience
		if experience == "" {
			experience = unset
		}

		h.raw(`<div class="card grid">`)
		field(h, msgs.T("profile_age"), age, "")
		field(h, msgs.T("profile_experience"), experience, "")
		field(h, msgs.T("profile_location"), member.Location, "")
		field(h, msgs.T("profile_status"), member.Status, statusClass(member.Status))
		h.raw(`</div></section>`)
	})
}

func field(h *htmlWriter, label, value, class string) {
	h.raw(`<div><p class="label">`)
	h.text(label)
	h.raw(`</p><p class="value">`)
	if class != "" {
		h.raw(`<span`)
		h.attr("class", class)
		h.raw(`>`)
		h.text(value)
		h.raw(`</span>`)
	} else {
		h.text(value)
	}
	h.raw(`</p></div>`)
}

// SortSessionsByDate returns a copy ordered newest first. Sequence plays no
// part in the order.
func SortSessionsByDate(sessions []models.Session) []models.Session {
	sorted := slices.Clone(sessions)
	slices.SortStableFunc(sorted, func(a, b models.Session) int {
		return strings.Compare(b.Date, a.Date)
	})
	return sorted
}

func SessionListSection(memberID string, sessions []models.Session) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		msgs := i18n.FromContext(ctx)

		h.raw(`<section aria-labelledby="sessions-title"><h2 id="sessions-title">`)
		h.text(msgs.T("sessions_title"))
		h.raw(` <span class="badge muted">`)
		h.text(msgs.T("sessions_count", map[string]any{"Count": len(sessions)}))
		h.raw(`</span></h2>`)

		if len(sessions) == 0 {
			h.raw(`<p class="card">`)
			h.text(msgs.T("sessions_empty"))
			h.raw(`</p></section>`)
			return
		}

		h.raw(`<ol class="sessions" style="list-style:none;padding:0">`)
		for _, s := range SortSessionsByDate(sessions) {
			h.raw(`<li><a class="card session-item"`)
			h.href(SessionPath(memberID, s.ID))
			h.raw(`><div><time class="label"`)
			h.attr("datetime", s.Date)
			h.raw(`>`)
			h.text(FormatDate(s.Date))
			h.raw(`</time><h3 style="margin:4px 0">`)
			h.text(s.Title)
			h.raw(`</h3>`)
			statusBadge(h, s.Status)
			if s.Sequence != "" {
				h.raw(`<span class="badge muted">`)
				h.text(msgs.T("session_sequence", map[string]any{"Sequence": s.Sequence}))
				h.raw(`</span>`)
			}
			h.raw(`</div><span aria-hidden="true">›</span></a></li>`)
		}
		h.raw(`</ol></section>`)
	})
}

func statusBadge(h *htmlWriter, status string) {
	if status == "" {
		return
	}
	class := "badge muted"
	if status == models.SessionStatusCompleted {
		class = "badge"
	}
	h.raw(`<span`)
	h.attr("class", class)
	h.raw(`>`)
	h.text(status)
	h.raw(`</span>`)
}

func MemberPath(memberID string) string {
	return "/members/" + memberID
}

func SessionPath(memberID, sessionID string) string {
	return "/members/" + memberID + "/sessions/" + sessionID
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
