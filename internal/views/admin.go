package views

import (
	"context"
	"net/url"

	"github.com/a-h/templ"

	"github.com/MinhoKang/sallyrang/internal/i18n"
	"github.com/MinhoKang/sallyrang/internal/models"
)

const (
	AdminViewList = "list"
	AdminViewGrid = "grid"
)

type AdminMember struct {
	models.Member
	ShareURL string
}

type AdminListData struct {
	Members    []AdminMember
	Query      string
	View       string
	Pagination models.PaginationMeta
}

func (d AdminListData) pageLink(page int, view string) string {
	q := url.Values{}
	if d.Query != "" {
		q.Set("q", d.Query)
	}
	if view == AdminViewGrid {
		q.Set("view", AdminViewGrid)
	}
	if page > 1 {
		q.Set("page", itoa(page))
	}
	if len(q) == 0 {
		return "/admin"
	}
	return "/admin?" + q.Encode()
}

func AdminMembers(data AdminListData) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		msgs := i18n.FromContext(ctx)
		tag := msgs.Tag()

		h.raw(`<header class="header" style="display:flex;justify-content:space-between;align-items:center"><h1>`)
		h.text(msgs.T("admin_title"))
		h.raw(`</h1><form method="post" action="/admin/logout"><button type="submit">`)
		h.text(msgs.T("admin_logout"))
		h.raw(`</button></form></header>`)

		h.raw(`<form method="get" action="/admin" class="card"><input type="search" name="q" style="width:100%"`)
		h.attr("value", data.Query)
		h.attr("placeholder", msgs.T("admin_search_placeholder"))
		h.raw(`>`)
		if data.View == AdminViewGrid {
			h.raw(`<input type="hidden" name="view" value="grid">`)
		}
		h.raw(`</form><p><a`)
		h.href(data.pageLink(1, AdminViewList))
		h.raw(`>`)
		h.text(msgs.T("admin_view_list"))
		h.raw(`</a> · <a`)
		h.href(data.pageLink(1, AdminViewGrid))
		h.raw(`>`)
		h.text(msgs.T("admin_view_grid"))
		h.raw(`</a> <span class="badge muted">`)
		h.text(msgs.T("admin_member_count", map[string]any{"Count": data.Pagination.Total}))
		h.raw(`</span></p>`)

		if len(data.Members) == 0 {
			h.raw(`<p class="card">`)
			h.text(msgs.T("admin_no_results"))
			h.raw(`</p>`)
			return
		}

		class := "members"
		if data.View == AdminViewGrid {
			class = "members grid-view"
		}
		h.raw(`<div`)
		h.attr("class", class)
		h.raw(`>`)
		for _, m := range data.Members {
			h.raw(`<article class="card"><h3 style="margin:0"><a`)
			h.href(MemberPath(m.ID))
			h.raw(`>`)
			h.text(m.Name)
			if m.Gender != "" {
				h.text(" (" + m.Gender + ")")
			}
			h.raw(`</a></h3><p class="label">`)
			if m.Age != nil {
				h.text(msgs.T("profile_age_value", map[string]any{"Age": *m.Age}) + " · ")
			}
			h.text(m.Location)
			h.raw(` · <span`)
			h.attr("class", statusClass(m.Status))
			h.raw(`>`)
			h.text(m.Status)
			h.raw(`</span></p><p class="label">`)
			h.text(msgs.T("profile_start_date") + ": " + FormatDate(m.StartDate))
			h.raw(`<br>`)
			h.text(msgs.T("admin_tuition") + ": " + FormatWon(tag, m.Tuition))
			h.raw(`<br>`)
			h.text(msgs.T("admin_total_tuition") + ": " + FormatWon(tag, m.TotalTuition))
			h.raw(`</p><input readonly style="width:100%" onclick="this.select()"`)
			h.attr("aria-label", msgs.T("admin_share_url"))
			h.attr("value", m.ShareURL)
			h.raw(`></article>`)
		}
		h.raw(`</div>`)

		p := data.Pagination
		if p.TotalPages > 1 {
			h.raw(`<nav class="card" style="display:flex;justify-content:space-between">`)
			if p.Page > 1 {
				h.raw(`<a rel="prev"`)
				h.href(data.pageLink(p.Page-1, data.View))
				h.raw(`>`)
				h.text(msgs.T("admin_prev"))
				h.raw(`</a>`)
			} else {
				h.raw(`<span></span>`)
			}
			h.text(itoa(p.Page) + " / " + itoa(p.TotalPages))
			if p.Page < p.TotalPages {
				h.raw(`<a rel="next"`)
				h.href(data.pageLink(p.Page+1, data.View))
				h.raw(`>`)
				h.text(msgs.T("admin_next"))
				h.raw(`</a>`)
			} else {
				h.raw(`<span></span>`)
			}
			h.raw(`</nav>`)
		}
	})
}
