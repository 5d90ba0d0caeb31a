package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/MinhoKang/sallyrang/internal/i18n"
	"github.com/MinhoKang/sallyrang/internal/models"
)

// Flash is the one-shot outcome shown after a comment post redirects back.
type Flash struct {
	Success bool
	Message string
}

type SessionPageData struct {
	MemberID string
	Detail   models.SessionDetail
	Flash    *Flash
}

func SessionPage(data SessionPageData) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		msgs := i18n.FromContext(ctx)
		d := data.Detail

		h.raw(`<header class="header"><a`)
		h.href(MemberPath(data.MemberID))
		h.raw(`>‹ `)
		h.text(msgs.T("session_back"))
		h.raw(`</a> <time class="label"`)
		h.attr("datetime", d.Date)
		h.raw(`>`)
		h.text(FormatDate(d.Date))
		h.raw(`</time></header>`)

		h.raw(`<article><h1>`)
		h.text(d.Title)
		h.raw(`</h1><div>`)
		if d.Sequence != "" {
			h.raw(`<span class="badge">`)
			h.text(msgs.T("session_sequence", map[string]any{"Sequence": d.Sequence}))
			h.raw(`</span>`)
		}
		statusBadge(h, d.Status)
		if d.Feedback != "" {
			h.raw(`<span class="badge muted">`)
			h.text(msgs.T("session_has_feedback"))
			h.raw(`</span>`)
		}
		if _, ok := d.FirstImageURL(); ok || len(d.Images) > 0 {
			h.raw(`<span class="badge muted">`)
			h.text(msgs.T("session_has_image"))
			h.raw(`</span>`)
		}
		h.raw(`</div>`)

		h.raw(`<section class="card">`)
		switch {
		case len(d.Blocks) > 0:
			h.render(ctx, Blocks(d.Blocks))
		case d.Content != "":
			h.raw(`<p style="white-space:pre-wrap">`)
			h.text(d.Content)
			h.raw(`</p>`)
		default:
			h.raw(`<p class="label">`)
			h.text(msgs.T("session_content_empty"))
			h.raw(`</p>`)
		}
		h.raw(`</section>`)

		for _, u := range d.Images {
			h.raw(`<figure><img loading="lazy"`)
			h.attr("src", string(templ.URL(u)))
			h.attr("alt", msgs.T("session_image_alt"))
			h.raw(`></figure>`)
		}

		textCard(h, msgs.T("session_feedback"), d.Feedback)
		textCard(h, msgs.T("session_note"), d.Note)
		h.raw(`</article>`)

		h.render(ctx, CommentForm(data.MemberID, d.ID, d.Comment, data.Flash))
	})
}

func textCard(h *htmlWriter, title, body string) {
	if body == "" {
		return
	}
	h.raw(`<section class="card"><h2 class="label">`)
	h.text(title)
	h.raw(`</h2><p style="white-space:pre-wrap">`)
	h.text(body)
	h.raw(`</p></section>`)
}
