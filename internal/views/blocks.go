package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/MinhoKang/sallyrang/internal/i18n"
	"github.com/MinhoKang/sallyrang/internal/models"
)

// Blocks renders a session body. Consecutive list items share one list
// element.
func Blocks(blocks []models.Block) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		r := &blockRenderer{h: h, msgs: i18n.FromContext(ctx)}
		h.raw(`<div class="blocks">`)
		for _, block := range blocks {
			block.Accept(r)
		}
		r.closeList()
		h.raw(`</div>`)
	})
}

type blockRenderer struct {
	h    *htmlWriter
	msgs *i18n.Messages
	list string
}

func (r *blockRenderer) openList(tag string) {
	if r.list == tag {
		return
	}
	r.closeList()
	r.h.raw("<", tag, ">")
	r.list = tag
}

func (r *blockRenderer) closeList() {
	if r.list == "" {
		return
	}
	r.h.raw("</", r.list, ">")
	r.list = ""
}

func (r *blockRenderer) wrap(tag string, segments []models.RichTextSegment) {
	r.h.raw("<", tag, ">")
	writeRichText(r.h, segments)
	r.h.raw("</", tag, ">")
}

func (r *blockRenderer) VisitParagraph(b *models.ParagraphBlock) {
	r.closeList()
	r.wrap("p", b.Content)
}

func (r *blockRenderer) VisitHeading(b *models.HeadingBlock) {
	r.closeList()
	// h1 belongs to the page title.
	switch b.Level {
	case 1:
		r.wrap("h2", b.Content)
	case 2:
		r.wrap("h3", b.Content)
	default:
		r.wrap("h4", b.Content)
	}
}

func (r *blockRenderer) VisitBulletedListItem(b *models.BulletedListItemBlock) {
	r.openList("ul")
	r.wrap("li", b.Content)
}

func (r *blockRenderer) VisitNumberedListItem(b *models.NumberedListItemBlock) {
	r.openList("ol")
	r.wrap("li", b.Content)
}

func (r *blockRenderer) VisitImage(b *models.ImageBlock) {
	r.closeList()
	if b.ImageURL == nil || *b.ImageURL == "" {
		return
	}
	alt := r.msgs.T("session_image_alt")
	if b.Caption != nil {
		alt = *b.Caption
	}
	r.h.raw(`<figure><img loading="lazy"`)
	r.h.attr("src", string(templ.URL(*b.ImageURL)))
	r.h.attr("alt", alt)
	r.h.raw(`>`)
	if b.Caption != nil {
		r.h.raw(`<figcaption>`)
		r.h.text(*b.Caption)
		r.h.raw(`</figcaption>`)
	}
	r.h.raw(`</figure>`)
}

func (r *blockRenderer) VisitCallout(b *models.CalloutBlock) {
	r.closeList()
	r.h.raw(`<aside class="callout"><span aria-hidden="true">ℹ️</span><div>`)
	writeRichText(r.h, b.Content)
	r.h.raw(`</div></aside>`)
}

func (r *blockRenderer) VisitToggle(b *models.ToggleBlock) {
	r.closeList()
	r.h.raw(`<details><summary>`)
	writeRichText(r.h, b.Content)
	r.h.raw(`</summary></details>`)
}

func (r *blockRenderer) VisitCode(b *models.CodeBlock) {
	r.closeList()
	r.h.raw(`<pre><code`)
	if b.Language != nil {
		r.h.attr("class", "language-"+*b.Language)
	}
	r.h.raw(`>`)
	for _, segment := range b.Content {
		r.h.text(segment.Text)
	}
	r.h.raw(`</code></pre>`)
}

// writeRichText nests style tags around each segment. Inline code replaces
// the other styles; a link wraps the result.
func writeRichText(h *htmlWriter, segments []models.RichTextSegment) {
	for _, segment := range segments {
		var open, end string
		s := segment.Styles
		if s.Code {
			open, end = "<code>", "</code>"
		} else {
			if s.Bold {
				open, end = open+"<strong>", "</strong>"+end
			}
			if s.Italic {
				open, end = open+"<em>", "</em>"+end
			}
			if s.Strikethrough {
				open, end = open+"<del>", "</del>"+end
			}
			if s.Underline {
				open, end = open+"<u>", "</u>"+end
			}
		}

		if segment.Href != nil {
			h.raw(`<a target="_blank" rel="noopener noreferrer"`)
			h.href(*segment.Href)
			h.raw(`>`)
		}
		h.raw(open)
		h.text(segment.Text)
		h.raw(end)
		if segment.Href != nil {
			h.raw(`</a>`)
		}
	}
}
