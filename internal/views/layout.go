package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/MinhoKang/sallyrang/internal/i18n"
)

type PageMeta struct {
	Title string
	Lang  string
}

const stylesheet = `
*{box-sizing:border-box}
body{margin:0;font-family:-apple-system,"Pretendard","Apple SD Gothic Neo",sans-serif;background:#f7f8fa;color:#191f28;line-height:1.6}
main{max-width:640px;margin:0 auto;padding:24px 16px 64px}
a{color:#3182f6}
.card{background:#fff;border-radius:16px;padding:20px;margin:16px 0;box-shadow:0 1px 3px rgba(0,0,0,.06)}
.grid{display:grid;grid-template-columns:1fr 1fr;gap:16px}
.label{font-size:.85rem;color:#8b95a1;margin:0}
.value{font-size:1.15rem;font-weight:700;margin:0}
.badge{display:inline-block;border-radius:10px;padding:2px 10px;font-size:.8rem;background:#e8f3ff;color:#1b64da;margin-right:4px}
.badge.muted{background:#f2f4f6;color:#4e5968}
.status-active{color:#3182f6}.status-holding{color:#c99400}.status-ended{color:#8b95a1}
.skeleton{min-height:160px;border-radius:16px;margin:16px 0;background:linear-gradient(90deg,#eef0f3,#f7f8fa,#eef0f3);background-size:200% 100%;animation:pulse 1.2s infinite}
@keyframes pulse{0%{background-position:100% 0}100%{background-position:-100% 0}}
.session-item{display:flex;justify-content:space-between;align-items:center;text-decoration:none;color:inherit}
.header{position:sticky;top:0;background:#f7f8fa;padding:8px 0;z-index:1}
.blocks p,.blocks li{white-space:pre-wrap}
.callout{display:flex;gap:8px;background:#f2f4f6;border-radius:12px;padding:12px}
pre{background:#191f28;color:#f2f4f6;border-radius:12px;padding:12px;overflow-x:auto}
figure{margin:16px 0}figure img{width:100%;border-radius:12px}figcaption{text-align:center;font-size:.85rem;color:#8b95a1}
textarea{width:100%;min-height:120px;border-radius:12px;border:1px solid #d1d6db;padding:12px;font:inherit}
button{background:#3182f6;color:#fff;border:0;border-radius:12px;padding:10px 18px;font:inherit;cursor:pointer}
.flash{border-radius:12px;padding:10px 14px}.flash.ok{background:#e8f3ff}.flash.err{background:#ffeeee;color:#d22030}
.members.grid-view{display:grid;grid-template-columns:repeat(auto-fill,minmax(240px,1fr));gap:12px}
`

// swapScript replaces a skeleton slot with the matching streamed template.
const swapScript = `function __swap(id){var t=document.getElementById("t-"+id),s=document.getElementById("slot-"+id);if(t&&s){s.replaceWith(t.content.cloneNode(true));t.remove()}}`

// DocumentStart opens the page up to and including <main>.
func DocumentStart(meta PageMeta) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		lang := meta.Lang
		if lang == "" {
			lang = i18n.FromContext(ctx).Tag().String()
		}
		title := meta.Title
		if title == "" {
			title = i18n.FromContext(ctx).T("app_title")
		}

		h.raw(`<!DOCTYPE html><html`)
		h.attr("lang", lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<meta name="robots" content="noindex, nofollow"><title>`)
		h.text(title)
		h.raw(`</title><style>`, stylesheet, `</style><script>`, swapScript, `</script></head><body><main>`)
	})
}

func DocumentEnd() templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`</main></body></html>`)
	})
}

// Page wraps body in a complete document.
func Page(meta PageMeta, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.render(ctx, DocumentStart(meta))
		h.render(ctx, body)
		h.render(ctx, DocumentEnd())
	})
}
