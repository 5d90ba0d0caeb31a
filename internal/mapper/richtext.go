package mapper

import (
	"github.com/MinhoKang/sallyrang/internal/models"
	"github.com/MinhoKang/sallyrang/internal/notion"
)

// ParseRichText maps fragments to segments one to one, keeping order.
func ParseRichText(fragments []notion.RichText) []models.RichTextSegment {
	segments := make([]models.RichTextSegment, len(fragments))
	for i, fragment := range fragments {
		segments[i] = parseFragment(fragment)
	}
	return segments
}

func parseFragment(f notion.RichText) models.RichTextSegment {
	segment := models.RichTextSegment{Text: f.PlainText}

	// Mentions and equations only carry plain_text.
	if f.Text != nil {
		segment.Text = f.Text.Content
	}

	switch {
	case f.Text != nil && f.Text.Link != nil && f.Text.Link.URL != "":
		href := f.Text.Link.URL
		segment.Href = &href
	case f.Href != nil && *f.Href != "":
		href := *f.Href
		segment.Href = &href
	}

	if a := f.Annotations; a != nil {
		segment.Styles = models.TextStyles{
			Bold:          a.Bold,
			Italic:        a.Italic,
			Strikethrough: a.Strikethrough,
			Underline:     a.Underline,
			Code:          a.Code,
		}
	}
	return segment
}
