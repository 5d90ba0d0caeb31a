package mapper

import (
	"github.com/samber/lo"

	"github.com/MinhoKang/sallyrang/internal/models"
	"github.com/MinhoKang/sallyrang/internal/notion"
)

// MapBlock converts one API block. It reports false for kinds the portal
// does not render; callers drop those instead of failing.
func MapBlock(b notion.Block) (models.Block, bool) {
	switch models.BlockType(b.Type) {
	case models.BlockTypeParagraph:
		return models.NewParagraphBlock(b.ID, textOf(b.Paragraph)), true
	case models.BlockTypeHeading1:
		return models.NewHeadingBlock(b.ID, 1, headingText(b.Heading1)), true
	case models.BlockTypeHeading2:
		return models.NewHeadingBlock(b.ID, 2, headingText(b.Heading2)), true
	case models.BlockTypeHeading3:
		return models.NewHeadingBlock(b.ID, 3, headingText(b.Heading3)), true
	case models.BlockTypeBulletedListItem:
		return models.NewBulletedListItemBlock(b.ID, textOf(b.BulletedListItem)), true
	case models.BlockTypeNumberedListItem:
		return models.NewNumberedListItemBlock(b.ID, textOf(b.NumberedListItem)), true
	case models.BlockTypeToggle:
		// Children stay collapsed; only the summary line is mapped.
		return models.NewToggleBlock(b.ID, textOf(b.Toggle)), true
	case models.BlockTypeCallout:
		var content []models.RichTextSegment
		if b.Callout != nil {
			content = ParseRichText(b.Callout.RichText)
		}
		return models.NewCalloutBlock(b.ID, content), true
	case models.BlockTypeCode:
		return mapCode(b), true
	case models.BlockTypeImage:
		return mapImage(b), true
	default:
		return nil, false
	}
}

// MapBlocks maps in order and drops unsupported kinds.
func MapBlocks(blocks []notion.Block) []models.Block {
	return lo.FilterMap(blocks, func(b notion.Block, _ int) (models.Block, bool) {
		return MapBlock(b)
	})
}

func textOf(t *notion.TextBlock) []models.RichTextSegment {
	if t == nil {
		return []models.RichTextSegment{}
	}
	return ParseRichText(t.RichText)
}

func headingText(h *notion.HeadingBlock) []models.RichTextSegment {
	if h == nil {
		return []models.RichTextSegment{}
	}
	return ParseRichText(h.RichText)
}

func mapCode(b notion.Block) *models.CodeBlock {
	if b.Code == nil {
		return models.NewCodeBlock(b.ID, nil, nil)
	}
	var language *string
	if b.Code.Language != "" {
		language = lo.ToPtr(b.Code.Language)
	}
	return models.NewCodeBlock(b.ID, ParseRichText(b.Code.RichText), language)
}

func mapImage(b notion.Block) *models.ImageBlock {
	if b.Image == nil {
		return models.NewImageBlock(b.ID, nil, nil)
	}

	var imageURL, caption *string
	if u, ok := b.Image.URL(); ok {
		imageURL = lo.ToPtr(u)
	}
	if text := notion.PlainTextOf(b.Image.Caption); text != "" {
		caption = lo.ToPtr(text)
	}
	return models.NewImageBlock(b.ID, imageURL, caption)
}
