package models

type BlockType string

const (
	BlockTypeParagraph        BlockType = "paragraph"
	BlockTypeHeading1         BlockType = "heading_1"
	BlockTypeHeading2         BlockType = "heading_2"
	BlockTypeHeading3         BlockType = "heading_3"
	BlockTypeBulletedListItem BlockType = "bulleted_list_item"
	BlockTypeNumberedListItem BlockType = "numbered_list_item"
	BlockTypeImage            BlockType = "image"
	BlockTypeCallout          BlockType = "callout"
	BlockTypeToggle           BlockType = "toggle"
	BlockTypeCode             BlockType = "code"
)

// TextStyles are independent flags; a missing flag is false.
type TextStyles struct {
	Bold          bool `json:"bold"`
	Italic        bool `json:"italic"`
	Strikethrough bool `json:"strikethrough"`
	Underline     bool `json:"underline"`
	Code          bool `json:"code"`
}

type RichTextSegment struct {
	Text   string     `json:"text"`
	Styles TextStyles `json:"styles"`
	Href   *string    `json:"href,omitempty"`
}

// Block is one unit of session body content. The set of implementations is
// closed to this package; consumers dispatch through BlockVisitor.
type Block interface {
	BlockID() string
	Kind() BlockType
	Segments() []RichTextSegment
	Accept(v BlockVisitor)
	sealed()
}

// BlockVisitor has one method per block kind. A new kind adds a method here,
// which breaks every visitor until it handles it.
type BlockVisitor interface {
	VisitParagraph(b *ParagraphBlock)
	VisitHeading(b *HeadingBlock)
	VisitBulletedListItem(b *BulletedListItemBlock)
	VisitNumberedListItem(b *NumberedListItemBlock)
	VisitImage(b *ImageBlock)
	VisitCallout(b *CalloutBlock)
	VisitToggle(b *ToggleBlock)
	VisitCode(b *CodeBlock)
}

type BlockBase struct {
	ID      string            `json:"id"`
	Type    BlockType         `json:"type"`
	Content []RichTextSegment `json:"content"`
}

func (b *BlockBase) BlockID() string { return b.ID }
func (b *BlockBase) Kind() BlockType { return b.Type }
func (b *BlockBase) Segments() []RichTextSegment { return b.Content }
func (b *BlockBase) sealed()                      {}

func newBase(id string, kind BlockType, content []RichTextSegment) BlockBase {
	if content == nil {
		content = []RichTextSegment{}
	}
	return BlockBase{ID: id, Type: kind, Content: content}
}

type ParagraphBlock struct{ BlockBase }

func NewParagraphBlock(id string, content []RichTextSegment) *ParagraphBlock {
	return &ParagraphBlock{BlockBase: newBase(id, BlockTypeParagraph, content)}
}

func (b *ParagraphBlock) Accept(v BlockVisitor) { v.VisitParagraph(b) }

type HeadingBlock struct {
	BlockBase
	Level int `json:"-"`
}

// NewHeadingBlock clamps level into 1..3.
func NewHeadingBlock(id string, level int, content []RichTextSegment) *HeadingBlock {
	kind := BlockTypeHeading1
	switch {
	case level <= 1:
		level = 1
	case level == 2:
		kind = BlockTypeHeading2
	default:
		level = 3
		kind = BlockTypeHeading3
	}
	return &HeadingBlock{BlockBase: newBase(id, kind, content), Level: level}
}

func (b *HeadingBlock) Accept(v BlockVisitor) { v.VisitHeading(b) }

type BulletedListItemBlock struct{ BlockBase }

func NewBulletedListItemBlock(id string, content []RichTextSegment) *BulletedListItemBlock {
	return &BulletedListItemBlock{BlockBase: newBase(id, BlockTypeBulletedListItem, content)}
}

func (b *BulletedListItemBlock) Accept(v BlockVisitor) { v.VisitBulletedListItem(b) }

type NumberedListItemBlock struct{ BlockBase }

func NewNumberedListItemBlock(id string, content []RichTextSegment) *NumberedListItemBlock {
	return &NumberedListItemBlock{BlockBase: newBase(id, BlockTypeNumberedListItem, content)}
}

func (b *NumberedListItemBlock) Accept(v BlockVisitor) { v.VisitNumberedListItem(b) }

type ImageBlock struct {
	BlockBase
	ImageURL *string `json:"imageUrl,omitempty"`
	Caption  *string `json:"caption,omitempty"`
}

func NewImageBlock(id string, imageURL, caption *string) *ImageBlock {
	return &ImageBlock{
		BlockBase: newBase(id, BlockTypeImage, nil),
		ImageURL:  imageURL,
		Caption:   caption,
	}
}

func (b *ImageBlock) Accept(v BlockVisitor) { v.VisitImage(b) }

type CalloutBlock struct{ BlockBase }

func NewCalloutBlock(id string, content []RichTextSegment) *CalloutBlock {
	return &CalloutBlock{BlockBase: newBase(id, BlockTypeCallout, content)}
}

func (b *CalloutBlock) Accept(v BlockVisitor) { v.VisitCallout(b) }

// ToggleBlock carries only its summary line; children are not expanded.
type ToggleBlock struct{ BlockBase }

func NewToggleBlock(id string, content []RichTextSegment) *ToggleBlock {
	return &ToggleBlock{BlockBase: newBase(id, BlockTypeToggle, content)}
}

func (b *ToggleBlock) Accept(v BlockVisitor) { v.VisitToggle(b) }

type CodeBlock struct {
	BlockBase
	Language *string `json:"language,omitempty"`
}

func NewCodeBlock(id string, content []RichTextSegment, language *string) *CodeBlock {
	return &CodeBlock{BlockBase: newBase(id, BlockTypeCode, content), Language: language}
}

func (b *CodeBlock) Accept(v BlockVisitor) { v.VisitCode(b) }
