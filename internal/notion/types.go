package notion

type RichTextType string

const (
	RichTextTypeText     RichTextType = "text"
	RichTextTypeMention  RichTextType = "mention"
	RichTextTypeEquation RichTextType = "equation"
)

// RichText is one styled fragment of a Notion rich text array.
type RichText struct {
	Type        RichTextType    `json:"type,omitempty"`
	Text        *TextObject     `json:"text,omitempty"`
	Mention     *MentionObject  `json:"mention,omitempty"`
	Equation    *EquationObject `json:"equation,omitempty"`
	Annotations *Annotations    `json:"annotations,omitempty"`
	PlainText   string          `json:"plain_text,omitempty"`
	Href        *string         `json:"href,omitempty"`
}

type TextObject struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

type Link struct {
	URL string `json:"url,omitempty"`
}

// MentionObject is kept opaque; mentions render through PlainText.
type MentionObject struct {
	Type string `json:"type,omitempty"`
}

type EquationObject struct {
	Expression string `json:"expression"`
}

type Annotations struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
	Color         string `json:"color,omitempty"`
}

// PlainTextOf concatenates the plain text of every fragment in order.
func PlainTextOf(fragments []RichText) string {
	switch len(fragments) {
	case 0:
		return ""
	case 1:
		return fragments[0].PlainText
	}
	n := 0
	for _, f := range fragments {
		n += len(f.PlainText)
	}
	buf := make([]byte, 0, n)
	for _, f := range fragments {
		buf = append(buf, f.PlainText...)
	}
	return string(buf)
}

type FileType string

const (
	FileTypeExternal FileType = "external"
	FileTypeFile     FileType = "file"
)

type FileObject struct {
	Name     string        `json:"name,omitempty"`
	Type     FileType      `json:"type"`
	File     *HostedFile   `json:"file,omitempty"`
	External *ExternalFile `json:"external,omitempty"`
}

type HostedFile struct {
	URL        string `json:"url"`
	ExpiryTime string `json:"expiry_time,omitempty"`
}

type ExternalFile struct {
	URL string `json:"url"`
}

// URL returns the link for the declared file type, if any.
func (f FileObject) URL() (string, bool) {
	switch f.Type {
	case FileTypeExternal:
		if f.External != nil {
			return f.External.URL, true
		}
	case FileTypeFile:
		if f.File != nil {
			return f.File.URL, true
		}
	}
	return "", false
}

type Page struct {
	Object         string     `json:"object"`
	ID             string     `json:"id"`
	CreatedTime    string     `json:"created_time,omitempty"`
	LastEditedTime string     `json:"last_edited_time,omitempty"`
	Archived       bool       `json:"archived"`
	URL            string     `json:"url"`
	Properties     Properties `json:"properties"`
}

type TextBlock struct {
	RichText []RichText `json:"rich_text"`
	Color    string     `json:"color,omitempty"`
}

type HeadingBlock struct {
	RichText     []RichText `json:"rich_text"`
	IsToggleable bool       `json:"is_toggleable,omitempty"`
}

type CalloutBlock struct {
	RichText []RichText `json:"rich_text"`
	Icon     *Icon      `json:"icon,omitempty"`
}

type Icon struct {
	Type  string `json:"type"`
	Emoji string `json:"emoji,omitempty"`
}

type CodeBlock struct {
	RichText []RichText `json:"rich_text"`
	Caption  []RichText `json:"caption,omitempty"`
	Language string     `json:"language,omitempty"`
}

type ImageBlock struct {
	FileObject
	Caption []RichText `json:"caption,omitempty"`
}

// Block is a child block as returned by the API. Only the sub-object named by
// Type is populated; kinds without a field here decode with Type alone.
type Block struct {
	Object      string `json:"object"`
	ID          string `json:"id"`
	Type        string `json:"type"`
	HasChildren bool   `json:"has_children"`
	Archived    bool   `json:"archived"`

	Paragraph        *TextBlock    `json:"paragraph,omitempty"`
	Heading1         *HeadingBlock `json:"heading_1,omitempty"`
	Heading2         *HeadingBlock `json:"heading_2,omitempty"`
	Heading3         *HeadingBlock `json:"heading_3,omitempty"`
	BulletedListItem *TextBlock    `json:"bulleted_list_item,omitempty"`
	NumberedListItem *TextBlock    `json:"numbered_list_item,omitempty"`
	Toggle           *TextBlock    `json:"toggle,omitempty"`
	Callout          *CalloutBlock `json:"callout,omitempty"`
	Code             *CodeBlock    `json:"code,omitempty"`
	Image            *ImageBlock   `json:"image,omitempty"`
}

type BlockList struct {
	Object     string  `json:"object"`
	Results    []Block `json:"results"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}

type RelationFilter struct {
	Contains string `json:"contains,omitempty"`
}

type Filter struct {
	Property string          `json:"property"`
	Relation *RelationFilter `json:"relation,omitempty"`
}

type SortDirection string

const (
	SortAscending  SortDirection = "ascending"
	SortDescending SortDirection = "descending"
)

type Sort struct {
	Property  string        `json:"property"`
	Direction SortDirection `json:"direction"`
}

type QueryRequest struct {
	Filter      *Filter `json:"filter,omitempty"`
	Sorts       []Sort  `json:"sorts,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
}

type QueryResponse struct {
	Object     string  `json:"object"`
	Results    []Page  `json:"results"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}

// RichTextInput is the write-side shape of a text fragment.
type RichTextInput struct {
	Type string     `json:"type"`
	Text TextObject `json:"text"`
}

type RichTextUpdate struct {
	RichText []RichTextInput `json:"rich_text"`
}

type UpdatePageRequest struct {
	Properties map[string]RichTextUpdate `json:"properties"`
}

// TextValue builds the rich_text payload for s. An empty s clears the field.
func TextValue(s string) RichTextUpdate {
	if s == "" {
		return RichTextUpdate{RichText: []RichTextInput{}}
	}
	return RichTextUpdate{RichText: []RichTextInput{{Type: string(RichTextTypeText), Text: TextObject{Content: s}}}}
}
