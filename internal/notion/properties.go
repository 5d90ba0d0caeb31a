package notion

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// PropertyValue is one typed field of a page. The implementations in this
// file are the full set; anything else decodes to UnsupportedProperty.
type PropertyValue interface {
	PropertyType() string
	isPropertyValue()
}

type TitleProperty struct {
	Title []RichText `json:"title"`
}

type RichTextProperty struct {
	RichText []RichText `json:"rich_text"`
}

// NumberProperty holds nil when the cell is blank.
type NumberProperty struct {
	Number *float64 `json:"number"`
}

type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// SelectProperty covers both select and status columns.
type SelectProperty struct {
	Status bool          `json:"-"`
	Option *SelectOption `json:"select"`
}

type DateRange struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

type DateProperty struct {
	Date *DateRange `json:"date"`
}

type PageReference struct {
	ID string `json:"id"`
}

type RelationProperty struct {
	Relation []PageReference `json:"relation"`
	HasMore  bool            `json:"has_more,omitempty"`
}

type FilesProperty struct {
	Files []FileObject `json:"files"`
}

type UnsupportedProperty struct {
	Type string
}

func (TitleProperty) PropertyType() string { return "title" }
func (RichTextProperty) PropertyType() string { return "rich_text" }
func (NumberProperty) PropertyType() string { return "number" }
func (DateProperty) PropertyType() string { return "date" }
func (RelationProperty) PropertyType() string { return "relation" }
func (FilesProperty) PropertyType() string { return "files" }
func (u UnsupportedProperty) PropertyType() string {
	return u.Type
}

func (s SelectProperty) PropertyType() string {
	if s.Status {
		return "status"
	}
	return "select"
}

func (TitleProperty) isPropertyValue() {}
func (RichTextProperty) isPropertyValue() {}
func (NumberProperty) isPropertyValue() {}
func (SelectProperty) isPropertyValue() {}
func (DateProperty) isPropertyValue() {}
func (RelationProperty) isPropertyValue() {}
func (FilesProperty) isPropertyValue() {}
func (UnsupportedProperty) isPropertyValue() {}

// Properties is the property bag of a page, keyed by column name.
type Properties map[string]PropertyValue

func (p *Properties) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Properties, len(raw))
	for name, msg := range raw {
		value, err := decodeProperty(msg)
		if err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}
		out[name] = value
	}
	*p = out
	return nil
}

func decodeProperty(msg json.RawMessage) (PropertyValue, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(msg, &head); err != nil {
		return nil, err
	}

	switch head.Type {
	case "title":
		return decodeAs[TitleProperty](msg)
	case "rich_text":
		return decodeAs[RichTextProperty](msg)
	case "number":
		return decodeAs[NumberProperty](msg)
	case "select":
		return decodeAs[SelectProperty](msg)
	case "status":
		var body struct {
			Status *SelectOption `json:"status"`
		}
		if err := json.Unmarshal(msg, &body); err != nil {
			return nil, err
		}
		return SelectProperty{Status: true, Option: body.Status}, nil
	case "date":
		return decodeAs[DateProperty](msg)
	case "relation":
		return decodeAs[RelationProperty](msg)
	case "files":
		return decodeAs[FilesProperty](msg)
	default:
		return UnsupportedProperty{Type: head.Type}, nil
	}
}

func decodeAs[T PropertyValue](msg json.RawMessage) (PropertyValue, error) {
	var v T
	if err := json.Unmarshal(msg, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// The extractors below never fail. A missing column or a column of another
// kind yields the zero value, since coaches leave cells blank all the time.

func (p Properties) Has(name string) bool {
	_, ok := p[name]
	return ok
}

func (p Properties) Title(name string) string {
	if v, ok := p[name].(TitleProperty); ok {
		return PlainTextOf(v.Title)
	}
	return ""
}

func (p Properties) RichText(name string) string {
	if v, ok := p[name].(RichTextProperty); ok {
		return PlainTextOf(v.RichText)
	}
	return ""
}

func (p Properties) OptionalNumber(name string) *float64 {
	if v, ok := p[name].(NumberProperty); ok {
		return v.Number
	}
	return nil
}

func (p Properties) Number(name string) float64 {
	if n := p.OptionalNumber(name); n != nil {
		return *n
	}
	return 0
}

func (p Properties) Select(name string) string {
	if v, ok := p[name].(SelectProperty); ok && v.Option != nil {
		return v.Option.Name
	}
	return ""
}

func (p Properties) Date(name string) string {
	if v, ok := p[name].(DateProperty); ok && v.Date != nil {
		return v.Date.Start
	}
	return ""
}

func (p Properties) Relation(name string) []string {
	v, ok := p[name].(RelationProperty)
	if !ok {
		return []string{}
	}
	ids := make([]string, 0, len(v.Relation))
	for _, ref := range v.Relation {
		ids = append(ids, ref.ID)
	}
	return ids
}

func (p Properties) Files(name string) []FileObject {
	if v, ok := p[name].(FilesProperty); ok && v.Files != nil {
		return v.Files
	}
	return []FileObject{}
}

// Label renders a column whose kind drifted between number and text as a
// display string. Numbers lose a trailing ".0".
func (p Properties) Label(name string) string {
	switch v := p[name].(type) {
	case NumberProperty:
		if v.Number == nil {
			return ""
		}
		return strconv.FormatFloat(*v.Number, 'f', -1, 64)
	case RichTextProperty:
		return PlainTextOf(v.RichText)
	case TitleProperty:
		return PlainTextOf(v.Title)
	case SelectProperty:
		if v.Option != nil {
			return v.Option.Name
		}
	}
	return ""
}
