package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MinhoKang/sallyrang/internal/models"
	"github.com/MinhoKang/sallyrang/internal/notion"
)

func strPtr(s string) *string { return &s }

func TestParseRichText(t *testing.T) {
	tests := []struct {
		name     string
		fragment notion.RichText
		want     models.RichTextSegment
	}{
		{
			name: "plain text without annotations",
			fragment: notion.RichText{
				Type:      notion.RichTextTypeText,
				Text:      &notion.TextObject{Content: "스쿼트"},
				PlainText: "스쿼트",
			},
			want: models.RichTextSegment{Text: "스쿼트"},
		},
		{
			name: "inline link wins over href",
			fragment: notion.RichText{
				Text: &notion.TextObject{Content: "영상", Link: &notion.Link{URL: "https://a"}},
				Href: strPtr("https://b"),
			},
			want: models.RichTextSegment{Text: "영상", Href: strPtr("https://a")},
		},
		{
			name: "mention falls back to plain text and href",
			fragment: notion.RichText{
				Type:      notion.RichTextTypeMention,
				Mention:   &notion.MentionObject{Type: "page"},
				PlainText: "지난 수업",
				Href:      strPtr("https://www.notion.so/p"),
			},
			want: models.RichTextSegment{Text: "지난 수업", Href: strPtr("https://www.notion.so/p")},
		},
		{
			name: "equation uses plain text",
			fragment: notion.RichText{
				Type:      notion.RichTextTypeEquation,
				Equation:  &notion.EquationObject{Expression: "x^2"},
				PlainText: "x^2",
			},
			want: models.RichTextSegment{Text: "x^2"},
		},
		{
			name: "annotations copy one to one",
			fragment: notion.RichText{
				Text:        &notion.TextObject{Content: "강조"},
				Annotations: &notion.Annotations{Bold: true, Underline: true, Code: true, Color: "red"},
			},
			want: models.RichTextSegment{Text: "강조", Styles: models.TextStyles{Bold: true, Underline: true, Code: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRichText([]notion.RichText{tt.fragment})
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestParseRichTextPreservesLengthAndOrder(t *testing.T) {
	fragments := make([]notion.RichText, 0, 10)
	for _, s := range []string{"a", "", "c", "", "e"} {
		fragments = append(fragments, notion.RichText{PlainText: s})
	}

	got := ParseRichText(fragments)
	require.Len(t, got, len(fragments))
	for i, seg := range got {
		assert.Equal(t, fragments[i].PlainText, seg.Text)
	}
	assert.Empty(t, ParseRichText(nil))
}

func TestSegmentWithoutLinkOmitsHref(t *testing.T) {
	got := ParseRichText([]notion.RichText{{PlainText: "x", Href: strPtr("")}})

	data, err := json.Marshal(got[0])
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	_, ok := raw["href"]
	assert.False(t, ok)
}
