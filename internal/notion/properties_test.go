package notion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractorsDefaultOnMissingOrMismatched(t *testing.T) {
	props := Properties{
		"Name":     RichTextProperty{},
		"Sequence": TitleProperty{},
		"Age":      NumberProperty{},
		"Gender":   SelectProperty{},
		"Date":     DateProperty{},
	}

	for _, name := range []string{"Name", "Missing"} {
		assert.Equal(t, "", props.Title(name), name)
	}
	assert.Equal(t, "", props.RichText("Sequence"))
	assert.Equal(t, float64(0), props.Number("Age"))
	assert.Nil(t, props.OptionalNumber("Missing"))
	assert.Equal(t, "", props.Select("Gender"))
	assert.Equal(t, "", props.Date("Date"))
	assert.Equal(t, []string{}, props.Relation("Missing"))
	assert.Equal(t, []FileObject{}, props.Files("Missing"))
	assert.Equal(t, "", props.Label("Missing"))
	assert.False(t, props.Has("Missing"))
	assert.True(t, props.Has("Age"))
}

func TestLabelAcrossKinds(t *testing.T) {
	three := 3.0
	half := 2.5
	props := Properties{
		"Int":   NumberProperty{Number: &three},
		"Float": NumberProperty{Number: &half},
		"Text":  RichTextProperty{RichText: []RichText{{PlainText: "3-1"}}},
		"Pick":  SelectProperty{Option: &SelectOption{Name: "A"}},
	}

	assert.Equal(t, "3", props.Label("Int"))
	assert.Equal(t, "2.5", props.Label("Float"))
	assert.Equal(t, "3-1", props.Label("Text"))
	assert.Equal(t, "A", props.Label("Pick"))
}

func TestPropertiesUnmarshalBlankCells(t *testing.T) {
	var props Properties
	err := json.Unmarshal([]byte(`{
		"Comment": {"type": "rich_text", "rich_text": []},
		"Status": {"type": "select", "select": null},
		"Date": {"type": "date", "date": null},
		"Image": {"type": "files", "files": [
			{"name": "a.png", "type": "external", "external": {"url": "https://e/a.png"}}
		]}
	}`), &props)
	require.NoError(t, err)

	assert.Equal(t, "", props.RichText("Comment"))
	assert.Equal(t, "", props.Select("Status"))
	assert.Equal(t, "", props.Date("Date"))
	files := props.Files("Image")
	require.Len(t, files, 1)
	u, ok := files[0].URL()
	assert.True(t, ok)
	assert.Equal(t, "https://e/a.png", u)
}

func TestPropertiesUnmarshalRejectsMalformedValue(t *testing.T) {
	var props Properties
	err := json.Unmarshal([]byte(`{"Age": {"type": "number", "number": "twelve"}}`), &props)
	assert.Error(t, err)
}

func TestTextValue(t *testing.T) {
	assert.Empty(t, TextValue("").RichText)
	assert.NotNil(t, TextValue("").RichText)
	v := TextValue("좋았어요")
	require.Len(t, v.RichText, 1)
	assert.Equal(t, "text", v.RichText[0].Type)
	assert.Equal(t, "좋았어요", v.RichText[0].Text.Content)
}
