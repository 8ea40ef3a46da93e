package vo

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const envelope = `"object":"block","id":"c02fc1d3-db8b-45c5-a222-27595b15aea7","parent":{"type":"page_id","page_id":"59833787-2cf9-4fdf-8782-e53db20768a5"},"created_time":"2022-03-01T19:05:00.000Z","last_edited_time":"2022-07-06T19:41:00.000Z","created_by":{"object":"user","id":"ee5f0f84-409a-440f-983a-a5315961c6e4"},"last_edited_by":{"object":"user","id":"ee5f0f84-409a-440f-983a-a5315961c6e4"},"has_children":false,"archived":false,"in_trash":false`

func TestBlockResponseUnknownType(t *testing.T) {
	sample := `{` + envelope + `,"type":"future_block_kind","future_block_kind":{"k":1}}`
	r := roundTrip[BlockResponse](t, sample)
	assert.Equal(t, "c02fc1d3-db8b-45c5-a222-27595b15aea7", r.ID)
	assert.Equal(t, BlockTypeUnsupported, r.Block.Type)
	assert.Equal(t, "future_block_kind", r.Block.UnsupportedType)
	assert.JSONEq(t, `{"k":1}`, string(r.Block.Raw))
}

func TestBlockListWithUnknownType(t *testing.T) {
	sample := `{"object":"list","results":[{` + envelope + `,"type":"paragraph","paragraph":{"rich_text":[],"color":"default"}},{` + envelope + `,"type":"hologram","hologram":{}}],"next_cursor":null,"has_more":false,"type":"block","block":{}}`
	var l List[BlockResponse]
	require.NoError(t, json.Unmarshal([]byte(sample), &l))
	require.Len(t, l.Results, 2)
	assert.Equal(t, BlockTypeParagraph, l.Results[0].Block.Type)
	assert.Equal(t, BlockTypeUnsupported, l.Results[1].Block.Type)
}

func TestBlockResponseRoundTrip(t *testing.T) {
	samples := map[string]string{
		"paragraph": `{"type":"paragraph","paragraph":{"rich_text":[{"type":"text","text":{"content":"Lacinato kale","link":{"url":"https://en.wikipedia.org/wiki/Lacinato_kale"}},"annotations":{"bold":false,"italic":false,"strikethrough":false,"underline":false,"code":false,"color":"green"},"plain_text":"Lacinato kale","href":"https://en.wikipedia.org/wiki/Lacinato_kale"}],"color":"default"}}`,
		"heading":   `{"type":"heading_2","heading_2":{"rich_text":[],"color":"default","is_toggleable":true}}`,
		"to_do":     `{"type":"to_do","to_do":{"rich_text":[],"checked":true,"color":"default"}}`,
		"code":      `{"type":"code","code":{"rich_text":[{"type":"text","text":{"content":"const a = 3"},"plain_text":"const a = 3"}],"language":"javascript"}}`,
		"callout":   `{"type":"callout","callout":{"rich_text":[],"icon":{"type":"emoji","emoji":"💡"},"color":"gray_background"}}`,
		"image":     `{"type":"image","image":{"type":"external","external":{"url":"https://website.domain/images/image.png"}}}`,
		"child":     `{"type":"child_page","child_page":{"title":"Lacinato kale"}}`,
		"divider":   `{"type":"divider","divider":{}}`,
		"column":    `{"type":"column","column":{"width_ratio":0.25}}`,
		"table":     `{"type":"table","table":{"table_width":2,"has_column_header":false,"has_row_header":false}}`,
		"row":       `{"type":"table_row","table_row":{"cells":[[{"type":"text","text":{"content":"a"},"plain_text":"a"}],[]]}}`,
		"synced":    `{"type":"synced_block","synced_block":{"synced_from":null}}`,
		"link":      `{"type":"link_to_page","link_to_page":{"type":"page_id","page_id":"p"}}`,
		"equation":  `{"type":"equation","equation":{"expression":"e=mc^2"}}`,
		"mention":   `{"type":"paragraph","paragraph":{"rich_text":[{"type":"mention","mention":{"type":"template_mention","template_mention":{"type":"template_mention_date","template_mention_date":"today"}},"plain_text":"@Today"}]}}`,
	}
	for name, variant := range samples {
		t.Run(name, func(t *testing.T) {
			roundTrip[BlockResponse](t, `{`+envelope+`,`+variant[1:])
		})
	}
}

func TestBlockRequestShape(t *testing.T) {
	b := Paragraph(NewText("hi").Bold())
	out, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"paragraph","paragraph":{"rich_text":[{"type":"text","text":{"content":"hi"},"annotations":{"bold":true,"italic":false,"strikethrough":false,"underline":false,"code":false,"color":"default"},"plain_text":"hi"}]}}`, string(out))
}

func TestBlockAccessors(t *testing.T) {
	b := ToDoBlock(false, NewText("milk"))
	assert.Equal(t, "milk", PlainText(b.RichText()))
	h := HeadingBlock(1, NewText("Title"))
	assert.Equal(t, BlockTypeHeading1, h.Type)
	assert.Nil(t, h.Children())
}

func TestBlockInvalidKnownPayload(t *testing.T) {
	var b Block
	require.Error(t, json.Unmarshal([]byte(`{"type":"code","code":{"rich_text":[],"language":"klingon"}}`), &b))
}
