package vo

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageSample = `{"object":"page","id":"be633bf1-dfa0-436d-b259-571129a590e5","created_time":"2022-10-24T22:54:00.000Z","last_edited_time":"2023-03-08T18:25:00.000Z","created_by":{"object":"user","id":"c2f20311-9e54-4d11-8c79-7398424ae41e"},"last_edited_by":{"object":"user","id":"9188c6a5-7381-452f-b3dc-d4865aa89bdf"},"cover":null,"icon":{"type":"emoji","emoji":"🐞"},"parent":{"type":"data_source_id","data_source_id":"a1d8501e-1ac1-43e9-a6bd-ea9fe6c8822b","database_id":"d9824bdc-8445-4327-be8b-5b47500af6ce"},"archived":false,"in_trash":false,"properties":{"Name":{"id":"title","type":"title","title":[{"type":"text","text":{"content":"Bug bash"},"plain_text":"Bug bash"}]},"Done":{"id":"d","type":"checkbox","checkbox":true}},"url":"https://www.notion.so/Bug-bash-be633bf1dfa0436db259571129a590e5","public_url":null}`

const dataSourceSample = `{"object":"data_source","id":"a1d8501e-1ac1-43e9-a6bd-ea9fe6c8822b","title":[{"type":"text","text":{"content":"Tasks"},"plain_text":"Tasks"}],"parent":{"type":"database_id","database_id":"d9824bdc-8445-4327-be8b-5b47500af6ce"},"properties":{"Name":{"id":"title","name":"Name","type":"title","title":{}}},"in_trash":false}`

func TestPageRoundTrip(t *testing.T) {
	p := roundTrip[Page](t, pageSample)
	assert.Equal(t, "Bug bash", p.Title())
	assert.Equal(t, ParentTypeDataSource, p.Parent.Type)
	assert.Equal(t, "a1d8501e-1ac1-43e9-a6bd-ea9fe6c8822b", p.Parent.ID())
	assert.True(t, p.Properties["Done"].Checkbox)
}

func TestSearchResults(t *testing.T) {
	sample := `{"object":"list","results":[` + pageSample + `,` + dataSourceSample + `],"next_cursor":null,"has_more":false,"type":"page_or_data_source","page_or_data_source":{},"request_id":"r","developer_survey":"https://notionup.typeform.com"}`
	var l List[SearchResult]
	require.NoError(t, json.Unmarshal([]byte(sample), &l))
	require.Len(t, l.Results, 2)
	assert.Equal(t, ObjectTypePage, l.Results[0].Object)
	assert.Equal(t, "Bug bash", l.Results[0].Title())
	assert.Equal(t, ObjectTypeDataSource, l.Results[1].Object)
	assert.Equal(t, "Tasks", l.Results[1].Title())
	assert.False(t, l.Continues())

	roundTrip[SearchResult](t, dataSourceSample)
}

func TestSearchResultUnknownObject(t *testing.T) {
	var r SearchResult
	require.Error(t, json.Unmarshal([]byte(`{"object":"comment","id":"x"}`), &r))
}

func TestPropertyItem(t *testing.T) {
	var single PropertyItem
	require.NoError(t, json.Unmarshal([]byte(`{"object":"property_item","id":"n","type":"number","number":3}`), &single))
	require.NotNil(t, single.Value)
	assert.Equal(t, 3.0, *single.Value.Number)

	var list PropertyItem
	require.NoError(t, json.Unmarshal([]byte(`{"object":"list","results":[{"object":"property_item","id":"title","type":"title","title":{"type":"text","text":{"content":"A"},"plain_text":"A"}}],"next_cursor":"c","has_more":true,"type":"property_item","property_item":{"id":"title","next_url":"https://api.notion.com/v1/pages/p/properties/title?start_cursor=c","type":"title","title":{}}}`), &list))
	require.NotNil(t, list.List)
	assert.True(t, list.List.Continues())
	assert.Equal(t, "c", list.List.Cursor())
	require.NotNil(t, list.Info)
	assert.Equal(t, PropertyTypeTitle, list.Info.Type)
}
