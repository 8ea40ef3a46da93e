package vo

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyValueRoundTrip(t *testing.T) {
	samples := map[string]string{
		"title":        `{"id":"title","type":"title","title":[{"type":"text","text":{"content":"Tuscan kale"},"annotations":{"bold":false,"italic":false,"strikethrough":false,"underline":false,"code":false,"color":"default"},"plain_text":"Tuscan kale"}]}`,
		"number":       `{"id":"%7B%5D_P","type":"number","number":2.5}`,
		"number null":  `{"id":"%7B%5D_P","type":"number","number":null}`,
		"select":       `{"id":"Q%7Bb","type":"select","select":{"id":"e4413a91","name":"Vegetable","color":"green"}}`,
		"multi_select": `{"id":"flsb","type":"multi_select","multi_select":[{"id":"5de29601","name":"Garden","color":"yellow"}]}`,
		"status":       `{"id":"s","type":"status","status":{"id":"1","name":"Done","color":"green"}}`,
		"date":         `{"id":"d","type":"date","date":{"start":"2024-07-01T09:30:00.000+09:00"}}`,
		"people":       `{"id":"p","type":"people","people":[{"object":"user","id":"u1"}]}`,
		"files":        `{"id":"f","type":"files","files":[{"type":"external","name":"x.pdf","external":{"url":"https://x/x.pdf"}}]}`,
		"relation":     `{"id":"r","type":"relation","relation":[{"id":"p1"},{"id":"p2"}],"has_more":true}`,
		"checkbox":     `{"id":"c","type":"checkbox","checkbox":false}`,
		"url":          `{"id":"u","type":"url","url":"https://notion.so"}`,
		"email":        `{"id":"e","type":"email","email":null}`,
		"phone_number": `{"id":"ph","type":"phone_number","phone_number":"+1 555"}`,
		"created_by":   `{"id":"cb","type":"created_by","created_by":{"object":"user","id":"u1"}}`,
		"created_time": `{"id":"ct","type":"created_time","created_time":"2024-01-01T00:00:00.000Z"}`,
		"unique_id":    `{"id":"uid","type":"unique_id","unique_id":{"prefix":"TASK","number":42}}`,
		"verification": `{"id":"v","type":"verification","verification":{"state":"verified","verified_by":{"object":"user","id":"u1"},"date":{"start":"2024-01-01"}}}`,
		"button":       `{"id":"b","type":"button","button":{}}`,
		"place":        `{"id":"pl","type":"place","place":{"lat":35.68,"lon":139.76,"name":"Tokyo"}}`,
		"formula":      `{"id":"fo","type":"formula","formula":{"type":"number","number":3}}`,
		"rollup":       `{"id":"ro","type":"rollup","rollup":{"type":"array","function":"show_original","array":[{"type":"title","title":[{"type":"text","text":{"content":"A"},"plain_text":"A"}]}]}}`,
		"rollup num":   `{"id":"ro","type":"rollup","rollup":{"type":"number","function":"sum","number":12}}`,
	}
	for name, sample := range samples {
		t.Run(name, func(t *testing.T) {
			roundTrip[PropertyValue](t, sample)
		})
	}
}

func TestPropertyValueUnknownType(t *testing.T) {
	var v PropertyValue
	require.Error(t, json.Unmarshal([]byte(`{"id":"x","type":"hologram","hologram":{}}`), &v))
}

func TestFormulaValueEmitsOnlyItsKey(t *testing.T) {
	s := "hello"
	out, err := json.Marshal(FormulaValue{Type: FormulaTypeString, String: &s, Number: new(float64)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"string","string":"hello"}`, string(out))

	var f FormulaValue
	require.NoError(t, json.Unmarshal([]byte(`{"type":"boolean","boolean":true,"number":1}`), &f))
	require.NotNil(t, f.Boolean)
	assert.True(t, *f.Boolean)
	assert.Nil(t, f.Number)
}

func TestPropertyValueConstructors(t *testing.T) {
	out, err := json.Marshal(map[string]PropertyValue{
		"Name":  TitleValue(NewText("Groceries")),
		"Done":  CheckboxValue(true),
		"Tags":  MultiSelectValue("a", "b"),
		"Score": NumberValue(7),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"Name":{"type":"title","title":[{"type":"text","text":{"content":"Groceries"},"plain_text":"Groceries"}]},
		"Done":{"type":"checkbox","checkbox":true},
		"Tags":{"type":"multi_select","multi_select":[{"name":"a"},{"name":"b"}]},
		"Score":{"type":"number","number":7}
	}`, string(out))
}

func TestPropertyValuePlainText(t *testing.T) {
	assert.Equal(t, "Groceries", TitleValue(NewText("Groc"), NewText("eries")).PlainText())
	assert.Equal(t, "2.5", NumberValue(2.5).PlainText())
	assert.Equal(t, "a, b", MultiSelectValue("a", "b").PlainText())
	assert.Equal(t, "TASK-42", PropertyValue{Type: PropertyTypeUniqueID, UniqueID: &UniqueIDValue{Prefix: "TASK", Number: 42}}.PlainText())
}

func TestPropertySchemaRoundTrip(t *testing.T) {
	samples := map[string]string{
		"title":    `{"id":"title","name":"Name","type":"title","title":{}}`,
		"number":   `{"id":"n","name":"Price","type":"number","number":{"format":"dollar"}}`,
		"select":   `{"id":"s","name":"Food group","type":"select","select":{"options":[{"id":"e28f74fc","name":"Vegetable","color":"green","description":"leafy"}]}}`,
		"status":   `{"id":"st","name":"Status","type":"status","status":{"options":[{"id":"o1","name":"Todo","color":"red"}],"groups":[{"id":"g1","name":"To-do","color":"gray","option_ids":["o1"]}]}}`,
		"formula":  `{"id":"f","name":"Cost","type":"formula","formula":{"expression":"prop(\"Price\") * 2"}}`,
		"single":   `{"id":"r","name":"Link","type":"relation","relation":{"data_source_id":"ds1","type":"single_property","single_property":{}}}`,
		"dual":     `{"id":"r","name":"Tasks","type":"relation","relation":{"data_source_id":"ds1","database_id":"db1","type":"dual_property","dual_property":{"synced_property_name":"Projects","synced_property_id":"JU]K"}}}`,
		"rollup":   `{"id":"ro","name":"Total","type":"rollup","rollup":{"function":"sum","relation_property_id":"a","relation_property_name":"Tasks","rollup_property_id":"b","rollup_property_name":"Hours"}}`,
		"uniqueid": `{"id":"u","name":"ID","type":"unique_id","unique_id":{"prefix":"TASK"}}`,
		"place":    `{"id":"p","name":"Where","type":"place","place":{}}`,
	}
	for name, sample := range samples {
		t.Run(name, func(t *testing.T) {
			roundTrip[PropertySchema](t, sample)
		})
	}
}

func TestRelationAmbiguous(t *testing.T) {
	var r RelationConfig
	err := json.Unmarshal([]byte(`{"data_source_id":"x","single_property":{},"dual_property":{}}`), &r)
	assert.ErrorIs(t, err, ErrAmbiguousRelation)
}

func TestRelationSchemaEmitsOneShape(t *testing.T) {
	out, err := json.Marshal(RelationSchema("ds", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"relation","relation":{"data_source_id":"ds","type":"single_property","single_property":{}}}`, string(out))

	out, err = json.Marshal(RelationSchema("ds", &DualProperty{SyncedPropertyName: "Back"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"relation","relation":{"data_source_id":"ds","type":"dual_property","dual_property":{"synced_property_name":"Back"}}}`, string(out))
}

func TestRenameOnlySchema(t *testing.T) {
	out, err := json.Marshal(Rename("Renamed"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Renamed"}`, string(out))
}

func TestStatusConfigValidate(t *testing.T) {
	c := StatusConfig{
		Options: []SelectOption{{ID: "a"}},
		Groups:  []StatusGroup{{Name: "g", OptionIDs: []string{"a", "b"}}},
	}
	require.Error(t, c.Validate())
	c.Groups[0].OptionIDs = []string{"a"}
	require.NoError(t, c.Validate())
}

func TestRegistryCoversEveryKind(t *testing.T) {
	types := PropertyTypes()
	assert.Len(t, types, 24)
	for _, typ := range types {
		s := NewSchema(typ)
		_, err := json.Marshal(s)
		require.NoError(t, err, typ)
	}
}
