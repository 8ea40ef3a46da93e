package filter_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foomo/notion-mcp/notion/filter"
	"github.com/foomo/notion-mcp/notion/vo"
)

func encode(t *testing.T, f any) string {
	t.Helper()
	data, err := json.Marshal(f)
	require.NoError(t, err)
	return string(data)
}

func TestFilterWireForm(t *testing.T) {
	tests := []struct {
		name   string
		filter filter.Filter
		want   string
	}{
		{
			name:   "checkbox leaf",
			filter: filter.CheckboxIsChecked("Done"),
			want:   `{"property":"Done","checkbox":{"equals":true}}`,
		},
		{
			name: "or of two date leaves",
			filter: filter.Or(
				filter.DateBefore("Created", "2024-07-01"),
				filter.DateIsEmpty("Created"),
			),
			want: `{"or":[{"property":"Created","date":{"before":"2024-07-01"}},{"property":"Created","date":{"is_empty":true}}]}`,
		},
		{
			name:   "timestamp marker operator",
			filter: filter.CreatedTimePastWeek(),
			want:   `{"timestamp":"created_time","created_time":{"past_week":{}}}`,
		},
		{
			name:   "last edited timestamp",
			filter: filter.LastEditedTimeOnOrAfter("2024-01-01"),
			want:   `{"timestamp":"last_edited_time","last_edited_time":{"on_or_after":"2024-01-01"}}`,
		},
		{
			name:   "empty and",
			filter: filter.And(),
			want:   `{"and":[]}`,
		},
		{
			name:   "empty or",
			filter: filter.Or(),
			want:   `{"or":[]}`,
		},
		{
			name: "nested compound",
			filter: filter.And(
				filter.SelectEquals("Stage", "Done"),
				filter.Or(
					filter.NumberGreaterThan("Score", 2.5),
					filter.TitleContains("Name", "launch"),
				),
			),
			want: `{"and":[{"property":"Stage","select":{"equals":"Done"}},{"or":[{"property":"Score","number":{"greater_than":2.5}},{"property":"Name","title":{"contains":"launch"}}]}]}`,
		},
		{
			name:   "rollup any",
			filter: filter.RollupAny("Tasks", filter.RichTextContains("", "bug")),
			want:   `{"property":"Tasks","rollup":{"any":{"rich_text":{"contains":"bug"}}}}`,
		},
		{
			name:   "rollup number",
			filter: filter.RollupNumber("Total", filter.NumberCondition{Equals: ptr(0.0)}),
			want:   `{"property":"Total","rollup":{"number":{"equals":0}}}`,
		},
		{
			name:   "formula string",
			filter: filter.FormulaString("Label", filter.TextCondition{StartsWith: ptr("A")}),
			want:   `{"property":"Label","formula":{"string":{"starts_with":"A"}}}`,
		},
		{
			name:   "unique id",
			filter: filter.UniqueIDLessThan("ID", 42),
			want:   `{"property":"ID","unique_id":{"less_than":42}}`,
		},
		{
			name:   "verification",
			filter: filter.VerificationStatusIs("Verified", filter.VerificationExpired),
			want:   `{"property":"Verified","verification":{"status":"expired"}}`,
		},
		{
			name:   "checkbox false is kept",
			filter: filter.CheckboxIsNotChecked("Done"),
			want:   `{"property":"Done","checkbox":{"equals":false}}`,
		},
		{
			name:   "empty string equality is kept",
			filter: filter.RichTextEquals("Notes", ""),
			want:   `{"property":"Notes","rich_text":{"equals":""}}`,
		},
		{
			name:   "empty select option is kept",
			filter: filter.SelectEquals("S", ""),
			want:   `{"property":"S","select":{"equals":""}}`,
		},
		{
			name:   "empty contains is kept",
			filter: filter.RichTextContains("T", ""),
			want:   `{"property":"T","rich_text":{"contains":""}}`,
		},
		{
			name:   "empty multi select option is kept",
			filter: filter.MultiSelectContains("M", ""),
			want:   `{"property":"M","multi_select":{"contains":""}}`,
		},
		{name: "url does not contain", filter: filter.URLDoesNotContain("Link", "x"), want: `{"property":"Link","url":{"does_not_contain":"x"}}`},
		{name: "url does not equal", filter: filter.URLDoesNotEqual("Link", "x"), want: `{"property":"Link","url":{"does_not_equal":"x"}}`},
		{name: "url starts with", filter: filter.URLStartsWith("Link", "https"), want: `{"property":"Link","url":{"starts_with":"https"}}`},
		{name: "url ends with", filter: filter.URLEndsWith("Link", ".pdf"), want: `{"property":"Link","url":{"ends_with":".pdf"}}`},
		{name: "email does not contain", filter: filter.EmailDoesNotContain("Mail", "spam"), want: `{"property":"Mail","email":{"does_not_contain":"spam"}}`},
		{name: "email does not equal", filter: filter.EmailDoesNotEqual("Mail", "a@b.c"), want: `{"property":"Mail","email":{"does_not_equal":"a@b.c"}}`},
		{name: "email starts with", filter: filter.EmailStartsWith("Mail", "admin"), want: `{"property":"Mail","email":{"starts_with":"admin"}}`},
		{name: "phone does not contain", filter: filter.PhoneNumberDoesNotContain("Phone", "99"), want: `{"property":"Phone","phone_number":{"does_not_contain":"99"}}`},
		{name: "phone does not equal", filter: filter.PhoneNumberDoesNotEqual("Phone", "123"), want: `{"property":"Phone","phone_number":{"does_not_equal":"123"}}`},
		{name: "phone ends with", filter: filter.PhoneNumberEndsWith("Phone", "00"), want: `{"property":"Phone","phone_number":{"ends_with":"00"}}`},
		{name: "created by is empty", filter: filter.CreatedByIsEmpty("Author"), want: `{"property":"Author","created_by":{"is_empty":true}}`},
		{name: "created by is not empty", filter: filter.CreatedByIsNotEmpty("Author"), want: `{"property":"Author","created_by":{"is_not_empty":true}}`},
		{name: "last edited by is empty", filter: filter.LastEditedByIsEmpty("Editor"), want: `{"property":"Editor","last_edited_by":{"is_empty":true}}`},
		{name: "last edited by is not empty", filter: filter.LastEditedByIsNotEmpty("Editor"), want: `{"property":"Editor","last_edited_by":{"is_not_empty":true}}`},
		{name: "created time next week", filter: filter.CreatedTimeNextWeek(), want: `{"timestamp":"created_time","created_time":{"next_week":{}}}`},
		{name: "created time next month", filter: filter.CreatedTimeNextMonth(), want: `{"timestamp":"created_time","created_time":{"next_month":{}}}`},
		{name: "created time next year", filter: filter.CreatedTimeNextYear(), want: `{"timestamp":"created_time","created_time":{"next_year":{}}}`},
		{name: "created time is empty", filter: filter.CreatedTimeIsEmpty(), want: `{"timestamp":"created_time","created_time":{"is_empty":true}}`},
		{name: "created time is not empty", filter: filter.CreatedTimeIsNotEmpty(), want: `{"timestamp":"created_time","created_time":{"is_not_empty":true}}`},
		{name: "last edited time next week", filter: filter.LastEditedTimeNextWeek(), want: `{"timestamp":"last_edited_time","last_edited_time":{"next_week":{}}}`},
		{name: "last edited time next month", filter: filter.LastEditedTimeNextMonth(), want: `{"timestamp":"last_edited_time","last_edited_time":{"next_month":{}}}`},
		{name: "last edited time next year", filter: filter.LastEditedTimeNextYear(), want: `{"timestamp":"last_edited_time","last_edited_time":{"next_year":{}}}`},
		{name: "last edited time is empty", filter: filter.LastEditedTimeIsEmpty(), want: `{"timestamp":"last_edited_time","last_edited_time":{"is_empty":true}}`},
		{name: "last edited time is not empty", filter: filter.LastEditedTimeIsNotEmpty(), want: `{"timestamp":"last_edited_time","last_edited_time":{"is_not_empty":true}}`},
		{
			name:   "created time property",
			filter: filter.CreatedTimeProperty("Created", filter.DateCondition{After: "2024-01-01"}),
			want:   `{"property":"Created","created_time":{"after":"2024-01-01"}}`,
		},
		{
			name:   "last edited time property",
			filter: filter.LastEditedTimeProperty("Edited", filter.DateCondition{PastMonth: &filter.Empty{}}),
			want:   `{"property":"Edited","last_edited_time":{"past_month":{}}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encode(t, tt.filter)
			assert.JSONEq(t, tt.want, got)

			var decoded filter.Filter
			require.NoError(t, json.Unmarshal([]byte(got), &decoded))
			assert.Equal(t, got, encode(t, decoded))
		})
	}
}

func TestFilterDecodeReencodesIdentically(t *testing.T) {
	inputs := []string{
		`{"property":"Done","checkbox":{"equals":true}}`,
		`{"or":[{"property":"Created","date":{"before":"2024-07-01"}},{"property":"Created","date":{"is_empty":true}}]}`,
		`{"timestamp":"created_time","created_time":{"past_week":{}}}`,
		`{"and":[]}`,
	}
	for _, in := range inputs {
		var f filter.Filter
		require.NoError(t, json.Unmarshal([]byte(in), &f))
		assert.Equal(t, in, encode(t, f))
	}
}

func TestFilterNestedRoundTrip(t *testing.T) {
	f := filter.Or(
		filter.And(
			filter.RollupAny("Tasks", filter.StatusEquals("", "Blocked")),
			filter.Or(
				filter.RollupEvery("Estimates", filter.NumberLessThan("", 8)),
				filter.LastEditedTimePastWeek(),
			),
		),
		filter.RollupNone("Owners", filter.PeopleContains("", "u1")),
	)
	want := `{"or":[` +
		`{"and":[` +
		`{"property":"Tasks","rollup":{"any":{"status":{"equals":"Blocked"}}}},` +
		`{"or":[{"property":"Estimates","rollup":{"every":{"number":{"less_than":8}}}},{"timestamp":"last_edited_time","last_edited_time":{"past_week":{}}}]}` +
		`]},` +
		`{"property":"Owners","rollup":{"none":{"people":{"contains":"u1"}}}}` +
		`]}`
	got := encode(t, f)
	assert.JSONEq(t, want, got)

	var decoded filter.Filter
	require.NoError(t, json.Unmarshal([]byte(got), &decoded))
	assert.Equal(t, f, decoded)
	require.Len(t, decoded.Or, 2)
	require.Len(t, decoded.Or[0].And, 2)
	require.NotNil(t, decoded.Or[0].And[0].Condition.Rollup)
	require.NotNil(t, decoded.Or[0].And[0].Condition.Rollup.Any)
	assert.Equal(t, "Blocked", *decoded.Or[0].And[0].Condition.Rollup.Any.Status.Equals)
}

func TestIsCompound(t *testing.T) {
	assert.True(t, filter.And().IsCompound())
	assert.True(t, filter.Or(filter.FilesIsEmpty("F")).IsCompound())
	assert.False(t, filter.PeopleContains("Owner", "u1").IsCompound())
}

func TestEmptinessByKind(t *testing.T) {
	f, err := filter.IsEmpty(vo.PropertyTypeStatus, "State")
	require.NoError(t, err)
	assert.JSONEq(t, `{"property":"State","status":{"is_empty":true}}`, encode(t, f))

	f, err = filter.IsNotEmpty(vo.PropertyTypeEmail, "Mail")
	require.NoError(t, err)
	assert.JSONEq(t, `{"property":"Mail","email":{"is_not_empty":true}}`, encode(t, f))

	_, err = filter.IsEmpty(vo.PropertyTypeButton, "Go")
	assert.Error(t, err)
}

func TestSort(t *testing.T) {
	sorts := []filter.Sort{
		filter.ByProperty("Name", filter.Ascending),
		filter.ByTimestamp(filter.TimestampLastEditedTime, filter.Descending),
	}
	assert.JSONEq(t,
		`[{"property":"Name","direction":"ascending"},{"timestamp":"last_edited_time","direction":"descending"}]`,
		encode(t, sorts),
	)
}

func ptr[T any](v T) *T { return &v }
