package vo

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOrDateTime(t *testing.T) {
	d, err := ParseDateOrDateTime("2024-07-01")
	require.NoError(t, err)
	assert.False(t, d.IsDateTime())
	tm, err := d.Time()
	require.NoError(t, err)
	assert.Equal(t, time.July, tm.Month())

	dt, err := ParseDateOrDateTime("2024-07-01T09:30:00.000+09:00")
	require.NoError(t, err)
	assert.True(t, dt.IsDateTime())
	tm, err = dt.Time()
	require.NoError(t, err)
	_, offset := tm.Zone()
	assert.Equal(t, 9*3600, offset)
}

func TestDateOrDateTimeInvalid(t *testing.T) {
	_, err := ParseDateOrDateTime("2024-13-01")
	require.Error(t, err)
	_, err = ParseDateOrDateTime("2024-07-01T25:00:00Z")
	require.Error(t, err)
}

func TestDateValuePreservesOffset(t *testing.T) {
	sample := `{"start":"2024-07-01T09:30:00.000+09:00","end":"2024-07-02"}`
	var v DateValue
	require.NoError(t, json.Unmarshal([]byte(sample), &v))
	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, sample, string(out))
}

func TestDateValueIgnoresTimeZone(t *testing.T) {
	var v DateValue
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2024-07-01","end":null,"time_zone":null}`), &v))
	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2024-07-01"}`, string(out))
}

func TestNewDate(t *testing.T) {
	assert.Equal(t, "2024-02-29", NewDate(2024, time.February, 29).String())
	loc := time.FixedZone("", -5*3600)
	assert.Equal(t, "2024-02-29T08:00:00-05:00", NewDateTime(time.Date(2024, 2, 29, 8, 0, 0, 0, loc)).String())
}
