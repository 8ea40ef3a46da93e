package vo

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dropNulls removes null members so that omitted and null compare equal.
func dropNulls(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			if e == nil {
				continue
			}
			out[k] = dropNulls(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = dropNulls(e)
		}
		return out
	}
	return v
}

func assertEquivalentJSON(t *testing.T, want string, got []byte) {
	t.Helper()
	var w, g any
	require.NoError(t, json.Unmarshal([]byte(want), &w))
	require.NoError(t, json.Unmarshal(got, &g))
	assert.Equal(t, dropNulls(w), dropNulls(g), "got %s", got)
}

// roundTrip decodes sample into a fresh T, re-encodes it and compares.
func roundTrip[T any](t *testing.T, sample string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(sample), &v))
	out, err := json.Marshal(v)
	require.NoError(t, err, spew.Sdump(v))
	assertEquivalentJSON(t, sample, out)
	return v
}
