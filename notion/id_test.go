package notion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foomo/notion-mcp/notion"
)

func TestParseID(t *testing.T) {
	const want = "1a2b3c4d-5e6f-4a1b-9c2d-3e4f5a6b7c8d"
	inputs := []string{
		want,
		"1a2b3c4d5e6f4a1b9c2d3e4f5a6b7c8d",
		"  1A2B3C4D5E6F4A1B9C2D3E4F5A6B7C8D ",
		"https://www.notion.so/acme/Roadmap-1a2b3c4d5e6f4a1b9c2d3e4f5a6b7c8d",
		"https://www.notion.so/1a2b3c4d5e6f4a1b9c2d3e4f5a6b7c8d?pvs=4",
		"https://www.notion.so/acme/ffffffffffffffffffffffffffffffff?v=1&p=1a2b3c4d5e6f4a1b9c2d3e4f5a6b7c8d",
	}
	for _, in := range inputs {
		got, err := notion.ParseID(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseIDInvalid(t *testing.T) {
	for _, in := range []string{"", "not-an-id", "https://www.notion.so/acme/Roadmap"} {
		_, err := notion.ParseID(in)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, notion.ErrValidation)
		assert.ErrorIs(t, err, notion.ErrInvalidID)
	}
}
