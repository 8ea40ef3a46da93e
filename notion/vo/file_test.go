package vo

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExternal(t *testing.T) {
	var f File
	require.NoError(t, json.Unmarshal([]byte(`{"type":"external","external":{"url":"https://x/y"}}`), &f))
	assert.Equal(t, FileTypeExternal, f.Type)
	require.NotNil(t, f.External)
	assert.Equal(t, "https://x/y", f.External.URL)
	assert.Equal(t, "https://x/y", f.URL())
}

func TestFileNotionHosted(t *testing.T) {
	var f File
	require.NoError(t, json.Unmarshal([]byte(`{"type":"file","file":{"url":"https://s3.us-west-2.amazonaws.com/x","expiry_time":"2024-04-04T10:45:54.308Z"}}`), &f))
	assert.Equal(t, FileTypeFile, f.Type)
	require.NotNil(t, f.File)
	assert.Equal(t, "https://s3.us-west-2.amazonaws.com/x", f.File.URL)
	assert.Equal(t, "2024-04-04T10:45:54.308Z", f.File.ExpiryTime)
}

func TestFileInferredWithoutType(t *testing.T) {
	var f File
	require.NoError(t, json.Unmarshal([]byte(`{"file_upload":{"id":"43833259-72ae-404e-8441-b6577f3159b4"}}`), &f))
	assert.Equal(t, FileTypeFileUpload, f.Type)
	assert.Equal(t, "43833259-72ae-404e-8441-b6577f3159b4", f.FileUpload.ID)
}

func TestFileExternalWinsOverFile(t *testing.T) {
	var f File
	require.NoError(t, json.Unmarshal([]byte(`{"external":{"url":"https://a"},"file":{"url":"https://b"}}`), &f))
	assert.Equal(t, FileTypeExternal, f.Type)
	assert.Nil(t, f.File)
}

func TestFileUnknown(t *testing.T) {
	var f File
	err := json.Unmarshal([]byte(`{"type":"mystery","mystery":{}}`), &f)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFile)
}

func TestFileRoundTrip(t *testing.T) {
	roundTrip[File](t, `{"type":"external","name":"logo.png","caption":[{"type":"text","text":{"content":"Logo"},"plain_text":"Logo"}],"external":{"url":"https://example.com/logo.png"}}`)
	roundTrip[File](t, `{"type":"file_upload","file_upload":{"id":"abc"}}`)
}
