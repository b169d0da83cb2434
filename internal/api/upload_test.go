package api

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raffle-admin-panel/internal/common/errors"
)

func parseForm(t *testing.T, body io.Reader, contentType string) map[string][]string {
	t.Helper()

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)

	reader := multipart.NewReader(body, params["boundary"])
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.Value
}

func TestUploadFields(t *testing.T) {
	form := NewUpload().
		Field("name", "Golden Case").
		Field("price", "9.5")

	body, contentType, err := form.Close()
	require.NoError(t, err)

	values := parseForm(t, body, contentType)
	assert.Equal(t, []string{"Golden Case"}, values["name"])
	assert.Equal(t, []string{"9.5"}, values["price"])
}

func TestUploadAcceptsImageAndAnimation(t *testing.T) {
	_, _, err := NewUpload().
		File("media", "case.png", "image/png", []byte{0x89, 0x50}, MaxUploadSize).
		Close()
	assert.NoError(t, err)

	_, _, err = NewUpload().
		File("media", "spin.json", "application/json", []byte(`{"v":"5.5.7"}`), MaxUploadSize).
		Close()
	assert.NoError(t, err)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	data := bytes.Repeat([]byte{0x0}, MaxUploadSize+1)

	_, _, err := NewUpload().
		File("media", "huge.png", "image/png", data, MaxUploadSize).
		Close()

	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Contains(t, err.Error(), "the limit is 25MB")
}

func TestUploadRejectsForeignMimeType(t *testing.T) {
	_, _, err := NewUpload().
		File("media", "malware.exe", "application/octet-stream", []byte{0x4d, 0x5a}, MaxUploadSize).
		Close()

	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Contains(t, err.Error(), "only images and JSON animations")
}

func TestUploadErrorSticks(t *testing.T) {
	// A failed file poisons the builder; later fields do not resurrect it.
	_, _, err := NewUpload().
		File("media", "malware.exe", "application/octet-stream", []byte{0x4d}, MaxUploadSize).
		Field("name", "after the failure").
		Close()

	assert.True(t, errors.IsValidation(err))
}
