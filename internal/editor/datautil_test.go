package editor

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteSize(t *testing.T) {
	var d DataUtils

	assert.Equal(t, "0 bytes", d.ByteSize(""))
	assert.Equal(t, "1 bytes", d.ByteSize(base64.StdEncoding.EncodeToString([]byte("a"))))
	assert.Equal(t, "2 bytes", d.ByteSize(base64.StdEncoding.EncodeToString([]byte("ab"))))
	assert.Equal(t, "3 bytes", d.ByteSize(base64.StdEncoding.EncodeToString([]byte("abc"))))
	assert.Equal(t, "1 234 567 bytes", formatAsBytes(1234567))
}

func TestLoadFileToForm_AnyFile(t *testing.T) {
	var d DataUtils
	var form ReportForm

	require.NoError(t, d.LoadFileToForm(&form, bytes.NewReader([]byte("plain text")), false))

	assert.Equal(t, []byte("plain text"), form.Images)
	assert.Contains(t, form.ImagesContentType, "text/plain")
}

func TestLoadFileToForm_Empty(t *testing.T) {
	var d DataUtils
	var form ReportForm

	err := d.LoadFileToForm(&form, bytes.NewReader(nil), false)

	var loadErr *FileLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "not.extract", loadErr.Key)
}

func TestLoadFileToForm_TooLarge(t *testing.T) {
	var d DataUtils
	var form ReportForm

	err := d.LoadFileToForm(&form, bytes.NewReader(make([]byte, MaxFileSize+1)), false)

	var loadErr *FileLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "too.large", loadErr.Key)
}

func TestLoadFileFromPath(t *testing.T) {
	var d DataUtils
	var form ReportForm
	path := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	require.NoError(t, d.LoadFileFromPath(&form, path, true))
	assert.Equal(t, "image/png", form.ImagesContentType)

	err := d.LoadFileFromPath(&form, filepath.Join(t.TempDir(), "missing.png"), true)
	var loadErr *FileLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "not.read", loadErr.Key)
}
