package uploads

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart.FileHeader by round-tripping through a multipart body.
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+FieldName+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	require.Len(t, form.File[FieldName], 1)
	return form.File[FieldName][0]
}

func TestStoredFilename(t *testing.T) {
	at := time.Date(2023, 6, 1, 12, 34, 56, 789_000_000, time.UTC)

	assert.Equal(t, "2023-06-01T12-34-56.789Zshirt.png", StoredFilename("shirt.png", at))
	assert.NotContains(t, StoredFilename("a.webp", at), ":")

	// Non-UTC times are normalised
	local := at.In(time.FixedZone("UTC+4", 4*60*60))
	assert.Equal(t, StoredFilename("shirt.png", at), StoredFilename("shirt.png", local))

	// Directory components of the client name are dropped
	assert.Equal(t, "2023-06-01T12-34-56.789Zevil.png", StoredFilename("../../etc/evil.png", at))
}

func TestAccept(t *testing.T) {
	cases := map[string]bool{
		"image/jpeg":                true,
		"image/png":                 true,
		"image/webp":                true,
		"IMAGE/PNG":                 true,
		"image/png; charset=binary": true,
		"image/gif":                 false,
		"application/octet-stream":  false,
		"":                          false,
	}
	for ct, want := range cases {
		fh := fileHeader(t, "f", ct, []byte("x"))
		assert.Equal(t, want, Accept(fh), ct)
	}
	assert.False(t, Accept(nil))
}

func TestStorage_Prepare(t *testing.T) {
	s := NewStorage("uploads", 10)
	s.Now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	dest, ok, err := s.Prepare(fileHeader(t, "shirt.png", "image/png", []byte("0123456789")))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "uploads/2024-01-02T03-04-05.000Zshirt.png", dest)

	// Disallowed types are dropped silently
	dest, ok, err = s.Prepare(fileHeader(t, "anim.gif", "image/gif", []byte("x")))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, dest)

	_, ok, err = s.Prepare(fileHeader(t, "big.png", "image/png", []byte("0123456789A")))
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.False(t, ok)
}

func TestStorage_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s := NewStorage(dir, DefaultMaxSize)

	content := []byte("\x89PNG fake image")
	fh := fileHeader(t, "shirt.png", "image/png", content)
	dest, ok, err := s.Prepare(fh)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, s.Save(fh, dest))

	written, err := os.ReadFile(filepath.FromSlash(dest))
	require.NoError(t, err)
	assert.Equal(t, content, written)
}

func TestNewStorage_DefaultLimit(t *testing.T) {
	assert.Equal(t, DefaultMaxSize, NewStorage("x", 0).MaxSize)
	assert.Equal(t, int64(5*1024*1024), DefaultMaxSize)
}
