package uploads

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

// FieldName is the multipart form field carrying the product image.
const FieldName = "productImage"

// DefaultMaxSize is the per-file limit when none is configured (5 MiB).
const DefaultMaxSize int64 = 5 << 20

// ErrFileTooLarge is returned when an uploaded file exceeds the configured limit.
var ErrFileTooLarge = errors.New("file too large")

var acceptedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Storage writes accepted product images to a local directory.
type Storage struct {
	Dir     string
	MaxSize int64
	Now     func() time.Time
}

// NewStorage creates a Storage rooted at dir.
func NewStorage(dir string, maxSize int64) *Storage {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Storage{
		Dir:     dir,
		MaxSize: maxSize,
		Now:     time.Now,
	}
}

// EnsureDir creates the uploads directory if it does not exist.
func (s *Storage) EnsureDir() error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory %s: %w", s.Dir, err)
	}
	return nil
}

// Accept reports whether the file's declared content type is an allowed image type.
func Accept(fh *multipart.FileHeader) bool {
	if fh == nil {
		return false
	}
	ct := strings.ToLower(strings.TrimSpace(fh.Header.Get("Content-Type")))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return acceptedTypes[ct]
}

// StoredFilename builds the on-disk name for an upload: an ISO-8601 UTC timestamp
// with colons replaced, followed by the original file name.
func StoredFilename(original string, t time.Time) string {
	stamp := strings.ReplaceAll(t.UTC().Format("2006-01-02T15:04:05.000Z07:00"), ":", "-")
	return stamp + filepath.Base(filepath.FromSlash(original))
}

// Prepare checks an uploaded file and computes where it will be stored.
// Files of a disallowed type are dropped: ok is false and no error is returned.
func (s *Storage) Prepare(fh *multipart.FileHeader) (dest string, ok bool, err error) {
	if fh == nil || !Accept(fh) {
		return "", false, nil
	}
	if fh.Size > s.MaxSize {
		return "", false, fmt.Errorf("%s is %d bytes, limit is %d: %w", fh.Filename, fh.Size, s.MaxSize, ErrFileTooLarge)
	}
	return path.Join(filepath.ToSlash(s.Dir), StoredFilename(fh.Filename, s.Now())), true, nil
}

// Save writes the uploaded file to dest.
func (s *Storage) Save(fh *multipart.FileHeader, dest string) error {
	if err := s.EnsureDir(); err != nil {
		return err
	}
	if err := fasthttp.SaveMultipartFile(fh, filepath.FromSlash(dest)); err != nil {
		return fmt.Errorf("failed to save %s: %w", fh.Filename, err)
	}
	return nil
}
