// Package upload persists multipart file uploads to the local filesystem.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sumire/portfolio-cms/internal/domain"
)

// MaxFileSize is the per-file upload limit.
const MaxFileSize = 10 << 20 // 10 MiB

// FieldCV is the multipart field name that routes an upload to the assets
// directory instead of the generic uploads directory.
const FieldCV = "cv"

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".pdf":  true,
}

var allowedMIMETokens = []string{"jpeg", "jpg", "png", "gif", "pdf"}

// Saver validates uploads and writes them under one of two directories:
// CV uploads go to the assets directory, everything else to the uploads
// directory. Stored names are collision-resistant so files are never
// overwritten.
type Saver struct {
	uploadsDir string
	assetsDir  string
	maxSize    int64
}

// NewSaver creates both destination directories if absent.
func NewSaver(uploadsDir, assetsDir string) (*Saver, error) {
	for _, dir := range []string{uploadsDir, assetsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create upload directory %s: %w", dir, err)
		}
	}
	return &Saver{uploadsDir: uploadsDir, assetsDir: assetsDir, maxSize: MaxFileSize}, nil
}

// Save validates and persists one uploaded file and returns the relative
// path to record in the store ("uploads/<name>" or "assets/<name>"). On
// any validation failure nothing is written to disk.
func (s *Saver) Save(field string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", domain.ErrNoFile
	}
	if fh.Size > s.maxSize {
		return "", domain.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, ext)
	}
	if field == FieldCV && ext != ".pdf" {
		return "", fmt.Errorf("%w: CV must be a PDF", domain.ErrUnsupportedFileType)
	}
	if mime := fh.Header.Get("Content-Type"); mime != "" && !allowedMIME(mime) {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, mime)
	}

	dir, prefix := s.uploadsDir, "uploads"
	if field == FieldCV {
		dir, prefix = s.assetsDir, "assets"
	}

	name := storedName(field, ext)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return path.Join(prefix, name), nil
}

func allowedMIME(mime string) bool {
	mime = strings.ToLower(mime)
	for _, token := range allowedMIMETokens {
		if strings.Contains(mime, token) {
			return true
		}
	}
	return false
}

// storedName builds field-<timestamp>-<suffix> names, with a uuid fragment
// as the random suffix.
func storedName(field, ext string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixMilli(), suffix, ext)
}
