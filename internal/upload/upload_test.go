package upload

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sumire/portfolio-cms/internal/domain"
)

func newTestSaver(t *testing.T) (*Saver, string, string) {
	t.Helper()
	uploads := filepath.Join(t.TempDir(), "uploads")
	assets := filepath.Join(t.TempDir(), "assets")
	s, err := NewSaver(uploads, assets)
	if err != nil {
		t.Fatalf("NewSaver() error = %v", err)
	}
	return s, uploads, assets
}

// fileHeader builds a real multipart.FileHeader with a declared MIME type,
// the way a browser form submission produces one.
func fileHeader(t *testing.T, field, filename, mime, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		`form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", mime)
	part, err := w.CreatePart(header)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatal(err)
	}
	return req.MultipartForm.File[field][0]
}

func dirEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	return entries
}

func TestSaveImage(t *testing.T) {
	s, uploads, _ := newTestSaver(t)

	path, err := s.Save("image", fileHeader(t, "image", "photo.PNG", "image/png", "png-bytes"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if !strings.HasPrefix(path, "uploads/") {
		t.Errorf("path = %q, want uploads/ prefix", path)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Errorf("path = %q, want lowercased .png extension", path)
	}

	entries := dirEntries(t, uploads)
	if len(entries) != 1 {
		t.Fatalf("uploads dir has %d entries, want 1", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(uploads, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("stored content = %q", data)
	}
}

func TestSaveCVGoesToAssets(t *testing.T) {
	s, uploads, assets := newTestSaver(t)

	path, err := s.Save(FieldCV, fileHeader(t, FieldCV, "resume.pdf", "application/pdf", "%PDF-1.4"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if !strings.HasPrefix(path, "assets/") {
		t.Errorf("path = %q, want assets/ prefix", path)
	}
	if len(dirEntries(t, assets)) != 1 {
		t.Error("assets dir empty after CV upload")
	}
	if len(dirEntries(t, uploads)) != 0 {
		t.Error("CV upload leaked into uploads dir")
	}
}

func TestSaveRejections(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		filename string
		mime     string
		wantErr  error
	}{
		{
			name:     "disallowed extension",
			field:    "image",
			filename: "malware.exe",
			mime:     "application/octet-stream",
			wantErr:  domain.ErrUnsupportedFileType,
		},
		{
			name:     "disallowed mime with allowed extension",
			field:    "image",
			filename: "fake.png",
			mime:     "application/octet-stream",
			wantErr:  domain.ErrUnsupportedFileType,
		},
		{
			name:     "non-pdf cv",
			field:    FieldCV,
			filename: "resume.png",
			mime:     "image/png",
			wantErr:  domain.ErrUnsupportedFileType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, uploads, assets := newTestSaver(t)

			_, err := s.Save(tt.field, fileHeader(t, tt.field, tt.filename, tt.mime, "data"))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Save() error = %v, want %v", err, tt.wantErr)
			}

			// Nothing may reach disk on a rejected upload.
			if n := len(dirEntries(t, uploads)) + len(dirEntries(t, assets)); n != 0 {
				t.Errorf("%d files written despite rejection", n)
			}
		})
	}
}

func TestSaveTooLarge(t *testing.T) {
	s, uploads, _ := newTestSaver(t)
	s.maxSize = 8

	_, err := s.Save("image", fileHeader(t, "image", "big.png", "image/png", "more-than-8-bytes"))
	if !errors.Is(err, domain.ErrFileTooLarge) {
		t.Errorf("Save() error = %v, want ErrFileTooLarge", err)
	}
	if len(dirEntries(t, uploads)) != 0 {
		t.Error("file written despite size rejection")
	}
}

func TestSaveNilHeader(t *testing.T) {
	s, _, _ := newTestSaver(t)

	if _, err := s.Save("image", nil); !errors.Is(err, domain.ErrNoFile) {
		t.Errorf("Save(nil) error = %v, want ErrNoFile", err)
	}
}

func TestStoredNamesDoNotCollide(t *testing.T) {
	s, uploads, _ := newTestSaver(t)

	for i := 0; i < 5; i++ {
		if _, err := s.Save("image", fileHeader(t, "image", "same.png", "image/png", "x")); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	if n := len(dirEntries(t, uploads)); n != 5 {
		t.Errorf("uploads dir has %d entries, want 5 distinct files", n)
	}
}
