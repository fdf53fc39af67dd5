package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"

	"github.com/sumire/portfolio-cms/internal/domain"
	"github.com/sumire/portfolio-cms/internal/service"
	"github.com/sumire/portfolio-cms/internal/upload"
)

// ContentHandler handles the portfolio content endpoints: projects,
// experience, about and CV.
type ContentHandler struct {
	content *service.ContentService
	files   *upload.Saver
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(content *service.ContentService, files *upload.Saver) *ContentHandler {
	return &ContentHandler{content: content, files: files}
}

// parseStringArray decodes a JSON-encoded array of strings submitted as a
// single form field. Entries are trimmed and empty ones dropped; anything
// that is not a JSON string array is rejected.
func parseStringArray(field, value string) ([]string, error) {
	if strings.TrimSpace(value) == "" {
		return []string{}, nil
	}

	var items []string
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		return nil, &domain.ValidationError{
			Field:   field,
			Message: "must be a JSON array of strings",
		}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// formFile returns the uploaded file for the given field, or nil when the
// request carries none.
func formFile(c echo.Context, field string) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return fh, nil
}

// saveOptional stores an optional upload and returns its relative path, or
// "" when the request carried no file for the field.
func (h *ContentHandler) saveOptional(c echo.Context, field string) (string, error) {
	fh, err := formFile(c, field)
	if err != nil || fh == nil {
		return "", err
	}
	return h.files.Save(field, fh)
}
