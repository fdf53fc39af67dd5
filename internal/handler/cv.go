package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sumire/portfolio-cms/internal/domain"
	"github.com/sumire/portfolio-cms/internal/upload"
)

// GetCV returns the CV record. Public.
func (h *ContentHandler) GetCV(c echo.Context) error {
	cv, err := h.content.GetCV()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cv)
}

// UploadCV replaces the CV record with a newly uploaded PDF. The file is
// required; the previously stored file is left on disk.
func (h *ContentHandler) UploadCV(c echo.Context) error {
	fh, err := formFile(c, upload.FieldCV)
	if err != nil {
		return err
	}
	if fh == nil {
		return domain.ErrNoFile
	}

	path, err := h.files.Save(upload.FieldCV, fh)
	if err != nil {
		return err
	}

	cv, err := h.content.SetCV(fh.Filename, path)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"cv":      cv,
	})
}
