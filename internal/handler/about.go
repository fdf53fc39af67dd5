package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sumire/portfolio-cms/internal/service"
)

type aboutRequest struct {
	Name         string `json:"name" form:"name" validate:"required"`
	Title        string `json:"title" form:"title"`
	Location     string `json:"location" form:"location"`
	Description  string `json:"description" form:"description"`
	Technologies string `json:"technologies" form:"technologies"`
}

// GetAbout returns the about record. Public.
func (h *ContentHandler) GetAbout(c echo.Context) error {
	about, err := h.content.GetAbout()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, about)
}

// UpdateAbout replaces the about record wholesale from a multipart form
// with an optional image upload.
func (h *ContentHandler) UpdateAbout(c echo.Context) error {
	var req aboutRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	description, err := parseStringArray("description", req.Description)
	if err != nil {
		return err
	}
	technologies, err := parseStringArray("technologies", req.Technologies)
	if err != nil {
		return err
	}

	image, err := h.saveOptional(c, "image")
	if err != nil {
		return err
	}

	about, err := h.content.UpdateAbout(service.AboutInput{
		Name:         req.Name,
		Title:        req.Title,
		Location:     req.Location,
		Description:  description,
		Technologies: technologies,
		Image:        image,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"about":   about,
	})
}
