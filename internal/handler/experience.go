package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sumire/portfolio-cms/internal/service"
)

type experienceRequest struct {
	Company     string `json:"company" form:"company" validate:"required"`
	Position    string `json:"position" form:"position" validate:"required"`
	Period      string `json:"period" form:"period"`
	Description string `json:"description" form:"description"`
	TabName     string `json:"tabName" form:"tabName"`
}

func (r experienceRequest) toInput() (service.ExperienceInput, error) {
	description, err := parseStringArray("description", r.Description)
	if err != nil {
		return service.ExperienceInput{}, err
	}
	return service.ExperienceInput{
		Company:     r.Company,
		Position:    r.Position,
		Period:      r.Period,
		Description: description,
		TabName:     r.TabName,
	}, nil
}

// ListExperience returns all experience entries sorted by display order.
// Public.
func (h *ContentHandler) ListExperience(c echo.Context) error {
	entries, err := h.content.ListExperience()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// CreateExperience creates an experience entry.
func (h *ContentHandler) CreateExperience(c echo.Context) error {
	var req experienceRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in, err := req.toInput()
	if err != nil {
		return err
	}

	entry, err := h.content.CreateExperience(in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":    true,
		"experience": entry,
	})
}

// UpdateExperience overwrites an entry's content fields.
func (h *ContentHandler) UpdateExperience(c echo.Context) error {
	var req experienceRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in, err := req.toInput()
	if err != nil {
		return err
	}

	entry, err := h.content.UpdateExperience(c.Param("id"), in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":    true,
		"experience": entry,
	})
}

// DeleteExperience removes an experience entry.
func (h *ContentHandler) DeleteExperience(c echo.Context) error {
	if err := h.content.DeleteExperience(c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Experience deleted",
	})
}
