package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sumire/portfolio-cms/internal/service"
)

type projectRequest struct {
	Title        string `json:"title" form:"title" validate:"required"`
	Overline     string `json:"overline" form:"overline"`
	Description  string `json:"description" form:"description"`
	Technologies string `json:"technologies" form:"technologies"`
	GitHubURL    string `json:"githubUrl" form:"githubUrl"`
	LiveURL      string `json:"liveUrl" form:"liveUrl"`
}

func (r projectRequest) toInput(image string) (service.ProjectInput, error) {
	technologies, err := parseStringArray("technologies", r.Technologies)
	if err != nil {
		return service.ProjectInput{}, err
	}
	return service.ProjectInput{
		Title:        r.Title,
		Overline:     r.Overline,
		Description:  r.Description,
		Technologies: technologies,
		GitHubURL:    r.GitHubURL,
		LiveURL:      r.LiveURL,
		Image:        image,
	}, nil
}

// ListProjects returns all projects sorted by display order. Public.
func (h *ContentHandler) ListProjects(c echo.Context) error {
	projects, err := h.content.ListProjects()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// CreateProject creates a project from a multipart form with an optional
// image upload.
func (h *ContentHandler) CreateProject(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	image, err := h.saveOptional(c, "image")
	if err != nil {
		return err
	}

	in, err := req.toInput(image)
	if err != nil {
		return err
	}

	project, err := h.content.CreateProject(in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"project": project,
	})
}

// UpdateProject overwrites a project's content fields. The stored image is
// only replaced when the request carries a new upload.
func (h *ContentHandler) UpdateProject(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	image, err := h.saveOptional(c, "image")
	if err != nil {
		return err
	}

	in, err := req.toInput(image)
	if err != nil {
		return err
	}

	project, err := h.content.UpdateProject(c.Param("id"), in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"project": project,
	})
}

// DeleteProject removes a project. Its uploaded image stays on disk.
func (h *ContentHandler) DeleteProject(c echo.Context) error {
	if err := h.content.DeleteProject(c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Project deleted",
	})
}
