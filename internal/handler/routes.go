package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sumire/portfolio-cms/internal/service"
	"github.com/sumire/portfolio-cms/internal/upload"
)

// Register mounts all API routes under /api. Public reads need no auth;
// every mutation sits behind the bearer-token middleware.
func Register(e *echo.Echo, authSvc *service.AuthService, contentSvc *service.ContentService, files *upload.Saver) {
	authHandler := NewAuthHandler(authSvc)
	contentHandler := NewContentHandler(contentSvc, files)

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "OK",
			"message": "Portfolio CMS API is running",
		})
	})

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/status", authHandler.Status, JWTAuth(authSvc))

	api.GET("/projects", contentHandler.ListProjects)
	api.GET("/experience", contentHandler.ListExperience)
	api.GET("/about", contentHandler.GetAbout)
	api.GET("/cv", contentHandler.GetCV)

	admin := api.Group("", JWTAuth(authSvc))
	admin.POST("/projects", contentHandler.CreateProject)
	admin.PUT("/projects/:id", contentHandler.UpdateProject)
	admin.DELETE("/projects/:id", contentHandler.DeleteProject)
	admin.POST("/experience", contentHandler.CreateExperience)
	admin.PUT("/experience/:id", contentHandler.UpdateExperience)
	admin.DELETE("/experience/:id", contentHandler.DeleteExperience)
	admin.PUT("/about", contentHandler.UpdateAbout)
	admin.POST("/cv", contentHandler.UploadCV)
}
