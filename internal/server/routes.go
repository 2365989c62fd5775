package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func (s *Server) RegisterRoutes() http.Handler {

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(s.CORS)
	e.Use(s.RequestID)

	// The deployed proxies answer a wrong method with {"error": ...}, not
	// echo's default {"message": ...}; clients extract "error" first.
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if he, ok := err.(*echo.HTTPError); ok && he.Code == http.StatusMethodNotAllowed {
			if !c.Response().Committed {
				c.JSON(http.StatusMethodNotAllowed, map[string]any{"error": "Method not allowed"})
			}
			return
		}
		e.DefaultHTTPErrorHandler(err, c)
	}

	e.GET("/health", s.HandlerHealth)

	// Proxy endpoints
	e.POST("/api/auth/login", s.HandlerLogin)
	e.POST("/api/admin-reset-db", s.HandlerResetDB)
	e.POST("/api/upload", s.HandlerUpload, s.RequireBearer)

	return e
}
