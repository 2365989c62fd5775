package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) HandlerHealth(c echo.Context) error {
	resp := map[string]string{
		"status":  "ok",
		"backend": s.backend.BaseURL,
	}

	return c.JSON(http.StatusOK, resp)
}
