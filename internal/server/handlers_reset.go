package server

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

type resetBody struct {
	AdminToken string `json:"adminToken"`
}

// HandlerResetDB forwards an admin database reset to the backend after
// checking the caller's token against the configured secret. A mismatch
// never issues the downstream call.
func (s *Server) HandlerResetDB(c echo.Context) error {
	resp := make(map[string]any)

	body := new(resetBody)
	if err := c.Bind(body); err != nil {
		resp["error"] = "Invalid request body"
		return c.JSON(http.StatusBadRequest, resp)
	}

	if body.AdminToken == "" || body.AdminToken != s.resetToken {
		s.log.WithField("request_id", c.Get("request_id")).Warn("reset attempt with invalid token")
		resp["error"] = "Unauthorized"
		return c.JSON(http.StatusForbidden, resp)
	}

	payload, _ := json.Marshal(resetBody{AdminToken: s.resetToken})
	status, data, err := s.backend.Forward(c.Request().Context(), http.MethodPost, "/api/admin/reset-db", payload)
	if err != nil {
		s.log.WithError(err).Error("reset forward failed")
		resp["error"] = "Failed to reset database"
		resp["details"] = err.Error()
		return c.JSON(http.StatusInternalServerError, resp)
	}

	return c.JSONBlob(status, data)
}
