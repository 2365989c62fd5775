package server

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CORS sets permissive cross-origin headers on every response and answers
// OPTIONS pre-flight with 200 and no body, matching the contract the browser
// client was built against. The login route advertises its proxy version
// here rather than in the handler, so preflights carry the header too.
func (s *Server) CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request().URL.Path == "/api/auth/login" {
			h.Set("X-Login-Proxy-Version", loginProxyVersion)
		}

		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}
		return next(c)
	}
}

// RequestID tags every request for log correlation.
func (s *Server) RequestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := uuid.NewString()
		c.Set("request_id", id)
		c.Response().Header().Set("X-Request-ID", id)
		return next(c)
	}
}

// RequireBearer rejects requests without a non-empty bearer token. It does
// not verify signature or claims; the real check lives in the backend, and
// this only keeps anonymous traffic off the upload path.
func (s *Server) RequireBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := strings.TrimSpace(strings.TrimPrefix(c.Request().Header.Get("Authorization"), "Bearer"))
		if token == "" {
			return c.JSON(http.StatusUnauthorized, map[string]any{"error": "Unauthorized"})
		}
		return next(c)
	}
}
