package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/agrocampo/farm-system/internal/api/middleware"
	"github.com/agrocampo/farm-system/internal/core/domain"
)

// ctxSession returns the session published by the authentication gate, or nil
// when the route runs without it.
func ctxSession(c echo.Context) *domain.Session {
	session, _ := c.Get(middleware.ContextKeySession).(*domain.Session)
	return session
}

// ctxSessionID returns the opaque session identifier from the cookie, as
// published by the authentication gate.
func ctxSessionID(c echo.Context) string {
	id, _ := c.Get(middleware.ContextKeySessionID).(string)
	return id
}
