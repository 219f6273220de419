package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/givebridge/donation-platform/internal/api/middleware"
	"github.com/givebridge/donation-platform/internal/core/domain"
)

// ctxSession extracts the session injected by the CurrentUser middleware and
// fast-fails before any service call. Presence proves the middleware ran and
// the cookie decoded; nothing re-checks the user store here.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return sess, nil
}
