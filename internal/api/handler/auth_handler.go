package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/givebridge/donation-platform/internal/api/metrics"
	"github.com/givebridge/donation-platform/internal/api/middleware"
	"github.com/givebridge/donation-platform/internal/api/session"
	"github.com/givebridge/donation-platform/internal/core/domain"
	"github.com/givebridge/donation-platform/internal/core/ports"
)

type AuthHandler struct {
	identity ports.IdentityService
	sessions session.Store
}

func NewAuthHandler(identity ports.IdentityService, sessions session.Store) *AuthHandler {
	return &AuthHandler{identity: identity, sessions: sessions}
}

type signUpRequest struct {
	Email           string `json:"email"            validate:"required,email"`
	Password        string `json:"password"         validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Name            string `json:"name"             validate:"required"`
	Country         string `json:"country"          validate:"omitempty,len=2"`
}

type signInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	User *domain.Session `json:"user"`
}

// SignUp creates a new account and starts a session.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	// Confirmation mismatch is caught here, before the identity service sees
	// the request.
	if err := c.Validate(&req); err != nil {
		metrics.SignupsTotal.WithLabelValues("validation_error").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	sess, err := h.identity.SignUp(c.Request().Context(), ports.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Country:  req.Country,
	})
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(signUpOutcome(err)).Inc()
		return err
	}

	if err := h.sessions.Save(c, sess); err != nil {
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.SignupsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, authResponse{User: sess})
}

// SignIn verifies credentials and starts a session.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	sess, err := h.identity.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.SigninsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.SigninsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	if err := h.sessions.Save(c, sess); err != nil {
		metrics.SigninsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.SigninsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{User: sess})
}

// SignOut clears the session. Always succeeds, even with no session present.
//
// @Summary      Sign out
// @Tags         auth
// @Success      204
// @Router       /auth/signout [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	h.sessions.Clear(c)
	return c.NoContent(http.StatusNoContent)
}

// Me returns the current session snapshot.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
	}
	return c.JSON(http.StatusOK, authResponse{User: sess})
}

func signUpOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		return "duplicate_email"
	case errors.Is(err, domain.ErrValidation):
		return "validation_error"
	default:
		return "error"
	}
}
