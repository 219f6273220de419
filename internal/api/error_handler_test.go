package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/givebridge/donation-platform/internal/core/domain"
)

func TestHTTPErrorHandler_DomainMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"duplicate email", domain.ErrDuplicateEmail, http.StatusConflict},
		{"validation", fmt.Errorf("%w: rating out of range", domain.ErrValidation), http.StatusBadRequest},
		{"donation not found", domain.ErrDonationNotFound, http.StatusNotFound},
		{"duplicate donation", domain.ErrDuplicateDonation, http.StatusConflict},
		{"persistence", fmt.Errorf("%w: connection reset", domain.ErrPersistence), http.StatusServiceUnavailable},
		{"echo error", echo.NewHTTPError(http.StatusUnauthorized, "authentication required"), http.StatusUnauthorized},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler(tc.err, c)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rec.Code)
			}
		})
	}
}

func TestHTTPErrorHandler_HidesInternalCause(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler(errors.New("pq: secret dsn leaked"), c)

	if rec.Body.String() == "" || rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected response: %d %s", rec.Code, rec.Body.String())
	}
	if want := `{"error":"internal server error"}`; rec.Body.String() != want+"\n" {
		t.Fatalf("internal detail leaked: %s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_EnumerationResistance(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	// Both sign-in failure modes surface through the same sentinel, so the
	// response body is identical by construction. Pin that down anyway.
	bodies := make([]string, 2)
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/signin", nil), rec)
		handler(domain.ErrInvalidCredentials, c)
		bodies[i] = rec.Body.String()
	}
	if bodies[0] != bodies[1] {
		t.Fatalf("responses differ: %q vs %q", bodies[0], bodies[1])
	}
}
