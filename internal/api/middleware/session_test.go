package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/givebridge/donation-platform/internal/api/session"
	"github.com/givebridge/donation-platform/internal/core/domain"
)

func newTestStore() (*session.Codec, session.Store) {
	codec := session.NewCodec("test-secret", 0)
	return codec, session.NewCookieStore(codec, false)
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestCurrentUser_ValidCookie(t *testing.T) {
	e := echo.New()
	codec, store := newTestStore()

	token, err := codec.Encode(&domain.Session{
		UserID: "u1", Email: "alice@example.com", PreferredCurrency: "NGN",
		LastLogin: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/donations", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	c := e.NewContext(req, httptest.NewRecorder())

	var got *domain.Session
	h := CurrentUser(store)(func(c echo.Context) error {
		got = SessionFrom(c)
		return nil
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if got == nil || got.UserID != "u1" {
		t.Fatalf("session not restored: %+v", got)
	}
}

func TestCurrentUser_MissingCookieIsAnonymous(t *testing.T) {
	e := echo.New()
	_, store := newTestStore()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	h := CurrentUser(store)(func(c echo.Context) error {
		if SessionFrom(c) != nil {
			t.Fatalf("expected anonymous context")
		}
		return nil
	})
	if err := h(c); err != nil {
		t.Fatalf("anonymous requests must pass through, got %v", err)
	}
}

func TestCurrentUser_CorruptCookieIsAnonymous(t *testing.T) {
	e := echo.New()
	_, store := newTestStore()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "corrupt-session-data"})
	c := e.NewContext(req, httptest.NewRecorder())

	h := CurrentUser(store)(func(c echo.Context) error {
		if SessionFrom(c) != nil {
			t.Fatalf("corrupt cookie must read as anonymous")
		}
		return nil
	})
	if err := h(c); err != nil {
		t.Fatalf("corrupt cookie must not fail the request, got %v", err)
	}
}

func TestRequireSession(t *testing.T) {
	e := echo.New()

	// Without a session: 401.
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/donations", nil), httptest.NewRecorder())
	err := RequireSession()(okHandler)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}

	// With one: passes.
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/donations", nil), httptest.NewRecorder())
	c.Set("session", &domain.Session{UserID: "u1"})
	if err := RequireSession()(okHandler)(c); err != nil {
		t.Fatalf("expected pass-through, got %v", err)
	}
}
