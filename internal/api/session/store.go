package session

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/givebridge/donation-platform/internal/core/domain"
)

// CookieName is the slot the session snapshot lives in.
const CookieName = "auth_user"

// Store is the session repository the HTTP layer composes with. It is the
// sole source of truth for "is a user logged in".
type Store interface {
	// Save persists the snapshot, overwriting any prior record.
	Save(c echo.Context, s *domain.Session) error
	// Load returns the current snapshot, or nil when it is missing, corrupt,
	// or expired. Never an error.
	Load(c echo.Context) *domain.Session
	// Clear removes the record. Clearing an empty store is a no-op.
	Clear(c echo.Context)
}

// CookieStore keeps the snapshot in an HttpOnly cookie. The cookie's own
// Max-Age mirrors the token expiry, but the token is authoritative: a replayed
// cookie past its exp decodes to nil regardless of what the client kept.
type CookieStore struct {
	codec  *Codec
	secure bool
}

// NewCookieStore returns a CookieStore. secure marks the cookie HTTPS-only.
func NewCookieStore(codec *Codec, secure bool) *CookieStore {
	return &CookieStore{codec: codec, secure: secure}
}

func (cs *CookieStore) Save(c echo.Context, s *domain.Session) error {
	token, err := cs.codec.Encode(s)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cs.codec.TTL().Seconds()),
		HttpOnly: true,
		Secure:   cs.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (cs *CookieStore) Load(c echo.Context) *domain.Session {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	return cs.codec.Decode(cookie.Value)
}

func (cs *CookieStore) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cs.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
