package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/givebridge/donation-platform/internal/core/domain"
)

func testSession() *domain.Session {
	return &domain.Session{
		UserID:            "user-1",
		Email:             "alice@example.com",
		Name:              "Alice",
		PreferredCurrency: "NGN",
		Country:           "NG",
		LastLogin:         time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("test-secret", 0)

	token, err := codec.Encode(testSession())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got := codec.Decode(token)
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "NGN", got.PreferredCurrency)
	assert.Equal(t, "NG", got.Country)
	assert.True(t, got.LastLogin.Equal(testSession().LastLogin))
}

func TestCodec_AbsoluteExpiry(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	codec := NewCodec("test-secret", DefaultTTL)
	codec.now = func() time.Time { return issued }

	token, err := codec.Encode(testSession())
	require.NoError(t, err)

	// Still valid one hour before the 7-day window closes.
	codec.now = func() time.Time { return issued.Add(7*24*time.Hour - time.Hour) }
	assert.NotNil(t, codec.Decode(token))

	// Absent one hour after, regardless of activity in between.
	codec.now = func() time.Time { return issued.Add(7*24*time.Hour + time.Hour) }
	assert.Nil(t, codec.Decode(token))
}

func TestCodec_CorruptToken(t *testing.T) {
	codec := NewCodec("test-secret", 0)

	for _, token := range []string{"", "garbage", "a.b.c", "{\"id\":\"user-1\"}"} {
		assert.Nil(t, codec.Decode(token), "token %q should decode to absent", token)
	}
}

func TestCodec_TamperedSignature(t *testing.T) {
	token, err := NewCodec("secret-a", 0).Encode(testSession())
	require.NoError(t, err)

	assert.Nil(t, NewCodec("secret-b", 0).Decode(token))
}
