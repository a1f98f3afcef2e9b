package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueAndDecode(t *testing.T) {
	tm := NewTokenManager("test-secret-key-123", time.Hour)

	token, expiresAt, err := tm.Issue("admin")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	session, err := tm.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", session.Subject)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, expiresAt.Unix(), session.ExpiresAt.Unix())
}

func TestDecodeRejectsAfterExpiry(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tm := NewTokenManager("secret", time.Hour)
	tm.now = fixedClock(start)

	token, _, err := tm.Issue("admin")
	require.NoError(t, err)

	tm.now = fixedClock(start.Add(59 * time.Minute))
	_, err = tm.Decode(token)
	require.NoError(t, err)

	tm.now = fixedClock(start.Add(61 * time.Minute))
	_, err = tm.Decode(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestDecodeRejectsForeignSignature(t *testing.T) {
	ours := NewTokenManager("secret", time.Hour)
	theirs := NewTokenManager("other-secret", time.Hour)

	token, _, err := theirs.Issue("admin")
	require.NoError(t, err)

	_, err = ours.Decode(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecodeRejectsSwappedPayload(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	admin, _, err := tm.Issue("admin")
	require.NoError(t, err)
	guest, _, err := tm.Issue("guest")
	require.NoError(t, err)

	a := strings.Split(admin, ".")
	g := strings.Split(guest, ".")
	forged := strings.Join([]string{a[0], g[1], a[2]}, ".")

	_, err = tm.Decode(forged)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tm.Decode(raw)
		assert.ErrorIs(t, err, ErrTokenInvalid, raw)
	}
}

func TestNewTokenManagerDefaultsTTL(t *testing.T) {
	assert.Equal(t, time.Hour, NewTokenManager("s", 0).TTL())
}
