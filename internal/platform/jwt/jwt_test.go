package jwt

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryDenylist struct {
	mu  sync.Mutex
	ids map[string]time.Duration
}

func newMemoryDenylist() *memoryDenylist {
	return &memoryDenylist{ids: make(map[string]time.Duration)}
}

func (d *memoryDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ids[tokenID] = ttl
	return nil
}

func (d *memoryDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.ids[tokenID]
	return ok, nil
}

func newTestManager(t *testing.T, opts ...Option) *Manager {
	t.Helper()
	m, err := NewManager(Config{
		Secret:     "test-secret",
		Algorithm:  "HS256",
		Issuer:     "test-issuer",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	}, opts...)
	require.NoError(t, err)
	return m
}

var seller = Identity{Email: "a@x.com", Role: "seller", UserID: 7}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	token, err := m.IssueAccess(seller)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := m.Validate(ctx, token, Access)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, "seller", claims.Role)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, Access, claims.TokenType)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestRefreshTokenLivesLonger(t *testing.T) {
	m := newTestManager(t)

	token, err := m.IssueRefresh(seller)
	require.NoError(t, err)

	claims, err := m.Validate(context.Background(), token, Refresh)
	require.NoError(t, err)
	assert.Equal(t, Refresh, claims.TokenType)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestWrongTokenType(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	access, err := m.IssueAccess(seller)
	require.NoError(t, err)
	_, err = m.Validate(ctx, access, Refresh)
	assert.ErrorIs(t, err, ErrTokenWrongType)
	assert.Equal(t, "wrong_type", Reason(err))

	refresh, err := m.IssueRefresh(seller)
	require.NoError(t, err)
	_, err = m.Validate(ctx, refresh, Access)
	assert.ErrorIs(t, err, ErrTokenWrongType)
}

func TestExpiredToken(t *testing.T) {
	past := func() time.Time { return time.Now().Add(-2 * time.Hour) }
	issuer := newTestManager(t, WithClock(past))
	validator := newTestManager(t)

	token, err := issuer.IssueAccess(seller)
	require.NoError(t, err)

	_, err = validator.Validate(context.Background(), token, Access)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.False(t, errors.Is(err, ErrTokenMalformed))
	assert.Equal(t, "expired", Reason(err))
}

func TestMalformedTokens(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	other, err := NewManager(Config{Secret: "other-secret", Issuer: "test-issuer"})
	require.NoError(t, err)
	foreign, err := other.IssueAccess(seller)
	require.NoError(t, err)

	wrongIssuer, err := NewManager(Config{Secret: "test-secret", Issuer: "someone-else"})
	require.NoError(t, err)
	foreignIssuer, err := wrongIssuer.IssueAccess(seller)
	require.NoError(t, err)

	hs512, err := NewManager(Config{Secret: "test-secret", Algorithm: "HS512", Issuer: "test-issuer"})
	require.NoError(t, err)
	otherAlg, err := hs512.IssueAccess(seller)
	require.NoError(t, err)

	cases := map[string]string{
		"empty":        "",
		"garbage":      "not-a-token",
		"two segments": "abc.def",
		"bad secret":   foreign,
		"bad issuer":   foreignIssuer,
		"other alg":    otherAlg,
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := m.Validate(ctx, token, Access)
			assert.ErrorIs(t, err, ErrTokenMalformed)
			assert.Equal(t, "malformed", Reason(err))
		})
	}
}

func TestNewManagerRejectsBadConfig(t *testing.T) {
	_, err := NewManager(Config{Secret: ""})
	assert.Error(t, err)

	_, err = NewManager(Config{Secret: "s", Algorithm: "RS256"})
	assert.Error(t, err)
}

func TestStatelessRefreshStaysValid(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	token, err := m.IssueRefresh(seller)
	require.NoError(t, err)
	claims, err := m.Validate(ctx, token, Refresh)
	require.NoError(t, err)

	assert.False(t, m.RevocationEnabled())
	require.NoError(t, m.Revoke(ctx, claims))

	_, err = m.Validate(ctx, token, Refresh)
	assert.NoError(t, err)
}

func TestRevokeWithDenylist(t *testing.T) {
	deny := newMemoryDenylist()
	m := newTestManager(t, WithDenylist(deny))
	ctx := context.Background()

	token, err := m.IssueRefresh(seller)
	require.NoError(t, err)
	claims, err := m.Validate(ctx, token, Refresh)
	require.NoError(t, err)

	require.NoError(t, m.Revoke(ctx, claims))
	ttl := deny.ids[claims.ID]
	assert.Greater(t, ttl, 23*time.Hour)

	_, err = m.Validate(ctx, token, Refresh)
	assert.ErrorIs(t, err, ErrTokenRevoked)
	assert.Equal(t, "revoked", Reason(err))

	fresh, err := m.IssueRefresh(seller)
	require.NoError(t, err)
	_, err = m.Validate(ctx, fresh, Refresh)
	assert.NoError(t, err)
}
