package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ystas1205/Educational-project/internal/domain/user"
	"github.com/ystas1205/Educational-project/internal/platform/jwt"
)

type directory struct {
	mu        sync.Mutex
	users     map[string]*user.User
	passwords map[string]string
}

func newDirectory(users ...*user.User) *directory {
	d := &directory{users: make(map[string]*user.User), passwords: make(map[string]string)}
	for _, u := range users {
		d.users[u.Email] = u
		d.passwords[u.Email] = "password123"
	}
	return d
}

func (d *directory) GetActiveByEmail(ctx context.Context, email string) (*user.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	u, ok := d.users[email]
	if !ok {
		return nil, user.ErrNotFound
	}
	if !u.IsActive {
		return nil, user.ErrInactiveUser
	}
	cp := *u
	return &cp, nil
}

func (d *directory) Login(ctx context.Context, email, password string) (*user.User, error) {
	d.mu.Lock()
	pw, ok := d.passwords[email]
	d.mu.Unlock()
	if !ok || pw != password {
		return nil, user.ErrInvalidCredentials
	}
	return d.GetActiveByEmail(ctx, email)
}

func (d *directory) deactivate(email string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[email].IsActive = false
}

type memoryDenylist struct {
	mu  sync.Mutex
	ids map[string]bool
}

func (m *memoryDenylist) Revoke(ctx context.Context, id string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids[id] = true
	return nil
}

func (m *memoryDenylist) IsRevoked(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ids[id], nil
}

type unreachableDenylist struct{}

func (unreachableDenylist) Revoke(ctx context.Context, id string, ttl time.Duration) error {
	return errors.New("redis: connection refused")
}

func (unreachableDenylist) IsRevoked(ctx context.Context, id string) (bool, error) {
	return false, errors.New("redis: connection refused")
}

func newManager(t *testing.T, opts ...jwt.Option) *jwt.Manager {
	t.Helper()
	m, err := jwt.NewManager(jwt.Config{
		Secret:     "auth-test-secret",
		Algorithm:  "HS256",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}, opts...)
	require.NoError(t, err)
	return m
}

func TestGuardAuthorize(t *testing.T) {
	ctx := context.Background()
	tokens := newManager(t)
	users := newDirectory(&user.User{ID: 1, Email: "a@x.com", Role: user.RoleSeller, IsActive: true})
	guard := NewGuard(tokens, users)

	access, err := tokens.IssueAccess(jwt.Identity{Email: "a@x.com", Role: "seller", UserID: 1})
	require.NoError(t, err)
	refresh, err := tokens.IssueRefresh(jwt.Identity{Email: "a@x.com", Role: "seller", UserID: 1})
	require.NoError(t, err)

	u, err := guard.Authorize(ctx, "Bearer "+access, SellerOnly...)
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	_, err = guard.Authorize(ctx, "Bearer "+access, Authenticated...)
	assert.NoError(t, err)

	_, err = guard.Authorize(ctx, "Bearer "+access, AdminOnly...)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = guard.Authorize(ctx, "", SellerOnly...)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = guard.Authorize(ctx, "Basic "+access, SellerOnly...)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = guard.Authorize(ctx, "Bearer "+refresh, SellerOnly...)
	assert.ErrorIs(t, err, jwt.ErrTokenWrongType)

	_, err = guard.Authorize(ctx, "Bearer not.a.token", SellerOnly...)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)

	users.deactivate("a@x.com")
	_, err = guard.Authorize(ctx, "Bearer "+access, SellerOnly...)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestGuardRejectsExpiredToken(t *testing.T) {
	past := newManager(t, jwt.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }))
	token, err := past.IssueAccess(jwt.Identity{Email: "a@x.com", Role: "seller", UserID: 1})
	require.NoError(t, err)

	guard := NewGuard(newManager(t), newDirectory(&user.User{ID: 1, Email: "a@x.com", Role: user.RoleSeller, IsActive: true}))
	_, err = guard.Authorize(context.Background(), "Bearer "+token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestBearerToken(t *testing.T) {
	cases := map[string]struct {
		token string
		ok    bool
	}{
		"Bearer abc":     {"abc", true},
		"bearer abc":     {"abc", true},
		"  Bearer  abc ": {"abc", true},
		"Bearer":         {"", false},
		"Bearer ":        {"", false},
		"Token abc":      {"", false},
		"":               {"", false},
	}
	for header, want := range cases {
		got, ok := BearerToken(header)
		assert.Equal(t, want.ok, ok, header)
		assert.Equal(t, want.token, got, header)
	}
}

func TestLoginIssuesPair(t *testing.T) {
	ctx := context.Background()
	tokens := newManager(t)
	sessions := NewSessions(tokens, newDirectory(&user.User{ID: 2, Email: "b@x.com", Role: user.RoleBuyer, IsActive: true}))

	pair, err := sessions.Login(ctx, "b@x.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "bearer", pair.TokenType)

	claims, err := tokens.Validate(ctx, pair.AccessToken, jwt.Access)
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", claims.Subject)
	assert.Equal(t, "buyer", claims.Role)
	assert.Equal(t, int64(2), claims.UserID)

	_, err = tokens.Validate(ctx, pair.RefreshToken, jwt.Refresh)
	require.NoError(t, err)

	_, err = sessions.Login(ctx, "b@x.com", "wrong")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestRotateRefreshIsStatelessWithoutDenylist(t *testing.T) {
	ctx := context.Background()
	tokens := newManager(t)
	sessions := NewSessions(tokens, newDirectory(&user.User{ID: 1, Email: "a@x.com", Role: user.RoleSeller, IsActive: true}))

	pair, err := sessions.Login(ctx, "a@x.com", "password123")
	require.NoError(t, err)

	rotated, err := sessions.RotateRefresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, rotated)

	_, err = tokens.Validate(ctx, rotated, jwt.Refresh)
	require.NoError(t, err)
	_, err = tokens.Validate(ctx, pair.RefreshToken, jwt.Refresh)
	assert.NoError(t, err, "old refresh token keeps validating until expiry")

	_, err = sessions.RotateRefresh(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidRefresh)
	assert.ErrorIs(t, err, jwt.ErrTokenWrongType)
}

func TestRotateRefreshRevokesWithDenylist(t *testing.T) {
	ctx := context.Background()
	tokens := newManager(t, jwt.WithDenylist(&memoryDenylist{ids: make(map[string]bool)}))
	sessions := NewSessions(tokens, newDirectory(&user.User{ID: 1, Email: "a@x.com", Role: user.RoleSeller, IsActive: true}))

	pair, err := sessions.Login(ctx, "a@x.com", "password123")
	require.NoError(t, err)

	rotated, err := sessions.RotateRefresh(ctx, pair.RefreshToken)
	require.NoError(t, err)

	_, err = sessions.RotateRefresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, jwt.ErrTokenRevoked)

	_, err = sessions.NewAccess(ctx, rotated)
	assert.NoError(t, err)
}

func TestNewAccessUsesStoredRole(t *testing.T) {
	ctx := context.Background()
	tokens := newManager(t)
	users := newDirectory(&user.User{ID: 1, Email: "a@x.com", Role: user.RoleSeller, IsActive: true})
	sessions := NewSessions(tokens, users)

	// Role in the refresh token disagrees with the stored row.
	refresh, err := tokens.IssueRefresh(jwt.Identity{Email: "a@x.com", Role: "admin", UserID: 1})
	require.NoError(t, err)

	access, err := sessions.NewAccess(ctx, refresh)
	require.NoError(t, err)
	claims, err := tokens.Validate(ctx, access, jwt.Access)
	require.NoError(t, err)
	assert.Equal(t, "seller", claims.Role)

	users.deactivate("a@x.com")
	_, err = sessions.NewAccess(ctx, refresh)
	assert.True(t, errors.Is(err, ErrInvalidRefresh))
	assert.ErrorIs(t, err, user.ErrInactiveUser)

	unknown, err := tokens.IssueRefresh(jwt.Identity{Email: "ghost@x.com", Role: "buyer", UserID: 9})
	require.NoError(t, err)
	_, err = sessions.RotateRefresh(ctx, unknown)
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestRefreshSurfacesDenylistOutage(t *testing.T) {
	ctx := context.Background()
	issuer := newManager(t)
	refresh, err := issuer.IssueRefresh(jwt.Identity{Email: "a@x.com", Role: "seller", UserID: 1})
	require.NoError(t, err)

	tokens := newManager(t, jwt.WithDenylist(unreachableDenylist{}))
	sessions := NewSessions(tokens, newDirectory(&user.User{ID: 1, Email: "a@x.com", Role: user.RoleSeller, IsActive: true}))

	_, err = sessions.RotateRefresh(ctx, refresh)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidRefresh)
	assert.Contains(t, err.Error(), "connection refused")

	_, err = sessions.NewAccess(ctx, refresh)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidRefresh)

	// Token verdicts are still reported as invalid refresh tokens.
	_, err = sessions.NewAccess(ctx, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidRefresh)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}
