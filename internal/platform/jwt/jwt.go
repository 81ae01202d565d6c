package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	Access  TokenType = "access"
	Refresh TokenType = "refresh"
)

var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenWrongType = errors.New("unexpected token type")
	ErrTokenRevoked   = errors.New("token revoked")
)

// Identity is what a token is issued for.
type Identity struct {
	Email  string
	Role   string
	UserID int64
}

type Claims struct {
	Role      string    `json:"role"`
	UserID    int64     `json:"id"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// Denylist stores identifiers of tokens that must no longer validate.
type Denylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Config struct {
	Secret     string
	Algorithm  string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type Option func(*Manager)

// WithClock replaces time.Now for issuing and validating.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

func WithDenylist(d Denylist) Option {
	return func(m *Manager) {
		m.denylist = d
	}
}

type Manager struct {
	secret     []byte
	method     *jwt.SigningMethodHMAC
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
	denylist   Denylist
	parser     *jwt.Parser
}

func NewManager(cfg Config, opts ...Option) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	method, err := signingMethod(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	if cfg.Issuer == "" {
		cfg.Issuer = "ecommerce-api"
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 30 * time.Minute
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 7 * 24 * time.Hour
	}

	m := &Manager{
		secret:     []byte(cfg.Secret),
		method:     method,
		issuer:     cfg.Issuer,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return m.now() }),
	)
	return m, nil
}

func signingMethod(alg string) (*jwt.SigningMethodHMAC, error) {
	switch alg {
	case "", "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("unsupported jwt algorithm %q", alg)
	}
}

func (m *Manager) IssueAccess(id Identity) (string, error) {
	return m.issue(id, Access, m.accessTTL)
}

func (m *Manager) IssueRefresh(id Identity) (string, error) {
	return m.issue(id, Refresh, m.refreshTTL)
}

func (m *Manager) issue(id Identity, typ TokenType, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		Role:      id.Role,
		UserID:    id.UserID,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Email,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(m.method, claims)
	return token.SignedString(m.secret)
}

// Validate checks signature, expiration and token type, in that order.
func (m *Manager) Validate(ctx context.Context, tokenStr string, expected TokenType) (*Claims, error) {
	claims := &Claims{}
	_, err := m.parser.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != m.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrTokenMalformed)
	}
	if claims.TokenType != expected {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrTokenWrongType, claims.TokenType, expected)
	}

	if m.denylist != nil && claims.ID != "" {
		revoked, err := m.denylist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("check token denylist: %w", err)
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}

	return claims, nil
}

// Revoke denylists the token until its natural expiry. Without a denylist
// tokens stay valid until they expire.
func (m *Manager) Revoke(ctx context.Context, claims *Claims) error {
	if m.denylist == nil || claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	ttl := claims.ExpiresAt.Time.Sub(m.now())
	if ttl <= 0 {
		return nil
	}
	return m.denylist.Revoke(ctx, claims.ID, ttl)
}

// RevocationEnabled reports whether Revoke has any effect.
func (m *Manager) RevocationEnabled() bool {
	return m.denylist != nil
}

// Reason returns a short label for a validation error, for logs and metrics.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrTokenExpired):
		return "expired"
	case errors.Is(err, ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, ErrTokenWrongType):
		return "wrong_type"
	case errors.Is(err, ErrTokenRevoked):
		return "revoked"
	default:
		return "unknown"
	}
}
