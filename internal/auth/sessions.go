package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/ystas1205/Educational-project/internal/domain/user"
	"github.com/ystas1205/Educational-project/internal/platform/jwt"
)

var ErrInvalidRefresh = errors.New("invalid refresh token")

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type TokenIssuer interface {
	TokenValidator
	IssueAccess(id jwt.Identity) (string, error)
	IssueRefresh(id jwt.Identity) (string, error)
	Revoke(ctx context.Context, claims *jwt.Claims) error
}

type Authenticator interface {
	Users
	Login(ctx context.Context, email, password string) (*user.User, error)
}

// Sessions implements the login and refresh-token flows.
type Sessions struct {
	tokens TokenIssuer
	users  Authenticator
}

func NewSessions(tokens TokenIssuer, users Authenticator) *Sessions {
	return &Sessions{tokens: tokens, users: users}
}

func (s *Sessions) Login(ctx context.Context, email, password string) (TokenPair, error) {
	u, err := s.users.Login(ctx, email, password)
	if err != nil {
		return TokenPair{}, err
	}
	id := identity(u)
	access, err := s.tokens.IssueAccess(id)
	if err != nil {
		return TokenPair{}, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefresh(id)
	if err != nil {
		return TokenPair{}, fmt.Errorf("issue refresh token: %w", err)
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh, TokenType: "bearer"}, nil
}

// RotateRefresh exchanges a refresh token for a new one. The old token is
// revoked only when the token manager has a denylist.
func (s *Sessions) RotateRefresh(ctx context.Context, refreshToken string) (string, error) {
	claims, u, err := s.resolve(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	token, err := s.tokens.IssueRefresh(identity(u))
	if err != nil {
		return "", fmt.Errorf("issue refresh token: %w", err)
	}
	if err := s.tokens.Revoke(ctx, claims); err != nil {
		return "", fmt.Errorf("revoke refresh token: %w", err)
	}
	return token, nil
}

// NewAccess issues an access token for the holder of a valid refresh token.
func (s *Sessions) NewAccess(ctx context.Context, refreshToken string) (string, error) {
	_, u, err := s.resolve(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	token, err := s.tokens.IssueAccess(identity(u))
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}
	return token, nil
}

// resolve validates a refresh token and reloads its subject, so new tokens
// carry the stored role rather than the one in the old claims.
func (s *Sessions) resolve(ctx context.Context, refreshToken string) (*jwt.Claims, *user.User, error) {
	claims, err := s.tokens.Validate(ctx, refreshToken, jwt.Refresh)
	if err != nil {
		if rejectedToken(err) {
			return nil, nil, fmt.Errorf("%w: %w", ErrInvalidRefresh, err)
		}
		return nil, nil, err
	}
	u, err := s.users.GetActiveByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) || errors.Is(err, user.ErrInactiveUser) {
			return nil, nil, fmt.Errorf("%w: %w", ErrInvalidRefresh, err)
		}
		return nil, nil, err
	}
	return claims, u, nil
}

// rejectedToken reports whether err is a verdict on the token itself rather
// than a failure of the denylist behind it.
func rejectedToken(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired) ||
		errors.Is(err, jwt.ErrTokenMalformed) ||
		errors.Is(err, jwt.ErrTokenWrongType) ||
		errors.Is(err, jwt.ErrTokenRevoked)
}

func identity(u *user.User) jwt.Identity {
	return jwt.Identity{Email: u.Email, Role: u.Role.String(), UserID: u.ID}
}
