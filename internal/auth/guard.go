package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ystas1205/Educational-project/internal/domain/user"
	"github.com/ystas1205/Educational-project/internal/platform/jwt"
)

var (
	ErrUnauthenticated = errors.New("could not validate credentials")
	ErrForbidden       = errors.New("insufficient role")
)

// Role gates used by the HTTP layer.
var (
	Authenticated = []user.Role{}
	SellerOrAdmin = []user.Role{user.RoleSeller, user.RoleAdmin}
	AdminOnly     = []user.Role{user.RoleAdmin}
	BuyerOnly     = []user.Role{user.RoleBuyer}
	SellerOnly    = []user.Role{user.RoleSeller}
)

type TokenValidator interface {
	Validate(ctx context.Context, token string, expected jwt.TokenType) (*jwt.Claims, error)
}

type Users interface {
	GetActiveByEmail(ctx context.Context, email string) (*user.User, error)
}

type Guard struct {
	tokens TokenValidator
	users  Users
}

func NewGuard(tokens TokenValidator, users Users) *Guard {
	return &Guard{tokens: tokens, users: users}
}

// Authorize resolves the user behind an Authorization header and checks its
// role against allowed. An empty allowed list accepts any active user.
func (g *Guard) Authorize(ctx context.Context, header string, allowed ...user.Role) (*user.User, error) {
	token, ok := BearerToken(header)
	if !ok {
		return nil, ErrUnauthenticated
	}

	claims, err := g.tokens.Validate(ctx, token, jwt.Access)
	if err != nil {
		return nil, err
	}

	u, err := g.users.GetActiveByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) || errors.Is(err, user.ErrInactiveUser) {
			return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
		}
		return nil, err
	}

	if len(allowed) > 0 && !u.Role.In(allowed...) {
		return nil, ErrForbidden
	}
	return u, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
