package user

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ystas1205/Educational-project/internal/platform/password"
)

type memoryUserRepo struct {
	mu     sync.Mutex
	users  map[int64]*User
	byMail map[string]int64
	nextID int64
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{
		users:  make(map[int64]*User),
		byMail: make(map[string]int64),
		nextID: 1,
	}
}

func (r *memoryUserRepo) Create(ctx context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byMail[u.Email]; ok {
		return ErrEmailTaken
	}
	u.ID = r.nextID
	r.nextID++
	u.CreatedAt = time.Now()
	copyUser := *u
	r.users[u.ID] = &copyUser
	r.byMail[u.Email] = u.ID
	return nil
}

func (r *memoryUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byMail[email]
	if !ok {
		return nil, ErrNotFound
	}
	copyUser := *r.users[id]
	return &copyUser, nil
}

func (r *memoryUserRepo) GetByID(ctx context.Context, id int64) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copyUser := *u
	return &copyUser, nil
}

func (r *memoryUserRepo) Deactivate(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	u.IsActive = false
	return nil
}

func newTestService() (*Service, *memoryUserRepo) {
	repo := newMemoryUserRepo()
	return NewService(repo, password.NewHasher(bcrypt.MinCost)), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, " John@Example.com ", "password123", RoleSeller)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Role != RoleSeller || !u.IsActive {
		t.Fatalf("expected active seller, got %+v", u)
	}
	if u.Email != "john@example.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if u.PasswordHash == "password123" || u.PasswordHash == "" {
		t.Fatalf("password should be hashed")
	}

	if _, err := svc.Login(ctx, "JOHN@example.com", "password123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := svc.Register(ctx, "john@example.com", "another-one", RoleBuyer); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected email taken error, got %v", err)
	}
	if _, err := svc.Login(ctx, "john@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials error")
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email")
	}

	if err := svc.Deactivate(ctx, u.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := svc.Login(ctx, "john@example.com", "password123"); !errors.Is(err, ErrInactiveUser) {
		t.Fatalf("expected inactive user error")
	}
	if _, err := svc.GetActiveByEmail(ctx, "john@example.com"); !errors.Is(err, ErrInactiveUser) {
		t.Fatalf("expected inactive user on lookup")
	}
}

func TestRegisterDefaultsToBuyerAndRejectsAdmin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "buyer@example.com", "password123", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Role != RoleBuyer {
		t.Fatalf("expected default buyer role, got %s", u.Role)
	}

	if _, err := svc.Register(ctx, "boss@example.com", "password123", RoleAdmin); !errors.Is(err, ErrAdminRegistration) {
		t.Fatalf("expected admin registration to be refused, got %v", err)
	}
	if _, err := svc.Register(ctx, "odd@example.com", "password123", Role("superuser")); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected invalid role, got %v", err)
	}
}

func TestMissingCredentials(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "   ", "password123", RoleBuyer); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials for blank email, got %v", err)
	}
	if _, err := svc.Register(ctx, "a@example.com", "", RoleBuyer); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials for blank password, got %v", err)
	}
	if created, err := svc.EnsureAdmin(ctx, "", ""); created || !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected admin seed to refuse blank credentials, created=%v err=%v", created, err)
	}
	if _, err := repo.GetByEmail(ctx, "a@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("nothing should have been stored, got %v", err)
	}
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.EnsureAdmin(ctx, "admin@example.com", "password123")
	if err != nil || !created {
		t.Fatalf("expected admin to be created, created=%v err=%v", created, err)
	}
	created, err = svc.EnsureAdmin(ctx, "admin@example.com", "other-password")
	if err != nil || created {
		t.Fatalf("expected second seed to be a no-op, created=%v err=%v", created, err)
	}

	u, err := repo.GetByEmail(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("lookup admin: %v", err)
	}
	if u.Role != RoleAdmin {
		t.Fatalf("expected admin role, got %s", u.Role)
	}
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"admin", "buyer", "seller"} {
		if _, err := ParseRole(s); err != nil {
			t.Fatalf("expected %q to parse: %v", s, err)
		}
	}
	if _, err := ParseRole("Admin"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("roles are case sensitive")
	}
	if !RoleSeller.In(RoleSeller, RoleAdmin) || RoleBuyer.In(RoleSeller, RoleAdmin) {
		t.Fatalf("Role.In mismatch")
	}
}
