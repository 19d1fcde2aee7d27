package user

import (
	"context"
	"testing"
	"time"

	"github.com/aleksandar-ristic/StarterStore/internal/domain"
	tokenrepo "github.com/aleksandar-ristic/StarterStore/internal/repository/token"
)

// memoryRepo is a lightweight in-memory user repository for tests.
type memoryRepo struct {
	byEmail map[string]domain.User
}

type memoryTokenRepo struct {
	tokens map[string]tokenrepo.Token
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byEmail: make(map[string]domain.User)}
}

func newMemoryTokenRepo() *memoryTokenRepo {
	return &memoryTokenRepo{tokens: make(map[string]tokenrepo.Token)}
}

func (r *memoryRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[u.Email]; exists {
		return nil, domain.ErrAlreadyExists
	}
	clone := u
	clone.ID = "user-" + u.Email
	r.byEmail[clone.Email] = clone
	return &clone, nil
}

func (r *memoryRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.byEmail[email]; ok {
		clone := u
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryTokenRepo) Create(_ context.Context, token tokenrepo.Token) error {
	if _, exists := r.tokens[token.Token]; exists {
		return domain.ErrAlreadyExists
	}
	r.tokens[token.Token] = token
	return nil
}

func (r *memoryTokenRepo) Get(_ context.Context, token string) (tokenrepo.Token, error) {
	t, ok := r.tokens[token]
	if !ok {
		return tokenrepo.Token{}, domain.ErrNotFound
	}
	return t, nil
}

func (r *memoryTokenRepo) Delete(_ context.Context, token string) error {
	if _, ok := r.tokens[token]; !ok {
		return domain.ErrNotFound
	}
	delete(r.tokens, token)
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := New(newMemoryRepo(), newMemoryTokenRepo())
	ctx := context.Background()

	u, token, err := svc.Register(ctx, RegisterInput{
		Name:     "Test User",
		Email:    "User@Example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "user@example.com" {
		t.Fatalf("email not normalized: %s", u.Email)
	}
	if token == "" {
		t.Fatal("register did not issue a token")
	}
	if u.PasswordHash == "secret1" {
		t.Fatal("password stored in plain text")
	}

	_, loginToken, err := svc.Login(ctx, "user@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loginToken == token {
		t.Fatal("login reused the registration token")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := New(newMemoryRepo(), newMemoryTokenRepo())
	ctx := context.Background()

	in := RegisterInput{Name: "A", Email: "a@example.com", Password: "secret1"}
	if _, _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, err := svc.Register(ctx, in); err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := New(newMemoryRepo(), newMemoryTokenRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"empty name", RegisterInput{Email: "a@example.com", Password: "secret1"}},
		{"bad email", RegisterInput{Name: "A", Email: "not-an-email", Password: "secret1"}},
		{"short password", RegisterInput{Name: "A", Email: "a@example.com", Password: "12345"}},
	}
	for _, tc := range cases {
		if _, _, err := svc.Register(ctx, tc.in); err == nil {
			t.Fatalf("expected error for case %s", tc.name)
		}
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := New(newMemoryRepo(), newMemoryTokenRepo())
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, RegisterInput{
		Name:     "A",
		Email:    "a@example.com",
		Password: "secret1",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(ctx, "a@example.com", "wrongpass"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "missing@example.com", "secret1"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for missing user, got %v", err)
	}
}

func TestLookupByToken(t *testing.T) {
	tokens := newMemoryTokenRepo()
	svc := New(newMemoryRepo(), tokens)
	ctx := context.Background()

	u, token, err := svc.Register(ctx, RegisterInput{
		Name:     "A",
		Email:    "a@example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := svc.LookupByToken(ctx, token)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("lookup returned user %s, want %s", got.ID, u.ID)
	}

	if _, err := svc.LookupByToken(ctx, "bogus"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestLookupByToken_ExpiredTokenDeleted(t *testing.T) {
	tokens := newMemoryTokenRepo()
	svc := New(newMemoryRepo(), tokens)
	ctx := context.Background()

	u, err := svc.repo.Create(ctx, domain.User{Name: "A", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := tokens.Create(ctx, tokenrepo.Token{
		Token:     "stale",
		UserID:    u.ID,
		Kind:      "access",
		ExpiresAt: time.Now().Add(-time.Minute),
	}); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	if _, err := svc.LookupByToken(ctx, "stale"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
	if _, ok := tokens.tokens["stale"]; ok {
		t.Fatal("expired token was not deleted")
	}
}
