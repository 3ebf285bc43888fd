package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/joehodgson0/teamhub/internal/domain/user"
	"github.com/joehodgson0/teamhub/internal/infrastructure/repository/memory"
	idgen "github.com/joehodgson0/teamhub/internal/platform/id"
)

func TestAuthService_Register_NormalizesAndDedupes(t *testing.T) {
	t.Parallel()

	service := NewAuthService(memory.NewUserRepository(nil), idgen.NewRandomGenerator(), nil)

	got, err := service.Register(context.Background(), RegisterInput{
		Email:    "  Dana@Example.Test ",
		Password: "longenough",
		Roles:    []string{"Coach", "coach", "parent"},
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if got.Email != "dana@example.test" {
		t.Fatalf("email not normalized: %q", got.Email)
	}
	if len(got.Roles) != 2 {
		t.Fatalf("roles not deduped: %v", got.Roles)
	}
	if got.PasswordHash == "" || got.PasswordHash == "longenough" {
		t.Fatalf("password was not hashed")
	}
}

func TestAuthService_Register_Rejections(t *testing.T) {
	t.Parallel()

	repo := memory.NewUserRepository([]user.User{
		{ID: "u1", Email: "taken@example.test"},
	})
	service := NewAuthService(repo, idgen.NewRandomGenerator(), nil)
	ctx := context.Background()

	cases := []struct {
		name  string
		input RegisterInput
	}{
		{"short password", RegisterInput{Email: "a@b.test", Password: "short", Roles: []string{"coach"}}},
		{"no roles", RegisterInput{Email: "a@b.test", Password: "longenough", Roles: nil}},
		{"unknown role", RegisterInput{Email: "a@b.test", Password: "longenough", Roles: []string{"referee"}}},
		{"duplicate email", RegisterInput{Email: "Taken@Example.Test", Password: "longenough", Roles: []string{"coach"}}},
	}
	for _, tc := range cases {
		if _, err := service.Register(ctx, tc.input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected invalid input, got %v", tc.name, err)
		}
	}
}

func TestAuthService_LoginRoundTrip(t *testing.T) {
	t.Parallel()

	repo := memory.NewUserRepository(nil)
	service := NewAuthService(repo, idgen.NewRandomGenerator(), nil)
	ctx := context.Background()

	registered, err := service.Register(ctx, RegisterInput{
		Email:    "sam@example.test",
		Password: "correct-horse",
		Roles:    []string{"parent"},
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	got, err := service.Login(ctx, "SAM@example.test", "correct-horse")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if got.ID != registered.ID {
		t.Fatalf("login returned wrong user: %q", got.ID)
	}

	if _, err := service.Login(ctx, "sam@example.test", "wrong-password"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected unauthorized for bad password, got %v", err)
	}
	if _, err := service.Login(ctx, "nobody@example.test", "correct-horse"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected unauthorized for unknown email, got %v", err)
	}
}

func TestAuthService_GetUser(t *testing.T) {
	t.Parallel()

	repo := memory.NewUserRepository([]user.User{
		{ID: "u1", Email: "dana@example.test"},
	})
	service := NewAuthService(repo, idgen.NewRandomGenerator(), nil)
	ctx := context.Background()

	got, err := service.GetUser(ctx, "u1")
	if err != nil {
		t.Fatalf("GetUser error: %v", err)
	}
	if got.Email != "dana@example.test" {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := service.GetUser(ctx, "ghost"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected unauthorized for stale session, got %v", err)
	}
}
