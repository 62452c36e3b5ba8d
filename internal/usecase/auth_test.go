package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/minhdn/gameshop/internal/domain/errors"
	"github.com/minhdn/gameshop/internal/domain/model"
	pkgAuth "github.com/minhdn/gameshop/internal/pkg/auth"
	testhelpers "github.com/minhdn/gameshop/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(userID int64, role model.Role) (string, error) {
			return fmt.Sprintf("token-%d-%s", userID, role), nil
		},
		ParseFn: func(token string) (int64, model.Role, error) {
			var id int64
			var role model.Role
			if _, err := fmt.Sscanf(token, "token-%d-%s", &id, &role); err != nil {
				return 0, "", pkgAuth.ErrInvalidToken
			}
			return id, role, nil
		},
	}
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, token, err := uc.Register(ctx, "Alice@Mail.com", "password")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user to have ID assigned")
	}
	if user.Role != model.RoleUser {
		t.Fatalf("expected user role, got %s", user.Role)
	}
	if token != "token-1-user" {
		t.Fatalf("unexpected token %q", token)
	}
	stored, err := repo.GetByEmail(ctx, "alice@mail.com")
	if err != nil {
		t.Fatalf("expected lowercased email in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "secret"},
		{"not an email", "plainstring", "secret"},
		{"missing domain", "user@", "secret"},
		{"empty password", "user@mail.com", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := uc.Register(context.Background(), tc.email, tc.password); err != domainErrors.ErrInvalidCredentials {
				t.Fatalf("expected invalid credentials, got %v", err)
			}
		})
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "bob@mail.com", "secret"); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, _, err := uc.Register(ctx, "bob@mail.com", "secret"); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "carol@mail.com", "123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, "carol@mail.com", "bad"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "nobody@mail.com", "123456"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for unknown user, got %v", err)
	}

	_, token, err := uc.Authenticate(ctx, "carol@mail.com", "123456")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token-1-user" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseChangePassword(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, _, err := uc.Register(ctx, "dave@mail.com", "old")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := uc.ChangePassword(ctx, user.ID, "wrong", "new"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if err := uc.ChangePassword(ctx, user.ID, "old", ""); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for empty password, got %v", err)
	}
	if err := uc.ChangePassword(ctx, user.ID, "old", "new"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, "dave@mail.com", "new"); err != nil {
		t.Fatalf("expected new password to work: %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "dave@mail.com", "old"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected old password to fail, got %v", err)
	}
}

func TestAuthUseCaseUpdateUser(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, _, err := uc.Register(ctx, "erin@mail.com", "secret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	updated, err := uc.UpdateUser(ctx, user.ID, "Erin@Shop.com", model.RoleAdmin, decimal.NewFromInt(120))
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Email != "erin@shop.com" || updated.Role != model.RoleAdmin {
		t.Fatalf("unexpected user after update: %+v", updated)
	}
	if !updated.Money.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("unexpected money after update: %s", updated.Money)
	}

	if _, err := uc.UpdateUser(ctx, user.ID, "broken", model.RoleUser, decimal.Zero); err != domainErrors.ErrInvalidInput {
		t.Fatalf("expected invalid input for bad email, got %v", err)
	}
	if _, err := uc.UpdateUser(ctx, user.ID, "erin@shop.com", "moderator", decimal.Zero); err != domainErrors.ErrInvalidInput {
		t.Fatalf("expected invalid input for unknown role, got %v", err)
	}
	if _, err := uc.UpdateUser(ctx, user.ID, "erin@shop.com", model.RoleUser, decimal.NewFromInt(-5)); err != domainErrors.ErrInvalidAmount {
		t.Fatalf("expected invalid amount, got %v", err)
	}
	if _, err := uc.UpdateUser(ctx, 0, "erin@shop.com", model.RoleUser, decimal.Zero); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found for zero id, got %v", err)
	}
}

func TestAuthUseCaseDeleteUser(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, _, err := uc.Register(ctx, "frank@mail.com", "secret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := uc.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.GetByID(ctx, user.ID); err != domainErrors.ErrNotFound {
		t.Fatalf("expected user removed, got %v", err)
	}
	if err := uc.DeleteUser(ctx, 0); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found for zero id, got %v", err)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	id, role, err := uc.ParseToken("token-42-admin")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if id != 42 || role != model.RoleAdmin {
		t.Fatalf("expected id 42 admin, got %d %s", id, role)
	}

	if _, _, err := uc.ParseToken(""); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}
