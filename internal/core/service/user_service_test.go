package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskhive/taskhive/internal/core/domain"
	"github.com/taskhive/taskhive/internal/core/ports"
)

func TestUserService_Create_DefaultsRole(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Email:    "ada@example.com",
		Password: "s3cret99",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Errorf("expected default role user, got %q", user.Role)
	}
	if !user.Active {
		t.Errorf("expected new user active")
	}
}

func TestUserService_Create_ExplicitAdmin(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Email:    "root@example.com",
		Password: "s3cret99",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Errorf("expected admin role, got %q", user.Role)
	}
}

func TestUserService_Update_PatchMerge(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Email:     "ada@example.com",
		Password:  "s3cret99",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	first := "Augusta"
	updated, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{FirstName: &first})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.FirstName != "Augusta" {
		t.Errorf("expected first name updated, got %q", updated.FirstName)
	}
	if updated.LastName != "Lovelace" || updated.Email != "ada@example.com" {
		t.Errorf("unset fields changed: %+v", updated)
	}
	if updated.PasswordHash != user.PasswordHash {
		t.Errorf("password hash changed without a password in the patch")
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, _ := svc.Create(context.Background(), ports.CreateUserInput{
		Email:    "ada@example.com",
		Password: "s3cret99",
	})

	newPass := "changed42"
	updated, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Password: &newPass})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.PasswordHash == "changed42" {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("changed42")); err != nil {
		t.Fatalf("new hash does not verify: %v", err)
	}
}

func TestUserService_Remove(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, _ := svc.Create(context.Background(), ports.CreateUserInput{
		Email:    "ada@example.com",
		Password: "s3cret99",
	})

	if err := svc.Remove(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if err := svc.Remove(context.Background(), user.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user still present after remove")
	}
}
