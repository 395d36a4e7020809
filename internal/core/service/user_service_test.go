package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/agrocampo/farm-system/internal/core/domain"
	"github.com/agrocampo/farm-system/internal/core/ports"
)

func TestUserService_Create_MarksProvisional(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "João",
		Email:    "joao@fazenda.com",
		Password: "assigned-by-admin",
		Role:     domain.RoleOperator,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !user.TempPassword {
		t.Fatalf("a provisioned account must carry the forced-change flag")
	}
	if user.Password == "assigned-by-admin" {
		t.Fatalf("expected stored password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("assigned-by-admin")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "João",
		Email:    "joao@fazenda.com",
		Password: "x",
		Role:     "superuser",
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "u1", Email: "joao@fazenda.com", Role: domain.RoleOperator})
	svc := NewUserService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Outro João",
		Email:    "joao@fazenda.com",
		Password: "x",
		Role:     domain.RoleOperator,
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Update_NewPasswordRemarksProvisional(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "u1", Email: "joao@fazenda.com", Role: domain.RoleOperator})
	svc := NewUserService(repo, zerolog.Nop())

	newPassword := "reset-by-admin"
	if err := svc.Update(context.Background(), "u1", ports.UpdateUserInput{Password: &newPassword}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	u := repo.users["u1"]
	if !u.TempPassword {
		t.Fatalf("an administrative password reset must re-mark the account provisional")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(newPassword)); err != nil {
		t.Fatalf("reset password not stored hashed: %v", err)
	}
}

func TestUserService_Update_InvalidRole(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "u1", Email: "joao@fazenda.com", Role: domain.RoleOperator})
	svc := NewUserService(repo, zerolog.Nop())

	bad := "root"
	if err := svc.Update(context.Background(), "u1", ports.UpdateUserInput{Role: &bad}); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Delete_LastAdminProtected(t *testing.T) {
	repo := newStubUserRepo(
		&domain.User{ID: "a1", Email: "admin@fazenda.com", Role: domain.RoleAdmin},
		&domain.User{ID: "o1", Email: "op@fazenda.com", Role: domain.RoleOperator},
	)
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "a1"); !errors.Is(err, domain.ErrLastAdmin) {
		t.Fatalf("expected ErrLastAdmin, got %v", err)
	}
	if _, ok := repo.users["a1"]; !ok {
		t.Fatalf("last administrator must not be deleted")
	}
}

func TestUserService_Delete_AdminWithPeer(t *testing.T) {
	repo := newStubUserRepo(
		&domain.User{ID: "a1", Email: "admin1@fazenda.com", Role: domain.RoleAdmin},
		&domain.User{ID: "a2", Email: "admin2@fazenda.com", Role: domain.RoleAdmin},
	)
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "a1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := repo.users["a1"]; ok {
		t.Fatalf("expected a1 to be deleted")
	}
}

func TestUserService_Delete_NonAdmin(t *testing.T) {
	repo := newStubUserRepo(
		&domain.User{ID: "a1", Email: "admin@fazenda.com", Role: domain.RoleAdmin},
		&domain.User{ID: "o1", Email: "op@fazenda.com", Role: domain.RoleOperator},
	)
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "o1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
}
