package services

import (
	"errors"
	"testing"

	"tanzo-api/app/models"

	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser_HashesPassword(t *testing.T) {
	t.Parallel()

	users, _, _ := testServices(t)

	u, err := users.CreateUser("a@example.com", "plaintext")
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	if u.Password == "plaintext" {
		t.Fatal("password stored in plain text")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("plaintext")) != nil {
		t.Fatal("stored hash does not verify against the plaintext")
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	t.Parallel()

	users, _, _ := testServices(t)

	if _, err := users.CreateUser("dup@example.com", "x"); err != nil {
		t.Fatalf("first CreateUser error: %v", err)
	}
	if _, err := users.CreateUser("dup@example.com", "y"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestValidateCredentials(t *testing.T) {
	t.Parallel()

	users, _, _ := testServices(t)

	created, err := users.CreateUser("login@example.com", "right")
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}

	u, err := users.ValidateCredentials("login@example.com", "right")
	if err != nil {
		t.Fatalf("ValidateCredentials error: %v", err)
	}
	if u.ID != created.ID {
		t.Fatalf("user mismatch: got %d want %d", u.ID, created.ID)
	}

	if _, err := users.ValidateCredentials("login@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := users.ValidateCredentials("nobody@example.com", "x"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUpdateUser_RehashesPassword(t *testing.T) {
	t.Parallel()

	users, _, _ := testServices(t)

	created, err := users.CreateUser("upd@example.com", "old")
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}

	u, err := users.UpdateUser(created.ID, "new@example.com", "new")
	if err != nil {
		t.Fatalf("UpdateUser error: %v", err)
	}
	if u.Email != "new@example.com" {
		t.Fatalf("email: got %q", u.Email)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("new")) != nil {
		t.Fatal("updated hash does not verify")
	}

	if _, err := users.UpdateUser(9999, "x@y.z", "p"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteUser_CascadesProjects(t *testing.T) {
	t.Parallel()

	users, projects, gdb := testServices(t)

	u, err := users.CreateUser("owner@example.com", "p")
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	if _, err := projects.CreateProject(u.ID, "p1", "d1"); err != nil {
		t.Fatalf("CreateProject error: %v", err)
	}
	if _, err := projects.CreateProject(u.ID, "p2", "d2"); err != nil {
		t.Fatalf("CreateProject error: %v", err)
	}

	if err := users.DeleteUser(u.ID); err != nil {
		t.Fatalf("DeleteUser error: %v", err)
	}

	var count int64
	if err := gdb.Model(&models.Project{}).Where("user_id = ?", u.ID).Count(&count).Error; err != nil {
		t.Fatalf("count projects: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected cascade to remove projects, %d remain", count)
	}

	if err := users.DeleteUser(u.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}
