package validate

import (
	"strings"
	"testing"
)

type credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type project struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"required"`
	UserID      uint   `json:"user_id" validate:"required"`
}

func TestStruct_Valid(t *testing.T) {
	t.Parallel()

	if errs := Struct(credentials{Email: "a@b.com", Password: "secret"}); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestStruct_RequiredFields(t *testing.T) {
	t.Parallel()

	errs := Struct(credentials{})
	if errs == nil {
		t.Fatal("expected errors, got nil")
	}
	if got := errs["email"]; len(got) != 1 || got[0] != "The email field is required." {
		t.Fatalf("email messages: %v", got)
	}
	if got := errs["password"]; len(got) != 1 || got[0] != "The password field is required." {
		t.Fatalf("password messages: %v", got)
	}
}

func TestStruct_EmailFormat(t *testing.T) {
	t.Parallel()

	errs := Struct(credentials{Email: "not-an-email", Password: "x"})
	if errs == nil {
		t.Fatal("expected errors, got nil")
	}
	if got := errs["email"]; len(got) != 1 || got[0] != "The email must be a valid email address." {
		t.Fatalf("email messages: %v", got)
	}
}

func TestStruct_MaxLength(t *testing.T) {
	t.Parallel()

	errs := Struct(project{Name: strings.Repeat("x", 51), Description: "d", UserID: 1})
	if errs == nil {
		t.Fatal("expected errors, got nil")
	}
	if got := errs["name"]; len(got) != 1 || got[0] != "The name may not be greater than 50 characters." {
		t.Fatalf("name messages: %v", got)
	}
}

func TestStruct_SnakeCaseLabel(t *testing.T) {
	t.Parallel()

	errs := Struct(project{Name: "n", Description: "d"})
	if errs == nil {
		t.Fatal("expected errors, got nil")
	}
	if got := errs["user_id"]; len(got) != 1 || got[0] != "The user id field is required." {
		t.Fatalf("user_id messages: %v", got)
	}
}
