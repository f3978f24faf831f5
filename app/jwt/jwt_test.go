package jwtutil

import (
	"testing"
)

func TestSignAndParse_Success(t *testing.T) {
	t.Parallel()

	s := &Signer{Secret: []byte("super-secret"), Issuer: "tanzo-api", ExpMin: 60}

	tok, err := s.Sign(42, "user@example.com")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	claims, err := s.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("UserID mismatch: got %d want 42", claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Fatalf("Email mismatch: got %q", claims.Email)
	}
	if claims.Issuer != "tanzo-api" {
		t.Fatalf("Issuer mismatch: got %q", claims.Issuer)
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	s := &Signer{Secret: []byte("secret"), Issuer: "tanzo-api", ExpMin: -1}

	tok, err := s.Sign(1, "a@b.c")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	if _, err := s.Parse(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	signer := &Signer{Secret: []byte("right-secret"), Issuer: "tanzo-api", ExpMin: 60}
	tok, err := signer.Sign(1, "a@b.c")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	other := &Signer{Secret: []byte("wrong-secret"), Issuer: "tanzo-api", ExpMin: 60}
	if _, err := other.Parse(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParse_MalformedString(t *testing.T) {
	t.Parallel()

	s := &Signer{Secret: []byte("k"), Issuer: "tanzo-api", ExpMin: 60}
	if _, err := s.Parse("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
