package auth

import (
	"testing"
	"time"
)

func TestIssueAndValidate(t *testing.T) {
	m := NewTokenManager("test-secret")
	p := &Principal{ID: "01ARZ3NDEKTSV4RRFFQ69G5FAV", Email: "a@x.com"}

	token, err := m.Issue(p)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if claims.Subject != p.ID {
		t.Errorf("claims.Subject = %q, want %q", claims.Subject, p.ID)
	}
	if claims.Email != p.Email {
		t.Errorf("claims.Email = %q, want %q", claims.Email, p.Email)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != time.Hour {
		t.Errorf("token ttl = %v, want 1h", ttl)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a")
	verifier := NewTokenManager("secret-b")

	token, err := issuer.Issue(&Principal{ID: "id", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	if _, err := verifier.Validate(token); err == nil {
		t.Error("Validate() with wrong secret succeeded, want error")
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	m := NewTokenManager("test-secret")
	m.ttl = -time.Minute

	token, err := m.Issue(&Principal{ID: "id", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	if _, err := m.Validate(token); err == nil {
		t.Error("Validate() of expired token succeeded, want error")
	}
}

func TestValidateRejectsMalformed(t *testing.T) {
	m := NewTokenManager("test-secret")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := m.Validate(token); err == nil {
			t.Errorf("Validate(%q) succeeded, want error", token)
		}
	}
}
