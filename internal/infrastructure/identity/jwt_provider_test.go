package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobcard_service/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestJWTProvider_Resolve(t *testing.T) {
	secret := []byte("test-secret")
	p := NewJWTProvider(secret)

	t.Run("valid technician token", func(t *testing.T) {
		tok := signToken(t, secret, jwt.MapClaims{
			"user_id":       "user-1",
			"name":          "Joao",
			"role":          "technician",
			"technician_id": "tech-1",
			"exp":           time.Now().Add(time.Hour).Unix(),
		})

		id, err := p.Resolve(context.Background(), tok)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id.Role != entities.RoleTechnician || id.TechnicianID != "tech-1" {
			t.Fatalf("unexpected identity: %+v", id)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok := signToken(t, []byte("other"), jwt.MapClaims{"user_id": "u", "role": "ADMIN"})
		if _, err := p.Resolve(context.Background(), tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		tok := signToken(t, secret, jwt.MapClaims{"user_id": "u", "role": "INTERN"})
		if _, err := p.Resolve(context.Background(), tok); !errors.Is(err, ErrUnknownRole) {
			t.Fatalf("expected ErrUnknownRole, got %v", err)
		}
	})

	t.Run("empty token", func(t *testing.T) {
		if _, err := p.Resolve(context.Background(), "  "); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestJWTProvider_HasPermission(t *testing.T) {
	p := NewJWTProviderFromEnv()

	cases := []struct {
		role   entities.Role
		action string
		want   bool
	}{
		{entities.RoleAdmin, "approve", true},
		{entities.RoleOfficeManager, "approve", true},
		{entities.RoleOfficeManager, "cancel", true},
		{entities.RoleTechnician, "read", true},
		{entities.RoleTechnician, "update", true},
		{entities.RoleTechnician, "approve", false},
		{entities.RoleTechnician, "create", false},
		{entities.Role("INTERN"), "read", false},
	}
	for _, tc := range cases {
		got := p.HasPermission(entities.Identity{Role: tc.role}, "jobcards", tc.action)
		if got != tc.want {
			t.Errorf("HasPermission(%s, %s) = %v, want %v", tc.role, tc.action, got, tc.want)
		}
	}
}
