package identity

import (
	"context"
	"errors"
	"os"
	"strings"

	"jobcard_service/internal/domain/entities"
	"jobcard_service/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrUnknownRole  = errors.New("unknown role claim")
)

// permissions is the single role-permission table. Every authorization
// decision in the service funnels through HasPermission and this map; no
// handler or use case carries its own role rules.
var permissions = map[entities.Role]map[string]map[string]bool{
	entities.RoleAdmin: {
		"jobcards": {"create": true, "read": true, "update": true, "approve": true, "cancel": true},
	},
	entities.RoleOfficeManager: {
		"jobcards": {"create": true, "read": true, "update": true, "approve": true, "cancel": true},
	},
	entities.RoleTechnician: {
		"jobcards": {"read": true, "update": true},
	},
}

// JWTProvider resolves bearer tokens into identities. Tokens are issued
// upstream (the shop's auth service); this provider only verifies the
// HS256 signature and reads the claims.
type JWTProvider struct {
	secret []byte
}

var _ interfaces.IIdentityProvider = (*JWTProvider)(nil)

func NewJWTProviderFromEnv() *JWTProvider {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "supersecretkey"
	}
	return &JWTProvider{secret: []byte(secret)}
}

func NewJWTProvider(secret []byte) *JWTProvider {
	return &JWTProvider{secret: secret}
}

func (p *JWTProvider) Resolve(ctx context.Context, bearerToken string) (entities.Identity, error) {
	bearerToken = strings.TrimSpace(bearerToken)
	if bearerToken == "" {
		return entities.Identity{}, ErrInvalidToken
	}

	token, err := jwt.Parse(bearerToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return entities.Identity{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entities.Identity{}, ErrInvalidToken
	}

	role := entities.Role(strings.ToUpper(claimString(claims, "role")))
	if _, known := permissions[role]; !known {
		return entities.Identity{}, ErrUnknownRole
	}
	id := entities.Identity{
		ID:           claimString(claims, "user_id"),
		Name:         claimString(claims, "name"),
		Role:         role,
		TechnicianID: claimString(claims, "technician_id"),
	}
	if id.ID == "" {
		return entities.Identity{}, ErrInvalidToken
	}
	return id, nil
}

func (p *JWTProvider) HasPermission(id entities.Identity, resource, action string) bool {
	byResource, ok := permissions[id.Role]
	if !ok {
		return false
	}
	return byResource[resource][action]
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
