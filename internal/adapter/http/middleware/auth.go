package middleware

import (
	"net/http"
	"strings"

	"jobcard_service/internal/domain/entities"
	"jobcard_service/internal/usecase/interfaces"
	"jobcard_service/pkg"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Authenticate resolves the bearer token into an identity and stores it in
// the request context. Requests without a valid token never reach a handler.
func Authenticate(provider interfaces.IIdentityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Authorization header required")
			return
		}
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Invalid authorization format")
			return
		}

		id, err := provider.Resolve(c.Request.Context(), parts[1])
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", message, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// IdentityFromContext returns the identity stored by Authenticate.
func IdentityFromContext(c *gin.Context) (entities.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return entities.Identity{}, false
	}
	id, ok := v.(entities.Identity)
	return id, ok
}
