package interfaces

import (
	"context"

	"jobcard_service/internal/domain/entities"
)

// IIdentityProvider resolves callers and answers permission checks.
//
// Every engine operation consumes the same permission evaluation instead of
// re-deriving role rules per call site. Credentials are validated upstream;
// this service only consumes the resolved identity.

type IIdentityProvider interface {
	Resolve(ctx context.Context, bearerToken string) (entities.Identity, error)
	HasPermission(id entities.Identity, resource, action string) bool
}
