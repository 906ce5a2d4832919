package ports

import (
	"context"
	"time"
)

// TokenRevoker define a denylist de sessões encerradas.
// No logout o JTI do token entra na lista até a expiração original;
// o middleware de autenticação consulta a lista a cada requisição.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
