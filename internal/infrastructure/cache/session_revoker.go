package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rafabene/plazamap-backend/internal/domain/ports"
)

const revokedKeyPrefix = "session:revoked:"

// SessionRevoker implementa ports.TokenRevoker sobre Redis.
// Cada JTI revogado vira uma chave com TTL igual ao tempo restante do
// token, então a denylist se limpa sozinha.
type SessionRevoker struct {
	client *redis.Client
}

// NewSessionRevoker cria um novo SessionRevoker
func NewSessionRevoker(client *redis.Client) ports.TokenRevoker {
	return &SessionRevoker{client: client}
}

func (s *SessionRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token já expirado: nada a revogar
		return nil
	}
	return s.client.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

func (s *SessionRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
