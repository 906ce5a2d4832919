package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestSessionRevoker(t *testing.T) {
	ctx := context.Background()

	t.Run("jti revogado passa a constar na denylist", func(t *testing.T) {
		_, client := setupTestRedis(t)
		revoker := NewSessionRevoker(client)

		if err := revoker.Revoke(ctx, "jti-123", time.Hour); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		revoked, err := revoker.IsRevoked(ctx, "jti-123")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if !revoked {
			t.Error("esperava jti revogado")
		}
	})

	t.Run("jti desconhecido não está revogado", func(t *testing.T) {
		_, client := setupTestRedis(t)
		revoker := NewSessionRevoker(client)

		revoked, err := revoker.IsRevoked(ctx, "jti-inexistente")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if revoked {
			t.Error("não esperava jti revogado")
		}
	})

	t.Run("entrada expira junto com o token", func(t *testing.T) {
		mr, client := setupTestRedis(t)
		revoker := NewSessionRevoker(client)

		if err := revoker.Revoke(ctx, "jti-ttl", time.Minute); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		mr.FastForward(2 * time.Minute)

		revoked, err := revoker.IsRevoked(ctx, "jti-ttl")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if revoked {
			t.Error("esperava denylist limpa após o TTL")
		}
	})

	t.Run("ttl não positivo é no-op", func(t *testing.T) {
		mr, client := setupTestRedis(t)
		revoker := NewSessionRevoker(client)

		if err := revoker.Revoke(ctx, "jti-expirado", -time.Minute); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if mr.Exists(revokedKeyPrefix + "jti-expirado") {
			t.Error("não esperava chave para token já expirado")
		}
	})
}
