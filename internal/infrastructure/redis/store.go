package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tu-usuario/club-api/internal/application/cache"
	"github.com/tu-usuario/club-api/pkg/config"
)

var _ cache.Store = (*Store)(nil)

// Store implementación del puerto cache.Store sobre Redis.
type Store struct {
	client *redis.Client
}

// NewClient crea y verifica el cliente Redis.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewStore construye el adaptador de cache sobre un cliente existente.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get devuelve el valor de la clave, o (nil, nil) si no existe.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

// Set escribe la clave con expiración. Sobrescribe incondicionalmente.
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Invalidate borra la clave. Borrar una clave ausente es un no-op.
func (s *Store) Invalidate(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
