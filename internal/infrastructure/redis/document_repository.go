// Package redis guarda el documento de inventario como un string JSON bajo una key de Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Inventario-local/internal/domain/repository"
)

const slotKeyPrefix = "inventory:slot:"

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository sobre Redis. SET sobrescribe el valor completo
// de forma atómica, equivalente al setItem del almacenamiento local.
type DocumentRepo struct {
	client *redis.Client
}

// NewDocumentRepository construye el adaptador.
func NewDocumentRepository(client *redis.Client) *DocumentRepo {
	return &DocumentRepo{client: client}
}

// Get devuelve el documento del slot.
func (r *DocumentRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := r.client.Get(ctx, slotKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return raw, true, nil
}

// Put sobrescribe el slot sin expiración.
func (r *DocumentRepo) Put(ctx context.Context, key string, raw []byte) error {
	if err := r.client.Set(ctx, slotKeyPrefix+key, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete elimina el slot.
func (r *DocumentRepo) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, slotKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
