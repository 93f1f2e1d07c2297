package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-local/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// Schema crea la tabla de slots si no existe. Un documento JSONB por slot_key.
const Schema = `
CREATE TABLE IF NOT EXISTS inventory_documents (
	slot_key   TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// DocumentRepo implementación de DocumentRepository sobre PostgreSQL (usable con pool o tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Migrate aplica el esquema de la tabla de slots.
func (r *DocumentRepo) Migrate(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("migrar inventory_documents: %w", err)
	}
	return nil
}

// Get obtiene el documento del slot.
func (r *DocumentRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `SELECT data::text FROM inventory_documents WHERE slot_key = $1`
	var raw string
	err := r.q.QueryRow(ctx, query, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get documento: %w", err)
	}
	return []byte(raw), true, nil
}

// Put inserta o reemplaza el documento del slot (una sola sentencia).
func (r *DocumentRepo) Put(ctx context.Context, key string, raw []byte) error {
	query := `
		INSERT INTO inventory_documents (slot_key, data, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (slot_key)
		DO UPDATE SET data = EXCLUDED.data, updated_at = now()`
	if _, err := r.q.Exec(ctx, query, key, string(raw)); err != nil {
		return fmt.Errorf("upsert documento: %w", err)
	}
	return nil
}

// Delete elimina el slot.
func (r *DocumentRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM inventory_documents WHERE slot_key = $1`, key); err != nil {
		return fmt.Errorf("delete documento: %w", err)
	}
	return nil
}
