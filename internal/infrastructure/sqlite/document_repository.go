// Package sqlite guarda los slots del documento de inventario en un archivo SQLite
// (driver modernc.org/sqlite, sin cgo).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/jhoicas/Inventario-local/internal/domain/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS inventory_documents (
	slot_key   TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
)`

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository sobre SQLite.
type DocumentRepo struct {
	db *sql.DB
}

// Open abre (o crea) la base en path y aplica el esquema.
func Open(ctx context.Context, path string) (*DocumentRepo, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio sqlite: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// Un solo escritor: SQLite serializa igual y así se evitan errores SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrar sqlite: %w", err)
	}
	return &DocumentRepo{db: db}, nil
}

// Close cierra la base.
func (r *DocumentRepo) Close() error {
	return r.db.Close()
}

// Get devuelve el documento del slot.
func (r *DocumentRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM inventory_documents WHERE slot_key = ?`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get documento: %w", err)
	}
	return []byte(raw), true, nil
}

// Put inserta o reemplaza el documento del slot.
func (r *DocumentRepo) Put(ctx context.Context, key string, raw []byte) error {
	query := `
		INSERT INTO inventory_documents (slot_key, data, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (slot_key)
		DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, string(raw)); err != nil {
		return fmt.Errorf("upsert documento: %w", err)
	}
	return nil
}

// Delete elimina el slot.
func (r *DocumentRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM inventory_documents WHERE slot_key = ?`, key); err != nil {
		return fmt.Errorf("delete documento: %w", err)
	}
	return nil
}
