// Package mysql guarda los slots del documento de inventario en MySQL/MariaDB.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/jhoicas/Inventario-local/internal/domain/repository"
)

// Schema tabla de slots. LONGTEXT porque la bitácora crece sin límite.
const Schema = `
CREATE TABLE IF NOT EXISTS inventory_documents (
	slot_key   VARCHAR(191) NOT NULL PRIMARY KEY,
	data       LONGTEXT     NOT NULL,
	updated_at DATETIME(3)  NOT NULL
)`

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository sobre MySQL.
type DocumentRepo struct {
	db *sql.DB
}

// Open conecta con dsn (formato go-sql-driver: user:pass@tcp(host:3306)/db), verifica la conexión y aplica el esquema.
func Open(ctx context.Context, dsn string) (*DocumentRepo, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir mysql: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrar mysql: %w", err)
	}
	return &DocumentRepo{db: db}, nil
}

// Close cierra la conexión.
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
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inventory_documents (slot_key, data, updated_at) VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE data = VALUES(data), updated_at = VALUES(updated_at)`,
		key, string(raw), time.Now().UTC())
	if err != nil {
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
