// Package storage elige el adaptador de persistencia del documento según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-local/internal/domain/repository"
	"github.com/jhoicas/Inventario-local/internal/infrastructure/filestore"
	"github.com/jhoicas/Inventario-local/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-local/internal/infrastructure/mysql"
	"github.com/jhoicas/Inventario-local/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Inventario-local/internal/infrastructure/redis"
	"github.com/jhoicas/Inventario-local/internal/infrastructure/sqlite"
	"github.com/jhoicas/Inventario-local/pkg/config"
)

// CloseFunc libera las conexiones del adaptador abierto.
type CloseFunc func() error

func noopClose() error { return nil }

// Open construye el DocumentRepository configurado. El llamador debe invocar el CloseFunc devuelto.
func Open(ctx context.Context, cfg *config.Config) (repository.DocumentRepository, CloseFunc, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return memory.NewDocumentRepository(), noopClose, nil

	case config.DriverFile:
		repo, err := filestore.NewOSDocumentRepository(cfg.Storage.Dir)
		if err != nil {
			return nil, nil, err
		}
		return repo, noopClose, nil

	case config.DriverSQLite:
		repo, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil

	case config.DriverRedis:
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return infraredis.NewDocumentRepository(client), client.Close, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		repo := postgres.NewDocumentRepository(pool)
		if err := repo.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, func() error { pool.Close(); return nil }, nil

	case config.DriverMySQL:
		repo, err := mysql.Open(ctx, cfg.Storage.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil

	default:
		return nil, nil, fmt.Errorf("storage: driver desconocido %q", cfg.Storage.Driver)
	}
}
