package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-local/internal/infrastructure/storage"
	"github.com/jhoicas/Inventario-local/pkg/config"
)

func cfgFor(driver, dir string) *config.Config {
	return &config.Config{Storage: config.StorageConfig{
		Driver:     driver,
		Key:        config.DefaultStorageKey,
		Dir:        dir,
		SQLitePath: filepath.Join(dir, "inventory.db"),
	}}
}

func TestOpen_DriversLocales(t *testing.T) {
	for _, driver := range []string{config.DriverMemory, config.DriverFile, config.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			repo, closeFn, err := storage.Open(ctx, cfgFor(driver, t.TempDir()))
			require.NoError(t, err)
			defer func() { assert.NoError(t, closeFn()) }()

			require.NoError(t, repo.Put(ctx, "slot", []byte(`{"items":[]}`)))
			raw, found, err := repo.Get(ctx, "slot")
			require.NoError(t, err)
			assert.True(t, found)
			assert.JSONEq(t, `{"items":[]}`, string(raw))
		})
	}
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, _, err := storage.Open(context.Background(), cfgFor("etcd", t.TempDir()))
	assert.Error(t, err)
}
