package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-local/internal/application/inventory"
	"github.com/jhoicas/Inventario-local/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-local/pkg/config"
)

// getPool conecta a la base indicada en DATABASE_URL; sin ella el test se omite.
func getPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL no definido")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	if err != nil {
		t.Skipf("PostgreSQL no disponible: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestDocumentRepo_PutGetDelete(t *testing.T) {
	pool := getPool(t)
	ctx := context.Background()
	repo := postgres.NewDocumentRepository(pool)
	require.NoError(t, repo.Migrate(ctx))

	key := "test-" + uuid.New().String()
	t.Cleanup(func() { _ = repo.Delete(context.Background(), key) })

	_, found, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Put(ctx, key, []byte(`{"items":[]}`)))
	require.NoError(t, repo.Put(ctx, key, []byte(`{"items":[],"categories":["A"]}`)))

	raw, found, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"items":[],"categories":["A"]}`, string(raw))

	require.NoError(t, repo.Delete(ctx, key))
	_, found, err = repo.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDocumentRepo_StoreSobrePostgres(t *testing.T) {
	pool := getPool(t)
	ctx := context.Background()
	repo := postgres.NewDocumentRepository(pool)
	require.NoError(t, repo.Migrate(ctx))

	key := "test-" + uuid.New().String()
	t.Cleanup(func() { _ = repo.Delete(context.Background(), key) })
	store := inventory.NewStore(repo, key, nil)

	_, err := store.UpdateStock(ctx, "SKU1", inventory.ActionReceived, inventory.StockParams{Qty: 10, Location: "MAIN-WH"})
	require.NoError(t, err)
	res, err := store.UpdateStock(ctx, "SKU1", inventory.ActionTransfer, inventory.StockParams{Qty: 4, FromLocation: "MAIN-WH", ToLocation: "DOCK-1"})
	require.NoError(t, err)
	require.True(t, res.Applied)

	data, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, data.FindLocation("SKU1", "MAIN-WH").QuantityOnHand)
	assert.Equal(t, 4, data.FindLocation("SKU1", "DOCK-1").QuantityOnHand)
	assert.Len(t, data.AuditLogs, 2)
}
