package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-local/internal/application/inventory"
	"github.com/jhoicas/Inventario-local/internal/domain"
	"github.com/jhoicas/Inventario-local/internal/domain/entity"
)

func TestAddItem_RegistraADD(t *testing.T) {
	s, _ := newTestStore(t)

	res, err := s.AddItem(context.Background(), inventory.NewItem{
		ItemNumber: " SKU1 ", Description: "Tote azul", Category: "TOTE", UnitOfMeasure: "EA",
	})
	require.NoError(t, err)
	require.True(t, res.Applied)

	require.Len(t, res.Data.Items, 1)
	item := res.Data.Items[0]
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "SKU1", item.ItemNumber, "la clave de negocio se normaliza sin espacios")
	assert.Equal(t, "TOTE", item.Category)

	assert.Equal(t, entity.AuditTypeAdd, res.Data.AuditLogs[0].Type)
	assert.Equal(t, "SKU1", res.Data.AuditLogs[0].ItemNumber)
}

func TestAddItem_DuplicadoYVacio(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	_, err := s.AddItem(ctx, inventory.NewItem{ItemNumber: "SKU1"})
	require.NoError(t, err)

	res, err := s.AddItem(ctx, inventory.NewItem{ItemNumber: "SKU1"})
	require.NoError(t, err)
	assert.False(t, res.Applied)
	assert.Equal(t, domain.ReasonDuplicateItem, res.Reason)
	assert.Len(t, res.Data.Items, 1)
	assert.Len(t, res.Data.AuditLogs, 1)

	res, err = s.AddItem(ctx, inventory.NewItem{ItemNumber: "   "})
	require.NoError(t, err)
	assert.Equal(t, domain.ReasonInvalidRequest, res.Reason)
}

func TestUpdateItem_AplicaPatch(t *testing.T) {
	s, _ := newTestStore(t)
	seedItems(t, s)
	desc := "Bolsa reforzada"

	res, err := s.UpdateItem(context.Background(), "id-1", inventory.ItemPatch{Description: &desc})
	require.NoError(t, err)
	require.True(t, res.Applied)

	idx := res.Data.FindItemByID("id-1")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, "Bolsa reforzada", res.Data.Items[idx].Description)
	assert.Equal(t, "MISC", res.Data.Items[idx].Category, "campos nil no cambian")
	assert.Equal(t, entity.AuditTypeUpdate, res.Data.AuditLogs[0].Type)

	res, err = s.UpdateItem(context.Background(), "no-existe", inventory.ItemPatch{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, domain.ReasonUnknownItem, res.Reason)
}

func TestImportItems_UpsertPorItemNumber(t *testing.T) {
	s, _ := newTestStore(t)
	seedItems(t, s)

	out, err := s.ImportItems(context.Background(), []inventory.NewItem{
		{ItemNumber: "SKU2", Description: "Sal gruesa", Category: "SALT", UnitOfMeasure: "BAG"},
		{ItemNumber: "SKU3", Description: "Pallet", Category: "PLT", UnitOfMeasure: "EA"},
		{ItemNumber: ""},
	}, "")
	require.NoError(t, err)

	assert.Equal(t, 1, out.Created)
	assert.Equal(t, 1, out.Updated)
	assert.Equal(t, 1, out.Skipped)
	assert.Len(t, out.Data.Items, 3)

	idx := out.Data.FindItemByNumber("SKU2")
	assert.Equal(t, "id-2", out.Data.Items[idx].ID, "el upsert conserva el ID interno")
	assert.Equal(t, "Sal gruesa", out.Data.Items[idx].Description)

	last := inventory.LastImport(out.Data)
	require.NotNil(t, last)
	assert.Equal(t, "SKU3", last.ItemNumber, "la última entrada IMPORT corresponde al último ítem del lote")
	assert.Equal(t, inventory.ImportNote, last.Notes)
}

func TestImportItems_LoteVacio(t *testing.T) {
	s, _ := newTestStore(t)

	out, err := s.ImportItems(context.Background(), nil, "carga")
	require.NoError(t, err)
	assert.Zero(t, out.Created)
	assert.Empty(t, out.Data.AuditLogs)
	assert.Nil(t, inventory.LastImport(out.Data))
}

func TestVocabularios(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	res, err := s.AddMasterLocation(ctx, "FREEZER-3")
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Contains(t, res.Data.MasterLocations, "FREEZER-3")

	res, err = s.AddMasterLocation(ctx, "main-wh")
	require.NoError(t, err)
	assert.False(t, res.Applied, "no se duplican ubicaciones (sin distinguir mayúsculas)")

	res, err = s.AddCategory(ctx, "LABELS")
	require.NoError(t, err)
	assert.Equal(t, "LABELS", res.Data.Categories[len(res.Data.Categories)-1])

	res, err = s.AddCategory(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, domain.ReasonInvalidRequest, res.Reason)
}

// Con la API HTTP varias peticiones pueden llegar a la vez; el store debe serializarlas.
func TestStore_EscrituraConcurrenteSerializada(t *testing.T) {
	s, _ := newTestStore(t)
	const n = 50

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := s.UpdateStock(context.Background(), "SKU1", inventory.ActionReceived, inventory.StockParams{Qty: 1, Location: "MAIN-WH"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	data, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, n, qoh(t, data, "SKU1", "MAIN-WH"), "ningún ingreso debe perderse")
	assert.Len(t, data.AuditLogs, n)
}
