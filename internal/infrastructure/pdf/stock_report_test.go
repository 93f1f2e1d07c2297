package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-local/internal/domain/entity"
)

func TestGenerateStockReport_ProducePDF(t *testing.T) {
	data := entity.NewDefaultInventoryData()
	data.Items = []entity.InventoryItem{{ID: "1", ItemNumber: "SKU1", Description: "Tote", UnitOfMeasure: "EA"}}
	data.Locations = []entity.ItemLocation{
		{ID: "a", ItemNumber: "SKU1", Location: "MAIN-WH", QuantityOnHand: 6},
		{ID: "b", ItemNumber: "SKU1", Location: "DOCK-1", QuantityOnHand: 4},
	}
	data.AuditLogs = []entity.AuditLog{
		{ID: "x", ItemNumber: "SKU1", Type: entity.AuditTypeTransfer, FromLocation: "MAIN-WH", ToLocation: "DOCK-1", Quantity: 4, Timestamp: time.Now()},
	}

	out, err := NewMarotoReportGenerator("SBS Cordova", 10).GenerateStockReport(context.Background(), data, time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateStockReport_DocumentoVacio(t *testing.T) {
	out, err := NewMarotoReportGenerator("SBS Cordova", 0).GenerateStockReport(context.Background(), entity.NewDefaultInventoryData(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRoute(t *testing.T) {
	assert.Equal(t, "MAIN-WH > DOCK-1", route(entity.AuditLog{FromLocation: "MAIN-WH", ToLocation: "DOCK-1"}))
	assert.Equal(t, "PLANT-A", route(entity.AuditLog{FromLocation: "PLANT-A"}))
	assert.Equal(t, "DOCK-2", route(entity.AuditLog{ToLocation: "DOCK-2"}))
	assert.Equal(t, "-", route(entity.AuditLog{}))
}

func TestAuditRows_RespetaLimite(t *testing.T) {
	logs := make([]entity.AuditLog, 40)
	assert.Len(t, auditRows(logs, 25), 25)
	assert.Len(t, auditRows(logs[:3], 25), 3)
}
